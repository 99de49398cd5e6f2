// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import "github.com/telamon-project/telamon/pkg/util"

// Variable is a value that may need to be materialized to memory depending
// on how the search decides to realize the producer/consumer relationship
// between instructions (the VarDefMode domain, see pkg/domain).  Its layout
// is the ordered list of layout dimensions used when it is backed by a
// MemoryBlock: the search assigns each a rank (see NewObjs.memory_vars and
// process_lowering in original_source/src/search_space/mod.rs).
type Variable struct {
	id     VarId
	typ    Type
	layout []LayoutDimId
	// definingInst is the instruction producing this variable's value,
	// when it is a direct instruction result rather than a dimension
	// merge / fby.
	definingInst util.Option[InstId]
	// memBlock is set once a lowering backs this variable with a memory
	// block (see NewVariableBoundMemBlock).
	memBlock util.Option[MemId]
}

// NewVariable constructs a Variable of the given type, produced by
// definingInst.
func NewVariable(id VarId, typ Type, definingInst InstId) *Variable {
	return &Variable{id: id, typ: typ, definingInst: util.Some(definingInst)}
}

// Id returns this variable's identifier.
func (v *Variable) Id() VarId {
	return v.id
}

// Type returns this variable's type.
func (v *Variable) Type() Type {
	return v.typ
}

// Layout returns the ordered layout dimensions backing this variable in
// memory, if any.
func (v *Variable) Layout() []LayoutDimId {
	return v.layout
}

// SetLayout installs the layout dimensions backing this variable in memory,
// in outer-to-inner order.
func (v *Variable) SetLayout(layout []LayoutDimId) {
	v.layout = append([]LayoutDimId(nil), layout...)
}

// DefiningInst returns the instruction producing this variable's value, if
// any.
func (v *Variable) DefiningInst() util.Option[InstId] {
	return v.definingInst
}

// MemBlock returns the memory block backing this variable, if one has been
// assigned by a lowering.
func (v *Variable) MemBlock() util.Option[MemId] {
	return v.memBlock
}

// BindMemBlock assigns the memory block backing this variable.
func (v *Variable) BindMemBlock(mem MemId) {
	v.memBlock = util.Some(mem)
}
