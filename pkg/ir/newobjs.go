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

// IterDimPair records that dim was added as an iteration dimension of inst.
type IterDimPair struct {
	Inst InstId
	Dim  DimId
}

// NewObjs accumulates the IR objects created by a single lowering step, so
// that the engine can allocate matching domain slots (DomainStore.Alloc) and
// re-run initialization/invariants on exactly the new objects, without
// rescanning the whole function (spec.md S4.4; original_source/src/search_space/mod.rs's
// process_lowering consumes this struct, and
// telamon-gen/src/print/template/iter_new_objects.rs shows the generated
// code that iterates each field in turn).
type NewObjs struct {
	Instructions  []InstId
	Dimensions    []DimId
	MemoryBlocks  []MemId
	MemoryVars    []VarId
	IterationDims []IterDimPair
	ThreadDims    []DimId
}

// AddInstruction records a newly created instruction.
func (n *NewObjs) AddInstruction(id InstId) {
	n.Instructions = append(n.Instructions, id)
}

// AddDimension records a newly created dimension.
func (n *NewObjs) AddDimension(id DimId) {
	n.Dimensions = append(n.Dimensions, id)
}

// AddMemoryBlock records a newly created memory block.
func (n *NewObjs) AddMemoryBlock(id MemId) {
	n.MemoryBlocks = append(n.MemoryBlocks, id)
}

// AddMemoryVar records a variable that was just bound to a memory block,
// whose layout dimensions need rank domains allocated.
func (n *NewObjs) AddMemoryVar(id VarId) {
	n.MemoryVars = append(n.MemoryVars, id)
}

// AddIterationDim records that dim became an iteration dimension of inst.
func (n *NewObjs) AddIterationDim(inst InstId, dim DimId) {
	n.IterationDims = append(n.IterationDims, IterDimPair{Inst: inst, Dim: dim})
}

// AddThreadDim records that dim became a thread dimension.
func (n *NewObjs) AddThreadDim(dim DimId) {
	n.ThreadDims = append(n.ThreadDims, dim)
}

// IsEmpty reports whether this delta introduces no new objects at all.
func (n *NewObjs) IsEmpty() bool {
	return len(n.Instructions) == 0 && len(n.Dimensions) == 0 && len(n.MemoryBlocks) == 0 &&
		len(n.MemoryVars) == 0 && len(n.IterationDims) == 0 && len(n.ThreadDims) == 0
}
