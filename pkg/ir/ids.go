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

// Package ir provides the immutable-after-freeze intermediate representation
// of a kernel: functions, dimensions, instructions, variables and memory
// blocks.  All entities are identified by small dense integer ids and held in
// arenas owned by a Function, following the "cyclic graphs via arena + id"
// discipline used throughout this codebase instead of owning pointers.
package ir

import "fmt"

// DimId uniquely identifies a Dimension within a Function.
type DimId uint32

//nolint:revive
func (id DimId) String() string {
	return fmt.Sprintf("$dim%d", uint32(id))
}

// InstId uniquely identifies an Instruction within a Function.
type InstId uint32

//nolint:revive
func (id InstId) String() string {
	return fmt.Sprintf("$inst%d", uint32(id))
}

// VarId uniquely identifies a Variable within a Function.
type VarId uint32

//nolint:revive
func (id VarId) String() string {
	return fmt.Sprintf("$var%d", uint32(id))
}

// MemId uniquely identifies a MemoryBlock within a Function.
type MemId uint32

//nolint:revive
func (id MemId) String() string {
	return fmt.Sprintf("$mem%d", uint32(id))
}

// InductionVarId uniquely identifies an induction variable within a Function.
type InductionVarId uint32

//nolint:revive
func (id InductionVarId) String() string {
	return fmt.Sprintf("$indvar%d", uint32(id))
}

// LayoutDimId uniquely identifies a layout dimension of a Variable's memory
// layout.  Layout dimensions carry a Rank domain (see pkg/domain) distinct
// from the DimKind/Order domains carried by ordinary iteration dimensions.
type LayoutDimId uint32

//nolint:revive
func (id LayoutDimId) String() string {
	return fmt.Sprintf("$layout%d", uint32(id))
}

// StmtId is the sum Inst(InstId) | Dim(DimId).  Orderings, and most other
// binary relations over "things that can be nested in a loop", are expressed
// over StmtId so that a dimension and an instruction can be compared
// uniformly.  Besides the underlying (kind, id) pair, a StmtId carries the
// sequence number under which the statement was created; this is what
// "smaller id" refers to in the tie-breaking rules of spec.md S4.3 (dims and
// instructions are allocated from separate counters, so the pair (isDim,
// value) alone cannot be compared across kinds).
type StmtId struct {
	// isDim indicates whether this wraps a DimId (true) or an InstId (false).
	isDim bool
	// value holds the underlying numeric identifier, regardless of kind.
	value uint32
	// seq is the creation order of this statement, unique and comparable
	// across both dimensions and instructions.
	seq uint32
}

// NewInstStmtId wraps an InstId as a StmtId created at the given sequence
// position.
func NewInstStmtId(id InstId, seq uint32) StmtId {
	return StmtId{false, uint32(id), seq}
}

// NewDimStmtId wraps a DimId as a StmtId created at the given sequence
// position.
func NewDimStmtId(id DimId, seq uint32) StmtId {
	return StmtId{true, uint32(id), seq}
}

// IsDim indicates whether this statement id refers to a dimension.
func (s StmtId) IsDim() bool {
	return s.isDim
}

// IsInst indicates whether this statement id refers to an instruction.
func (s StmtId) IsInst() bool {
	return !s.isDim
}

// Dim returns the wrapped DimId, panicking if this is not a dimension id.
func (s StmtId) Dim() DimId {
	if !s.isDim {
		panic("StmtId does not wrap a DimId")
	}

	return DimId(s.value)
}

// Inst returns the wrapped InstId, panicking if this is not an instruction id.
func (s StmtId) Inst() InstId {
	if s.isDim {
		panic("StmtId does not wrap an InstId")
	}

	return InstId(s.value)
}

// Seq returns the creation-order sequence number of this statement.  Used for
// tie-breaking (smaller-id-first propagator ordering, spec.md S4.3) and for
// normalising orderings on their smaller-id operand.
func (s StmtId) Seq() uint32 {
	return s.seq
}

// Less orders two statement ids by creation sequence, regardless of kind.
func (s StmtId) Less(other StmtId) bool {
	return s.seq < other.seq
}

// Equal reports whether two statement ids refer to the same statement.
func (s StmtId) Equal(other StmtId) bool {
	return s.isDim == other.isDim && s.value == other.value
}

//nolint:revive
func (s StmtId) String() string {
	if s.isDim {
		return DimId(s.value).String()
	}

	return InstId(s.value).String()
}
