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

// MemorySpaceKind is the storage class a MemoryBlock is statically known to
// live in, or VariableBound if the decision is left to the search (it then
// shows up as a MemorySpace domain choice in pkg/domain).
type MemorySpaceKind uint8

const (
	// Global marks a memory block as living in device-global memory.
	Global MemorySpaceKind = iota
	// Shared marks a memory block as living in block-shared memory.
	Shared
	// VariableBound marks a memory block whose space is not yet decided;
	// resolved by the MemorySpace choice in the domain model.
	VariableBound
)

//nolint:revive
func (k MemorySpaceKind) String() string {
	switch k {
	case Global:
		return "global"
	case Shared:
		return "shared"
	default:
		return "variable"
	}
}

// MemoryBlock is a contiguous region of memory an instruction can access
// through an AccessPattern: either a kernel-level array (Global), a
// block-local scratch buffer (Shared), or a temporary introduced by a
// lowering and whose space is still to be decided (VariableBound).
type MemoryBlock struct {
	id    MemId
	space MemorySpaceKind
	// size is the byte size of the block, known for Global/Shared blocks
	// declared by the kernel; temporary blocks introduced by a dim-map
	// lowering carry the byte width of the lowered operand's type.
	size uint32
	// uses lists the instructions that access this block, in creation
	// order; used by lower_layout to re-derive each accessing
	// instruction's operand invariants (original_source/src/search_space/dim_map.rs).
	uses []InstId
	// variable is set for a VariableBound block: the Variable this block
	// was allocated to hold.
	variable util.Option[VarId]
}

// NewGlobalMemBlock constructs a kernel-level global memory block.
func NewGlobalMemBlock(id MemId, size uint32) *MemoryBlock {
	return &MemoryBlock{id: id, space: Global, size: size}
}

// NewSharedMemBlock constructs a kernel-level shared memory block.
func NewSharedMemBlock(id MemId, size uint32) *MemoryBlock {
	return &MemoryBlock{id: id, space: Shared, size: size}
}

// NewVariableBoundMemBlock constructs a memory block backing the given
// Variable, whose space is left to the search.
func NewVariableBoundMemBlock(id MemId, v VarId, size uint32) *MemoryBlock {
	return &MemoryBlock{id: id, space: VariableBound, size: size, variable: util.Some(v)}
}

// NewTempMemBlock constructs a memory block introduced by a lowering to
// carry a value between two loop nests, with its space still left to the
// search and no Variable bound yet.
func NewTempMemBlock(id MemId, size uint32) *MemoryBlock {
	return &MemoryBlock{id: id, space: VariableBound, size: size}
}

// Id returns this block's identifier.
func (m *MemoryBlock) Id() MemId {
	return m.id
}

// Space returns the block's statically-known storage class.
func (m *MemoryBlock) Space() MemorySpaceKind {
	return m.space
}

// Size returns the block's byte size.
func (m *MemoryBlock) Size() uint32 {
	return m.size
}

// Uses lists the instructions accessing this block.
func (m *MemoryBlock) Uses() []InstId {
	return m.uses
}

// Variable returns the Variable this block backs, if this is a
// VariableBound block.
func (m *MemoryBlock) Variable() util.Option[VarId] {
	return m.variable
}

// RegisterUse records that inst accesses this block.
func (m *MemoryBlock) RegisterUse(inst InstId) {
	m.uses = append(m.uses, inst)
}
