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
package domain

// MemorySpace is the domain of possible storage classes for a
// VariableBound MemoryBlock: device-global or block-shared memory.  Grounded
// on original_source/src/search_space/mod.rs::array_memory_space and
// dim_map.rs's `Action::MemSpace(..., MemSpace::SHARED)`.
type MemorySpace Flags

const (
	// SpaceGlobal restricts a memory block to device-global memory.
	SpaceGlobal MemorySpace = 1 << iota
	// SpaceShared restricts a memory block to block-shared memory.
	SpaceShared
)

// MemorySpaceAll is the universe of MemorySpace.
const MemorySpaceAll = SpaceGlobal | SpaceShared

// IsEmpty reports whether no storage class remains possible.
func (m MemorySpace) IsEmpty() bool { return Flags(m).IsEmpty() }

// IsSingleton reports whether the storage class is fully decided.
func (m MemorySpace) IsSingleton() bool { return Flags(m).IsSingleton() }

// Contains reports whether every class in other remains possible under m.
func (m MemorySpace) Contains(other MemorySpace) bool { return Flags(m).Contains(Flags(other)) }

// Intersect narrows m to the classes also present in other.
func (m MemorySpace) Intersect(other MemorySpace) (MemorySpace, bool) {
	n, changed := Flags(m).Intersect(Flags(other))

	return MemorySpace(n), changed
}

//nolint:revive
func (m MemorySpace) String() string { return Flags(m).String() }
