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

import "fmt"

// Size represents either a statically-known or a dynamically-determined
// extent, used both for a Dimension's size expression and for a Tensor
// AccessPattern's per-dimension stride (original_source/src/ir/access_pattern.rs
// makes the same distinction via its Stride{Int|Unknown} enum).
type Size struct {
	known bool
	value uint32
}

// ConstSize constructs a statically-known size.
func ConstSize(value uint32) Size {
	return Size{true, value}
}

// UnknownSize constructs a size which is not statically known.
func UnknownSize() Size {
	return Size{false, 0}
}

// IsKnown indicates whether this size is statically known.
func (s Size) IsKnown() bool {
	return s.known
}

// Value returns the statically-known value, panicking if the size is unknown.
func (s Size) Value() uint32 {
	if !s.known {
		panic("size is not statically known")
	}

	return s.value
}

//nolint:revive
func (s Size) String() string {
	if !s.known {
		return "?"
	}

	return fmt.Sprintf("%d", s.value)
}

// PossibleSizes is the dimension-level analogue of Size: the set of sizes a
// dimension could still take, or "None" if the dimension is dynamically
// sized (spec.md S3: "possible_sizes: Option<Set<u32>>").  The slice holds
// the sizes in the order given to KnownSizes; it is neither sorted nor
// deduplicated.
type PossibleSizes struct {
	dynamic bool
	values  []uint32
}

// KnownSizes constructs a PossibleSizes holding a concrete, non-empty set of
// admissible sizes.
func KnownSizes(values ...uint32) PossibleSizes {
	vs := append([]uint32(nil), values...)

	return PossibleSizes{false, vs}
}

// DynamicSize constructs a PossibleSizes representing a dynamically-sized
// dimension (the "None" case).
func DynamicSize() PossibleSizes {
	return PossibleSizes{true, nil}
}

// IsDynamic indicates whether this dimension has no statically bounded set of
// possible sizes.
func (p PossibleSizes) IsDynamic() bool {
	return p.dynamic
}

// Values returns the admissible sizes, panicking if this is dynamic.
func (p PossibleSizes) Values() []uint32 {
	if p.dynamic {
		panic("dimension is dynamically sized")
	}

	return p.values
}
