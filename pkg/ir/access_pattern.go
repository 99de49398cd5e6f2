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

import "github.com/telamon-project/telamon/pkg/util/collection/set"

// AccessPattern describes how an instruction accesses a memory block: either
// with no statically known stride (Unknown) or with a fixed per-dimension
// stride (Tensor), mirroring original_source/src/ir/access_pattern.rs.
type AccessPattern struct {
	mem    MemId
	tensor bool
	// strides holds, for a Tensor pattern, the byte stride on each
	// dimension the access depends on.  Nil for an Unknown pattern.
	strides map[DimId]Size
}

// UnknownPattern constructs an access pattern with no statically known
// stride.
func UnknownPattern(mem MemId) AccessPattern {
	return AccessPattern{mem: mem}
}

// TensorPattern constructs an access pattern with a fixed per-dimension
// stride.  Dimensions not present in strides are not accessed by this
// pattern.
func TensorPattern(mem MemId, strides map[DimId]Size) AccessPattern {
	s := make(map[DimId]Size, len(strides))
	for k, v := range strides {
		s[k] = v
	}

	return AccessPattern{mem: mem, tensor: true, strides: s}
}

// MemBlock returns the memory block accessed by this pattern.
func (p AccessPattern) MemBlock() MemId {
	return p.mem
}

// IsTensor reports whether this is a Tensor (fixed-stride) pattern.
func (p AccessPattern) IsTensor() bool {
	return p.tensor
}

// Stride returns the stride on the given dimension and whether the pattern
// depends on that dimension at all.
func (p AccessPattern) Stride(dim DimId) (Size, bool) {
	if !p.tensor {
		return Size{}, false
	}

	s, ok := p.strides[dim]

	return s, ok
}

// IsConsecutive indicates whether accesses on the given dimension touch
// consecutive elements of type t: that is, the stride on dim equals t's byte
// width.
func (p AccessPattern) IsConsecutive(dim DimId, t Type) bool {
	if !p.tensor {
		return false
	}

	s, ok := p.strides[dim]
	if !ok || !s.IsKnown() {
		return false
	}

	return s.Value() == t.BitWidth()/8
}

// Check ensures the access pattern only refers to dimensions the accessing
// instruction actually iterates over.
func (p AccessPattern) Check(iterDims *set.SortedSet[DimId]) error {
	if !p.tensor {
		return nil
	}

	for dim := range p.strides {
		if !iterDims.Contains(dim) {
			return ErrInvalidDimInPattern(dim)
		}
	}

	return nil
}
