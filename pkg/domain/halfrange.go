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

// HalfRange is the domain [0, Max]: a numeric upper bound that can only ever
// be narrowed downward.  It is the coarse-grained counterpart of NumericSet,
// used where tracking every individual admissible value is unnecessary
// overhead and only the bound itself is ever tested (e.g. an intermediate
// bound on unrolling factor before NewLeq turns it into an explicit
// NumericSet, as process_lowering does for Rank in
// original_source/src/search_space/mod.rs).
type HalfRange struct {
	max uint32
}

// NewHalfRange constructs the domain [0, max].
func NewHalfRange(max uint32) HalfRange {
	return HalfRange{max: max}
}

// Max returns the current upper bound.
func (r HalfRange) Max() uint32 {
	return r.max
}

// IsEmpty reports whether the range has collapsed below zero admissible
// values; a HalfRange is only ever empty if it was narrowed past its
// initialized [0, max] invariant, which Intersect never does, so this always
// returns false. Present for interface symmetry with the other domains.
func (r HalfRange) IsEmpty() bool {
	return false
}

// Intersect narrows r to the tighter of the two bounds.
func (r HalfRange) Intersect(other HalfRange) (HalfRange, bool) {
	if other.max < r.max {
		return HalfRange{max: other.max}, true
	}

	return r, false
}

// Contains reports whether value is still an admissible bound, i.e. value <=
// Max.
func (r HalfRange) Contains(value uint32) bool {
	return value <= r.max
}
