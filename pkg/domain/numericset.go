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

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// NumericSet is the domain of admissible values for a choice whose universe
// can exceed a single machine word's worth of bits: a layout dimension's
// Rank, or a thread-block/unrolling factor drawn from a Dimension's
// PossibleSizes.  Backed by github.com/bits-and-blooms/bitset rather than
// Flags so the universe size is not hard-capped at 32/64.
type NumericSet struct {
	universe uint
	bits     *bitset.BitSet
}

// NewNumericSet constructs the empty NumericSet over a universe of the given
// size (values 0..universe-1).
func NewNumericSet(universe uint) NumericSet {
	return NumericSet{universe: universe, bits: bitset.New(universe)}
}

// NewFull constructs a NumericSet in which every value of the universe is
// admissible.
func NewFull(universe uint) NumericSet {
	s := NewNumericSet(universe)
	for i := uint(0); i < universe; i++ {
		s.bits.Set(i)
	}

	return s
}

// NewLeq constructs a NumericSet restricted to the values <= bound within
// the given universe, mirroring
// original_source/src/search_space/mod.rs::process_lowering's
// `NumericSet::new_leq(universe, num_mem_dims, &())` call used to seed a
// freshly allocated layout dimension's Rank domain.
func NewLeq(universe, bound uint) NumericSet {
	s := NewNumericSet(universe)

	for i := uint(0); i <= bound && i < universe; i++ {
		s.bits.Set(i)
	}

	return s
}

// NewSingleton constructs a NumericSet admitting exactly one value.
func NewSingleton(universe, value uint) NumericSet {
	s := NewNumericSet(universe)
	s.bits.Set(value)

	return s
}

// Universe returns the size of the universe this set is drawn from.
func (s NumericSet) Universe() uint {
	return s.universe
}

// IsEmpty reports whether no value remains admissible.
func (s NumericSet) IsEmpty() bool {
	return s.bits.None()
}

// Contains reports whether value is currently admissible.
func (s NumericSet) Contains(value uint) bool {
	return s.bits.Test(value)
}

// Count returns the number of admissible values.
func (s NumericSet) Count() uint {
	return s.bits.Count()
}

// Clone returns an independent copy of s.
func (s NumericSet) Clone() NumericSet {
	return NumericSet{universe: s.universe, bits: s.bits.Clone()}
}

// Intersect narrows s to the values also present in other, returning the
// narrowed set and whether anything was removed.  Panics if the two sets are
// not drawn from the same universe.
func (s NumericSet) Intersect(other NumericSet) (NumericSet, bool) {
	if s.universe != other.universe {
		panic("domain: cannot intersect NumericSets over different universes")
	}

	before := s.bits.Count()
	narrowed := s.bits.Clone()
	narrowed.InPlaceIntersection(other.bits)

	return NumericSet{universe: s.universe, bits: narrowed}, narrowed.Count() != before
}

// RestrictLeq narrows s to the values <= bound, returning whether anything
// was removed.
func (s NumericSet) RestrictLeq(bound uint) (NumericSet, bool) {
	return s.Intersect(NewLeq(s.universe, bound))
}

// Values returns the admissible values in ascending order.
func (s NumericSet) Values() []uint {
	values := make([]uint, 0, s.bits.Count())

	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, i)
	}

	return values
}

//nolint:revive
func (s NumericSet) String() string {
	var b strings.Builder

	b.WriteString("{")

	first := true

	for _, v := range s.Values() {
		if !first {
			b.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&b, "%d", v)
	}

	b.WriteString("}")

	return b.String()
}
