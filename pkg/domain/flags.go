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

// Package domain implements the finite-domain lattice every search-space
// choice narrows over: a small set of bitflag domains backed by plain
// unsigned integers, plus NumericSet, a larger fixed-universe domain backed
// by github.com/bits-and-blooms/bitset for the choices (Rank, thread-block
// sizes, unrolling factors, ...) whose universe can exceed a machine word.
package domain

import "fmt"

// Flags is a small closed lattice over a bitmask of at most 32 named values,
// used for every search-space choice whose universe is tiny and known at
// compile time (DimKind, Order, MemorySpace, InstFlag, ThreadMapping,
// DimMapping, Bool, IsInstantiated, VarDefMode).  The empty Flags(0) is the
// infeasible ("dead") domain; a singleton bit is a fully decided choice.
type Flags uint32

// IsEmpty reports whether no value remains possible: the choice is
// infeasible and the branch must be pruned (spec.md S4.3's ErrDead).
func (f Flags) IsEmpty() bool {
	return f == 0
}

// IsSingleton reports whether exactly one value remains possible: the choice
// is fully decided.
func (f Flags) IsSingleton() bool {
	return f != 0 && f&(f-1) == 0
}

// Contains reports whether every bit of other is set in f (other is a subset
// of f's remaining possibilities).
func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

// Intersect narrows f to the values also present in other, returning the
// narrowed domain and whether anything was actually removed.  Monotone:
// Intersect never adds bits, satisfying the narrowing-only invariant of
// spec.md S4.3.
func (f Flags) Intersect(other Flags) (Flags, bool) {
	narrowed := f & other

	return narrowed, narrowed != f
}

// Union merges two flag sets, used to compute the weakest upper bound of two
// branches (e.g. when restoring a domain after a failed speculative
// narrowing).
func (f Flags) Union(other Flags) Flags {
	return f | other
}

// Equal reports whether two flag domains hold exactly the same bits.
func (f Flags) Equal(other Flags) bool {
	return f == other
}

//nolint:revive
func (f Flags) String() string {
	return fmt.Sprintf("%#x", uint32(f))
}
