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

// ThreadMapping is the domain of ways two Thread-kind dimensions can still
// relate to each other: mapped to the exact same thread index, mapped but to
// a different index (so cross-thread communication is needed), or not
// thread-mapped at all (one or both dims are not DimKind::Thread).  This is
// the dimension-pair analogue of DimMapping, which instead governs a single
// DimMap operand.
type ThreadMapping Flags

const (
	// MappedSame means both dimensions are mapped to the same thread
	// index: no cross-thread communication is needed between them.
	MappedSame ThreadMapping = 1 << iota
	// MappedOut means both dimensions are thread-mapped but to distinct
	// indices.
	MappedOut
	// NotThreadMapped means at least one of the two dimensions is not
	// mapped to threads, so this relation does not apply.
	NotThreadMapped
)

// ThreadMappingAll is the universe of ThreadMapping.
const ThreadMappingAll = MappedSame | MappedOut | NotThreadMapped

// IsEmpty reports whether no relation remains possible.
func (t ThreadMapping) IsEmpty() bool { return Flags(t).IsEmpty() }

// IsSingleton reports whether the relation is fully decided.
func (t ThreadMapping) IsSingleton() bool { return Flags(t).IsSingleton() }

// Contains reports whether every relation in other remains possible under t.
func (t ThreadMapping) Contains(other ThreadMapping) bool { return Flags(t).Contains(Flags(other)) }

// Intersect narrows t to the relations also present in other.
func (t ThreadMapping) Intersect(other ThreadMapping) (ThreadMapping, bool) {
	n, changed := Flags(t).Intersect(Flags(other))

	return ThreadMapping(n), changed
}

//nolint:revive
func (t ThreadMapping) String() string { return Flags(t).String() }
