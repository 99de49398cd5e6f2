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

// InductionDim pairs a dimension an induction variable increments along with
// the per-iteration increment applied on that dimension.
type InductionDim struct {
	Dim       DimId
	Increment Operand
}

// InductionVar is a value accumulated across one or more dimensions, starting
// from a base operand and incremented once per iteration of each of its
// dims (original_source/src/search_space/operand.rs's invariants walk over
// `var.dims()`).
type InductionVar struct {
	id   InductionVarId
	typ  Type
	base Operand
	dims []InductionDim
}

// NewInductionVar constructs an induction variable with the given base value
// and increments.  Returns ErrDuplicateIncrement if the same dimension
// appears twice in dims.
func NewInductionVar(id InductionVarId, typ Type, base Operand, dims []InductionDim) (*InductionVar, error) {
	seen := make(map[DimId]bool, len(dims))

	for _, d := range dims {
		if seen[d.Dim] {
			return nil, ErrDuplicateIncrement(d.Dim)
		}

		seen[d.Dim] = true
	}

	ds := append([]InductionDim(nil), dims...)

	return &InductionVar{id: id, typ: typ, base: base, dims: ds}, nil
}

// Id returns this induction variable's identifier.
func (v *InductionVar) Id() InductionVarId {
	return v.id
}

// Type returns this induction variable's type.
func (v *InductionVar) Type() Type {
	return v.typ
}

// Base returns the operand this variable is initialized from.
func (v *InductionVar) Base() Operand {
	return v.base
}

// Dims returns the (dimension, increment) pairs this variable accumulates
// over.
func (v *InductionVar) Dims() []InductionDim {
	return v.dims
}
