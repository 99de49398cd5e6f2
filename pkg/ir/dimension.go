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

import (
	"github.com/telamon-project/telamon/pkg/util/collection/set"
)

// Dimension is an iteration range with an optional size expression.  A
// dimension whose PossibleSizes is dynamic has no statically bounded size
// (spec.md S3).
type Dimension struct {
	id            DimId
	stmt          StmtId
	possibleSizes PossibleSizes
	// notMerged records dimensions this one is known not to be merged with,
	// set by the dim_not_merged trigger (T2, spec.md S4.4).  Purely
	// informational: it does not feed back into constraint propagation, but
	// is useful for explaining IR structure and for the idempotence tests
	// of spec.md S8.
	notMerged []DimId
	// definedVars / usedVars track SSA-like variable flow through this
	// dimension, satisfying invariant 3 of spec.md S3.
	definedVars set.SortedSet[VarId]
	usedVars    set.SortedSet[VarId]
	// possibleRanks holds the admissible layout ranks for a dimension that is
	// also a layout dimension of some Variable (see Variable.layout).  Empty
	// for ordinary iteration dimensions.
	possibleRanks []uint32
}

// Id returns this dimension's identifier.
func (d *Dimension) Id() DimId {
	return d.id
}

// PossibleSizes returns the dimension's admissible size set.
func (d *Dimension) PossibleSizes() PossibleSizes {
	return d.possibleSizes
}

// PossibleRanks returns the admissible layout ranks for this dimension, if it
// is used as a layout dimension (original_source/src/search_space/mod.rs:
// "possible_ranks()" on a layout dimension).
func (d *Dimension) PossibleRanks() []uint32 {
	return d.possibleRanks
}

// NotMerged reports whether this dimension has been recorded as definitely
// not merged with the given one (trigger T2).
func (d *Dimension) NotMerged(other DimId) bool {
	for _, id := range d.notMerged {
		if id == other {
			return true
		}
	}

	return false
}

// StmtId returns the StmtId wrapping this dimension.
func (d *Dimension) StmtId() StmtId {
	return d.stmt
}

// DefinedVars lists the variables defined at this statement.
func (d *Dimension) DefinedVars() *set.SortedSet[VarId] {
	return &d.definedVars
}

// UsedVars lists the variables used at this statement.
func (d *Dimension) UsedVars() *set.SortedSet[VarId] {
	return &d.usedVars
}

// RegisterDefinedVar records that this dimension defines the given variable.
func (d *Dimension) RegisterDefinedVar(v VarId) {
	d.definedVars.Insert(v)
}

// RegisterUsedVar records that this dimension uses the given variable.
func (d *Dimension) RegisterUsedVar(v VarId) {
	d.usedVars.Insert(v)
}
