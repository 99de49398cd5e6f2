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

// Statement is the contract shared by Instruction and Dimension: anything
// that can be nested in a loop, defines or uses variables, and carries a
// StmtId comparable across both kinds (spec.md S4.1).
type Statement interface {
	// StmtId returns this statement's identity and creation order.
	StmtId() StmtId
	// DefinedVars returns the variables this statement defines.
	DefinedVars() *set.SortedSet[VarId]
	// UsedVars returns the variables this statement uses.
	UsedVars() *set.SortedSet[VarId]
	// AsInst returns the underlying Instruction and true, or (nil, false) if
	// this statement is a Dimension.
	AsInst() (*Instruction, bool)
	// AsDim returns the underlying Dimension and true, or (nil, false) if
	// this statement is an Instruction.
	AsDim() (*Dimension, bool)
	// RegisterDefinedVar records that this statement defines v.
	RegisterDefinedVar(v VarId)
}

// AsInst implements Statement for Dimension: a dimension is never an
// instruction.
func (d *Dimension) AsInst() (*Instruction, bool) {
	return nil, false
}

// AsDim implements Statement for Dimension.
func (d *Dimension) AsDim() (*Dimension, bool) {
	return d, true
}

var _ Statement = (*Dimension)(nil)
