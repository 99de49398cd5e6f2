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

// VarDefMode is the domain of possible ways a Variable's value can still be
// made available to its users: kept inline in registers, spilled through an
// explicit memory-backed layout (the ir.MemoryBlock/ir.Variable.Layout
// machinery), or either depending on later decisions.
type VarDefMode Flags

const (
	// InRegister keeps the variable's value in registers for its whole
	// lifetime; no MemoryBlock is ever allocated for it.
	InRegister VarDefMode = 1 << iota
	// InMemory backs the variable with a MemoryBlock and an explicit
	// layout, as introduced by Function.LowerLayout.
	InMemory
)

// VarDefModeAll is the universe of VarDefMode.
const VarDefModeAll = InRegister | InMemory

// IsEmpty reports whether no mode remains possible.
func (m VarDefMode) IsEmpty() bool { return Flags(m).IsEmpty() }

// IsSingleton reports whether the mode is fully decided.
func (m VarDefMode) IsSingleton() bool { return Flags(m).IsSingleton() }

// Contains reports whether every mode in other remains possible under m.
func (m VarDefMode) Contains(other VarDefMode) bool { return Flags(m).Contains(Flags(other)) }

// Intersect narrows m to the modes also present in other.
func (m VarDefMode) Intersect(other VarDefMode) (VarDefMode, bool) {
	n, changed := Flags(m).Intersect(Flags(other))

	return VarDefMode(n), changed
}

//nolint:revive
func (m VarDefMode) String() string { return Flags(m).String() }
