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

// Package action defines Action, the decision values produced by operand
// invariants and by the search itself, and consumed by the constraint
// engine's apply_action.  Kept in its own package (rather than alongside
// either pkg/operand or pkg/engine) so the two can depend on it without
// depending on each other, mirroring how
// original_source/src/search_space/{operand,dim_map}.rs both reach into the
// single telamon-gen-generated `choices` module for Action instead of
// depending on one another.
package action

import (
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
)

// Kind discriminates the Action sum type.
type Kind uint8

const (
	// KindOrder restricts the Order domain between two statements.
	KindOrder Kind = iota
	// KindDimKind restricts a dimension's DimKind domain.
	KindDimKind
	// KindMemSpace restricts a memory block's MemorySpace domain.
	KindMemSpace
	// KindDimMapping restricts the DimMapping domain between two
	// dimensions.
	KindDimMapping
	// KindThreadMapping restricts the ThreadMapping domain between two
	// dimensions.
	KindThreadMapping
	// KindInstFlag restricts an instruction's InstFlag domain.
	KindInstFlag
	// KindRank restricts a layout dimension's Rank domain.
	KindRank
	// KindVarDefMode restricts a variable's VarDefMode domain.
	KindVarDefMode
	// KindIsInstantiated restricts a dimension's IsInstantiated domain.
	KindIsInstantiated
)

// Action is a single narrowing to apply to one domain slot of a DomainStore.
type Action struct {
	kind Kind

	stmtA, stmtB ir.StmtId
	dimA, dimB   ir.DimId
	mem          ir.MemId
	inst         ir.InstId
	variable     ir.VarId
	layoutDim    ir.LayoutDimId

	order         domain.Order
	dimKind       domain.DimKind
	memSpace      domain.MemorySpace
	dimMapping    domain.DimMapping
	threadMapping domain.ThreadMapping
	instFlag      domain.InstFlag
	rank          domain.NumericSet
	varDefMode    domain.VarDefMode
	instantiated  domain.IsInstantiated
}

// Kind returns which domain this action narrows.
func (a Action) Kind() Kind { return a.kind }

// OrderAction restricts the Order domain between a and b, as seen from a.
func OrderAction(a, b ir.StmtId, o domain.Order) Action {
	return Action{kind: KindOrder, stmtA: a, stmtB: b, order: o}
}

// Order returns the endpoints and restriction of a KindOrder action.
func (a Action) Order() (ir.StmtId, ir.StmtId, domain.Order) {
	return a.stmtA, a.stmtB, a.order
}

// DimKindAction restricts dim's DimKind domain.
func DimKindAction(dim ir.DimId, k domain.DimKind) Action {
	return Action{kind: KindDimKind, dimA: dim, dimKind: k}
}

// DimKind returns the dimension and restriction of a KindDimKind action.
func (a Action) DimKind() (ir.DimId, domain.DimKind) {
	return a.dimA, a.dimKind
}

// MemSpaceAction restricts mem's MemorySpace domain.
func MemSpaceAction(mem ir.MemId, s domain.MemorySpace) Action {
	return Action{kind: KindMemSpace, mem: mem, memSpace: s}
}

// MemSpace returns the memory block and restriction of a KindMemSpace
// action.
func (a Action) MemSpace() (ir.MemId, domain.MemorySpace) {
	return a.mem, a.memSpace
}

// DimMappingAction restricts the DimMapping domain between dims a and b.
func DimMappingAction(lhs, rhs ir.DimId, m domain.DimMapping) Action {
	return Action{kind: KindDimMapping, dimA: lhs, dimB: rhs, dimMapping: m}
}

// DimMapping returns the endpoints and restriction of a KindDimMapping
// action.
func (a Action) DimMapping() (ir.DimId, ir.DimId, domain.DimMapping) {
	return a.dimA, a.dimB, a.dimMapping
}

// ThreadMappingAction restricts the ThreadMapping domain between dims a and
// b.
func ThreadMappingAction(lhs, rhs ir.DimId, m domain.ThreadMapping) Action {
	return Action{kind: KindThreadMapping, dimA: lhs, dimB: rhs, threadMapping: m}
}

// ThreadMapping returns the endpoints and restriction of a
// KindThreadMapping action.
func (a Action) ThreadMapping() (ir.DimId, ir.DimId, domain.ThreadMapping) {
	return a.dimA, a.dimB, a.threadMapping
}

// InstFlagAction restricts inst's InstFlag domain.
func InstFlagAction(inst ir.InstId, f domain.InstFlag) Action {
	return Action{kind: KindInstFlag, inst: inst, instFlag: f}
}

// InstFlag returns the instruction and restriction of a KindInstFlag action.
func (a Action) InstFlag() (ir.InstId, domain.InstFlag) {
	return a.inst, a.instFlag
}

// RankAction restricts a layout dimension's Rank domain.
func RankAction(id ir.LayoutDimId, r domain.NumericSet) Action {
	return Action{kind: KindRank, layoutDim: id, rank: r}
}

// Rank returns the layout dimension and restriction of a KindRank action.
func (a Action) Rank() (ir.LayoutDimId, domain.NumericSet) {
	return a.layoutDim, a.rank
}

// VarDefModeAction restricts v's VarDefMode domain.
func VarDefModeAction(v ir.VarId, m domain.VarDefMode) Action {
	return Action{kind: KindVarDefMode, variable: v, varDefMode: m}
}

// VarDefMode returns the variable and restriction of a KindVarDefMode
// action.
func (a Action) VarDefMode() (ir.VarId, domain.VarDefMode) {
	return a.variable, a.varDefMode
}

// IsInstantiatedAction restricts dim's IsInstantiated domain.
func IsInstantiatedAction(dim ir.DimId, v domain.IsInstantiated) Action {
	return Action{kind: KindIsInstantiated, dimA: dim, instantiated: v}
}

// IsInstantiated returns the dimension and restriction of a
// KindIsInstantiated action.
func (a Action) IsInstantiated() (ir.DimId, domain.IsInstantiated) {
	return a.dimA, a.instantiated
}
