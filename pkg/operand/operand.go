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

// Package operand derives the Action list implied by the mere structural
// presence of an Operand, independent of any search decision: an Inst
// operand forces its DimMap's dimensions to be ordered and forces the
// source instruction to run before its user; an Index operand forces its
// dimension to contain the user; an InductionVar operand recurses into its
// base and forces each of its dimensions to contain the user.  Grounded on
// original_source/src/search_space/operand.rs.
package operand

import (
	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
)

// Invariants generates the actions needed to enforce op's structural
// invariants, given that it is used by the statement identified by user.
func Invariants(fun *ir.Function, op ir.Operand, user ir.StmtId) []action.Action {
	switch {
	case op.IsInt(), op.IsFloat(), op.IsParam(), op.IsAddr(), op.IsVariable():
		return nil

	case op.IsInst():
		return instOperandInvariants(fun, op, user)

	case op.IsIndex():
		dim := op.Dim()

		return []action.Action{action.OrderAction(ir.NewDimStmtId(dim, fun.Dim(dim).StmtId().Seq()), user, domain.Outer)}

	case op.IsInductionVar():
		return inductionVarInvariants(fun, op, user)

	default:
		return nil
	}
}

func instOperandInvariants(fun *ir.Function, op ir.Operand, user ir.StmtId) []action.Action {
	src, dimMap, scope := op.Source()

	order := domain.Before | domain.Merged

	var actions []action.Action

	for _, pair := range dimMap {
		lhsStmt := fun.Dim(pair.Lhs).StmtId()
		rhsStmt := fun.Dim(pair.Rhs).StmtId()

		actions = append(actions, action.OrderAction(lhsStmt, rhsStmt, order))

		var mapping domain.DimMapping

		switch scope.Kind() {
		case ir.ScopeLocal:
			mapping = domain.UnrollMap
		case ir.ScopeThread:
			mapping = domain.UnrollMap | domain.Mapped
		default:
			mapping = domain.DimMappingAll
		}

		actions = append(actions, action.DimMappingAction(pair.Lhs, pair.Rhs, mapping))

		// A dimension with no statically bounded size cannot be realized
		// through a temporary of known size, so it must be merged with
		// its counterpart; restrict to Merged alone in that case.
		//
		// TODO(global-scope): allow a dynamically sized temporary when
		// the scope is Global, once the device model can size it.
		if fun.Dim(pair.Lhs).PossibleSizes().IsDynamic() {
			actions = append(actions, action.OrderAction(lhsStmt, rhsStmt, domain.Merged))
		}
	}

	srcStmt := fun.Inst(src).StmtId()
	actions = append(actions, action.OrderAction(srcStmt, user, domain.Before))

	return actions
}

func inductionVarInvariants(fun *ir.Function, op ir.Operand, user ir.StmtId) []action.Action {
	id, base := op.InductionVar()
	v := fun.InductionVarRef(id)

	actions := Invariants(fun, base, user)

	for _, d := range v.Dims() {
		dimStmt := fun.Dim(d.Dim).StmtId()
		actions = append(actions, Invariants(fun, v.Base(), dimStmt)...)
		actions = append(actions, action.OrderAction(dimStmt, user, domain.Outer))
	}

	return actions
}

// InstInvariants generates the invariants of every operand of inst.
func InstInvariants(fun *ir.Function, inst *ir.Instruction) []action.Action {
	var actions []action.Action

	for _, op := range inst.Operands() {
		actions = append(actions, Invariants(fun, op, inst.StmtId())...)
	}

	return actions
}
