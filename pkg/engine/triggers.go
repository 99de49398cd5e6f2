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
package engine

import (
	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/operand"
	"github.com/telamon-project/telamon/pkg/store"
	log "github.com/sirupsen/logrus"
)

// DimNotMapped is trigger T1: fired once the DimMapping domain between lhs
// and rhs has narrowed to admit only MemLowered, it lowers every Inst
// operand whose DimMap still relates the pair through an explicit store/load
// pair, and re-derives the resulting instructions' invariants.  Grounded on
// original_source/src/search_space/dim_map.rs::dim_not_mapped /
// lower_dim_map.
func DimNotMapped(lhs, rhs ir.DimId, fun *ir.Function, dom *store.DomainStore, diff *store.DomainDiff, policy MemoryPolicy) ([]action.Action, error) {
	log.Debugf("dim_not_mapped(%s, %s) triggered", lhs, rhs)

	targets := fun.DimMapsToLower(lhs, rhs)

	var actions []action.Action

	for _, target := range targets {
		lowered, err := fun.LowerDimMap(target.Inst, target.Operand)
		if err != nil {
			return nil, err
		}

		follow, err := lowerDimMapActions(fun, dom, diff, target.Inst, target.Operand, lowered, policy)
		if err != nil {
			return nil, err
		}

		actions = append(actions, follow...)
	}

	return actions, nil
}

func lowerDimMapActions(fun *ir.Function, dom *store.DomainStore, diff *store.DomainDiff, instID ir.InstId, operandIdx int, lowered *ir.LoweredDimMap, policy MemoryPolicy) ([]action.Action, error) {
	var actions []action.Action

	for _, pair := range lowered.MemDimensions() {
		srcStmt := fun.Dim(pair.Lhs).StmtId()
		dstStmt := fun.Dim(pair.Rhs).StmtId()
		actions = append(actions, action.OrderAction(srcStmt, dstStmt, domain.Before|domain.Merged))
	}

	// A newly introduced temporary is never allowed to live in
	// device-global memory unless the Device opts in (SPEC_FULL.md open
	// question 1); the dummy device and every device that does not
	// implement MemoryPolicy keep the original's hard-coded restriction.
	memSpace := domain.SpaceShared
	if allowsGlobalTemp(policy) {
		memSpace = domain.SpaceGlobal | domain.SpaceShared
	}

	actions = append(actions, action.MemSpaceAction(lowered.Mem, memSpace))
	actions = append(actions, action.OrderAction(fun.Inst(lowered.Store).StmtId(), fun.Inst(lowered.Load).StmtId(), domain.Before))

	// The rewritten operand is read only now, after LowerDimMap has already
	// replaced it in place, mirroring original_source's own
	// `fun.inst(inst).operands()[operand]` read taken after the mutation.
	op := fun.Inst(instID).Operands()[operandIdx]
	actions = append(actions, operand.Invariants(fun, op, fun.Inst(instID).StmtId())...)

	// Pipe the lowering's new objects (temp mem block, store, load, their
	// dims) through process_lowering so the store gets allocated and seeded
	// for them before any of the actions above touching those ids is ever
	// applied (spec.md S4.4 step: "Every trigger that creates new objects
	// must pipe them through process_lowering").
	var delta ir.NewObjs
	lowered.RegisterNewObjs(&delta)

	more, err := ProcessLowering(fun, dom, &delta, diff)
	if err != nil {
		return nil, err
	}

	actions = append(actions, more...)

	log.Debugf("lower_dim_map actions: %d", len(actions))

	return actions, nil
}

// DimNotMerged is trigger T2: fired once the ThreadMapping domain between
// lhs and rhs has narrowed to NotThreadMapped, it records that the two
// dimensions are structurally known never to merge into a single loop.
// Purely informational (no further actions), grounded on
// original_source/src/search_space/dim_map.rs::dim_not_merged.
func DimNotMerged(lhs, rhs ir.DimId, fun *ir.Function) {
	log.Debugf("dim_not_merged(%s, %s) triggered", lhs, rhs)
	fun.DimNotMerged(lhs, rhs)
}

// LowerLayout is trigger T3: commits a memory block's layout to explicit
// store/load dimension lists, restricting every dimension but the innermost
// away from vectorization (temporary loads/stores are not otherwise known to
// the vectorization constraint) before re-deriving the invariants of every
// instruction using the memory block.  ApplyDecisions never fires it on its
// own; callers invoke it directly with the dimensions to use. Grounded on
// original_source/src/search_space/dim_map.rs::lower_layout.
func LowerLayout(fun *ir.Function, dom *store.DomainStore, mem ir.MemId, stDims, ldDims []ir.DimId) ([]action.Action, error) {
	log.Debugf("lower_layout(%s) triggered", mem)

	var actions []action.Action

	for i := 0; i < len(stDims)-1 && i < len(ldDims)-1; i++ {
		st := stDims[len(stDims)-2-i]
		ld := ldDims[len(ldDims)-2-i]
		actions = append(actions, action.DimKindAction(st, domain.DimKindAll&^domain.Vector))
		actions = append(actions, action.DimKindAction(ld, domain.DimKindAll&^domain.Vector))
	}

	fun.LowerLayout(mem, stDims, ldDims)

	for _, instID := range fun.MemBlock(mem).Uses() {
		actions = append(actions, operand.InstInvariants(fun, fun.Inst(instID))...)
	}

	return actions, nil
}

// AddIterationDim is trigger T4a: sets dim as an iteration dimension of
// inst, returning the NewObjs delta if this was a new addition so the caller
// can run ProcessLowering on it. Grounded on
// original_source/src/search_space/mod.rs::add_iteration_dim.
func AddIterationDim(fun *ir.Function, inst ir.InstId, dim ir.DimId) *ir.NewObjs {
	log.Debugf("set %s as iteration dim of inst %s", dim, inst)

	delta := &ir.NewObjs{}
	if fun.SetIterationDim(inst, dim) {
		delta.AddIterationDim(inst, dim)
	}

	return delta
}

// AddThreadDim is trigger T4b: adds dim to the function's thread dimensions,
// returning the NewObjs delta if this was a new addition. Grounded on
// original_source/src/search_space/mod.rs::add_thread_dim.
func AddThreadDim(fun *ir.Function, dim ir.DimId) *ir.NewObjs {
	log.Debugf("set %s as a thread dimension", dim)

	delta := &ir.NewObjs{}
	if fun.AddThreadDim(dim) {
		delta.AddThreadDim(dim)
	}

	return delta
}

// ProcessLowering allocates domain slots for the objects in delta, seeds
// them, re-derives invariants for the new instructions, and manually
// restricts the Rank domain of any newly memory-bound variable's layout
// dimensions to the number of dimensions actually contributing to that
// memory block's layout -- the one piece of constraint propagation
// telamon-gen would otherwise have generated automatically and which is
// hand-maintained here instead (SPEC_FULL.md open question 2). Grounded on
// original_source/src/search_space/mod.rs::process_lowering.
func ProcessLowering(fun *ir.Function, dom *store.DomainStore, delta *ir.NewObjs, diff *store.DomainDiff) ([]action.Action, error) {
	log.Debugf("adding objects %+v", delta)

	dom.Alloc(fun, delta)

	actions, err := InitDomainPartial(dom, fun, delta, diff)
	if err != nil {
		return nil, err
	}

	for _, varID := range delta.MemoryVars {
		v := fun.Variable(varID)

		memOpt := v.MemBlock()
		if !memOpt.HasValue() {
			continue
		}

		numMemDims := dom.NumMemDims(memOpt.Unwrap())

		for _, layoutID := range v.Layout() {
			layoutDim := fun.LayoutDimension(layoutID)

			universe := uint(0)
			if !layoutDim.PossibleSizes().IsDynamic() {
				universe = uint(len(layoutDim.PossibleSizes().Values())) + 1
			}

			ranks := domain.NewLeq(universe, uint(numMemDims.Max()))
			actions = append(actions, action.RankAction(layoutID, ranks))
		}
	}

	return actions, nil
}
