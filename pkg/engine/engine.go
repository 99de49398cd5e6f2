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

// Package engine implements constraint propagation over a DomainStore: an
// action worklist (apply_decisions), the per-kind narrowing rule
// (apply_action), domain seeding (init_domain / init_domain_partial) and the
// structural lowering triggers (dim_not_mapped, dim_not_merged, lower_layout,
// add_iteration_dim/add_thread_dim) a telamon-gen-generated `choices` module
// would otherwise emit, hand-written here since the generator is out of
// scope (SPEC_FULL.md open question 2). Grounded on
// original_source/src/search_space/{mod,dim_map}.rs.
package engine

import (
	"errors"
	"fmt"

	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/operand"
	"github.com/telamon-project/telamon/pkg/store"
	"github.com/telamon-project/telamon/pkg/util/collection/queue"
	log "github.com/sirupsen/logrus"
)

// ErrDead is returned whenever a narrowing empties a domain: the branch of
// the search tree being explored admits no valid implementation and must be
// pruned, matching the Result<_, ()> dead-end convention of
// original_source/src/search_space/mod.rs's apply_action/apply_decisions.
var ErrDead = errors.New("engine: decision leaves an empty domain, branch is dead")

// MemoryPolicy is the one Device capability the constraint engine itself
// consults (SPEC_FULL.md open question 1): whether a lowering-introduced
// temporary is allowed to live in global memory rather than being forced
// into shared memory.  Declared locally (rather than importing pkg/device)
// so the engine stays below device in the package graph; any
// device.Device satisfies this interface structurally.  A nil policy gets
// the original's hard-coded answer: false.
type MemoryPolicy interface {
	AllowGlobalTempMemory() bool
}

func allowsGlobalTemp(policy MemoryPolicy) bool {
	return policy != nil && policy.AllowGlobalTempMemory()
}

// ApplyAction narrows the single domain slot named by a, recording the touch
// in diff so the worklist can requeue dependent constraints.  Returns
// ErrDead if the narrowing empties the slot.
func ApplyAction(a action.Action, fun *ir.Function, dom *store.DomainStore, diff *store.DomainDiff) error {
	switch a.Kind() {
	case action.KindOrder:
		lhs, rhs, restrict := a.Order()
		cur := dom.Order(lhs, rhs)

		narrowed, changed := cur.Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: order(%s, %s)", ErrDead, lhs, rhs)
		}

		if changed {
			dom.SetOrder(lhs, rhs, narrowed)
			diff.TouchStmtPair(lhs, rhs)
		}

	case action.KindDimKind:
		dim, restrict := a.DimKind()

		narrowed, changed := dom.DimKind(dim).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: dim_kind(%s)", ErrDead, dim)
		}

		if changed {
			dom.SetDimKind(dim, narrowed)
			diff.TouchDim(dim)
		}

	case action.KindMemSpace:
		mem, restrict := a.MemSpace()

		narrowed, changed := dom.MemorySpace(mem).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: mem_space(%s)", ErrDead, mem)
		}

		if changed {
			dom.SetMemorySpace(mem, narrowed)
			diff.TouchMemBlock(mem)
		}

	case action.KindDimMapping:
		lhs, rhs, restrict := a.DimMapping()

		narrowed, changed := dom.DimMapping(lhs, rhs).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: dim_mapping(%s, %s)", ErrDead, lhs, rhs)
		}

		if changed {
			dom.SetDimMapping(lhs, rhs, narrowed)
			diff.TouchDimPair(lhs, rhs)
		}

	case action.KindThreadMapping:
		lhs, rhs, restrict := a.ThreadMapping()

		narrowed, changed := dom.ThreadMapping(lhs, rhs).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: thread_mapping(%s, %s)", ErrDead, lhs, rhs)
		}

		if changed {
			dom.SetThreadMapping(lhs, rhs, narrowed)
			diff.TouchDimPair(lhs, rhs)
		}

	case action.KindInstFlag:
		inst, restrict := a.InstFlag()

		narrowed, changed := dom.InstFlag(inst).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: inst_flag(%s)", ErrDead, inst)
		}

		if changed {
			dom.SetInstFlag(inst, narrowed)
			diff.TouchInst(inst)
		}

	case action.KindRank:
		id, restrict := a.Rank()

		cur := dom.Rank(id, restrict.Universe())

		narrowed, changed := cur.Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: rank(%s)", ErrDead, id)
		}

		if changed {
			dom.SetRank(id, narrowed)
		}

	case action.KindVarDefMode:
		v, restrict := a.VarDefMode()

		narrowed, changed := dom.VarDefMode(v).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: var_def_mode(%s)", ErrDead, v)
		}

		if changed {
			dom.SetVarDefMode(v, narrowed)
			diff.TouchVariable(v)
		}

	case action.KindIsInstantiated:
		dim, restrict := a.IsInstantiated()

		narrowed, changed := dom.IsInstantiated(dim).Intersect(restrict)
		if narrowed.IsEmpty() {
			return fmt.Errorf("%w: is_instantiated(%s)", ErrDead, dim)
		}

		if changed {
			dom.SetIsInstantiated(dim, narrowed)
			diff.TouchDim(dim)
		}
	}

	return nil
}

// InitDomain returns the operand invariants of every instruction of a freshly
// constructed Function, for the caller to apply.  It does not write to dom:
// every slot already holds its full universe from store.New, and no other
// default (such as a statement's Order against itself) is seeded here.
// Mirrors
// original_source/src/search_space/mod.rs::SearchSpace::new's
// `init_domain(&mut domain, &mut ir_instance)` call.
func InitDomain(dom *store.DomainStore, fun *ir.Function) ([]action.Action, error) {
	var actions []action.Action

	for _, inst := range fun.Insts() {
		actions = append(actions, operand.InstInvariants(fun, inst)...)
	}

	return actions, nil
}

// InitDomainPartial re-derives the operand invariants of the instructions
// introduced by delta, for the caller to apply.  It does not write to dom:
// ProcessLowering allocates the new slots, at their full universe, through
// DomainStore.Alloc before calling it.  Mirrors
// original_source/src/search_space/mod.rs::process_lowering's call into
// choices::init_domain_partial followed by its own invariants loop.
func InitDomainPartial(dom *store.DomainStore, fun *ir.Function, delta *ir.NewObjs, diff *store.DomainDiff) ([]action.Action, error) {
	var actions []action.Action

	for _, instID := range delta.Instructions {
		actions = append(actions, operand.InstInvariants(fun, fun.Inst(instID))...)
	}

	return actions, nil
}

// ApplyDecisions drains a FIFO worklist of actions, applying each in turn and
// re-deriving whatever new actions a structural lowering trigger produces,
// until the worklist is empty or a narrowing returns ErrDead.  FIFO order
// (rather than the LIFO order a plain Stack would give) keeps constraints
// tied to the smaller-id object ahead of later ones in the queue, matching
// spec.md's determinism requirement on tie-breaking.
func ApplyDecisions(actions []action.Action, fun *ir.Function, dom *store.DomainStore, policy MemoryPolicy) error {
	worklist := queue.NewQueue[action.Action]()
	worklist.PushAll(actions)

	diff := store.NewDomainDiff()

	for !worklist.IsEmpty() {
		a := worklist.Pop()

		log.Debugf("applying action %v", a.Kind())

		if err := ApplyAction(a, fun, dom, diff); err != nil {
			return err
		}

		follow, err := runTriggers(fun, dom, diff, policy)
		if err != nil {
			return err
		}

		worklist.PushAll(follow)
	}

	return nil
}

// runTriggers inspects the domains touched since the last call and fires the
// structural triggers whose condition now holds, returning any further
// actions those triggers produced.  Each touched pair is checked once per
// call; DimNotMapped/DimNotMerged are naturally idempotent (lowering the same
// pair twice is a no-op on the IR side since the Function only grows).
func runTriggers(fun *ir.Function, dom *store.DomainStore, diff *store.DomainDiff, policy MemoryPolicy) ([]action.Action, error) {
	var actions []action.Action

	pairs := diff.DimPairs
	diff.DimPairs = nil

	for _, pair := range pairs {
		lhs, rhs := pair[0], pair[1]

		if dom.DimMapping(lhs, rhs).NeedsLowering() {
			follow, err := DimNotMapped(lhs, rhs, fun, dom, diff, policy)
			if err != nil {
				return nil, err
			}

			actions = append(actions, follow...)
		}

		if dom.ThreadMapping(lhs, rhs) == domain.NotThreadMapped {
			DimNotMerged(lhs, rhs, fun)
		}
	}

	return actions, nil
}
