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

// Package search exposes SearchSpace, the facade tying a frozen ir.Function
// to its store.DomainStore and giving callers a single ApplyDecisions entry
// point, grounded on original_source/src/search_space/mod.rs's
// SearchSpace/array_memory_space.
package search

import (
	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/engine"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/operand"
	"github.com/telamon-project/telamon/pkg/store"
)

// SearchSpace is a partially specified implementation: a frozen ir.Function
// together with the current narrowing of every search-space choice.  The IR
// itself is shared copy-on-write between clones (only the domain differs
// across explored branches); mutating lowering triggers that do grow the IR
// always run on the owning SearchSpace's own private copy, obtained by
// Clone.
type SearchSpace struct {
	fun    *ir.Function
	domain *store.DomainStore
	policy engine.MemoryPolicy
}

// New freezes ir (sealing it against further top-level construction; no ids
// are reserved for future lowerings), derives every operand invariant and
// applies them together with actions, then seeds and applies the initial
// domain.  policy is consulted by the engine's lowering triggers for
// SPEC_FULL.md open question 1 (a nil policy matches the original's
// hard-coded behaviour); pass a device.Device, which satisfies
// engine.MemoryPolicy structurally.  Returns ErrDead if the supplied actions
// or the derived invariants are contradictory.
func New(fun *ir.Function, actions []action.Action, policy engine.MemoryPolicy) (*SearchSpace, error) {
	fun = fun.Freeze()

	dom := store.New(fun)

	var all []action.Action

	for _, inst := range fun.Insts() {
		all = append(all, operand.InstInvariants(fun, inst)...)
	}

	all = append(all, actions...)

	if err := engine.ApplyDecisions(all, fun, dom, policy); err != nil {
		return nil, err
	}

	init, err := engine.InitDomain(dom, fun)
	if err != nil {
		return nil, err
	}

	space := &SearchSpace{fun: fun, domain: dom, policy: policy}

	if err := space.ApplyDecisions(init); err != nil {
		return nil, err
	}

	return space, nil
}

// IR returns the underlying ir.Function.
func (s *SearchSpace) IR() *ir.Function {
	return s.fun
}

// Domain returns the current domain of choices.
func (s *SearchSpace) Domain() *store.DomainStore {
	return s.domain
}

// ApplyDecisions narrows the domain by actions and propagates every
// structural trigger those narrowings unlock, mutating the IR in place when
// a lowering fires.
func (s *SearchSpace) ApplyDecisions(actions []action.Action) error {
	return engine.ApplyDecisions(actions, s.fun, s.domain, s.policy)
}

// Clone returns an independent copy of the search space: the IR is shared
// (copy-on-write -- it is never mutated without going through a lowering
// trigger, and lowerings only ever grow it monotonically) while the domain
// is deep-copied so the two branches can be narrowed independently.
func (s *SearchSpace) Clone() *SearchSpace {
	return &SearchSpace{fun: s.fun, domain: s.domain.Clone(), policy: s.policy}
}

// ArrayId names a memory location an AccessPattern may refer to at the
// kernel-parameter level: the spec's External/Static/Variable distinction
// for array_memory_space, grounded on
// original_source/src/search_space/mod.rs::array_memory_space's match over
// ir::ArrayId.
type ArrayId struct {
	kind arrayKind
	mem  ir.MemId
	v    ir.VarId
}

type arrayKind uint8

const (
	arrayExternal arrayKind = iota
	arrayStatic
	arrayVariable
)

// ExternalArray identifies a kernel parameter passed in from outside,
// always resident in global memory.
func ExternalArray() ArrayId { return ArrayId{kind: arrayExternal} }

// StaticArray identifies a kernel-declared memory block whose space is
// fixed.
func StaticArray(mem ir.MemId) ArrayId { return ArrayId{kind: arrayStatic, mem: mem} }

// VariableArray identifies a memory block backing a Variable whose space is
// still a search decision.
func VariableArray(v ir.VarId) ArrayId { return ArrayId{kind: arrayVariable, v: v} }

// ArrayMemorySpace returns the memory space an ArrayId resolves to in the
// given search space.
func ArrayMemorySpace(array ArrayId, space *SearchSpace) domain.MemorySpace {
	switch array.kind {
	case arrayExternal:
		return domain.SpaceGlobal
	case arrayStatic:
		block := space.IR().MemBlock(array.mem)
		if block.Space() == ir.Shared {
			return domain.SpaceShared
		}

		return domain.SpaceGlobal
	default:
		v := space.IR().Variable(array.v)

		memOpt := v.MemBlock()
		if !memOpt.HasValue() {
			return domain.MemorySpaceAll
		}

		return space.Domain().MemorySpace(memOpt.Unwrap())
	}
}
