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
package search

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/kernel"
	"github.com/telamon-project/telamon/pkg/util/assert"
)

// TestSearchSpaceNewAXPYNarrowsToSingletonOrderings is spec.md S8's S1
// scenario: one Ld over d0, one St over d0, one Mul over d0, with the
// initial DimKind restricted to {LOOP, UNROLL, VECTOR}.  After New, the
// operand invariants (Ld must run before Mul, Mul before St, spec.md S4.5)
// must already have narrowed to singletons, since nothing else orders them.
func TestSearchSpaceNewAXPYNarrowsToSingletonOrderings(t *testing.T) {
	fun, d0, initial := kernel.AXPY(32)

	space, err := New(fun, initial, nil)
	assert.True(t, err == nil)

	got := space.Domain().DimKind(d0)
	assert.True(t, got.Contains(domain.Loop))
	assert.True(t, got.Contains(domain.Unroll))
	assert.True(t, got.Contains(domain.Vector))
	assert.True(t, !got.Contains(domain.Thread))
	assert.True(t, !got.Contains(domain.Block))

	insts := space.IR().Insts()
	ld, mul, st := insts[0].StmtId(), insts[1].StmtId(), insts[2].StmtId()

	assert.True(t, space.Domain().Order(ld, mul).IsSingleton())
	assert.True(t, space.Domain().Order(ld, mul).Contains(domain.Before))
	assert.True(t, space.Domain().Order(mul, st).IsSingleton())
	assert.True(t, space.Domain().Order(mul, st).Contains(domain.Before))
}

// TestSearchSpaceNewDimMapLoweringIntroducesTempMemory is spec.md S8's S2
// scenario: forcing DimMapping(d0, d1) down to MemLowered alone must fire
// dim_not_mapped (T1) and introduce exactly one new memory block, store and
// load, the store ordered before the load and forced into shared memory.
func TestSearchSpaceNewDimMapLoweringIntroducesTempMemory(t *testing.T) {
	fun, d0, d1, _ := kernel.DimMap(16)

	space, err := New(fun, nil, nil)
	assert.True(t, err == nil)

	memsBefore := space.IR().NumMemBlocks()
	instsBefore := space.IR().NumInsts()

	err = space.ApplyDecisions([]action.Action{action.DimMappingAction(d0, d1, domain.MemLowered)})
	assert.True(t, err == nil)

	assert.Equal(t, memsBefore+1, space.IR().NumMemBlocks())
	assert.Equal(t, instsBefore+2, space.IR().NumInsts())

	mem := ir.MemId(space.IR().NumMemBlocks() - 1)
	assert.True(t, space.Domain().MemorySpace(mem).IsSingleton())
	assert.True(t, space.Domain().MemorySpace(mem).Contains(domain.SpaceShared))

	store := space.IR().Inst(ir.InstId(instsBefore))
	load := space.IR().Inst(ir.InstId(instsBefore + 1))
	assert.True(t, space.Domain().Order(store.StmtId(), load.StmtId()).Contains(domain.Before))
}

// TestSearchSpaceApplyDecisionsContradictionReturnsErrDead is spec.md S8's
// S4 scenario: DimKind(d, VECTOR) followed by DimKind(d, LOOP) empties the
// domain and ApplyDecisions must report the dead branch rather than
// panicking or silently truncating the domain.
func TestSearchSpaceApplyDecisionsContradictionReturnsErrDead(t *testing.T) {
	fun, d0, initial := kernel.AXPY(32)

	space, err := New(fun, initial, nil)
	assert.True(t, err == nil)

	err = space.ApplyDecisions([]action.Action{action.DimKindAction(d0, domain.Vector)})
	assert.True(t, err == nil)

	err = space.ApplyDecisions([]action.Action{action.DimKindAction(d0, domain.Loop)})
	assert.True(t, err != nil)
}

// TestSearchSpaceCloneIsIndependent exercises spec.md S5's clone contract:
// narrowing a clone's domain must not affect the original's.
func TestSearchSpaceCloneIsIndependent(t *testing.T) {
	fun, d0, initial := kernel.AXPY(32)

	space, err := New(fun, initial, nil)
	assert.True(t, err == nil)

	clone := space.Clone()

	err = clone.ApplyDecisions([]action.Action{action.DimKindAction(d0, domain.Vector)})
	assert.True(t, err == nil)

	assert.True(t, clone.Domain().DimKind(d0).IsSingleton())
	assert.True(t, !space.Domain().DimKind(d0).IsSingleton())
}

// TestSearchSpaceDeterministicAcrossActionPermutations is spec.md S8's S6
// scenario (run via two clones rather than threads, since the engine is
// single-threaded per clone, spec.md S5): applying the same two
// independent restrictions in either order must leave both clones in
// bit-identical domains for the choices they touch.
func TestSearchSpaceDeterministicAcrossActionPermutations(t *testing.T) {
	fun, d0, initial := kernel.AXPY(32)

	base, err := New(fun, initial, nil)
	assert.True(t, err == nil)

	forward := base.Clone()
	reverse := base.Clone()

	insts := forward.IR().Insts()
	ld, mul := insts[0].StmtId(), insts[1].StmtId()

	a := action.OrderAction(ld, mul, domain.Before)
	b := action.DimKindAction(d0, domain.Loop|domain.Unroll)

	assert.True(t, forward.ApplyDecisions([]action.Action{a, b}) == nil)
	assert.True(t, reverse.ApplyDecisions([]action.Action{b, a}) == nil)

	assert.Equal(t, forward.Domain().DimKind(d0), reverse.Domain().DimKind(d0))
	assert.Equal(t, forward.Domain().Order(ld, mul), reverse.Domain().Order(ld, mul))
}

// TestArrayMemorySpaceExternalIsAlwaysGlobal exercises the ArrayMemorySpace
// free function's External case (spec.md S6).
func TestArrayMemorySpaceExternalIsAlwaysGlobal(t *testing.T) {
	fun, _, initial := kernel.AXPY(32)

	space, err := New(fun, initial, nil)
	assert.True(t, err == nil)

	assert.Equal(t, domain.SpaceGlobal, ArrayMemorySpace(ExternalArray(), space))
}
