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

// Package store holds DomainStore, the dense table of per-object domains a
// SearchSpace narrows as it applies decisions, grounded on
// original_source/src/search_space/mod.rs's choices::DomainStore (re-exported
// there from the telamon-gen-generated `choices` module, which this package
// hand-writes instead since the generator itself is out of scope).
package store

import (
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
)

// DomainStore is a dense, arena-indexed table of every search-space choice's
// current domain.  Indices line up 1:1 with the owning Function's arenas, so
// allocation tracks Function growth exactly (see Alloc).
type DomainStore struct {
	dimKind       []domain.DimKind
	order         map[orderKey]domain.Order
	memorySpace   []domain.MemorySpace
	instFlag      []domain.InstFlag
	threadMapping map[orderKey]domain.ThreadMapping
	dimMapping    map[orderKey]domain.DimMapping
	isInstantiated []domain.IsInstantiated
	varDefMode    []domain.VarDefMode
	rank          []domain.NumericSet
	numMemDims    []domain.HalfRange
}

// orderKey identifies an unordered-pair choice (Order, ThreadMapping,
// DimMapping) by the statement/dimension ids it relates, normalized so
// (a, b) and (b, a) hash to the same slot; callers reconstruct the
// requested direction via Order.Reverse.
type orderKey struct {
	lo, hi uint32
}

func newOrderKey(a, b uint32) (orderKey, bool) {
	if a <= b {
		return orderKey{lo: a, hi: b}, false
	}

	return orderKey{lo: b, hi: a}, true
}

// New constructs a DomainStore sized for fun's arenas as they stand right
// after Function.Freeze, with every domain initialized to its full universe;
// init_domain then narrows from there.
func New(fun *ir.Function) *DomainStore {
	s := &DomainStore{
		dimKind:        make([]domain.DimKind, fun.NumDims()),
		order:          make(map[orderKey]domain.Order),
		memorySpace:    make([]domain.MemorySpace, fun.NumMemBlocks()),
		instFlag:       make([]domain.InstFlag, fun.NumInsts()),
		threadMapping:  make(map[orderKey]domain.ThreadMapping),
		dimMapping:     make(map[orderKey]domain.DimMapping),
		isInstantiated: make([]domain.IsInstantiated, fun.NumDims()),
		varDefMode:     make([]domain.VarDefMode, fun.NumVariables()),
		numMemDims:     make([]domain.HalfRange, fun.NumMemBlocks()),
	}

	for i := range s.dimKind {
		s.dimKind[i] = domain.DimKindAll
	}

	for i := range s.memorySpace {
		s.memorySpace[i] = domain.MemorySpaceAll
	}

	for i := range s.instFlag {
		s.instFlag[i] = domain.InstFlagAll
	}

	for i := range s.isInstantiated {
		s.isInstantiated[i] = domain.IsInstantiatedAll
	}

	for i := range s.varDefMode {
		s.varDefMode[i] = domain.VarDefModeAll
	}

	for i := range s.numMemDims {
		s.numMemDims[i] = domain.NewHalfRange(^uint32(0))
	}

	return s
}

// Alloc grows the store to accommodate the objects introduced by delta,
// mirroring DomainStore::alloc in
// original_source/src/search_space/mod.rs::process_lowering.  Newly
// allocated slots start at their full universe; init_domain_partial narrows
// them afterwards.
func (s *DomainStore) Alloc(fun *ir.Function, delta *ir.NewObjs) {
	for len(s.dimKind) < fun.NumDims() {
		s.dimKind = append(s.dimKind, domain.DimKindAll)
		s.isInstantiated = append(s.isInstantiated, domain.IsInstantiatedAll)
	}

	for len(s.memorySpace) < fun.NumMemBlocks() {
		s.memorySpace = append(s.memorySpace, domain.MemorySpaceAll)
		s.numMemDims = append(s.numMemDims, domain.NewHalfRange(^uint32(0)))
	}

	for len(s.instFlag) < fun.NumInsts() {
		s.instFlag = append(s.instFlag, domain.InstFlagAll)
	}

	for len(s.varDefMode) < fun.NumVariables() {
		s.varDefMode = append(s.varDefMode, domain.VarDefModeAll)
	}

	_ = delta // new pairwise (Order/ThreadMapping/DimMapping) slots are populated lazily on first access
}

// DimKind returns the current DimKind domain of dim.
func (s *DomainStore) DimKind(dim ir.DimId) domain.DimKind {
	return s.dimKind[dim]
}

// SetDimKind overwrites the DimKind domain of dim.
func (s *DomainStore) SetDimKind(dim ir.DimId, k domain.DimKind) {
	s.dimKind[dim] = k
}

// IsInstantiated returns the current IsInstantiated domain of dim.
func (s *DomainStore) IsInstantiated(dim ir.DimId) domain.IsInstantiated {
	return s.isInstantiated[dim]
}

// SetIsInstantiated overwrites the IsInstantiated domain of dim.
func (s *DomainStore) SetIsInstantiated(dim ir.DimId, v domain.IsInstantiated) {
	s.isInstantiated[dim] = v
}

// MemorySpace returns the current MemorySpace domain of mem.
func (s *DomainStore) MemorySpace(mem ir.MemId) domain.MemorySpace {
	return s.memorySpace[mem]
}

// SetMemorySpace overwrites the MemorySpace domain of mem.
func (s *DomainStore) SetMemorySpace(mem ir.MemId, m domain.MemorySpace) {
	s.memorySpace[mem] = m
}

// NumMemDims returns the current bound on the number of dimensions
// contributing to mem's layout.
func (s *DomainStore) NumMemDims(mem ir.MemId) domain.HalfRange {
	return s.numMemDims[mem]
}

// SetNumMemDims overwrites the bound on the number of dimensions
// contributing to mem's layout.
func (s *DomainStore) SetNumMemDims(mem ir.MemId, r domain.HalfRange) {
	s.numMemDims[mem] = r
}

// InstFlag returns the current InstFlag domain of inst.
func (s *DomainStore) InstFlag(inst ir.InstId) domain.InstFlag {
	return s.instFlag[inst]
}

// SetInstFlag overwrites the InstFlag domain of inst.
func (s *DomainStore) SetInstFlag(inst ir.InstId, f domain.InstFlag) {
	s.instFlag[inst] = f
}

// VarDefMode returns the current VarDefMode domain of v.
func (s *DomainStore) VarDefMode(v ir.VarId) domain.VarDefMode {
	return s.varDefMode[v]
}

// SetVarDefMode overwrites the VarDefMode domain of v.
func (s *DomainStore) SetVarDefMode(v ir.VarId, m domain.VarDefMode) {
	s.varDefMode[v] = m
}

// Order returns the current Order domain between a and b, as seen from a's
// point of view.
func (s *DomainStore) Order(a, b ir.StmtId) domain.Order {
	key, reversed := newOrderKey(a.Seq(), b.Seq())

	o, ok := s.order[key]
	if !ok {
		o = domain.OrderAll
	}

	if reversed {
		return o.Reverse()
	}

	return o
}

// SetOrder overwrites the Order domain between a and b, as seen from a's
// point of view.
func (s *DomainStore) SetOrder(a, b ir.StmtId, o domain.Order) {
	key, reversed := newOrderKey(a.Seq(), b.Seq())

	if reversed {
		o = o.Reverse()
	}

	s.order[key] = o
}

// ThreadMapping returns the current ThreadMapping domain between dims a and
// b.
func (s *DomainStore) ThreadMapping(a, b ir.DimId) domain.ThreadMapping {
	key, _ := newOrderKey(uint32(a), uint32(b))

	m, ok := s.threadMapping[key]
	if !ok {
		return domain.ThreadMappingAll
	}

	return m
}

// SetThreadMapping overwrites the ThreadMapping domain between dims a and b.
func (s *DomainStore) SetThreadMapping(a, b ir.DimId, m domain.ThreadMapping) {
	key, _ := newOrderKey(uint32(a), uint32(b))
	s.threadMapping[key] = m
}

// DimMapping returns the current DimMapping domain between dims a and b.
func (s *DomainStore) DimMapping(a, b ir.DimId) domain.DimMapping {
	key, _ := newOrderKey(uint32(a), uint32(b))

	m, ok := s.dimMapping[key]
	if !ok {
		return domain.DimMappingAll
	}

	return m
}

// SetDimMapping overwrites the DimMapping domain between dims a and b.
func (s *DomainStore) SetDimMapping(a, b ir.DimId, m domain.DimMapping) {
	key, _ := newOrderKey(uint32(a), uint32(b))
	s.dimMapping[key] = m
}

// Rank returns the current Rank domain of a layout dimension, allocating its
// universe on first access from universe.
func (s *DomainStore) Rank(id ir.LayoutDimId, universe uint) domain.NumericSet {
	for len(s.rank) <= int(id) {
		s.rank = append(s.rank, domain.NewFull(universe))
	}

	return s.rank[id]
}

// SetRank overwrites the Rank domain of a layout dimension.
func (s *DomainStore) SetRank(id ir.LayoutDimId, r domain.NumericSet) {
	for len(s.rank) <= int(id) {
		s.rank = append(s.rank, r)
	}

	s.rank[id] = r
}

// Clone returns an independent deep copy of the store, used by
// SearchSpace.Clone to give each explored branch its own mutable domain
// while the underlying ir.Function is shared copy-on-write.
func (s *DomainStore) Clone() *DomainStore {
	clone := &DomainStore{
		dimKind:        append([]domain.DimKind(nil), s.dimKind...),
		order:          make(map[orderKey]domain.Order, len(s.order)),
		memorySpace:    append([]domain.MemorySpace(nil), s.memorySpace...),
		instFlag:       append([]domain.InstFlag(nil), s.instFlag...),
		threadMapping:  make(map[orderKey]domain.ThreadMapping, len(s.threadMapping)),
		dimMapping:     make(map[orderKey]domain.DimMapping, len(s.dimMapping)),
		isInstantiated: append([]domain.IsInstantiated(nil), s.isInstantiated...),
		varDefMode:     append([]domain.VarDefMode(nil), s.varDefMode...),
		rank:           append([]domain.NumericSet(nil), s.rank...),
		numMemDims:     append([]domain.HalfRange(nil), s.numMemDims...),
	}

	for k, v := range s.order {
		clone.order[k] = v
	}

	for k, v := range s.threadMapping {
		clone.threadMapping[k] = v
	}

	for k, v := range s.dimMapping {
		clone.dimMapping[k] = v
	}

	for i, r := range clone.rank {
		clone.rank[i] = r.Clone()
	}

	return clone
}
