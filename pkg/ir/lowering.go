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

// LoweredDimMap is the set of IR objects created by lowering a single
// not-yet-realized DimMap operand into an explicit store/load pair through a
// temporary memory block, grounded on
// original_source/src/search_space/dim_map.rs::lower_dim_map.  The store
// instruction runs in the producer's loop nest (its dims one-to-one with the
// DimMap's Rhs dimensions); the load instruction runs in the consumer's loop
// nest (its dims one-to-one with the Lhs dimensions).
type LoweredDimMap struct {
	Mem       MemId
	Store     InstId
	Load      InstId
	StoreDims []DimId
	LoadDims  []DimId
}

// MemDimensions zips the store and load dimensions pairwise, in the order of
// the lowered DimMap's pairs, for use in ordering the two loop nests against each other (the
// store of a given rank must run, and stay merged with, the corresponding
// load of that rank).
func (l LoweredDimMap) MemDimensions() []DimMapPair {
	n := len(l.StoreDims)
	if len(l.LoadDims) < n {
		n = len(l.LoadDims)
	}

	pairs := make([]DimMapPair, n)
	for i := 0; i < n; i++ {
		pairs[i] = DimMapPair{Lhs: l.StoreDims[i], Rhs: l.LoadDims[i]}
	}

	return pairs
}

// RegisterNewObjs records every object this lowering introduced into delta,
// mirroring LoweredDimMap::register_new_objs.
func (l LoweredDimMap) RegisterNewObjs(delta *NewObjs) {
	delta.AddMemoryBlock(l.Mem)
	delta.AddInstruction(l.Store)
	delta.AddInstruction(l.Load)

	for _, d := range l.StoreDims {
		delta.AddDimension(d)
	}

	for _, d := range l.LoadDims {
		delta.AddDimension(d)
	}
}

// LowerDimMap materializes the DimMap carried by the operandIdx-th operand of
// inst through a temporary memory block, introducing a store instruction (in
// the producer's loop nest) and a load instruction (in the consumer's loop
// nest, replacing the operand).  f must not be frozen-immutable in the sense
// of rejecting growth: lowering mutators are exempt from checkMutable.
func (f *Function) LowerDimMap(instID InstId, operandIdx int) (*LoweredDimMap, error) {
	inst := f.Inst(instID)
	op := inst.Operands()[operandIdx]

	if !op.IsInst() {
		return nil, ErrMissingDimMapping(0, 0)
	}

	src, dimMap, _ := op.Source()

	mem := f.addLoweredMemBlock(op.Type())

	storeDims := make([]DimId, 0, len(dimMap))
	loadDims := make([]DimId, 0, len(dimMap))

	for _, pair := range dimMap {
		rhsDim := f.Dim(pair.Rhs)
		sd := f.addLoweredDim(rhsDim.PossibleSizes())
		storeDims = append(storeDims, sd)

		lhsDim := f.Dim(pair.Lhs)
		ld := f.addLoweredDim(lhsDim.PossibleSizes())
		loadDims = append(loadDims, ld)
	}

	storeID := f.addLoweredInst([]Operand{AddrOperand(mem), InstOperand(op.Type(), src, nil, Local())}, Type{}, false)
	for _, d := range storeDims {
		f.Inst(storeID).SetIterationDim(d)
	}

	loadID := f.addLoweredInst([]Operand{AddrOperand(mem)}, op.Type(), true)
	for _, d := range loadDims {
		f.Inst(loadID).SetIterationDim(d)
	}

	f.MemBlock(mem).RegisterUse(storeID)
	f.MemBlock(mem).RegisterUse(loadID)
	f.MemBlock(mem).RegisterUse(src)

	// The consumer no longer reads the producer's result directly through a
	// DimMap: it now reads the temporary the store/load pair materializes.
	inst.ReplaceOperand(operandIdx, AddrOperand(mem))

	return &LoweredDimMap{Mem: mem, Store: storeID, Load: loadID, StoreDims: storeDims, LoadDims: loadDims}, nil
}

// LowerLayout commits a Variable's memory layout to an explicit list of store
// and load dimensions, grounded on
// original_source/src/search_space/dim_map.rs::lower_layout.
func (f *Function) LowerLayout(mem MemId, stDims, ldDims []DimId) {
	block := f.MemBlock(mem)
	if block.Variable().HasValue() {
		layout := make([]LayoutDimId, 0, len(stDims))

		for _, d := range stDims {
			layout = append(layout, f.addLayoutDim(f.Dim(d).PossibleSizes()))
		}

		f.Variable(block.Variable().Unwrap()).SetLayout(layout)
	}
}

// SetIterationDim records dim as an iteration dimension of inst, returning
// true if this was a new addition.
func (f *Function) SetIterationDim(instID InstId, dim DimId) bool {
	return f.Inst(instID).SetIterationDim(dim)
}

// AddThreadDim records dim as a thread dimension of the function, returning
// true if this was a new addition.
func (f *Function) AddThreadDim(dim DimId) bool {
	for _, d := range f.threadDims {
		if d == dim {
			return false
		}
	}

	f.threadDims = append(f.threadDims, dim)

	return true
}

// DimNotMerged records that lhs and rhs are known never to be merged into a
// single loop.
func (f *Function) DimNotMerged(lhs, rhs DimId) {
	f.Dim(lhs).notMerged = append(f.Dim(lhs).notMerged, rhs)
	f.Dim(rhs).notMerged = append(f.Dim(rhs).notMerged, lhs)
}

// LowerTarget names an operand of an instruction whose DimMap still needs
// lowering.
type LowerTarget struct {
	Inst    InstId
	Operand int
}

// DimMapsToLower reports, for every instruction in the function, the operand
// indices whose DimMap still relates lhs and rhs.  Grounded on
// original_source/src/search_space/dim_map.rs::dim_not_mapped's initial
// to_lower scan over fun.insts().
func (f *Function) DimMapsToLower(lhs, rhs DimId) []LowerTarget {
	var result []LowerTarget

	for _, inst := range f.insts {
		for _, opIdx := range inst.DimMapsToLower(lhs, rhs) {
			result = append(result, LowerTarget{Inst: inst.Id(), Operand: opIdx})
		}
	}

	return result
}

func (f *Function) addLoweredDim(sizes PossibleSizes) DimId {
	id := DimId(len(f.dims))
	d := &Dimension{id: id, stmt: NewDimStmtId(id, f.nextSeq()), possibleSizes: sizes}
	f.dims = append(f.dims, d)

	return id
}

func (f *Function) addLayoutDim(sizes PossibleSizes) LayoutDimId {
	id := LayoutDimId(len(f.layoutDim))
	d := &Dimension{id: DimId(id), stmt: NewDimStmtId(DimId(id), f.nextSeq()), possibleSizes: sizes}
	f.layoutDim = append(f.layoutDim, d)

	return id
}

func (f *Function) addLoweredMemBlock(t Type) MemId {
	id := MemId(len(f.memBlocks))
	size := t.BitWidth() / 8
	f.memBlocks = append(f.memBlocks, NewTempMemBlock(id, size))

	return id
}

// addLoweredInst allocates a new instruction the way AddInst does, but
// without checkMutable: lowering mutators grow a frozen Function by design
// (Freeze only rejects further top-level construction, not the structural
// growth lowering triggers introduce), the same exemption addLoweredDim and
// addLoweredMemBlock already get.
func (f *Function) addLoweredInst(operands []Operand, resType Type, hasRes bool) InstId {
	id := InstId(len(f.insts))
	inst := NewInstruction(id, NewInstStmtId(id, f.nextSeq()), operands, resType, hasRes)
	f.insts = append(f.insts, inst)

	return id
}
