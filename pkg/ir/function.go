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

// Function is the arena owning every Dimension, Instruction, MemoryBlock,
// Variable and InductionVar of a kernel.  It is mutable while being built
// (AddXxx methods); Freeze seals it against further top-level growth,
// mirroring the ir::Function<'a, ()> -> ir::Function<'a> transition of
// original_source/src/search_space/mod.rs's SearchSpace::new.  After Freeze,
// only the lowering-specific mutators in lowering.go may still grow the
// arena (appending new dims/insts/mem blocks; existing ids are never reused
// or renumbered), and store.DomainStore.Alloc grows the domain tables to
// match each time a lowering does so -- there is no separate id
// pre-allocation step; ordinary construction methods panic once frozen.
type Function struct {
	frozen bool
	seq    uint32

	dims      []*Dimension
	insts     []*Instruction
	memBlocks []*MemoryBlock
	variables []*Variable
	indVars   []*InductionVar
	layoutDim []*Dimension

	threadDims []DimId

	params []Type
}

// NewFunction constructs an empty, mutable Function with the given
// parameter types.
func NewFunction(params []Type) *Function {
	ps := append([]Type(nil), params...)

	return &Function{params: ps}
}

func (f *Function) nextSeq() uint32 {
	s := f.seq
	f.seq++

	return s
}

func (f *Function) checkMutable() {
	if f.frozen {
		panic("ir: cannot add new top-level objects to a frozen Function (use a lowering mutator instead)")
	}
}

// Params returns the kernel's parameter types.
func (f *Function) Params() []Type {
	return f.params
}

// NumDims returns the number of dimensions allocated so far.
func (f *Function) NumDims() int {
	return len(f.dims)
}

// NumInsts returns the number of instructions allocated so far.
func (f *Function) NumInsts() int {
	return len(f.insts)
}

// NumMemBlocks returns the number of memory blocks allocated so far.
func (f *Function) NumMemBlocks() int {
	return len(f.memBlocks)
}

// NumVariables returns the number of variables allocated so far.
func (f *Function) NumVariables() int {
	return len(f.variables)
}

// AddDim allocates a new dimension with the given possible sizes and returns
// its id.
func (f *Function) AddDim(sizes PossibleSizes) (DimId, error) {
	f.checkMutable()

	if !sizes.IsDynamic() {
		for _, s := range sizes.Values() {
			if s < 2 {
				return 0, ErrInvalidDimSize()
			}
		}
	}

	id := DimId(len(f.dims))
	d := &Dimension{id: id, stmt: NewDimStmtId(id, f.nextSeq()), possibleSizes: sizes}
	f.dims = append(f.dims, d)

	return id, nil
}

// AddInst allocates a new instruction and returns its id.
func (f *Function) AddInst(operands []Operand, resType Type, hasRes bool) InstId {
	f.checkMutable()

	id := InstId(len(f.insts))
	inst := NewInstruction(id, NewInstStmtId(id, f.nextSeq()), operands, resType, hasRes)
	f.insts = append(f.insts, inst)

	return id
}

// AddGlobalMemBlock allocates a new kernel-level global memory block.
func (f *Function) AddGlobalMemBlock(size uint32) MemId {
	f.checkMutable()

	id := MemId(len(f.memBlocks))
	f.memBlocks = append(f.memBlocks, NewGlobalMemBlock(id, size))

	return id
}

// AddSharedMemBlock allocates a new kernel-level shared memory block.
func (f *Function) AddSharedMemBlock(size uint32) MemId {
	f.checkMutable()

	id := MemId(len(f.memBlocks))
	f.memBlocks = append(f.memBlocks, NewSharedMemBlock(id, size))

	return id
}

// AddVariableBoundMemBlock allocates a new memory block backing v, whose
// storage space is left to the search (the MemorySpace domain choice).
func (f *Function) AddVariableBoundMemBlock(v VarId, size uint32) MemId {
	f.checkMutable()

	id := MemId(len(f.memBlocks))
	f.memBlocks = append(f.memBlocks, NewVariableBoundMemBlock(id, v, size))

	return id
}

// AddVariable allocates a new variable produced by definingInst.
func (f *Function) AddVariable(typ Type, definingInst InstId) VarId {
	f.checkMutable()

	id := VarId(len(f.variables))
	f.variables = append(f.variables, NewVariable(id, typ, definingInst))

	return id
}

// AddInductionVar allocates a new induction variable.
func (f *Function) AddInductionVar(typ Type, base Operand, dims []InductionDim) (InductionVarId, error) {
	f.checkMutable()

	id := InductionVarId(len(f.indVars))

	v, err := NewInductionVar(id, typ, base, dims)
	if err != nil {
		return 0, err
	}

	f.indVars = append(f.indVars, v)

	return id, nil
}

// Dim returns the dimension with the given id.
func (f *Function) Dim(id DimId) *Dimension {
	return f.dims[id]
}

// Inst returns the instruction with the given id.
func (f *Function) Inst(id InstId) *Instruction {
	return f.insts[id]
}

// MemBlock returns the memory block with the given id.
func (f *Function) MemBlock(id MemId) *MemoryBlock {
	return f.memBlocks[id]
}

// Variable returns the variable with the given id.
func (f *Function) Variable(id VarId) *Variable {
	return f.variables[id]
}

// InductionVarRef returns the induction variable with the given id.
func (f *Function) InductionVarRef(id InductionVarId) *InductionVar {
	return f.indVars[id]
}

// LayoutDimension returns the layout dimension with the given id, which
// shares the Dimension type with ordinary iteration dimensions but is
// allocated in a distinct arena (see LowerLayout).
func (f *Function) LayoutDimension(id LayoutDimId) *Dimension {
	return f.layoutDim[id]
}

// Dims returns every dimension in the function, in id order.
func (f *Function) Dims() []*Dimension {
	return f.dims
}

// Insts returns every instruction in the function, in id order.
func (f *Function) Insts() []*Instruction {
	return f.insts
}

// ThreadDims returns the dimensions currently marked as thread dimensions.
func (f *Function) ThreadDims() []DimId {
	return f.threadDims
}

// Statement returns the Statement identified by a StmtId.
func (f *Function) Statement(id StmtId) Statement {
	if id.IsDim() {
		return f.Dim(id.Dim())
	}

	return f.Inst(id.Inst())
}

// Freeze seals the function against further top-level growth, after which
// only lowering triggers may extend it.  Returns the function itself for
// convenient chaining at construction sites.
func (f *Function) Freeze() *Function {
	f.frozen = true

	return f
}

// IsFrozen reports whether Freeze has been called.
func (f *Function) IsFrozen() bool {
	return f.frozen
}
