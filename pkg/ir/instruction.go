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

import "github.com/telamon-project/telamon/pkg/util/collection/set"

// Instruction is an operator applied to a list of Operands, optionally
// producing a typed result and accessing memory through an AccessPattern.
// Its IterationDims are the dimensions it is statically known to be nested
// in; dimensions reachable only via a not-yet-lowered DimMap are not part of
// this set until the corresponding lowering trigger fires (spec.md S4.4).
type Instruction struct {
	id   InstId
	stmt StmtId

	operands []Operand
	resType  Type
	hasRes   bool

	pattern    AccessPattern
	hasPattern bool

	iterationDims set.SortedSet[DimId]
	definedVars   set.SortedSet[VarId]
	usedVars      set.SortedSet[VarId]
}

// NewInstruction constructs an instruction applying to operands, with the
// given StmtId (carrying its creation sequence number) and, when hasRes is
// true, producing a value of resType.
func NewInstruction(id InstId, stmt StmtId, operands []Operand, resType Type, hasRes bool) *Instruction {
	ops := append([]Operand(nil), operands...)

	return &Instruction{id: id, stmt: stmt, operands: ops, resType: resType, hasRes: hasRes}
}

// Id returns this instruction's identifier.
func (inst *Instruction) Id() InstId {
	return inst.id
}

// Operands returns the instruction's operand list, in declaration order.
func (inst *Instruction) Operands() []Operand {
	return inst.operands
}

// ReplaceOperand overwrites the idx-th operand, used by lowering triggers
// that materialize an operand's DimMap into an explicit memory reference
// (pkg/ir/lowering.go's LowerDimMap), mirroring the rust source's
// `fun.inst(inst).operands()[operand]` read that happens only after
// `fun.lower_dim_map` has already rewritten it in place.
func (inst *Instruction) ReplaceOperand(idx int, op Operand) {
	inst.operands[idx] = op
}

// ResultType returns the instruction's result type and true, or
// (zero-value, false) if the instruction has no return value
// (ir.ExpectedReturnTypeError guards callers that require one).
func (inst *Instruction) ResultType() (Type, bool) {
	return inst.resType, inst.hasRes
}

// AccessPattern returns the instruction's memory access pattern and true, if
// it accesses memory.
func (inst *Instruction) AccessPattern() (AccessPattern, bool) {
	return inst.pattern, inst.hasPattern
}

// SetAccessPattern installs the instruction's memory access pattern,
// checking it against the instruction's current iteration dims.
func (inst *Instruction) SetAccessPattern(p AccessPattern) error {
	if err := p.Check(&inst.iterationDims); err != nil {
		return err
	}

	inst.pattern = p
	inst.hasPattern = true

	return nil
}

// IterationDims returns the set of dimensions this instruction is nested in.
func (inst *Instruction) IterationDims() *set.SortedSet[DimId] {
	return &inst.iterationDims
}

// SetIterationDim records dim as an iteration dimension of this instruction,
// returning true if this was a new addition (used by add_iteration_dim in
// original_source/src/search_space/mod.rs to decide whether to emit a
// NewObjs delta).
func (inst *Instruction) SetIterationDim(dim DimId) bool {
	before := len(inst.iterationDims)
	inst.iterationDims.Insert(dim)

	return len(inst.iterationDims) != before
}

// DimMapsToLower returns the operand indices of this instruction's Inst
// operands whose DimMap relates lhs and rhs, in either order; neither the
// operand's DimMapScope nor the instruction's iteration dims are consulted.
// Grounded on
// original_source/src/search_space/dim_map.rs's dim_not_mapped trigger,
// which collects exactly these (inst, operand) pairs before calling
// lower_dim_map on each.
func (inst *Instruction) DimMapsToLower(lhs, rhs DimId) []int {
	var result []int

	for i, op := range inst.operands {
		if !op.IsInst() {
			continue
		}

		_, dimMap, _ := op.Source()
		for _, pair := range dimMap {
			if (pair.Lhs == lhs && pair.Rhs == rhs) || (pair.Lhs == rhs && pair.Rhs == lhs) {
				result = append(result, i)

				break
			}
		}
	}

	return result
}

// StmtId returns the StmtId wrapping this instruction.
func (inst *Instruction) StmtId() StmtId {
	return inst.stmt
}

// DefinedVars lists the variables defined at this statement.
func (inst *Instruction) DefinedVars() *set.SortedSet[VarId] {
	return &inst.definedVars
}

// UsedVars lists the variables used at this statement.
func (inst *Instruction) UsedVars() *set.SortedSet[VarId] {
	return &inst.usedVars
}

// RegisterDefinedVar records that this instruction defines the given
// variable.
func (inst *Instruction) RegisterDefinedVar(v VarId) {
	inst.definedVars.Insert(v)
}

// RegisterUsedVar records that this instruction uses the given variable.
func (inst *Instruction) RegisterUsedVar(v VarId) {
	inst.usedVars.Insert(v)
}

// AsInst implements Statement for Instruction.
func (inst *Instruction) AsInst() (*Instruction, bool) {
	return inst, true
}

// AsDim implements Statement for Instruction: an instruction is never a
// dimension.
func (inst *Instruction) AsDim() (*Dimension, bool) {
	return nil, false
}

var _ Statement = (*Instruction)(nil)
