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

import "fmt"

// DimMapScope controls how aggressively an Inst operand's DimMap may be
// lowered to explicit memory, mirroring original_source/src/search_space/operand.rs's
// match over DimMapScope.
type DimMapScope struct {
	kind   dimMapScopeKind
	global GlobalScope
}

type dimMapScopeKind uint8

const (
	// ScopeLocal restricts the dim map to unrolling: the two dimensions must
	// end up merged (same loop), so no cross-thread or cross-block
	// communication is ever needed.
	ScopeLocal dimMapScopeKind = iota
	// ScopeThread allows the dim map to be realized through thread mapping
	// (shared memory / register shuffles), not only through unrolling.
	ScopeThread
	// ScopeGlobal allows the dim map to be realized through global memory,
	// subject to the policy described by GlobalScope.
	ScopeGlobal
)

// GlobalScope qualifies a ScopeGlobal DimMapScope: whether the temporary
// buffer used to realize the mapping may live in non-shared (device-global)
// memory.  Exposed so a Device can veto it (see Device.AllowGlobalTempMemory,
// grounding decision 1 in the design ledger).
type GlobalScope struct {
	AllowsNonSharedMem bool
}

// Local constructs a ScopeLocal DimMapScope.
func Local() DimMapScope {
	return DimMapScope{kind: ScopeLocal}
}

// Thread constructs a ScopeThread DimMapScope.
func Thread() DimMapScope {
	return DimMapScope{kind: ScopeThread}
}

// Global constructs a ScopeGlobal DimMapScope.
func Global(allowsNonSharedMem bool) DimMapScope {
	return DimMapScope{kind: ScopeGlobal, global: GlobalScope{AllowsNonSharedMem: allowsNonSharedMem}}
}

// Kind reports which of ScopeLocal/ScopeThread/ScopeGlobal this scope is.
func (s DimMapScope) Kind() dimMapScopeKind {
	return s.kind
}

// AsGlobal returns the GlobalScope payload and true if this is a ScopeGlobal.
func (s DimMapScope) AsGlobal() (GlobalScope, bool) {
	return s.global, s.kind == ScopeGlobal
}

// DimMapPair relates an iteration dimension of the using instruction (LHS) to
// an iteration dimension of the instruction producing the operand (RHS); the
// two must eventually be merged, mapped across threads, or realized through
// memory, depending on DimMapScope.
type DimMapPair struct {
	Lhs DimId
	Rhs DimId
}

// operandKind discriminates the Operand sum type (spec.md S3: "Int | Float |
// Param | Addr | Variable | Index(dim) | Inst(src, type, DimMap, scope) |
// InductionVar(id, base)").
type operandKind uint8

const (
	operandInt operandKind = iota
	operandFloat
	operandParam
	operandAddr
	operandVariable
	operandIndex
	operandInst
	operandInductionVar
)

// Operand is a value consumed by an Instruction: an immediate, a kernel
// parameter, a memory address, a reference to a Variable, a dimension's
// induction value (Index), the result of another Instruction subject to a
// DimMap, or an induction variable.
type Operand struct {
	kind operandKind
	typ  Type

	intVal   int64
	floatVal float64
	paramIdx uint32
	addrMem  MemId
	variable VarId
	dim      DimId

	inst    InstId
	dimMap  []DimMapPair
	scope   DimMapScope

	indVar     InductionVarId
	indVarBase *Operand
}

// IntOperand constructs an integer immediate operand.
func IntOperand(typ Type, value int64) Operand {
	return Operand{kind: operandInt, typ: typ, intVal: value}
}

// FloatOperand constructs a floating-point immediate operand.
func FloatOperand(typ Type, value float64) Operand {
	return Operand{kind: operandFloat, typ: typ, floatVal: value}
}

// ParamOperand constructs an operand referencing the paramIdx-th kernel
// parameter.
func ParamOperand(typ Type, paramIdx uint32) Operand {
	return Operand{kind: operandParam, typ: typ, paramIdx: paramIdx}
}

// AddrOperand constructs an operand holding the base address of a memory
// block.
func AddrOperand(mem MemId) Operand {
	return Operand{kind: operandAddr, typ: PtrType(mem), addrMem: mem}
}

// VariableOperand constructs an operand referencing a Variable's value.
func VariableOperand(typ Type, v VarId) Operand {
	return Operand{kind: operandVariable, typ: typ, variable: v}
}

// IndexOperand constructs an operand holding a dimension's current induction
// value.
func IndexOperand(typ Type, dim DimId) Operand {
	return Operand{kind: operandIndex, typ: typ, dim: dim}
}

// InstOperand constructs an operand referencing the result of another
// instruction, related to the user's iteration dimensions via dimMap under
// the given scope.
func InstOperand(typ Type, src InstId, dimMap []DimMapPair, scope DimMapScope) Operand {
	dm := append([]DimMapPair(nil), dimMap...)

	return Operand{kind: operandInst, typ: typ, inst: src, dimMap: dm, scope: scope}
}

// InductionVarOperand constructs an operand referencing an induction
// variable's current value, with base as its initial-value operand (used by
// the invariants algorithm to recurse into the base's own requirements).
func InductionVarOperand(typ Type, id InductionVarId, base Operand) Operand {
	b := base

	return Operand{kind: operandInductionVar, typ: typ, indVar: id, indVarBase: &b}
}

// Type returns the operand's type.
func (o Operand) Type() Type {
	return o.typ
}

// IsInt reports whether this is an integer immediate.
func (o Operand) IsInt() bool { return o.kind == operandInt }

// IsFloat reports whether this is a floating point immediate.
func (o Operand) IsFloat() bool { return o.kind == operandFloat }

// IsParam reports whether this references a kernel parameter.
func (o Operand) IsParam() bool { return o.kind == operandParam }

// IsAddr reports whether this holds a memory block's base address.
func (o Operand) IsAddr() bool { return o.kind == operandAddr }

// IsVariable reports whether this references a Variable.
func (o Operand) IsVariable() bool { return o.kind == operandVariable }

// IsIndex reports whether this is a dimension index.
func (o Operand) IsIndex() bool { return o.kind == operandIndex }

// IsInst reports whether this references another instruction's result.
func (o Operand) IsInst() bool { return o.kind == operandInst }

// IsInductionVar reports whether this references an induction variable.
func (o Operand) IsInductionVar() bool { return o.kind == operandInductionVar }

// IntValue returns the immediate integer value, panicking if not an Int
// operand.
func (o Operand) IntValue() int64 {
	if o.kind != operandInt {
		panic("not an integer operand")
	}

	return o.intVal
}

// FloatValue returns the immediate float value, panicking if not a Float
// operand.
func (o Operand) FloatValue() float64 {
	if o.kind != operandFloat {
		panic("not a float operand")
	}

	return o.floatVal
}

// ParamIndex returns the referenced parameter index, panicking if not a Param
// operand.
func (o Operand) ParamIndex() uint32 {
	if o.kind != operandParam {
		panic("not a param operand")
	}

	return o.paramIdx
}

// AddrMem returns the referenced memory block, panicking if not an Addr
// operand.
func (o Operand) AddrMem() MemId {
	if o.kind != operandAddr {
		panic("not an addr operand")
	}

	return o.addrMem
}

// Variable returns the referenced VarId, panicking if not a Variable operand.
func (o Operand) Variable() VarId {
	if o.kind != operandVariable {
		panic("not a variable operand")
	}

	return o.variable
}

// Dim returns the referenced DimId, panicking if not an Index operand.
func (o Operand) Dim() DimId {
	if o.kind != operandIndex {
		panic("not an index operand")
	}

	return o.dim
}

// Source returns the producing InstId, the DimMap pairs, and the scope,
// panicking if not an Inst operand.
func (o Operand) Source() (InstId, []DimMapPair, DimMapScope) {
	if o.kind != operandInst {
		panic("not an inst operand")
	}

	return o.inst, o.dimMap, o.scope
}

// InductionVar returns the referenced InductionVarId and its base operand,
// panicking if not an InductionVar operand.
func (o Operand) InductionVar() (InductionVarId, Operand) {
	if o.kind != operandInductionVar {
		panic("not an induction-var operand")
	}

	return o.indVar, *o.indVarBase
}

//nolint:revive
func (o Operand) String() string {
	switch o.kind {
	case operandInt:
		return fmt.Sprintf("%d", o.intVal)
	case operandFloat:
		return fmt.Sprintf("%g", o.floatVal)
	case operandParam:
		return fmt.Sprintf("%%param%d", o.paramIdx)
	case operandAddr:
		return fmt.Sprintf("&%s", o.addrMem)
	case operandVariable:
		return o.variable.String()
	case operandIndex:
		return fmt.Sprintf("index(%s)", o.dim)
	case operandInst:
		return fmt.Sprintf("%s", o.inst)
	case operandInductionVar:
		return o.indVar.String()
	default:
		return "<invalid operand>"
	}
}
