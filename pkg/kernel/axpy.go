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

// Package kernel builds small, hand-constructed ir.Function instances used
// to exercise the engine and the SearchSpace facade, standing in for the
// telamon-gen-driven kernels (AXPY, dim-map, layout lowering) described
// throughout the corpus's integration tests, since no higher-level kernel
// DSL is in scope here.
package kernel

import (
	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
)

// AXPY is the minimal skeleton y[i] = a*x[i]: a single dimension d0, a load
// from x, a multiply by the scalar parameter a, and a store to y.  The
// single initial action restricts d0's DimKind to the subset a single,
// non-nested loop can take (Loop, Unroll or Vector, never Thread/Block,
// since there is nothing to parallelize this kernel's one dimension
// against).
func AXPY(size uint32) (fun *ir.Function, d0 ir.DimId, initial []action.Action) {
	f32 := ir.FloatType(32)

	fun = ir.NewFunction([]ir.Type{f32})

	d0, err := fun.AddDim(ir.KnownSizes(size))
	if err != nil {
		panic(err)
	}

	x := fun.AddGlobalMemBlock(size * 4)
	y := fun.AddGlobalMemBlock(size * 4)

	ld := fun.AddInst([]ir.Operand{ir.AddrOperand(x)}, f32, true)
	fun.Inst(ld).SetIterationDim(d0)

	if err := fun.Inst(ld).SetAccessPattern(ir.TensorPattern(x, map[ir.DimId]ir.Size{d0: ir.ConstSize(4)})); err != nil {
		panic(err)
	}

	mul := fun.AddInst([]ir.Operand{
		ir.InstOperand(f32, ld, nil, ir.Local()),
		ir.ParamOperand(f32, 0),
	}, f32, true)
	fun.Inst(mul).SetIterationDim(d0)

	st := fun.AddInst([]ir.Operand{
		ir.AddrOperand(y),
		ir.InstOperand(f32, mul, nil, ir.Local()),
	}, ir.Type{}, false)
	fun.Inst(st).SetIterationDim(d0)

	if err := fun.Inst(st).SetAccessPattern(ir.TensorPattern(y, map[ir.DimId]ir.Size{d0: ir.ConstSize(4)})); err != nil {
		panic(err)
	}

	initial = []action.Action{
		action.DimKindAction(d0, domain.Loop|domain.Unroll|domain.Vector),
	}

	return fun, d0, initial
}
