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
package kernel

import (
	"github.com/telamon-project/telamon/pkg/ir"
)

// DimMap builds two dimensions d0, d1 (each of the given size) and an
// instruction using, across them, a DimMap operand referencing a producer
// instruction nested in d1 while the consumer is nested in d0 under
// ScopeGlobal -- the shape needed to exercise the dim_not_mapped trigger
// once DimMapping(d0, d1) narrows to MemLowered alone (lhs, rhs; consumer,
// producer).
func DimMap(size uint32) (fun *ir.Function, d0, d1 ir.DimId, consumer ir.InstId) {
	i32 := ir.IntType(32)

	fun = ir.NewFunction(nil)

	d0, err := fun.AddDim(ir.KnownSizes(size))
	if err != nil {
		panic(err)
	}

	d1, err = fun.AddDim(ir.KnownSizes(size))
	if err != nil {
		panic(err)
	}

	producer := fun.AddInst(nil, i32, true)
	fun.Inst(producer).SetIterationDim(d1)

	consumer = fun.AddInst([]ir.Operand{
		ir.InstOperand(i32, producer, []ir.DimMapPair{{Lhs: d0, Rhs: d1}}, ir.Global(false)),
	}, i32, true)
	fun.Inst(consumer).SetIterationDim(d0)

	return fun, d0, d1, consumer
}
