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

// Layout builds a memory block m bound to a Variable, three store
// dimensions and three load dimensions of the given size, ready to drive
// engine.LowerLayout / the T3 trigger directly (the shape lower_layout
// itself needs, rather than a full lowering run through dim_not_mapped).
func Layout(size uint32) (fun *ir.Function, m ir.MemId, stDims, ldDims [3]ir.DimId) {
	i32 := ir.IntType(32)

	fun = ir.NewFunction(nil)

	def := fun.AddInst(nil, i32, true)
	v := fun.AddVariable(i32, def)
	m = fun.AddVariableBoundMemBlock(v, size*4)
	fun.Variable(v).BindMemBlock(m)

	for i := range stDims {
		d, err := fun.AddDim(ir.KnownSizes(size))
		if err != nil {
			panic(err)
		}

		stDims[i] = d
	}

	for i := range ldDims {
		d, err := fun.AddDim(ir.KnownSizes(size))
		if err != nil {
			panic(err)
		}

		ldDims[i] = d
	}

	return fun, m, stDims, ldDims
}
