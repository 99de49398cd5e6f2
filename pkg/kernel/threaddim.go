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

// ThreadDim builds a single instruction not yet nested in a dimension, and a
// free-standing dimension not yet an iteration dim of anything and not yet a
// thread dimension of the function, ready to drive engine.AddIterationDim /
// engine.AddThreadDim (the T4 trigger) directly, the way kernel.Layout drives
// engine.LowerLayout (T3).
func ThreadDim(size uint32) (fun *ir.Function, inst ir.InstId, dim ir.DimId) {
	i32 := ir.IntType(32)

	fun = ir.NewFunction(nil)

	inst = fun.AddInst(nil, i32, true)

	dim, err := fun.AddDim(ir.KnownSizes(size))
	if err != nil {
		panic(err)
	}

	return fun, inst, dim
}
