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
package operand

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/util/assert"
)

func TestInstOperandInvariantsLocalScope(t *testing.T) {
	fun := ir.NewFunction(nil)

	d0, err := fun.AddDim(ir.KnownSizes(4))
	assert.True(t, err == nil)

	d1, err := fun.AddDim(ir.KnownSizes(4))
	assert.True(t, err == nil)

	producer := fun.AddInst(nil, ir.IntType(32), true)
	fun.Inst(producer).SetIterationDim(d1)

	op := ir.InstOperand(ir.IntType(32), producer, []ir.DimMapPair{{Lhs: d0, Rhs: d1}}, ir.Local())
	consumer := fun.AddInst([]ir.Operand{op}, ir.IntType(32), true)
	fun.Inst(consumer).SetIterationDim(d0)

	actions := InstInvariants(fun, fun.Inst(consumer))

	var sawUnrollMap, sawBefore bool

	for _, a := range actions {
		switch a.Kind() {
		case action.KindDimMapping:
			lhs, rhs, mapping := a.DimMapping()
			assert.Equal(t, d0, lhs)
			assert.Equal(t, d1, rhs)
			assert.Equal(t, domain.UnrollMap, mapping)
			sawUnrollMap = true
		case action.KindOrder:
			_, _, restrict := a.Order()
			if restrict.Contains(domain.Before) {
				sawBefore = true
			}
		}
	}

	assert.True(t, sawUnrollMap)
	assert.True(t, sawBefore)
}

func TestIndexOperandInvariants(t *testing.T) {
	fun := ir.NewFunction(nil)

	d0, err := fun.AddDim(ir.KnownSizes(4))
	assert.True(t, err == nil)

	inst := fun.AddInst([]ir.Operand{ir.IndexOperand(ir.IntType(32), d0)}, ir.IntType(32), true)

	actions := InstInvariants(fun, fun.Inst(inst))
	assert.Equal(t, 1, len(actions))

	_, _, restrict := actions[0].Order()
	assert.Equal(t, domain.Outer, restrict)
}
