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

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/util/assert"
)

func TestInstOperandSource(t *testing.T) {
	pairs := []DimMapPair{{Lhs: 1, Rhs: 2}}
	op := InstOperand(IntType(32), InstId(7), pairs, Thread())

	assert.True(t, op.IsInst())

	src, dimMap, scope := op.Source()
	assert.Equal(t, InstId(7), src)
	assert.Equal(t, pairs, dimMap)
	assert.Equal(t, ScopeThread, scope.Kind())
}

func TestDimMapScopeAsGlobal(t *testing.T) {
	scope := Global(true)

	global, ok := scope.AsGlobal()
	assert.True(t, ok)
	assert.True(t, global.AllowsNonSharedMem)

	_, ok = Local().AsGlobal()
	assert.False(t, ok)
}

func TestOperandAccessorPanicsOnWrongKind(t *testing.T) {
	op := IntOperand(IntType(32), 5)

	defer func() {
		if recover() == nil {
			t.Fatal("expected AddrMem on an Int operand to panic")
		}
	}()

	op.AddrMem()
}

func TestIndexOperand(t *testing.T) {
	op := IndexOperand(IntType(32), DimId(2))

	assert.True(t, op.IsIndex())
	assert.Equal(t, DimId(2), op.Dim())
}
