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

func TestAddDimRejectsTooSmallStaticSize(t *testing.T) {
	f := NewFunction(nil)

	_, err := f.AddDim(KnownSizes(1))
	assert.True(t, err != nil)
}

func TestAddDimAcceptsDynamicSize(t *testing.T) {
	f := NewFunction(nil)

	d, err := f.AddDim(DynamicSize())
	assert.True(t, err == nil)
	assert.Equal(t, DimId(0), d)
	assert.Equal(t, 1, f.NumDims())
}

func TestFreezeBlocksTopLevelGrowth(t *testing.T) {
	f := NewFunction(nil)
	f.Freeze()

	assert.True(t, f.IsFrozen())

	defer func() {
		if recover() == nil {
			t.Fatal("expected AddInst on a frozen Function to panic")
		}
	}()

	f.AddInst(nil, IntType(32), false)
}

func TestStatementDispatchesByKind(t *testing.T) {
	f := NewFunction(nil)

	d, err := f.AddDim(KnownSizes(4))
	assert.True(t, err == nil)

	inst := f.AddInst(nil, IntType(32), true)

	dimStmt := f.Statement(f.Dim(d).StmtId())
	_, isDim := dimStmt.AsDim()
	assert.True(t, isDim)

	instStmt := f.Statement(f.Inst(inst).StmtId())
	_, isInst := instStmt.AsInst()
	assert.True(t, isInst)
}

func TestAddVariableBoundMemBlockBindsVariable(t *testing.T) {
	f := NewFunction(nil)

	defInst := f.AddInst(nil, IntType(32), true)
	v := f.AddVariable(IntType(32), defInst)
	mem := f.AddVariableBoundMemBlock(v, 4)

	f.Variable(v).BindMemBlock(mem)

	memOpt := f.Variable(v).MemBlock()
	assert.True(t, memOpt.HasValue())
	assert.Equal(t, mem, memOpt.Unwrap())

	varOpt := f.MemBlock(mem).Variable()
	assert.True(t, varOpt.HasValue())
	assert.Equal(t, v, varOpt.Unwrap())
}
