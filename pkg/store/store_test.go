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
package store

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/util/assert"
)

func newFunWithDims(t *testing.T, n int) *ir.Function {
	t.Helper()

	fun := ir.NewFunction(nil)
	for i := 0; i < n; i++ {
		if _, err := fun.AddDim(ir.KnownSizes(4)); err != nil {
			t.Fatalf("AddDim: %v", err)
		}
	}

	fun.Freeze()

	return fun
}

func TestNewSeedsFullUniverse(t *testing.T) {
	fun := newFunWithDims(t, 2)
	s := New(fun)

	assert.Equal(t, domain.DimKindAll, s.DimKind(ir.DimId(0)))
	assert.Equal(t, domain.DimMappingAll, s.DimMapping(ir.DimId(0), ir.DimId(1)))
}

func TestOrderSymmetricReversal(t *testing.T) {
	fun := newFunWithDims(t, 2)
	s := New(fun)

	a := ir.NewDimStmtId(ir.DimId(0), 0)
	b := ir.NewDimStmtId(ir.DimId(1), 1)

	s.SetOrder(a, b, domain.Before)

	assert.Equal(t, domain.Before, s.Order(a, b))
	assert.Equal(t, domain.After, s.Order(b, a))
}

func TestCloneIsIndependent(t *testing.T) {
	fun := newFunWithDims(t, 1)
	s := New(fun)

	clone := s.Clone()
	clone.SetDimKind(ir.DimId(0), domain.Loop)

	assert.Equal(t, domain.DimKindAll, s.DimKind(ir.DimId(0)))
	assert.Equal(t, domain.Loop, clone.DimKind(ir.DimId(0)))
}
