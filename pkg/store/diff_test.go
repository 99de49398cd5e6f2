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

	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/util/assert"
)

func TestNewDomainDiffIsEmpty(t *testing.T) {
	d := NewDomainDiff()
	assert.True(t, d.IsEmpty())
}

func TestTouchDimPairMarksDirty(t *testing.T) {
	d := NewDomainDiff()
	d.TouchDimPair(ir.DimId(1), ir.DimId(2))

	assert.False(t, d.IsEmpty())
	assert.Equal(t, 1, len(d.DimPairs))
	assert.Equal(t, [2]ir.DimId{1, 2}, d.DimPairs[0])
}

func TestMergeAppendsAllFields(t *testing.T) {
	a := NewDomainDiff()
	a.TouchDim(ir.DimId(1))

	b := NewDomainDiff()
	b.TouchDim(ir.DimId(2))
	b.TouchInst(ir.InstId(3))

	a.Merge(b)

	assert.Equal(t, []ir.DimId{1, 2}, a.Dims)
	assert.Equal(t, []ir.InstId{3}, a.Insts)
}
