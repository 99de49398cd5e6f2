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
	"github.com/telamon-project/telamon/pkg/util/collection/set"
)

func TestUnknownPatternIsNotTensor(t *testing.T) {
	p := UnknownPattern(MemId(0))

	assert.False(t, p.IsTensor())
	assert.False(t, p.IsConsecutive(DimId(0), IntType(32)))
}

func TestTensorPatternStride(t *testing.T) {
	p := TensorPattern(MemId(1), map[DimId]Size{0: ConstSize(4)})

	assert.True(t, p.IsTensor())

	stride, ok := p.Stride(DimId(0))
	assert.True(t, ok)
	assert.Equal(t, ConstSize(4), stride)

	assert.True(t, p.IsConsecutive(DimId(0), IntType(32)))
	assert.False(t, p.IsConsecutive(DimId(0), IntType(64)))
}

func TestAccessPatternCheckRejectsUnknownDim(t *testing.T) {
	p := TensorPattern(MemId(0), map[DimId]Size{5: ConstSize(4)})

	iterDims := set.NewSortedSet[DimId]()
	iterDims.Insert(DimId(1))

	err := p.Check(iterDims)
	assert.True(t, err != nil)
}

func TestAccessPatternCheckAcceptsKnownDim(t *testing.T) {
	p := TensorPattern(MemId(0), map[DimId]Size{5: ConstSize(4)})

	iterDims := set.NewSortedSet[DimId]()
	iterDims.Insert(DimId(5))

	err := p.Check(iterDims)
	assert.True(t, err == nil)
}
