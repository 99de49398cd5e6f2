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

func TestConstSize(t *testing.T) {
	s := ConstSize(4)

	assert.True(t, s.IsKnown())
	assert.Equal(t, uint32(4), s.Value())
}

func TestUnknownSizePanicsOnValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Value on an unknown Size to panic")
		}
	}()

	UnknownSize().Value()
}

func TestKnownSizesValues(t *testing.T) {
	p := KnownSizes(2, 4, 8)

	assert.False(t, p.IsDynamic())
	assert.Equal(t, []uint32{2, 4, 8}, p.Values())
}

func TestDynamicSizePanicsOnValues(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Values on a DynamicSize to panic")
		}
	}()

	DynamicSize().Values()
}

func TestTypeAccessors(t *testing.T) {
	it := IntType(32)
	assert.True(t, it.IsInteger())
	assert.Equal(t, uint32(32), it.BitWidth())

	ft := FloatType(64)
	assert.True(t, ft.IsFloat())

	pt := PtrType(MemId(3))
	assert.True(t, pt.IsPointer())
	assert.Equal(t, MemId(3), pt.MemBlock())
}
