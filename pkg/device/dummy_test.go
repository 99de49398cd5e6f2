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
package device

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/util/assert"
)

func TestDummyCheckTypeAcceptsSupportedIntegerWidths(t *testing.T) {
	d := NewDummy()

	for _, width := range []uint32{1, 8, 16, 32, 64} {
		assert.True(t, d.CheckType(ir.IntType(width)) == nil, "width %d should be valid", width)
	}
}

func TestDummyCheckTypeAcceptsSupportedFloatWidths(t *testing.T) {
	d := NewDummy()

	for _, width := range []uint32{32, 64} {
		assert.True(t, d.CheckType(ir.FloatType(width)) == nil, "width %d should be valid", width)
	}
}

func TestDummyCheckTypeRejectsUnsupportedIntegerWidth(t *testing.T) {
	d := NewDummy()

	err := d.CheckType(ir.IntType(7))
	assert.True(t, err != nil)
}

func TestDummyCheckTypeRejectsUnsupportedFloatWidth(t *testing.T) {
	d := NewDummy()

	err := d.CheckType(ir.FloatType(16))
	assert.True(t, err != nil)
}

func TestDummyCheckTypeAcceptsPointer(t *testing.T) {
	d := NewDummy()

	err := d.CheckType(ir.PtrType(ir.MemId(0)))
	assert.True(t, err == nil)
}
