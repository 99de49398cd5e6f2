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
package action

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/util/assert"
)

func TestOrderActionRoundTrip(t *testing.T) {
	a := OrderAction(ir.NewDimStmtId(1, 0), ir.NewDimStmtId(2, 1), domain.Before)

	assert.Equal(t, KindOrder, a.Kind())

	lhs, rhs, restrict := a.Order()
	assert.Equal(t, ir.NewDimStmtId(1, 0), lhs)
	assert.Equal(t, ir.NewDimStmtId(2, 1), rhs)
	assert.Equal(t, domain.Before, restrict)
}

func TestDimKindActionRoundTrip(t *testing.T) {
	a := DimKindAction(ir.DimId(3), domain.Loop|domain.Unroll)

	assert.Equal(t, KindDimKind, a.Kind())

	dim, restrict := a.DimKind()
	assert.Equal(t, ir.DimId(3), dim)
	assert.Equal(t, domain.Loop|domain.Unroll, restrict)
}

func TestMemSpaceActionRoundTrip(t *testing.T) {
	a := MemSpaceAction(ir.MemId(2), domain.SpaceShared)

	assert.Equal(t, KindMemSpace, a.Kind())

	mem, restrict := a.MemSpace()
	assert.Equal(t, ir.MemId(2), mem)
	assert.Equal(t, domain.SpaceShared, restrict)
}
