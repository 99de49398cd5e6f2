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
package domain

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/util/assert"
)

func TestFlagsIntersect(t *testing.T) {
	narrowed, changed := DimKindAll.Intersect(Loop | Unroll)

	assert.Equal(t, DimKind(Loop|Unroll), narrowed)
	assert.True(t, changed)

	again, changed := narrowed.Intersect(Loop | Unroll)
	assert.Equal(t, narrowed, again)
	assert.False(t, changed)
}

func TestFlagsIntersectToDead(t *testing.T) {
	narrowed, changed := Loop.Intersect(Vector)

	assert.True(t, narrowed.IsEmpty())
	assert.True(t, changed)
}

func TestFlagsIsSingleton(t *testing.T) {
	assert.True(t, Loop.IsSingleton())
	assert.False(t, DimKindAll.IsSingleton())
	assert.False(t, DimKind(0).IsSingleton())
}

func TestFlagsContains(t *testing.T) {
	assert.True(t, DimKindAll.Contains(Thread|Block))
	assert.False(t, (Thread | Block).Contains(Loop))
}

func TestDimKindIsThreadLike(t *testing.T) {
	assert.True(t, (Thread | Block).IsThreadLike())
	assert.False(t, (Loop | Thread).IsThreadLike())
	assert.False(t, DimKind(0).IsThreadLike())
}
