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

func TestNewLeq(t *testing.T) {
	s := NewLeq(5, 2)

	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
	assert.Equal(t, uint(3), s.Count())
}

func TestNumericSetIntersect(t *testing.T) {
	a := NewFull(4)
	b := NewLeq(4, 1)

	narrowed, changed := a.Intersect(b)

	assert.True(t, changed)
	assert.Equal(t, []uint{0, 1}, narrowed.Values())

	again, changed := narrowed.Intersect(b)
	assert.False(t, changed)
	assert.Equal(t, []uint{0, 1}, again.Values())
}

func TestNumericSetRestrictLeqToEmpty(t *testing.T) {
	s := NewSingleton(4, 3)

	narrowed, changed := s.RestrictLeq(1)

	assert.True(t, changed)
	assert.True(t, narrowed.IsEmpty())
}

func TestNumericSetClone(t *testing.T) {
	s := NewLeq(4, 2)
	clone := s.Clone()

	narrowed, _ := clone.Intersect(NewSingleton(4, 0))

	assert.Equal(t, uint(3), s.Count())
	assert.Equal(t, uint(1), narrowed.Count())
}
