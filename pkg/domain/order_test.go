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

func TestOrderReverse(t *testing.T) {
	assert.Equal(t, After, Before.Reverse())
	assert.Equal(t, Before, After.Reverse())
	assert.Equal(t, Merged, Merged.Reverse())
	assert.Equal(t, Inner, Outer.Reverse())
	assert.Equal(t, Outer, Inner.Reverse())
	assert.Equal(t, Before|Merged, (After | Merged).Reverse())
}

func TestOrderIntersectToDead(t *testing.T) {
	narrowed, changed := Before.Intersect(After)

	assert.True(t, narrowed.IsEmpty())
	assert.True(t, changed)
}
