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
package engine

import (
	"testing"

	"github.com/telamon-project/telamon/pkg/action"
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/store"
	"github.com/telamon-project/telamon/pkg/util/assert"
	"github.com/telamon-project/telamon/pkg/util/collection/iter"
)

// TestApplyDecisionsIsConfluentAcrossOrderings is spec.md S8's confluence
// property: three independent narrowings on three separate dimensions must
// reach the same fixpoint domain no matter what order ApplyDecisions applies
// them in. iter.EnumerateElements generates every length-3 tuple over the
// three action indices; each permutation (a tuple visiting all three
// indices exactly once) is replayed against a fresh store and checked
// against a baseline run.
func TestApplyDecisionsIsConfluentAcrossOrderings(t *testing.T) {
	fun := ir.NewFunction(nil)

	dims := make([]ir.DimId, 3)

	for i := range dims {
		d, err := fun.AddDim(ir.KnownSizes(4))
		assert.True(t, err == nil)
		dims[i] = d
	}

	fun.Freeze()

	actions := []action.Action{
		action.DimKindAction(dims[0], domain.Loop|domain.Unroll),
		action.DimKindAction(dims[1], domain.Vector|domain.Thread),
		action.DimKindAction(dims[2], domain.Block),
	}

	baseline := store.New(fun)
	assert.True(t, ApplyDecisions(actions, fun, baseline, nil) == nil)

	permutations := permutationsOf3()
	assert.True(t, len(permutations) == 6, "expected 6 distinct orderings of 3 actions")

	for _, order := range permutations {
		dom := store.New(fun)

		ordered := make([]action.Action, len(order))
		for i, idx := range order {
			ordered[i] = actions[idx]
		}

		assert.True(t, ApplyDecisions(ordered, fun, dom, nil) == nil)

		for _, d := range dims {
			assert.Equal(t, baseline.DimKind(d), dom.DimKind(d))
		}
	}
}

// permutationsOf3 enumerates every ordering of the indices {0, 1, 2} by
// filtering iter.EnumerateElements's length-3 tuples (which admit
// repetition) down to those that visit each index exactly once.
func permutationsOf3() [][]uint {
	var result [][]uint

	e := iter.EnumerateElements(3, []uint{0, 1, 2})
	for e.HasNext() {
		tuple := e.Next()

		seen := [3]bool{}

		distinct := true
		for _, v := range tuple {
			if seen[v] {
				distinct = false
				break
			}

			seen[v] = true
		}

		if distinct {
			result = append(result, append([]uint(nil), tuple...))
		}
	}

	return result
}
