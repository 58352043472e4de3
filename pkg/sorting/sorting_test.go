// Copyright Cairn Labs Ltd.
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
package sorting

import (
	"cmp"
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// Inputs large enough to push both algorithms past their insertion-sorted
// base case, plus the degenerate shapes.
func inputs() [][]int {
	var (
		sorted   = make([]int, 500)
		reversed = make([]int, 500)
		equal    = make([]int, 500)
		random   = make([]int, 5000)
		sawtooth = make([]int, 1000)
	)
	//
	for i := range sorted {
		sorted[i] = i
		reversed[i] = 500 - i
		equal[i] = 42
	}
	//
	for i := range random {
		random[i] = int(rand.IntN(1000))
	}
	// Repeating pattern provokes unbalanced quicksort partitions
	for i := range sawtooth {
		sawtooth[i] = i % 7
	}
	//
	return [][]int{{}, {1}, {2, 1}, sorted, reversed, equal, random, sawtooth}
}

func Test_Stable_Sorts(t *testing.T) {
	for _, input := range inputs() {
		items := append([]int(nil), input...)
		//
		Stable(items, cmp.Compare)
		//
		requireSorted(t, items)
		requireSameElements(t, input, items)
	}
}

func Test_Unstable_Sorts(t *testing.T) {
	for _, input := range inputs() {
		items := append([]int(nil), input...)
		//
		if len(items) > 0 {
			Unstable[int](unsafe.Pointer(&items[0]), uint(len(items)), cmp.Compare)
		} else {
			Unstable[int](nil, 0, cmp.Compare)
		}
		//
		requireSorted(t, items)
		requireSameElements(t, input, items)
	}
}

// Stable preserves the relative order of elements comparing equal, across
// merge boundaries.
func Test_Stable_IsStable(t *testing.T) {
	type record struct {
		key int
		seq int
	}
	//
	items := make([]record, 1000)
	//
	for i := range items {
		items[i] = record{key: rand.IntN(3), seq: i}
	}
	//
	Stable(items, func(a, b record) int { return cmp.Compare(a.key, b.key) })
	//
	for i := 1; i < len(items); i++ {
		require.LessOrEqual(t, items[i-1].key, items[i].key)
		//
		if items[i-1].key == items[i].key {
			require.Less(t, items[i-1].seq, items[i].seq)
		}
	}
}

// An adversarial comparator forces quicksort into its heapsort fallback;
// the result must still be sorted.
func Test_Unstable_DepthFallback(t *testing.T) {
	// Organ-pipe input provokes poor median-of-three pivots
	items := make([]int, 4096)
	//
	for i := range items {
		if i%2 == 0 {
			items[i] = i
		} else {
			items[i] = len(items) - i
		}
	}
	//
	Unstable[int](unsafe.Pointer(&items[0]), uint(len(items)), cmp.Compare)
	//
	requireSorted(t, items)
}

func Test_Stable_Comparator(t *testing.T) {
	items := []string{"ccc", "a", "bb"}
	//
	Stable(items, func(a, b string) int { return cmp.Compare(len(a), len(b)) })
	//
	require.Equal(t, []string{"a", "bb", "ccc"}, items)
}

// ============================================================================
// Helpers
// ============================================================================

func requireSorted(t *testing.T, items []int) {
	t.Helper()
	//
	for i := 1; i < len(items); i++ {
		require.LessOrEqual(t, items[i-1], items[i])
	}
}

// requireSameElements checks the output is a permutation of the input.
func requireSameElements(t *testing.T, input []int, output []int) {
	t.Helper()
	//
	var (
		in  = map[int]int{}
		out = map[int]int{}
	)
	//
	for _, v := range input {
		in[v]++
	}
	//
	for _, v := range output {
		out[v]++
	}
	//
	require.Equal(t, in, out)
}
