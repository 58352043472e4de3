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

// Package sorting supplies the two comparison-based sorting entry points the
// span package delegates to: a stable merge sort over a slice, and an
// unstable introsort over a raw address/length pair.  Comparators return
// negative, zero or positive in the manner of cmp.Compare.
package sorting

import (
	"math/bits"
	"unsafe"
)

// Partitions at or below this size are insertion sorted directly.
const insertionThreshold = 12

// Stable sorts the given items in place under the given comparator,
// preserving the relative order of elements which compare equal.  This is a
// bottom-up merge sort with an insertion-sorted base case, costing one
// temporary buffer of the input's size.
func Stable[T any](items []T, compare func(T, T) int) {
	n := len(items)
	//
	if n < 2 {
		return
	}
	// Establish sorted runs of the base width
	for lo := 0; lo < n; lo += insertionThreshold {
		insertionSort(items[lo:min(lo+insertionThreshold, n)], compare)
	}
	// Merge runs of doubling width
	buffer := make([]T, n)
	//
	for width := insertionThreshold; width < n; width *= 2 {
		for lo := 0; lo+width < n; lo += 2 * width {
			hi := min(lo+2*width, n)
			merge(items[lo:hi], width, buffer, compare)
		}
	}
}

// Unstable sorts the length elements starting at the given address in place
// under the given comparator.  Ordering of equal elements is not preserved.
// This is an introsort: quicksort with a median-of-three pivot, falling back
// to heapsort once the recursion depth exceeds 2*log2(length), and to
// insertion sort on small partitions.
func Unstable[T any](data unsafe.Pointer, length uint, compare func(T, T) int) {
	if length < 2 {
		return
	}
	//
	items := unsafe.Slice((*T)(data), length)
	//
	introsort(items, 2*bits.Len(length), compare)
}

// ============================================================================
// Stable helpers
// ============================================================================

// insertionSort sorts a small slice in place.  Elements are only ever moved
// over strictly greater elements, hence this is stable.
func insertionSort[T any](items []T, compare func(T, T) int) {
	for i := 1; i < len(items); i++ {
		ith := items[i]
		j := i
		//
		for j > 0 && compare(items[j-1], ith) > 0 {
			items[j] = items[j-1]
			j--
		}
		//
		items[j] = ith
	}
}

// merge combines the two adjacent sorted runs items[:mid] and items[mid:]
// into a single sorted run.  Elements of the left run win ties, which is
// what makes the overall sort stable.
func merge[T any](items []T, mid int, buffer []T, compare func(T, T) int) {
	var (
		left  = buffer[:mid]
		i, j  = 0, mid
		k     = 0
		count = copy(left, items[:mid])
	)
	//
	for i < count && j < len(items) {
		if compare(items[j], left[i]) < 0 {
			items[k] = items[j]
			j++
		} else {
			items[k] = left[i]
			i++
		}
		//
		k++
	}
	// Drain remaining left run (right run is already in place)
	for i < count {
		items[k] = left[i]
		i++
		k++
	}
}

// ============================================================================
// Unstable helpers
// ============================================================================

// introsort recursively quicksorts, switching to heapsort when the depth
// budget is exhausted.
func introsort[T any](items []T, depth int, compare func(T, T) int) {
	for len(items) > insertionThreshold {
		if depth == 0 {
			heapSort(items, compare)
			return
		}
		//
		depth--
		p := partition(items, compare)
		// Recurse into the smaller half, loop on the larger
		if p < len(items)-p {
			introsort(items[:p], depth, compare)
			items = items[p+1:]
		} else {
			introsort(items[p+1:], depth, compare)
			items = items[:p]
		}
	}
	//
	insertionSort(items, compare)
}

// partition reorders items around a median-of-three pivot, returning the
// pivot's final position.
func partition[T any](items []T, compare func(T, T) int) int {
	var (
		hi  = len(items) - 1
		mid = len(items) / 2
	)
	// Median of first, middle, last
	if compare(items[mid], items[0]) < 0 {
		items[mid], items[0] = items[0], items[mid]
	}
	//
	if compare(items[hi], items[0]) < 0 {
		items[hi], items[0] = items[0], items[hi]
	}
	//
	if compare(items[hi], items[mid]) < 0 {
		items[hi], items[mid] = items[mid], items[hi]
	}
	// Park pivot just before the end
	items[mid], items[hi-1] = items[hi-1], items[mid]
	//
	var (
		pivot = items[hi-1]
		store = 1
	)
	//
	for i := 1; i < hi-1; i++ {
		if compare(items[i], pivot) < 0 {
			items[i], items[store] = items[store], items[i]
			store++
		}
	}
	// Restore pivot into its final position
	items[store], items[hi-1] = items[hi-1], items[store]
	//
	return store
}

// heapSort sorts items in place via a max-heap.
func heapSort[T any](items []T, compare func(T, T) int) {
	n := len(items)
	// Heapify
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(items, i, n, compare)
	}
	// Extract maxima
	for i := n - 1; i > 0; i-- {
		items[0], items[i] = items[i], items[0]
		siftDown(items, 0, i, compare)
	}
}

// siftDown restores the heap property for the subtree rooted at the given
// index, considering only the first n items.
func siftDown[T any](items []T, root int, n int, compare func(T, T) int) {
	for {
		child := 2*root + 1
		//
		if child >= n {
			return
		}
		//
		if child+1 < n && compare(items[child], items[child+1]) < 0 {
			child++
		}
		//
		if compare(items[root], items[child]) >= 0 {
			return
		}
		//
		items[root], items[child] = items[child], items[root]
		root = child
	}
}
