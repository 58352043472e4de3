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
package span

import (
	"cmp"
	"unsafe"

	"github.com/cairnlabs/go-span/pkg/sorting"
)

// Sort sorts a span in place into its natural order.  The sort is stable,
// which matters only under SortBy where distinct elements can share a key.
func Sort[T cmp.Ordered](s Span[T]) error {
	return SortFunc(s, cmp.Compare[T])
}

// SortFunc sorts a span in place under the given comparator, stably.
func SortFunc[T any](s Span[T], compare func(T, T) int) error {
	if s.readOnly {
		return &ReadOnlyError{"sort"}
	}
	//
	sorting.Stable(s.items(), compare)
	//
	return nil
}

// UnstableSort sorts a span in place into its natural order.  Unlike Sort
// the relative order of equal elements is not preserved, in exchange for
// avoiding the stable sort's temporary buffer.
func UnstableSort[T cmp.Ordered](s Span[T]) error {
	return UnstableSortFunc(s, cmp.Compare[T])
}

// UnstableSortFunc sorts a span in place under the given comparator, without
// stability.
func UnstableSortFunc[T any](s Span[T], compare func(T, T) int) error {
	if s.readOnly {
		return &ReadOnlyError{"sort"}
	}
	//
	sorting.Unstable[T](s.data, s.length, compare)
	//
	return nil
}

// SortBy sorts a span in place by a key computed for each element.  The key
// function is invoked exactly once per element, however many comparisons the
// sort performs; elements with equal keys keep their relative order.
func SortBy[T any, K cmp.Ordered](s Span[T], key func(T) K) error {
	if s.readOnly {
		return &ReadOnlyError{"sort"}
	}
	//
	pairs := keyed(s, key)
	//
	sorting.Stable(pairs, comparePairs[T, K])
	writeBack(s, pairs)
	//
	return nil
}

// UnstableSortBy sorts a span in place by a key computed once per element,
// without stability.
func UnstableSortBy[T any, K cmp.Ordered](s Span[T], key func(T) K) error {
	if s.readOnly {
		return &ReadOnlyError{"sort"}
	}
	//
	pairs := keyed(s, key)
	//
	if len(pairs) > 0 {
		sorting.Unstable[pair[T, K]](unsafe.Pointer(unsafe.SliceData(pairs)), s.length, comparePairs[T, K])
	}
	//
	writeBack(s, pairs)
	//
	return nil
}

// Sorted returns a sorted clone of a span, leaving the receiver untouched.
func Sorted[T cmp.Ordered](s Span[T]) Span[T] {
	return SortedFunc(s, cmp.Compare[T])
}

// SortedFunc returns a clone of a span sorted under the given comparator,
// leaving the receiver untouched.
func SortedFunc[T any](s Span[T], compare func(T, T) int) Span[T] {
	c := s.Clone()
	// Clones are never read-only
	_ = SortFunc(c, compare)
	//
	return c
}

// UnstableSorted is Sorted without the stability guarantee.
func UnstableSorted[T cmp.Ordered](s Span[T]) Span[T] {
	c := s.Clone()
	//
	_ = UnstableSort(c)
	//
	return c
}

// ============================================================================
// Helpers
// ============================================================================

// pair couples an element with its sort key for the duration of a SortBy.
type pair[T any, K cmp.Ordered] struct {
	element T
	key     K
}

func comparePairs[T any, K cmp.Ordered](lhs pair[T, K], rhs pair[T, K]) int {
	return cmp.Compare(lhs.key, rhs.key)
}

// keyed maps each element of a span through the key function, exactly once
// per element.
func keyed[T any, K cmp.Ordered](s Span[T], key func(T) K) []pair[T, K] {
	pairs := make([]pair[T, K], s.length)
	//
	for i, v := range s.items() {
		pairs[i] = pair[T, K]{v, key(v)}
	}
	//
	return pairs
}

// writeBack copies sorted elements back into the span.
func writeBack[T any, K cmp.Ordered](s Span[T], pairs []pair[T, K]) {
	items := s.items()
	//
	for i := range pairs {
		items[i] = pairs[i].element
	}
}
