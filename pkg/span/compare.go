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
	"bytes"
	"cmp"
	"hash/fnv"
)

// Compare two spans lexicographically: elements are compared pairwise by
// index until a non-equal pair decides the ordering, and if all compared
// elements are equal the shorter span sorts first.  Single-byte element
// types take a raw byte comparison fast path.
func Compare[T cmp.Ordered](lhs Span[T], rhs Span[T]) int {
	var zero T
	// Raw comparison agrees with the natural ordering only for unsigned
	// bytes; the assertion on a zero value folds away per instantiation.
	if _, ok := any(zero).(uint8); ok {
		return bytes.Compare(lhs.bytes(), rhs.bytes())
	}
	//
	return CompareFunc(lhs, rhs, cmp.Compare[T])
}

// CompareFunc compares two spans lexicographically under the given element
// comparator, with the same shorter-sorts-first rule as Compare.
func CompareFunc[T any](lhs Span[T], rhs Span[T], compare func(T, T) int) int {
	n := min(lhs.length, rhs.length)
	//
	for i := uint(0); i < n; i++ {
		if c := compare(lhs.Get(i), rhs.Get(i)); c != 0 {
			return c
		}
	}
	// Shared prefix equal, shorter sorts first
	return cmp.Compare(lhs.length, rhs.length)
}

// Equal determines whether two spans have the same length and pairwise-equal
// elements at every index.  Single-byte element types take a raw byte
// comparison fast path.
func Equal[T comparable](lhs Span[T], rhs Span[T]) bool {
	if lhs.length != rhs.length {
		return false
	}
	//
	if sizeOf[T]() == 1 {
		return bytes.Equal(lhs.bytes(), rhs.bytes())
	}
	//
	for i := uint(0); i < lhs.length; i++ {
		if lhs.Get(i) != rhs.Get(i) {
			return false
		}
	}
	//
	return true
}

// EqualFunc determines whether two spans have the same length and
// pairwise-equal elements under the given equality predicate.
func EqualFunc[T any](lhs Span[T], rhs Span[T], eq func(T, T) bool) bool {
	if lhs.length != rhs.length {
		return false
	}
	//
	for i := uint(0); i < lhs.length; i++ {
		if !eq(lhs.Get(i), rhs.Get(i)) {
			return false
		}
	}
	//
	return true
}

// Hash returns a 64bit hashcode for the contents of a byte span, suitable
// for use as a hashtable key.
func Hash(s Span[byte]) uint64 {
	hash := fnv.New64a()
	// Hash cannot fail
	hash.Write(s.bytes())
	//
	return hash.Sum64()
}
