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

// Package array provides a fixed-length sequence of elements whose size is
// set at construction and never changes: there is no append, no resize and
// no reallocation.  A fixed array supplies bounds-checked element access
// directly, and can expose a span over its own storage for everything else.
package array

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/cairnlabs/go-span/pkg/span"
)

// Fixed is a fixed-length sequence of elements of type T.  The zero value is
// an empty array.
type Fixed[T any] struct {
	// Backing storage.  The length is fixed for the life of the array; no
	// operation may grow or shrink it.
	items []T
}

// Of constructs a fixed array from an element-wise literal.
func Of[T any](items ...T) Fixed[T] {
	return Fixed[T]{items}
}

// New constructs a fixed array of length elements, each initialised to the
// given value.
func New[T any](length uint, value T) Fixed[T] {
	items := make([]T, length)
	//
	for i := range items {
		items[i] = value
	}
	//
	return Fixed[T]{items}
}

// NewWith constructs a fixed array of length elements, invoking the
// generator once per index in increasing order to produce each initial
// value.
func NewWith[T any](length uint, gen func(uint) T) Fixed[T] {
	items := make([]T, length)
	//
	for i := range items {
		items[i] = gen(uint(i))
	}
	//
	return Fixed[T]{items}
}

// FromSlice wraps an existing slice as a fixed array without copying.  This
// is the escape hatch for advanced callers: the array aliases the caller's
// memory and inherits whatever is in it, so none of the initialisation
// guarantees of the other constructors apply.
func FromSlice[T any](items []T) Fixed[T] {
	return Fixed[T]{items}
}

// Len returns the (fixed) number of elements in this array.
func (p *Fixed[T]) Len() uint {
	return uint(len(p.items))
}

// Get returns the element at the given index, panicking with a
// span.OutOfBoundsError if the index is not within bounds.
func (p *Fixed[T]) Get(index uint) T {
	p.boundsCheck(index)
	//
	return p.items[index]
}

// Set overwrites the element at the given index, under the same bounds
// contract as Get.
func (p *Fixed[T]) Set(index uint, value T) {
	p.boundsCheck(index)
	//
	p.items[index] = value
}

// Swap exchanges the elements at the two given indices.
func (p *Fixed[T]) Swap(i uint, j uint) {
	p.boundsCheck(i)
	p.boundsCheck(j)
	//
	p.items[i], p.items[j] = p.items[j], p.items[i]
}

// AsSpan returns a span over this array's own storage.  No copy is made:
// mutating through the span mutates the array and vice versa, and the span
// must not outlive the array.
func (p *Fixed[T]) AsSpan() span.Span[T] {
	return span.FromRaw[T](unsafe.Pointer(unsafe.SliceData(p.items)), uint(len(p.items)))
}

// Fill overwrites every element of this array with the given value, by
// delegating to the span fill (and hence sharing its bulk byte-clear and
// byte-set specialisations).
func (p *Fixed[T]) Fill(value T) {
	// A span over our own storage is never read-only
	_ = p.AsSpan().Fill(value)
}

// Clone produces an otherwise identical copy of this array over fresh
// storage.
func (p *Fixed[T]) Clone() Fixed[T] {
	items := make([]T, len(p.items))
	copy(items, p.items)
	//
	return Fixed[T]{items}
}

// Equals determines whether this array equals an arbitrary other value.
// Anything which is not a fixed array of the same element type compares
// false, never errors; otherwise equality is element-wise.
func (p *Fixed[T]) Equals(other any) bool {
	o, ok := other.(Fixed[T])
	//
	if !ok || len(p.items) != len(o.items) {
		return false
	}
	//
	return reflect.DeepEqual(p.items, o.items)
}

func (p *Fixed[T]) String() string {
	var sb strings.Builder

	sb.WriteString("[")

	for i, item := range p.items {
		if i != 0 {
			sb.WriteString(",")
		}

		sb.WriteString(fmt.Sprintf("%v", item))
	}

	sb.WriteString("]")

	return sb.String()
}

// ============================================================================
// Free functions
// ============================================================================

// Equal determines whether two fixed arrays have the same length and
// pairwise-equal elements at every index.
func Equal[T comparable](lhs Fixed[T], rhs Fixed[T]) bool {
	if len(lhs.items) != len(rhs.items) {
		return false
	}
	//
	for i := range lhs.items {
		if lhs.items[i] != rhs.items[i] {
			return false
		}
	}
	//
	return true
}

// Map produces a new fixed array of the same length, holding the result of
// applying fn to each element (possibly changing the element type).
func Map[S any, T any](arr Fixed[S], fn func(S) T) Fixed[T] {
	items := make([]T, len(arr.items))
	//
	for i, item := range arr.items {
		items[i] = fn(item)
	}
	//
	return Fixed[T]{items}
}

// MapIndexed is Map with the element's index supplied alongside its value.
func MapIndexed[S any, T any](arr Fixed[S], fn func(uint, S) T) Fixed[T] {
	items := make([]T, len(arr.items))
	//
	for i, item := range arr.items {
		items[i] = fn(uint(i), item)
	}
	//
	return Fixed[T]{items}
}

// boundsCheck enforces the index invariant shared with the span package.
func (p *Fixed[T]) boundsCheck(index uint) {
	if index >= uint(len(p.items)) {
		panic(&span.OutOfBoundsError{Index: index, Length: uint(len(p.items))})
	}
}
