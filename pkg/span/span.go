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

// Package span provides a bounded view over a contiguous region of memory.  A
// span couples a raw base address with an element count and a read-only flag,
// and every access is checked against the count before memory is touched.
// Spans never own the memory they reference: views created by the allocating
// constructors keep their backing allocation reachable, whereas views created
// by FromRaw rely entirely on the caller to keep the region alive.
package span

import (
	"fmt"
	"strings"
	"unsafe"
)

// Numeric captures the primitive numeric types for which zero-initialised
// allocation is permitted.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// Span is a non-owning view over length contiguous elements of type T,
// starting at a given base address.  The zero value is an empty span.
type Span[T any] struct {
	// Address of the first element.  Not owned by this span.
	data unsafe.Pointer
	// Number of elements visible through this span.
	length uint
	// Indicates whether mutation through this span is prohibited.  The flag
	// is a property of the view, not of the underlying memory.
	readOnly bool
}

// FromRaw wraps existing memory as a mutable span without copying or
// allocating.  The caller retains ownership of the region and must keep it
// alive (and at least length elements long) for the lifetime of the span.
func FromRaw[T any](data unsafe.Pointer, length uint) Span[T] {
	return Span[T]{data, length, false}
}

// FromRawReadOnly wraps existing memory as a read-only span, otherwise
// identical to FromRaw.
func FromRawReadOnly[T any](data unsafe.Pointer, length uint) Span[T] {
	return Span[T]{data, length, true}
}

// New allocates a span of length zero-initialised elements.  This form is
// only available for primitive numeric element types, where the zero value is
// always meaningful.
func New[T Numeric](length uint) Span[T] {
	return alloc[T](length)
}

// NewWith allocates a span of length elements, invoking the generator once
// per index in increasing order to produce each initial value.
func NewWith[T any](length uint, gen func(uint) T) Span[T] {
	s := alloc[T](length)
	//
	for i := uint(0); i < length; i++ {
		*(*T)(s.ptrAt(i)) = gen(i)
	}
	//
	return s
}

// NewFilled allocates a span of length elements, each initialised to the
// given value.
func NewFilled[T any](length uint, value T) Span[T] {
	s := alloc[T](length)
	//
	for i := uint(0); i < length; i++ {
		*(*T)(s.ptrAt(i)) = value
	}
	//
	return s
}

// Empty returns a zero-length span over a nil address.  It is always safe to
// use as a sentinel.
func Empty[T any]() Span[T] {
	return Span[T]{}
}

// alloc obtains fresh zeroed backing storage for a span of the given length.
// The span's data pointer keeps the allocation reachable.
func alloc[T any](length uint) Span[T] {
	if length == 0 {
		return Span[T]{}
	}
	//
	items := make([]T, length)
	//
	return Span[T]{unsafe.Pointer(unsafe.SliceData(items)), length, false}
}

// Len returns the number of elements visible through this span.
func (p Span[T]) Len() uint {
	return p.length
}

// IsEmpty reports whether this span has zero length.
func (p Span[T]) IsEmpty() bool {
	return p.length == 0
}

// IsReadOnly reports whether mutation through this span is prohibited.
func (p Span[T]) IsReadOnly() bool {
	return p.readOnly
}

// Data exposes the base address of this span.  Callers performing raw access
// through this pointer step outside the bounds-checked contract.
func (p Span[T]) Data() unsafe.Pointer {
	return p.data
}

// ReadOnly returns a span over the same memory with the read-only flag set.
// The original span is unaffected; the flag governs access, it does not
// protect the underlying memory.
func (p Span[T]) ReadOnly() Span[T] {
	return Span[T]{p.data, p.length, true}
}

// Get returns the element at the given index, panicking with an
// OutOfBoundsError if the index is not within bounds.
func (p Span[T]) Get(index uint) T {
	p.boundsCheck(index)
	//
	return *(*T)(p.ptrAt(index))
}

// Set overwrites the element at the given index, panicking with an
// OutOfBoundsError or ReadOnlyError as appropriate.
func (p Span[T]) Set(index uint, value T) {
	p.mutCheck("set")
	p.boundsCheck(index)
	//
	*(*T)(p.ptrAt(index)) = value
}

// Update replaces the element at the given index with the result of applying
// fn to its current value.  Same failure contract as Set.
func (p Span[T]) Update(index uint, fn func(T) T) {
	p.mutCheck("update")
	p.boundsCheck(index)
	//
	ptr := (*T)(p.ptrAt(index))
	*ptr = fn(*ptr)
}

// Swap exchanges the elements at the two given indices.  Same failure
// contract as Set.
func (p Span[T]) Swap(i uint, j uint) {
	p.mutCheck("swap")
	p.boundsCheck(i)
	p.boundsCheck(j)
	//
	pi := (*T)(p.ptrAt(i))
	pj := (*T)(p.ptrAt(j))
	*pi, *pj = *pj, *pi
}

func (p Span[T]) String() string {
	var sb strings.Builder

	sb.WriteString("[")

	for i := uint(0); i < p.length; i++ {
		if i != 0 {
			sb.WriteString(",")
		}

		sb.WriteString(fmt.Sprintf("%v", p.Get(i)))
	}

	sb.WriteString("]")

	return sb.String()
}

// ============================================================================
// Helpers
// ============================================================================

// sizeOf returns the size in bytes of the element type.  This is a constant
// for any given instantiation, so branches on it fold away.
func sizeOf[T any]() uintptr {
	var zero T
	//
	return unsafe.Sizeof(zero)
}

// ptrAt computes the address of the element at the given index.  Callers must
// have bounds-checked the index already.
func (p Span[T]) ptrAt(index uint) unsafe.Pointer {
	return unsafe.Add(p.data, uintptr(index)*sizeOf[T]())
}

// items exposes the viewed region as a slice sharing the same memory.
func (p Span[T]) items() []T {
	return unsafe.Slice((*T)(p.data), p.length)
}

// bytes exposes the viewed region as raw bytes.  Only meaningful when the
// element type is a single byte wide.
func (p Span[T]) bytes() []byte {
	return unsafe.Slice((*byte)(p.data), p.length)
}

// boundsCheck enforces the index invariant, panicking with a typed error on
// violation.
func (p Span[T]) boundsCheck(index uint) {
	if index >= p.length {
		panic(&OutOfBoundsError{index, p.length})
	}
}

// mutCheck enforces the read-only invariant for single-element mutators,
// panicking with a typed error on violation.
func (p Span[T]) mutCheck(op string) {
	if p.readOnly {
		panic(&ReadOnlyError{op})
	}
}
