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
	"github.com/cairnlabs/go-span/pkg/util"
)

// Subview returns a span over elements [start, start+count) of the receiver,
// sharing the same memory (no copy is performed).  The derived span inherits
// the receiver's read-only flag.  An OutOfRangeError is returned when start
// exceeds the receiver's length, or count exceeds the elements remaining
// after start.
func (p Span[T]) Subview(start uint, count uint) (Span[T], error) {
	if err := p.subviewBounds(start, count); err != nil {
		return Span[T]{}, err
	}
	//
	return p.subview(start, count), nil
}

// TrySubview is the query form of Subview, returning an empty option instead
// of an error when the request is out of range.
func (p Span[T]) TrySubview(start uint, count uint) util.Option[Span[T]] {
	if p.subviewBounds(start, count) != nil {
		return util.None[Span[T]]()
	}
	//
	return util.Some(p.subview(start, count))
}

// Range returns a span over elements [start, end) of the receiver, where
// negative indices count back from the end of the span.  A resolved start
// equal to the receiver's length yields an empty span; any other violation
// of 0 <= start <= end <= length is an OutOfRangeError.
func (p Span[T]) Range(start int, end int) (Span[T], error) {
	first, count, err := p.rangeBounds(start, end)
	if err != nil {
		return Span[T]{}, err
	}
	//
	return p.subview(first, count), nil
}

// TryRange is the query form of Range, returning an empty option instead of
// an error when the request is out of range.
func (p Span[T]) TryRange(start int, end int) util.Option[Span[T]] {
	first, count, err := p.rangeBounds(start, end)
	if err != nil {
		return util.None[Span[T]]()
	}
	//
	return util.Some(p.subview(first, count))
}

// Offset returns a span over all elements of the receiver from the given
// index onwards, equivalent to Subview(n, Len()-n).
func (p Span[T]) Offset(n uint) (Span[T], error) {
	if n > p.length {
		return Span[T]{}, &OutOfRangeError{int(n), 0, p.length}
	}
	//
	return p.subview(n, p.length-n), nil
}

// TryOffset is the query form of Offset.
func (p Span[T]) TryOffset(n uint) util.Option[Span[T]] {
	if n > p.length {
		return util.None[Span[T]]()
	}
	//
	return util.Some(p.subview(n, p.length-n))
}

// ============================================================================
// Helpers
// ============================================================================

// subview constructs the derived span for an already validated request.
func (p Span[T]) subview(start uint, count uint) Span[T] {
	return Span[T]{p.ptrAt(start), count, p.readOnly}
}

// subviewBounds validates a (start, count) request against the receiver.
// Both Subview and TrySubview reduce to this one computation, so the raising
// and query forms always agree.
func (p Span[T]) subviewBounds(start uint, count uint) error {
	if start > p.length || count > p.length-start {
		return &OutOfRangeError{int(start), int(count), p.length}
	}
	//
	return nil
}

// rangeBounds resolves a [start, end) request with negative indices into an
// absolute (start, count) pair, validating it against the receiver.
func (p Span[T]) rangeBounds(start int, end int) (uint, uint, error) {
	length := int(p.length)
	// Resolve negative indices
	if start < 0 {
		start += length
	}
	//
	if end < 0 {
		end += length
	}
	// Validate resolved request
	if start < 0 || start > length || end < start || end > length {
		return 0, 0, &OutOfRangeError{start, end - start, p.length}
	}
	//
	return uint(start), uint(end - start), nil
}
