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
	"unsafe"
)

// CopyFromRaw copies count elements from a foreign address into this span.
// The receiver is bounds- and read-only-checked; the foreign side is the
// caller's responsibility, and the two regions must not overlap.
func (p Span[T]) CopyFromRaw(src unsafe.Pointer, count uint) error {
	if p.readOnly {
		return &ReadOnlyError{"copy into"}
	}
	//
	if count > p.length {
		return &SizeMismatchError{count, p.length}
	}
	//
	copy(p.items()[:count], unsafe.Slice((*T)(src), count))
	//
	return nil
}

// CopyToRaw copies count elements from this span to a foreign address.  The
// receiver is bounds-checked; the foreign side is the caller's
// responsibility, and the two regions must not overlap.
func (p Span[T]) CopyToRaw(dst unsafe.Pointer, count uint) error {
	if count > p.length {
		return &SizeMismatchError{count, p.length}
	}
	//
	copy(unsafe.Slice((*T)(dst), count), p.items()[:count])
	//
	return nil
}

// CopyTo copies every element of this span into the given destination,
// failing with a SizeMismatchError (and writing nothing) if the destination
// is shorter than this span.  Trailing destination capacity beyond this
// span's length is left untouched.
func (p Span[T]) CopyTo(dst Span[T]) error {
	return p.transfer(dst)
}

// CopyFrom copies every element of the given source into this span, under
// the same size and read-only contract as CopyTo.
func (p Span[T]) CopyFrom(src Span[T]) error {
	return src.transfer(p)
}

// MoveTo transfers every element of this span into the given destination,
// with the same size contract as CopyTo, but remains correct when the source
// and destination memory regions overlap (in either direction).
func (p Span[T]) MoveTo(dst Span[T]) error {
	return p.transfer(dst)
}

// MoveFrom transfers every element of the given source into this span, under
// the same contract as MoveTo.
func (p Span[T]) MoveFrom(src Span[T]) error {
	return src.transfer(p)
}

// Clone returns a span over freshly allocated memory holding a copy of this
// span's contents.  The clone is always mutable, regardless of the
// receiver's flag.
func (p Span[T]) Clone() Span[T] {
	s := alloc[T](p.length)
	//
	copy(s.items(), p.items())
	//
	return s
}

// transfer moves the whole of p into dst.  The built-in copy has memmove
// semantics, so overlapping regions are handled correctly and both the copy
// and move forms reduce to this.
func (p Span[T]) transfer(dst Span[T]) error {
	if dst.readOnly {
		return &ReadOnlyError{"copy into"}
	}
	//
	if dst.length < p.length {
		return &SizeMismatchError{p.length, dst.length}
	}
	//
	copy(dst.items()[:p.length], p.items())
	//
	return nil
}
