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
	"math/rand/v2"
	"unsafe"
)

// Fill overwrites every element of this span with the given value.  For
// single-byte element types a zero value becomes a bulk clear and any other
// value a bulk byte set; wider element types are assigned per index.  The
// dispatch is on the element size, which is a constant of the instantiation.
func (p Span[T]) Fill(value T) error {
	if p.readOnly {
		return &ReadOnlyError{"fill"}
	}
	// Bulk path for byte-sized elements
	if sizeOf[T]() == 1 {
		b := *(*byte)(unsafe.Pointer(&value))
		data := p.bytes()
		//
		if b == 0 {
			clear(data)
		} else {
			for i := range data {
				data[i] = b
			}
		}
		//
		return nil
	}
	//
	items := p.items()
	//
	for i := range items {
		items[i] = value
	}
	//
	return nil
}

// FillWith assigns gen(index) to every element of this span from the given
// offset onwards, invoking the generator once per index in increasing order
// with the absolute index.
func (p Span[T]) FillWith(offset uint, gen func(uint) T) error {
	if p.readOnly {
		return &ReadOnlyError{"fill"}
	}
	//
	if offset > p.length {
		return &OutOfRangeError{int(offset), 0, p.length}
	}
	//
	items := p.items()
	//
	for i := offset; i < p.length; i++ {
		items[i] = gen(i)
	}
	//
	return nil
}

// Reverse reverses the elements of this span in place.
func (p Span[T]) Reverse() error {
	if p.readOnly {
		return &ReadOnlyError{"reverse"}
	}
	//
	reverse(p.items())
	//
	return nil
}

// Rotate rotates the elements of this span in place, such that the element
// previously at index n becomes the first element.  The amount is taken
// modulo the span's length, with negative amounts rotating the other way.
func (p Span[T]) Rotate(n int) error {
	if p.readOnly {
		return &ReadOnlyError{"rotate"}
	}
	//
	if p.length < 2 {
		return nil
	}
	// Reduce amount into [0, length)
	n %= int(p.length)
	//
	if n < 0 {
		n += int(p.length)
	}
	// Rotation by reversal
	items := p.items()
	reverse(items[:n])
	reverse(items[n:])
	reverse(items)
	//
	return nil
}

// Shuffle permutes the elements of this span in place, with every
// permutation equally likely.
func (p Span[T]) Shuffle() error {
	if p.readOnly {
		return &ReadOnlyError{"shuffle"}
	}
	//
	items := p.items()
	// Fisher-Yates
	for i := len(items) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	//
	return nil
}

// MapInPlace replaces every element of this span with the result of applying
// fn to its current value.
func (p Span[T]) MapInPlace(fn func(T) T) error {
	if p.readOnly {
		return &ReadOnlyError{"map"}
	}
	//
	items := p.items()
	//
	for i := range items {
		items[i] = fn(items[i])
	}
	//
	return nil
}

// reverse the items in a slice in place.
func reverse[T any](items []T) {
	var (
		j     = len(items) - 1
		pivot = len(items) >> 1
	)
	// Perform the reverse
	for i := 0; i < pivot; i, j = i+1, j-1 {
		ith := items[i]
		items[i] = items[j]
		items[j] = ith
	}
}
