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

import "fmt"

// OutOfBoundsError indicates an index outside [0, length) was used to access
// a span.
type OutOfBoundsError struct {
	// Offending index.
	Index uint
	// Length of the span accessed.
	Length uint
}

func (p *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for span of length %d", p.Index, p.Length)
}

// OutOfRangeError indicates a sub-viewing request whose start or count falls
// outside the valid range of the receiver.
type OutOfRangeError struct {
	// Requested starting index.
	Start int
	// Requested element count.
	Count int
	// Length of the span being sub-viewed.
	Length uint
}

func (p *OutOfRangeError) Error() string {
	return fmt.Sprintf("subview [%d, +%d) out of range for span of length %d", p.Start, p.Count, p.Length)
}

// ReadOnlyError indicates a mutating operation was attempted on a read-only
// span.  No mutation is performed.
type ReadOnlyError struct {
	// Name of the rejected operation.
	Op string
}

func (p *ReadOnlyError) Error() string {
	return fmt.Sprintf("cannot %s a read-only span", p.Op)
}

// SizeMismatchError indicates a bulk transfer whose element count exceeds the
// span on one side of it.  No partial write is performed.
type SizeMismatchError struct {
	// Number of elements to be transferred.
	Count uint
	// Length of the span too short to carry them.
	Length uint
}

func (p *SizeMismatchError) Error() string {
	return fmt.Sprintf("transfer of %d elements exceeds span of length %d", p.Count, p.Length)
}
