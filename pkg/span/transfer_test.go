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
	"errors"
	"testing"
	"unsafe"
)

func Test_CopyTo(t *testing.T) {
	var (
		src = NewWith(4, func(i uint) uint { return i + 1 })
		dst = NewFilled[uint](6, 99)
	)
	//
	if err := src.CopyTo(dst); err != nil {
		t.Fatal(err)
	}
	//
	for i := uint(0); i < 4; i++ {
		if dst.Get(i) != i+1 {
			t.Error("copy missed an element")
		}
	}
	// Trailing capacity untouched
	if dst.Get(4) != 99 || dst.Get(5) != 99 {
		t.Error("copy disturbed trailing capacity")
	}
}

func Test_CopyTo_SizeMismatch(t *testing.T) {
	var (
		src = NewFilled[byte](4, 1)
		dst = NewFilled[byte](3, 7)
		//
		err = src.CopyTo(dst)
	)
	//
	var serr *SizeMismatchError
	//
	if !errors.As(err, &serr) {
		t.Fatal("short destination accepted")
	}
	// No partial write
	for i := uint(0); i < 3; i++ {
		if dst.Get(i) != 7 {
			t.Fatal("failed copy performed a partial write")
		}
	}
}

func Test_CopyTo_ReadOnly(t *testing.T) {
	var (
		src = NewFilled[byte](2, 1)
		dst = NewFilled[byte](2, 7).ReadOnly()
	)
	//
	var rerr *ReadOnlyError
	//
	if err := src.CopyTo(dst); !errors.As(err, &rerr) {
		t.Fatal("read-only destination accepted")
	}
}

func Test_CopyFrom(t *testing.T) {
	var (
		src = NewWith(3, func(i uint) uint { return i })
		dst = New[uint](3)
	)
	//
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	//
	for i := uint(0); i < 3; i++ {
		if dst.Get(i) != i {
			t.Error("copy missed an element")
		}
	}
}

func Test_CopyRaw(t *testing.T) {
	var (
		items = []uint16{5, 6, 7}
		s     = New[uint16](3)
	)
	//
	if err := s.CopyFromRaw(unsafe.Pointer(&items[0]), 3); err != nil {
		t.Fatal(err)
	}
	//
	if s.Get(0) != 5 || s.Get(2) != 7 {
		t.Error("raw copy in missed an element")
	}
	//
	out := make([]uint16, 3)
	//
	if err := s.CopyToRaw(unsafe.Pointer(&out[0]), 3); err != nil {
		t.Fatal(err)
	}
	//
	if out[0] != 5 || out[2] != 7 {
		t.Error("raw copy out missed an element")
	}
	// Receiver-side bounds still enforced
	if err := s.CopyFromRaw(unsafe.Pointer(&items[0]), 4); err == nil {
		t.Error("oversized raw copy in accepted")
	}
	//
	if err := s.CopyToRaw(unsafe.Pointer(&out[0]), 4); err == nil {
		t.Error("oversized raw copy out accepted")
	}
	// Both raw forms report an oversized count the same way
	var serr *SizeMismatchError
	//
	if err := s.CopyFromRaw(unsafe.Pointer(&items[0]), 4); !errors.As(err, &serr) {
		t.Errorf("unexpected error kind for raw copy in: %v", err)
	}
	//
	if err := s.CopyToRaw(unsafe.Pointer(&out[0]), 4); !errors.As(err, &serr) {
		t.Errorf("unexpected error kind for raw copy out: %v", err)
	}
}

// MoveTo produces the same final contents as a move through a temporary
// copy, for every overlap offset in both directions.
func Test_Move_Overlap(t *testing.T) {
	const (
		n = 7
		// Backing region large enough for both windows at every offset
		m = 3 * n
	)
	//
	for delta := -(n - 1); delta <= n-1; delta++ {
		var (
			base = NewWith(m, func(i uint) uint { return i })
			//
			srcStart = uint(n - 1)
			dstStart = uint(int(srcStart) + delta)
		)
		// Expected result via an explicit temporary
		expected := make([]uint, m)
		//
		for i := range expected {
			expected[i] = uint(i)
		}
		//
		tmp := make([]uint, n)
		//
		for i := uint(0); i < n; i++ {
			tmp[i] = expected[srcStart+i]
		}
		//
		for i := uint(0); i < n; i++ {
			expected[dstStart+i] = tmp[i]
		}
		// Actual result via overlapping views
		src, err := base.Subview(srcStart, n)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		dst, err := base.Subview(dstStart, n)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		if err := src.MoveTo(dst); err != nil {
			t.Fatal(err)
		}
		//
		for i := uint(0); i < m; i++ {
			if base.Get(i) != expected[i] {
				t.Fatalf("overlap %d: element %d is %d, expected %d", delta, i, base.Get(i), expected[i])
			}
		}
	}
}

func Test_MoveFrom_SizeMismatch(t *testing.T) {
	var (
		src = New[byte](4)
		dst = New[byte](3)
	)
	//
	var serr *SizeMismatchError
	//
	if err := dst.MoveFrom(src); !errors.As(err, &serr) {
		t.Error("short destination accepted")
	}
}

func Test_Clone(t *testing.T) {
	var (
		s = NewWith(4, func(i uint) uint { return i })
		c = s.Clone()
	)
	// Same contents
	if !Equal(s, c) {
		t.Fatal("clone differs from original")
	}
	// Distinct memory
	c.Set(0, 99)
	//
	if s.Get(0) == 99 {
		t.Error("clone shares memory with original")
	}
	// Clones of read-only views are writable
	rc := s.ReadOnly().Clone()
	//
	if rc.IsReadOnly() {
		t.Error("clone inherited the read-only flag")
	}
}
