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
package array

import (
	"testing"

	"github.com/cairnlabs/go-span/pkg/span"
	"github.com/stretchr/testify/require"
)

func Test_Fixed_Of(t *testing.T) {
	arr := Of(1, 2, 3)
	//
	require.Equal(t, uint(3), arr.Len())
	require.Equal(t, 2, arr.Get(1))
}

func Test_Fixed_New(t *testing.T) {
	arr := New(4, "x")
	//
	require.Equal(t, uint(4), arr.Len())
	//
	for i := uint(0); i < 4; i++ {
		require.Equal(t, "x", arr.Get(i))
	}
}

func Test_Fixed_NewWith(t *testing.T) {
	arr := NewWith(5, func(i uint) uint { return i * 2 })
	//
	for i := uint(0); i < 5; i++ {
		require.Equal(t, i*2, arr.Get(i))
	}
}

func Test_Fixed_FromSlice_Aliases(t *testing.T) {
	items := []byte{1, 2, 3}
	arr := FromSlice(items)
	// Escape hatch: shares the caller's memory
	arr.Set(0, 9)
	require.Equal(t, byte(9), items[0])
}

func Test_Fixed_Bounds(t *testing.T) {
	arr := Of(1, 2, 3)
	//
	require.PanicsWithError(t, "index 3 out of bounds for span of length 3", func() {
		arr.Get(3)
	})
	require.Panics(t, func() { arr.Set(100, 0) })
	require.Panics(t, func() { arr.Swap(0, 3) })
}

func Test_Fixed_Swap(t *testing.T) {
	arr := Of(1, 2, 3)
	arr.Swap(0, 2)
	//
	require.Equal(t, 3, arr.Get(0))
	require.Equal(t, 1, arr.Get(2))
}

// The span shares the array's storage: mutation is visible in both
// directions.
func Test_Fixed_AsSpan_Aliases(t *testing.T) {
	arr := New[byte](4, 1)
	view := arr.AsSpan()
	//
	require.Equal(t, uint(4), view.Len())
	// Through the view
	view.Set(0, 7)
	require.Equal(t, byte(7), arr.Get(0))
	// Through the array
	arr.Set(1, 8)
	require.Equal(t, byte(8), view.Get(1))
}

// Filling a fresh array through its view mutates every element of the
// original array.
func Test_Fixed_Fill_ThroughView(t *testing.T) {
	arr := New[byte](8, 1)
	//
	require.NoError(t, arr.AsSpan().Fill(9))
	//
	for i := uint(0); i < 8; i++ {
		require.Equal(t, byte(9), arr.Get(i))
	}
	// Direct fill behaves identically
	arr.Fill(3)
	//
	for i := uint(0); i < 8; i++ {
		require.Equal(t, byte(3), arr.Get(i))
	}
}

func Test_Fixed_Map(t *testing.T) {
	var (
		arr    = Of(1, 2, 3)
		scaled = Map(arr, func(v int) int { return v * 10 })
		named  = Map(arr, func(v int) string { return string(rune('a' + v)) })
	)
	// Same length, new contents
	require.Equal(t, uint(3), scaled.Len())
	require.Equal(t, 20, scaled.Get(1))
	// Element type may change
	require.Equal(t, "b", named.Get(0))
	// Source untouched
	require.Equal(t, 2, arr.Get(1))
}

func Test_Fixed_MapIndexed(t *testing.T) {
	arr := Of(10, 20, 30)
	sums := MapIndexed(arr, func(i uint, v int) uint { return i + uint(v) })
	//
	require.Equal(t, uint(10), sums.Get(0))
	require.Equal(t, uint(21), sums.Get(1))
	require.Equal(t, uint(32), sums.Get(2))
}

func Test_Fixed_Equal(t *testing.T) {
	var (
		a = Of(1, 2, 3)
		b = Of(1, 2, 3)
		c = Of(1, 2, 4)
		d = Of(1, 2)
	)
	//
	require.True(t, Equal(a, b))
	require.False(t, Equal(a, c))
	require.False(t, Equal(a, d))
}

// Comparison with an incompatible type is false, never an error.
func Test_Fixed_Equals_Incompatible(t *testing.T) {
	var (
		ints    = Of(1, 2, 3)
		sames   = Of(1, 2, 3)
		strings = Of("1", "2", "3")
	)
	//
	require.True(t, ints.Equals(sames))
	require.False(t, ints.Equals(strings))
	require.False(t, ints.Equals("not an array"))
	require.False(t, ints.Equals(nil))
}

func Test_Fixed_Clone(t *testing.T) {
	var (
		arr   = Of(1, 2, 3)
		clone = arr.Clone()
	)
	//
	require.True(t, Equal(arr, clone))
	// Fresh storage
	clone.Set(0, 99)
	require.Equal(t, 1, arr.Get(0))
}

func Test_Fixed_String(t *testing.T) {
	arr := Of(1, 2, 3)
	require.Equal(t, "[1,2,3]", arr.String())
}

// The view produced by AsSpan supports the whole span surface, e.g.
// sub-viewing and hex rendering, without copying.
func Test_Fixed_SpanBridge(t *testing.T) {
	arr := NewWith(6, func(i uint) byte { return byte(i) })
	//
	sub, err := arr.AsSpan().Subview(2, 3)
	require.NoError(t, err)
	require.Equal(t, "020304", span.Hex(sub))
	// Still aliased
	sub.Set(0, 0xff)
	require.Equal(t, byte(0xff), arr.Get(2))
}
