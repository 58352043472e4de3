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
package cmd

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/cairnlabs/go-span/pkg/span"
	"github.com/spf13/cobra"
)

// GetFlag extracts the value of an expected boolean flag, or panics if the
// flag does not exist.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err.Error())
	}

	return r
}

// GetUint extracts the value of an expected unsigned integer flag, or panics
// if the flag does not exist.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		panic(err.Error())
	}

	return r
}

// GetInt extracts the value of an expected integer flag, or panics if the
// flag does not exist.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err.Error())
	}

	return r
}

// readFileSpan reads the given file into a read-only byte span, applying the
// offset/length window requested on the command line.  The window is cut as
// a subview, so an out-of-range request fails rather than clamping.
func readFileSpan(cmd *cobra.Command, filename string) (span.Span[byte], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return span.Empty[byte](), err
	}
	//
	var s span.Span[byte]
	//
	if len(data) > 0 {
		s = span.FromRawReadOnly[byte](unsafe.Pointer(unsafe.SliceData(data)), uint(len(data)))
	} else {
		s = span.Empty[byte]().ReadOnly()
	}
	// Apply requested window
	offset := GetUint(cmd, "offset")
	length := GetInt(cmd, "length")
	//
	if length >= 0 {
		return s.Subview(offset, uint(length))
	}
	//
	return s.Offset(offset)
}

// exitOnError reports an error and exits, used by commands for which any
// failure is terminal.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
