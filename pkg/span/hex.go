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
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/cairnlabs/go-span/pkg/util"
)

// Number of bytes rendered per hexdump line.
const dumpLineWidth = 16

// Hex renders a byte span as one lowercase hex digit pair per byte, with no
// separators.  The result always has length exactly 2*Len().
func Hex(s Span[byte]) string {
	return hex.EncodeToString(s.bytes())
}

// Dump renders a byte span in the classic 16-bytes-per-line hexdump layout:
// an 8-digit hex offset, two groups of up to 8 hex byte pairs, then the
// ASCII rendering of those bytes (printables literally, everything else as a
// dot).  Lines are newline-separated, with no trailing newline.
func Dump(s Span[byte]) string {
	var sb strings.Builder
	//
	data := s.bytes()
	//
	for offset := 0; offset < len(data); offset += dumpLineWidth {
		if offset != 0 {
			sb.WriteString("\n")
		}
		//
		dumpLine(&sb, data[offset:min(offset+dumpLineWidth, len(data))], offset)
	}
	//
	return sb.String()
}

// DumpTo streams the hexdump rendering of a byte span to the given sink, in
// exactly the layout of Dump except that every line (including the last) is
// terminated by a newline.
func DumpTo(w io.Writer, s Span[byte]) error {
	var sb strings.Builder
	//
	data := s.bytes()
	//
	for offset := 0; offset < len(data); offset += dumpLineWidth {
		sb.Reset()
		dumpLine(&sb, data[offset:min(offset+dumpLineWidth, len(data))], offset)
		sb.WriteString("\n")
		//
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	//
	return nil
}

// IndexByte scans a byte span for the first occurrence of the given value at
// or after the given offset, returning the absolute index of the match (or
// nothing).  The offset is bounds-checked first, with an offset equal to the
// span's length permitted (and never matching).
func IndexByte(s Span[byte], value byte, offset uint) util.Option[uint] {
	if offset > s.length {
		panic(&OutOfBoundsError{offset, s.length})
	}
	// Raw scan over the remainder
	if i := bytes.IndexByte(s.bytes()[offset:], value); i >= 0 {
		return util.Some(offset + uint(i))
	}
	//
	return util.None[uint]()
}

// dumpLine renders one window of up to 16 bytes starting at the given
// absolute offset.
func dumpLine(sb *strings.Builder, line []byte, offset int) {
	fmt.Fprintf(sb, "%08x  ", offset)
	// Hex column
	for i := 0; i < dumpLineWidth; i++ {
		if i != 0 {
			sb.WriteString(" ")
		}
		// Extra space between the two groups of eight
		if i == dumpLineWidth/2 {
			sb.WriteString(" ")
		}
		//
		if i < len(line) {
			fmt.Fprintf(sb, "%02x", line[i])
		} else {
			sb.WriteString("  ")
		}
	}
	//
	sb.WriteString("  ")
	// ASCII column
	for _, b := range line {
		if b >= 0x20 && b <= 0x7e {
			sb.WriteByte(b)
		} else {
			sb.WriteString(".")
		}
	}
}
