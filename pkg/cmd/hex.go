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

	"github.com/cairnlabs/go-span/pkg/span"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var hexCmd = &cobra.Command{
	Use:   "hex [flags] file",
	Short: "render a file as a compact hex string.",
	Long: `Render a file (or a window of it, via --offset / --length) as
	one lowercase hex digit pair per byte, with no separators.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Read in the requested window
		view, err := readFileSpan(cmd, args[0])
		exitOnError(err)
		//
		fmt.Println(span.Hex(view))
	},
}

func init() {
	rootCmd.AddCommand(hexCmd)
	hexCmd.Flags().Uint("offset", 0, "byte offset at which the window starts")
	hexCmd.Flags().Int("length", -1, "window length in bytes (-1 for the rest of the file)")
}
