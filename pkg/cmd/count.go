// Copyright Consensys Software Inc.
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
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [flags] circuit_file",
	Short: "tally the gates of a compiled circuit by kind.",
	Long: `Tally the gates of a compiled circuit artifact (.bin) by kind, reporting one
	 line per gate mnemonic plus a total.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			circ   = readCircuitFile(args[0])
			counts = circ.Counts()
			total  = uint(0)
		)
		// Report in a stable order.
		mnemonics := make([]string, 0, len(counts))
		//
		for m := range counts {
			mnemonics = append(mnemonics, m)
		}
		//
		slices.Sort(mnemonics)
		//
		for _, m := range mnemonics {
			fmt.Printf("%s\t%d\n", m, counts[m])
			total += counts[m]
		}
		//
		fmt.Printf("total\t%d\n", total)
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
