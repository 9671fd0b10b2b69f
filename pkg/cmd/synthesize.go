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
	"math/bits"
	"os"
	"path"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-selv/pkg/circuit"
	"github.com/consensys/go-selv/pkg/qasm"
	"github.com/consensys/go-selv/pkg/selv"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize [flags] hamiltonian_file",
	Short: "synthesize a SELECT-V oracle circuit from a Hamiltonian.",
	Long: `Synthesize the oracle circuit selecting between the weighted Pauli terms of a
	 given Hamiltonian, writing it as OpenQASM (.qasm) or as a binary artifact (.bin).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			output      = GetString(cmd, "output")
			strategy    = readStrategy(GetString(cmd, "strategy"))
			hamiltonian = readHamiltonianFile(args[0])
		)
		//
		oracle, err := selv.NewSelectV(hamiltonian, oracleLayout(len(hamiltonian), hamiltonian.Width()), strategy)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		circ, err := oracle.Synthesize()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Write output based on file extension.
		switch ext := path.Ext(output); ext {
		case ".qasm":
			text := qasm.Render(circ, oracle.Registers().NumQubits(), "reg", true)
			writeOutputFile(output, []byte(text))
		case ".bin":
			data, err := circuit.Encode(circ)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			writeOutputFile(output, data)
		default:
			fmt.Printf("unknown output format: %s\n", ext)
			os.Exit(2)
		}
	},
}

// oracleLayout determines the register wiring for a Hamiltonian of n terms
// over the given number of target qubits: the address register is just wide
// enough to index every term.
func oracleLayout(n int, targets uint) selv.Registers {
	width := uint(bits.Len(uint(n - 1)))
	// A single-term Hamiltonian still needs one address qubit.
	width = max(width, 1)
	//
	return selv.StandardLayout(width, targets)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(synthesizeCmd)
	synthesizeCmd.Flags().StringP("output", "o", "a.qasm", "specify output file.")
	synthesizeCmd.Flags().StringP("strategy", "s", "walk", "select synthesis strategy (walk or tree).")
}
