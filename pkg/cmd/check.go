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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-selv/pkg/circuit"
	"github.com/consensys/go-selv/pkg/pauli"
	"github.com/consensys/go-selv/pkg/selv"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] hamiltonian_file",
	Short: "check a synthesized oracle against every basis state.",
	Long: `Synthesize the oracle for a given Hamiltonian, then sweep every (enable,
	 address) basis state through it, verifying that the ancilla register is
	 returned to zero and that exactly the selected term fires.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
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
		//
		failures := checkOracle(oracle, circ, hamiltonian)
		//
		if failures != 0 {
			fmt.Printf("FAILED (%d basis state(s))\n", failures)
			os.Exit(1)
		}
		//
		fmt.Println("OK")
	},
}

// checkOracle sweeps every (enable, address) basis state through the
// synthesised sequence, checking ancilla closure and single-fire semantics.
// It returns the number of failing states.
func checkOracle(oracle *selv.SelectV, circ circuit.Circuit, hamiltonian pauli.Hamiltonian) uint {
	var (
		regs       = oracle.Registers()
		width      = regs.Width()
		pos1, pos2 = oracle.ActiveRange()
		failures   = uint(0)
	)
	//
	for _, enable := range []bool{false, true} {
		for address := uint(0); address < (uint(1) << width); address++ {
			state := prepareState(regs, enable, address)
			state.Run(circ)
			// Determine what should have happened.
			expected := prepareState(regs, enable, address)
			//
			if enable && address >= pos1 && address < pos2 {
				applyExpected(expected, selv.TermGenerator{Term: hamiltonian[address]}, regs)
			}
			//
			if !state.Equals(expected) {
				log.Debugf("enable=%v address=%d: was %s, expected %s", enable, address, state, expected)
				failures++
			}
		}
	}
	//
	return failures
}

// prepareState builds the basis state holding the given enable and address
// values, with targets and ancilla clear.
func prepareState(regs selv.Registers, enable bool, address uint) *circuit.State {
	var (
		width = regs.Width()
		state = circuit.NewState(regs.NumQubits())
	)
	//
	state.SetBit(regs.Enable, enable)
	//
	for i := uint(0); i < width; i++ {
		// Address qubits are most significant first.
		state.SetBit(regs.Address[i], (address>>(width-1-i))&1 == 1)
	}
	//
	return state
}

// applyExpected runs a payload generator against the state directly, using a
// virtual activation qubit held at one.
func applyExpected(state *circuit.State, gen selv.TermGenerator, regs selv.Registers) {
	// One virtual qubit beyond the wired ranges.
	activation := regs.NumQubits()
	wide := circuit.NewState(activation + 1)
	//
	for i := uint(0); i < activation; i++ {
		wide.SetBit(i, state.Bit(i))
	}
	//
	wide.SetBit(activation, true)
	wide.Run(gen.Emit(activation, regs.Target))
	//
	for i := uint(0); i < activation; i++ {
		state.SetBit(i, wide.Bit(i))
	}
	//
	state.MultiplyPhase(wide.Phase())
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("strategy", "s", "walk", "select synthesis strategy (walk or tree).")
}
