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
package selv

import (
	"testing"

	"github.com/consensys/go-selv/pkg/circuit"
	"github.com/consensys/go-selv/pkg/pauli"
)

// ===================================================================
// Test Helpers
// ===================================================================

// mustTerm parses a term or fails the calling test.
func mustTerm(t *testing.T, axes string, coefficient float64) pauli.Term {
	term, err := pauli.NewTerm(axes, coefficient)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return term
}

// mustTerms parses a slice of equally-weighted terms.
func mustTerms(t *testing.T, coefficient float64, axes ...string) []pauli.Term {
	terms := make([]pauli.Term, len(axes))
	//
	for i, a := range axes {
		terms[i] = mustTerm(t, a, coefficient)
	}
	//
	return terms
}

// prepareOracleState builds the basis state holding the given enable,
// address and initial target values, with the ancilla register clear.
func prepareOracleState(regs Registers, enable bool, address uint, targetMask uint) *circuit.State {
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
	for i, q := range regs.Target {
		state.SetBit(q, (targetMask>>i)&1 == 1)
	}
	//
	return state
}

// applyTerm applies the mathematical action of a weighted Pauli string to a
// basis state directly, independently of any synthesised gate sequence.
func applyTerm(state *circuit.State, term pauli.Term, targets []uint) {
	if term.Coefficient < 0 {
		state.MultiplyPhase(-1)
	}
	//
	for i, axis := range term.Axes {
		q := targets[i]
		//
		switch axis {
		case pauli.X:
			state.SetBit(q, !state.Bit(q))
		case pauli.Y:
			if state.Bit(q) {
				state.MultiplyPhase(complex(0, -1))
			} else {
				state.MultiplyPhase(complex(0, 1))
			}
			//
			state.SetBit(q, !state.Bit(q))
		case pauli.Z:
			if state.Bit(q) {
				state.MultiplyPhase(-1)
			}
		}
	}
}

// checkOracleSemantics synthesises the oracle for the given key table and
// sweeps every (enable, address, target) basis state through it.  For a
// matching address with enable set, exactly the keyed term must have been
// applied; for every other state the sequence must act as the identity.  In
// all cases the ancilla register must end clear, which is implied by the
// expected state never touching it.
func checkOracleSemantics(t *testing.T, synthesizer Synthesizer, regs Registers, keys []uint, terms []pauli.Term) {
	circ, err := synthesizer.Synthesize(keys, Generators(terms))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkCircuitSemantics(t, circ, regs, keys, terms)
}

// checkCircuitSemantics sweeps an already-synthesised sequence against the
// reference semantics.
func checkCircuitSemantics(t *testing.T, circ circuit.Circuit, regs Registers, keys []uint, terms []pauli.Term) {
	var (
		width       = regs.Width()
		targetMasks = uint(1) << len(regs.Target)
	)
	//
	for _, enable := range []bool{false, true} {
		for address := uint(0); address < (uint(1) << width); address++ {
			for mask := uint(0); mask < targetMasks; mask++ {
				state := prepareOracleState(regs, enable, address, mask)
				state.Run(circ)
				//
				expected := prepareOracleState(regs, enable, address, mask)
				//
				if i := keyIndex(keys, address); enable && i >= 0 {
					applyTerm(expected, terms[i], regs.Target)
				}
				//
				if !state.Equals(expected) {
					t.Errorf("enable=%v address=%d targets=%b: was %s (phase %v), expected %s (phase %v)",
						enable, address, mask, state, state.Phase(), expected, expected.Phase())
				}
			}
		}
	}
}

// keyIndex finds the position of an address within the key table, or -1.
func keyIndex(keys []uint, address uint) int {
	for i, k := range keys {
		if k == address {
			return i
		}
	}
	//
	return -1
}

// contiguous builds the key list [from, from+n).
func contiguous(from uint, n uint) []uint {
	keys := make([]uint, n)
	//
	for i := uint(0); i < n; i++ {
		keys[i] = from + i
	}
	//
	return keys
}
