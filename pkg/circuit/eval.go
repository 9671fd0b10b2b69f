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
package circuit

import "strings"

// State represents a computational basis state together with an accumulated
// global phase.  Every gate in the alphabet maps basis states to basis states
// up to phase, hence a circuit can be evaluated exactly without amplitude
// simulation.  This is what the synthesis checker and the test suite run
// against; it is not a general-purpose simulator.
type State struct {
	bits  []bool
	phase complex128
}

// NewState creates an all-zero basis state over n qubits with unit phase.
func NewState(n uint) *State {
	return &State{make([]bool, n), 1}
}

// Bit returns the current value of the ith qubit.
func (p *State) Bit(i uint) bool {
	return p.bits[i]
}

// SetBit updates the ith qubit of this basis state.
func (p *State) SetBit(i uint, v bool) {
	p.bits[i] = v
}

// Phase returns the accumulated global phase.
func (p *State) Phase() complex128 {
	return p.phase
}

// MultiplyPhase folds an externally accumulated phase factor into this state.
func (p *State) MultiplyPhase(factor complex128) {
	p.phase *= factor
}

// Clone creates a true copy of this state.
func (p *State) Clone() *State {
	bits := make([]bool, len(p.bits))
	copy(bits, p.bits)
	//
	return &State{bits, p.phase}
}

// Equals checks whether this state and the other agree on every qubit and on
// the global phase.
func (p *State) Equals(other *State) bool {
	if len(p.bits) != len(other.bits) || p.phase != other.phase {
		return false
	}
	//
	for i, b := range p.bits {
		if b != other.bits[i] {
			return false
		}
	}
	//
	return true
}

// Apply runs a gate against this state, updating bits and phase in place.
func (p *State) Apply(g Gate) {
	switch g := g.(type) {
	case X:
		p.bits[g.Qubit] = !p.bits[g.Qubit]
	case Z:
		if p.bits[g.Qubit] {
			p.phase = -p.phase
		}
	case S:
		if p.bits[g.Qubit] {
			if g.Adjoint {
				p.phase *= complex(0, -1)
			} else {
				p.phase *= complex(0, 1)
			}
		}
	case CX:
		if p.bits[g.Control] {
			p.bits[g.Target] = !p.bits[g.Target]
		}
	case CZ:
		if p.bits[g.Control] && p.bits[g.Target] {
			p.phase = -p.phase
		}
	case CCX:
		if p.bits[g.Control0] == g.Polarity0 && p.bits[g.Control1] == g.Polarity1 {
			p.bits[g.Target] = !p.bits[g.Target]
		}
	default:
		panic("unknown gate")
	}
}

// Run evaluates an entire circuit against this state.
func (p *State) Run(c Circuit) {
	for _, g := range c.Gates() {
		p.Apply(g)
	}
}

func (p *State) String() string {
	var builder strings.Builder
	//
	builder.WriteString("|")
	//
	for _, b := range p.bits {
		if b {
			builder.WriteString("1")
		} else {
			builder.WriteString("0")
		}
	}
	//
	builder.WriteString(">")
	//
	return builder.String()
}
