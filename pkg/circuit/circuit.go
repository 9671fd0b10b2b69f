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

import (
	"strings"

	"github.com/consensys/go-selv/pkg/util/collection/bit"
)

// Circuit is an ordered sequence of elementary gates.  The zero value is the
// empty circuit, ready for use.
type Circuit struct {
	gates []Gate
}

// Of constructs a circuit from the given gates.
func Of(gates ...Gate) Circuit {
	return Circuit{gates}
}

// Size returns the number of gates in this circuit.
func (p *Circuit) Size() uint {
	return uint(len(p.gates))
}

// Gates returns the gates making up this circuit, in execution order.
func (p *Circuit) Gates() []Gate {
	return p.gates
}

// Append adds zero or more gates to the end of this circuit.
func (p *Circuit) Append(gates ...Gate) {
	p.gates = append(p.gates, gates...)
}

// AppendAll adds every gate of another circuit to the end of this circuit.
func (p *Circuit) AppendAll(other Circuit) {
	p.gates = append(p.gates, other.gates...)
}

// Inverse returns the circuit which undoes this circuit.  That is, the gates
// in reverse order with each gate inverted.
func (p *Circuit) Inverse() Circuit {
	n := len(p.gates)
	gates := make([]Gate, n)
	//
	for i, g := range p.gates {
		gates[n-1-i] = g.Inverse()
	}
	//
	return Circuit{gates}
}

// Qubits returns the set of qubits touched by at least one gate of this
// circuit.
func (p *Circuit) Qubits() bit.Set {
	var qubits bit.Set
	//
	for _, g := range p.gates {
		qubits.InsertAll(g.Qubits()...)
	}
	//
	return qubits
}

// Counts tallies the gates of this circuit by mnemonic (e.g. "cx", "ccx").
// Both polarities of the doubly-controlled flip count as "ccx", and both
// quarter-phase rotations count as "s".
func (p *Circuit) Counts() map[string]uint {
	counts := make(map[string]uint)
	//
	for _, g := range p.gates {
		counts[mnemonic(g)]++
	}
	//
	return counts
}

func mnemonic(g Gate) string {
	switch g.(type) {
	case X:
		return "x"
	case Z:
		return "z"
	case S:
		return "s"
	case CX:
		return "cx"
	case CZ:
		return "cz"
	case CCX:
		return "ccx"
	default:
		return "???"
	}
}

func (p *Circuit) String() string {
	var builder strings.Builder
	//
	for i, g := range p.gates {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		builder.WriteString(g.String())
	}
	//
	return builder.String()
}
