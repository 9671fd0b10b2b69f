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
	"github.com/consensys/go-selv/pkg/circuit"
	"github.com/consensys/go-selv/pkg/pauli"
)

// PayloadGenerator produces the instruction sequence realising one payload
// operation, conditioned on a single activation qubit.  The synthesiser is
// otherwise oblivious to what a payload does: it only invokes each generator
// once, at the point where its activation qubit holds the enable-and-match
// conjunction for its key.
type PayloadGenerator interface {
	// Emit the payload sequence, controlled on the given activation qubit and
	// acting on the given target qubits.
	Emit(activation uint, targets []uint) circuit.Circuit
}

// TermGenerator realises one weighted Pauli string as a payload operation.
type TermGenerator struct {
	Term pauli.Term
}

// Emit the controlled Pauli sequence for this term.  Each non-identity axis
// contributes one controlled gate; a Y axis is a controlled flip conjugated
// by quarter-phase rotations.  A negative coefficient contributes a leading
// phase flip on the activation qubit itself, realising the -1 factor.
func (p TermGenerator) Emit(activation uint, targets []uint) circuit.Circuit {
	var c circuit.Circuit
	//
	if p.Term.Coefficient < 0 {
		c.Append(circuit.Z{Qubit: activation})
	}
	//
	for i, axis := range p.Term.Axes {
		target := targets[i]
		//
		switch axis {
		case pauli.X:
			c.Append(circuit.CX{Control: activation, Target: target})
		case pauli.Y:
			c.Append(circuit.S{Qubit: target, Adjoint: true})
			c.Append(circuit.CX{Control: activation, Target: target})
			c.Append(circuit.S{Qubit: target})
		case pauli.Z:
			c.Append(circuit.CZ{Control: activation, Target: target})
		}
	}
	//
	return c
}

// Generators converts a slice of terms into one payload generator per term.
func Generators(terms []pauli.Term) []PayloadGenerator {
	gens := make([]PayloadGenerator, len(terms))
	//
	for i, t := range terms {
		gens[i] = TermGenerator{t}
	}
	//
	return gens
}
