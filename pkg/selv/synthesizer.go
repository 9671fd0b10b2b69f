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
)

// Synthesizer produces the oracle instruction sequence for a table mapping
// keys to payload generators.  Two interchangeable strategies exist: the
// incremental ancilla walk (the production algorithm) and the binary tree
// traversal.  Given the same key table they produce observationally
// equivalent sequences, though not necessarily gate-for-gate identical ones.
type Synthesizer interface {
	// Synthesize the instruction sequence applying generators[i] exactly when
	// the address register equals keys[i] and the enable qubit is set.  Keys
	// must be strictly increasing and within the addressable range.
	Synthesize(keys []uint, generators []PayloadGenerator) (circuit.Circuit, error)
}

// Strategy selects which synthesis algorithm to run.
type Strategy uint8

const (
	// WalkStrategy is the incremental ancilla-chain walk.
	WalkStrategy Strategy = iota
	// TreeStrategy is the binary-tree descent and traversal.
	TreeStrategy
)

// NewSynthesizer constructs the synthesizer for a given strategy over the
// given register wiring.
func NewSynthesizer(strategy Strategy, regs Registers) (Synthesizer, error) {
	switch strategy {
	case WalkStrategy:
		return NewWalkSynthesizer(regs)
	case TreeStrategy:
		return NewTreeSynthesizer(regs)
	default:
		return nil, configurationErrorf("unknown strategy %d", strategy)
	}
}

// ConditionalFlip emits a doubly-controlled flip on the given target, firing
// when control0 matches polarity0 and control1 matches polarity1.  A false
// polarity (control-on-0) stands for the canonical control-on-1 gate
// surrounded by basis-change inversions on that control; the gate is
// self-inverse for any fixed arguments.
func ConditionalFlip(polarity0, polarity1 bool, control0, control1, target uint) circuit.Gate {
	return circuit.CCX{
		Polarity0: polarity0,
		Polarity1: polarity1,
		Control0:  control0,
		Control1:  control1,
		Target:    target,
	}
}

// validateKeys performs the shared pure validation pass.  All errors are
// detected here, before any gate is emitted, so a partial sequence is never
// returned.
func validateKeys(keys []uint, generators []PayloadGenerator, width uint) error {
	if len(keys) != len(generators) {
		return preconditionErrorf("%d key(s) but %d generator(s)", len(keys), len(generators))
	}
	//
	for i, key := range keys {
		if width < 64 && key >= (uint(1)<<width) {
			return preconditionErrorf("key %d exceeds %d-bit address", key, width)
		}
		//
		if i > 0 && keys[i-1] >= key {
			return preconditionErrorf("keys not strictly increasing at index %d", i)
		}
	}
	//
	return nil
}

// reversed returns a copy of the given qubit range in reverse order, so that
// index i holds the qubit for bit i (least significant first).
func reversed(qubits []uint) []uint {
	n := len(qubits)
	out := make([]uint, n)
	//
	for i, q := range qubits {
		out[n-1-i] = q
	}
	//
	return out
}
