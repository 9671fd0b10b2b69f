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

// Package selv synthesises SELECT-V oracle circuits.  Given an ordered list
// of weighted Pauli terms, it produces a sequence of elementary conditional
// gates which, run against an address register, applies exactly the term
// whose index equals the current address, gated on a single enable qubit.
// Scratch state lives in an ancilla register which every synthesised
// sequence provably returns to all-zero.  The construction follows Fig. 2 of
// arXiv:1905.07682, costing O(W) gates per key rather than a 2^W-branch
// table.
package selv

import (
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-selv/pkg/circuit"
	"github.com/consensys/go-selv/pkg/pauli"
)

// SelectV is the top-level oracle assembler.  It is an immutable value
// object: all inputs are validated at construction and no field mutates
// afterwards.  As a whole it stands for one opaque multi-qubit instruction
// block of width 1 + K + W + W (enable, targets, address, ancilla).
type SelectV struct {
	hamiltonian pauli.Hamiltonian
	regs        Registers
	strategy    Strategy
	// active sub-range of term indices
	pos1 uint
	pos2 uint
}

// NewSelectV constructs an oracle assembler over the given Hamiltonian and
// register wiring.  This fails with ErrEmptyOracle if no term is
// non-trivial, and with a ConfigurationError if the wiring cannot hold the
// Hamiltonian.
func NewSelectV(hamiltonian pauli.Hamiltonian, regs Registers, strategy Strategy) (*SelectV, error) {
	if err := regs.Validate(); err != nil {
		return nil, err
	}
	//
	var (
		width = regs.Width()
		count = uint(len(hamiltonian))
	)
	// Every term index must be addressable.
	if width < 64 && count > (uint(1)<<width) {
		return nil, configurationErrorf("%d term(s) exceed %d-bit address", count, width)
	}
	// Every term must fit the target register.
	for i, term := range hamiltonian {
		if term.Width() > uint(len(regs.Target)) {
			return nil, configurationErrorf("term %d spans %d qubit(s) but target register holds %d",
				i, term.Width(), len(regs.Target))
		}
	}
	//
	pos1, pos2 := hamiltonian.ActiveRange()
	//
	if pos1 == pos2 {
		return nil, ErrEmptyOracle
	}
	//
	return &SelectV{hamiltonian, regs, strategy, pos1, pos2}, nil
}

// ActiveRange returns the contiguous sub-interval [pos1,pos2) of term
// indices actually walked by the synthesiser.
func (p *SelectV) ActiveRange() (uint, uint) {
	return p.pos1, p.pos2
}

// Registers returns the register wiring this oracle is bound to.
func (p *SelectV) Registers() Registers {
	return p.regs
}

// Synthesize the full oracle sequence for the active term range.
func (p *SelectV) Synthesize() (circuit.Circuit, error) {
	synthesizer, err := NewSynthesizer(p.strategy, p.regs)
	if err != nil {
		return circuit.Circuit{}, err
	}
	// Build the per-key generator table.
	keys := make([]uint, 0, p.pos2-p.pos1)
	//
	for key := p.pos1; key < p.pos2; key++ {
		keys = append(keys, key)
	}
	//
	generators := Generators(p.hamiltonian[p.pos1:p.pos2])
	//
	c, err := synthesizer.Synthesize(keys, generators)
	if err != nil {
		return circuit.Circuit{}, err
	}
	//
	log.Debugf("synthesised %d gate(s) for %d key(s) in [%d,%d)", c.Size(), len(keys), p.pos1, p.pos2)
	//
	return c, nil
}
