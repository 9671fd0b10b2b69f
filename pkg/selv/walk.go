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

// WalkSynthesizer is the primary oracle-construction algorithm.  It scans the
// sorted key list once, maintaining a chain of ancilla qubits where ancilla
// bit i holds the conjunction "enable AND address bits above i all match the
// current key".  The bottom chain bit is therefore exactly the activation
// condition for the current key's payload.
//
// Between consecutive keys only the chain bits below the most significant
// differing bit are rebuilt: the unchanged high-order prefix is reused, and
// the differing bit itself toggles with a single controlled flip.  This gives
// O(W) gates amortised per key rather than the O(2^W) of a naive per-address
// table.
//
// The chain is torn down completely after the final key, so the ancilla
// register is returned to all-zero for every address and enable value: no
// garbage is leaked for non-matching addresses.
type WalkSynthesizer struct {
	regs Registers
	// address qubits, least significant bit first
	addr []uint
	// ancilla qubits, bottom chain bit first
	anc []uint
}

// NewWalkSynthesizer constructs a walk synthesizer over the given register
// wiring, validating the wiring once up front.
func NewWalkSynthesizer(regs Registers) (*WalkSynthesizer, error) {
	if err := regs.Validate(); err != nil {
		return nil, err
	}
	// Index by bit significance rather than register position.
	return &WalkSynthesizer{regs, reversed(regs.Address), reversed(regs.Ancilla)}, nil
}

// Synthesize the oracle sequence for the given key table.  Keys may be
// sparse; they must be strictly increasing and within the addressable range.
// An empty key list yields the empty circuit.
func (p *WalkSynthesizer) Synthesize(keys []uint, generators []PayloadGenerator) (circuit.Circuit, error) {
	var (
		c     circuit.Circuit
		width = p.regs.Width()
	)
	//
	if err := validateKeys(keys, generators, width); err != nil {
		return c, err
	}
	//
	for i, key := range keys {
		if i == 0 {
			p.buildChain(&c, key)
		} else {
			p.transition(&c, keys[i-1], key)
		}
		// Fire the payload off the bottom chain bit.
		c.AppendAll(generators[i].Emit(p.anc[0], p.regs.Target))
	}
	//
	if len(keys) > 0 {
		p.clearChain(&c, keys[len(keys)-1])
	}
	//
	return c, nil
}

// buildChain extends the ancilla chain from scratch, most significant address
// bit first.  The topmost gate is controlled on the enable qubit; every
// subsequent gate is controlled on the chain bit above it.
func (p *WalkSynthesizer) buildChain(c *circuit.Circuit, key uint) {
	width := p.regs.Width()
	//
	for bi := int(width) - 1; bi >= 0; bi-- {
		sense := (key>>bi)&1 == 1
		//
		if uint(bi)+1 == width {
			c.Append(ConditionalFlip(true, sense, p.regs.Enable, p.addr[bi], p.anc[bi]))
		} else {
			c.Append(ConditionalFlip(true, sense, p.anc[bi+1], p.addr[bi], p.anc[bi]))
		}
	}
}

// transition moves the chain from one key to the next.  Chain bits below the
// most significant differing bit are unwound using the previous key's bits,
// the differing bit itself is toggled with a single controlled flip (the two
// keys differ there, so the conjunction above it is unchanged), and the lower
// bits are rebuilt using the next key's bits.
func (p *WalkSynthesizer) transition(c *circuit.Circuit, prev uint, key uint) {
	var (
		width = p.regs.Width()
		ci    = uint(0)
	)
	// Unwind until the remaining prefixes agree.
	for prev>>(ci+1) != key>>(ci+1) {
		sense := (prev>>ci)&1 == 1
		c.Append(ConditionalFlip(true, sense, p.anc[ci+1], p.addr[ci], p.anc[ci]))
		//
		ci++
	}
	// Toggle the most significant differing bit.
	if ci+1 == width {
		c.Append(circuit.CX{Control: p.regs.Enable, Target: p.anc[ci]})
	} else {
		c.Append(circuit.CX{Control: p.anc[ci+1], Target: p.anc[ci]})
	}
	// Rebuild down to the new key.
	for ci > 0 {
		sense := (key>>(ci-1))&1 == 1
		c.Append(ConditionalFlip(true, sense, p.anc[ci], p.addr[ci-1], p.anc[ci-1]))
		//
		ci--
	}
}

// clearChain tears the whole chain down after the final key, returning every
// ancilla qubit to zero.  This is the inverse of buildChain, emitted bottom
// up.
func (p *WalkSynthesizer) clearChain(c *circuit.Circuit, key uint) {
	width := p.regs.Width()
	//
	for ci := uint(0); ci < width; ci++ {
		sense := (key>>ci)&1 == 1
		//
		if ci+1 == width {
			c.Append(ConditionalFlip(true, sense, p.regs.Enable, p.addr[ci], p.anc[ci]))
		} else {
			c.Append(ConditionalFlip(true, sense, p.anc[ci+1], p.addr[ci], p.anc[ci]))
		}
	}
}
