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
	"github.com/consensys/go-selv/pkg/util/collection/bit"
)

// TreeSynthesizer is the alternate oracle-construction algorithm.  Addresses
// are modelled as leaves of a binary tree of depth W+1 whose root is the
// enable qubit; a key corresponds to the root-to-leaf path holding the enable
// bit followed by the address bits, most significant first.  The algorithm
// descends once to the first key's leaf, walks laterally across the leaves
// applying each payload in turn, then ascends by inverting a descent built
// from the last key's path.
//
// A lateral step is classified by the Hamming distance between consecutive
// encoded paths: distance one needs a single controlled flip of the bottom
// chain bit, distance two a fixed short pattern, and larger distances peel
// the bottom tree level off and recur on the truncated path, bracketed by a
// pair of conditional flips on the dropped position.
//
// The tree strategy walks every leaf between its first and last key, hence
// the key table must be contiguous.
type TreeSynthesizer struct {
	regs Registers
	// chain qubits, top down: the enable qubit followed by the ancillas.
	chain []uint
}

// NewTreeSynthesizer constructs a tree synthesizer over the given register
// wiring, validating the wiring once up front.
func NewTreeSynthesizer(regs Registers) (*TreeSynthesizer, error) {
	if err := regs.Validate(); err != nil {
		return nil, err
	}
	//
	chain := append([]uint{regs.Enable}, regs.Ancilla...)
	//
	return &TreeSynthesizer{regs, chain}, nil
}

// Synthesize the oracle sequence for the given key table.  Keys must be
// contiguous as well as strictly increasing, since the lateral walk visits
// every leaf in between.  An empty key list yields the empty circuit.
func (p *TreeSynthesizer) Synthesize(keys []uint, generators []PayloadGenerator) (circuit.Circuit, error) {
	var (
		c     circuit.Circuit
		width = p.regs.Width()
	)
	//
	if err := validateKeys(keys, generators, width); err != nil {
		return c, err
	}
	//
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[i-1]+1 {
			return c, preconditionErrorf("tree strategy requires contiguous keys (gap before %d)", keys[i])
		}
	}
	//
	if len(keys) == 0 {
		return c, nil
	}
	//
	var (
		start = p.pathOf(keys[0])
		end   = p.pathOf(keys[len(keys)-1])
		last  = p.chain[len(p.chain)-1]
	)
	// Descend to the first leaf.
	c = p.walkDown(start)
	// Walk laterally, applying each payload in turn.
	path := start
	//
	for i := range keys {
		c.AppendAll(generators[i].Emit(last, p.regs.Target))
		// No step after the final leaf.
		if i+1 < len(keys) {
			p.stepRight(&c, path)
			path = path.Increment()
		}
	}
	// Ascend from the last leaf.
	up := p.walkDown(end)
	c.AppendAll(up.Inverse())
	//
	return c, nil
}

// pathOf encodes a key as its root-to-leaf path: the enable bit followed by
// the address bits, most significant first.
func (p *TreeSynthesizer) pathOf(key uint) bit.Vector {
	var (
		width = p.regs.Width()
		path  = bit.NewVector(width + 1)
	)
	// Keys were validated, so encoding cannot fail.
	encoded, err := bit.EncodeUint(key, width)
	if err != nil {
		panic(err)
	}
	//
	path.Set(0, true)
	//
	for i := uint(0); i < width; i++ {
		path.Set(i+1, encoded.Get(i))
	}
	//
	return path
}

// walkDown descends from the root to the leaf named by path, building the
// ancilla chain top down with one conditional flip per tree level.  After
// this, ancilla i holds "enable AND the top i+1 address bits match the path".
func (p *TreeSynthesizer) walkDown(path bit.Vector) circuit.Circuit {
	var (
		c        circuit.Circuit
		controls = append([]uint{p.regs.Enable}, p.regs.Address...)
		anc      = p.regs.Ancilla
	)
	// Root level combines the enable qubit and the most significant address
	// bit directly.
	c.Append(ConditionalFlip(path.Get(0), path.Get(1), controls[0], controls[1], anc[0]))
	//
	for i := uint(2); i < path.Width(); i++ {
		c.Append(ConditionalFlip(path.Get(i), true, controls[i], anc[i-2], anc[i-1]))
	}
	//
	return c
}

// stepRight moves the current leaf from path to its successor without a full
// rebuild.  Levels within the trailing-ones run of the path are peeled off
// one at a time, each bracketed by a pair of conditional flips on the dropped
// position, until the remaining distance is covered by an explicit base
// pattern.
func (p *TreeSynthesizer) stepRight(c *circuit.Circuit, path bit.Vector) {
	var (
		addr = p.regs.Address
		// view lengths at which a bracket was opened
		opened []uint
		m      = path.Width()
		d      = pathDistance(path)
	)
	//
	for d >= 3 {
		c.Append(ConditionalFlip(true, true, p.chain[m-2], addr[m-2], p.chain[m-1]))
		opened = append(opened, m)
		//
		m--
		d = pathDistance(path.Prefix(m))
	}
	//
	switch {
	case d == 1 && m == 1:
		c.Append(circuit.X{Qubit: p.chain[0]})
	case d == 1:
		c.Append(circuit.CX{Control: p.chain[m-2], Target: p.chain[m-1]})
	case d == 2 && m == 2:
		c.Append(circuit.CX{Control: p.chain[0], Target: p.chain[1]})
		c.Append(circuit.CX{Control: addr[0], Target: p.chain[1]})
		c.Append(circuit.X{Qubit: p.chain[0]})
		c.Append(circuit.X{Qubit: p.chain[1]})
	case d == 2:
		c.Append(circuit.CX{Control: p.chain[m-2], Target: p.chain[m-1]})
		c.Append(ConditionalFlip(true, false, p.chain[m-3], addr[m-2], p.chain[m-1]))
		c.Append(circuit.CX{Control: p.chain[m-3], Target: p.chain[m-2]})
	}
	// Close the brackets, innermost first.
	for i := len(opened) - 1; i >= 0; i-- {
		k := opened[i]
		c.Append(ConditionalFlip(true, false, p.chain[k-2], addr[k-2], p.chain[k-1]))
	}
}

// pathDistance is the Hamming distance between a path and its successor.
func pathDistance(path bit.Vector) uint {
	return path.HammingDistance(path.Increment())
}
