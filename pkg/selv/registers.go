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
	"github.com/consensys/go-selv/pkg/util/collection/bit"
)

// Registers names the four disjoint qubit ranges an oracle circuit is wired
// against.  The synthesiser borrows these ranges for the duration of one
// call; it never allocates or frees qubits itself.  Address qubits are given
// most significant first, and Ancilla[i] pairs with Address[i].
//
// The address register and the enable qubit are only ever read.  The ancilla
// register must be all-zero on entry; every synthesised sequence returns it
// to all-zero, whatever the address and enable values.
type Registers struct {
	// Enable is the global activation qubit.  When clear, no payload fires.
	Enable uint
	// Address selects which payload operation fires.
	Address []uint
	// Target is the register payload operations act upon.
	Target []uint
	// Ancilla holds transient prefix-match state.
	Ancilla []uint
}

// StandardLayout lays the registers out contiguously from qubit zero: the
// enable qubit first, then targets, then address, then ancilla.
func StandardLayout(width uint, targets uint) Registers {
	var (
		regs Registers
		next = uint(1)
	)
	//
	regs.Enable = 0
	//
	for i := uint(0); i < targets; i++ {
		regs.Target = append(regs.Target, next)
		next++
	}
	//
	for i := uint(0); i < width; i++ {
		regs.Address = append(regs.Address, next)
		next++
	}
	//
	for i := uint(0); i < width; i++ {
		regs.Ancilla = append(regs.Ancilla, next)
		next++
	}
	//
	return regs
}

// Width returns the address width, and hence the number of ancilla qubits.
func (p Registers) Width() uint {
	return uint(len(p.Address))
}

// NumQubits returns the total bit-width of the oracle as wired: one enable
// qubit, the targets, the address and the ancilla.
func (p Registers) NumQubits() uint {
	return 1 + uint(len(p.Address)+len(p.Target)+len(p.Ancilla))
}

// Validate checks the register wiring once, up front: the ancilla register
// must match the address register in width, the address must be non-empty,
// and the four ranges must be pairwise disjoint.
func (p Registers) Validate() error {
	if len(p.Address) == 0 {
		return configurationErrorf("empty address register")
	}
	//
	if len(p.Ancilla) != len(p.Address) {
		return configurationErrorf("ancilla width %d does not match address width %d",
			len(p.Ancilla), len(p.Address))
	}
	// Check ranges are pairwise disjoint
	var (
		seen  bit.Set
		count = p.NumQubits()
	)
	//
	seen.Insert(p.Enable)
	seen.InsertAll(p.Address...)
	seen.InsertAll(p.Target...)
	seen.InsertAll(p.Ancilla...)
	//
	if seen.Count() != count {
		return configurationErrorf("register ranges overlap")
	}
	//
	return nil
}
