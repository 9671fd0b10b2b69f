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
package pauli

import (
	"fmt"
	"strings"
)

// Axis identifies the single-qubit action a term applies at one position.
type Axis uint8

// The four possible per-qubit actions of a Pauli string.
const (
	// I leaves the qubit untouched.
	I Axis = iota
	// X flips the qubit.
	X
	// Y flips the qubit with a quarter-phase conjugation.
	Y
	// Z phase-flips the qubit.
	Z
)

func (a Axis) String() string {
	switch a {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// AxisOf converts a single character into the corresponding axis.
func AxisOf(c rune) (Axis, error) {
	switch c {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	default:
		return I, fmt.Errorf("unknown axis %q", c)
	}
}

// Term is one weighted Pauli string of a Hamiltonian.  Axes[i] names the
// action applied to target qubit i.
type Term struct {
	Axes        []Axis
	Coefficient float64
}

// NewTerm constructs a term from a textual Pauli string (e.g. "XIZY") and a
// coefficient.
func NewTerm(axes string, coefficient float64) (Term, error) {
	var term Term
	//
	for _, c := range axes {
		axis, err := AxisOf(c)
		if err != nil {
			return Term{}, err
		}
		//
		term.Axes = append(term.Axes, axis)
	}
	//
	term.Coefficient = coefficient
	//
	return term, nil
}

// Width returns the number of target qubits this term spans.
func (p Term) Width() uint {
	return uint(len(p.Axes))
}

// IsTrivial checks whether applying this term has no effect.  That is, every
// axis is the identity or the coefficient is zero.
func (p Term) IsTrivial() bool {
	if p.Coefficient == 0 {
		return true
	}
	//
	for _, a := range p.Axes {
		if a != I {
			return false
		}
	}
	//
	return true
}

func (p Term) String() string {
	var builder strings.Builder
	//
	for _, a := range p.Axes {
		builder.WriteString(a.String())
	}
	//
	return fmt.Sprintf("%s %v", builder.String(), p.Coefficient)
}

// Hamiltonian is an ordered list of weighted Pauli strings.  The position of
// a term within the list is its oracle address.
type Hamiltonian []Term

// Width returns the number of target qubits spanned, which is simply the
// width of the widest term.
func (p Hamiltonian) Width() uint {
	var width uint
	//
	for _, t := range p {
		width = max(width, t.Width())
	}
	//
	return width
}

// ActiveRange determines the contiguous sub-interval [pos1,pos2) of terms
// which are non-trivial, by skipping trivial terms from the front and from
// the back.  When every term is trivial this returns (0,0).  Narrowing the
// range shrinks the synthesised sequence; it is an optimisation, not a
// correctness requirement.
func (p Hamiltonian) ActiveRange() (uint, uint) {
	var (
		pos1 = uint(0)
		pos2 = uint(len(p))
	)
	//
	for pos1 < pos2 && p[pos1].IsTrivial() {
		pos1++
	}
	// All trivial?
	if pos1 == pos2 {
		return 0, 0
	}
	//
	for p[pos2-1].IsTrivial() {
		pos2--
	}
	//
	return pos1, pos2
}
