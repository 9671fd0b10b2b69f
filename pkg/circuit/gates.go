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

import "fmt"

// Gate represents a single elementary instruction within a circuit.  Each
// gate names the concrete qubit(s) it acts upon; a circuit holds no register
// state of its own.
type Gate interface {
	// Qubits returns the qubits this gate acts upon (controls first).
	Qubits() []uint
	// Inverse returns the gate which undoes this gate.  Every gate in the
	// alphabet is self-inverse except the quarter-phase rotation, whose
	// inverse is its adjoint.
	Inverse() Gate
	//
	fmt.Stringer
}

// ============================================================================
// X (bit flip)
// ============================================================================

// X flips a single qubit.
type X struct {
	Qubit uint
}

// Qubits returns the qubits this gate acts upon.
func (p X) Qubits() []uint { return []uint{p.Qubit} }

// Inverse returns the gate which undoes this gate.
func (p X) Inverse() Gate { return p }

func (p X) String() string { return fmt.Sprintf("x %d", p.Qubit) }

// ============================================================================
// Z (phase flip)
// ============================================================================

// Z applies a phase flip to a single qubit.
type Z struct {
	Qubit uint
}

// Qubits returns the qubits this gate acts upon.
func (p Z) Qubits() []uint { return []uint{p.Qubit} }

// Inverse returns the gate which undoes this gate.
func (p Z) Inverse() Gate { return p }

func (p Z) String() string { return fmt.Sprintf("z %d", p.Qubit) }

// ============================================================================
// S (quarter phase rotation)
// ============================================================================

// S applies a +90° phase rotation to a single qubit, or a -90° rotation when
// adjoint.
type S struct {
	Qubit   uint
	Adjoint bool
}

// Qubits returns the qubits this gate acts upon.
func (p S) Qubits() []uint { return []uint{p.Qubit} }

// Inverse returns the gate which undoes this gate.
func (p S) Inverse() Gate { return S{p.Qubit, !p.Adjoint} }

func (p S) String() string {
	if p.Adjoint {
		return fmt.Sprintf("sdg %d", p.Qubit)
	}
	//
	return fmt.Sprintf("s %d", p.Qubit)
}

// ============================================================================
// CX (controlled bit flip)
// ============================================================================

// CX flips the target qubit when the control qubit is set.
type CX struct {
	Control uint
	Target  uint
}

// Qubits returns the qubits this gate acts upon.
func (p CX) Qubits() []uint { return []uint{p.Control, p.Target} }

// Inverse returns the gate which undoes this gate.
func (p CX) Inverse() Gate { return p }

func (p CX) String() string { return fmt.Sprintf("cx %d %d", p.Control, p.Target) }

// ============================================================================
// CZ (controlled phase flip)
// ============================================================================

// CZ applies a phase flip when both qubits are set.
type CZ struct {
	Control uint
	Target  uint
}

// Qubits returns the qubits this gate acts upon.
func (p CZ) Qubits() []uint { return []uint{p.Control, p.Target} }

// Inverse returns the gate which undoes this gate.
func (p CZ) Inverse() Gate { return p }

func (p CZ) String() string { return fmt.Sprintf("cz %d %d", p.Control, p.Target) }

// ============================================================================
// CCX (doubly-controlled bit flip with control polarities)
// ============================================================================

// CCX flips the target qubit when the first control matches Polarity0 and the
// second control matches Polarity1.  A polarity of false (control-on-0) is
// lowered to a canonical control-on-1 gate conjugated by basis-change X gates
// at rendering time.
type CCX struct {
	Polarity0 bool
	Polarity1 bool
	Control0  uint
	Control1  uint
	Target    uint
}

// Qubits returns the qubits this gate acts upon.
func (p CCX) Qubits() []uint { return []uint{p.Control0, p.Control1, p.Target} }

// Inverse returns the gate which undoes this gate.
func (p CCX) Inverse() Gate { return p }

func (p CCX) String() string {
	return fmt.Sprintf("ccx[%s%s] %d %d %d",
		polarity(p.Polarity0), polarity(p.Polarity1), p.Control0, p.Control1, p.Target)
}

func polarity(b bool) string {
	if b {
		return "1"
	}
	//
	return "0"
}
