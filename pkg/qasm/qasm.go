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

// Package qasm renders circuits as OpenQASM 2.0.  This is a pure, stateless
// formatting pass over the gate sequence; nothing here alters the circuit.
package qasm

import (
	"fmt"
	"strings"

	"github.com/consensys/go-selv/pkg/circuit"
)

// Render produces an OpenQASM 2.0 program for the given circuit over a
// single quantum register of the given size.  Doubly-controlled flips with
// control-on-0 polarities are lowered to a canonical ccx surrounded by
// basis-change x gates.
func Render(c circuit.Circuit, nqubits uint, regName string, includeHeader bool) string {
	var builder strings.Builder
	//
	if includeHeader {
		builder.WriteString("// Generated by go-selv\n\n")
		builder.WriteString("OPENQASM 2.0;\n")
		builder.WriteString("include \"qelib1.inc\";\n\n")
		builder.WriteString(fmt.Sprintf("qreg %s[%d];\n\n", regName, nqubits))
	}
	//
	for _, g := range c.Gates() {
		renderGate(&builder, g, regName)
	}
	//
	return builder.String()
}

func renderGate(builder *strings.Builder, g circuit.Gate, reg string) {
	switch g := g.(type) {
	case circuit.X:
		writeOne(builder, "x", reg, g.Qubit)
	case circuit.Z:
		writeOne(builder, "z", reg, g.Qubit)
	case circuit.S:
		if g.Adjoint {
			writeOne(builder, "sdg", reg, g.Qubit)
		} else {
			writeOne(builder, "s", reg, g.Qubit)
		}
	case circuit.CX:
		writeTwo(builder, "cx", reg, g.Control, g.Target)
	case circuit.CZ:
		writeTwo(builder, "cz", reg, g.Control, g.Target)
	case circuit.CCX:
		renderCCX(builder, g, reg)
	default:
		panic(fmt.Sprintf("unknown gate %s", g))
	}
}

// renderCCX lowers a polarity-aware doubly-controlled flip.  Controls
// required to be zero are inverted before the canonical ccx and restored
// afterwards, in reverse order.
func renderCCX(builder *strings.Builder, g circuit.CCX, reg string) {
	var basisChange []uint
	//
	if !g.Polarity0 {
		basisChange = append(basisChange, g.Control0)
	}
	//
	if !g.Polarity1 {
		basisChange = append(basisChange, g.Control1)
	}
	//
	for _, q := range basisChange {
		writeOne(builder, "x", reg, q)
	}
	//
	builder.WriteString(fmt.Sprintf("ccx %s[%d],%s[%d],%s[%d];\n",
		reg, g.Control0, reg, g.Control1, reg, g.Target))
	//
	for i := len(basisChange) - 1; i >= 0; i-- {
		writeOne(builder, "x", reg, basisChange[i])
	}
}

func writeOne(builder *strings.Builder, mnemonic string, reg string, qubit uint) {
	builder.WriteString(fmt.Sprintf("%s %s[%d];\n", mnemonic, reg, qubit))
}

func writeTwo(builder *strings.Builder, mnemonic string, reg string, q0 uint, q1 uint) {
	builder.WriteString(fmt.Sprintf("%s %s[%d],%s[%d];\n", mnemonic, reg, q0, reg, q1))
}
