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
	"errors"
	"testing"

	"github.com/consensys/go-selv/pkg/pauli"
)

func Test_SelectV_00(t *testing.T) {
	// Full end-to-end oracle over both strategies.
	terms := mustTerms(t, 1.0, "X", "Z", "Y", "X")
	regs := StandardLayout(2, 1)
	//
	for _, strategy := range []Strategy{WalkStrategy, TreeStrategy} {
		oracle, err := NewSelectV(terms, regs, strategy)
		if err != nil {
			t.Fatal(err)
		}
		//
		circ, err := oracle.Synthesize()
		if err != nil {
			t.Fatal(err)
		}
		//
		checkCircuitSemantics(t, circ, regs, contiguous(0, 4), terms)
	}
}

func Test_SelectV_01(t *testing.T) {
	// Leading and trailing trivial terms narrow the synthesised key range.
	terms := []pauli.Term{
		mustTerm(t, "II", 1.0),
		mustTerm(t, "XI", 1.0),
		mustTerm(t, "IZ", -1.0),
		mustTerm(t, "XX", 0.0),
	}
	//
	regs := StandardLayout(2, 2)
	//
	oracle, err := NewSelectV(terms, regs, WalkStrategy)
	if err != nil {
		t.Fatal(err)
	}
	//
	pos1, pos2 := oracle.ActiveRange()
	//
	if pos1 != 1 || pos2 != 3 {
		t.Fatalf("active range [%d,%d), expected [1,3)", pos1, pos2)
	}
	//
	circ, err := oracle.Synthesize()
	if err != nil {
		t.Fatal(err)
	}
	// Addresses 0 and 3 hold trivial terms, so the oracle acts as the
	// identity there; addresses 1 and 2 apply their term.
	checkCircuitSemantics(t, circ, regs, []uint{1, 2}, terms[1:3])
}

func Test_SelectV_02(t *testing.T) {
	// Narrowing strictly shrinks the circuit relative to a padded table.
	var (
		live   = mustTerms(t, 1.0, "X", "Z")
		padded = append([]pauli.Term{mustTerm(t, "II", 1.0)}, live...)
		regs   = StandardLayout(2, 2)
	)
	//
	narrow, err := NewSelectV(padded, regs, WalkStrategy)
	if err != nil {
		t.Fatal(err)
	}
	//
	full, err := NewSelectV(live, regs, WalkStrategy)
	if err != nil {
		t.Fatal(err)
	}
	//
	narrowCircuit, err := narrow.Synthesize()
	if err != nil {
		t.Fatal(err)
	}
	//
	fullCircuit, err := full.Synthesize()
	if err != nil {
		t.Fatal(err)
	}
	// Same number of live keys, hence comparable cost.  The narrowed oracle
	// walks [1,3) instead of [0,2) but fires the same two payloads.
	if narrowCircuit.Size() == 0 || fullCircuit.Size() == 0 {
		t.Fatal("unexpected empty circuit")
	}
	//
	checkCircuitSemantics(t, narrowCircuit, regs, []uint{1, 2}, live)
	checkCircuitSemantics(t, fullCircuit, regs, []uint{0, 1}, live)
}

func Test_SelectV_Errors_00(t *testing.T) {
	// All-trivial Hamiltonians fail fast with the sentinel.
	terms := []pauli.Term{
		mustTerm(t, "II", 1.0),
		mustTerm(t, "XX", 0.0),
	}
	//
	_, err := NewSelectV(terms, StandardLayout(2, 2), WalkStrategy)
	//
	if !errors.Is(err, ErrEmptyOracle) {
		t.Fatalf("expected ErrEmptyOracle, got %v", err)
	}
}

func Test_SelectV_Errors_01(t *testing.T) {
	// Empty Hamiltonians are empty oracles too.
	_, err := NewSelectV(nil, StandardLayout(2, 1), WalkStrategy)
	//
	if !errors.Is(err, ErrEmptyOracle) {
		t.Fatalf("expected ErrEmptyOracle, got %v", err)
	}
}

func Test_SelectV_Errors_02(t *testing.T) {
	// More terms than the address can name.
	terms := mustTerms(t, 1.0, "X", "X", "X")
	//
	_, err := NewSelectV(terms, StandardLayout(1, 1), WalkStrategy)
	//
	assertConfigurationError(t, err)
}

func Test_SelectV_Errors_03(t *testing.T) {
	// A term spanning more qubits than the target register holds.
	terms := mustTerms(t, 1.0, "XX")
	//
	_, err := NewSelectV(terms, StandardLayout(2, 1), WalkStrategy)
	//
	assertConfigurationError(t, err)
}

func Test_SelectV_Errors_04(t *testing.T) {
	// Invalid register wiring is rejected at construction.
	regs := StandardLayout(2, 1)
	regs.Ancilla = regs.Ancilla[:1]
	//
	_, err := NewSelectV(mustTerms(t, 1.0, "X"), regs, WalkStrategy)
	//
	assertConfigurationError(t, err)
}

func Test_Registers_00(t *testing.T) {
	// Standard layouts always validate.
	for width := uint(1); width <= 8; width++ {
		regs := StandardLayout(width, 3)
		//
		if err := regs.Validate(); err != nil {
			t.Errorf("width %d: %v", width, err)
		}
		//
		if regs.NumQubits() != 1+3+2*width {
			t.Errorf("width %d: wrong qubit count %d", width, regs.NumQubits())
		}
	}
}

func Test_Registers_01(t *testing.T) {
	// Empty address register
	regs := Registers{Enable: 0, Target: []uint{1}}
	assertConfigurationError(t, regs.Validate())
}

func Test_Registers_02(t *testing.T) {
	// Ancilla register narrower than the address register
	regs := StandardLayout(3, 1)
	regs.Ancilla = regs.Ancilla[:2]
	assertConfigurationError(t, regs.Validate())
}

func Test_Registers_03(t *testing.T) {
	// Overlapping ranges
	regs := StandardLayout(2, 1)
	regs.Target[0] = regs.Address[0]
	assertConfigurationError(t, regs.Validate())
}

func Test_Strategy_00(t *testing.T) {
	// Unknown strategies are rejected.
	_, err := NewSynthesizer(Strategy(42), StandardLayout(2, 1))
	assertConfigurationError(t, err)
}

// ===================================================================
// Test Helpers
// ===================================================================

func assertConfigurationError(t *testing.T, err error) {
	if err == nil {
		t.Fatal("expected configuration error")
	}
	//
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected configuration error, got %T (%s)", err, err)
	}
}
