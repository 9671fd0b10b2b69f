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
	"fmt"
	"testing"

	"github.com/consensys/go-selv/pkg/pauli"
)

func Test_Tree_00(t *testing.T) {
	// Empty key list is a no-op.
	synthesizer, err := NewTreeSynthesizer(StandardLayout(2, 1))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	circ, err := synthesizer.Synthesize(nil, nil)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if circ.Size() != 0 {
		t.Errorf("expected empty circuit, got %d gate(s)", circ.Size())
	}
}

func Test_Tree_01(t *testing.T) {
	// Single key: descent, payload, ascent.
	regs := StandardLayout(2, 1)
	check_Tree(t, regs, []uint{2}, "X")
}

func Test_Tree_02(t *testing.T) {
	// Full table over a 1-bit address.
	regs := StandardLayout(1, 1)
	check_Tree(t, regs, contiguous(0, 2), "X", "Z")
}

func Test_Tree_03(t *testing.T) {
	// Full table over a 2-bit address, exercising every lateral step class up
	// to distance three (01 -> 10 at the leaf level).
	regs := StandardLayout(2, 2)
	check_Tree(t, regs, contiguous(0, 4), "XI", "IZ", "YX", "ZZ")
}

func Test_Tree_04(t *testing.T) {
	// Offset range not anchored at zero.
	regs := StandardLayout(3, 1)
	check_Tree(t, regs, contiguous(3, 4), "X", "Z", "Y", "X")
}

func Test_Tree_05(t *testing.T) {
	// Range straddling the midpoint: the 011 -> 100 step has distance three
	// and opens a truncation bracket.
	regs := StandardLayout(3, 1)
	check_Tree(t, regs, contiguous(2, 5), "X", "Y", "Z", "X", "Z")
}

func Test_Tree_06(t *testing.T) {
	// Negative coefficients fire a phase flip alongside the payload.
	regs := StandardLayout(2, 1)
	check_Tree_Terms(t, regs, contiguous(0, 3), mustTerms(t, -1.0, "X", "Z", "Y"))
}

func Test_Tree_07(t *testing.T) {
	// Both strategies implement the same oracle on every contiguous range.
	for width := uint(1); width <= 4; width++ {
		size := uint(1) << width
		//
		for from := uint(0); from < size; from++ {
			for n := uint(1); from+n <= size; n++ {
				check_Tree_Walk_Agree(t, width, from, n)
			}
		}
	}
}

func Test_Tree_Errors_00(t *testing.T) {
	// Tree strategy rejects gapped key tables.
	synthesizer, err := NewTreeSynthesizer(StandardLayout(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	//
	_, err = synthesizer.Synthesize([]uint{0, 2}, Generators(mustTerms(t, 1.0, "X", "X")))
	//
	assertPreconditionError(t, err)
}

func Test_Tree_Errors_01(t *testing.T) {
	// Shared key validation applies before the contiguity check.
	synthesizer, err := NewTreeSynthesizer(StandardLayout(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	//
	_, err = synthesizer.Synthesize([]uint{3, 2}, Generators(mustTerms(t, 1.0, "X", "X")))
	assertPreconditionError(t, err)
	//
	_, err = synthesizer.Synthesize([]uint{4}, Generators(mustTerms(t, 1.0, "X")))
	assertPreconditionError(t, err)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Tree(t *testing.T, regs Registers, keys []uint, axes ...string) {
	check_Tree_Terms(t, regs, keys, mustTerms(t, 1.0, axes...))
}

func check_Tree_Terms(t *testing.T, regs Registers, keys []uint, terms []pauli.Term) {
	synthesizer, err := NewTreeSynthesizer(regs)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkOracleSemantics(t, synthesizer, regs, keys, terms)
}

// check_Tree_Walk_Agree synthesises the same key table with both strategies
// and checks each against the reference semantics, with a deterministic mix
// of payload axes so consecutive keys differ.
func check_Tree_Walk_Agree(t *testing.T, width uint, from uint, n uint) {
	var (
		regs = StandardLayout(width, 1)
		keys = contiguous(from, n)
		axes = []string{"X", "Y", "Z"}
	)
	//
	terms := make([]pauli.Term, n)
	//
	for i := uint(0); i < n; i++ {
		terms[i] = mustTerm(t, axes[i%3], 1.0)
	}
	//
	t.Run(fmt.Sprintf("w%d_%d_%d", width, from, n), func(t *testing.T) {
		check_Walk_Terms(t, regs, keys, terms)
		check_Tree_Terms(t, regs, keys, terms)
	})
}
