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
	"strconv"
	"strings"
)

// ParseHamiltonian parses a line-oriented Hamiltonian description.  Each
// non-empty line holds one term as a Pauli string followed by a coefficient,
// for example:
//
//	XIZY -0.5
//	ZZII  0.25
//
// Lines starting with ";;" are comments.  Every term must span the same
// number of target qubits.
func ParseHamiltonian(src string) (Hamiltonian, error) {
	var (
		terms Hamiltonian
		width = -1
	)
	//
	for num, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		// Skip blanks and comments
		if line == "" || strings.HasPrefix(line, ";;") {
			continue
		}
		//
		term, err := parseTermLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", num+1, err)
		}
		// All terms must agree on width
		if width >= 0 && int(term.Width()) != width {
			return nil, fmt.Errorf("line %d: term spans %d qubit(s), expected %d", num+1, term.Width(), width)
		}
		//
		width = int(term.Width())
		terms = append(terms, term)
	}
	//
	return terms, nil
}

func parseTermLine(line string) (Term, error) {
	fields := strings.Fields(line)
	//
	if len(fields) != 2 {
		return Term{}, fmt.Errorf("malformed term %q", line)
	}
	//
	coefficient, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Term{}, fmt.Errorf("malformed coefficient %q", fields[1])
	}
	//
	return NewTerm(fields[0], coefficient)
}
