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
	"fmt"
)

// ErrEmptyOracle signals that a Hamiltonian holds no non-trivial term, hence
// there is nothing to synthesise.  Callers must not construct an oracle over
// an all-trivial term list.
var ErrEmptyOracle = errors.New("hamiltonian contains no non-trivial term")

// PreconditionError signals a violated synthesis precondition, such as a key
// outside the addressable range or a non-increasing key sequence.  It is
// always fatal to the call: synthesis is deterministic, so retrying with the
// same input fails identically.
type PreconditionError struct {
	msg string
}

func (p *PreconditionError) Error() string {
	return p.msg
}

func preconditionErrorf(format string, args ...any) *PreconditionError {
	return &PreconditionError{fmt.Sprintf(format, args...)}
}

// ConfigurationError signals mismatched register wiring, such as an ancilla
// register narrower than the address register, or fewer target qubits than a
// term spans.
type ConfigurationError struct {
	msg string
}

func (p *ConfigurationError) Error() string {
	return p.msg
}

func configurationErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}
