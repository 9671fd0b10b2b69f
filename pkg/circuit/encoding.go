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

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ArtifactVersion identifies the current layout of the binary circuit
// artifact.  Decoding fails on any other version.
const ArtifactVersion = 1

// artifact is the on-disk envelope for a compiled circuit.
type artifact struct {
	Version uint         `cbor:"1,keyasint"`
	Gates   []gateRecord `cbor:"2,keyasint"`
}

// gateRecord is the flattened, tag-based form of a single gate.
type gateRecord struct {
	Op      string `cbor:"1,keyasint"`
	Args    []uint `cbor:"2,keyasint"`
	Pol     []bool `cbor:"3,keyasint,omitempty"`
	Adjoint bool   `cbor:"4,keyasint,omitempty"`
}

// Encode serialises a circuit into its binary artifact form.
func Encode(c Circuit) ([]byte, error) {
	records := make([]gateRecord, 0, c.Size())
	//
	for _, g := range c.Gates() {
		var rec gateRecord
		//
		rec.Op = mnemonic(g)
		rec.Args = g.Qubits()
		//
		switch g := g.(type) {
		case S:
			rec.Adjoint = g.Adjoint
		case CCX:
			rec.Pol = []bool{g.Polarity0, g.Polarity1}
		}
		//
		records = append(records, rec)
	}
	//
	return cbor.Marshal(artifact{ArtifactVersion, records})
}

// Decode reconstructs a circuit from its binary artifact form, validating
// each record as it goes.
func Decode(data []byte) (Circuit, error) {
	var (
		env artifact
		c   Circuit
	)
	//
	if err := cbor.Unmarshal(data, &env); err != nil {
		return c, err
	} else if env.Version != ArtifactVersion {
		return c, fmt.Errorf("unsupported artifact version %d", env.Version)
	}
	//
	for i, rec := range env.Gates {
		g, err := decodeGate(rec)
		if err != nil {
			return Circuit{}, fmt.Errorf("gate %d: %w", i, err)
		}
		//
		c.Append(g)
	}
	//
	return c, nil
}

func decodeGate(rec gateRecord) (Gate, error) {
	switch rec.Op {
	case "x":
		if len(rec.Args) != 1 {
			return nil, fmt.Errorf("x expects 1 qubit, got %d", len(rec.Args))
		}
		//
		return X{rec.Args[0]}, nil
	case "z":
		if len(rec.Args) != 1 {
			return nil, fmt.Errorf("z expects 1 qubit, got %d", len(rec.Args))
		}
		//
		return Z{rec.Args[0]}, nil
	case "s":
		if len(rec.Args) != 1 {
			return nil, fmt.Errorf("s expects 1 qubit, got %d", len(rec.Args))
		}
		//
		return S{rec.Args[0], rec.Adjoint}, nil
	case "cx":
		if len(rec.Args) != 2 {
			return nil, fmt.Errorf("cx expects 2 qubits, got %d", len(rec.Args))
		}
		//
		return CX{rec.Args[0], rec.Args[1]}, nil
	case "cz":
		if len(rec.Args) != 2 {
			return nil, fmt.Errorf("cz expects 2 qubits, got %d", len(rec.Args))
		}
		//
		return CZ{rec.Args[0], rec.Args[1]}, nil
	case "ccx":
		if len(rec.Args) != 3 || len(rec.Pol) != 2 {
			return nil, fmt.Errorf("malformed ccx record")
		}
		//
		return CCX{rec.Pol[0], rec.Pol[1], rec.Args[0], rec.Args[1], rec.Args[2]}, nil
	default:
		return nil, fmt.Errorf("unknown gate %q", rec.Op)
	}
}
