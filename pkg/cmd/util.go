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
package cmd

import (
	"fmt"
	"os"
	"path"

	pkgErrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/consensys/go-selv/pkg/circuit"
	"github.com/consensys/go-selv/pkg/pauli"
	"github.com/consensys/go-selv/pkg/selv"
	"github.com/consensys/go-selv/pkg/util"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a strategy name given on the command line.
func readStrategy(name string) selv.Strategy {
	switch name {
	case "walk":
		return selv.WalkStrategy
	case "tree":
		return selv.TreeStrategy
	default:
		fmt.Printf("unknown strategy %q (expected \"walk\" or \"tree\")\n", name)
		os.Exit(2)
		// unreachable
		return selv.WalkStrategy
	}
}

// Parse a Hamiltonian description file, which may be bzip2 compressed.
func readHamiltonianFile(filename string) pauli.Hamiltonian {
	contents, err := util.ReadInputFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	hamiltonian, err := pauli.ParseHamiltonian(contents)
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	//
	return hamiltonian
}

// Parse a circuit file based on the extension of the filename.  A ".bin"
// file holds the binary artifact form; anything else is rejected.
func readCircuitFile(filename string) circuit.Circuit {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(pkgErrors.Wrapf(err, "reading %s", filename))
		os.Exit(2)
	}
	//
	if ext := path.Ext(filename); ext != ".bin" {
		fmt.Printf("unknown circuit file format: %s\n", ext)
		os.Exit(2)
	}
	//
	c, err := circuit.Decode(bytes)
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	//
	return c
}

// Write a given file to disk, reporting any errors arising.
func writeOutputFile(filename string, data []byte) {
	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Println(pkgErrors.Wrapf(err, "writing %s", filename))
		os.Exit(2)
	}
}
