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
package util

import (
	"compress/bzip2"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
)

// ReadInputFile reads an input file in its entirety, transparently
// decompressing based on the filename extension.
func ReadInputFile(filename string) (string, error) {
	file, err := os.Open(filename)
	//
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", filename)
	}
	// apply compression
	var reader io.Reader
	// check extension
	switch path.Ext(filename) {
	case ".bz2":
		reader = bzip2.NewReader(file)
	default:
		reader = file
	}
	//
	bytes, err := io.ReadAll(reader)
	//
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", filename)
	}
	//
	if err := file.Close(); err != nil {
		return "", errors.Wrapf(err, "closing %s", filename)
	}
	//
	return string(bytes), nil
}
