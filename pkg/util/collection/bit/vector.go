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
package bit

import (
	"fmt"
	"slices"
	"strings"
)

// Vector provides a fixed-width bit vector held in most-significant-first
// order.  That is, index 0 holds the most significant bit and index width-1
// the least significant bit.  Vectors are used to encode oracle addresses,
// hence the width is fixed at construction and never changes.
type Vector struct {
	bits []bool
}

// NewVector constructs a zeroed vector of the given width.
func NewVector(width uint) Vector {
	return Vector{make([]bool, width)}
}

// VectorOf constructs a vector directly from the given bits, where the first
// bit given is the most significant.
func VectorOf(bits ...bool) Vector {
	return Vector{bits}
}

// EncodeUint encodes a given key as a vector of the given width, zero padding
// at the most significant end.  This fails if the key does not fit within
// width bits.
func EncodeUint(key uint, width uint) (Vector, error) {
	if width < 64 && key >= (uint(1)<<width) {
		return Vector{}, fmt.Errorf("key %d exceeds %d bit(s)", key, width)
	}
	//
	bits := make([]bool, width)
	//
	for i := uint(0); i < width; i++ {
		bits[width-1-i] = (key>>i)&1 == 1
	}
	//
	return Vector{bits}, nil
}

// Width returns the number of bits held in this vector.
func (p Vector) Width() uint {
	return uint(len(p.bits))
}

// Get returns the ith bit, where bit 0 is the most significant.
func (p Vector) Get(i uint) bool {
	return p.bits[i]
}

// Set updates the ith bit, where bit 0 is the most significant.
func (p Vector) Set(i uint, v bool) {
	p.bits[i] = v
}

// Clone creates a true copy of this vector, ensuring no aliasing between this
// vector and the result.
func (p Vector) Clone() Vector {
	return Vector{slices.Clone(p.bits)}
}

// Prefix returns a view of the first n bits of this vector.  The result
// aliases this vector.
func (p Vector) Prefix(n uint) Vector {
	return Vector{p.bits[:n]}
}

// Uint decodes this vector back into an unsigned integer.  The vector width
// must not exceed 64 bits.
func (p Vector) Uint() uint {
	var val uint
	//
	for _, b := range p.bits {
		val = val << 1
		//
		if b {
			val = val | 1
		}
	}
	//
	return val
}

// Increment returns a fresh vector holding this vector plus one, treating the
// vector as a big-endian binary number.  That is, the trailing run of set
// bits is cleared and the first clear bit (scanning from the least
// significant end) is set.  Incrementing the all-ones vector would overflow
// the fixed width, hence this panics; callers never increment the maximum
// key.
func (p Vector) Increment() Vector {
	q := p.Clone()
	//
	for i := len(q.bits) - 1; i >= 0; i-- {
		if !q.bits[i] {
			q.bits[i] = true
			return q
		}
		// Carry
		q.bits[i] = false
	}
	// Unreachable for any in-range key.
	panic("increment overflows vector width")
}

// HammingDistance returns the number of positions at which this vector and
// the other differ.  Both vectors must have the same width.
func (p Vector) HammingDistance(other Vector) uint {
	var count uint
	//
	for i, b := range p.bits {
		if b != other.bits[i] {
			count++
		}
	}
	//
	return count
}

// Equals checks whether this vector holds exactly the same bits as the other.
func (p Vector) Equals(other Vector) bool {
	return slices.Equal(p.bits, other.bits)
}

func (p Vector) String() string {
	var builder strings.Builder
	//
	for _, b := range p.bits {
		if b {
			builder.WriteString("1")
		} else {
			builder.WriteString("0")
		}
	}
	//
	return builder.String()
}
