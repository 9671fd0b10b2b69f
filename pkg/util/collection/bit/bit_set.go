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
	"math/bits"
	"slices"
	"strings"
)

// Set provides a straightforward bitset implementation. That is, a set of
// (unsigned) integer values implemented as an array of bits.  Sets are used
// to track which qubits a given circuit touches.
type Set struct {
	words []uint64
}

// Clone creates a true copy of this bitset which ensures no aliasing between
// this set and the result.
func (p *Set) Clone() Set {
	return Set{slices.Clone(p.words)}
}

// Insert a given value into this set.
func (p *Set) Insert(val uint) {
	word := val / 64
	bit := val % 64
	//
	for uint(len(p.words)) <= word {
		p.words = append(p.words, 0)
	}
	// Set bit
	mask := uint64(1) << bit
	p.words[word] = p.words[word] | mask
}

// InsertAll inserts zero or more elements into this bitset.
func (p *Set) InsertAll(vals ...uint) {
	for _, v := range vals {
		p.Insert(v)
	}
}

// Remove a given value from this set.
func (p *Set) Remove(val uint) {
	word := val / 64
	bit := val % 64
	// Check whether we need to do anything.
	if uint(len(p.words)) > word {
		// unset bit
		mask := uint64(1) << bit
		p.words[word] = p.words[word] & ^mask
	}
}

// Union inserts all elements from a given bitset into this bitset, return true
// if there is some change.
func (p *Set) Union(other Set) bool {
	changed := false
	//
	for len(p.words) < len(other.words) {
		p.words = append(p.words, 0)
	}
	// Insert all
	for w := range other.words {
		tmp := p.words[w] | other.words[w]
		changed = changed || tmp != p.words[w]
		p.words[w] = tmp
	}
	//
	return changed
}

// Contains checks whether a given value is contained, or not.
func (p *Set) Contains(val uint) bool {
	word := val / 64
	bit := val % 64
	//
	if uint(len(p.words)) <= word {
		return false
	}
	// Set mask
	mask := uint64(1) << bit
	//
	return (p.words[word] & mask) != 0
}

// Intersects checks whether this set and the other have at least one element
// in common.
func (p *Set) Intersects(other Set) bool {
	n := min(len(p.words), len(other.words))
	//
	for w := 0; w < n; w++ {
		if p.words[w]&other.words[w] != 0 {
			return true
		}
	}
	//
	return false
}

// Count returns the number of bits in the bitset which are set to one.
func (p *Set) Count() uint {
	count := uint(0)
	//
	for _, word := range p.words {
		count += uint(bits.OnesCount64(word))
	}
	//
	return count
}

// Elements returns all elements of this set in ascending order.
func (p *Set) Elements() []uint {
	elems := make([]uint, 0, p.Count())
	//
	for w, word := range p.words {
		for word != 0 {
			i := bits.TrailingZeros64(word)
			elems = append(elems, uint(w*64+i))
			word &= word - 1
		}
	}
	//
	return elems
}

func (p *Set) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, val := range p.Elements() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", val))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}
