// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitstore packs a sequence of booleans into 32-bit words.
//
// Bit i of the sequence is stored in word i/32 at offset i%32 counted from the
// most significant bit of the word:
//
//	position: 0 1 2 3 4 5 6 7 ...                31
//	    bits: 1 0 1 1 0 0 0 1 0 0 0 0 ... 0 0 0 0 0  = 0xb1000000
//
// Rank and select arithmetic over the words depends on this order. Bits past
// the end of the sequence in the last word are zero.
package bitstore

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/bitvec/internal/aligned"
	"github.com/cockroachdb/bitvec/internal/invariants"
	"github.com/cockroachdb/errors"
)

const (
	// WordBits is the number of bits in a storage word.
	WordBits = 32
	// WordShift is log2(WordBits).
	WordShift = 5
	// WordMask masks a position to its offset within a word.
	WordMask = WordBits - 1
)

// ErrEmpty is returned by Pack when the sequence has no elements.
var ErrEmpty = errors.New("bitstore: empty sequence")

// Sequence is a finite, indexable sequence of booleans.
type Sequence interface {
	Len() int
	At(i int) bool
}

// Words is the packed, immutable representation of a bit sequence.
type Words struct {
	data []uint32
	n    int
}

// WordCount returns the number of words required to hold n bits.
func WordCount(n int) int {
	return (n + WordBits - 1) >> WordShift
}

// Pack packs s into words. It is the only way to construct a Words and works
// the same for every Sequence implementation.
func Pack[S Sequence](s S) (Words, error) {
	n := s.Len()
	if n <= 0 {
		return Words{}, ErrEmpty
	}
	data, err := aligned.Slice[uint32](WordCount(n))
	if err != nil {
		return Words{}, errors.Wrapf(err, "bitstore: packing %d bits", n)
	}
	for i := 0; i < n; i++ {
		if s.At(i) {
			data[i>>WordShift] |= 1 << (WordMask - i&WordMask)
		}
	}
	return Words{data: data, n: n}, nil
}

// Len returns the number of bits.
func (w Words) Len() int {
	return w.n
}

// NumWords returns the number of words.
func (w Words) NumWords() int {
	return len(w.data)
}

// At returns the i-th word.
func (w Words) At(i int) uint32 {
	invariants.CheckBounds(i, len(w.data))
	return w.data[i]
}

// Bit returns true if the bit at position x is set.
func (w Words) Bit(x int) bool {
	invariants.CheckBounds(x, w.n)
	return w.data[x>>WordShift]&(1<<(WordMask-x&WordMask)) != 0
}

// Slice returns the backing words. The caller must not modify them.
func (w Words) Slice() []uint32 {
	return w.data
}

// Bytes returns the memory consumed by the words, based on capacity.
func (w Words) Bytes() int {
	return cap(w.data) * 4
}

// String returns the bits grouped by word.
func (w Words) String() string {
	var sb strings.Builder
	for i, word := range w.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		bits := fmt.Sprintf("%032b", word)
		if i == len(w.data)-1 {
			if rem := w.n & WordMask; rem != 0 {
				bits = bits[:rem]
			}
		}
		sb.WriteString(bits)
	}
	return sb.String()
}
