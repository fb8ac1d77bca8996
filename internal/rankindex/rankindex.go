// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rankindex implements a two-level rank directory over packed words.
//
// The words are grouped into blocks of BlockWords words (4096 bits). The
// first level stores, for every block, the number of set bits preceding the
// block. The second level stores, for every word, the number of set bits
// preceding the word within its block; since a block holds at most 4096 set
// bits a uint16 suffices.
//
//	          block 0                     block 1
//	+------+------+-----+------+   +------+------+-----+
//	| w0   | w1   | ... | w127 |   | w128 | w129 | ... |
//	+------+------+-----+------+   +------+------+-----+
//	level1:  0                       ones(w0..w127)
//	level2:  0      ones(w0) ...     0      ones(w128) ...
//
// Rank(x) adds the two levels for x's word to the population count of the
// bits of the word up to and including x.
package rankindex

import (
	"github.com/cockroachdb/bitvec/internal/aligned"
	"github.com/cockroachdb/bitvec/internal/bitstore"
	"github.com/cockroachdb/bitvec/internal/broadword"
	"github.com/cockroachdb/bitvec/internal/invariants"
	"github.com/cockroachdb/errors"
)

const (
	// BlockWords is the number of words covered by a level-1 entry.
	BlockWords = 1 << BlockShift
	// BlockShift is log2(BlockWords).
	BlockShift = 7
	// BlockBits is the number of bits covered by a level-1 entry.
	BlockBits = BlockWords * bitstore.WordBits
)

// Index is an immutable two-level rank directory.
type Index struct {
	level1 []uint64
	level2 []uint16
	ones   int
}

// Build scans words once, recording the prefix counts of every block and
// every word.
func Build(words bitstore.Words) (Index, error) {
	nw := words.NumWords()
	level1, err := aligned.Slice[uint64]((nw + BlockWords - 1) >> BlockShift)
	if err != nil {
		return Index{}, errors.Wrap(err, "rankindex: allocating level 1")
	}
	level2, err := aligned.Slice[uint16](nw)
	if err != nil {
		return Index{}, errors.Wrap(err, "rankindex: allocating level 2")
	}

	var sum1 uint64
	var sum2 uint16
	for i, w := range words.Slice() {
		if i&(BlockWords-1) == 0 {
			level1[i>>BlockShift] = sum1
			sum2 = 0
		}
		level2[i] = sum2
		n := broadword.OnesCount32(w)
		sum1 += uint64(n)
		sum2 += uint16(n)
	}
	idx := Index{level1: level1, level2: level2, ones: int(sum1)}
	if invariants.Enabled {
		idx.verify(words)
	}
	return idx, nil
}

// Rank returns the number of set bits in positions [0, x]. The caller must
// ensure x < words.Len().
func (idx Index) Rank(words bitstore.Words, x int) int {
	invariants.CheckBounds(x, words.Len())
	wi := x >> bitstore.WordShift
	w := words.At(wi) >> (bitstore.WordMask - x&bitstore.WordMask)
	return int(idx.level1[wi>>BlockShift]) + int(idx.level2[wi]) + broadword.OnesCount32(w)
}

// Ones returns the total number of set bits.
func (idx Index) Ones() int {
	return idx.ones
}

// Bytes returns the memory consumed by both levels, based on capacity.
func (idx Index) Bytes() int {
	return cap(idx.level1)*8 + cap(idx.level2)*2
}

// verify re-derives both levels and panics on any mismatch.
func (idx Index) verify(words bitstore.Words) {
	var sum uint64
	for i, w := range words.Slice() {
		if got := idx.level1[i>>BlockShift] + uint64(idx.level2[i]); got != sum {
			panic(errors.AssertionFailedf("rankindex: word %d: prefix count %d, expected %d", i, got, sum))
		}
		sum += uint64(broadword.OnesCount32(w))
	}
	if sum != uint64(idx.ones) {
		panic(errors.AssertionFailedf("rankindex: total %d, expected %d", idx.ones, sum))
	}
}
