// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitvec implements an immutable succinct bit vector that answers
// Rank and Select queries in constant time.
//
// The bits are packed into 32-bit words, most significant bit first. A
// two-level rank index stores cumulative population counts per block of 128
// words and per word. A select index partitions the set bits into
// superblocks: superblocks whose set bits are spread over a large range
// store their positions explicitly, the others store an 8-ary tree of
// cumulative population counts over the words they span. A shared 8x256
// table resolves the final position within a word.
//
// A BitVector is immutable once New returns and is safe for concurrent use.
package bitvec

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/bitvec/internal/bitstore"
	"github.com/cockroachdb/bitvec/internal/rankindex"
	"github.com/cockroachdb/bitvec/internal/selectindex"
	"github.com/cockroachdb/bitvec/internal/selecttable"
	"github.com/cockroachdb/errors"
)

// BitVector is an immutable sequence of bits indexed for Rank and Select.
type BitVector struct {
	words bitstore.Words
	rank  rankindex.Index
	sel   selectindex.Index
}

// New packs seq and builds its indexes. It returns an error wrapping
// ErrInvalidInput if seq is empty or opts is invalid, and one wrapping
// ErrAllocationFailure if a buffer cannot be allocated. opts may be nil.
func New[S Sequence](seq S, opts *Options) (*BitVector, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.EnsureDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if n := seq.Len(); n <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "bitvec: sequence of length %d", n)
	}

	bv := &BitVector{}
	var err error
	if bv.words, err = bitstore.Pack(seq); err != nil {
		return nil, err
	}
	if bv.rank, err = rankindex.Build(bv.words); err != nil {
		return nil, err
	}
	if bv.sel, err = selectindex.Build(bv.words, o.selectConfig()); err != nil {
		return nil, err
	}
	// Build the shared table before the first query.
	_ = selecttable.Get()

	o.Logger.Infof("bitvec: built %s", bv.Stats())
	return bv, nil
}

// Len returns the number of bits.
func (bv *BitVector) Len() int {
	return bv.words.Len()
}

// Ones returns the number of set bits.
func (bv *BitVector) Ones() int {
	return bv.rank.Ones()
}

// Get returns the bit at position x.
func (bv *BitVector) Get(x int) (bool, error) {
	if err := bv.checkPosition("get", x); err != nil {
		return false, err
	}
	return bv.words.Bit(x), nil
}

// Rank returns the number of set bits in positions [0, x].
func (bv *BitVector) Rank(x int) (int, error) {
	if err := bv.checkPosition("rank", x); err != nil {
		return 0, err
	}
	return bv.rank.Rank(bv.words, x), nil
}

// Select returns the position of the i-th set bit, counting from zero.
func (bv *BitVector) Select(i int) (int, error) {
	if ones := bv.Ones(); i < 0 || i >= ones {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "bitvec: select %d not in [0, %d)", i, ones)
	}
	return bv.sel.Select(bv.words, i), nil
}

func (bv *BitVector) checkPosition(op string, x int) error {
	if n := bv.Len(); x < 0 || x >= n {
		return errors.Wrapf(ErrIndexOutOfRange, "bitvec: %s position %d not in [0, %d)", op, x, n)
	}
	return nil
}

// MemoryFootprint returns the number of bytes allocated for the packed bits,
// the rank and select indexes, and the shared select table. Sizes are based
// on buffer capacities.
func (bv *BitVector) MemoryFootprint() int {
	return bv.words.Bytes() + bv.rank.Bytes() + bv.sel.Bytes() + selecttable.Bytes()
}

// Fingerprint returns a hash of the length and packed contents. Vectors
// built from equal bit sequences have equal fingerprints regardless of the
// Sequence type or Options used to build them.
func (bv *BitVector) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(bv.Len()))
	_, _ = d.Write(buf[:])
	for _, w := range bv.words.Slice() {
		binary.LittleEndian.PutUint32(buf[:4], w)
		_, _ = d.Write(buf[:4])
	}
	return d.Sum64()
}

// Stats returns a summary of the vector's shape and memory usage.
func (bv *BitVector) Stats() Stats {
	s := bv.sel.Stats()
	return Stats{
		Len:               bv.Len(),
		Ones:              bv.Ones(),
		Words:             bv.words.NumWords(),
		Superblocks:       s.Superblocks,
		SparseSuperblocks: s.Sparse,
		DenseSuperblocks:  s.Dense,
		TreeNodes:         s.DenseNodes,
		MaxTreeHeight:     s.MaxHeight,
		BitsBytes:         bv.words.Bytes(),
		RankBytes:         bv.rank.Bytes(),
		SelectBytes:       bv.sel.Bytes(),
		TableBytes:        selecttable.Bytes(),
	}
}

// String returns the bits grouped by word.
func (bv *BitVector) String() string {
	return bv.words.String()
}

// DebugString describes the select superblocks.
func (bv *BitVector) DebugString() string {
	return fmt.Sprintf("%s\n%s", bv.Stats(), bv.sel.String())
}
