// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package selectindex locates the i-th set bit of packed words in
// effectively constant time.
//
// The set bits are partitioned, in order, into superblocks of
// Config.OnesPerSuperblock bits (w^2 = 4096 by default); only the last
// superblock may hold fewer. Select(i) consults superblock i/OnesPerSuperblock.
// Each superblock is classified by the span of positions it covers:
//
//   - sparse, when last-first+1 > Config.SparseSpan (w^4 = 2^24 by default):
//     the absolute positions are stored in an array.
//   - dense, otherwise: an 8-ary tree of cumulative population counts over
//     the spanned words is stored (see denseTree), and the final bit is
//     resolved within its word by the select table.
//
// A dense superblock costs 2 bytes per 8 spanned words while a sparse one
// costs 8 bytes per set bit, so sparse storage wins exactly when the set bits
// are spread thin.
package selectindex

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/cockroachdb/bitvec/internal/bitstore"
	"github.com/cockroachdb/bitvec/internal/broadword"
	"github.com/cockroachdb/bitvec/internal/invariants"
	"github.com/cockroachdb/bitvec/internal/selecttable"
	"github.com/cockroachdb/errors"
)

const (
	// DefaultOnesPerSuperblock is w^2 for w = 64.
	DefaultOnesPerSuperblock = 64 * 64
	// DefaultSparseSpan is w^4 for w = 64.
	DefaultSparseSpan = 64 * 64 * 64 * 64
	// MaxOnesPerSuperblock bounds the superblock size so that the counters of
	// a dense tree, which also count the set bits of the first and last words
	// that belong to neighbouring superblocks, fit broadword.Counters.
	MaxOnesPerSuperblock = 1 << 14
)

// Config configures the partitioning of set bits into superblocks.
type Config struct {
	// OnesPerSuperblock is the number of set bits in every superblock but the
	// last.
	OnesPerSuperblock int
	// SparseSpan is the largest span of positions a superblock may cover and
	// still be stored as a dense tree.
	SparseSpan int
}

// EnsureDefaults fills in zero fields with their defaults.
func (c *Config) EnsureDefaults() {
	if c.OnesPerSuperblock == 0 {
		c.OnesPerSuperblock = DefaultOnesPerSuperblock
	}
	if c.SparseSpan == 0 {
		c.SparseSpan = DefaultSparseSpan
	}
}

// Validate returns an error if the config cannot be used to build an index.
func (c Config) Validate() error {
	if c.OnesPerSuperblock < 1 || c.OnesPerSuperblock > MaxOnesPerSuperblock {
		return errors.Newf("selectindex: ones per superblock %d not in [1, %d]",
			c.OnesPerSuperblock, MaxOnesPerSuperblock)
	}
	if c.SparseSpan < 1 {
		return errors.Newf("selectindex: sparse span %d must be positive", c.SparseSpan)
	}
	return nil
}

// kind tags the representation of a superblock.
type kind uint8

const (
	kindDense kind = iota
	kindSparse
)

func (k kind) String() string {
	switch k {
	case kindDense:
		return "dense"
	case kindSparse:
		return "sparse"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// superblock is a closed variant: exactly one of sparse and dense is
// populated, as indicated by kind.
type superblock struct {
	kind   kind
	sparse sparseArray
	dense  denseTree
}

// Index is an immutable select directory.
type Index struct {
	cfg         Config
	superblocks []superblock
	ones        int
}

// Build scans words in order, partitioning the positions of their set bits
// into superblocks.
func Build(words bitstore.Words, cfg Config) (Index, error) {
	cfg.EnsureDefaults()
	if err := cfg.Validate(); err != nil {
		return Index{}, err
	}
	idx := Index{cfg: cfg}
	size := cfg.OnesPerSuperblock

	// buf holds the positions of the superblock being assembled. A word may
	// push it past size, in which case the excess carries over.
	buf := make([]uint64, 0, size+bitstore.WordBits)
	data := words.Slice()
	for wi, w := range data {
		for j, n := 0, broadword.OnesCount32(w); j < n; j++ {
			buf = append(buf, uint64(wi<<bitstore.WordShift+selecttable.InWord(w, j)))
		}
		for len(buf) >= size {
			if err := idx.add(words, buf[:size]); err != nil {
				return Index{}, err
			}
			buf = append(buf[:0], buf[size:]...)
		}
		if wi == len(data)-1 && len(buf) > 0 {
			if err := idx.add(words, buf); err != nil {
				return Index{}, err
			}
		}
	}
	if invariants.Enabled {
		idx.verify(words)
	}
	return idx, nil
}

// add closes a superblock holding the given positions.
func (idx *Index) add(words bitstore.Words, positions []uint64) error {
	var sb superblock
	var err error
	if span := positions[len(positions)-1] - positions[0] + 1; span > uint64(idx.cfg.SparseSpan) {
		sb.kind = kindSparse
		sb.sparse, err = buildSparseArray(positions)
	} else {
		sb.kind = kindDense
		sb.dense, err = buildDenseTree(words, positions)
	}
	if err != nil {
		return errors.Wrapf(err, "selectindex: superblock %d", len(idx.superblocks))
	}
	idx.superblocks = append(idx.superblocks, sb)
	idx.ones += len(positions)
	return nil
}

// Select returns the position of the i-th set bit. The caller must ensure
// i < Ones().
func (idx Index) Select(words bitstore.Words, i int) int {
	invariants.CheckBounds(i, idx.ones)
	size := idx.cfg.OnesPerSuperblock
	sb := &idx.superblocks[i/size]
	switch sb.kind {
	case kindSparse:
		return sb.sparse.selectLocal(i % size)
	case kindDense:
		return sb.dense.selectLocal(words, i%size)
	default:
		panic(errors.AssertionFailedf("selectindex: unknown superblock kind %s", sb.kind))
	}
}

// Ones returns the number of set bits indexed.
func (idx Index) Ones() int {
	return idx.ones
}

// Config returns the config the index was built with, with defaults filled in.
func (idx Index) Config() Config {
	return idx.cfg
}

// Bytes returns the memory consumed by the index, based on capacity.
func (idx Index) Bytes() int {
	n := cap(idx.superblocks) * int(unsafe.Sizeof(superblock{}))
	for i := range idx.superblocks {
		sb := &idx.superblocks[i]
		switch sb.kind {
		case kindSparse:
			n += sb.sparse.bytes()
		case kindDense:
			n += sb.dense.bytes()
		}
	}
	return n
}

// Stats describes the shape of an Index.
type Stats struct {
	Superblocks int
	Sparse      int
	Dense       int
	// DenseNodes is the total number of tree nodes over all dense superblocks.
	DenseNodes int
	// MaxHeight is the height of the tallest dense tree.
	MaxHeight   int
	SparseBytes int
	DenseBytes  int
}

// Stats returns the shape of the index.
func (idx Index) Stats() Stats {
	s := Stats{Superblocks: len(idx.superblocks)}
	for i := range idx.superblocks {
		sb := &idx.superblocks[i]
		switch sb.kind {
		case kindSparse:
			s.Sparse++
			s.SparseBytes += sb.sparse.bytes()
		case kindDense:
			s.Dense++
			s.DenseNodes += sb.dense.numNodes()
			s.DenseBytes += sb.dense.bytes()
			s.MaxHeight = max(s.MaxHeight, sb.dense.height)
		}
	}
	return s
}

// String describes every superblock.
func (idx Index) String() string {
	var sb strings.Builder
	for i := range idx.superblocks {
		fmt.Fprintf(&sb, "superblock %d ", i)
		idx.superblocks[i].describe(&sb)
	}
	return sb.String()
}

func (sb *superblock) describe(w io.Writer) {
	switch sb.kind {
	case kindSparse:
		sb.sparse.describe(w)
	case kindDense:
		sb.dense.describe(w)
	}
}

// verify checks that every superblock resolves its first and last set bit to
// a set bit, and that consecutive superblocks are ordered.
func (idx Index) verify(words bitstore.Words) {
	prev := -1
	for i := 0; i < idx.ones; i += idx.cfg.OnesPerSuperblock {
		last := min(i+idx.cfg.OnesPerSuperblock, idx.ones) - 1
		p, q := idx.Select(words, i), idx.Select(words, last)
		if p <= prev || q < p || !words.Bit(p) || !words.Bit(q) {
			panic(errors.AssertionFailedf("selectindex: superblock %d resolves to [%d, %d] after %d",
				i/idx.cfg.OnesPerSuperblock, p, q, prev))
		}
		prev = q
	}
}
