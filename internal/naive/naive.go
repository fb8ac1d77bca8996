// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package naive implements a reference rank/select bit vector that stores the
// answer to every query. It uses O(N) words of memory and exists to verify
// the succinct implementation.
package naive

import "github.com/cockroachdb/errors"

// Sequence is a finite, indexable sequence of booleans.
type Sequence interface {
	Len() int
	At(i int) bool
}

// BitVector answers Rank and Select from precomputed arrays.
type BitVector struct {
	rank    []int
	select1 []int
}

// New precomputes the rank of every position and the position of every set
// bit of s.
func New(s Sequence) (*BitVector, error) {
	n := s.Len()
	if n == 0 {
		return nil, errors.New("naive: empty sequence")
	}
	bv := &BitVector{rank: make([]int, n)}
	count := 0
	for i := 0; i < n; i++ {
		if s.At(i) {
			count++
			bv.select1 = append(bv.select1, i)
		}
		bv.rank[i] = count
	}
	return bv, nil
}

// Len returns the number of bits.
func (bv *BitVector) Len() int { return len(bv.rank) }

// Ones returns the number of set bits.
func (bv *BitVector) Ones() int { return len(bv.select1) }

// Rank returns the number of set bits in [0, x].
func (bv *BitVector) Rank(x int) int { return bv.rank[x] }

// Select returns the position of the i-th set bit.
func (bv *BitVector) Select(i int) int { return bv.select1[i] }

// Bytes returns the memory consumed by the precomputed arrays.
func (bv *BitVector) Bytes() int {
	return (cap(bv.rank) + cap(bv.select1)) * 8
}
