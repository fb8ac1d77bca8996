// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Sequence is a finite, indexable sequence of booleans. New accepts any
// Sequence and packs it the same way.
type Sequence interface {
	Len() int
	At(i int) bool
}

// Bools adapts a []bool.
type Bools []bool

var _ Sequence = Bools(nil)

func (b Bools) Len() int      { return len(b) }
func (b Bools) At(i int) bool { return b[i] }

// BitString adapts a string in which '1' denotes a set bit and any other
// byte a clear bit.
type BitString string

var _ Sequence = BitString("")

func (s BitString) Len() int      { return len(s) }
func (s BitString) At(i int) bool { return s[i] == '1' }

// Roaring adapts a roaring bitmap. N is the length of the sequence; members
// of the bitmap at or beyond N are ignored.
type Roaring struct {
	Bitmap *roaring.Bitmap
	N      int
}

var _ Sequence = Roaring{}

func (r Roaring) Len() int { return r.N }

func (r Roaring) At(i int) bool {
	return i <= math.MaxUint32 && r.Bitmap.Contains(uint32(i))
}

// BitSet adapts a bitset. The length of the sequence is the length of the
// bitset.
type BitSet struct {
	*bitset.BitSet
}

var _ Sequence = BitSet{}

func (b BitSet) Len() int      { return int(b.BitSet.Len()) }
func (b BitSet) At(i int) bool { return b.Test(uint(i)) }
