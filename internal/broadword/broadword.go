// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package broadword implements the word-level primitives shared by the rank
// and select indexes: population counts and an 8-wide "first counter
// exceeding a target" search over the nodes of the select tree.
//
// The 8-wide search is implemented with SWAR (SIMD within a register)
// arithmetic over two 64-bit lanes of four 16-bit counters each. Builds using
// the purego tag use the scalar loop instead; both return the same index for
// every input.
package broadword

import (
	"math/bits"

	"github.com/cockroachdb/bitvec/internal/buildtags"
)

// Counters holds the cumulative counts of the 8 children of a select tree
// node. Counters must be non-decreasing and less than MaxCounter.
type Counters [8]uint16

// MaxCounter bounds every counter and every target passed to FirstExceeding.
// The SWAR comparison borrows the high bit of each 16-bit lane.
const MaxCounter = 1 << 15

// Backend names the implementation of FirstExceeding in use.
func Backend() string {
	if buildtags.PureGo {
		return "scalar"
	}
	return "swar"
}

// OnesCount32 returns the number of set bits in w. The Go compiler lowers
// math/bits.OnesCount32 to a POPCNT instruction where the CPU supports it.
func OnesCount32(w uint32) int {
	return bits.OnesCount32(w)
}

// OnesCount8 returns the number of set bits in b.
func OnesCount8(b uint8) int {
	return bits.OnesCount8(b)
}

// FirstExceeding returns the smallest index j such that c[j] > target, or 8
// if there is no such index.
func FirstExceeding(c *Counters, target uint16) int {
	if buildtags.PureGo {
		return firstExceedingScalar(c, target)
	}
	return firstExceedingSWAR(c, target)
}

func firstExceedingScalar(c *Counters, target uint16) int {
	for j := range c {
		if c[j] > target {
			return j
		}
	}
	return len(c)
}

const (
	lanes16 = 0x0001000100010001
	high16  = 0x8000800080008000
)

// firstExceedingSWAR compares four counters at a time. Lane k of lo holds
// c[k] and lane k of hi holds c[4+k]. Setting the high bit of every lane and
// subtracting target+1 from each lane leaves the high bit set exactly in the
// lanes where the counter is >= target+1; no lane borrows from its neighbour
// because every counter and target is below MaxCounter.
func firstExceedingSWAR(c *Counters, target uint16) int {
	lo := uint64(c[0]) | uint64(c[1])<<16 | uint64(c[2])<<32 | uint64(c[3])<<48
	hi := uint64(c[4]) | uint64(c[5])<<16 | uint64(c[6])<<32 | uint64(c[7])<<48
	t := uint64(target+1) * lanes16

	if m := ((lo | high16) - t) & high16; m != 0 {
		return bits.TrailingZeros64(m) >> 4
	}
	if m := ((hi | high16) - t) & high16; m != 0 {
		return 4 + bits.TrailingZeros64(m)>>4
	}
	return len(c)
}
