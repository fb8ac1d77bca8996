// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// Stats describes the shape and memory usage of a BitVector.
type Stats struct {
	// Len is the number of bits and Ones the number of set bits.
	Len  int
	Ones int
	// Words is the number of 32-bit storage words.
	Words int

	// Superblocks is the number of select superblocks, of which
	// SparseSuperblocks store explicit positions and DenseSuperblocks store
	// trees.
	Superblocks       int
	SparseSuperblocks int
	DenseSuperblocks  int
	// TreeNodes is the total number of nodes over all trees.
	TreeNodes     int
	MaxTreeHeight int

	BitsBytes   int
	RankBytes   int
	SelectBytes int
	TableBytes  int
}

// TotalBytes returns the memory footprint.
func (s Stats) TotalBytes() int {
	return s.BitsBytes + s.RankBytes + s.SelectBytes + s.TableBytes
}

// OverheadBitsPerBit returns the number of index bits (rank, select and
// table) per stored bit.
func (s Stats) OverheadBitsPerBit() float64 {
	if s.Len == 0 {
		return 0
	}
	return float64(8*(s.RankBytes+s.SelectBytes+s.TableBytes)) / float64(s.Len)
}

func (s Stats) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Stats) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s bits (%s set) in %s words; ",
		crhumanize.Count(int64(s.Len), crhumanize.Compact),
		crhumanize.Count(int64(s.Ones), crhumanize.Compact),
		crhumanize.Count(int64(s.Words), crhumanize.Compact))
	w.Printf("%d superblocks (%d sparse, %d dense, %d nodes, max height %d); ",
		redact.Safe(s.Superblocks), redact.Safe(s.SparseSuperblocks), redact.Safe(s.DenseSuperblocks),
		redact.Safe(s.TreeNodes), redact.Safe(s.MaxTreeHeight))
	w.Printf("footprint %s (bits %s, rank %s, select %s, table %s)",
		humanizeBytes(s.TotalBytes()), humanizeBytes(s.BitsBytes), humanizeBytes(s.RankBytes),
		humanizeBytes(s.SelectBytes), humanizeBytes(s.TableBytes))
}

func humanizeBytes(n int) redact.SafeString {
	return redact.SafeString(crhumanize.Bytes(int64(n), crhumanize.Compact, crhumanize.OmitI))
}
