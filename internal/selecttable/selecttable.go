// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package selecttable resolves the position of the i-th set bit within a
// 32-bit word using a byte-granular lookup table.
//
// Bits are numbered from the most significant bit: bit 0 of a byte is its
// high bit (0x80) and bit 0 of a word is the high bit of its high byte. This
// matches the packing order of the bit vector's storage.
package selecttable

import (
	"sync"

	"github.com/cockroachdb/bitvec/internal/broadword"
	"github.com/cockroachdb/errors"
)

// NotPresent is the table entry for an occurrence beyond the number of set
// bits in a byte.
const NotPresent = 8

// Table maps (k, b) to the offset from the high bit of the k-th set bit of
// the byte b, or NotPresent.
type Table [8][256]uint8

var table struct {
	once sync.Once
	t    Table
}

// Get returns the process-wide table, building it on first use. The returned
// table must not be modified.
func Get() *Table {
	table.once.Do(func() {
		build(&table.t)
	})
	return &table.t
}

func build(t *Table) {
	for k := range t {
		for b := range t[k] {
			t[k][b] = NotPresent
		}
	}
	for b := 0; b < 256; b++ {
		k := 0
		for j := 0; j < 8; j++ {
			if b&(0x80>>j) != 0 {
				t[k][b] = uint8(j)
				k++
			}
		}
	}
}

// Bytes returns the memory consumed by the table.
func Bytes() int {
	return len(Table{}) * len(Table{}[0])
}

// InWord returns the offset from the high bit of the i-th (0-indexed) set
// bit of w. The caller must ensure i < popcount(w).
func InWord(w uint32, i int) int {
	t := Get()
	for j := 0; j < 4; j++ {
		b := uint8(w >> (24 - 8*j))
		n := broadword.OnesCount8(b)
		if i < n {
			return 8*j + int(t[i][b])
		}
		i -= n
	}
	panic(errors.AssertionFailedf("selecttable: word %032b has fewer than %d set bits", w, i+1))
}
