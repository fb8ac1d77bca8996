// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitstore

import (
	"testing"

	"github.com/cockroachdb/bitvec/internal/aligned"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type bools []bool

func (b bools) Len() int      { return len(b) }
func (b bools) At(i int) bool { return b[i] }

type positions struct {
	n   int
	set map[int]bool
}

func (p positions) Len() int      { return p.n }
func (p positions) At(i int) bool { return p.set[i] }

func TestPack(t *testing.T) {
	w, err := Pack(bools{true, false, true, true, false, false, false, true})
	require.NoError(t, err)
	require.Equal(t, 8, w.Len())
	require.Equal(t, 1, w.NumWords())
	require.Equal(t, uint32(0xb1000000), w.At(0))
	require.Equal(t, "10110001", w.String())
	for x, want := range []bool{true, false, true, true, false, false, false, true} {
		require.Equal(t, want, w.Bit(x))
	}
	require.True(t, aligned.IsAligned(w.Slice()))
	require.Equal(t, 4, w.Bytes())
}

func TestPackWordBoundaries(t *testing.T) {
	w, err := Pack(positions{n: 70, set: map[int]bool{0: true, 31: true, 32: true, 63: true, 69: true}})
	require.NoError(t, err)
	require.Equal(t, 3, w.NumWords())
	require.Equal(t, uint32(0x80000001), w.At(0))
	require.Equal(t, uint32(0x80000001), w.At(1))
	require.Equal(t, uint32(0x04000000), w.At(2))
	require.Equal(t, 12, w.Bytes())
	require.Equal(t,
		"10000000000000000000000000000001 10000000000000000000000000000001 000001",
		w.String())
}

func TestPackEquivalentSequences(t *testing.T) {
	b := make(bools, 1000)
	p := positions{n: 1000, set: map[int]bool{}}
	for i := 0; i < 1000; i += 7 {
		b[i] = true
		p.set[i] = true
	}
	w1, err := Pack(b)
	require.NoError(t, err)
	w2, err := Pack(p)
	require.NoError(t, err)
	require.Equal(t, w1.Slice(), w2.Slice())
}

func TestPackEmpty(t *testing.T) {
	_, err := Pack(bools{})
	require.True(t, errors.Is(err, ErrEmpty))
}

func TestWordCount(t *testing.T) {
	require.Equal(t, 0, WordCount(0))
	require.Equal(t, 1, WordCount(1))
	require.Equal(t, 1, WordCount(32))
	require.Equal(t, 2, WordCount(33))
}
