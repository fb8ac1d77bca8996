// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package selecttable

import (
	"math/bits"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTable(t *testing.T) {
	tbl := Get()
	require.Same(t, tbl, Get())

	// 10110001
	require.EqualValues(t, 0, tbl[0][0xb1])
	require.EqualValues(t, 2, tbl[1][0xb1])
	require.EqualValues(t, 3, tbl[2][0xb1])
	require.EqualValues(t, 7, tbl[3][0xb1])
	require.EqualValues(t, NotPresent, tbl[4][0xb1])

	for k := 0; k < 8; k++ {
		require.EqualValues(t, NotPresent, tbl[k][0])
		require.EqualValues(t, k, tbl[k][0xff])
	}
	for b := 0; b < 256; b++ {
		n := bits.OnesCount8(uint8(b))
		for k := 0; k < 8; k++ {
			if k >= n {
				require.EqualValues(t, NotPresent, tbl[k][b], "k=%d b=%08b", k, b)
				continue
			}
			off := tbl[k][b]
			require.NotZero(t, b&(0x80>>off), "k=%d b=%08b", k, b)
			require.Equal(t, k, bits.OnesCount8(uint8(b)>>(8-off)), "k=%d b=%08b", k, b)
		}
	}
	require.Equal(t, 2048, Bytes())
}

func naiveInWord(w uint32, i int) int {
	for j := 0; j < 32; j++ {
		if w&(1<<(31-j)) != 0 {
			if i == 0 {
				return j
			}
			i--
		}
	}
	return -1
}

func TestInWord(t *testing.T) {
	// 10110001 00000000 00000000 00000001
	w := uint32(0xb1000001)
	for i, want := range []int{0, 2, 3, 7, 31} {
		require.Equal(t, want, InWord(w, i))
	}
	for i := 0; i < 32; i++ {
		require.Equal(t, i, InWord(0xffffffff, i))
	}
	require.Panics(t, func() { InWord(w, 5) })

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))
	for n := 0; n < 10000; n++ {
		w := rng.Uint32()
		for i := 0; i < bits.OnesCount32(w); i++ {
			require.Equal(t, naiveInWord(w, i), InWord(w, i), "w=%032b i=%d", w, i)
		}
	}
}
