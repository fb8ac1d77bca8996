// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rankindex

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/bitvec/internal/bitstore"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type bools []bool

func (b bools) Len() int      { return len(b) }
func (b bools) At(i int) bool { return b[i] }

func TestRankFixed(t *testing.T) {
	words, err := bitstore.Pack(bools{true, false, true, true, false, false, false, true})
	require.NoError(t, err)
	idx, err := Build(words)
	require.NoError(t, err)
	require.Equal(t, 4, idx.Ones())
	for x, want := range []int{1, 1, 2, 3, 3, 3, 3, 4} {
		require.Equal(t, want, idx.Rank(words, x), "Rank(%d)", x)
	}
	// One level-1 entry and one level-2 entry.
	require.Equal(t, 8+2, idx.Bytes())
}

func TestRankAllOnes(t *testing.T) {
	// Three full blocks and a partial one exercise the level-1 boundaries and
	// the largest level-2 values.
	n := 3*BlockBits + 100
	b := make(bools, n)
	for i := range b {
		b[i] = true
	}
	words, err := bitstore.Pack(b)
	require.NoError(t, err)
	idx, err := Build(words)
	require.NoError(t, err)
	require.Equal(t, n, idx.Ones())
	for x := 0; x < n; x++ {
		require.Equal(t, x+1, idx.Rank(words, x))
	}
}

func TestRankRandom(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, p := range []float64{0.001, 0.1, 0.5, 0.99} {
		t.Run(fmt.Sprintf("p=%05f", p), func(t *testing.T) {
			n := 1 + rng.Intn(5*BlockBits)
			b := make(bools, n)
			for i := range b {
				b[i] = rng.Float64() < p
			}
			words, err := bitstore.Pack(b)
			require.NoError(t, err)
			idx, err := Build(words)
			require.NoError(t, err)

			count := 0
			for x := 0; x < n; x++ {
				if b[x] {
					count++
				}
				if got := idx.Rank(words, x); got != count {
					t.Fatalf("Rank(%d) = %d; want %d", x, got, count)
				}
			}
			require.Equal(t, count, idx.Ones())
		})
	}
}
