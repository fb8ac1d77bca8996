// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils contains helpers shared by tests and tools.
package testutils

import "golang.org/x/exp/rand"

// RandomBits returns n bits, each set independently with probability p.
func RandomBits(rng *rand.Rand, n int, p float64) []bool {
	b := make([]bool, n)
	for i := range b {
		b[i] = rng.Float64() < p
	}
	return b
}

// ClusteredBits returns n bits whose set bits come in runs of up to maxRun
// separated by gaps of up to maxGap clear bits. Long gaps produce superblocks
// that span many words.
func ClusteredBits(rng *rand.Rand, n, maxRun, maxGap int) []bool {
	b := make([]bool, n)
	for i := 0; i < n; {
		i += rng.Intn(maxGap + 1)
		for run := 1 + rng.Intn(maxRun); run > 0 && i < n; run-- {
			b[i] = true
			i++
		}
	}
	return b
}
