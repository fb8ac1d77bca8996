// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package metricsutil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestWelford(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    []float64
		mean     float64
		variance float64
	}{
		{name: "empty"},
		{name: "one", input: []float64{42}, mean: 42},
		{name: "1..5", input: []float64{1, 2, 3, 4, 5}, mean: 3, variance: 2.5},
		{name: "constant", input: []float64{7, 7, 7, 7}, mean: 7},
		{
			name:     "mixed",
			input:    []float64{1, 1, 1, 3, 5, 5, 5, 10, 12, 12, 12, 12},
			mean:     6.58 + 0.01/3,
			variance: 22.08 + 0.01/3,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var w Welford
			for _, x := range tc.input {
				w.Add(x)
			}
			require.Equal(t, int64(len(tc.input)), w.Count())
			require.InDelta(t, tc.mean, w.Mean(), 1e-5)
			require.InDelta(t, tc.variance, w.Variance(), 1e-5)
			require.InDelta(t, math.Sqrt(tc.variance), w.StdDev(), 1e-5)
		})
	}
}

func TestWelfordTwoPass(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	xs := make([]float64, 1000)
	var w Welford
	var sum float64
	for i := range xs {
		xs[i] = rng.NormFloat64()*10 + 100
		sum += xs[i]
		w.Add(xs[i])
	}
	mean := sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	require.InDelta(t, mean, w.Mean(), 1e-9)
	require.InDelta(t, ss/float64(len(xs)-1), w.Variance(), 1e-6)
}
