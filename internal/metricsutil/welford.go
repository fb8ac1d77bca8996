// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metricsutil contains helpers for summarizing repeated measurements.
package metricsutil

import "math"

// Welford maintains a running mean and variance using Welford's online
// algorithm. The zero value is ready to use.
type Welford struct {
	count int64
	mean  float64
	m2    float64
}

// Add incorporates a new sample.
func (w *Welford) Add(x float64) {
	w.count++
	delta := x - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (x - w.mean)
}

// Count returns the number of samples.
func (w *Welford) Count() int64 { return w.count }

// Mean returns the mean of the samples, or 0 if there are none.
func (w *Welford) Mean() float64 { return w.mean }

// Variance returns the sample variance, or 0 with fewer than two samples.
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

// StdDev returns the sample standard deviation.
func (w *Welford) StdDev() float64 {
	return math.Sqrt(w.Variance())
}
