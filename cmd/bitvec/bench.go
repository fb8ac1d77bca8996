// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/bitvec"
	"github.com/cockroachdb/bitvec/internal/metricsutil"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

const (
	minLatency = 1 * time.Nanosecond
	maxLatency = 10 * time.Millisecond
)

var benchConfig struct {
	queries int
	builds  int
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time construction and Rank/Select queries",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(
		&benchConfig.queries, "queries", "q", 1_000_000, "number of queries of each kind")
	benchCmd.Flags().IntVar(
		&benchConfig.builds, "builds", 5, "number of times to build the vector")
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

type benchResult struct {
	name string
	hist *hdrhistogram.Histogram
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchConfig.builds < 1 {
		return errors.Newf("--builds must be positive, got %d", benchConfig.builds)
	}
	bits := input.bits(input.density, input.seed)

	var buildTime metricsutil.Welford
	var bv *bitvec.BitVector
	for i := 0; i < benchConfig.builds; i++ {
		start := crtime.NowMono()
		var err error
		if bv, err = bitvec.New(bits, input.options()); err != nil {
			return err
		}
		buildTime.Add(float64(start.Elapsed()))
	}

	rng := rand.New(rand.NewSource(input.seed + 1))
	rank := benchResult{name: "rank", hist: newHistogram()}
	for i := 0; i < benchConfig.queries; i++ {
		x := rng.Intn(bv.Len())
		start := crtime.NowMono()
		if _, err := bv.Rank(x); err != nil {
			return err
		}
		_ = rank.hist.RecordValue(start.Elapsed().Nanoseconds())
	}
	sel := benchResult{name: "select", hist: newHistogram()}
	for i := 0; i < benchConfig.queries && bv.Ones() > 0; i++ {
		j := rng.Intn(bv.Ones())
		start := crtime.NowMono()
		if _, err := bv.Select(j); err != nil {
			return err
		}
		_ = sel.hist.RecordValue(start.Elapsed().Nanoseconds())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "build: %s ± %s over %d runs\n",
		time.Duration(buildTime.Mean()), time.Duration(buildTime.StdDev()), buildTime.Count())
	tbl := tablewriter.NewWriter(out)
	tbl.SetHeader([]string{"Op", "Count", "Mean", "p50", "p99", "p99.9", "Max"})
	for _, r := range []benchResult{rank, sel} {
		h := r.hist
		tbl.Append([]string{
			r.name,
			fmt.Sprintf("%d", h.TotalCount()),
			time.Duration(h.Mean()).String(),
			time.Duration(h.ValueAtQuantile(50)).String(),
			time.Duration(h.ValueAtQuantile(99)).String(),
			time.Duration(h.ValueAtQuantile(99.9)).String(),
			time.Duration(h.Max()).String(),
		})
	}
	tbl.Render()
	s := bv.Stats()
	fmt.Fprintf(out, "%s\noverhead: %.3f bits per bit\n", s, s.OverheadBitsPerBit())
	return nil
}
