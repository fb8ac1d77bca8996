// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/cockroachdb/bitvec"
	"github.com/cockroachdb/bitvec/internal/broadword"
	"github.com/cockroachdb/bitvec/internal/metricsutil"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

var overheadConfig struct {
	steps  int
	runs   int
	height int
}

var overheadCmd = &cobra.Command{
	Use:   "overhead",
	Short: "report index overhead across densities",
	Long: `
Build vectors over a logarithmic sweep of densities and report the number of
index bits per stored bit, along with the mix of sparse and dense select
superblocks.
`,
	Args: cobra.NoArgs,
	RunE: runOverhead,
}

func init() {
	overheadCmd.Flags().IntVar(
		&overheadConfig.steps, "steps", 12, "number of densities in the sweep")
	overheadCmd.Flags().IntVar(
		&overheadConfig.runs, "runs", 3, "number of random inputs per density")
	overheadCmd.Flags().IntVar(
		&overheadConfig.height, "height", 10, "height of the plot")
}

// densities returns steps densities spaced logarithmically from 2^-steps up
// to 1/2.
func densities(steps int) []float64 {
	d := make([]float64, steps)
	for i := range d {
		d[i] = math.Ldexp(1, i-steps)
	}
	return d
}

func runOverhead(cmd *cobra.Command, args []string) error {
	if overheadConfig.steps < 1 || overheadConfig.runs < 1 {
		return errors.Newf("--steps and --runs must be positive")
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "popcount: x86 %t, arm64 %t; first-exceeding: %s\n",
		cpu.X86.HasPOPCNT, cpu.ARM64.HasASIMD, broadword.Backend())

	tbl := tablewriter.NewWriter(out)
	tbl.SetHeader([]string{"Density", "Ones", "Sparse", "Dense", "Footprint", "Overhead (bits/bit)"})
	var means []float64
	for _, p := range densities(overheadConfig.steps) {
		var overhead metricsutil.Welford
		var s bitvec.Stats
		for r := 0; r < overheadConfig.runs; r++ {
			bv, err := bitvec.New(input.bits(p, input.seed+uint64(r)), input.options())
			if err != nil {
				return err
			}
			s = bv.Stats()
			overhead.Add(s.OverheadBitsPerBit())
		}
		means = append(means, overhead.Mean())
		tbl.Append([]string{
			fmt.Sprintf("%.5f", p),
			string(crhumanize.Count(int64(s.Ones), crhumanize.Compact)),
			fmt.Sprintf("%d", s.SparseSuperblocks),
			fmt.Sprintf("%d", s.DenseSuperblocks),
			string(crhumanize.Bytes(int64(s.TotalBytes()), crhumanize.Compact, crhumanize.OmitI)),
			fmt.Sprintf("%.3f ± %.3f", overhead.Mean(), overhead.StdDev()),
		})
	}
	tbl.Render()
	fmt.Fprintln(out, asciigraph.Plot(means,
		asciigraph.Height(overheadConfig.height),
		asciigraph.Caption("overhead (bits/bit) by density step")))
	return nil
}
