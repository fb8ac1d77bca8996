// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command bitvec benchmarks and verifies succinct bit vectors built from
// random input.
package main

import (
	"log"
	"os"

	"github.com/cockroachdb/bitvec"
	"github.com/cockroachdb/bitvec/internal/testutils"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

// inputConfig describes the random input shared by every command.
type inputConfig struct {
	size              int
	density           float64
	seed              uint64
	onesPerSuperblock int
	sparseSpan        int
	verbose           bool
}

var input inputConfig

func (c *inputConfig) bits(density float64, seed uint64) bitvec.Bools {
	rng := rand.New(rand.NewSource(seed))
	return bitvec.Bools(testutils.RandomBits(rng, c.size, density))
}

func (c *inputConfig) options() *bitvec.Options {
	opts := &bitvec.Options{
		OnesPerSuperblock: c.onesPerSuperblock,
		SparseSpan:        c.sparseSpan,
	}
	if c.verbose {
		opts.Logger = bitvec.DefaultLogger{}
	}
	return opts
}

var rootCmd = &cobra.Command{
	Use:   "bitvec [command] (flags)",
	Short: "succinct bit vector benchmarking/verification tool",
	Long:  ``,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(benchCmd, verifyCmd, overheadCmd)

	for _, cmd := range []*cobra.Command{benchCmd, verifyCmd, overheadCmd} {
		cmd.Flags().IntVarP(
			&input.size, "size", "n", 1_000_000, "number of bits")
		cmd.Flags().Uint64Var(
			&input.seed, "seed", 1, "random seed for the input bits")
		cmd.Flags().IntVar(
			&input.onesPerSuperblock, "ones-per-superblock", 0,
			"set bits per select superblock (0 selects the default)")
		cmd.Flags().IntVar(
			&input.sparseSpan, "sparse-span", 0,
			"span above which a superblock stores explicit positions (0 selects the default)")
		cmd.Flags().BoolVarP(
			&input.verbose, "verbose", "v", false, "log construction summaries")
	}
	for _, cmd := range []*cobra.Command{benchCmd, verifyCmd} {
		cmd.Flags().Float64VarP(
			&input.density, "density", "p", 0.5, "probability that a bit is set")
	}
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
