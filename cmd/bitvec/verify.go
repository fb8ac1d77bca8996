// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/bitvec"
	"github.com/cockroachdb/bitvec/internal/naive"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var verifyConfig struct {
	workers int
	chunk   int
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check every Rank and Select against a naive implementation",
	Long: `
Build a vector from random bits together with a naive implementation that
stores every answer, then compare the results of all Rank and Select queries.
The command fails on the first mismatch.
`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVarP(
		&verifyConfig.workers, "workers", "w", runtime.GOMAXPROCS(0), "number of concurrent workers")
	verifyCmd.Flags().IntVar(
		&verifyConfig.chunk, "chunk", 1<<16, "number of queries per unit of work")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyConfig.workers < 1 || verifyConfig.chunk < 1 {
		return errors.Newf("--workers and --chunk must be positive")
	}
	bits := input.bits(input.density, input.seed)
	bv, err := bitvec.New(bits, input.options())
	if err != nil {
		return err
	}
	oracle, err := naive.New(bits)
	if err != nil {
		return err
	}
	if err := verify(bv, oracle, verifyConfig.workers, verifyConfig.chunk); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d ranks and %d selects verified\n%s\n",
		bv.Len(), bv.Ones(), bv.Stats())
	return nil
}

// verify compares every query of bv and oracle, splitting the work into
// chunks processed by up to workers goroutines.
func verify(bv *bitvec.BitVector, oracle *naive.BitVector, workers, chunk int) error {
	if bv.Len() != oracle.Len() || bv.Ones() != oracle.Ones() {
		return errors.Newf("shape mismatch: %d/%d bits, %d/%d ones",
			bv.Len(), oracle.Len(), bv.Ones(), oracle.Ones())
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < bv.Len(); lo += chunk {
		hi := min(lo+chunk, bv.Len())
		g.Go(func() error {
			for x := lo; x < hi; x++ {
				got, err := bv.Rank(x)
				if err != nil {
					return err
				}
				if want := oracle.Rank(x); got != want {
					return errors.Newf("Rank(%d) = %d; want %d", x, got, want)
				}
			}
			return nil
		})
	}
	for lo := 0; lo < bv.Ones(); lo += chunk {
		hi := min(lo+chunk, bv.Ones())
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				got, err := bv.Select(i)
				if err != nil {
					return err
				}
				if want := oracle.Select(i); got != want {
					return errors.Newf("Select(%d) = %d; want %d", i, got, want)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
