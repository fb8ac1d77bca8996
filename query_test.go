// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/cockroachdb/bitvec/internal/invariants"
	"github.com/cockroachdb/bitvec/internal/naive"
	"github.com/cockroachdb/bitvec/internal/testutils"
	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/metamorphic"
	"golang.org/x/sync/errgroup"
)

// queryRunner issues random queries against a vector and its oracle.
type queryRunner struct {
	rng    *rand.Rand
	bv     *BitVector
	oracle *naive.BitVector
}

func (r *queryRunner) rank() error {
	x := r.rng.Intn(r.bv.Len())
	got, err := r.bv.Rank(x)
	if err != nil {
		return err
	}
	if want := r.oracle.Rank(x); got != want {
		return errors.Newf("Rank(%d) = %d; want %d", x, got, want)
	}
	return nil
}

func (r *queryRunner) selectOne() error {
	if r.bv.Ones() == 0 {
		return nil
	}
	i := r.rng.Intn(r.bv.Ones())
	got, err := r.bv.Select(i)
	if err != nil {
		return err
	}
	if want := r.oracle.Select(i); got != want {
		return errors.Newf("Select(%d) = %d; want %d", i, got, want)
	}
	return nil
}

func (r *queryRunner) get() error {
	x := r.rng.Intn(r.bv.Len())
	got, err := r.bv.Get(x)
	if err != nil {
		return err
	}
	want := r.oracle.Rank(x) > 0 && (x == 0 || r.oracle.Rank(x) > r.oracle.Rank(x-1))
	if got != want {
		return errors.Newf("Get(%d) = %t; want %t", x, got, want)
	}
	return nil
}

// outOfRange issues a query with an invalid argument, which must fail without
// affecting later queries.
func (r *queryRunner) outOfRange() error {
	var err error
	switch r.rng.Intn(3) {
	case 0:
		_, err = r.bv.Rank(r.bv.Len() + r.rng.Intn(100))
	case 1:
		_, err = r.bv.Select(-1 - r.rng.Intn(100))
	case 2:
		_, err = r.bv.Get(-1)
	}
	if !errors.Is(err, ErrIndexOutOfRange) {
		return errors.Newf("expected out of range error, got %v", err)
	}
	return nil
}

func (r *queryRunner) deck() func() func() error {
	return metamorphic.Weighted[func() error]{
		{Item: r.rank, Weight: 10},
		{Item: r.selectOne, Weight: 10},
		{Item: r.get, Weight: 3},
		{Item: r.outOfRange, Weight: 1},
	}.RandomDeck(r.rng)
}

func TestRandomQueries(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, p := range []float64{0.0001, 0.02, 0.5, 0.99} {
		t.Run(fmt.Sprintf("density=%g", p), func(t *testing.T) {
			bits := make(Bools, 1+rng.Intn(300_000))
			for i := range bits {
				bits[i] = rng.Float64() < p
			}
			r := &queryRunner{
				rng:    rng,
				bv:     testutils.CheckErr(New(bits, &Options{OnesPerSuperblock: 1 + rng.Intn(5000), SparseSpan: 1 + rng.Intn(1<<16)})),
				oracle: testutils.CheckErr(naive.New(bits)),
			}
			t.Log(r.bv.Stats())
			next := r.deck()
			for i := 0; i < 10_000; i++ {
				if err := next()(); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

func TestConcurrentQueries(t *testing.T) {
	defer leaktest.AfterTest(t)()

	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	bits := make(Bools, 200_000)
	for i := range bits {
		bits[i] = rng.Intn(5) == 0
	}
	bv := testutils.CheckErr(New(bits, &Options{OnesPerSuperblock: 512, SparseSpan: 2048}))
	oracle := testutils.CheckErr(naive.New(bits))

	queries := 20_000
	if invariants.RaceEnabled {
		queries = 2_000
	}
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		r := &queryRunner{rng: rand.New(rand.NewSource(seed + int64(w))), bv: bv, oracle: oracle}
		g.Go(func() error {
			next := r.deck()
			for i := 0; i < queries; i++ {
				if err := next()(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
