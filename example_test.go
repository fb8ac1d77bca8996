// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec_test

import (
	"fmt"
	"log"

	"github.com/cockroachdb/bitvec"
)

func Example() {
	bv, err := bitvec.New(bitvec.BitString("10110001"), nil)
	if err != nil {
		log.Fatal(err)
	}
	r, _ := bv.Rank(4)
	s, _ := bv.Select(3)
	fmt.Printf("%d of %d bits set\n", bv.Ones(), bv.Len())
	fmt.Printf("Rank(4) = %d\n", r)
	fmt.Printf("Select(3) = %d\n", s)
	if _, err := bv.Rank(8); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 4 of 8 bits set
	// Rank(4) = 3
	// Select(3) = 7
	// bitvec: rank position 8 not in [0, 8): bitvec: index out of range
}
