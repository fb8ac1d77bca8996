// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package selectindex

import (
	"fmt"
	"io"

	"github.com/cockroachdb/bitvec/internal/aligned"
)

// sparseArray stores the absolute positions of the set bits of a superblock
// whose set bits are spread over a span too large for a dense tree to pay
// off. Select is a single array lookup.
type sparseArray struct {
	positions []uint64
}

func buildSparseArray(positions []uint64) (sparseArray, error) {
	owned, err := aligned.Slice[uint64](len(positions))
	if err != nil {
		return sparseArray{}, err
	}
	copy(owned, positions)
	return sparseArray{positions: owned}, nil
}

func (a *sparseArray) selectLocal(i int) int {
	return int(a.positions[i])
}

func (a *sparseArray) bytes() int {
	return cap(a.positions) * 8
}

func (a *sparseArray) describe(w io.Writer) {
	fmt.Fprintf(w, "sparse: %d positions [%d, %d]\n",
		len(a.positions), a.positions[0], a.positions[len(a.positions)-1])
}
