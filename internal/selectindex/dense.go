// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package selectindex

import (
	"fmt"
	"io"

	"github.com/cockroachdb/bitvec/internal/aligned"
	"github.com/cockroachdb/bitvec/internal/bitstore"
	"github.com/cockroachdb/bitvec/internal/broadword"
	"github.com/cockroachdb/bitvec/internal/invariants"
	"github.com/cockroachdb/bitvec/internal/selecttable"
	"github.com/cockroachdb/errors"
)

// fanout is the number of children of every internal node of a dense tree.
const fanout = 8

// denseTree locates the i-th set bit of a superblock whose set bits are close
// together. Its leaves are the words spanned by the superblock, weighted by
// their population counts. Every internal node stores the prefix sums of the
// weights of its 8 children, so that a single FirstExceeding comparison picks
// the child containing the target.
//
// Nodes are laid out level by level starting at the root. Within a level, the
// children of node n are nodes 8n through 8n+7 of the next level, and the
// children of a node on the last level are the words firstWord+8n through
// firstWord+8n+7. A node with fewer than 8 children repeats its total in the
// unused counters, which never exceed a valid target.
//
// For example, a superblock spanning 10 words with population counts
//
//	3 0 1 4 2 2 0 5 | 1 6
//
// has height 2:
//
//	level 0:  [17 24 24 24 24 24 24 24]
//	level 1:  [3 3 4 8 10 12 12 17] [1 7 7 7 7 7 7 7]
type denseTree struct {
	// firstWord is the index of the word holding the first set bit of the
	// superblock.
	firstWord int
	// lead is the number of set bits in firstWord that precede the superblock
	// and belong to the previous one. Every lookup is offset by lead since the
	// leaf weights count whole words.
	lead uint16
	// height is the number of internal levels. A superblock contained in a
	// single word has height 0 and no nodes.
	height int
	// levels holds the index of the first node of every level.
	levels []int32
	// nodes holds fanout counters per node, aligned to a cache line.
	nodes []uint16
}

// treeHeight returns the smallest h such that fanout^h >= words.
func treeHeight(words int) int {
	h := 0
	for capacity := 1; capacity < words; capacity *= fanout {
		h++
	}
	return h
}

// buildDenseTree builds the tree for the set bits at positions, all of which
// must be set in words.
func buildDenseTree(words bitstore.Words, positions []uint64) (denseTree, error) {
	first, last := int(positions[0]), int(positions[len(positions)-1])
	fw, lw := first>>bitstore.WordShift, last>>bitstore.WordShift
	t := denseTree{
		firstWord: fw,
		height:    treeHeight(lw - fw + 1),
	}
	if off := first & bitstore.WordMask; off > 0 {
		t.lead = uint16(broadword.OnesCount32(words.At(fw) >> (bitstore.WordBits - off)))
	}
	if t.height == 0 {
		return t, nil
	}

	// Size every level, from the leaves up to the root, which is always a
	// single node.
	sizes := make([]int, t.height)
	for l, below := t.height-1, lw-fw+1; l >= 0; l-- {
		sizes[l] = (below + fanout - 1) / fanout
		below = sizes[l]
	}
	numNodes := 0
	levels, err := aligned.Slice[int32](t.height)
	if err != nil {
		return denseTree{}, err
	}
	for l := range sizes {
		levels[l] = int32(numNodes)
		numNodes += sizes[l]
	}
	nodes, err := aligned.Slice[uint16](numNodes * fanout)
	if err != nil {
		return denseTree{}, err
	}
	t.levels, t.nodes = levels, nodes

	// Fill the levels bottom-up. weights holds the totals of the level below.
	weights := make([]int, lw-fw+1)
	for i := range weights {
		weights[i] = broadword.OnesCount32(words.At(fw + i))
	}
	for l := t.height - 1; l >= 0; l-- {
		totals := make([]int, sizes[l])
		for n := range totals {
			c := t.node(l, n)
			sum := 0
			for j := 0; j < fanout; j++ {
				if k := n*fanout + j; k < len(weights) {
					sum += weights[k]
				}
				if sum >= broadword.MaxCounter {
					return denseTree{}, errors.AssertionFailedf(
						"selectindex: dense superblock at word %d overflows node counters", fw)
				}
				c[j] = uint16(sum)
			}
			totals[n] = sum
		}
		weights = totals
	}
	return t, nil
}

// node returns the counters of the n-th node of level l.
func (t *denseTree) node(l, n int) *broadword.Counters {
	k := (int(t.levels[l]) + n) * fanout
	return (*broadword.Counters)(t.nodes[k : k+fanout])
}

// selectLocal returns the position of the i-th set bit of the superblock.
func (t *denseTree) selectLocal(words bitstore.Words, i int) int {
	v := i + int(t.lead)
	n := 0
	for l := 0; l < t.height; l++ {
		c := t.node(l, n)
		j := broadword.FirstExceeding(c, uint16(v))
		invariants.CheckBounds(j, fanout)
		if j > 0 {
			v = invariants.SafeSub(v, int(c[j-1]))
		}
		n = n*fanout + j
	}
	wi := t.firstWord + n
	return wi<<bitstore.WordShift + selecttable.InWord(words.At(wi), v)
}

func (t *denseTree) numNodes() int {
	return len(t.nodes) / fanout
}

func (t *denseTree) bytes() int {
	return cap(t.nodes)*2 + cap(t.levels)*4
}

func (t *denseTree) describe(w io.Writer) {
	fmt.Fprintf(w, "dense: first word %d, lead %d, height %d\n", t.firstWord, t.lead, t.height)
	for l := 0; l < t.height; l++ {
		end := t.numNodes()
		if l+1 < t.height {
			end = int(t.levels[l+1])
		}
		fmt.Fprintf(w, "  level %d:", l)
		for n := 0; n < end-int(t.levels[l]); n++ {
			fmt.Fprintf(w, " %v", *t.node(l, n))
		}
		fmt.Fprintln(w)
	}
}
