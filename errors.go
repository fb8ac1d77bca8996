// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec

import (
	"github.com/cockroachdb/bitvec/internal/aligned"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidInput is returned by New when the sequence is empty or the
	// options are invalid.
	ErrInvalidInput = errors.New("bitvec: invalid input")

	// ErrAllocationFailure is returned by New when a backing buffer cannot be
	// allocated.
	ErrAllocationFailure = aligned.ErrAllocationFailure

	// ErrIndexOutOfRange is returned by queries whose argument lies outside
	// the vector.
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
)
