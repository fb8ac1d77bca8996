// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec

import (
	"github.com/cockroachdb/bitvec/internal/selectindex"
	"github.com/cockroachdb/errors"
)

// Options holds the optional parameters for New. The zero value, and a nil
// *Options, select the defaults.
type Options struct {
	// Logger receives one summary line per constructed vector. Nothing is
	// logged when it is nil.
	Logger Logger

	// OnesPerSuperblock is the number of set bits grouped into each select
	// superblock. The default is 4096; the maximum is 16384.
	OnesPerSuperblock int

	// SparseSpan is the largest range of positions a superblock may span and
	// still be indexed by a tree over its words. Superblocks that span more
	// store their positions explicitly. The default is 1<<24.
	SparseSpan int
}

// EnsureDefaults ensures that default values for all options are set if a
// valid value was not already specified.
func (o *Options) EnsureDefaults() {
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
	if o.OnesPerSuperblock == 0 {
		o.OnesPerSuperblock = selectindex.DefaultOnesPerSuperblock
	}
	if o.SparseSpan == 0 {
		o.SparseSpan = selectindex.DefaultSparseSpan
	}
}

// Validate verifies that the options are mutually consistent. It presumes
// EnsureDefaults has been called.
func (o *Options) Validate() error {
	if err := o.selectConfig().Validate(); err != nil {
		return errors.Mark(errors.Wrap(err, "bitvec: invalid options"), ErrInvalidInput)
	}
	return nil
}

func (o *Options) selectConfig() selectindex.Config {
	return selectindex.Config{
		OnesPerSuperblock: o.OnesPerSuperblock,
		SparseSpan:        o.SparseSpan,
	}
}
