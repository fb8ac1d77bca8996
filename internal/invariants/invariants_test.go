// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package invariants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeSub(t *testing.T) {
	require.Equal(t, 3, SafeSub(5, 2))
	require.Equal(t, uint16(0), SafeSub[uint16](7, 7))
	if Enabled {
		require.Panics(t, func() { SafeSub[uint64](1, 2) })
	} else {
		require.Equal(t, uint64(0), SafeSub[uint64](1, 2))
	}
}

func TestCheckBounds(t *testing.T) {
	CheckBounds(0, 1)
	CheckBounds(uint32(9), 10)
	if Enabled {
		require.Panics(t, func() { CheckBounds(10, 10) })
		require.Panics(t, func() { CheckBounds(-1, 10) })
	} else {
		CheckBounds(10, 10)
	}
}
