// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !purego

package buildtags

// PureGo indicates if the purego tag is used. Under purego, broadword
// primitives fall back to their scalar loops.
const PureGo = false
