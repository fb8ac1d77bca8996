// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package aligned

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// CacheLineSize is the alignment, in bytes, of slices returned by Slice.
const CacheLineSize = 64

// ErrAllocationFailure is returned when a buffer cannot be allocated, either
// because the requested size is not representable or because the runtime
// refused the allocation.
var ErrAllocationFailure = errors.New("aligned: allocation failure")

// Slice allocates a new slice of n integers, ensuring the address of the
// beginning of the slice is aligned to CacheLineSize. Go only guarantees the
// natural alignment of T for a simple make([]T, n); the select tree packs 8
// counters per node and wants a node to never straddle a cache line.
//
// The returned slice has len == cap == n so that appends always reallocate
// rather than writing into the alignment padding.
func Slice[T constraints.Integer](n int) (_ []T, err error) {
	if n == 0 {
		return nil, nil
	}
	size := int(unsafe.Sizeof(T(0)))
	pad := CacheLineSize/size - 1
	if n < 0 || n > (math.MaxInt/size)-pad {
		return nil, errors.Wrapf(ErrAllocationFailure, "cannot allocate %d elements of %d bytes", n, size)
	}

	defer func() {
		// make panics (rather than throwing) when the length is out of range
		// for the platform; surface that as an allocation failure.
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrAllocationFailure, "allocating %d elements of %d bytes: %v", n, size, r)
		}
	}()
	buf := make([]T, n+pad)
	off := 0
	if rem := uintptr(unsafe.Pointer(&buf[0])) % CacheLineSize; rem != 0 {
		off = int(CacheLineSize-rem) / size
	}
	s := buf[off : off+n : off+n]

	// Verify alignment.
	if ptr := uintptr(unsafe.Pointer(&s[0])); ptr%CacheLineSize != 0 {
		return nil, errors.Wrapf(ErrAllocationFailure, "allocated slice not %d-aligned: pointer %p", CacheLineSize, &s[0])
	}
	return s, nil
}

// IsAligned returns true if the first element of s is aligned to
// CacheLineSize. Empty slices are trivially aligned.
func IsAligned[T constraints.Integer](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%CacheLineSize == 0
}
