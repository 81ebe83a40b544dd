// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR decoding details.
package coding // import "github.com/unixdj/qrdec/coding"

import (
	"errors"
	"strconv"
)

var (
	// ErrFormat reports a structural violation in the symbol data:
	// bad mode bits, a bitstream underflow, an invalid ECI prefix
	// or an impossible character count.
	ErrFormat = errors.New("qr: invalid symbol data")

	// ErrChecksum reports data too corrupted for error correction.
	ErrChecksum = errors.New("qr: too many errors to correct")

	// ErrNotFound reports that version or format information cannot
	// be inferred from the symbol.
	ErrNotFound = errors.New("qr: version or format information not found")
)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}
