// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrdec decodes QR codes from sampled module matrices.

The input is a coding.Matrix holding one black-and-white module per
grid cell, as produced by a detector after locating, de-skewing and
thresholding a symbol in an image.  Decode recovers the payload:
it parses the format and version information, removes the data mask,
reads and de-interleaves the codewords, corrects errors with
Reed-Solomon coding over GF(256), and decodes the segmented
bitstream.  Symbols mirrored across the main diagonal are detected
and decoded transparently.
*/
package qrdec // import "github.com/unixdj/qrdec"

import (
	"github.com/unixdj/qrdec/coding"
)

// Errors returned by Decode.
var (
	ErrFormat   = coding.ErrFormat
	ErrChecksum = coding.ErrChecksum
	ErrNotFound = coding.ErrNotFound
)

// Options configures decoding.
type Options struct {
	// Charset names the character encoding assumed for byte mode
	// segments lacking an ECI designator.  If empty, the encoding
	// is guessed from the segment contents.
	Charset string
}

// A Result holds the payload of a decoded symbol and its metadata.
type Result struct {
	RawBytes []byte   // corrected data codewords, before segment decoding
	NumBits  int      // number of valid bits in RawBytes
	Text     string   // decoded payload
	Segments [][]byte // raw contents of byte mode segments, in order

	Version   coding.Version // symbol version
	Level     coding.Level   // error correction level
	Mask      byte           // data mask index
	Mirrored  bool           // symbol was mirrored across the main diagonal
	Corrected int            // codewords repaired by error correction

	// Structured append position of this symbol, or -1 if absent.
	// The payload of a multi-symbol sequence is not reassembled.
	Sequence int
	Parity   int
}
