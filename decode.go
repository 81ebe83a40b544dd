// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrdec

import (
	"github.com/unixdj/qrdec/coding"
	"github.com/unixdj/qrdec/gf256"
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

var rsdec = gf256.NewRSDecoder(Field)

// Decode decodes the symbol sampled in m.  The matrix is not
// modified.  If the symbol cannot be decoded as is, a mirror reading
// is attempted; on its success the result has Mirrored set.
// opts may be nil.
func Decode(m *coding.Matrix, opts *Options) (*Result, error) {
	var hint string
	if opts != nil {
		hint = opts.Charset
	}
	bits := m.Clone()

	version, fi, err := parseVersionInfo(bits, false)
	if err == nil {
		coding.Unmask(bits, version, fi.Mask)
		r, derr := doDecode(bits, version, fi, hint)
		if derr == nil {
			return r, nil
		}
		err = derr
		// revert for the mirrored attempt
		coding.Unmask(bits, version, fi.Mask)
	}

	version, fi, merr := parseVersionInfo(bits, true)
	if merr != nil {
		if err == nil {
			err = merr
		}
		return nil, err
	}
	// Version and format information decoded successfully when read
	// mirrored: the symbol is likely mirrored, retry transposed.
	bits.Mirror()
	coding.Unmask(bits, version, fi.Mask)
	r, merr := doDecode(bits, version, fi, hint)
	if merr != nil {
		return nil, merr
	}
	r.Mirrored = true
	return r, nil
}

// parseVersionInfo reads the version and format information of the
// symbol, optionally with mirrored coordinates.
func parseVersionInfo(m *coding.Matrix, mirrored bool) (coding.Version, coding.FormatInfo, error) {
	version, err := coding.ReadVersion(m, mirrored)
	if err != nil {
		return 0, coding.FormatInfo{}, err
	}
	fi, err := coding.ReadFormat(m, mirrored)
	if err != nil {
		return 0, coding.FormatInfo{}, err
	}
	return version, fi, nil
}

// doDecode decodes an unmasked matrix: read codewords, split into
// blocks, correct errors and decode the data bitstream.
func doDecode(m *coding.Matrix, version coding.Version, fi coding.FormatInfo, hint string) (*Result, error) {
	codewords, err := coding.ReadCodewords(m, version)
	if err != nil {
		return nil, err
	}
	blocks, err := coding.SplitDataBlocks(codewords, version, fi.Level)
	if err != nil {
		return nil, err
	}
	total := 0
	for i := range blocks {
		total += blocks[i].NumDataCodewords
	}
	data := make([]byte, 0, total)
	corrected := 0
	for i := range blocks {
		n, err := correctErrors(blocks[i].Codewords,
			blocks[i].NumDataCodewords)
		if err != nil {
			return nil, err
		}
		corrected += n
		data = append(data, blocks[i].Codewords[:blocks[i].NumDataCodewords]...)
	}
	r, err := decodeBitStream(data, version, fi.Level, hint)
	if err != nil {
		return nil, err
	}
	r.Version = version
	r.Mask = fi.Mask
	r.Corrected = corrected
	return r, nil
}

// correctErrors repairs one block of codewords in place and returns
// the number of codewords corrected.  Only errors in the first
// numDataCodewords bytes matter to the caller; the error correction
// tail is discarded afterwards.
func correctErrors(codewords []byte, numDataCodewords int) (int, error) {
	n, err := rsdec.Decode(codewords, len(codewords)-numDataCodewords)
	if err != nil {
		return 0, coding.ErrChecksum
	}
	return n, nil
}
