// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eci

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Shift JIS byte classes.  Bit fields:
//
//	1 = valid 1st byte of multibyte character  0x81-0x9f, 0xe0-0xfc
//	2 = valid 2nd byte of multibyte character  0x40-0x7e, 0x80-0xfc
var sjistbl = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x00
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x10
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x20
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0x40
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0x50
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0x60
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, // 0x70
	2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0x80
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0x90
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xa0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xb0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xc0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xd0
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xe0
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 0, 0, 0, // 0xf0
}

// isShiftJIS reports whether b has valid Shift JIS structure with at
// least one double-byte character starting with a byte in the
// 0x81-0x9f range, which is rarely seen in Latin text.
func isShiftJIS(b []byte) bool {
	kanji := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c < 0x80: // ASCII
		case sjistbl[c]&1 != 0: // multibyte lead
			if i+1 >= len(b) || sjistbl[b[i+1]]&2 == 0 {
				return false
			}
			if c < 0xa0 {
				kanji = true
			}
			i++
		case 0xa1 <= c && c <= 0xdf: // half-width katakana
		default:
			return false
		}
	}
	return kanji
}

// Guess deterministically classifies b as UTF-8, Shift JIS or
// ISO-8859-1 by structural validity.  Pure ASCII and anything
// unclassifiable decode as ISO-8859-1.
func Guess(b []byte) encoding.Encoding {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	switch {
	case ascii:
		return charmap.ISO8859_1
	case utf8.Valid(b):
		return unicode.UTF8
	case isShiftJIS(b):
		return japanese.ShiftJIS
	}
	return charmap.ISO8859_1
}
