// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eci maps Extended Channel Interpretation assignment
// numbers and charset names to text encodings.
package eci // import "github.com/unixdj/qrdec/eci"

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// encodings maps ECI assignment numbers to encodings, per the AIM
// ECI specification.  ISO-8859-11 is not carried by x/text; its
// superset Windows-874 stands in for it.
var encodings = map[int]encoding.Encoding{
	0:   charmap.CodePage437,
	1:   charmap.ISO8859_1,
	2:   charmap.CodePage437,
	3:   charmap.ISO8859_1,
	4:   charmap.ISO8859_2,
	5:   charmap.ISO8859_3,
	6:   charmap.ISO8859_4,
	7:   charmap.ISO8859_5,
	8:   charmap.ISO8859_6,
	9:   charmap.ISO8859_7,
	10:  charmap.ISO8859_8,
	11:  charmap.ISO8859_9,
	12:  charmap.ISO8859_10,
	13:  charmap.Windows874,
	15:  charmap.ISO8859_13,
	16:  charmap.ISO8859_14,
	17:  charmap.ISO8859_15,
	18:  charmap.ISO8859_16,
	20:  japanese.ShiftJIS,
	21:  charmap.Windows1250,
	22:  charmap.Windows1251,
	23:  charmap.Windows1252,
	24:  charmap.Windows1256,
	25:  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	26:  unicode.UTF8,
	27:  charmap.ISO8859_1, // US-ASCII
	28:  traditionalchinese.Big5,
	29:  simplifiedchinese.GB18030,
	30:  korean.EUCKR,
	170: charmap.ISO8859_1, // US-ASCII
}

// FromValue returns the encoding assigned the given ECI number.
func FromValue(value int) (encoding.Encoding, bool) {
	e, ok := encodings[value]
	return e, ok
}

// FromName returns the encoding with the given IANA charset name.
func FromName(name string) (encoding.Encoding, bool) {
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		return nil, false
	}
	return e, true
}

// Decode converts b from the given encoding to a string.
// A nil encoding denotes ISO-8859-1.
func Decode(b []byte, e encoding.Encoding) (string, error) {
	if e == nil {
		e = charmap.ISO8859_1
	}
	s, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}
