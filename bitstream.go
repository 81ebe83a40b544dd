// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrdec

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/unixdj/qrdec/coding"
	"github.com/unixdj/qrdec/eci"
)

// Mode indicators.  See ISO 18004:2006, 6.4.1 Table 2.
const (
	modeTerminator       = 0x0
	modeNumeric          = 0x1
	modeAlphanumeric     = 0x2
	modeStructuredAppend = 0x3
	modeByte             = 0x4
	modeFNC1First        = 0x5
	modeECI              = 0x7
	modeKanji            = 0x8
	modeFNC1Second       = 0x9
	modeHanzi            = 0xd
)

// countLen lists the lengths of the character count field in the
// three QR version size classes, indexed by mode indicator.
var countLen = [16][3]byte{
	modeNumeric:      {10, 12, 14},
	modeAlphanumeric: {9, 11, 13},
	modeByte:         {8, 16, 16},
	modeKanji:        {8, 10, 12},
	modeHanzi:        {8, 10, 12},
}

// readCount reads the character count field of a segment of the
// given mode.
func readCount(bits *coding.BitSource, mode int, v coding.Version) (int, error) {
	return bits.ReadBits(int(countLen[mode][v.SizeClass()]))
}

// See ISO 18004:2006, 6.4.4 Table 5.
const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

const gb2312Subset = 1

// decodeBitStream decodes the corrected data codewords back into
// text.  A symbol can hold multiple segments in different modes.
// See ISO 18004:2006, 6.4.3 - 6.4.7.
func decodeBitStream(data []byte, v coding.Version, l coding.Level, hint string) (*Result, error) {
	bits := coding.NewBitSource(data)
	var text strings.Builder
	var segments [][]byte
	sequence, parity := -1, -1
	var charset encoding.Encoding // nil until set by ECI
	fnc1 := false

	for {
		mode := modeTerminator
		if bits.Available() >= 4 {
			// mode is encoded by 4 bits
			mode, _ = bits.ReadBits(4)
		}
		if mode == modeTerminator {
			break
		}
		switch mode {
		case modeFNC1First:
			fnc1 = true
		case modeFNC1Second:
			fnc1 = true
			// application indicator
			if _, err := bits.ReadBits(8); err != nil {
				return nil, err
			}
		case modeStructuredAppend:
			if bits.Available() < 16 {
				return nil, ErrFormat
			}
			// Symbol sequence and parity are reported in the
			// result; the sequence is not reassembled here.
			// If several such headers occur, the last wins.
			sequence, _ = bits.ReadBits(8)
			parity, _ = bits.ReadBits(8)
		case modeECI:
			value, err := parseECIValue(bits)
			if err != nil {
				return nil, err
			}
			enc, ok := eci.FromValue(value)
			if !ok {
				return nil, ErrFormat
			}
			charset = enc
		case modeHanzi:
			// A subset indicator follows the mode indicator.
			subset, err := bits.ReadBits(4)
			if err != nil {
				return nil, err
			}
			count, err := readCount(bits, mode, v)
			if err != nil {
				return nil, err
			}
			if subset != gb2312Subset {
				return nil, ErrFormat
			}
			if err = decodeHanzi(bits, count, &text); err != nil {
				return nil, err
			}
		case modeNumeric, modeAlphanumeric, modeByte, modeKanji:
			count, err := readCount(bits, mode, v)
			if err != nil {
				return nil, err
			}
			switch mode {
			case modeNumeric:
				err = decodeNumeric(bits, count, &text)
			case modeAlphanumeric:
				err = decodeAlphanumeric(bits, count, fnc1, &text)
			case modeByte:
				err = decodeByte(bits, count, charset, hint,
					&text, &segments)
			case modeKanji:
				err = decodeKanji(bits, count, &text)
			}
			if err != nil {
				return nil, err
			}
		default:
			return nil, ErrFormat
		}
	}

	return &Result{
		RawBytes: data,
		NumBits:  8 * len(data),
		Text:     text.String(),
		Segments: segments,
		Level:    l,
		Sequence: sequence,
		Parity:   parity,
	}, nil
}

// parseECIValue reads an ECI assignment number encoded in one to
// three bytes.
func parseECIValue(bits *coding.BitSource) (int, error) {
	first, err := bits.ReadBits(8)
	if err != nil {
		return 0, err
	}
	switch {
	case first&0x80 == 0:
		return first & 0x7f, nil
	case first&0xc0 == 0x80:
		second, err := bits.ReadBits(8)
		if err != nil {
			return 0, err
		}
		return first&0x3f<<8 | second, nil
	case first&0xe0 == 0xc0:
		rest, err := bits.ReadBits(16)
		if err != nil {
			return 0, err
		}
		return first&0x1f<<16 | rest, nil
	}
	return 0, ErrFormat
}

// decodeNumeric decodes a numeric mode segment: three digits in 10
// bits, a trailing pair in 7, a trailing single digit in 4.
func decodeNumeric(bits *coding.BitSource, count int, text *strings.Builder) error {
	for count >= 3 {
		three, err := bits.ReadBits(10)
		if err != nil || three >= 1000 {
			return ErrFormat
		}
		text.WriteByte('0' + byte(three/100))
		text.WriteByte('0' + byte(three/10%10))
		text.WriteByte('0' + byte(three%10))
		count -= 3
	}
	if count == 2 {
		two, err := bits.ReadBits(7)
		if err != nil || two >= 100 {
			return ErrFormat
		}
		text.WriteByte('0' + byte(two/10))
		text.WriteByte('0' + byte(two%10))
	} else if count == 1 {
		one, err := bits.ReadBits(4)
		if err != nil || one >= 10 {
			return ErrFormat
		}
		text.WriteByte('0' + byte(one))
	}
	return nil
}

// decodeAlphanumeric decodes an alphanumeric mode segment: two
// characters in 11 bits, a trailing single one in 6.  In FNC1 mode
// "%%" denotes a percent sign and a lone "%" the GS separator.
// See ISO 18004:2006, 6.4.8.1, 6.4.8.2.
func decodeAlphanumeric(bits *coding.BitSource, count int, fnc1 bool, text *strings.Builder) error {
	buf := make([]byte, 0, count)
	for count > 1 {
		two, err := bits.ReadBits(11)
		if err != nil || two/45 >= 45 {
			return ErrFormat
		}
		buf = append(buf, alphanumericChars[two/45],
			alphanumericChars[two%45])
		count -= 2
	}
	if count == 1 {
		one, err := bits.ReadBits(6)
		if err != nil || one >= 45 {
			return ErrFormat
		}
		buf = append(buf, alphanumericChars[one])
	}
	if fnc1 {
		out := buf[:0]
		for i := 0; i < len(buf); i++ {
			if buf[i] != '%' {
				out = append(out, buf[i])
			} else if i+1 < len(buf) && buf[i+1] == '%' {
				out = append(out, '%')
				i++
			} else {
				out = append(out, 0x1d)
			}
		}
		buf = out
	}
	text.Write(buf)
	return nil
}

// decodeByte decodes a byte mode segment.  The character encoding is
// the one designated by a preceding ECI segment if any, else the one
// hinted by the caller, else guessed from the contents.
func decodeByte(bits *coding.BitSource, count int, charset encoding.Encoding, hint string, text *strings.Builder, segments *[][]byte) error {
	if 8*count > bits.Available() {
		return ErrFormat
	}
	buf := make([]byte, count)
	for i := range buf {
		b, _ := bits.ReadBits(8)
		buf[i] = byte(b)
	}
	if charset == nil {
		// The specification does not say which encoding to assume
		// without an ECI designator; both ISO-8859-1 and Shift JIS
		// are seen in the wild.
		if hint != "" {
			charset, _ = eci.FromName(hint)
		}
		if charset == nil {
			charset = eci.Guess(buf)
		}
	}
	s, err := eci.Decode(buf, charset)
	if err != nil {
		return ErrFormat
	}
	text.WriteString(s)
	*segments = append(*segments, buf)
	return nil
}

// decodeKanji decodes a kanji mode segment, 13 bits per character,
// into the Shift JIS ranges 0x8140-0x9ffc and 0xe040-0xebbf.
func decodeKanji(bits *coding.BitSource, count int, text *strings.Builder) error {
	if count*13 > bits.Available() {
		return ErrFormat
	}
	buf := make([]byte, 0, 2*count)
	for ; count > 0; count-- {
		w, _ := bits.ReadBits(13)
		assembled := w/0xc0<<8 | w%0xc0
		if assembled < 0x1f00 {
			assembled += 0x8140
		} else {
			assembled += 0xc140
		}
		buf = append(buf, byte(assembled>>8), byte(assembled))
	}
	s, err := eci.Decode(buf, japanese.ShiftJIS)
	if err != nil {
		return ErrFormat
	}
	text.WriteString(s)
	return nil
}

// decodeHanzi decodes a hanzi mode segment, 13 bits per character,
// into the GB2312 ranges 0xa1a1-0xaafe and 0xb0a1-0xfafe.
// See specification GBT 18284-2000.
func decodeHanzi(bits *coding.BitSource, count int, text *strings.Builder) error {
	if count*13 > bits.Available() {
		return ErrFormat
	}
	buf := make([]byte, 0, 2*count)
	for ; count > 0; count-- {
		w, _ := bits.ReadBits(13)
		assembled := w/0x60<<8 | w%0x60
		if assembled < 0x3bf {
			assembled += 0xa1a1
		} else {
			assembled += 0xa6a1
		}
		buf = append(buf, byte(assembled>>8), byte(assembled))
	}
	s, err := eci.Decode(buf, simplifiedchinese.GBK)
	if err != nil {
		return ErrFormat
	}
	text.WriteString(s)
	return nil
}
