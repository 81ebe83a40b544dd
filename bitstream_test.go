// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrdec

import (
	"bytes"
	"testing"

	"github.com/unixdj/qrdec/coding"
)

// A bitWriter builds test bitstreams, most significant bit first.
type bitWriter struct {
	b    []byte
	nbit int
}

func (w *bitWriter) write(v, n int) {
	for i := n - 1; i >= 0; i-- {
		if w.nbit%8 == 0 {
			w.b = append(w.b, 0)
		}
		if v>>uint(i)&1 != 0 {
			w.b[w.nbit/8] |= 0x80 >> uint(w.nbit%8)
		}
		w.nbit++
	}
}

func (w *bitWriter) bytes() []byte { return w.b }

func decodeStream(t *testing.T, w *bitWriter) (*Result, error) {
	t.Helper()
	return decodeBitStream(w.bytes(), 1, coding.M, "")
}

func TestBitStreamNumeric(t *testing.T) {
	var w bitWriter
	w.write(modeNumeric, 4)
	w.write(8, 10) // count
	w.write(12, 10)
	w.write(345, 10)
	w.write(67, 7)
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "01234567" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestBitStreamNumericRange(t *testing.T) {
	for _, tt := range []struct{ count, value, bits int }{
		{3, 1000, 10},
		{2, 100, 7},
		{1, 10, 4},
	} {
		var w bitWriter
		w.write(modeNumeric, 4)
		w.write(tt.count, 10)
		w.write(tt.value, tt.bits)
		if _, err := decodeStream(t, &w); err != ErrFormat {
			t.Errorf("count %d value %d: %v, want ErrFormat",
				tt.count, tt.value, err)
		}
	}
}

func TestBitStreamAlphanumeric(t *testing.T) {
	var w bitWriter
	w.write(modeAlphanumeric, 4)
	w.write(5, 9) // count
	// "HELLO": H=17 E=14 L=21 L=21 O=24
	w.write(17*45+14, 11)
	w.write(21*45+21, 11)
	w.write(24, 6)
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "HELLO" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestBitStreamFNC1(t *testing.T) {
	// in FNC1 mode "%%" is a percent sign and "%" the GS separator
	for _, tt := range []struct {
		chars []int
		want  string
	}{
		{[]int{10, 38, 38, 11}, "A%B"},       // "A%%B"
		{[]int{10, 38, 11}, "A\x1dB"},        // "A%B"
		{[]int{38, 38, 38}, "%\x1d"},         // "%%%"
		{[]int{10, 11, 12}, "ABC"},           // no escapes
	} {
		var w bitWriter
		w.write(modeFNC1First, 4)
		w.write(modeAlphanumeric, 4)
		w.write(len(tt.chars), 9)
		chars := tt.chars
		for len(chars) > 1 {
			w.write(chars[0]*45+chars[1], 11)
			chars = chars[2:]
		}
		if len(chars) == 1 {
			w.write(chars[0], 6)
		}
		r, err := decodeStream(t, &w)
		if err != nil {
			t.Errorf("%v: %v", tt.chars, err)
			continue
		}
		if r.Text != tt.want {
			t.Errorf("%v: %q, want %q", tt.chars, r.Text, tt.want)
		}
	}
}

func TestBitStreamFNC1Second(t *testing.T) {
	var w bitWriter
	w.write(modeFNC1Second, 4)
	w.write(42, 8) // application indicator
	w.write(modeAlphanumeric, 4)
	w.write(1, 9)
	w.write(38, 6) // "%"
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "\x1d" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestBitStreamByte(t *testing.T) {
	var w bitWriter
	w.write(modeByte, 4)
	w.write(5, 8)
	for _, c := range []byte("hello") {
		w.write(int(c), 8)
	}
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "hello" {
		t.Errorf("text = %q", r.Text)
	}
	if len(r.Segments) != 1 || !bytes.Equal(r.Segments[0], []byte("hello")) {
		t.Errorf("segments = %q", r.Segments)
	}
}

func TestBitStreamByteTruncated(t *testing.T) {
	var w bitWriter
	w.write(modeByte, 4)
	w.write(5, 8)        // promises 5 bytes
	w.write(0x6865, 16)  // delivers 2
	if _, err := decodeStream(t, &w); err != ErrFormat {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestBitStreamKanji(t *testing.T) {
	// あ is 0x82a0 and い 0x82a2 in Shift JIS
	var w bitWriter
	w.write(modeKanji, 4)
	w.write(2, 8)
	w.write(0x120, 13)
	w.write(0x122, 13)
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "あい" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestBitStreamHanzi(t *testing.T) {
	// 啊 is 0xb0a1 in GB2312
	var w bitWriter
	w.write(modeHanzi, 4)
	w.write(gb2312Subset, 4)
	w.write(1, 8)
	w.write(0x3c0, 13)
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "啊" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestBitStreamHanziSubset(t *testing.T) {
	var w bitWriter
	w.write(modeHanzi, 4)
	w.write(7, 4) // unassigned subset
	w.write(1, 8)
	w.write(0x3c0, 13)
	if _, err := decodeStream(t, &w); err != ErrFormat {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestBitStreamECI(t *testing.T) {
	var w bitWriter
	w.write(modeECI, 4)
	w.write(26, 8) // UTF-8
	w.write(modeByte, 4)
	w.write(6, 8)
	for _, c := range []byte("héllo") {
		w.write(int(c), 8)
	}
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "héllo" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestBitStreamECIValue(t *testing.T) {
	// two and three byte ECI values parse, unassigned ones and bad
	// prefixes do not
	var w bitWriter
	w.write(modeECI, 4)
	w.write(0x80, 8) // two byte form
	w.write(26, 8)
	if r, err := decodeStream(t, &w); err != nil || r.Text != "" {
		t.Errorf("two byte ECI: %v", err)
	}

	w = bitWriter{}
	w.write(modeECI, 4)
	w.write(0xc0, 8) // three byte form
	w.write(26, 16)
	if r, err := decodeStream(t, &w); err != nil || r.Text != "" {
		t.Errorf("three byte ECI: %v", err)
	}

	w = bitWriter{}
	w.write(modeECI, 4)
	w.write(0xf0, 8) // invalid prefix
	if _, err := decodeStream(t, &w); err != ErrFormat {
		t.Errorf("bad prefix: %v, want ErrFormat", err)
	}

	w = bitWriter{}
	w.write(modeECI, 4)
	w.write(99, 8) // unassigned
	if _, err := decodeStream(t, &w); err != ErrFormat {
		t.Errorf("unassigned value: %v, want ErrFormat", err)
	}
}

func TestBitStreamStructuredAppend(t *testing.T) {
	var w bitWriter
	w.write(modeStructuredAppend, 4)
	w.write(0x12, 8)
	w.write(0x34, 8)
	w.write(modeNumeric, 4)
	w.write(1, 10)
	w.write(7, 4)
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "7" || r.Sequence != 0x12 || r.Parity != 0x34 {
		t.Errorf("got %q, %d, %d", r.Text, r.Sequence, r.Parity)
	}
}

func TestBitStreamReservedMode(t *testing.T) {
	var w bitWriter
	w.write(0x6, 4) // reserved
	w.write(0, 12)
	if _, err := decodeStream(t, &w); err != ErrFormat {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestBitStreamEmpty(t *testing.T) {
	r, err := decodeBitStream(nil, 1, coding.M, "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "" || r.Sequence != -1 {
		t.Errorf("got %q, %d", r.Text, r.Sequence)
	}
}

func TestBitStreamPadding(t *testing.T) {
	// padding after the terminator is ignored
	var w bitWriter
	w.write(modeNumeric, 4)
	w.write(1, 10)
	w.write(7, 4)
	w.write(modeTerminator, 4)
	w.write(0xec, 8)
	w.write(0x11, 8)
	r, err := decodeStream(t, &w)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "7" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestCountBits(t *testing.T) {
	for _, tt := range []struct {
		mode int
		v    coding.Version
		want byte
	}{
		{modeNumeric, 1, 10},
		{modeNumeric, 10, 12},
		{modeNumeric, 27, 14},
		{modeAlphanumeric, 9, 9},
		{modeAlphanumeric, 26, 11},
		{modeAlphanumeric, 40, 13},
		{modeByte, 1, 8},
		{modeByte, 10, 16},
		{modeKanji, 1, 8},
		{modeKanji, 40, 12},
		{modeHanzi, 10, 10},
	} {
		if got := countLen[tt.mode][tt.v.SizeClass()]; got != tt.want {
			t.Errorf("mode %#x version %v: %d bits, want %d",
				tt.mode, tt.v, got, tt.want)
		}
	}
}
