// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"testing"
)

var field = NewField(0x11d, 2)

func TestFieldTables(t *testing.T) {
	if got := field.Exp(0); got != 1 {
		t.Errorf("Exp(0) = %d, want 1", got)
	}
	if got := field.Exp(1); got != 2 {
		t.Errorf("Exp(1) = %d, want 2", got)
	}
	// α⁸ = α⁴+α³+α²+1 for polynomial 0x11d
	if got := field.Exp(8); got != 0x1d {
		t.Errorf("Exp(8) = %#x, want 0x1d", got)
	}
	for x := 1; x < 256; x++ {
		b := byte(x)
		if got := field.Exp(field.Log(b)); got != b {
			t.Fatalf("Exp(Log(%#x)) = %#x", b, got)
		}
		if got := field.Mul(b, field.Inv(b)); got != 1 {
			t.Fatalf("%#x * %#x⁻¹ = %#x, want 1", b, b, got)
		}
	}
}

func TestFieldMul(t *testing.T) {
	for _, tt := range []struct{ x, y, want byte }{
		{0, 0, 0},
		{0, 5, 0},
		{1, 1, 1},
		{2, 2, 4},
		{0x80, 2, 0x1d},
		{3, 7, 9}, // (x+1)(x²+x+1) = x³+1
	} {
		if got := field.Mul(tt.x, tt.y); got != tt.want {
			t.Errorf("Mul(%#x, %#x) = %#x, want %#x",
				tt.x, tt.y, got, tt.want)
		}
		if got := field.Mul(tt.y, tt.x); got != tt.want {
			t.Errorf("Mul(%#x, %#x) = %#x, want %#x",
				tt.y, tt.x, got, tt.want)
		}
	}
}

func TestPolyEvaluate(t *testing.T) {
	// x² + 1
	p := NewPoly(field, []byte{1, 0, 1})
	if got := p.EvaluateAt(0); got != 1 {
		t.Errorf("p(0) = %#x, want 1", got)
	}
	if got := p.EvaluateAt(1); got != 0 {
		t.Errorf("p(1) = %#x, want 0", got)
	}
	if got := p.EvaluateAt(2); got != 5 {
		t.Errorf("p(2) = %#x, want 5", got)
	}
	if d := p.Degree(); d != 2 {
		t.Errorf("degree = %d, want 2", d)
	}
	// leading zeros are stripped
	if d := NewPoly(field, []byte{0, 0, 3, 1}).Degree(); d != 1 {
		t.Errorf("degree = %d, want 1", d)
	}
}

func TestPolyMul(t *testing.T) {
	// (x+1)(x+2) = x² + 3x + 2
	p := NewPoly(field, []byte{1, 1}).Mul(NewPoly(field, []byte{1, 2}))
	if !bytes.Equal(p.coef, []byte{1, 3, 2}) {
		t.Errorf("product = %v, want [1 3 2]", p.coef)
	}
}

// testWord returns a valid codeword of n bytes with necc error
// correction bytes.
func testWord(n, necc int) []byte {
	data := make([]byte, n-necc)
	for i := range data {
		data[i] = byte(i*i + 7*i + 3)
	}
	rs := NewRSEncoder(field, necc)
	word := make([]byte, n)
	copy(word, data)
	rs.ECC(data, word[len(data):])
	return word
}

func TestRSDecodeClean(t *testing.T) {
	d := NewRSDecoder(field)
	for _, tt := range []struct{ n, necc int }{
		{26, 7}, {26, 10}, {26, 17}, {44, 16}, {70, 18},
	} {
		word := testWord(tt.n, tt.necc)
		orig := append([]byte(nil), word...)
		n, err := d.Decode(word, tt.necc)
		if err != nil || n != 0 {
			t.Errorf("(%d,%d): Decode = %d, %v, want 0, nil",
				tt.n, tt.necc, n, err)
		}
		if !bytes.Equal(word, orig) {
			t.Errorf("(%d,%d): clean codeword modified",
				tt.n, tt.necc)
		}
	}
}

func TestRSDecodeErrors(t *testing.T) {
	d := NewRSDecoder(field)
	for _, tt := range []struct{ n, necc int }{
		{26, 7}, {26, 10}, {26, 17}, {44, 16}, {70, 18},
	} {
		orig := testWord(tt.n, tt.necc)
		for errs := 1; errs <= tt.necc/2; errs++ {
			word := append([]byte(nil), orig...)
			for i := 0; i < errs; i++ {
				word[(i*7+1)%len(word)] ^= byte(i + 1)
			}
			n, err := d.Decode(word, tt.necc)
			if err != nil {
				t.Errorf("(%d,%d): %d errors: %v",
					tt.n, tt.necc, errs, err)
				continue
			}
			if n != errs {
				t.Errorf("(%d,%d): corrected %d of %d",
					tt.n, tt.necc, n, errs)
			}
			if !bytes.Equal(word, orig) {
				t.Errorf("(%d,%d): %d errors: bad correction",
					tt.n, tt.necc, errs)
			}
		}
	}
}

func TestRSDecodeTooManyErrors(t *testing.T) {
	d := NewRSDecoder(field)
	for _, tt := range []struct{ n, necc int }{
		{26, 10}, {44, 16}, {70, 18},
	} {
		word := testWord(tt.n, tt.necc)
		orig := append([]byte(nil), word...)
		for i := 0; i <= tt.necc/2; i++ {
			word[(i*3+1)%len(word)] ^= byte(0x55 + i)
		}
		// the decoder may not silently produce a wrong codeword
		if _, err := d.Decode(word, tt.necc); err == nil &&
			!bytes.Equal(word, orig) {
			t.Errorf("(%d,%d): corrupted codeword accepted",
				tt.n, tt.necc)
		}
	}
}
