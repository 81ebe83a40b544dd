// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eci

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestFromValue(t *testing.T) {
	for _, tt := range []struct {
		value int
		in    []byte
		want  string
	}{
		{3, []byte{0x68, 0xe9, 0x6c}, "hél"},
		{20, []byte{0x82, 0xa0}, "あ"},
		{26, []byte("héllo"), "héllo"},
		{29, []byte{0xb0, 0xa1}, "啊"},
	} {
		e, ok := FromValue(tt.value)
		if !ok {
			t.Errorf("FromValue(%d) unknown", tt.value)
			continue
		}
		got, err := Decode(tt.in, e)
		if err != nil || got != tt.want {
			t.Errorf("ECI %d: %q, %v, want %q",
				tt.value, got, err, tt.want)
		}
	}
	if _, ok := FromValue(14); ok {
		t.Error("FromValue(14) is assigned")
	}
	if _, ok := FromValue(900); ok {
		t.Error("FromValue(900) is assigned")
	}
}

func TestFromName(t *testing.T) {
	for _, name := range []string{"ISO-8859-1", "UTF-8", "Shift_JIS"} {
		if _, ok := FromName(name); !ok {
			t.Errorf("FromName(%q) unknown", name)
		}
	}
	if _, ok := FromName("no-such-charset"); ok {
		t.Error("FromName accepted garbage")
	}
}

func TestDecodeNil(t *testing.T) {
	// nil encoding decodes as ISO-8859-1
	got, err := Decode([]byte{0x68, 0xe9}, nil)
	if err != nil || got != "hé" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestGuess(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   []byte
		want interface{}
	}{
		{"ascii", []byte("Hello, World!"), charmap.ISO8859_1},
		{"utf8", []byte("héllo wörld"), unicode.UTF8},
		{"sjis", []byte{0x82, 0xa0, 0x82, 0xa2}, japanese.ShiftJIS},
		{"latin1", []byte{0x68, 0xe9, 0x6c, 0x6c, 0x6f},
			charmap.ISO8859_1},
		{"empty", nil, charmap.ISO8859_1},
	} {
		if got := Guess(tt.in); got != tt.want {
			t.Errorf("%s: guessed %v", tt.name, got)
		}
	}
}

func TestGuessDeterministic(t *testing.T) {
	b := []byte{0x82, 0xa0, 0x41, 0x82, 0xa2}
	first := Guess(b)
	for i := 0; i < 3; i++ {
		if Guess(b) != first {
			t.Fatal("Guess is not deterministic")
		}
	}
}
