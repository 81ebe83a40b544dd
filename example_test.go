// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrdec_test

import (
	"fmt"
	"log"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/unixdj/qrdec"
	"github.com/unixdj/qrdec/coding"
)

func ExampleDecode() {
	// Generate a symbol and sample it into a matrix, stripping the
	// quiet zone.  A detector sampling a camera image would produce
	// the same thing.
	q, err := qrcode.New("HELLO WORLD", qrcode.Medium)
	if err != nil {
		log.Fatalln(err)
	}
	bm := q.Bitmap()
	border := 0
	for blank(bm[border]) {
		border++
	}
	size := len(bm) - 2*border
	m := coding.NewMatrix(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if bm[y+border][x+border] {
				m.Set(x, y)
			}
		}
	}

	r, err := qrdec.Decode(m, nil)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%s (version %v, level %v)\n", r.Text, r.Version, r.Level)
	// Output: HELLO WORLD (version 1, level M)
}

func blank(row []bool) bool {
	for _, black := range row {
		if black {
			return false
		}
	}
	return true
}
