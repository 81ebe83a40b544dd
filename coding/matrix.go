// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Matrix is a square grid of modules ("pixels") sampled from a
// symbol.  1 is black, 0 is white.
type Matrix struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of modules on a side
	Stride int    // number of bytes per row
}

// NewMatrix returns an all-white Matrix with the given size.
func NewMatrix(size int) *Matrix {
	stride := (size + 7) >> 3
	return &Matrix{
		Bitmap: make([]byte, size*stride),
		Size:   size,
		Stride: stride,
	}
}

// Get reports whether the module at (x,y) is black.
// Modules outside the matrix are white.
func (m *Matrix) Get(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.Bitmap[y*m.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Set makes the module at (x,y) black.
func (m *Matrix) Set(x, y int) {
	m.Bitmap[y*m.Stride+x/8] |= 1 << uint(7&^x)
}

// Flip inverts the module at (x,y).
func (m *Matrix) Flip(x, y int) {
	m.Bitmap[y*m.Stride+x/8] ^= 1 << uint(7&^x)
}

// Clone returns a copy of m with its own bitmap.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		Bitmap: append([]byte(nil), m.Bitmap...),
		Size:   m.Size,
		Stride: m.Stride,
	}
}

// Mirror transposes m across its main diagonal in place.
func (m *Matrix) Mirror() {
	for y := 1; y < m.Size; y++ {
		for x := 0; x < y; x++ {
			if m.Get(x, y) != m.Get(y, x) {
				m.Flip(x, y)
				m.Flip(y, x)
			}
		}
	}
}

// setRegion makes the w×h region with upper left corner (x,y) black,
// clipped to the matrix.
func (m *Matrix) setRegion(x, y, w, h int) {
	for j := max(y, 0); j < y+h && j < m.Size; j++ {
		for i := max(x, 0); i < x+w && i < m.Size; i++ {
			m.Set(i, j)
		}
	}
}
