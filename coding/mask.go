// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Data mask predicates over module coordinates, i being the row and
// j the column.  A module is inverted where its mask predicate holds.
// See ISO 18004:2006, 6.8.1 Table 10.
var masks = [8]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+(i*j)%3)%2 == 0 },
}

// Unmask inverts the data modules of m selected by the given data
// mask.  Function modules are left untouched.  Applying the same mask
// twice restores the original matrix.
func Unmask(m *Matrix, v Version, mask byte) {
	fm := v.functionMap()
	pred := masks[mask&7]
	dim := m.Size
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if pred(i, j) && !fm.Get(j, i) {
				m.Flip(j, i)
			}
		}
	}
}
