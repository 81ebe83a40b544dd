// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// FormatInfo holds the decoded format information of a symbol:
// the error correction level and the data mask index.
type FormatInfo struct {
	Level Level
	Mask  byte
}

// DecodeFormat decodes the two 15-bit copies of the BCH(15,5)
// protected format information.  A copy is accepted if it is within
// Hamming distance 3 of a valid codeword; the first copy is
// preferred.  If neither copy qualifies, DecodeFormat returns
// ErrChecksum.
func DecodeFormat(bits1, bits2 uint32) (FormatInfo, error) {
	for _, b := range [2]uint32{bits1, bits2} {
		if fi, dist := closestFormat(b); dist <= 3 {
			return fi, nil
		}
	}
	return FormatInfo{}, ErrChecksum
}

// closestFormat returns the format information whose codeword has the
// smallest Hamming distance to b, and the distance.
func closestFormat(b uint32) (FormatInfo, int) {
	best := FormatInfo{}
	bestDist := 16
	for l := L; l <= H; l++ {
		for mask, code := range ftab[l] {
			if dist := bits.OnesCount32(b ^ uint32(code)); dist < bestDist {
				best = FormatInfo{Level: l, Mask: byte(mask)}
				bestDist = dist
			}
		}
	}
	return best, bestDist
}
