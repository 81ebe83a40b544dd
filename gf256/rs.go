// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "errors"

// ErrCorrupt is returned when a codeword has more errors than the
// error correction bytes can repair.
var ErrCorrupt = errors.New("gf256: cannot correct errors")

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte // generator polynomial, highest-degree term first
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given
// field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	// gen is the product of (x - αⁱ) for i in [0, c).
	gen := []byte{1}
	for i := 0; i < c; i++ {
		next := make([]byte, len(gen)+1)
		ai := f.Exp(i)
		for j, g := range gen {
			next[j] ^= g
			next[j+1] ^= f.Mul(g, ai)
		}
		gen = next
	}
	return &RSEncoder{f, c, gen}
}

// ECC writes to check the error correcting code bytes for data.
// len(check) must equal the number of error correction bytes the
// encoder was created with.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	f := rs.f
	p := make([]byte, len(data)+rs.c)
	copy(p, data)
	// polynomial division by gen; gen[0] == 1
	for i := 0; i < len(data); i++ {
		k := p[i]
		if k == 0 {
			continue
		}
		for j, g := range rs.gen {
			p[i+j] ^= f.Mul(k, g)
		}
	}
	copy(check, p[len(data):])
}

// An RSDecoder implements Reed-Solomon decoding over a given field.
type RSDecoder struct {
	f *Field
}

// NewRSDecoder returns a new Reed-Solomon decoder over the given
// field.
func NewRSDecoder(f *Field) *RSDecoder {
	return &RSDecoder{f}
}

// Decode corrects errors in received in place, given that its last
// necc bytes are error correction bytes, and returns the number of
// bytes corrected.  Up to necc/2 corrupted bytes can be repaired.
// If the codeword cannot be repaired, Decode returns ErrCorrupt and
// received is unchanged.
func (d *RSDecoder) Decode(received []byte, necc int) (int, error) {
	f := d.f
	poly := NewPoly(f, append([]byte(nil), received...))
	synd := make([]byte, necc)
	noError := true
	for i := 0; i < necc; i++ {
		ev := poly.EvaluateAt(f.Exp(i))
		synd[necc-1-i] = ev
		if ev != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}
	sigma, omega, err := d.euclid(monomial(f, necc, 1), NewPoly(f, synd), necc)
	if err != nil {
		return 0, err
	}
	locations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	magnitudes := d.findErrorMagnitudes(omega, locations)
	positions := make([]int, len(locations))
	for i, loc := range locations {
		positions[i] = len(received) - 1 - f.Log(loc)
		if positions[i] < 0 {
			return 0, ErrCorrupt
		}
	}
	for i, position := range positions {
		received[position] ^= magnitudes[i]
	}
	return len(locations), nil
}

// euclid runs the extended Euclidean algorithm on a and b until the
// degree of the remainder drops below r/2, yielding the error locator
// polynomial σ and the error evaluator polynomial ω.
func (d *RSDecoder) euclid(a, b *Poly, r int) (sigma, omega *Poly, err error) {
	f := d.f
	if a.Degree() < b.Degree() {
		a, b = b, a
	}
	rLast, rCur := a, b
	tLast, tCur := NewPoly(f, []byte{0}), NewPoly(f, []byte{1})

	for rCur.Degree() >= r/2 {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = rCur, tCur
		if rLast.IsZero() {
			// division by zero; σ cannot be derived
			return nil, nil, ErrCorrupt
		}
		rCur = rLastLast
		q := NewPoly(f, []byte{0})
		dlt := rLast.Coefficient(rLast.Degree())
		dltInv := f.Inv(dlt)
		for rCur.Degree() >= rLast.Degree() && !rCur.IsZero() {
			diff := rCur.Degree() - rLast.Degree()
			scale := f.Mul(rCur.Coefficient(rCur.Degree()), dltInv)
			q = q.Add(monomial(f, diff, scale))
			rCur = rCur.Add(rLast.MulMonomial(diff, scale))
		}
		tCur = q.Mul(tLast).Add(tLastLast)
		if rCur.Degree() >= rLast.Degree() {
			return nil, nil, ErrCorrupt
		}
	}

	sigmaTildeAtZero := tCur.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrCorrupt
	}
	inv := f.Inv(sigmaTildeAtZero)
	return tCur.MulScalar(inv), rCur.MulScalar(inv), nil
}

// findErrorLocations runs a Chien search over the roots of the error
// locator polynomial.
func (d *RSDecoder) findErrorLocations(sigma *Poly) ([]byte, error) {
	f := d.f
	numErrors := sigma.Degree()
	if numErrors == 1 {
		return []byte{sigma.Coefficient(1)}, nil
	}
	result := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if sigma.EvaluateAt(byte(i)) == 0 {
			result = append(result, f.Inv(byte(i)))
		}
	}
	if len(result) != numErrors {
		return nil, ErrCorrupt
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula at each error location.
func (d *RSDecoder) findErrorMagnitudes(omega *Poly, locations []byte) []byte {
	f := d.f
	result := make([]byte, len(locations))
	for i, loc := range locations {
		xiInv := f.Inv(loc)
		denominator := byte(1)
		for j, lj := range locations {
			if i != j {
				denominator = f.Mul(denominator, 1^f.Mul(lj, xiInv))
			}
		}
		result[i] = f.Mul(omega.EvaluateAt(xiInv), f.Inv(denominator))
	}
	return result
}
