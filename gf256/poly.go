// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial with coefficients in GF(256).
// coef[0] holds the coefficient of the highest-degree term.
type Poly struct {
	f    *Field
	coef []byte
}

// NewPoly returns the polynomial with the given coefficients,
// highest-degree term first.
func NewPoly(f *Field, coef []byte) *Poly {
	if len(coef) == 0 {
		panic("gf256: empty polynomial")
	}
	// strip leading zero terms
	n := 0
	for n < len(coef)-1 && coef[n] == 0 {
		n++
	}
	return &Poly{f, coef[n:]}
}

func monomial(f *Field, degree int, coef byte) *Poly {
	if coef == 0 {
		return NewPoly(f, []byte{0})
	}
	c := make([]byte, degree+1)
	c[0] = coef
	return &Poly{f, c}
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return p.coef[0] == 0 }

// Degree returns the degree of p.
func (p *Poly) Degree() int { return len(p.coef) - 1 }

// Coefficient returns the coefficient of the term of the given degree.
func (p *Poly) Coefficient(degree int) byte {
	return p.coef[len(p.coef)-1-degree]
}

// EvaluateAt returns the value of p at x.
func (p *Poly) EvaluateAt(x byte) byte {
	if x == 0 {
		return p.Coefficient(0)
	}
	f := p.f
	r := p.coef[0]
	for _, c := range p.coef[1:] {
		r = f.Mul(r, x) ^ c
	}
	return r
}

// Add returns the sum of p and q.
func (p *Poly) Add(q *Poly) *Poly {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	small, large := p.coef, q.coef
	if len(small) > len(large) {
		small, large = large, small
	}
	sum := make([]byte, len(large))
	diff := len(large) - len(small)
	copy(sum, large[:diff])
	for i, c := range small {
		sum[diff+i] = c ^ large[diff+i]
	}
	return NewPoly(p.f, sum)
}

// Mul returns the product of p and q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return NewPoly(p.f, []byte{0})
	}
	f := p.f
	prod := make([]byte, len(p.coef)+len(q.coef)-1)
	for i, a := range p.coef {
		for j, b := range q.coef {
			prod[i+j] ^= f.Mul(a, b)
		}
	}
	return NewPoly(f, prod)
}

// MulScalar returns the product of p and the scalar c.
func (p *Poly) MulScalar(c byte) *Poly {
	if c == 0 {
		return NewPoly(p.f, []byte{0})
	}
	if c == 1 {
		return p
	}
	f := p.f
	prod := make([]byte, len(p.coef))
	for i, a := range p.coef {
		prod[i] = f.Mul(a, c)
	}
	return NewPoly(f, prod)
}

// MulMonomial returns the product of p and coef·x^degree.
func (p *Poly) MulMonomial(degree int, coef byte) *Poly {
	if coef == 0 || p.IsZero() {
		return NewPoly(p.f, []byte{0})
	}
	f := p.f
	prod := make([]byte, len(p.coef)+degree)
	for i, a := range p.coef {
		prod[i] = f.Mul(a, coef)
	}
	return NewPoly(f, prod)
}
