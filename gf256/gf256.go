// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over GF(256), the finite field
// used by QR code Reed-Solomon error correction.
package gf256

import "fmt"

// Elem is an element of GF(256), represented the same way the ISO/IEC
// 18004 standard represents it: as a byte, with field addition being
// plain XOR.
type Elem byte

// Field is GF(2^8) under the primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11d), generated by alpha=2, exactly as ISO/IEC 18004 specifies.
// exp[i] holds alpha^i; log[v] holds the unique i with exp[i] == v.
// log[0] is never consulted.
type Field struct {
	exp [256]byte
	log [256]byte
}

// NewField builds the exp/log tables for GF(256) using primitive
// polynomial poly and generator alpha. QR codes use NewField(0x11d, 2).
func NewField(poly, alpha int) *Field {
	f := new(Field)
	x := 1
	for i := 0; i < 255; i++ {
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x *= alpha
		if x >= 256 {
			x ^= poly
		}
	}
	f.exp[255] = f.exp[0]
	return f
}

// Add returns a+b in GF(256) (equivalently a-b: the field has
// characteristic 2).
func (f *Field) Add(a, b Elem) Elem { return a ^ b }

// Multiply returns a*b in GF(256).
func (f *Field) Multiply(a, b Elem) Elem {
	if a == 0 || b == 0 {
		return 0
	}
	la, lb := int(f.log[a]), int(f.log[b])
	return Elem(f.exp[(la+lb)%255])
}

// Exp returns alpha^i.
func (f *Field) Exp(i int) Elem { return Elem(f.exp[i%255]) }

// Log returns the discrete log of a non-zero element: the unique i
// such that Exp(i) == a.
func (f *Field) Log(a Elem) int {
	if a == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[a])
}

// A Poly is a polynomial with coefficients in GF(256), stored highest
// degree first: Poly[0] is the coefficient of the term with degree
// len(Poly)-1.
type Poly []Elem

// FromExponents builds a polynomial from a list of exponents, where
// exponents[i] becomes the coefficient f.Exp(exponents[i]) of the term
// at position i (so the polynomial has degree len(exponents)-1).
func (f *Field) FromExponents(exponents ...int) Poly {
	p := make(Poly, len(exponents))
	for i, e := range exponents {
		p[i] = f.Exp(e)
	}
	return p
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// MultiplyPoly returns the product p*q.
func (f *Field) MultiplyPoly(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	degree := p.Degree() + q.Degree()
	terms := make(Poly, degree+1)
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		pDeg := p.Degree() - i
		for j, qj := range q {
			if qj == 0 {
				continue
			}
			qDeg := q.Degree() - j
			idx := degree - (pDeg + qDeg)
			terms[idx] = f.Add(terms[idx], f.Multiply(pi, qj))
		}
	}
	return terms
}

// AddPoly returns the sum p+q, aligning the shorter polynomial's
// degree with the longer one's by conceptually padding it with
// leading zero coefficients.
func (f *Field) AddPoly(p, q Poly) Poly {
	if len(p) < len(q) {
		p, q = q, p
	}
	sum := make(Poly, len(p))
	copy(sum, p)
	off := len(p) - len(q)
	for i, qi := range q {
		sum[off+i] = f.Add(sum[off+i], qi)
	}
	return sum
}

// FirstTerm returns a one-term polynomial holding p's leading
// coefficient (at position 0, i.e. nominal degree 0 rather than p's
// actual degree), matching the Reed-Solomon long-division step of
// ISO/IEC 18004 Annex C.
func (p Poly) FirstTerm() Poly {
	if len(p) == 0 {
		return nil
	}
	return Poly{p[0]}
}

// RemoveFirstTerm drops p's leading coefficient.
func (p Poly) RemoveFirstTerm() Poly {
	if len(p) == 0 {
		return p
	}
	return p[1:]
}

// Generator returns the Reed-Solomon generator polynomial of degree n:
// the product (x-alpha^0)(x-alpha^1)...(x-alpha^(n-1)).
func (f *Field) Generator(n int) Poly {
	g := Poly{1}
	for i := 0; i < n; i++ {
		g = f.MultiplyPoly(g, Poly{1, f.Exp(i)})
	}
	return g
}

func (e Elem) String() string { return fmt.Sprintf("%#02x", byte(e)) }
