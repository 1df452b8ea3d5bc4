// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder computes Reed-Solomon error-correction codewords for
// one number of EC codewords per block, over one field, with one
// generator polynomial; the data blocks it encodes may be of any size.
// Generator polynomials are expensive only in the number of EC
// codewords, not in the message length, so one RSEncoder is reused
// across every block of a given error-correction level.
type RSEncoder struct {
	field *Field
	gen   Poly
	n     int // number of EC codewords (generator degree)
}

// NewRSEncoder returns an RSEncoder producing n EC codewords per block
// over field.
func NewRSEncoder(field *Field, n int) *RSEncoder {
	return &RSEncoder{field: field, gen: field.Generator(n), n: n}
}

// ECC computes the n Reed-Solomon error-correction codewords for data
// and writes them to ecc, which must have length e.n.
//
// This implements the division spec.md §4.7 and §9 describe: pad the
// message by n zero coefficients (conceptually; no padding is
// allocated here, Horner's method consumes data coefficient by
// coefficient instead) and reduce modulo the generator polynomial.
// The remainder's coefficients, high degree first, are the EC bytes.
func (e *RSEncoder) ECC(data []byte, ecc []byte) {
	if len(ecc) != e.n {
		panic("gf256: wrong ECC buffer length")
	}
	remainder := make(Poly, e.n)
	for _, b := range data {
		factor := e.field.Add(Elem(b), remainder[0])
		copy(remainder, remainder[1:])
		remainder[e.n-1] = 0
		if factor == 0 {
			continue
		}
		for i, gc := range e.gen[1:] {
			remainder[i] = e.field.Add(remainder[i], e.field.Multiply(gc, factor))
		}
	}
	for i, r := range remainder {
		ecc[i] = byte(r)
	}
}

// Encode is an alternative, spec.md §4.7-literal implementation of
// ECC using explicit polynomial long division rather than Horner's
// method. It is kept as a cross-check for RSEncoder.ECC in tests: the
// two must always agree.
func (e *RSEncoder) Encode(data []byte) []byte {
	msg := make(Poly, len(data)+e.n)
	for i, b := range data {
		msg[i] = Elem(b)
	}
	for i := 0; i < len(data); i++ {
		lead := msg.FirstTerm()
		if lead[0] != 0 {
			shifted := make(Poly, len(msg))
			copy(shifted, e.field.MultiplyPoly(e.gen, lead))
			msg = e.field.AddPoly(msg, shifted)
		}
		msg = msg.RemoveFirstTerm()
	}
	ecc := make([]byte, e.n)
	for i, c := range msg[:e.n] {
		ecc[i] = byte(c)
	}
	return ecc
}
