// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "testing"

var f = NewField(0x11d, 2)

func TestFieldLawsAdd(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			ea, eb := Elem(a), Elem(b)
			if f.Add(ea, eb) != f.Add(eb, ea) {
				t.Fatalf("Add not commutative: %v+%v", ea, eb)
			}
			if f.Add(ea, 0) != ea {
				t.Fatalf("Add(%v, 0) != %v", ea, ea)
			}
			if f.Add(ea, ea) != 0 {
				t.Fatalf("Add(%v, %v) != 0", ea, ea)
			}
		}
	}
}

func TestFieldLawsAddAssoc(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			for c := 0; c < 256; c += 29 {
				ea, eb, ec := Elem(a), Elem(b), Elem(c)
				lhs := f.Add(f.Add(ea, eb), ec)
				rhs := f.Add(ea, f.Add(eb, ec))
				if lhs != rhs {
					t.Fatalf("Add not associative: (%v+%v)+%v = %v, %v+(%v+%v) = %v",
						ea, eb, ec, lhs, ea, eb, ec, rhs)
				}
			}
		}
	}
}

func TestFieldLawsMultiply(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			ea, eb := Elem(a), Elem(b)
			if f.Multiply(ea, eb) != f.Multiply(eb, ea) {
				t.Fatalf("Multiply not commutative: %v*%v", ea, eb)
			}
		}
		ea := Elem(a)
		if f.Multiply(ea, 1) != ea {
			t.Fatalf("Multiply(%v, 1) != %v", ea, ea)
		}
		if f.Multiply(ea, 0) != 0 {
			t.Fatalf("Multiply(%v, 0) != 0", ea)
		}
	}
}

func TestMultiplySpecificVectors(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{76, 43, 251},
		{16, 32, 58},
		{198, 215, 240},
	}
	for _, tt := range tests {
		got := f.Multiply(Elem(tt.a), Elem(tt.b))
		if got != Elem(tt.want) {
			t.Errorf("Multiply(%d, %d) = %v, want %#02x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddSpecificVector(t *testing.T) {
	got := f.Add(Elem(56), Elem(14))
	if got != Elem(54) {
		t.Errorf("Add(56, 14) = %v, want %#02x", got, 54)
	}
}

func TestExpLog(t *testing.T) {
	for i := 0; i < 255; i++ {
		e := f.Exp(i)
		if e == 0 {
			t.Fatalf("Exp(%d) == 0", i)
		}
		if f.Log(e) != i {
			t.Errorf("Log(Exp(%d)) = %d, want %d", i, f.Log(e), i)
		}
	}
	if f.Exp(0) != 1 {
		t.Errorf("Exp(0) = %v, want 1", f.Exp(0))
	}
}

func TestGeneratorDegree(t *testing.T) {
	for _, n := range []int{1, 2, 6, 7, 10, 15, 18, 30} {
		g := f.Generator(n)
		if g.Degree() != n {
			t.Errorf("Generator(%d).Degree() = %d, want %d", n, g.Degree(), n)
		}
	}
}

func TestGeneratorVectors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{2, []int{0, 25, 1}},
		{6, []int{0, 166, 0, 134, 5, 176, 15}},
		{7, []int{0, 87, 229, 146, 149, 238, 102, 21}},
		{15, []int{0, 8, 183, 61, 91, 202, 37, 51, 58, 58, 237, 140, 124, 5, 99, 105}},
	}
	for _, tt := range tests {
		want := f.FromExponents(tt.want...)
		got := f.Generator(tt.n)
		if len(got) != len(want) {
			t.Fatalf("Generator(%d) has %d coefficients, want %d", tt.n, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("Generator(%d)[%d] = %v, want %v", tt.n, i, got[i], want[i])
			}
		}
	}
}

func TestAddPoly(t *testing.T) {
	p := Poly{1, 2, 3}
	q := Poly{4, 5}
	got := f.AddPoly(p, q)
	want := Poly{1, f.Add(2, 4), f.Add(3, 5)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AddPoly(%v, %v)[%d] = %v, want %v", p, q, i, got[i], want[i])
		}
	}
}

func TestMultiplyPolyDegree(t *testing.T) {
	p := f.FromExponents(0, 1, 2)
	q := f.FromExponents(0, 3)
	got := f.MultiplyPoly(p, q)
	if got.Degree() != p.Degree()+q.Degree() {
		t.Errorf("MultiplyPoly degree = %d, want %d", got.Degree(), p.Degree()+q.Degree())
	}
}
