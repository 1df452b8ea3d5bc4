// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestPlanSideLengths(t *testing.T) {
	tests := []struct {
		v    Version
		want int
	}{
		{1, 21},
		{10, 57},
		{40, 177},
	}
	for _, tt := range tests {
		p := planFor(tt.v)
		if p.side != tt.want {
			t.Errorf("planFor(%d).side = %d, want %d", tt.v, p.side, tt.want)
		}
	}
}

func TestPlanFinderCornersDark(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 10, 40} {
		p := planFor(v)
		corners := [][2]int{{3, 3}, {p.side - 4, 3}, {3, p.side - 4}}
		for _, c := range corners {
			if p.kind[c[1]][c[0]] != cellDark {
				t.Errorf("version %d: finder corner at (%d,%d) is %v, want cellDark",
					v, c[0], c[1], p.kind[c[1]][c[0]])
			}
		}
	}
}

func TestPlanAlignmentCenterDark(t *testing.T) {
	p := planFor(10)
	for _, cy := range alignmentCenters(10) {
		for _, cx := range alignmentCenters(10) {
			if onFinderCorner(cx, cy, alignmentCenters(10), p.side) {
				continue
			}
			if p.kind[cy][cx] != cellDark {
				t.Errorf("alignment center (%d,%d) is %v, want cellDark", cx, cy, p.kind[cy][cx])
			}
		}
	}
}

func TestPlanSeparatorLight(t *testing.T) {
	p := planFor(1)
	// Separator ring around the top-left finder: row/column 7, inside
	// the finder's data-facing edge.
	if p.kind[7][0] != cellLight {
		t.Errorf("separator at (0,7) is %v, want cellLight", p.kind[7][0])
	}
	if p.kind[0][7] != cellLight {
		t.Errorf("separator at (7,0) is %v, want cellLight", p.kind[0][7])
	}
}

func TestPlanTimingParity(t *testing.T) {
	p := planFor(1)
	for i := 8; i < p.side-8; i++ {
		want := cellLight
		if i%2 == 0 {
			want = cellDark
		}
		if p.kind[6][i] != want {
			t.Errorf("timing row at x=%d is %v, want %v", i, p.kind[6][i], want)
		}
		if p.kind[i][6] != want {
			t.Errorf("timing column at y=%d is %v, want %v", i, p.kind[i][6], want)
		}
	}
}

func TestPlanColumn6NeverData(t *testing.T) {
	for _, v := range []Version{1, 10, 40} {
		p := planFor(v)
		for _, pt := range p.order {
			if pt.x == 6 {
				t.Fatalf("version %d: zig-zag order visits column 6 at y=%d", v, pt.y)
			}
		}
	}
}

func TestPlanOrderLength(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 10, 40} {
		for _, l := range []Level{L, M, Q, H} {
			p := planFor(v)
			eb := blocksFor(v, l)
			want := 8*eb.totalCodewords() + remainderBits(v)
			if len(p.order) != want {
				t.Errorf("version %d level %v: len(order) = %d, want %d",
					v, l, len(p.order), want)
			}
		}
	}
}

func TestPlanFormatInfoReserved(t *testing.T) {
	p := planFor(1)
	for x := 0; x <= 8; x++ {
		if x == 6 {
			continue
		}
		if p.kind[8][x] != cellReserved {
			t.Errorf("format-info cell (%d,8) is %v, want cellReserved", x, p.kind[8][x])
		}
	}
}

func TestPlanVersionInfoReservedAboveV6(t *testing.T) {
	p7 := planFor(7)
	if p7.kind[0][p7.side-9] != cellReserved {
		t.Error("version 7 should reserve version-info block, got non-reserved cell")
	}
	p6 := planFor(6)
	reserved := false
	for y := 0; y < 6; y++ {
		for x := p6.side - 11; x < p6.side-8; x++ {
			if p6.kind[y][x] == cellReserved {
				reserved = true
			}
		}
	}
	if reserved {
		t.Error("version 6 should have no version-info reserved block")
	}
}

func TestPlanDarkModule(t *testing.T) {
	p := planFor(1)
	if p.kind[p.side-8][8] != cellDark {
		t.Errorf("dark module at (8,%d) is %v, want cellDark", p.side-8, p.kind[p.side-8][8])
	}
}

func TestBuildMatrixSide(t *testing.T) {
	m := BuildMatrix(1, make([]byte, totalCodewords(1, M)))
	if m.Side() != 21 {
		t.Errorf("Side() = %d, want 21", m.Side())
	}
}

func TestBuildMatrixAllOnes(t *testing.T) {
	n := totalCodewords(1, Q)
	codewords := make([]byte, n)
	for i := range codewords {
		codewords[i] = 0xff
	}
	m := BuildMatrix(1, codewords)
	p := planFor(1)
	for _, pt := range p.order[:8] {
		if m.Module(pt.x, pt.y) != Dark {
			t.Errorf("module (%d,%d) = Light, want Dark with all-ones codewords", pt.x, pt.y)
		}
	}
}

func TestBuildMatrixReservedCellsLight(t *testing.T) {
	codewords := make([]byte, totalCodewords(1, Q))
	for i := range codewords {
		codewords[i] = 0xff
	}
	m := BuildMatrix(1, codewords)
	if m.Module(0, 8) != Light {
		t.Errorf("reserved format-info cell (0,8) = Dark, want Light")
	}
}
