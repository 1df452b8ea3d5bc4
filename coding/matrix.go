// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// cellKind classifies one module of a Plan.
type cellKind uint8

const (
	cellData     cellKind = iota // available for codeword/remainder bits
	cellDark                     // fixed function-pattern module, always dark
	cellLight                    // fixed function-pattern module, always light
	cellReserved                 // format-information or version-information module
)

// Plan is the immutable function-pattern layout for one version: the
// fixed finder/separator/timing/alignment/dark-module cells, the
// reserved format- and version-information regions, and the order in
// which data-carrying cells receive codeword bits. A Plan depends only
// on the version, never on level or message content, so it is built
// once per version and shared by every Matrix built at that version.
type Plan struct {
	side  int
	kind  [][]cellKind
	order []point
}

type point struct{ x, y int }

var planCache struct {
	once [41]sync.Once
	plan [41]*Plan
}

// planFor returns the cached Plan for version v, building it on first
// use.
func planFor(v Version) *Plan {
	planCache.once[v].Do(func() {
		planCache.plan[v] = buildPlan(v)
	})
	return planCache.plan[v]
}

func buildPlan(v Version) *Plan {
	side := v.Side()
	kind := make([][]cellKind, side)
	for i := range kind {
		kind[i] = make([]cellKind, side)
	}

	set := func(x, y int, k cellKind) {
		if x < 0 || y < 0 || x >= side || y >= side {
			return
		}
		kind[y][x] = k
	}

	paintFinder := func(cx, cy int) {
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				dist := abs(dx)
				if abs(dy) > dist {
					dist = abs(dy)
				}
				k := cellDark
				if dist == 2 || dist == 4 {
					k = cellLight
				}
				set(cx+dx, cy+dy, k)
			}
		}
	}
	paintFinder(3, 3)
	paintFinder(side-4, 3)
	paintFinder(3, side-4)

	// The timing pattern runs only between the finder patterns, never
	// across them; guard on cellData so a stray bound mismatch can
	// never overwrite an already-stamped finder module.
	for i := 8; i <= side-9; i++ {
		k := cellLight
		if i%2 == 0 {
			k = cellDark
		}
		if kind[i][6] == cellData {
			set(6, i, k)
		}
		if kind[6][i] == cellData {
			set(i, 6, k)
		}
	}

	align := alignmentCenters(v)
	for _, cy := range align {
		for _, cx := range align {
			if onFinderCorner(cx, cy, align, side) {
				continue
			}
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					dist := abs(dx)
					if abs(dy) > dist {
						dist = abs(dy)
					}
					k := cellDark
					if dist == 1 {
						k = cellLight
					}
					set(cx+dx, cy+dy, k)
				}
			}
		}
	}

	for x := 0; x <= 8; x++ {
		if x != 6 {
			set(x, 8, cellReserved)
		}
	}
	for y := 0; y <= 8; y++ {
		if y != 6 {
			set(8, y, cellReserved)
		}
	}
	for x := side - 8; x < side; x++ {
		set(x, 8, cellReserved)
	}
	for y := side - 8; y < side; y++ {
		set(8, y, cellReserved)
	}
	set(8, side-8, cellDark) // the dark module, always dark regardless of mask

	if v > 6 {
		for y := 0; y < 6; y++ {
			for x := side - 11; x < side-8; x++ {
				set(x, y, cellReserved)
			}
		}
		for x := 0; x < 6; x++ {
			for y := side - 11; y < side-8; y++ {
				set(x, y, cellReserved)
			}
		}
	}

	order := zigzagOrder(kind, side)
	return &Plan{side: side, kind: kind, order: order}
}

// onFinderCorner reports whether the alignment-pattern position at
// (cx, cy), both coordinates taken from align, coincides with one of the three
// finder-pattern corners, which never get an alignment pattern of
// their own.
func onFinderCorner(cx, cy int, align []int, side int) bool {
	first, last := align[0], align[len(align)-1]
	topLeft := cx == first && cy == first
	topRight := cx == last && cy == first
	bottomLeft := cx == first && cy == last
	return topLeft || topRight || bottomLeft
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// zigzagOrder returns every cellData position of kind, in the order
// ISO/IEC 18004 §7.7.3 places codeword bits: starting at the bottom
// right, moving up through two-column-wide strips toward the left,
// alternating strip direction, and skipping column 6 (the vertical
// timing pattern) entirely.
func zigzagOrder(kind [][]cellKind, side int) []point {
	var order []point
	upward := true
	for right := side - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for row := 0; row < side; row++ {
			for j := 0; j < 2; j++ {
				x := right - j
				y := row
				if upward {
					y = side - 1 - row
				}
				if kind[y][x] != cellData {
					continue
				}
				order = append(order, point{x, y})
			}
		}
		upward = !upward
	}
	return order
}

// ModuleState is the painted state of one module of a resolved Matrix.
type ModuleState int

const (
	Light ModuleState = iota
	Dark
)

// Matrix is a resolved, per-call module grid: a Plan's fixed pattern
// cells plus one codeword stream's bits painted into the data cells
// the Plan's zig-zag order visits.
type Matrix struct {
	plan *Plan
	dark [][]bool
}

// Side returns the number of modules on one side of m.
func (m *Matrix) Side() int { return m.plan.side }

// Module reports the painted state of the module at (x, y). Reserved
// format-information and version-information modules, which this
// package never paints with real bits, read as Light, matching the
// documented behavior for any cell no data was placed into.
func (m *Matrix) Module(x, y int) ModuleState {
	if m.dark[y][x] {
		return Dark
	}
	return Light
}

// BuildMatrix paints codewords, the final interleaved data and
// error-correction codeword stream, into a version v Plan, producing
// a resolved Matrix. Codeword bits are consumed most-significant-bit
// first; once the stream is exhausted, remaining data cells (the
// "remainder bits" ISO/IEC 18004 appends after the last codeword) are
// painted Light.
func BuildMatrix(v Version, codewords []byte) *Matrix {
	plan := planFor(v)
	dark := make([][]bool, plan.side)
	for i := range dark {
		dark[i] = make([]bool, plan.side)
	}
	for y := 0; y < plan.side; y++ {
		for x := 0; x < plan.side; x++ {
			switch plan.kind[y][x] {
			case cellDark:
				dark[y][x] = true
			}
		}
	}

	totalBits := len(codewords) * 8
	bitAt := func(i int) bool {
		if i >= totalBits {
			return false
		}
		b := codewords[i/8]
		return b>>uint(7-i%8)&1 != 0
	}
	for i, p := range plan.order {
		if bitAt(i) {
			dark[p.y][p.x] = true
		}
	}
	return &Matrix{plan: plan, dark: dark}
}
