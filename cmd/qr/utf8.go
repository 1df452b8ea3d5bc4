// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/corebit/qr"
)

// half-block characters for rendering two module rows per terminal
// row: full block, upper half, lower half, and space, chosen by which
// of the pair of modules above/below are dark.
const (
	blockBoth  = '█'
	blockUpper = '▀'
	blockLower = '▄'
	blockNone  = ' '
)

// writeUTF8 renders m to w as two-modules-per-character UTF-8 block
// art, suitable for printing to a terminal.
func writeUTF8(w io.Writer, m *qr.Matrix) error {
	side := m.Side()
	dark := func(x, y int) bool {
		if y < 0 || y >= side {
			return false
		}
		return m.Module(x, y) == qr.Dark
	}
	for y := -1; y < side; y += 2 {
		for x := 0; x < side; x++ {
			top, bot := dark(x, y), dark(x, y+1)
			var c rune
			switch {
			case top && bot:
				c = blockBoth
			case top:
				c = blockUpper
			case bot:
				c = blockLower
			default:
				c = blockNone
			}
			if _, err := fmt.Fprintf(w, "%c", c); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
