// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// PNGSink is a PixelSink backed by an image.RGBA, usable directly with
// Render and then encoded with image/png. It replaces a bespoke
// DEFLATE encoder with the standard library's, trading encoded-size
// and speed optimizations for an implementation that can be reviewed
// without a test run.
type PNGSink struct {
	Img *image.RGBA
}

// NewPNGSink allocates a PNGSink sized for a Matrix rendered at
// moduleSize pixels per module, plus a border of borderModules blank
// modules on every side.
func NewPNGSink(m *Matrix, moduleSize, borderModules int) *PNGSink {
	side := (m.Side() + 2*borderModules) * moduleSize
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return &PNGSink{Img: img}
}

// SetPixel implements PixelSink, writing the pixel at (x, y) with no
// offset; WritePNG shifts pixels past the border through offsetSink.
func (s *PNGSink) SetPixel(x, y int, r, g, b uint8) {
	s.Img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
}

// WritePNG renders m at moduleSize pixels per module with a border of
// borderModules blank modules and writes the resulting PNG to w.
func WritePNG(w io.Writer, m *Matrix, moduleSize, borderModules int) error {
	sink := NewPNGSink(m, moduleSize, borderModules)
	border := borderModules * moduleSize
	offset := &offsetSink{sink: sink, dx: border, dy: border}
	Render(m, moduleSize, offset)
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, sink.Img); err != nil {
		return fmt.Errorf("qr: encode png: %w", err)
	}
	return bw.Flush()
}

// offsetSink translates every SetPixel call by a fixed offset, used
// to leave room for a blank border around the rendered matrix.
type offsetSink struct {
	sink   PixelSink
	dx, dy int
}

func (o *offsetSink) SetPixel(x, y int, r, g, b uint8) {
	o.sink.SetPixel(x+o.dx, y+o.dy, r, g, b)
}

// WritePBM writes m as a plain (ASCII) Portable Bitmap to w, one
// module per pixel, with no border. PBM's "1" means black, so Dark
// modules are written as 1 and Light modules as 0.
func WritePBM(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	side := m.Side()
	if _, err := fmt.Fprintf(bw, "P1\n%d %d\n", side, side); err != nil {
		return fmt.Errorf("qr: write pbm: %w", err)
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			bit := byte('0')
			if m.Module(x, y) == Dark {
				bit = '1'
			}
			if err := bw.WriteByte(bit); err != nil {
				return fmt.Errorf("qr: write pbm: %w", err)
			}
			if x < side-1 {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
