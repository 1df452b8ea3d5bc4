// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qr generates QR Code symbols: it chooses a mode and version
// for a message, encodes it with Reed-Solomon error correction, and
// lays the result out on a module grid.
package qr

import (
	"fmt"

	"github.com/corebit/qr/coding"
)

// Level is a QR error-correction level, re-exported from coding so
// callers never need to import that package directly.
type Level = coding.Level

// The four error-correction levels, from least to most tolerant of
// errors.
const (
	L = coding.L
	M = coding.M
	Q = coding.Q
	H = coding.H
)

// Charset is a byte-mode text transform, re-exported from coding.
type Charset = coding.Charset

// Latin1 transcodes byte-mode text to ISO-8859-1 before encoding.
var Latin1 = coding.Latin1

// A Matrix is a generated symbol's resolved module grid.
type Matrix struct {
	version coding.Version
	level   Level
	inner   *coding.Matrix
}

// Version returns the symbol's QR version, 1 through 40.
func (m *Matrix) Version() int { return int(m.version) }

// Level returns the symbol's error-correction level.
func (m *Matrix) Level() Level { return m.level }

// Side returns the number of modules on one side of the symbol.
func (m *Matrix) Side() int { return m.inner.Side() }

// ModuleState describes one module of a Matrix.
type ModuleState = coding.ModuleState

// The two module states a generated Matrix exposes. Modules this
// package leaves unpainted, such as the format- and version-
// information bits masking and BCH encoding would otherwise fill in,
// always read as Light.
const (
	Light = coding.Light
	Dark  = coding.Dark
)

// Module returns the state of the module at (x, y), 0-indexed from
// the top left corner.
func (m *Matrix) Module(x, y int) ModuleState { return m.inner.Module(x, y) }

// Generate builds a QR symbol encoding input at the given error-
// correction level, selecting the smallest version 1 through 40 whose
// capacity holds input. It returns an error wrapping
// coding.ErrPayloadTooLarge if no version at level can hold it.
func Generate(input string, level Level) (*Matrix, error) {
	return generate(input, level, nil)
}

// GenerateWithCharset is Generate, additionally transcoding the
// message with charset before byte-mode encoding; see coding.Latin1.
func GenerateWithCharset(input string, level Level, charset Charset) (*Matrix, error) {
	return generate(input, level, charset)
}

func generate(input string, level Level, charset Charset) (*Matrix, error) {
	v, codewords, err := coding.EncodeMessage(input, level, charset)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return &Matrix{
		version: v,
		level:   level,
		inner:   coding.BuildMatrix(v, codewords),
	}, nil
}

// PixelSink is the external collaborator a renderer paints into: any
// type able to receive individually colored pixels, such as an
// image.RGBA wrapper or a terminal writer.
type PixelSink interface {
	SetPixel(x, y int, r, g, b uint8)
}

// Render walks m in row-major pixel order, at moduleSize pixels per
// module, and calls sink.SetPixel for every pixel of every module. It
// performs no I/O and allocates no image itself; callers needing an
// image.Image should use PNGSink.
func Render(m *Matrix, moduleSize int, sink PixelSink) {
	if moduleSize < 1 {
		moduleSize = 1
	}
	side := m.Side()
	for my := 0; my < side; my++ {
		for mx := 0; mx < side; mx++ {
			var r, g, b uint8 = 0xff, 0xff, 0xff
			if m.Module(mx, my) == Dark {
				r, g, b = 0, 0, 0
			}
			for dy := 0; dy < moduleSize; dy++ {
				for dx := 0; dx < moduleSize; dx++ {
					sink.SetPixel(mx*moduleSize+dx, my*moduleSize+dy, r, g, b)
				}
			}
		}
	}
}
