// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/corebit/qr/coding"
)

func TestGenerateSideLengths(t *testing.T) {
	m, err := Generate("HELLO WORLD", Q)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Version() != 1 {
		t.Errorf("Version() = %d, want 1", m.Version())
	}
	if m.Side() != 21 {
		t.Errorf("Side() = %d, want 21", m.Side())
	}
	if m.Level() != Q {
		t.Errorf("Level() = %v, want Q", m.Level())
	}
}

func TestGenerateTooLarge(t *testing.T) {
	huge := bytes.Repeat([]byte("x"), 100000)
	_, err := Generate(string(huge), H)
	if !errors.Is(err, coding.ErrPayloadTooLarge) {
		t.Errorf("Generate(huge, H) error = %v, want ErrPayloadTooLarge", err)
	}
}

func TestGenerateWithCharsetLatin1(t *testing.T) {
	m, err := GenerateWithCharset("café", M, Latin1)
	if err != nil {
		t.Fatalf("GenerateWithCharset: %v", err)
	}
	if m.Side() < 21 {
		t.Errorf("Side() = %d, too small", m.Side())
	}
}

type recordingSink struct {
	calls int
	seen  map[[2]int]bool
}

func (s *recordingSink) SetPixel(x, y int, r, g, b uint8) {
	s.calls++
	if s.seen == nil {
		s.seen = map[[2]int]bool{}
	}
	s.seen[[2]int{x, y}] = true
}

func TestRenderCoversEveryPixel(t *testing.T) {
	m, err := Generate("HI", L)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	const scale = 3
	sink := &recordingSink{}
	Render(m, scale, sink)
	want := m.Side() * m.Side() * scale * scale
	if sink.calls != want {
		t.Errorf("Render called SetPixel %d times, want %d", sink.calls, want)
	}
}

func TestRenderMinimumModuleSize(t *testing.T) {
	m, err := Generate("HI", L)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	sink := &recordingSink{}
	Render(m, 0, sink)
	want := m.Side() * m.Side()
	if sink.calls != want {
		t.Errorf("Render with moduleSize 0 called SetPixel %d times, want %d (clamped to 1)", sink.calls, want)
	}
}
