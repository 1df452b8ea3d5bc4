// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// A Segment is a run of input text together with the mode it will be
// encoded in. Generate builds exactly one Segment per message: there
// is no segment-splitting optimization here, unlike encoders that
// mix modes within a single symbol to save space.
type Segment struct {
	Text string
	Mode Mode
}

// Charset is a transform applied to byte-mode text before it is
// counted and encoded. Latin1 is the only transform this package
// ships; callers may supply their own.
type Charset func(string) (string, error)

// Latin1 transcodes s to ISO-8859-1, the charset ISO/IEC 18004
// prescribes for byte mode, returning ErrInvalidCharacter for any rune
// with no ISO-8859-1 representation.
func Latin1(s string) (string, error) {
	enc := charmap.ISO8859_1.NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	return out, nil
}

// chooseMode returns the most compact mode able to represent every
// character of s: Numeric if s is all digits, Alphanumeric if every
// byte of s is one of the 45 alphanumeric-mode characters, Byte
// otherwise.
func chooseMode(s string) Mode {
	if len(s) == 0 {
		return Numeric
	}
	allNumeric := true
	allAlnum := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isNumeric(c) {
			allNumeric = false
		}
		if !isAlphanumeric(c) {
			allAlnum = false
		}
	}
	switch {
	case allNumeric:
		return Numeric
	case allAlnum:
		return Alphanumeric
	default:
		return Byte
	}
}

// segmentLength returns the character count Generate must put in the
// character-count indicator: the number of digits/alphanumeric
// characters for Numeric/Alphanumeric, or the number of bytes for
// Byte mode (after any charset transform has already been applied to
// seg.Text).
func segmentLength(seg Segment) int { return len(seg.Text) }

// encodeSegment appends seg's mode indicator, character-count
// indicator and data bits to bits, at version v.
func encodeSegment(bits *Bits, seg Segment, v Version) {
	bits.Append(modeIndicator(seg.Mode), 4)
	bits.Append(uint(segmentLength(seg)), charCountBits(v, seg.Mode))
	switch seg.Mode {
	case Numeric:
		encodeNumeric(bits, seg.Text)
	case Alphanumeric:
		encodeAlphanumeric(bits, seg.Text)
	case Byte:
		encodeByte(bits, []byte(seg.Text))
	default:
		panic("qr: invalid mode")
	}
}

// encodeNumeric packs s, which must be all-digit, three digits to a
// 10-bit group, with 4- and 7-bit groups for the trailing one or two
// digits.
func encodeNumeric(bits *Bits, s string) {
	for i := 0; i < len(s); i += 3 {
		end := i + 3
		if end > len(s) {
			end = len(s)
		}
		chunk := s[i:end]
		n := 0
		for _, c := range chunk {
			n = n*10 + int(c-'0')
		}
		switch len(chunk) {
		case 3:
			bits.Append(uint(n), 10)
		case 2:
			bits.Append(uint(n), 7)
		case 1:
			bits.Append(uint(n), 4)
		}
	}
}

// encodeAlphanumeric packs s two characters to an 11-bit group, with a
// 6-bit group for a trailing single character.
func encodeAlphanumeric(bits *Bits, s string) {
	for i := 0; i < len(s); i += 2 {
		if i+1 < len(s) {
			v := alphanumericValues[s[i]]*45 + alphanumericValues[s[i+1]]
			bits.Append(uint(v), 11)
		} else {
			bits.Append(uint(alphanumericValues[s[i]]), 6)
		}
	}
}

// encodeByte packs data eight bits per byte, in order.
func encodeByte(bits *Bits, data []byte) {
	bits.AppendBytes(data)
}
