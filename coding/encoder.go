// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"

	"github.com/corebit/qr/gf256"
)

// padCodewords are the two bytes ISO/IEC 18004 §7.4.10 specifies for
// padding a message out to its symbol's data capacity, used
// alternately starting with 0xEC.
var padCodewords = [2]byte{0xEC, 0x11}

// field is the GF(256) field QR Reed-Solomon coding uses: primitive
// polynomial x^8+x^4+x^3+x^2+1, generator alpha=2.
var field = gf256.NewField(0x11d, 2)

// rsEncoders caches one RSEncoder per EC-codewords-per-block value, so
// concurrent encodes of the same level never recompute a generator
// polynomial; Reed-Solomon generators depend only on the EC count, not
// on version, block count or data. Guarded by rsEncodersMu since
// Generate may run concurrently from multiple goroutines.
var (
	rsEncodersMu sync.Mutex
	rsEncoders   = map[int]*gf256.RSEncoder{}
)

func rsEncoderFor(ecPerBlock int) *gf256.RSEncoder {
	rsEncodersMu.Lock()
	defer rsEncodersMu.Unlock()
	if e, ok := rsEncoders[ecPerBlock]; ok {
		return e
	}
	e := gf256.NewRSEncoder(field, ecPerBlock)
	rsEncoders[ecPerBlock] = e
	return e
}

// buildSegment picks a mode for input and applies charset if the
// chosen mode is Byte. Mode selection always runs over input as
// given; charset never influences which mode is picked, only how a
// Byte-mode payload's bytes are produced.
func buildSegment(input string, charset Charset) (Segment, error) {
	mode := chooseMode(input)
	if mode != Byte || charset == nil {
		return Segment{Text: input, Mode: mode}, nil
	}
	text, err := charset(input)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Text: text, Mode: Byte}, nil
}

// selectVersion returns the smallest version 1..40 at level whose
// capacity strictly exceeds seg's character count, or
// ErrPayloadTooLarge if none does.
func selectVersion(seg Segment, level Level) (Version, error) {
	n := segmentLength(seg)
	for v := Version(1); v <= 40; v++ {
		if capacity(v, level, seg.Mode) > n {
			return v, nil
		}
	}
	return 0, ErrPayloadTooLarge
}

// EncodeMessage builds the final, interleaved codeword stream for
// input at level, selecting the smallest version that fits, and
// returns that version alongside the codewords. charset may be nil.
func EncodeMessage(input string, level Level, charset Charset) (Version, []byte, error) {
	if level < L || level > H {
		return 0, nil, ErrInvalidLevel
	}
	seg, err := buildSegment(input, charset)
	if err != nil {
		return 0, nil, err
	}
	v, err := selectVersion(seg, level)
	if err != nil {
		return 0, nil, err
	}

	bits := new(Bits)
	encodeSegment(bits, seg, v)

	dataBits := 8 * dataCodewords(v, level)
	appendTerminatorAndPad(bits, dataBits)

	data := bits.Bytes()
	codewords, err := interleave(data, v, level)
	if err != nil {
		return 0, nil, fmt.Errorf("qr: %w", err)
	}
	return v, codewords, nil
}

// appendTerminatorAndPad appends the 4-bit terminator (truncated if
// fewer than 4 bits remain), pads to a byte boundary, then fills out
// to dataBits with alternating 0xEC/0x11 pad codewords.
func appendTerminatorAndPad(bits *Bits, dataBits int) {
	term := dataBits - bits.Len()
	if term > 4 {
		term = 4
	}
	if term > 0 {
		bits.Append(0, term)
	}
	bits.PadToByte()
	i := 0
	for bits.Len() < dataBits {
		bits.Append(uint(padCodewords[i%2]), 8)
		i++
	}
}

// interleave splits data into the blocks version v and level l call
// for, computes each block's EC codewords, and returns the final
// codeword stream: all blocks' data codewords read column-major (the
// data codeword at index 0 of every block in turn, then index 1 of
// every block, and so on, with exhausted shorter blocks skipped),
// followed by all blocks' EC codewords read the same way.
func interleave(data []byte, v Version, l Level) ([]byte, error) {
	eb := blocksFor(v, l)
	wantData := eb.totalDataCodewords()
	if len(data) != wantData {
		panic(fmt.Sprintf("qr: internal error: got %d data codewords, want %d", len(data), wantData))
	}

	type block struct {
		data []byte
		ecc  []byte
	}
	rs := rsEncoderFor(eb.ecPerBlock)
	var blocks []block
	pos := 0
	for _, g := range eb.groups {
		for i := 0; i < g.count; i++ {
			d := data[pos : pos+g.dataCodewords]
			pos += g.dataCodewords
			ecc := make([]byte, eb.ecPerBlock)
			rs.ECC(d, ecc)
			blocks = append(blocks, block{data: d, ecc: ecc})
		}
	}

	out := make([]byte, 0, wantData+eb.ecPerBlock*len(blocks))
	maxData := 0
	for _, bl := range blocks {
		if len(bl.data) > maxData {
			maxData = len(bl.data)
		}
	}
	for i := 0; i < maxData; i++ {
		for _, bl := range blocks {
			if i < len(bl.data) {
				out = append(out, bl.data[i])
			}
		}
	}
	for i := 0; i < eb.ecPerBlock; i++ {
		for _, bl := range blocks {
			out = append(out, bl.ecc[i])
		}
	}
	return out, nil
}
