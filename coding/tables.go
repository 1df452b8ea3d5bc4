// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Version is a QR code version number, 1 through 40. Side length in
// modules is 17+4*Version.
type Version int

// Side returns the number of modules on one side of a symbol of
// version v.
func (v Version) Side() int { return 17 + 4*int(v) }

// Level is an error-correction level.
type Level int

// The four error-correction levels, in the order ISO/IEC 18004 lists
// them and the order used to index dataInfo's per-level arrays.
const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "?"
	}
}

// ecBlock describes one group of identically-sized error-correction
// blocks: count blocks, each holding dataCodewords data codewords.
type ecBlock struct {
	count         int
	dataCodewords int
}

// ecBlocks describes the full block layout for one version and level.
type ecBlocks struct {
	ecPerBlock int
	groups     []ecBlock
}

func b(count, dataCodewords int) ecBlock { return ecBlock{count, dataCodewords} }

func eb(ecPerBlock int, groups ...ecBlock) ecBlocks { return ecBlocks{ecPerBlock, groups} }

// totalDataCodewords returns the number of data codewords across all
// blocks.
func (e ecBlocks) totalDataCodewords() int {
	n := 0
	for _, g := range e.groups {
		n += g.count * g.dataCodewords
	}
	return n
}

// totalBlocks returns the number of blocks.
func (e ecBlocks) totalBlocks() int {
	n := 0
	for _, g := range e.groups {
		n += g.count
	}
	return n
}

// totalCodewords returns the number of data plus EC codewords across
// all blocks.
func (e ecBlocks) totalCodewords() int {
	return e.totalDataCodewords() + e.ecPerBlock*e.totalBlocks()
}

// versionInfo holds the alignment-pattern centers and the four
// error-correction block layouts for one version.
type versionInfo struct {
	align  []int
	levels [4]ecBlocks
}

func newVersionInfo(align []int, l, m, q, h ecBlocks) versionInfo {
	return versionInfo{align: align, levels: [4]ecBlocks{l, m, q, h}}
}

// dataInfo holds version/level data grounded verbatim on the ISO/IEC
// 18004 Annex tables (index 0 is unused; versions run 1..40).
var dataInfo = [41]versionInfo{
	{},
	newVersionInfo(nil, eb(7, b(1, 19)), eb(10, b(1, 16)), eb(13, b(1, 13)), eb(17, b(1, 9))),
	newVersionInfo([]int{6, 18}, eb(10, b(1, 34)), eb(16, b(1, 28)), eb(22, b(1, 22)), eb(28, b(1, 16))),
	newVersionInfo([]int{6, 22}, eb(15, b(1, 55)), eb(26, b(1, 44)), eb(18, b(2, 17)), eb(22, b(2, 13))),
	newVersionInfo([]int{6, 26}, eb(20, b(1, 80)), eb(18, b(2, 32)), eb(26, b(2, 24)), eb(16, b(4, 9))),
	newVersionInfo([]int{6, 30}, eb(26, b(1, 108)), eb(24, b(2, 43)), eb(18, b(2, 15), b(2, 16)), eb(22, b(2, 11), b(2, 12))),
	newVersionInfo([]int{6, 34}, eb(18, b(2, 68)), eb(16, b(4, 27)), eb(24, b(4, 19)), eb(28, b(4, 15))),
	newVersionInfo([]int{6, 22, 38}, eb(20, b(2, 78)), eb(18, b(4, 31)), eb(18, b(2, 14), b(4, 15)), eb(26, b(4, 13), b(1, 14))),
	newVersionInfo([]int{6, 24, 42}, eb(24, b(2, 97)), eb(22, b(2, 38), b(2, 39)), eb(22, b(4, 18), b(2, 19)), eb(26, b(4, 14), b(2, 15))),
	newVersionInfo([]int{6, 26, 46}, eb(30, b(2, 116)), eb(22, b(3, 36), b(2, 37)), eb(20, b(4, 16), b(4, 17)), eb(24, b(4, 12), b(4, 13))),
	newVersionInfo([]int{6, 28, 50}, eb(18, b(2, 68), b(2, 69)), eb(26, b(4, 43), b(1, 44)), eb(24, b(6, 19), b(2, 20)), eb(28, b(6, 15), b(2, 16))),
	newVersionInfo([]int{6, 30, 54}, eb(20, b(4, 81)), eb(30, b(1, 50), b(4, 51)), eb(28, b(4, 22), b(4, 23)), eb(24, b(3, 12), b(8, 13))),
	newVersionInfo([]int{6, 32, 58}, eb(24, b(2, 92), b(2, 93)), eb(22, b(6, 36), b(2, 37)), eb(26, b(4, 20), b(6, 21)), eb(28, b(7, 14), b(4, 15))),
	newVersionInfo([]int{6, 34, 62}, eb(26, b(4, 107)), eb(22, b(8, 37), b(1, 38)), eb(24, b(8, 20), b(4, 21)), eb(22, b(12, 11), b(4, 12))),
	newVersionInfo([]int{6, 26, 46, 66}, eb(30, b(3, 115), b(1, 116)), eb(24, b(4, 40), b(5, 41)), eb(20, b(11, 16), b(5, 17)), eb(24, b(11, 12), b(5, 13))),
	newVersionInfo([]int{6, 26, 48, 70}, eb(22, b(5, 87), b(1, 88)), eb(24, b(5, 41), b(5, 42)), eb(30, b(5, 24), b(7, 25)), eb(24, b(11, 12), b(7, 13))),
	newVersionInfo([]int{6, 26, 50, 74}, eb(24, b(5, 98), b(1, 99)), eb(28, b(7, 45), b(3, 46)), eb(24, b(15, 19), b(2, 20)), eb(30, b(3, 15), b(13, 16))),
	newVersionInfo([]int{6, 30, 54, 78}, eb(28, b(1, 107), b(5, 108)), eb(28, b(10, 46), b(1, 47)), eb(28, b(1, 22), b(15, 23)), eb(28, b(2, 14), b(17, 15))),
	newVersionInfo([]int{6, 30, 56, 82}, eb(30, b(5, 120), b(1, 121)), eb(26, b(9, 43), b(4, 44)), eb(28, b(17, 22), b(1, 23)), eb(28, b(2, 14), b(19, 15))),
	newVersionInfo([]int{6, 30, 58, 86}, eb(28, b(3, 113), b(4, 114)), eb(26, b(3, 44), b(11, 45)), eb(26, b(17, 21), b(4, 22)), eb(26, b(9, 13), b(16, 14))),
	newVersionInfo([]int{6, 34, 62, 90}, eb(28, b(3, 107), b(5, 108)), eb(26, b(3, 41), b(13, 42)), eb(30, b(15, 24), b(5, 25)), eb(28, b(15, 15), b(10, 16))),
	newVersionInfo([]int{6, 28, 50, 72, 94}, eb(28, b(4, 116), b(4, 117)), eb(26, b(17, 42)), eb(28, b(17, 22), b(6, 23)), eb(30, b(19, 16), b(6, 17))),
	newVersionInfo([]int{6, 26, 50, 74, 98}, eb(28, b(2, 111), b(7, 112)), eb(28, b(17, 46)), eb(30, b(7, 24), b(16, 25)), eb(24, b(34, 13))),
	newVersionInfo([]int{6, 30, 54, 78, 102}, eb(30, b(4, 121), b(5, 122)), eb(28, b(4, 47), b(14, 48)), eb(30, b(11, 24), b(14, 25)), eb(30, b(16, 15), b(14, 16))),
	newVersionInfo([]int{6, 28, 54, 80, 106}, eb(30, b(6, 117), b(4, 118)), eb(28, b(6, 45), b(14, 46)), eb(30, b(11, 24), b(16, 25)), eb(30, b(30, 16), b(2, 17))),
	newVersionInfo([]int{6, 32, 58, 84, 110}, eb(26, b(8, 106), b(4, 107)), eb(28, b(8, 47), b(13, 48)), eb(30, b(7, 24), b(22, 25)), eb(30, b(22, 15), b(13, 16))),
	newVersionInfo([]int{6, 30, 58, 86, 114}, eb(28, b(10, 114), b(2, 115)), eb(28, b(19, 46), b(4, 47)), eb(28, b(28, 22), b(6, 23)), eb(30, b(33, 16), b(4, 17))),
	newVersionInfo([]int{6, 34, 62, 90, 118}, eb(30, b(8, 122), b(4, 123)), eb(28, b(22, 45), b(3, 46)), eb(30, b(8, 23), b(26, 24)), eb(30, b(12, 15), b(28, 16))),
	newVersionInfo([]int{6, 26, 50, 74, 98, 122}, eb(30, b(3, 117), b(10, 118)), eb(28, b(3, 45), b(23, 46)), eb(30, b(4, 24), b(31, 25)), eb(30, b(11, 15), b(31, 16))),
	newVersionInfo([]int{6, 30, 54, 78, 102, 126}, eb(30, b(7, 116), b(7, 117)), eb(28, b(21, 45), b(7, 46)), eb(30, b(1, 23), b(37, 24)), eb(30, b(19, 15), b(26, 16))),
	newVersionInfo([]int{6, 26, 52, 78, 104, 130}, eb(30, b(5, 115), b(10, 116)), eb(28, b(19, 47), b(10, 48)), eb(30, b(15, 24), b(25, 25)), eb(30, b(23, 15), b(25, 16))),
	newVersionInfo([]int{6, 30, 56, 82, 108, 134}, eb(30, b(13, 115), b(3, 116)), eb(28, b(2, 46), b(29, 47)), eb(30, b(42, 24), b(1, 25)), eb(30, b(23, 15), b(28, 16))),
	newVersionInfo([]int{6, 34, 60, 86, 112, 138}, eb(30, b(17, 115)), eb(28, b(10, 46), b(23, 47)), eb(30, b(10, 24), b(35, 25)), eb(30, b(19, 15), b(35, 16))),
	newVersionInfo([]int{6, 30, 58, 86, 114, 142}, eb(30, b(17, 115), b(1, 116)), eb(28, b(14, 46), b(21, 47)), eb(30, b(29, 24), b(19, 25)), eb(30, b(11, 15), b(46, 16))),
	newVersionInfo([]int{6, 34, 62, 90, 118, 146}, eb(30, b(13, 115), b(6, 116)), eb(28, b(14, 46), b(23, 47)), eb(30, b(44, 24), b(7, 25)), eb(30, b(59, 16), b(1, 17))),
	newVersionInfo([]int{6, 30, 54, 78, 102, 126, 150}, eb(30, b(12, 121), b(7, 122)), eb(28, b(12, 47), b(26, 48)), eb(30, b(39, 24), b(14, 25)), eb(30, b(22, 15), b(41, 16))),
	newVersionInfo([]int{6, 24, 50, 76, 102, 128, 154}, eb(30, b(6, 121), b(14, 122)), eb(28, b(6, 47), b(34, 48)), eb(30, b(46, 24), b(10, 25)), eb(30, b(2, 15), b(64, 16))),
	newVersionInfo([]int{6, 28, 54, 80, 106, 132, 158}, eb(30, b(17, 122), b(4, 123)), eb(28, b(29, 46), b(14, 47)), eb(30, b(49, 24), b(10, 25)), eb(30, b(24, 15), b(46, 16))),
	newVersionInfo([]int{6, 32, 58, 84, 110, 136, 162}, eb(30, b(4, 122), b(18, 123)), eb(28, b(13, 46), b(32, 47)), eb(30, b(48, 24), b(14, 25)), eb(30, b(42, 15), b(32, 16))),
	newVersionInfo([]int{6, 26, 54, 82, 110, 138, 166}, eb(30, b(20, 117), b(4, 118)), eb(28, b(40, 47), b(7, 48)), eb(30, b(43, 24), b(22, 25)), eb(30, b(10, 15), b(67, 16))),
	newVersionInfo([]int{6, 30, 58, 86, 114, 142, 170}, eb(30, b(19, 118), b(6, 119)), eb(28, b(18, 47), b(31, 48)), eb(30, b(34, 24), b(34, 25)), eb(30, b(20, 15), b(61, 16))),
}

// blocksFor returns the block layout for version v at level l.
func blocksFor(v Version, l Level) ecBlocks { return dataInfo[v].levels[l] }

// dataCodewords returns the number of data codewords a symbol of
// version v and level l carries.
func dataCodewords(v Version, l Level) int { return blocksFor(v, l).totalDataCodewords() }

// totalCodewords returns the number of data plus EC codewords a
// symbol of version v and level l carries.
func totalCodewords(v Version, l Level) int { return blocksFor(v, l).totalCodewords() }

// alignmentCenters returns the alignment-pattern row/column centers
// for version v, or nil for version 1, which has none.
func alignmentCenters(v Version) []int { return dataInfo[v].align }

// remainderBits gives the number of padding bits appended after the
// last codeword to fill the symbol to a byte-unaligned width, indexed
// by version.
var remainderBitsTable = [41]int{
	0,
	0, 7, 7, 7, 7, 7, 0, 0, 0, 0,
	0, 0, 0, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 3, 3, 3,
	3, 3, 3, 3, 0, 0, 0, 0, 0, 0,
}

func remainderBits(v Version) int { return remainderBitsTable[v] }

// Mode is a QR segment encoding mode. Kanji, ECI and the other modes
// ISO/IEC 18004 defines are out of scope; only these three are
// implemented.
type Mode int

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	default:
		return "?"
	}
}

// modeIndicator returns the 4-bit mode indicator value for m.
func modeIndicator(m Mode) uint {
	switch m {
	case Numeric:
		return 0b0001
	case Alphanumeric:
		return 0b0010
	case Byte:
		return 0b0100
	default:
		panic("qr: invalid mode")
	}
}

// charCountBits returns the bit width of the character-count
// indicator for mode m at version v.
func charCountBits(v Version, m Mode) int {
	var widths [3]int
	switch {
	case v <= 9:
		widths = [3]int{10, 9, 8}
	case v <= 26:
		widths = [3]int{12, 11, 16}
	default:
		widths = [3]int{14, 13, 16}
	}
	return widths[m]
}

// headerBits returns the combined width of the mode indicator and the
// character-count indicator for mode m at version v.
func headerBits(v Version, m Mode) int {
	return 4 + charCountBits(v, m)
}

// alphanumericValues maps the 45 characters ISO/IEC 18004 alphanumeric
// mode supports to their numeric values 0..44.
var alphanumericValues = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14,
	'F': 15, 'G': 16, 'H': 17, 'I': 18, 'J': 19,
	'K': 20, 'L': 21, 'M': 22, 'N': 23, 'O': 24,
	'P': 25, 'Q': 26, 'R': 27, 'S': 28, 'T': 29,
	'U': 30, 'V': 31, 'W': 32, 'X': 33, 'Y': 34,
	'Z': 35, ' ': 36, '$': 37, '%': 38, '*': 39,
	'+': 40, '-': 41, '.': 42, '/': 43, ':': 44,
}

func isAlphanumeric(c byte) bool {
	_, ok := alphanumericValues[c]
	return ok
}

func isNumeric(c byte) bool { return c >= '0' && c <= '9' }

// characterCapacities[v][l][mode] is the maximum number of input
// characters mode can encode at version v and level l. It is computed
// once at init time from dataInfo rather than hand-transcribed, per
// the encoding-length formulas ISO/IEC 18004 §7.4 defines.
var characterCapacities [41][4][3]int

func init() {
	for v := Version(1); v <= 40; v++ {
		for l := L; l <= H; l++ {
			for _, m := range []Mode{Numeric, Alphanumeric, Byte} {
				available := 8*dataCodewords(v, l) - headerBits(v, m)
				if available < 0 {
					available = 0
				}
				characterCapacities[v][l][m] = capacityFor(m, available)
			}
		}
	}
}

// capacityFor returns how many characters of mode m fit in available
// bits of payload, inverting the encoding-length formulas of §4.4/4.5.
func capacityFor(m Mode, available int) int {
	switch m {
	case Numeric:
		groups, rem := available/10, available%10
		n := 3 * groups
		switch {
		case rem >= 7:
			n += 2
		case rem >= 4:
			n += 1
		}
		return n
	case Alphanumeric:
		pairs, rem := available/11, available%11
		n := 2 * pairs
		if rem >= 6 {
			n++
		}
		return n
	case Byte:
		return available / 8
	default:
		panic("qr: invalid mode")
	}
}

// capacity returns the maximum number of mode-m characters a symbol
// of version v and level l can carry.
func capacity(v Version, l Level, m Mode) int { return characterCapacities[v][l][m] }
