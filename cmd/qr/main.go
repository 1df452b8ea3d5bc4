// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr encodes a string argument as a QR Code symbol and writes
// it to stdout or a file, as PNG, PBM, or UTF-8 terminal blocks.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/corebit/qr"
	"github.com/corebit/qr/coding"
)

var g struct {
	scale  uint64
	border uint64
	out    string
	latin1 bool
	format string
	level  string
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", getopt.CommandLine.Program(),
		getopt.CommandLine.UsageLine(), "[string ...]")
	os.Exit(2)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(&g.latin1, '1', "transcode byte-mode segments to Latin-1")
	getopt.Flag(&g.out, 'o', `output file, or "-" for standard output`, "file")
	lev := getopt.Enum('l', []string{"L", "M", "Q", "H"},
		"error-correction level, lowest to highest", "L|M|Q|H")
	scale := getopt.Unsigned('s', 8, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12},
		"pixels per module, for png", "scale")
	border := getopt.Unsigned('m', 4, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 1 << 8},
		"quiet zone modules, for png", "margin")
	ff := getopt.Enum('t', []string{"png", "pbm", "utf8"},
		"output format: png, pbm or utf8; default utf8 if standard "+
			"output is a terminal and no -o is given, else png", "type")

	getopt.Parse()
	g.level = *lev
	if g.level == "" {
		g.level = "M"
	}
	g.scale = *scale
	g.border = *border
	g.format = *ff
	if g.format == "" {
		if g.out == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			g.format = "utf8"
		} else {
			g.format = "png"
		}
	}
	if g.out == "-" {
		g.out = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln("qr:", err)
		}
		s = strings.TrimSuffix(b.String(), "\n")
	}

	os.Exit(run(s))
}

func run(input string) int {
	level, err := parseLevel(g.level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qr:", err)
		return 2
	}

	var charset qr.Charset
	if g.latin1 {
		charset = qr.Latin1
	}

	m, err := qr.GenerateWithCharset(input, level, charset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qr:", err)
		if errors.Is(err, coding.ErrPayloadTooLarge) {
			return 1
		}
		return 2
	}

	w := os.Stdout
	if g.out != "" {
		w, err = os.Create(g.out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qr:", err)
			return 3
		}
		defer w.Close()
	}
	bw := bufio.NewWriter(w)

	switch g.format {
	case "png":
		err = qr.WritePNG(bw, m, int(g.scale), int(g.border))
	case "pbm":
		err = qr.WritePBM(bw, m)
	case "utf8":
		err = writeUTF8(bw, m)
	default:
		fmt.Fprintln(os.Stderr, "qr: invalid output format:", g.format)
		return 2
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "qr:", err)
		return 3
	}
	return 0
}

func parseLevel(s string) (coding.Level, error) {
	switch s {
	case "L":
		return coding.L, nil
	case "M":
		return coding.M, nil
	case "Q":
		return coding.Q, nil
	case "H":
		return coding.H, nil
	default:
		return 0, coding.ErrInvalidLevel
	}
}
