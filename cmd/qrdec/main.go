// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrdec decodes a QR code image given as a PNG or PBM file.
//
// The image must contain a single upright symbol on a white
// background, one or more image pixels per module.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrdec"
	"github.com/unixdj/qrdec/coding"
)

var g = struct {
	charset string // byte mode charset hint
	raw     bool   // print text only
	meta    bool   // print metadata
}{}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	getopt.PrintUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrdec version 0.1.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("[file]")
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.charset, "charset", 'c',
		"assume the given charset for byte mode segments "+
			"without an ECI designator", "name")
	getopt.Flag(&g.raw, 'r', "print decoded text only")
	getopt.Flag(&g.meta, 'v', "print symbol metadata before the text")
	getopt.Parse()
	if !g.raw && !g.meta {
		g.meta = isatty.IsTerminal(uintptr(syscall.Stdout))
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	r := os.Stdin
	if args := getopt.Args(); len(args) > 1 {
		usage()
	} else if len(args) == 1 && args[0] != "-" {
		var err error
		if r, err = os.Open(args[0]); err != nil {
			log.Fatalln(err)
		}
		defer r.Close()
	}

	pix, err := readImage(bufio.NewReader(r))
	if err != nil {
		log.Fatalln(err)
	}
	m, err := sample(pix)
	if err != nil {
		log.Fatalln(err)
	}
	res, err := qrdec.Decode(m, &qrdec.Options{Charset: g.charset})
	if err != nil {
		log.Fatalln(err)
	}

	if g.meta {
		fmt.Printf("version %v, level %v, mask %d", res.Version,
			res.Level, res.Mask)
		if res.Mirrored {
			fmt.Print(", mirrored")
		}
		if res.Corrected != 0 {
			fmt.Printf(", %d codewords corrected", res.Corrected)
		}
		if res.Sequence >= 0 {
			fmt.Printf(", symbol %d of %d, parity %#02x",
				res.Sequence>>4+1, res.Sequence&0x0f+1,
				res.Parity)
		}
		fmt.Println()
	}
	fmt.Println(res.Text)
}

// A pixmap is a black-and-white raster image.
type pixmap struct {
	w, h int
	pix  []bool // true is black, row-major
}

func (p *pixmap) black(x, y int) bool { return p.pix[y*p.w+x] }

// readImage reads a PBM (P1 or P4) or any image registered with the
// image package, thresholding colours to black and white.
func readImage(r *bufio.Reader) (*pixmap, error) {
	magic, err := r.Peek(2)
	if err != nil {
		return nil, err
	}
	if magic[0] == 'P' && (magic[1] == '1' || magic[1] == '4') {
		return readPBM(r)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	p := &pixmap{w: b.Dx(), h: b.Dy()}
	p.pix = make([]bool, p.w*p.h)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			p.pix[i] = cr+cg+cb < 3*0x8000
			i++
		}
	}
	return p, nil
}

var errImage = errors.New("qrdec: unsupported or malformed image")

// readPBM reads a netpbm bitmap, plain (P1) or raw (P4).
func readPBM(r *bufio.Reader) (*pixmap, error) {
	var magic string
	var w, h int
	if _, err := fmt.Fscan(r, &magic, &w, &h); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 || w > 1<<14 || h > 1<<14 {
		return nil, errImage
	}
	p := &pixmap{w: w, h: h, pix: make([]bool, w*h)}
	if magic == "P1" {
		for i := 0; i < len(p.pix); {
			c, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			switch c {
			case '0', '1':
				p.pix[i] = c == '1'
				i++
			case ' ', '\t', '\r', '\n':
			case '#':
				if _, err = r.ReadString('\n'); err != nil {
					return nil, err
				}
			default:
				return nil, errImage
			}
		}
		return p, nil
	}
	// P4: one whitespace byte after the header, then packed rows
	if _, err := r.ReadByte(); err != nil {
		return nil, err
	}
	row := make([]byte, (w+7)/8)
	for y := 0; y < h; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, err
		}
		for x := 0; x < w; x++ {
			p.pix[y*w+x] = row[x/8]&(0x80>>(x&7)) != 0
		}
	}
	return p, nil
}

// sample crops the quiet zone, derives the module size from the
// width of the top left position box, and samples one module per
// grid cell.
func sample(p *pixmap) (*coding.Matrix, error) {
	// bounding box of black pixels
	minX, minY, maxX, maxY := p.w, p.h, -1, -1
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			if p.black(x, y) {
				minX = min(minX, x)
				minY = min(minY, y)
				maxX = max(maxX, x)
				maxY = max(maxY, y)
			}
		}
	}
	w, h := maxX-minX+1, maxY-minY+1
	if maxX < 0 || w != h {
		return nil, errImage
	}
	// the top left position box is 7 modules wide
	run := 0
	for minX+run <= maxX && p.black(minX+run, minY) {
		run++
	}
	if run%7 != 0 {
		return nil, errImage
	}
	scale := run / 7
	size := w / scale
	if size*scale != w || (size-17)%4 != 0 {
		return nil, errImage
	}
	m := coding.NewMatrix(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// sample the centre of the module
			if p.black(minX+x*scale+scale/2, minY+y*scale+scale/2) {
				m.Set(x, y)
			}
		}
	}
	return m, nil
}
