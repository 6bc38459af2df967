// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

var ErrArgs = errors.New("qr: invalid arguments")

// EncodePBM writes a Portable Bit Map image of the viewport to w, for
// use with netpbm.
func (p *RenderPlan) EncodePBM(w io.Writer) error {
	if p.Scale <= 0 || p.Viewport.X <= 0 || p.Viewport.Y <= 0 ||
		len(p.Colors) != p.Size*p.Size {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	width, height := p.Viewport.X, p.Viewport.Y
	if _, err := b.WriteString("P4\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(height) + "\n"); err != nil {
		return err
	}
	row := make([]byte, (width+7)/8)
	blk := p.Block()

	// Rows outside the block are all white, or all black if reversed.
	var white byte
	if p.Reverse {
		white = 0xff
	}
	for i := range row {
		row[i] = white
	}
	if pad := width & 7; pad != 0 {
		row[len(row)-1] &= 0xff << (8 - pad)
	}
	for y := 0; y < blk.Min.Y; y++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}

	// Block rows.  Within a module row only the outline rows differ,
	// so rows are rebuilt only where the pixels change.
	for y := blk.Min.Y; y < blk.Max.Y; y++ {
		if y == blk.Min.Y || y == blk.Min.Y+1 || y == blk.Max.Y-1 ||
			(y-blk.Min.Y)%p.Scale == 0 {
			pbmRow(row, p, y)
		}
		if _, err := b.Write(row); err != nil {
			return err
		}
	}

	for i := range row {
		row[i] = white
	}
	if pad := width & 7; pad != 0 {
		row[len(row)-1] &= 0xff << (8 - pad)
	}
	for y := blk.Max.Y; y < height; y++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow encodes viewport row y in PBM format: 1 is black, the most
// significant bit first, padding bits zero.
func pbmRow(row []byte, p *RenderPlan, y int) {
	for i := range row {
		row[i] = 0
	}
	for x := 0; x < p.Viewport.X; x++ {
		if p.gray(x, y).Y == 0 {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}
