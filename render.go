// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrwind/coding"
)

var ErrViewport = errors.New("qr: viewport too small")

var (
	whiteColor = color.Gray{0xFF}
	blackColor = color.Gray{0x00}
)

// A RenderPlan maps a symbol onto a viewport.  Each module becomes a
// square of Scale pixels, the block of modules is centered, and the
// outermost pixels of the block are black if Outline is set.
//
// A RenderPlan implements image.Image covering the whole viewport,
// pixels outside the block being white.
type RenderPlan struct {
	Viewport image.Point  // viewport size in pixels
	Scale    int          // pixels per module on a side
	Offset   image.Point  // top left corner of the block
	Size     int          // modules per side
	Colors   []color.Gray // module colours, row by row
	Outline  bool         // black frame around the block
	Reverse  bool         // swap black and white
}

// PlanRender returns the plan for displaying c in a width×height
// viewport.  The scale is the largest that fits min(width, height)
// with two pixels to spare per module; if it is not positive,
// PlanRender returns ErrViewport.
func PlanRender(c *coding.Code, width, height int) (*RenderPlan, error) {
	if c.Size <= 0 || width <= 0 || height <= 0 {
		return nil, ErrViewport
	}
	scale := min(width, height)/c.Size - 2
	if scale <= 0 {
		return nil, ErrViewport
	}
	p := &RenderPlan{
		Viewport: image.Pt(width, height),
		Scale:    scale,
		Offset: image.Pt((width-scale*c.Size)/2,
			(height-scale*c.Size)/2),
		Size:    c.Size,
		Colors:  make([]color.Gray, c.Size*c.Size),
		Outline: true,
	}
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			col := whiteColor
			if c.Black(x, y) {
				col = blackColor
			}
			p.Colors[y*c.Size+x] = col
		}
	}
	return p, nil
}

// Module returns the colour of the module at (x,y).
func (p *RenderPlan) Module(x, y int) color.Gray {
	return p.Colors[y*p.Size+x]
}

// Block returns the rectangle covered by the modules.
func (p *RenderPlan) Block() image.Rectangle {
	d := p.Scale * p.Size
	return image.Rectangle{p.Offset, p.Offset.Add(image.Pt(d, d))}
}

func (p *RenderPlan) Bounds() image.Rectangle {
	return image.Rectangle{Max: p.Viewport}
}

func (p *RenderPlan) ColorModel() color.Model { return color.GrayModel }

func (p *RenderPlan) At(x, y int) color.Color { return p.gray(x, y) }

// gray returns the colour of the viewport pixel at (x,y).
func (p *RenderPlan) gray(x, y int) color.Gray {
	c := p.plain(x, y)
	if p.Reverse {
		c.Y = ^c.Y
	}
	return c
}

func (p *RenderPlan) plain(x, y int) color.Gray {
	b := p.Block()
	if !image.Pt(x, y).In(b) {
		return whiteColor
	}
	if p.Outline && (x == b.Min.X || y == b.Min.Y ||
		x == b.Max.X-1 || y == b.Max.Y-1) {
		return blackColor
	}
	return p.Module((x-b.Min.X)/p.Scale, (y-b.Min.Y)/p.Scale)
}

// RGB32 pixel values written by Blit.
const (
	White32 uint32 = 0xFFFFFFFF
	Black32 uint32 = 0x00000000
)

// Blit writes the viewport into buf, row by row, one 32 bit pixel per
// element, as taken by a window surface.  buf must hold at least
// Viewport.X*Viewport.Y pixels.
func (p *RenderPlan) Blit(buf []uint32) error {
	w, h := p.Viewport.X, p.Viewport.Y
	if len(buf) < w*h {
		return ErrArgs
	}
	for y := 0; y < h; y++ {
		row := buf[y*w : (y+1)*w]
		for x := range row {
			row[x] = White32
			if p.gray(x, y).Y == 0 {
				row[x] = Black32
			}
		}
	}
	return nil
}
