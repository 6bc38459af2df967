// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR symbol grid details: the
// module bitmap, the data mask and the winding traversal used to read
// header fields off a grid.
package coding // import "github.com/unixdj/qrwind/coding"

import (
	"bytes"
	"errors"
	"math/bits"
	"strconv"
)

var ErrVersion = errors.New("qr: invalid version")

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is in the range [MinVersion, MaxVersion].
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a version v symbol.
func (v Version) Size() int { return int(v)*4 + 17 }

// VersionOf returns the version of a symbol with siz modules on a
// side.  It returns ErrVersion if no version has that size.
func VersionOf(siz int) (Version, error) {
	if siz < 17 || (siz-17)&3 != 0 {
		return 0, ErrVersion
	}
	v := Version((siz - 17) >> 2)
	if !v.IsValid() {
		return 0, ErrVersion
	}
	return v, nil
}

// A Module is one cell of a symbol grid.
type Module byte

const (
	Light Module = iota // light module, bit 0
	Dark                // dark module, bit 1
)

func (m Module) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// A Code is a square module grid.
type Code struct {
	Bitmap []byte // 1 is dark, 0 is light
	Size   int    // number of modules on a side
	Stride int    // number of bytes per row
}

// NewCode returns an all-light grid for version v.
func NewCode(v Version) (*Code, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	siz := v.Size()
	stride := (siz + 7) >> 3
	return &Code{Bitmap: make([]byte, siz*stride), Size: siz, Stride: stride}, nil
}

// Version returns the version derived from c.Size.
func (c *Code) Version() Version {
	v, _ := VersionOf(c.Size)
	return v
}

// In reports whether (x, y) lies inside the grid.
func (c *Code) In(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size
}

// Black returns true if the module at (x,y) is dark.
// Modules outside the grid are light.
func (c *Code) Black(x, y int) bool {
	return c.In(x, y) && c.Bitmap[y*c.Stride+x>>3]&(0x80>>(x&7)) != 0
}

// At returns the module at (x,y).
func (c *Code) At(x, y int) Module {
	if c.Black(x, y) {
		return Dark
	}
	return Light
}

// Set sets the module at (x,y).  Set panics if (x,y) is outside the grid.
func (c *Code) Set(x, y int, m Module) {
	if !c.In(x, y) {
		panic("qr: module out of range")
	}
	b := &c.Bitmap[y*c.Stride+x>>3]
	bit := byte(0x80) >> (x & 7)
	if m == Dark {
		*b |= bit
	} else {
		*b &^= bit
	}
}

// Flip inverts the module at (x,y).
func (c *Code) Flip(x, y int) {
	c.Bitmap[y*c.Stride+x>>3] ^= 0x80 >> (x & 7)
}

// Clone returns a deep copy of c.
func (c *Code) Clone() *Code {
	cc := *c
	cc.Bitmap = bytes.Clone(c.Bitmap)
	return &cc
}

// Equal reports whether c and d hold the same modules.
func (c *Code) Equal(d *Code) bool {
	return c.Size == d.Size && c.Stride == d.Stride &&
		bytes.Equal(c.Bitmap, d.Bitmap)
}

// Dark returns the number of dark modules in c.
func (c *Code) Dark() int {
	n := 0
	for _, b := range c.Bitmap {
		n += bits.OnesCount8(b)
	}
	return n
}
