// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

/*
Winding traversal

Codeword bits are placed in column pairs, right to left, snaking up
and down the symbol and reversing direction at the edges.  A Shape
lists the modules of one field relative to an anchor, the top left
module of the current column pair.  A Winding moves the cursor and
then reads a field with its Shape.  Sampling order, 0 being the most
significant bit:

	Up4   Up8   Down8   Left8     LeftUp8
	3 2   7 6   1 0     5 4 3 2   7 6 1 0
	1 0   5 4   3 2     7 6 1 0   5 4 3 2
	      3 2   5 4
	      1 0   7 6

Left8 turns at the upper edge: it finishes an upward column pair and
continues down the pair to the left.  LeftUp8 turns at the lower
edge.
*/

// An Offset is a module position relative to an anchor.
type Offset struct{ DX, DY int }

// A Shape is a winding shape.
type Shape uint8

// Winding shapes.
const (
	Up4     Shape = iota // 4 bits upwards
	Up8                  // 8 bits upwards
	Down8                // 8 bits downwards
	Left8                // 8 bits, upwards then down the pair to the left
	LeftUp8              // 8 bits, downwards then up the pair to the left
	nshapes
)

var shapes = [nshapes]struct {
	name string
	n    int
	off  [8]Offset
}{
	Up4: {"up-4", 4, [8]Offset{{1, 1}, {0, 1}, {1, 0}, {0, 0}}},
	Up8: {"up-8", 8, [8]Offset{
		{1, 3}, {0, 3}, {1, 2}, {0, 2}, {1, 1}, {0, 1}, {1, 0}, {0, 0},
	}},
	Down8: {"down-8", 8, [8]Offset{
		{1, 0}, {0, 0}, {1, 1}, {0, 1}, {1, 2}, {0, 2}, {1, 3}, {0, 3},
	}},
	Left8: {"left-8", 8, [8]Offset{
		{1, 1}, {0, 1}, {1, 0}, {0, 0}, {-1, 0}, {-2, 0}, {-1, 1}, {-2, 1},
	}},
	LeftUp8: {"left-up-8", 8, [8]Offset{
		{1, 0}, {0, 0}, {1, 1}, {0, 1}, {-1, 1}, {-2, 1}, {-1, 0}, {-2, 0},
	}},
}

func (s Shape) String() string {
	if s < nshapes {
		return shapes[s].name
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Offsets returns the offsets of s in bit order, or nil if s is
// invalid.  The returned slice must not be modified.
func (s Shape) Offsets() []Offset {
	if s >= nshapes {
		return nil
	}
	sh := &shapes[s]
	return sh.off[:sh.n]
}

// Bits returns the width of fields read with s.
func (s Shape) Bits() int { return len(s.Offsets()) }

// BoundsError reports a module position outside the grid.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("qr: module (%d, %d) out of bounds", e.X, e.Y)
}

// check returns a BoundsError for the first offset placing a module
// outside c.
func (c *Code) check(x, y int, off []Offset) error {
	for _, o := range off {
		if !c.In(x+o.DX, y+o.DY) {
			return &BoundsError{x + o.DX, y + o.DY}
		}
	}
	return nil
}

// readBits reads the modules at (x,y)+off, most significant bit first.
func (c *Code) readBits(x, y int, off []Offset) (uint32, error) {
	if err := c.check(x, y, off); err != nil {
		return 0, err
	}
	var v uint32
	for _, o := range off {
		v <<= 1
		if c.Black(x+o.DX, y+o.DY) {
			v |= 1
		}
	}
	return v, nil
}

// ReadField returns the field read with shape s anchored at (x,y),
// dark modules being 1 bits.  If any module of the field lies outside
// c, ReadField returns a *BoundsError and reads nothing.
func (c *Code) ReadField(x, y int, s Shape) (uint32, error) {
	off := s.Offsets()
	if off == nil {
		return 0, fmt.Errorf("qr: invalid %v", s)
	}
	return c.readBits(x, y, off)
}

// WriteField places the low s.Bits() bits of v with shape s anchored
// at (x,y).  It is the inverse of ReadField.
func (c *Code) WriteField(x, y int, s Shape, v uint32) error {
	off := s.Offsets()
	if off == nil {
		return fmt.Errorf("qr: invalid %v", s)
	}
	if err := c.check(x, y, off); err != nil {
		return err
	}
	v <<= 32 - len(off)
	for _, o := range off {
		m := Light
		if int32(v) < 0 {
			m = Dark
		}
		c.Set(x+o.DX, y+o.DY, m)
		v <<= 1
	}
	return nil
}

// A Cursor is a position on a grid.
type Cursor struct{ X, Y int }

// Move displaces the cursor by (dx, dy).
func (cur *Cursor) Move(dx, dy int) {
	cur.X += dx
	cur.Y += dy
}

// A Winding is one step of a winding path: the cursor is displaced
// by (DX, DY), then a field is read with Shape.
type Winding struct {
	DX, DY int
	Shape  Shape
}

// Step moves cur by w's displacement and reads a field at the new
// position.  The cursor is moved even if the read fails.
func (c *Code) Step(cur *Cursor, w Winding) (uint32, error) {
	cur.Move(w.DX, w.DY)
	return c.ReadField(cur.X, cur.Y, w.Shape)
}

// Walk reads one field per step of path starting at cur, appending
// the fields to dst.  On error the fields read so far are returned
// along with the error.
func (c *Code) Walk(dst []uint32, cur *Cursor, path []Winding) ([]uint32, error) {
	for _, w := range path {
		v, err := c.Step(cur, w)
		if err != nil {
			return dst, err
		}
		dst = append(dst, v)
	}
	return dst, nil
}
