// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Masked reports whether the module at row y, column x is inverted by
// the data mask.  The predicate depends on the coordinates only.  Inverted
// modules, two rows per line, repeat every 6 rows and columns:
//
//	███▀▀▀███▀▀▀
//	█▀▄▀█ █▀▄▀█
//	█ ▀▀▄██ ▀▀▄█
func Masked(x, y int) bool {
	p := y * x
	return (p%3+p)&1 == 0
}

// Unmask applies the data mask to c in place.  The mask is an
// involution: applying it twice restores the original grid.
func (c *Code) Unmask() {
	siz := c.Size
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*c.Stride : (y+1)*c.Stride]
		for x := 0; x < siz; x++ {
			if Masked(x, y) {
				row[x>>3] ^= 0x80 >> (x & 7)
			}
		}
	}
}

// FormatMask is XORed with the mask selector to produce the mask index.
const FormatMask = 0b10101

// formatRow and selectorBits locate the mask selector: row 8,
// columns 0 to 4, column 0 most significant.
const (
	formatRow    = 8
	selectorBits = 5
)

var selectorShape = [selectorBits]Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}

// MaskSelector returns the 5 bit mask selector stored in c.
func MaskSelector(c *Code) (int, error) {
	v, err := c.readBits(0, formatRow, selectorShape[:])
	return int(v), err
}

// MaskIndex returns the effective mask index, the mask selector XOR
// FormatMask.
func MaskIndex(c *Code) (int, error) {
	v, err := MaskSelector(c)
	if err != nil {
		return 0, err
	}
	return v ^ FormatMask, nil
}
