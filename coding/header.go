// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// HeaderPath is the winding path over the header characters following
// the length field.  It snakes through four and a half column pairs,
// turning at the upper edge of the data area (two modules above the
// start of the first character) and at the lower edge of the symbol.
// Reserved areas are not skipped.
var HeaderPath = [HeaderLen]Winding{
	{0, 0, Up8},
	{0, -2, Left8},
	{-2, 2, Down8},
	{0, 4, Down8},
	{0, 4, LeftUp8},
	{-2, -4, Up8},
	{0, -4, Up8},
	{0, -2, Left8},
	{-2, 2, Down8},
	{0, 4, Down8},
	{0, 4, LeftUp8},
	{-2, -4, Up8},
}

// HeaderLen is the number of header characters read by DecodeHeader.
const HeaderLen = 12

// A Header holds the fields read from the lower right corner of a
// symbol.
type Header struct {
	Indicator byte            // 4 bit encoding mode indicator
	Length    byte            // 8 bit length field
	Data      [HeaderLen]byte // header characters
}

// Indicator values.
const (
	Terminator   = 0
	NumericMode  = 1
	AlphaMode    = 2
	StructAppend = 3
	ByteMode     = 4
	FNC1First    = 5
	ECIMode      = 7
	KanjiMode    = 8
	FNC1Second   = 9
)

var modeNames = [16]string{
	Terminator:   "terminator",
	NumericMode:  "numeric",
	AlphaMode:    "alphanumeric",
	StructAppend: "structured-append",
	ByteMode:     "byte",
	FNC1First:    "fnc1-first",
	ECIMode:      "eci",
	KanjiMode:    "kanji",
	FNC1Second:   "fnc1-second",
}

// Mode returns the name of the encoding mode indicated by
// h.Indicator.
func (h *Header) Mode() string {
	if s := modeNames[h.Indicator&0xf]; s != "" {
		return s
	}
	return "mode(" + strconv.Itoa(int(h.Indicator)) + ")"
}

// Payload returns the header characters covered by the length field.
func (h *Header) Payload() []byte {
	return h.Data[:min(int(h.Length), HeaderLen)]
}

// DecodeHeader reads the encoding mode indicator, the length field
// and HeaderLen characters from c.  The cursor starts two modules in
// from the lower right corner; the indicator is read upwards, the
// cursor moves up 4 modules, the length is read, the cursor moves up
// 4 more modules and HeaderPath is walked.  Any module outside c
// aborts the decode with a *BoundsError.
func DecodeHeader(c *Code) (*Header, error) {
	cur := Cursor{c.Size - 2, c.Size - 2}
	var h Header
	v, err := c.ReadField(cur.X, cur.Y, Up4)
	if err != nil {
		return nil, err
	}
	h.Indicator = byte(v)
	cur.Move(0, -4)
	if v, err = c.ReadField(cur.X, cur.Y, Up8); err != nil {
		return nil, err
	}
	h.Length = byte(v)
	cur.Move(0, -4)
	var buf [HeaderLen]uint32
	chars, err := c.Walk(buf[:0], &cur, HeaderPath[:])
	if err != nil {
		return nil, err
	}
	for i, v := range chars {
		h.Data[i] = byte(v)
	}
	return &h, nil
}

// EncodeHeader places h in c along the path read by DecodeHeader.
func EncodeHeader(c *Code, h *Header) error {
	cur := Cursor{c.Size - 2, c.Size - 2}
	if err := c.WriteField(cur.X, cur.Y, Up4, uint32(h.Indicator)); err != nil {
		return err
	}
	cur.Move(0, -4)
	if err := c.WriteField(cur.X, cur.Y, Up8, uint32(h.Length)); err != nil {
		return err
	}
	cur.Move(0, -4)
	for i, w := range HeaderPath {
		cur.Move(w.DX, w.DY)
		if err := c.WriteField(cur.X, cur.Y, w.Shape, uint32(h.Data[i])); err != nil {
			return err
		}
	}
	return nil
}
