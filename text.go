// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// Border is the default quiet zone width in modules for text output.
const Border = 4

// halfBlocks is indexed by 2*dark(x,y)+dark(x,y+1).  Light modules
// are drawn, for terminals with light text on a dark background.
var halfBlocks = [4]string{"█", "▀", "▄", " "}

// EncodeText writes s to w using Unicode half blocks, two rows of
// modules per line, surrounded by border light modules.  If reverse
// is set, dark modules are drawn instead.
func (s *Symbol) EncodeText(w io.Writer, border int, reverse bool) error {
	var b strings.Builder
	rev := 0
	if reverse {
		rev = 3
	}
	for y := -border; y < s.Size+border; y += 2 {
		for x := -border; x < s.Size+border; x++ {
			n := 0
			if s.Black(x, y) {
				n = 2
			}
			if y+1 < s.Size+border && s.Black(x, y+1) {
				n++
			}
			b.WriteString(halfBlocks[n^rev])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// EncodeASCII writes s to w with two characters per module, '#' for
// dark and ' ' for light, surrounded by border light modules.  If
// reverse is set, the characters are swapped.
func (s *Symbol) EncodeASCII(w io.Writer, border int, reverse bool) error {
	pix := s.Size + 2*border
	b := make([]byte, (pix*2+1)*pix)
	dark, light := byte('#'), byte(' ')
	if reverse {
		dark, light = light, dark
	}
	i := 0
	for y := -border; y < s.Size+border; y++ {
		for x := -border; x < s.Size+border; x++ {
			p := light
			if s.Black(x, y) {
				p = dark
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

// String returns s drawn with half blocks and the default border.
func (s *Symbol) String() string {
	var b strings.Builder
	s.EncodeText(&b, Border, false)
	return b.String()
}
