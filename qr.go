// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr reads QR symbols given as text.

A symbol is a square of text rows, one byte per module.  Load turns
the rows into a Symbol, deriving the version from the size and
reading the mask selector.  Unmask removes the data mask, Header
walks the lower right corner of the symbol to read the encoding mode
indicator, the length field and the first header characters, and
PlanRender computes the geometry for displaying the symbol in a
viewport.

This is a structural reader: it does not correct errors, skip
function patterns or decode the full data stream.
*/
package qr // import "github.com/unixdj/qrwind"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrwind/coding"
)

var (
	ErrNotSquare = errors.New("qr: symbol is not square")
	ErrDimension = errors.New("qr: invalid symbol dimension")
)

// A FormatError describes symbol text that cannot be loaded.
type FormatError struct {
	Err  error // ErrNotSquare or ErrDimension
	Row  int   // offending row, or -1
	Size int   // number of rows
	Len  int   // length of the offending row
}

func (e *FormatError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d is %d modules long, want %d",
			e.Err, e.Row+1, e.Len, e.Size)
	}
	return fmt.Sprintf("%v: %d modules on a side", e.Err, e.Size)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DefaultDark is the default dark module marker.
const DefaultDark = 'B'

// Options control loading and header decoding.  The zero value, as
// well as a nil *Options, selects the defaults.
type Options struct {
	// Dark is the byte marking a dark module; other bytes mark
	// light modules.  Zero means DefaultDark.
	Dark byte

	// Charset decodes header characters into text.  Nil means
	// ISO 8859-1, the QR byte mode default; use encoding.Nop to
	// keep the bytes as they are.
	Charset encoding.Encoding
}

func (o *Options) dark() byte {
	if o == nil || o.Dark == 0 {
		return DefaultDark
	}
	return o.Dark
}

func (o *Options) charset() encoding.Encoding {
	if o == nil || o.Charset == nil {
		return charmap.ISO8859_1
	}
	return o.Charset
}

// A Symbol is a loaded QR symbol.
type Symbol struct {
	*coding.Code
	Version  coding.Version // derived from Code.Size
	Selector int            // mask selector as loaded
	Mask     int            // effective mask index, Selector^coding.FormatMask
	Masked   bool           // whether the data mask is applied

	opt Options
}

// ReadRows reads symbol text from r, one row per line.  Carriage
// returns before newlines and trailing empty lines are dropped.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<16)
	for s.Scan() {
		rows = append(rows, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	for len(rows) != 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Load returns the symbol described by rows.  All rows must be as long
// as the number of rows, and the size must belong to a QR version.
// The symbol is returned as stored, with the data mask applied.
func Load(rows []string, opt *Options) (*Symbol, error) {
	siz := len(rows)
	for i, r := range rows {
		if len(r) != siz {
			return nil, &FormatError{ErrNotSquare, i, siz, len(r)}
		}
	}
	v, err := coding.VersionOf(siz)
	if err != nil {
		return nil, &FormatError{ErrDimension, -1, siz, siz}
	}
	c, err := coding.NewCode(v)
	if err != nil {
		return nil, err
	}
	dark := opt.dark()
	for y, r := range rows {
		row := c.Bitmap[y*c.Stride:]
		for x := 0; x < siz; x++ {
			if r[x] == dark {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return FromCode(c, opt)
}

// Unmask applies the data mask to s in place, toggling s.Masked.
func (s *Symbol) Unmask() {
	s.Code.Unmask()
	s.Masked = !s.Masked
}

// A Header holds the header fields read from a symbol and the header
// characters decoded as text.
type Header struct {
	coding.Header
	Text string
}

// Header reads the header from s in its current state; call Unmask
// first.  Traversal errors are *coding.BoundsError values.
func (s *Symbol) Header() (*Header, error) {
	h, err := coding.DecodeHeader(s.Code)
	if err != nil {
		return nil, err
	}
	t, err := s.opt.charset().NewDecoder().Bytes(h.Data[:])
	if err != nil {
		return nil, fmt.Errorf("qr: header text: %w", err)
	}
	return &Header{*h, string(t)}, nil
}

// Decode loads the symbol, removes the data mask and reads the
// header.  If the header cannot be read, Decode returns the unmasked
// symbol along with the error; it can still be rendered.
func Decode(rows []string, opt *Options) (*Symbol, *Header, error) {
	s, err := Load(rows, opt)
	if err != nil {
		return nil, nil, err
	}
	s.Unmask()
	h, err := s.Header()
	return s, h, err
}

// Rows returns the text rows describing s, dark modules as dark and
// light ones as light.  It is the inverse of Load.
func (s *Symbol) Rows(dark, light byte) []string {
	rows := make([]string, s.Size)
	b := make([]byte, s.Size)
	for y := range rows {
		for x := range b {
			b[x] = light
			if s.Black(x, y) {
				b[x] = dark
			}
		}
		rows[y] = string(b)
	}
	return rows
}

// FromCode wraps c, a grid holding the data mask, as a Symbol.
func FromCode(c *coding.Code, opt *Options) (*Symbol, error) {
	v, err := coding.VersionOf(c.Size)
	if err != nil {
		return nil, &FormatError{ErrDimension, -1, c.Size, c.Size}
	}
	s := &Symbol{Code: c, Version: v, Masked: true}
	if opt != nil {
		s.opt = *opt
	}
	if s.Selector, err = coding.MaskSelector(c); err != nil {
		return nil, err
	}
	s.Mask = s.Selector ^ coding.FormatMask
	return s, nil
}
