// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrwind"
	"github.com/unixdj/qrwind/coding"
)

// symbolRows returns the rows of a masked version 1 symbol whose
// header holds text in byte mode.
func symbolRows(text string) []string {
	c, err := coding.NewCode(1)
	if err != nil {
		log.Fatalln(err)
	}
	h := &coding.Header{Indicator: coding.ByteMode, Length: byte(len(text))}
	copy(h.Data[:], text)
	if err := coding.EncodeHeader(c, h); err != nil {
		log.Fatalln(err)
	}
	c.Unmask()
	s, err := qr.FromCode(c, nil)
	if err != nil {
		log.Fatalln(err)
	}
	return s.Rows(qr.DefaultDark, '.')
}

func ExampleDecode() {
	s, h, err := qr.Decode(symbolRows("HELLO WORLD!"), nil)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %v, %s mode, %d bytes: %s\n",
		s.Version, h.Mode(), h.Length, h.Text)
	// Output:
	// version 1, byte mode, 12 bytes: HELLO WORLD!
}

func ExamplePlanRender() {
	s, err := qr.Load(symbolRows("hi"), nil)
	if err != nil {
		log.Fatalln(err)
	}
	p, err := qr.PlanRender(s.Code, 512, 512)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("scale %d, block %v\n", p.Scale, p.Block())
	// Output:
	// scale 22, block (25,25)-(487,487)
}
