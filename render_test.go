// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/unixdj/qrwind/coding"
)

// testCode returns a version 1 grid with (1,0) and (20,20) dark.
func testCode(t *testing.T) *coding.Code {
	t.Helper()
	c, err := coding.NewCode(1)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(1, 0, coding.Dark)
	c.Set(20, 20, coding.Dark)
	return c
}

func TestPlanRender(t *testing.T) {
	p, err := PlanRender(testCode(t), 512, 512)
	if err != nil {
		t.Fatal(err)
	}
	if p.Scale != 22 || p.Offset != image.Pt(25, 25) || p.Size != 21 {
		t.Errorf("scale %d, offset %v, size %d; want 22, (25,25), 21",
			p.Scale, p.Offset, p.Size)
	}
	if b := p.Block(); b != image.Rect(25, 25, 487, 487) {
		t.Errorf("Block() = %v, want (25,25)-(487,487)", b)
	}
	if p.Module(1, 0) != blackColor || p.Module(0, 0) != whiteColor ||
		p.Module(20, 20) != blackColor {
		t.Error("wrong module colours")
	}

	p, err = PlanRender(testCode(t), 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	// 480/21-2 = 20; (640-420)/2, (480-420)/2
	if p.Scale != 20 || p.Offset != image.Pt(110, 30) {
		t.Errorf("640×480: scale %d, offset %v", p.Scale, p.Offset)
	}
}

func TestPlanRenderViewport(t *testing.T) {
	c := testCode(t)
	for _, vp := range []image.Point{{62, 512}, {512, 42}, {0, 0}, {-1, 100}} {
		if _, err := PlanRender(c, vp.X, vp.Y); !errors.Is(err, ErrViewport) {
			t.Errorf("PlanRender(%v): err = %v, want ErrViewport", vp, err)
		}
	}
	if p, err := PlanRender(c, 63, 63); err != nil || p.Scale != 1 {
		t.Errorf("PlanRender(63×63) = %v, %v; want scale 1", p, err)
	}
}

func TestRenderPixels(t *testing.T) {
	p, err := PlanRender(testCode(t), 512, 512)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want color.Gray
	}{
		{0, 0, whiteColor},     // outside the block
		{24, 100, whiteColor},  // left of the block
		{25, 25, blackColor},   // outline corner
		{26, 300, whiteColor},  // right of the left outline
		{30, 30, whiteColor},   // module (0,0)
		{25, 40, blackColor},   // left outline
		{486, 300, blackColor}, // right outline
		{300, 486, blackColor}, // bottom outline
		{300, 26, whiteColor},  // below the top outline
		{50, 30, blackColor},   // module (1,0)
		{480, 480, blackColor}, // module (20,20)
		{487, 487, whiteColor}, // outside the block
	}
	for _, tt := range tests {
		if got := p.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	p.Outline = false
	if got := p.At(25, 25); got != whiteColor {
		t.Errorf("no outline: At(25, 25) = %v, want white", got)
	}
	p.Reverse = true
	if got := p.At(0, 0); got != blackColor {
		t.Errorf("reversed: At(0, 0) = %v, want black", got)
	}
	if got := p.At(50, 30); got != whiteColor {
		t.Errorf("reversed: At(50, 30) = %v, want white", got)
	}
	if b := p.Bounds(); b != image.Rect(0, 0, 512, 512) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestBlit(t *testing.T) {
	p, err := PlanRender(testCode(t), 100, 80)
	if err != nil {
		t.Fatal(err)
	}
	if p.Scale != 1 || p.Offset != image.Pt(39, 29) {
		t.Fatalf("scale %d, offset %v", p.Scale, p.Offset)
	}
	if err := p.Blit(make([]uint32, 100*80-1)); err != ErrArgs {
		t.Errorf("Blit(short buffer): err = %v, want ErrArgs", err)
	}
	buf := make([]uint32, 100*80)
	for i := range buf {
		buf[i] = 0x12345678
	}
	if err := p.Blit(buf); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 80; y++ {
		for x := 0; x < 100; x++ {
			want := White32
			if p.At(x, y) == blackColor {
				want = Black32
			}
			if got := buf[y*100+x]; got != want {
				t.Fatalf("pixel (%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
	if buf[29*100+39] != Black32 || buf[0] != White32 {
		t.Error("outline corner or background wrong")
	}
}

// readPBM decodes a P4 image.
func readPBM(t *testing.T, r io.Reader) (int, int, [][]bool) {
	t.Helper()
	br := bufio.NewReader(r)
	var w, h int
	if _, err := fmt.Fscanf(br, "P4\n%d %d\n", &w, &h); err != nil {
		t.Fatal(err)
	}
	stride := (w + 7) / 8
	pix := make([][]bool, h)
	row := make([]byte, stride)
	for y := range pix {
		if _, err := io.ReadFull(br, row); err != nil {
			t.Fatalf("row %d: %v", y, err)
		}
		pix[y] = make([]bool, w)
		for x := range pix[y] {
			pix[y][x] = row[x>>3]&(0x80>>(x&7)) != 0
		}
		if pad := w & 7; pad != 0 && row[stride-1]&(0xff>>pad) != 0 {
			t.Errorf("row %d: padding bits set", y)
		}
	}
	if n, _ := br.Read(row); n != 0 {
		t.Errorf("%d bytes of trailing data", n)
	}
	return w, h, pix
}

func TestEncodePBM(t *testing.T) {
	for _, vp := range []image.Point{{70, 67}, {100, 80}, {130, 130}} {
		for _, rev := range []bool{false, true} {
			p, err := PlanRender(testCode(t), vp.X, vp.Y)
			if err != nil {
				t.Fatal(err)
			}
			p.Reverse = rev
			var b bytes.Buffer
			if err := p.EncodePBM(&b); err != nil {
				t.Fatal(err)
			}
			w, h, pix := readPBM(t, &b)
			if w != vp.X || h != vp.Y {
				t.Fatalf("%v: PBM is %d×%d", vp, w, h)
			}
			for y := range pix {
				for x, black := range pix[y] {
					if want := p.At(x, y) == blackColor; black != want {
						t.Fatalf("%v reverse %v: pixel (%d, %d) black = %v",
							vp, rev, x, y, black)
					}
				}
			}
		}
	}
	if err := (&RenderPlan{}).EncodePBM(io.Discard); err != ErrArgs {
		t.Errorf("EncodePBM(empty plan): err = %v, want ErrArgs", err)
	}
}

func TestEncodeText(t *testing.T) {
	s, err := FromCode(testCode(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := s.EncodeASCII(&b, 0, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 21 || lines[0] != "  ##"+strings.Repeat(" ", 38) {
		t.Errorf("ASCII: %d lines, first %q", len(lines), lines[0])
	}
	b.Reset()
	s.EncodeASCII(&b, 1, true)
	if n := strings.Count(b.String(), "\n"); n != 23 {
		t.Errorf("ASCII with border: %d lines, want 23", n)
	}
	if !strings.HasPrefix(b.String(), strings.Repeat("#", 46)+"\n####  ##") {
		t.Errorf("reversed ASCII starts %q", b.String()[:60])
	}

	lines = strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n")
	if len(lines) != 15 {
		t.Errorf("String(): %d lines, want 15", len(lines))
	}
	// Row 0 and 1 of the symbol are on line 2, after 4 border rows.
	if got := []rune(lines[2])[4:7]; string(got) != "█▄█" {
		t.Errorf("String() line 2 starts %q, want █▄█", string(got))
	}
}
