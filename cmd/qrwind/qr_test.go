package main

import (
	"testing"

	"github.com/unixdj/qrwind"
	"github.com/unixdj/qrwind/coding"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		text string
		ver  coding.Version
	}{
		{"HELLO", 1},
		{"hello, world, hello!", 2},
	}
	for _, tt := range tests {
		c, err := encodeText(tt.text)
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		s, err := qr.FromCode(c, nil)
		if err != nil {
			t.Fatal(err)
		}
		if s.Version != tt.ver {
			t.Errorf("%q: version %v, want %v", tt.text, s.Version, tt.ver)
		}
		s.Unmask()
		h, err := s.Header()
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		if h.Indicator != coding.ByteMode || int(h.Length) != len(tt.text) {
			t.Errorf("%q: indicator %04b, length %d", tt.text,
				h.Indicator, h.Length)
		}
	}
}
