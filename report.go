// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A Report collects the diagnostics of one decode.
type Report struct {
	Version   int    `yaml:"version" json:"version"`
	Size      int    `yaml:"size" json:"size"`
	Selector  int    `yaml:"selector" json:"selector"`
	Mask      int    `yaml:"mask" json:"mask"`
	Masked    bool   `yaml:"masked" json:"masked"`
	Indicator int    `yaml:"indicator" json:"indicator"`
	Mode      string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Length    int    `yaml:"length" json:"length"`
	Text      string `yaml:"text" json:"text"`
	Error     string `yaml:"error,omitempty" json:"error,omitempty"`
}

// NewReport returns the report for s, h and the header error err.
// h may be nil.
func NewReport(s *Symbol, h *Header, err error) *Report {
	r := &Report{
		Version:  int(s.Version),
		Size:     s.Size,
		Selector: s.Selector,
		Mask:     s.Mask,
		Masked:   s.Masked,
	}
	if h != nil {
		r.Indicator = int(h.Indicator)
		r.Mode = h.Mode()
		r.Length = int(h.Length)
		r.Text = h.Text
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Report formats.
const (
	TextReport = "text"
	YAMLReport = "yaml"
	JSONReport = "json"
)

// ReportFormats lists the formats accepted by Encode.
var ReportFormats = []string{TextReport, YAMLReport, JSONReport}

// Encode writes r to w in the given format.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case TextReport, "":
		_, err := fmt.Fprintf(w, `version:   %d (%d×%d)
selector:  %05b (mask %d)
indicator: %04b (%s)
length:    %d
text:      %q
`,
			r.Version, r.Size, r.Size, r.Selector, r.Mask,
			r.Indicator, r.Mode, r.Length, r.Text)
		if err == nil && r.Error != "" {
			_, err = fmt.Fprintf(w, "error:     %s\n", r.Error)
		}
		return err
	case YAMLReport:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(r); err != nil {
			return err
		}
		return e.Close()
	case JSONReport:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(r)
	}
	return fmt.Errorf("qr: unknown report format %q", format)
}
