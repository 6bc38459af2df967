package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/term"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	rsc "rsc.io/qr/coding"

	"github.com/unixdj/qrwind"
	"github.com/unixdj/qrwind/coding"
)

var g = struct {
	fn        string            // output filename
	format    string            // output type
	rev       bool              // reverse colours
	width     int               // viewport width
	height    int               // viewport height
	border    int               // quiet zone for text types
	dark      string            // dark module marker
	raw       bool              // leave the symbol unmasked
	noOutline bool              // no outline around the block
	charset   encoding.Encoding // header character set
	sjis      bool              // Shift JIS header
	latin1    bool              // Latin-1 header
	eightBit  bool              // raw header bytes
	report    string            // report format
	quiet     bool              // no report
	encode    string            // text to encode
	lev       rsc.Level         // correction level for -e
}{
	dark:   string(qr.DefaultDark),
	border: qr.Border,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR symbol header reader\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [file]
Symbol text is read from the file or standard input, one row per line,
one character per module.  The mask is removed, the header is decoded
and reported, and the symbol is rendered with the mask restored.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrwind version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

// formats are the output types.  The first npaired come in pairs,
// the second of each inverted.
var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
	"text", "none",
}

const npaired = 8

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ff := getopt.Enum('t', formats, "", `output type, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"text" writes the symbol rows, "none" only the report; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")
	width := getopt.Unsigned('W', 512, &getopt.UnsignedLimit{Base: 0, Bits: 32, Min: 1, Max: 1 << 16},
		"viewport width in pixels for types png[i] and pbm[i]", "width")
	height := getopt.Unsigned('H', 512, &getopt.UnsignedLimit{Base: 0, Bits: 32, Min: 1, Max: 1 << 16},
		"viewport height in pixels", "height")
	border := getopt.Unsigned('T', qr.Border, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 64},
		"quiet zone modules for types utf8[i] and ascii[i]", "border")
	getopt.Flag(&g.dark, 'd', "dark module character", "char")
	getopt.Flag(&g.raw, 'u', "render the symbol unmasked")
	getopt.Flag(&g.noOutline, 'O', "no outline around the symbol")
	getopt.Flag(&g.sjis, 'k', "decode header text as Shift JIS")
	getopt.Flag(&g.latin1, '1', "decode header text as Latin-1 (default)")
	getopt.Flag(&g.eightBit, '8', "keep header text bytes as they are")
	rf := getopt.Enum('r', qr.ReportFormats, qr.TextReport,
		"report format, one of: "+strings.Join(qr.ReportFormats, ", "),
		"format")
	getopt.Flag(&g.quiet, 'q', "no report")
	getopt.Flag(&g.encode, 'e', `encode the string as a QR symbol `+
		`instead of reading symbol text`, "string")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level for -e, lowest to highest", "l|m|q|h")

	getopt.Parse()
	n := 0
	for _, v := range []bool{g.sjis, g.latin1, g.eightBit} {
		if v {
			n++
		}
	}
	if n > 1 {
		fmt.Fprintln(os.Stderr, "-k, -1 and -8 are incompatible")
		usage()
	}
	if len(g.dark) != 1 {
		fmt.Fprintf(os.Stderr, "-d %q: want a single character\n", g.dark)
		usage()
	}
	if getopt.IsSet('e') && getopt.NArgs() != 0 || getopt.NArgs() > 1 {
		usage()
	}
	switch {
	case g.sjis:
		g.charset = japanese.ShiftJIS
	case g.eightBit:
		g.charset = encoding.Nop
	default:
		g.charset = charmap.ISO8859_1
	}
	g.width, g.height = int(*width), int(*height)
	g.border = int(*border)
	g.report = *rf
	g.lev = rsc.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = v
			if i < npaired {
				g.format = formats[i&^1]
				g.rev = i&1 != 0
			}
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

// encodeText encodes s in the smallest version that holds it, with
// the mask pattern matching coding.Masked.
func encodeText(s string) (*coding.Code, error) {
	var err error
	for v := rsc.Version(coding.MinVersion); v <= rsc.Version(coding.MaxVersion); v++ {
		var p *rsc.Plan
		if p, err = rsc.NewPlan(v, g.lev, 6); err != nil {
			return nil, err
		}
		var rc *rsc.Code
		if rc, err = p.Encode(rsc.String(s)); err != nil {
			continue
		}
		c, err := coding.NewCode(coding.Version(v))
		if err != nil {
			return nil, err
		}
		for y := 0; y < rc.Size; y++ {
			for x := 0; x < rc.Size; x++ {
				if rc.Black(x, y) {
					c.Set(x, y, coding.Dark)
				}
			}
		}
		return c, nil
	}
	return nil, err
}

// load returns the input symbol.
func load(opt *qr.Options) (*qr.Symbol, error) {
	if getopt.IsSet('e') {
		c, err := encodeText(g.encode)
		if err != nil {
			return nil, err
		}
		return qr.FromCode(c, opt)
	}
	r := io.Reader(os.Stdin)
	if args := getopt.Args(); len(args) != 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	rows, err := qr.ReadRows(r)
	if err != nil {
		return nil, err
	}
	return qr.Load(rows, opt)
}

func main() {
	log.SetFlags(0)
	parseFlags()

	s, err := load(&qr.Options{Dark: g.dark[0], Charset: g.charset})
	if err != nil {
		log.Fatalln(err)
	}
	s.Unmask()
	h, herr := s.Header()
	if herr != nil {
		var be *coding.BoundsError
		if !errors.As(herr, &be) {
			log.Fatalln(herr)
		}
		log.Println(herr)
	}
	if !g.quiet {
		rw := os.Stderr
		if g.format == "none" {
			rw = os.Stdout
		}
		if err := qr.NewReport(s, h, herr).Encode(rw, g.report); err != nil {
			log.Fatalln(err)
		}
	}
	if !g.raw {
		s.Unmask()
	}
	if g.format != "none" {
		write(s)
	}
}

func write(s *qr.Symbol) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encode(s, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func encode(s *qr.Symbol, w *os.File) error {
	switch g.format {
	case "png", "pbm":
		p, err := qr.PlanRender(s.Code, g.width, g.height)
		if err != nil {
			return err
		}
		p.Reverse = g.rev
		p.Outline = !g.noOutline
		if g.format == "pbm" {
			return p.EncodePBM(w)
		}
		return png.Encode(w, p)
	case "utf8":
		checkWidth(w, s.Size+2*g.border)
		return s.EncodeText(w, g.border, g.rev)
	case "ascii":
		checkWidth(w, (s.Size+2*g.border)*2)
		return s.EncodeASCII(w, g.border, g.rev)
	case "text":
		_, err := io.WriteString(w,
			strings.Join(s.Rows(g.dark[0], '.'), "\n")+"\n")
		return err
	}
	return fmt.Errorf("%s: unknown output type", g.format)
}

// checkWidth warns if a symbol cols characters wide does not fit the
// terminal w.
func checkWidth(w *os.File, cols int) {
	if !isatty.IsTerminal(w.Fd()) {
		return
	}
	if tw, _, err := term.GetSize(int(w.Fd())); err == nil && tw < cols {
		log.Printf("warning: symbol is %d columns wide, terminal %d",
			cols, tw)
	}
}
