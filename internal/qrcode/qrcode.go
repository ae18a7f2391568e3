// Package qrcode renders QR codes as PNG data URLs and SVG markup.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultSize       = 256
	MinSize           = 21
	MaxSize           = 2048
	DefaultDarkColor  = "#000000"
	DefaultLightColor = "#ffffff"
	DefaultLevel      = "M"
)

var (
	ErrEmptyContent          = errors.New("content is required")
	ErrInvalidSize           = fmt.Errorf("size must be between %d and %d", MinSize, MaxSize)
	ErrInvalidColor          = errors.New("invalid color")
	ErrInvalidErrorLevel     = errors.New("error level must be one of L, M, Q, H")
	ErrContentDoesNotFit     = errors.New("content does not fit in a QR code")
	ErrSizeTooSmallForSymbol = errors.New("size is smaller than the QR symbol")
)

var levels = map[string]qr.ErrorCorrectionLevel{
	"L": qr.L,
	"M": qr.M,
	"Q": qr.Q,
	"H": qr.H,
}

// Options describes one QR code. Colors are CSS hex strings.
type Options struct {
	Content    string
	Size       int
	DarkColor  string
	LightColor string
	ErrorLevel string
}

// Code is a rendered QR code.
type Code struct {
	DataURL    string
	SVG        string
	Modules    int
	DarkColor  string
	LightColor string
}

// Render encodes opts.Content and packages it as a PNG data URL scaled to
// opts.Size pixels and an SVG with one rect per dark module.
func Render(opts Options) (Code, error) {
	if opts.Content == "" {
		return Code{}, ErrEmptyContent
	}
	if opts.Size < MinSize || opts.Size > MaxSize {
		return Code{}, ErrInvalidSize
	}
	level, ok := levels[strings.ToUpper(strings.TrimSpace(opts.ErrorLevel))]
	if !ok {
		return Code{}, fmt.Errorf("%w: %q", ErrInvalidErrorLevel, opts.ErrorLevel)
	}
	dark, err := parseColor(opts.DarkColor)
	if err != nil {
		return Code{}, err
	}
	light, err := parseColor(opts.LightColor)
	if err != nil {
		return Code{}, err
	}

	symbol, err := qr.Encode(opts.Content, level, qr.Auto)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %v", ErrContentDoesNotFit, err)
	}
	modules := symbol.Bounds().Dx()
	if opts.Size < modules {
		return Code{}, fmt.Errorf("%w: need at least %d pixels", ErrSizeTooSmallForSymbol, modules)
	}

	scaled, err := barcode.Scale(symbol, opts.Size, opts.Size)
	if err != nil {
		return Code{}, fmt.Errorf("scaling qr code: %w", err)
	}
	raster, err := encodePNG(scaled, dark, light)
	if err != nil {
		return Code{}, err
	}

	return Code{
		DataURL:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(raster),
		SVG:        renderSVG(symbol, opts.Size, dark.Hex(), light.Hex()),
		Modules:    modules,
		DarkColor:  dark.Hex(),
		LightColor: light.Hex(),
	}, nil
}

func parseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// isDark reports whether the barcode pixel is a set module.
func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}

func encodePNG(img image.Image, dark, light colorful.Color) ([]byte, error) {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, color.Palette{light, dark})
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isDark(img.At(x, y)) {
				out.SetColorIndex(x, y, 1)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSVG(symbol image.Image, size int, dark, light string) string {
	n := symbol.Bounds().Dx()
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, size, size, n, n)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, n, n, light)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if isDark(symbol.At(x, y)) {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`, x, y, dark)
			}
		}
	}
	b.WriteString("</svg>")
	return b.String()
}
