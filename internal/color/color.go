// Package color converts CSS colors between hex, rgb, hsl and hsv notation.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("unrecognised color, expected #rgb, #rrggbb, rgb(r, g, b) or hsl(h, s%, l%)")

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*\)$`)
)

// Conversion holds one color in every supported notation.
type Conversion struct {
	Hex string
	RGB string
	HSL string
	HSV string
}

// Parse reads a color in hex, rgb() or hsl() notation.
func Parse(input string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		return colorful.Hex("#" + m[1])
	}
	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var ch [3]float64
		for i := range ch {
			v, _ := strconv.Atoi(m[i+1])
			if v > 255 {
				return colorful.Color{}, fmt.Errorf("%w: channel %d out of range", ErrInvalidColor, v)
			}
			ch[i] = float64(v) / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if h > 360 || sat > 100 || l > 100 {
			return colorful.Color{}, fmt.Errorf("%w: hsl component out of range", ErrInvalidColor)
		}
		return colorful.Hsl(math.Mod(h, 360), sat/100, l/100), nil
	}
	return colorful.Color{}, ErrInvalidColor
}

// Convert parses input and renders it in every notation.
func Convert(input string) (Conversion, error) {
	c, err := Parse(input)
	if err != nil {
		return Conversion{}, err
	}

	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	hv, sv, v := c.Hsv()
	return Conversion{
		Hex: c.Hex(),
		RGB: fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
		HSL: fmt.Sprintf("hsl(%s, %s%%, %s%%)", round(h), round(s*100), round(l*100)),
		HSV: fmt.Sprintf("hsv(%s, %s%%, %s%%)", round(hv), round(sv*100), round(v*100)),
	}, nil
}

func round(f float64) string {
	if math.IsNaN(f) {
		f = 0
	}
	return strconv.FormatFloat(math.Round(f), 'f', -1, 64)
}
