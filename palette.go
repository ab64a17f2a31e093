package mathsketch

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette is a background color plus an ordered list of foreground colors.
type Palette struct {
	Background Color
	Foreground []Color
}

// Indices into DefaultPalette.Foreground.
const (
	White = iota
	Red
	Yellow
	Green
	Cyan
)

// DefaultPalette is the standard dark sketch palette.
var DefaultPalette = Palette{
	Background: mustHex("#200C49"),
	Foreground: []Color{
		mustHex("#FDE9C7"), // white
		mustHex("#F60644"), // red
		mustHex("#FFF062"), // yellow
		mustHex("#50F63B"), // green
		mustHex("#78FFF7"), // cyan
	},
}

// At returns the i-th foreground color, wrapping around the list. A palette
// with no foreground colors returns opaque white.
func (p Palette) At(i int) Color {
	n := len(p.Foreground)
	if n == 0 {
		return Color{1, 1, 1, 1}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.Foreground[i]
}

// ColorFromHex parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ColorFromHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func mustHex(s string) Color {
	c, err := ColorFromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
