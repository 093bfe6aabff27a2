package core

import (
	"fmt"
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a CSS hex colour ("#rgb" or "#rrggbb") to linear RGB.
// On failure it returns black together with the parse error; callers that
// only draw with the colour may ignore the error.
func ParseColor(css string) (Color, error) {
	c, err := colorful.Hex(css)
	if err != nil {
		return ColorBlack, fmt.Errorf("parse colour %q: %w", css, err)
	}
	r, g, b := c.LinearRgb()
	return Color{R: float32(r), G: float32(g), B: float32(b), A: 1}, nil
}

// MustParseColor is ParseColor for compile-time palette constants.
func MustParseColor(css string) Color {
	c, err := ParseColor(css)
	if err != nil {
		panic(err)
	}
	return c
}

// OffsetHue rotates the hue of c by turns of the colour wheel (0.1 = 36°),
// keeping saturation and lightness. The HSL conversion runs directly on the
// linear channels.
func (c Color) OffsetHue(turns float64) Color {
	h, s, l := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hsl()
	h = gomath.Mod(h+turns*360, 360)
	if h < 0 {
		h += 360
	}
	out := colorful.Hsl(h, s, l)
	return Color{R: float32(out.R), G: float32(out.G), B: float32(out.B), A: c.A}
}
