// Package color parses, formats and adjusts the 8-bit colors used in themes.
//
// Lightening and darkening happen in HSL space: the lightness component is
// shifted and clamped to [0,1] while hue, saturation and alpha are kept.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Color is an 8-bit RGB color with an alpha channel in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	// White is the opaque surface color.
	White = Color{R: 0xff, G: 0xff, B: 0xff, A: 1}
	// Black is opaque black.
	Black = Color{A: 1}
)

// Parse reads a color in #rgb, #rrggbb, rgb(r,g,b) or rgba(r,g,b,a) notation.
func Parse(input string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case s == "":
		return Color{}, themeerrors.NewColorError(input, "empty value")
	case strings.HasPrefix(s, "#"):
		return parseHex(input, s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunctional(input, s[len("rgba("):len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(input, s[len("rgb("):len(s)-1], false)
	default:
		return Color{}, themeerrors.NewColorError(input, "unsupported notation")
	}
}

// MustParse is like Parse but panics on invalid input. Intended for constants.
func MustParse(input string) Color {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(input, digits string) (Color, error) {
	switch len(digits) {
	case 3:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6:
	default:
		return Color{}, themeerrors.NewColorError(input, "hex notation needs 3 or 6 digits")
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, themeerrors.NewColorError(input, "invalid hex digit")
	}

	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 1,
	}, nil
}

func parseFunctional(input, body string, withAlpha bool) (Color, error) {
	parts := strings.Split(body, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, themeerrors.NewColorError(input, fmt.Sprintf("expected %d components, got %d", want, len(parts)))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		raw := strings.TrimSpace(parts[i])
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Color{}, themeerrors.NewColorError(input, fmt.Sprintf("channel %q is not an integer", raw))
		}
		if v < 0 || v > 255 {
			return Color{}, themeerrors.NewColorError(input, fmt.Sprintf("channel %d out of range 0-255", v))
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if withAlpha {
		raw := strings.TrimSpace(parts[3])
		a, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(a) {
			return Color{}, themeerrors.NewColorError(input, fmt.Sprintf("alpha %q is not a number", raw))
		}
		if a < 0 || a > 1 {
			return Color{}, themeerrors.NewColorError(input, fmt.Sprintf("alpha %s out of range 0-1", raw))
		}
		alpha = a
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Hex formats the RGB channels as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders opaque colors as #rrggbb and translucent ones as rgba(r,g,b,a).
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatAlpha(c.A))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*1000)/1000, 'f', -1, 64)
}

// Lighten raises HSL lightness by amount. Lightness saturates at 1, so
// lightening white returns white.
func Lighten(c Color, amount float64) Color {
	return shiftLightness(c, amount)
}

// Darken lowers HSL lightness by amount. Lightness saturates at 0, so
// darkening black returns black.
func Darken(c Color, amount float64) Color {
	return shiftLightness(c, -amount)
}

func shiftLightness(c Color, delta float64) Color {
	if delta == 0 {
		return c
	}
	h, s, l := c.colorful().Hsl()
	r, g, b := colorful.Hsl(h, s, clamp01(l+delta)).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// WithAlpha keeps the RGB channels and replaces alpha, clamped to [0,1].
func WithAlpha(c Color, alpha float64) Color {
	c.A = clamp01(alpha)
	return c
}

// Lightness returns the HSL lightness of the color in [0,1].
func Lightness(c Color) float64 {
	_, _, l := c.colorful().Hsl()
	return l
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Over composites c onto an opaque background and returns an opaque color.
func Over(c, bg Color) Color {
	if c.Opaque() {
		return c
	}
	r, g, b := c.colorful().BlendRgb(bg.colorful(), 1-c.A).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 1}
}
