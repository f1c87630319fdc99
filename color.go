package gauge

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	icolor "github.com/gogpu/gauge/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]; RGB is sRGB encoded.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
		A: float64(nc.A) / 255,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// CSS formats the color as a CSS rgb() or rgba() value.
func (c RGBA) CSS() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", to8(c.R), to8(c.G), to8(c.B))
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", to8(c.R), to8(c.G), to8(c.B),
		strconv.FormatFloat(round(c.A, 3), 'f', -1, 64))
}

// Hex formats the color as #rrggbb, or #rrggbbaa when translucent.
func (c RGBA) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// Mix blends c towards other by t in the given space.
func (c RGBA) Mix(other RGBA, t float64, space Interpolation) RGBA {
	m := icolor.Mix(c.channels(), other.channels(), t, icolor.Space(space))
	return RGBA{R: m.R, G: m.G, B: m.B, A: m.A}
}

func (c RGBA) channels() icolor.Channels {
	return icolor.Channels{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Interpolation selects the color space smooth segments blend in.
type Interpolation uint8

const (
	// InterpolateLinear blends in linear-light RGB (default).
	InterpolateLinear = Interpolation(icolor.SpaceLinear)
	// InterpolateSRGB blends gamma-encoded components directly.
	InterpolateSRGB = Interpolation(icolor.SpaceSRGB)
)

func (i Interpolation) String() string { return icolor.Space(i).String() }

// ParseInterpolation maps "linear" or "srgb" to an Interpolation.
func ParseInterpolation(name string) (Interpolation, bool) {
	s, ok := icolor.ParseSpace(strings.ToLower(strings.TrimSpace(name)))
	return Interpolation(s), ok
}

// ParseColor parses a CSS color literal.
// Supports "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)" and the CSS named colors. Anything else, such as
// "var(--accent)", reports false.
func ParseColor(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return RGBA{}, false
	case s[0] == '#':
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseFunctional(s)
	case s == "transparent":
		return RGBA{}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor(c), true
	}
	return RGBA{}, false
}

func parseHex(hex string) (RGBA, bool) {
	var v [4]uint64
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			n, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return RGBA{}, false
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			n, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return RGBA{}, false
			}
			v[i/2] = n
		}
	default:
		return RGBA{}, false
	}
	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: float64(v[3]) / 255,
	}, true
}

// parseFunctional handles rgb()/rgba() with comma or space separators and
// an optional "/ alpha".
func parseFunctional(s string) (RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, false
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : len(s)-1])
	parts := strings.Fields(body)
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, false
	}

	var out [4]float64
	out[3] = 1
	for i, p := range parts {
		pct := strings.HasSuffix(p, "%")
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return RGBA{}, false
		}
		switch {
		case pct:
			f /= 100
		case i < 3:
			f /= 255
		}
		out[i] = clamp01(f)
	}
	return RGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, true
}

func to8(x float64) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
