package gauge

import (
	"image/color"
	"math"
	"testing"
)

// tolerance for floating point color comparisons
const colorEpsilon = 0.5 / 255

func colorsEqual(c1, c2 RGBA) bool {
	return math.Abs(c1.R-c2.R) < colorEpsilon &&
		math.Abs(c1.G-c2.G) < colorEpsilon &&
		math.Abs(c1.B-c2.B) < colorEpsilon &&
		math.Abs(c1.A-c2.A) < colorEpsilon
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   RGBA
		wantOK bool
	}{
		{"#f00", RGB(1, 0, 0), true},
		{"#F00", RGB(1, 0, 0), true},
		{"#0f08", RGBA{0, 1, 0, 0x88 / 255.0}, true},
		{"#336699", RGB(0x33/255.0, 0x66/255.0, 0x99/255.0), true},
		{"#33669980", RGBA{0x33 / 255.0, 0x66 / 255.0, 0x99 / 255.0, 0x80 / 255.0}, true},
		{"rgb(255, 128, 0)", RGB(1, 128/255.0, 0), true},
		{"rgba(0,0,255,0.5)", RGBA{0, 0, 1, 0.5}, true},
		{"rgb(0 0 255 / 50%)", RGBA{0, 0, 1, 0.5}, true},
		{"rgb(100%, 0%, 0%)", RGB(1, 0, 0), true},
		{"  Yellow ", RGB(1, 1, 0), true},
		{"green", RGB(0, 128/255.0, 0), true},
		{"transparent", Transparent, true},
		{"#12", RGBA{}, false},
		{"#ggg", RGBA{}, false},
		{"rgb(1, 2)", RGBA{}, false},
		{"rgb(a, b, c)", RGBA{}, false},
		{"var(--primary-color)", RGBA{}, false},
		{"", RGBA{}, false},
		{"notacolor", RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !colorsEqual(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAFormatting(t *testing.T) {
	tests := []struct {
		c       RGBA
		wantCSS string
		wantHex string
	}{
		{RGB(1, 0.5, 0), "rgb(255, 128, 0)", "#ff8000"},
		{RGBA{0, 0, 1, 0.5}, "rgba(0, 0, 255, 0.5)", "#0000ff80"},
		{RGBA{2, -1, 0, 1}, "rgb(255, 0, 0)", "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.CSS(); got != tt.wantCSS {
			t.Errorf("%+v.CSS() = %q, want %q", tt.c, got, tt.wantCSS)
		}
		if got := tt.c.Hex(); got != tt.wantHex {
			t.Errorf("%+v.Hex() = %q, want %q", tt.c, got, tt.wantHex)
		}
	}
}

func TestRGBAColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	if got := FromColor(c.Color()); !colorsEqual(got, c) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", got, c)
	}
	if got := FromColor(color.Black); !colorsEqual(got, Black) {
		t.Errorf("FromColor(color.Black) = %+v", got)
	}
}

func TestRGBAMix(t *testing.T) {
	yellow, red := RGB(1, 1, 0), RGB(1, 0, 0)

	if got := yellow.Mix(red, 0.5, InterpolateSRGB); !colorsEqual(got, RGB(1, 0.5, 0)) {
		t.Errorf("sRGB midpoint = %+v", got)
	}
	lin := yellow.Mix(red, 0.5, InterpolateLinear)
	if !(lin.G > 0.7 && lin.G < 0.75) {
		t.Errorf("linear midpoint green = %v, want about 0.735", lin.G)
	}
}

func TestParseInterpolation(t *testing.T) {
	if got, ok := ParseInterpolation("SRGB"); !ok || got != InterpolateSRGB {
		t.Errorf("ParseInterpolation(SRGB) = %v, %v", got, ok)
	}
	if got, ok := ParseInterpolation("linear"); !ok || got != InterpolateLinear {
		t.Errorf("ParseInterpolation(linear) = %v, %v", got, ok)
	}
	if _, ok := ParseInterpolation("hsl"); ok {
		t.Error("ParseInterpolation(hsl) should fail")
	}
	if InterpolateSRGB.String() != "srgb" {
		t.Errorf("InterpolateSRGB.String() = %q", InterpolateSRGB.String())
	}
}
