package color

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestToLinear(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLinear(tt.input); !near(got, tt.want, 1e-12) {
				t.Errorf("ToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float64(i) / 255
		if got := ToSRGB(ToLinear(s)); !near(got, s, 1e-9) {
			t.Fatalf("round trip of %v = %v", s, got)
		}
	}
}

func TestMix(t *testing.T) {
	yellow := Channels{R: 1, G: 1, B: 0, A: 1}
	red := Channels{R: 1, G: 0, B: 0, A: 1}

	tests := []struct {
		name  string
		t     float64
		space Space
		wantG float64
	}{
		{"srgb start", 0, SpaceSRGB, 1},
		{"srgb end", 1, SpaceSRGB, 0},
		{"srgb middle", 0.5, SpaceSRGB, 0.5},
		{"linear middle", 0.5, SpaceLinear, ToSRGB(0.5)},
		{"clamped below", -1, SpaceLinear, 1},
		{"clamped above", 2, SpaceLinear, 0},
		{"nan", math.NaN(), SpaceSRGB, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mix(yellow, red, tt.t, tt.space)
			if !near(got.G, tt.wantG, 1e-9) {
				t.Errorf("Mix(...).G = %v, want %v", got.G, tt.wantG)
			}
			if got.R != 1 || got.B != 0 || got.A != 1 {
				t.Errorf("Mix(...) = %+v, unchanged channels drifted", got)
			}
		})
	}
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in     string
		want   Space
		wantOK bool
	}{
		{"", SpaceLinear, true},
		{"linear", SpaceLinear, true},
		{"srgb", SpaceSRGB, true},
		{"rgb", SpaceSRGB, true},
		{"oklab", SpaceLinear, false},
	}
	for _, tt := range tests {
		got, ok := ParseSpace(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSpace(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
		if ok && tt.in != "" && tt.in != "rgb" && got.String() != tt.in {
			t.Errorf("Space(%d).String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
