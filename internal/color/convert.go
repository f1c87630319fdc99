package color

import "math"

// ToLinear decodes one sRGB component to linear light.
// if s <= 0.04045: s/12.92; else: ((s+0.055)/1.055)^2.4
func ToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ToSRGB encodes one linear-light component back to sRGB.
// if l <= 0.0031308: l*12.92; else: 1.055*l^(1/2.4)-0.055
func ToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Mix blends a towards b by t in the given space. t is clamped to [0,1].
// Alpha is always blended linearly.
func Mix(a, b Channels, t float64, space Space) Channels {
	t = clamp01(t)
	if space == SpaceSRGB {
		return Channels{
			R: lerp(a.R, b.R, t),
			G: lerp(a.G, b.G, t),
			B: lerp(a.B, b.B, t),
			A: lerp(a.A, b.A, t),
		}
	}
	return Channels{
		R: ToSRGB(lerp(ToLinear(a.R), ToLinear(b.R), t)),
		G: ToSRGB(lerp(ToLinear(a.G), ToLinear(b.G), t)),
		B: ToSRGB(lerp(ToLinear(a.B), ToLinear(b.B), t)),
		A: lerp(a.A, b.A, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(x float64) float64 {
	switch {
	case x < 0, math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	}
	return x
}
