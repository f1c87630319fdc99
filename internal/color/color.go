// Package color provides the colour-space arithmetic behind smooth segment
// blending.
package color

// Space selects the space two colours are blended in.
type Space uint8

const (
	// SpaceLinear blends in linear-light RGB. Midpoints keep the perceived
	// brightness of the endpoints instead of dipping towards grey.
	SpaceLinear Space = iota
	// SpaceSRGB blends the gamma-encoded components directly, matching
	// what a CSS rgb() interpolation produces.
	SpaceSRGB
)

// String returns the configuration name of the space.
func (s Space) String() string {
	switch s {
	case SpaceLinear:
		return "linear"
	case SpaceSRGB:
		return "srgb"
	default:
		return "unknown"
	}
}

// ParseSpace maps a configuration name to a Space.
// Unknown names report false and yield SpaceLinear.
func ParseSpace(name string) (Space, bool) {
	switch name {
	case "linear", "":
		return SpaceLinear, true
	case "srgb", "rgb":
		return SpaceSRGB, true
	default:
		return SpaceLinear, false
	}
}

// Channels holds straight (non-premultiplied) RGBA components in [0,1].
// RGB is gamma encoded; alpha is always linear.
type Channels struct {
	R, G, B, A float64
}
