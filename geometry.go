package gauge

import "strings"

// GaugeType selects the gauge shape.
type GaugeType int

const (
	// GaugeFull is a 270° gauge open at the bottom.
	GaugeFull GaugeType = iota
	// GaugeHalf is a 180° gauge spanning the top half of the circle.
	GaugeHalf
)

// String returns the configuration name of the gauge type.
func (t GaugeType) String() string {
	switch t {
	case GaugeFull:
		return "full"
	case GaugeHalf:
		return "half"
	default:
		return "unknown"
	}
}

// ParseGaugeType maps "full" or "half" to a GaugeType. Unknown names report
// false and yield GaugeFull.
func ParseGaugeType(s string) (GaugeType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "":
		return GaugeFull, true
	case "half":
		return GaugeHalf, true
	default:
		return GaugeFull, false
	}
}

// Sweep returns the angular extent of the gauge type in degrees.
func (t GaugeType) Sweep() float64 {
	if t == GaugeHalf {
		return 180
	}
	return 270
}

// Rotation returns the screen angle the sweep starts at.
func (t GaugeType) Rotation() float64 {
	if t == GaugeHalf {
		return 180
	}
	// Centre the opening on 6 o'clock: 90 + (360-270)/2.
	return 135
}

// Ring identifies one of the concentric rings of a gauge card.
type Ring int

const (
	RingPrimary Ring = iota
	RingSecondary
	RingTertiary
)

// String returns the configuration name of the ring.
func (r Ring) String() string {
	switch r {
	case RingPrimary:
		return "primary"
	case RingSecondary:
		return "secondary"
	case RingTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// RingRadius returns the radius of a ring inside a 100×100 viewBox centred
// on the origin.
func RingRadius(r Ring) float64 {
	switch r {
	case RingSecondary:
		return 42
	case RingTertiary:
		return 37
	default:
		return 47
	}
}

// Geometry holds the shape parameters of one gauge ring. It is constant for
// a gauge instance.
type Geometry struct {
	Radius   float64 // ring radius in user units
	Sweep    float64 // maximum sweep in degrees
	Rotation float64 // screen angle of the sweep start, degrees clockwise from +X
}

// GeometryFor returns the geometry of a gauge type at the given radius.
func GeometryFor(t GaugeType, radius float64) Geometry {
	return Geometry{Radius: radius, Sweep: t.Sweep(), Rotation: t.Rotation()}
}

// WithRadius returns a copy of g with a different radius.
func (g Geometry) WithRadius(r float64) Geometry {
	g.Radius = r
	return g
}

// Arc builds the rotated arc between two angles measured along the sweep.
func (g Geometry) Arc(from, to float64) ArcPath {
	return g.arc(from, to, Precision)
}

func (g Geometry) arc(from, to float64, digits int) ArcPath {
	return buildArc(g.Radius, g.Rotation+from, g.Rotation+to, digits)
}

// Track returns the full-sweep background arc.
func (g Geometry) Track() ArcPath {
	return g.Arc(0, g.Sweep)
}

// Point returns the screen point at an angle measured along the sweep and
// distance r from the centre.
func (g Geometry) Point(angle, r float64) Point {
	return Polar(r, g.Rotation+angle)
}
