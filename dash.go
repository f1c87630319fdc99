package gauge

import (
	"math"
	"strings"
)

// Mode is the set of rendering-mode flags of a gauge ring.
type Mode uint8

const (
	// ModeStartFromZero grows the value arc from 0 instead of from the range
	// minimum when 0 lies inside the range.
	ModeStartFromZero Mode = 1 << iota
	// ModeNeedle renders a pointer instead of a filled value arc.
	ModeNeedle
)

// Has reports whether all flags in f are set.
func (m Mode) Has(f Mode) bool { return m&f == f }

// DashArc is the filled portion of a ring representing the current value.
//
// StartAngle and EndAngle are measured along the sweep, before rotation, with
// StartAngle <= EndAngle. Path is the rotated arc. DashArray and DashOffset
// encode the same span as stroke-dasharray / stroke-dashoffset values for a
// stroke drawn along the full track path.
type DashArc struct {
	StartAngle float64
	EndAngle   float64
	Path       ArcPath
	DashArray  string
	DashOffset string
}

// Sweep returns the angular extent of the filled portion.
func (d DashArc) Sweep() float64 { return d.EndAngle - d.StartAngle }

// ComputeCurrentArc computes the value arc of a ring.
//
// It reports false when no fill should be rendered: in needle mode, for a NaN
// value, and when value <= min with a non-negative min, where the arc would
// collapse to a meaningless dot.
func ComputeCurrentArc(value float64, r Range, g Geometry, mode Mode) (DashArc, bool) {
	return computeCurrentArc(value, r, g, mode, Precision)
}

func computeCurrentArc(value float64, r Range, g Geometry, mode Mode, digits int) (DashArc, bool) {
	if mode.Has(ModeNeedle) || math.IsNaN(value) {
		return DashArc{}, false
	}
	if value <= r.Min && r.Min >= 0 {
		return DashArc{}, false
	}

	start := r.Angle(r.Origin(mode.Has(ModeStartFromZero)), g.Sweep)
	end := r.Angle(value, g.Sweep)
	if end < start {
		// Negative values under zero-start grow towards the minimum.
		start, end = end, start
	}

	track := g.Radius * 2 * math.Pi * g.Sweep / 360
	var filled, offset float64
	if g.Sweep > 0 {
		filled = (end - start) / g.Sweep * track
		offset = start / g.Sweep * track
	}

	return DashArc{
		StartAngle: start,
		EndAngle:   end,
		Path:       g.arc(start, end, digits),
		DashArray:  formatCoord(filled, digits) + " " + formatCoord(track, digits),
		DashOffset: formatCoord(-offset, digits),
	}, true
}

// Needle is the pointer of a ring rendered in needle mode.
type Needle struct {
	Angle float64 // screen angle in degrees, rotation applied
	Tip   Point   // pointer tip on the ring
}

// Transform returns the SVG transform rotating a pointer drawn along +X.
func (n Needle) Transform() string {
	var b strings.Builder
	b.WriteString("rotate(")
	b.WriteString(formatCoord(n.Angle, Precision))
	b.WriteByte(')')
	return b.String()
}

// ComputeNeedle places the needle for value on a ring.
func ComputeNeedle(value float64, r Range, g Geometry) Needle {
	angle := g.Rotation + r.Angle(value, g.Sweep)
	return Needle{
		Angle: round(angle, Precision),
		Tip:   Polar(g.Radius, angle).Round(Precision),
	}
}
