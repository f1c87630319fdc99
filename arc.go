package gauge

import (
	"math"
	"strconv"
	"strings"
)

// Precision is the number of decimal digits arc coordinates are rounded to.
// Three digits keep a 100-unit viewBox exact to well below a device pixel
// while stopping float noise from changing the path text between renders.
const Precision = 3

// ArcPath is an immutable circular arc around the origin, ready to be used as
// SVG path data. The zero value is an empty arc.
type ArcPath struct {
	radius     float64
	start, end float64
	d          string
	drawn      bool // d contains arc commands
}

// BuildArc builds the clockwise arc of the given radius from startDeg to
// endDeg (degrees, 0° along +X). The span is normalised so the arc always
// sweeps in the increasing-angle direction and never exceeds a full turn.
func BuildArc(radius, startDeg, endDeg float64) ArcPath {
	return buildArc(radius, startDeg, endDeg, Precision)
}

func buildArc(radius, start, end float64, digits int) ArcPath {
	if !finite(radius) || radius < 0 {
		radius = 0
	}
	if !finite(start) {
		start = 0
	}
	if !finite(end) {
		end = start
	}
	if end < start {
		start, end = end, start
	}
	if end-start > 360 {
		end = start + 360
	}

	a := ArcPath{radius: radius, start: start, end: end}
	sweep := end - start
	p0 := Polar(radius, start).Round(digits)

	var b strings.Builder
	b.Grow(64)
	b.WriteString("M ")
	writePoint(&b, p0, digits)

	if sweep == 0 || radius == 0 {
		a.d = b.String()
		return a
	}

	p1 := Polar(radius, end).Round(digits)
	if p0 == p1 && sweep < 180 {
		// Too short to survive rounding.
		a.d = b.String()
		return a
	}
	a.drawn = true
	// A single elliptical-arc command cannot describe a closed circle:
	// coincident endpoints make the renderer drop it. Split into halves.
	if sweep >= 360 || p0 == p1 {
		mid := Polar(radius, start+sweep/2).Round(digits)
		writeArcTo(&b, radius, false, mid, digits)
		writeArcTo(&b, radius, false, p1, digits)
	} else {
		writeArcTo(&b, radius, sweep > 180, p1, digits)
	}
	a.d = b.String()
	return a
}

func writeArcTo(b *strings.Builder, r float64, large bool, to Point, digits int) {
	rs := formatCoord(r, digits)
	b.WriteString(" A ")
	b.WriteString(rs)
	b.WriteByte(' ')
	b.WriteString(rs)
	b.WriteString(" 0 ")
	if large {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteString(" 1 ")
	writePoint(b, to, digits)
}

func writePoint(b *strings.Builder, p Point, digits int) {
	b.WriteString(formatCoord(p.X, digits))
	b.WriteByte(' ')
	b.WriteString(formatCoord(p.Y, digits))
}

func formatCoord(x float64, digits int) string {
	return strconv.FormatFloat(round(x, digits), 'f', -1, 64)
}

// String returns the SVG path data.
func (a ArcPath) String() string {
	if a.d == "" {
		return "M 0 0"
	}
	return a.d
}

// Radius returns the arc radius.
func (a ArcPath) Radius() float64 { return a.radius }

// StartAngle returns the normalised start angle in degrees.
func (a ArcPath) StartAngle() float64 { return a.start }

// EndAngle returns the normalised end angle in degrees.
func (a ArcPath) EndAngle() float64 { return a.end }

// Sweep returns the angular extent in degrees.
func (a ArcPath) Sweep() float64 { return a.end - a.start }

// Empty reports whether the arc has no visible extent, including arcs too
// short to remain distinct at the rounding precision.
func (a ArcPath) Empty() bool { return !a.drawn }

// Length returns the arc length in user units.
func (a ArcPath) Length() float64 {
	return a.radius * a.Sweep() * math.Pi / 180
}
