// Package gauge computes the geometry and colors of circular dashboard gauges.
//
// # Overview
//
// A gauge maps a sensor value onto an arc. gauge turns (value, range,
// color segments, mode flags) into SVG path data and CSS colors; drawing
// and state handling stay with the caller. Every function is pure, so the
// engine can be called on every state update of every gauge concurrently.
//
// # Quick Start
//
//	segs := []gauge.Segment{
//	    {From: 0, Color: "green"},
//	    {From: 50, Color: "yellow"},
//	    {From: 80, Color: "red"},
//	}
//	g := gauge.GeometryFor(gauge.GaugeFull, gauge.RingRadius(gauge.RingPrimary))
//	r := gauge.Range{Min: 0, Max: 100}
//
//	color, _ := gauge.ResolveColor(60, segs, false, nil) // "yellow"
//	fill, ok := gauge.ComputeCurrentArc(60, r, g, 0)
//	bands := gauge.RenderSegments(segs, r, g, false, nil)
//
// # Coordinate System
//
// Arcs are centred on the origin in SVG user space:
//   - X increases right, Y increases down
//   - Angles in degrees, 0 is right, increases clockwise on screen
//   - Angles along a sweep are offset by Geometry.Rotation
//
// Coordinates are rounded to Precision decimal digits so repeated renders
// of a live value produce stable path text.
//
// # Colors
//
// Segment colors are CSS strings. The sentinel Adaptive is resolved through
// a ThemeLookup supplied by the caller. Smooth segments blend in linear-light
// RGB unless an Engine is configured with InterpolateSRGB.
//
// # Memoisation
//
// Engine wraps the same functions with a sharded LRU cache keyed on the full
// input tuple, for dashboards that re-render many unchanged gauges.
package gauge

// Version is the current version of the library.
const Version = "0.3.0"
