package gauge

import "sort"

// ColorStop is a color at a normalised position along a gradient arc.
type ColorStop struct {
	Offset float64 // position along the sweep, 0.0 to 1.0
	Color  string  // CSS color
}

// GradientArc is a full-sweep arc whose stroke blends continuously between
// color stops, used for smooth segment bands.
type GradientArc struct {
	Path  ArcPath
	Stops []ColorStop // ascending by Offset

	geom   Geometry
	space  Interpolation
	digits int
}

// ColorAt returns the color at normalised position t along the sweep.
// Positions beyond the outermost stops take the edge color.
func (g *GradientArc) ColorAt(t float64) string {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return ""
	case 1:
		return stops[0].Color
	}

	t = clamp01(t)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	lo, hi := stops[idx-1], stops[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}
	return blend(lo.Color, hi.Color, (t-lo.Offset)/(hi.Offset-lo.Offset), g.space)
}

// Slices approximates the gradient with n uniformly colored arcs, for
// renderers without conic gradients. Each slice takes the color at its
// midpoint.
func (g *GradientArc) Slices(n int) []ArcSlice {
	if n < 1 {
		n = 1
	}
	sweep := g.geom.Sweep
	out := make([]ArcSlice, 0, n)
	for i := range n {
		a0 := sweep * float64(i) / float64(n)
		a1 := sweep * float64(i+1) / float64(n)
		out = append(out, ArcSlice{
			StartAngle: a0,
			EndAngle:   a1,
			Path:       g.geom.arc(a0, a1, g.digits),
			Color:      g.ColorAt((float64(i) + 0.5) / float64(n)),
		})
	}
	return out
}
