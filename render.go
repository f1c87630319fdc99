package gauge

import "math"

// ArcSlice is one uniformly colored band of a ring.
type ArcSlice struct {
	From, To             float64 // value span, clamped to the range
	StartAngle, EndAngle float64 // angles along the sweep
	Path                 ArcPath
	Color                string // empty means the caller's default track color
	Label                string
}

// SegmentRender is the background band visualisation of a ring. Exactly one
// of Slices and Gradient is set.
type SegmentRender struct {
	Slices   []ArcSlice
	Gradient *GradientArc
}

// Approximate returns the bands as uniformly colored slices, splitting a
// gradient into n arcs.
func (s SegmentRender) Approximate(n int) []ArcSlice {
	if s.Gradient != nil {
		return s.Gradient.Slices(n)
	}
	return s.Slices
}

// RenderSegments builds the colored bands for a ring.
//
// Thresholds are clamped into r and segments whose band lies entirely outside
// r are dropped. The first band is extended down to r.Min so the bands agree
// with ResolveColor's fallback to the lowest segment. In discrete mode every
// band becomes one slice; in smooth mode a single full-sweep GradientArc is
// produced with a stop at each boundary. With fewer than two usable segments
// the result is a single uniformly colored full-sweep slice.
func RenderSegments(segments []Segment, r Range, g Geometry, smooth bool, theme ThemeLookup) SegmentRender {
	sorted := SortSegments(segments, adaptiveColor(theme))
	return renderSorted(sorted, r, g, smooth, InterpolateLinear, Precision)
}

type band struct {
	lo, hi float64
	seg    Segment
}

// bands clips the sorted segments to r.
func bands(sorted []Segment, r Range) []band {
	out := make([]band, 0, len(sorted))
	for i, s := range sorted {
		hi := math.Inf(1)
		if i+1 < len(sorted) {
			hi = sorted[i+1].From
		}
		if hi <= r.Min || s.From >= r.Max {
			Logger().Debug("gauge: segment outside range dropped",
				"from", s.From, "color", s.Color, "min", r.Min, "max", r.Max)
			continue
		}
		out = append(out, band{lo: math.Max(s.From, r.Min), hi: math.Min(hi, r.Max), seg: s})
	}
	if len(out) > 0 {
		out[0].lo = r.Min
	}
	return out
}

func renderSorted(sorted []Segment, r Range, g Geometry, smooth bool, space Interpolation, digits int) SegmentRender {
	bs := bands(sorted, r)

	if len(bs) < 2 {
		s := ArcSlice{From: r.Min, To: r.Max, EndAngle: g.Sweep, Path: g.arc(0, g.Sweep, digits)}
		if len(bs) == 1 {
			s.Color = bs[0].seg.Color
			s.Label = bs[0].seg.Label
		}
		return SegmentRender{Slices: []ArcSlice{s}}
	}

	if smooth {
		return SegmentRender{Gradient: gradientFor(bs, sorted, r, g, space, digits)}
	}

	slices := make([]ArcSlice, 0, len(bs))
	for _, b := range bs {
		color, _ := resolveSorted(b.lo, sorted, false, space)
		start, end := r.Angle(b.lo, g.Sweep), r.Angle(b.hi, g.Sweep)
		slices = append(slices, ArcSlice{
			From:       b.lo,
			To:         b.hi,
			StartAngle: start,
			EndAngle:   end,
			Path:       g.arc(start, end, digits),
			Color:      color,
			Label:      b.seg.Label,
		})
	}
	return SegmentRender{Slices: slices}
}

// gradientFor places a stop at both range ends and at every threshold
// strictly inside the range. The end stops carry the smoothly resolved color
// so a band clipped by the range keeps its blended edge.
func gradientFor(bs []band, sorted []Segment, r Range, g Geometry, space Interpolation, digits int) *GradientArc {
	stops := make([]ColorStop, 0, len(bs)+2)

	first, _ := resolveSorted(r.Min, sorted, true, space)
	stops = append(stops, ColorStop{Offset: 0, Color: first})
	for _, b := range bs {
		if b.seg.From > r.Min && b.seg.From < r.Max {
			stops = append(stops, ColorStop{Offset: r.Fraction(b.seg.From), Color: b.seg.Color})
		}
	}
	last, _ := resolveSorted(r.Max, sorted, true, space)
	stops = append(stops, ColorStop{Offset: 1, Color: last})

	return &GradientArc{
		Path:   g.arc(0, g.Sweep, digits),
		Stops:  stops,
		geom:   g,
		space:  space,
		digits: digits,
	}
}
