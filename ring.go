package gauge

// RingConfig describes one ring of a gauge card.
type RingConfig struct {
	Range    Range
	Segments []Segment
	Smooth   bool
	Mode     Mode
	Color    string // fixed accent overriding segments unless empty or Adaptive
}

// RingRender is everything needed to draw one ring for the current value.
type RingRender struct {
	Accent string // resolved accent color, empty for the caller's default
	Track  ArcPath
	Bands  SegmentRender

	// Value is the filled arc; valid only when ValueVisible is set.
	Value        DashArc
	ValueVisible bool

	// Needle is set in needle mode.
	Needle *Needle
}

// RenderRing composes the accent color, value arc or needle and background
// bands of one ring. An invalid range is replaced with DefaultRange.
//
// A set cfg.Color is the accent regardless of segments. An empty or Adaptive
// cfg.Color takes the accent from the segments; without segments an Adaptive
// color resolves through theme and an empty one stays empty.
func RenderRing(value float64, cfg RingConfig, g Geometry, theme ThemeLookup) RingRender {
	adaptive := adaptiveColor(theme)
	sorted := SortSegments(cfg.Segments, adaptive)
	return renderRing(value, cfg, sorted, adaptive, g, InterpolateLinear, Precision)
}

func renderRing(value float64, cfg RingConfig, sorted []Segment, adaptive string, g Geometry, space Interpolation, digits int) RingRender {
	r := cfg.Range
	if !r.Valid() {
		Logger().Warn("gauge: invalid ring range, using default",
			"min", r.Min, "max", r.Max)
		r = DefaultRange
	}

	out := RingRender{
		Track: g.arc(0, g.Sweep, digits),
		Bands: renderSorted(sorted, r, g, cfg.Smooth, space, digits),
	}
	switch c, ok := resolveSorted(value, sorted, cfg.Smooth, space); {
	case cfg.Color != "" && !isAdaptive(cfg.Color):
		out.Accent = cfg.Color
	case ok:
		out.Accent = c
	case cfg.Color != "":
		out.Accent = adaptive
	}

	if cfg.Mode.Has(ModeNeedle) {
		n := ComputeNeedle(value, r, g)
		out.Needle = &n
		return out
	}
	out.Value, out.ValueVisible = computeCurrentArc(value, r, g, cfg.Mode, digits)
	return out
}
