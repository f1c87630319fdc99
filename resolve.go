package gauge

import "math"

// ResolveColor picks the color for value from an unordered segment list.
//
// In discrete mode the last segment with From <= value wins; values below
// every threshold fall back to the lowest segment. In smooth mode the colors
// of the two segments bracketing value are blended in linear-light RGB in
// proportion to value's position between their thresholds; values outside
// the outermost thresholds take that segment's solid color.
//
// It reports false for an empty segment list, meaning the caller's default
// color applies.
func ResolveColor(value float64, segments []Segment, smooth bool, theme ThemeLookup) (string, bool) {
	sorted := SortSegments(segments, adaptiveColor(theme))
	return resolveSorted(value, sorted, smooth, InterpolateLinear)
}

func resolveSorted(value float64, sorted []Segment, smooth bool, space Interpolation) (string, bool) {
	if len(sorted) == 0 {
		return "", false
	}

	i := segmentIndex(sorted, value)
	if i < 0 {
		return sorted[0].Color, true
	}
	if !smooth || i == len(sorted)-1 {
		return sorted[i].Color, true
	}

	lo, hi := sorted[i], sorted[i+1]
	if math.IsInf(lo.From, -1) {
		return lo.Color, true
	}
	return blend(lo.Color, hi.Color, (value-lo.From)/(hi.From-lo.From), space), true
}

// blend mixes two CSS colors. When either side cannot be parsed the lower
// color is returned unchanged.
func blend(from, to string, t float64, space Interpolation) string {
	a, ok := ParseColor(from)
	if !ok {
		Logger().Debug("gauge: cannot blend unparseable color", "color", from)
		return from
	}
	b, ok := ParseColor(to)
	if !ok {
		Logger().Debug("gauge: cannot blend unparseable color", "color", to)
		return from
	}
	return a.Mix(b, t, space).CSS()
}

// SegmentLabel returns the label of the segment that applies to value under
// discrete resolution, falling back to the lowest segment. It returns "" when
// there are no segments or the applicable segment has no label.
func SegmentLabel(value float64, segments []Segment) string {
	sorted := SortSegments(segments, DefaultAdaptiveColor)
	if len(sorted) == 0 {
		return ""
	}
	i := segmentIndex(sorted, value)
	if i < 0 {
		i = 0
	}
	return sorted[i].Label
}
