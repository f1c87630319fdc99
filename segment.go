package gauge

import (
	"math"
	"sort"
	"strings"
)

// Adaptive is the segment color sentinel resolved through a ThemeLookup.
const Adaptive = "adaptive"

// DefaultAdaptiveColor is used for Adaptive segments when no ThemeLookup is
// supplied.
const DefaultAdaptiveColor = "var(--primary-color)"

// Segment is a color threshold: values at or above From take Color until the
// next segment's From.
//
// A NaN From (a non-numeric threshold in configuration) orders below every
// other segment.
type Segment struct {
	From  float64
	Color string
	Label string
}

// ThemeLookup resolves the Adaptive color sentinel from the ambient theme.
type ThemeLookup interface {
	AdaptiveColor() string
}

// ThemeFunc adapts a function to the ThemeLookup interface.
type ThemeFunc func() string

// AdaptiveColor implements ThemeLookup.
func (f ThemeFunc) AdaptiveColor() string { return f() }

func adaptiveColor(theme ThemeLookup) string {
	if theme == nil {
		return DefaultAdaptiveColor
	}
	if c := theme.AdaptiveColor(); c != "" {
		return c
	}
	return DefaultAdaptiveColor
}

func isAdaptive(color string) bool {
	return strings.EqualFold(strings.TrimSpace(color), Adaptive)
}

// SortSegments returns the canonical form of segments: a new slice ordered by
// ascending From, with NaN thresholds mapped to -Inf, Adaptive colors
// replaced by adaptive, and equal thresholds collapsed to the segment listed
// last. The input is not modified.
func SortSegments(segments []Segment, adaptive string) []Segment {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	for i := range sorted {
		if math.IsNaN(sorted[i].From) {
			sorted[i].From = math.Inf(-1)
			Logger().Debug("gauge: non-numeric segment threshold ordered first",
				"index", i, "color", sorted[i].Color)
		}
		if isAdaptive(sorted[i].Color) {
			sorted[i].Color = adaptive
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From < sorted[j].From
	})

	out := sorted[:0]
	for _, s := range sorted {
		if n := len(out); n > 0 && out[n-1].From == s.From {
			out[n-1] = s
			continue
		}
		out = append(out, s)
	}
	return out
}

// segmentIndex returns the index of the last segment whose From is <= value,
// or -1 when value lies below every threshold.
func segmentIndex(sorted []Segment, value float64) int {
	if math.IsNaN(value) {
		return -1
	}
	return sort.Search(len(sorted), func(i int) bool {
		return sorted[i].From > value
	}) - 1
}
