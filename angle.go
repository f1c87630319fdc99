package gauge

import "math"

// Range is the numeric span a gauge covers.
//
// Min < Max is the expected case. The mapping functions never fail on an
// inverted or degenerate range; use Sanitize when a sane range is needed.
type Range struct {
	Min, Max float64
}

// DefaultRange is the range used when configuration supplies none or an
// unusable one.
var DefaultRange = Range{Min: 0, Max: 100}

// Valid reports whether both bounds are finite and Min < Max.
func (r Range) Valid() bool {
	return finite(r.Min) && finite(r.Max) && r.Min < r.Max
}

// Sanitize returns r if it is valid and DefaultRange otherwise.
func (r Range) Sanitize() Range {
	if r.Valid() {
		return r
	}
	return DefaultRange
}

// Clamp limits v to [Min, Max]. NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	}
	return v
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Fraction returns the position of v in the range as a value in [0, 1].
// A degenerate or inverted range yields 0.
func (r Range) Fraction(v float64) float64 {
	span := r.Max - r.Min
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	return (r.Clamp(v) - r.Min) / span
}

// Angle maps v onto a sweep of the given number of degrees.
// Values outside the range land on the sweep endpoints.
func (r Range) Angle(v, sweep float64) float64 {
	return r.Fraction(v) * sweep
}

// Origin returns the value the filled arc grows from: 0 when startFromZero
// is set and 0 lies inside the range, Min otherwise.
func (r Range) Origin(startFromZero bool) float64 {
	if startFromZero && r.Contains(0) {
		return 0
	}
	return r.Min
}

// MapValueToAngle maps value within [min, max] to an angle in [0, sweep].
// When min == max the angle is 0.
func MapValueToAngle(value, min, max, sweep float64) float64 {
	return Range{Min: min, Max: max}.Angle(value, sweep)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func clamp01(x float64) float64 {
	switch {
	case x < 0, math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	}
	return x
}

// round rounds x to the given number of decimal digits and folds -0 to 0.
func round(x float64, digits int) float64 {
	p := math.Pow10(digits)
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}
