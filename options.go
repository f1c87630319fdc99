package gauge

// Option configures an Engine during creation.
//
// Example:
//
//	e := gauge.NewEngine(
//	    gauge.WithInterpolation(gauge.InterpolateSRGB),
//	    gauge.WithTheme(theme),
//	)
type Option func(*engineOptions)

type engineOptions struct {
	space     Interpolation
	digits    int
	theme     ThemeLookup
	cacheSize int
	noCache   bool
}

func defaultOptions() engineOptions {
	return engineOptions{
		space:  InterpolateLinear,
		digits: Precision,
	}
}

// WithInterpolation sets the color space smooth segments blend in.
func WithInterpolation(space Interpolation) Option {
	return func(o *engineOptions) {
		o.space = space
	}
}

// WithPrecision sets the number of decimal digits path coordinates are
// rounded to. Values outside [0, 6] are ignored.
func WithPrecision(digits int) Option {
	return func(o *engineOptions) {
		if digits >= 0 && digits <= 6 {
			o.digits = digits
		}
	}
}

// WithTheme sets the lookup used to resolve Adaptive segment colors.
func WithTheme(theme ThemeLookup) Option {
	return func(o *engineOptions) {
		o.theme = theme
	}
}

// WithCacheSize sets the per-shard capacity of the result cache.
// A negative size disables memoisation.
func WithCacheSize(n int) Option {
	return func(o *engineOptions) {
		o.cacheSize = n
		o.noCache = n < 0
	}
}
