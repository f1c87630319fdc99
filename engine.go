package gauge

import (
	"strconv"
	"strings"

	"github.com/gogpu/gauge/internal/cache"
)

// Engine evaluates gauge geometry and colors with fixed options, memoising
// results on the full input tuple. Results are shared between callers and
// must be treated as read-only.
//
// Engine is safe for concurrent use; one Engine can serve every gauge on a
// dashboard.
type Engine struct {
	opts engineOptions

	colors *cache.Sharded[colorResult]
	arcs   *cache.Sharded[arcResult]
	bands  *cache.Sharded[SegmentRender]
	rings  *cache.Sharded[RingRender]
}

// Stats reports the combined cache statistics of an Engine.
type Stats = cache.Stats

type colorResult struct {
	color string
	ok    bool
}

type arcResult struct {
	arc DashArc
	ok  bool
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{opts: o}
	if !o.noCache {
		e.colors = cache.NewSharded[colorResult](o.cacheSize)
		e.arcs = cache.NewSharded[arcResult](o.cacheSize)
		e.bands = cache.NewSharded[SegmentRender](o.cacheSize)
		e.rings = cache.NewSharded[RingRender](o.cacheSize)
	}
	return e
}

// Interpolation returns the color space the engine blends in.
func (e *Engine) Interpolation() Interpolation { return e.opts.space }

// ResolveColor is the memoised form of the package-level ResolveColor.
func (e *Engine) ResolveColor(value float64, segments []Segment, smooth bool) (string, bool) {
	adaptive := adaptiveColor(e.opts.theme)
	compute := func() colorResult {
		c, ok := resolveSorted(value, SortSegments(segments, adaptive), smooth, e.opts.space)
		return colorResult{color: c, ok: ok}
	}
	if e.colors == nil {
		r := compute()
		return r.color, r.ok
	}

	var k keyBuilder
	k.float(value).bool(smooth).str(adaptive).segments(segments)
	r := e.colors.GetOrCreate(k.String(), compute)
	return r.color, r.ok
}

// CurrentArc is the memoised form of ComputeCurrentArc.
func (e *Engine) CurrentArc(value float64, r Range, g Geometry, mode Mode) (DashArc, bool) {
	compute := func() arcResult {
		a, ok := computeCurrentArc(value, r, g, mode, e.opts.digits)
		return arcResult{arc: a, ok: ok}
	}
	if e.arcs == nil {
		res := compute()
		return res.arc, res.ok
	}

	var k keyBuilder
	k.float(value).rng(r).geom(g).int(int(mode))
	res := e.arcs.GetOrCreate(k.String(), compute)
	return res.arc, res.ok
}

// Segments is the memoised form of RenderSegments.
func (e *Engine) Segments(segments []Segment, r Range, g Geometry, smooth bool) SegmentRender {
	adaptive := adaptiveColor(e.opts.theme)
	compute := func() SegmentRender {
		return renderSorted(SortSegments(segments, adaptive), r, g, smooth, e.opts.space, e.opts.digits)
	}
	if e.bands == nil {
		return compute()
	}

	var k keyBuilder
	k.rng(r).geom(g).bool(smooth).str(adaptive).segments(segments)
	return e.bands.GetOrCreate(k.String(), compute)
}

// Ring is the memoised form of RenderRing.
func (e *Engine) Ring(value float64, cfg RingConfig, g Geometry) RingRender {
	adaptive := adaptiveColor(e.opts.theme)
	compute := func() RingRender {
		return renderRing(value, cfg, SortSegments(cfg.Segments, adaptive), adaptive, g, e.opts.space, e.opts.digits)
	}
	if e.rings == nil {
		return compute()
	}

	var k keyBuilder
	k.float(value).rng(cfg.Range).geom(g).bool(cfg.Smooth).int(int(cfg.Mode)).
		str(cfg.Color).str(adaptive).segments(cfg.Segments)
	return e.rings.GetOrCreate(k.String(), compute)
}

// Stats returns the combined statistics of the engine's caches.
func (e *Engine) Stats() Stats {
	if e.colors == nil {
		return Stats{}
	}
	return e.colors.Stats().Merge(e.arcs.Stats()).Merge(e.bands.Stats()).Merge(e.rings.Stats())
}

// Reset drops all memoised results, e.g. after a theme change.
func (e *Engine) Reset() {
	if e.colors == nil {
		return
	}
	e.colors.Clear()
	e.arcs.Clear()
	e.bands.Clear()
	e.rings.Clear()
}

// keyBuilder encodes an input tuple as a cache key. Floats are written with
// full precision so distinct inputs never share a key.
type keyBuilder struct {
	b strings.Builder
}

func (k *keyBuilder) float(f float64) *keyBuilder {
	k.b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	k.b.WriteByte('|')
	return k
}

func (k *keyBuilder) int(i int) *keyBuilder {
	k.b.WriteString(strconv.Itoa(i))
	k.b.WriteByte('|')
	return k
}

func (k *keyBuilder) bool(v bool) *keyBuilder {
	if v {
		k.b.WriteString("t|")
	} else {
		k.b.WriteString("f|")
	}
	return k
}

func (k *keyBuilder) str(s string) *keyBuilder {
	k.b.WriteString(strconv.Quote(s))
	k.b.WriteByte('|')
	return k
}

func (k *keyBuilder) rng(r Range) *keyBuilder {
	return k.float(r.Min).float(r.Max)
}

func (k *keyBuilder) geom(g Geometry) *keyBuilder {
	return k.float(g.Radius).float(g.Sweep).float(g.Rotation)
}

func (k *keyBuilder) segments(segs []Segment) *keyBuilder {
	k.int(len(segs))
	for _, s := range segs {
		k.float(s.From).str(s.Color).str(s.Label)
	}
	return k
}

func (k *keyBuilder) String() string { return k.b.String() }
