// Package preview rasterises gauge cards to PNG with the gg 2D library.
//
// The preview draws tracks, segment bands, value arcs and needles. State
// text is left to the SVG output.
package preview

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/card"
)

const (
	// DefaultSize is the default image width in pixels.
	DefaultSize = 256
	// DefaultSlices is the number of slices a smooth gradient is split into.
	DefaultSlices = 96

	primaryWidth = 6.0
	innerWidth   = 4.0
	needleWidth  = 2.0
	bandAlpha    = 0.35
)

var (
	trackColor  = gauge.RGB(0.88, 0.88, 0.88)
	needleColor = gauge.RGB(0.26, 0.26, 0.26)
	accentColor = gauge.RGB(0.012, 0.663, 0.957)
)

// Renderer draws card previews.
type Renderer struct {
	engine     *gauge.Engine
	size       int
	slices     int
	background gauge.RGBA
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine sets the engine used to evaluate rings.
func WithEngine(e *gauge.Engine) Option {
	return func(r *Renderer) {
		if e != nil {
			r.engine = e
		}
	}
}

// WithSize sets the image width in pixels.
func WithSize(px int) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.size = px
		}
	}
}

// WithSlices sets how many slices approximate a smooth gradient.
func WithSlices(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.slices = n
		}
	}
}

// WithBackground sets the fill behind the gauge. The default is transparent.
func WithBackground(c gauge.RGBA) Option {
	return func(r *Renderer) { r.background = c }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		size:       DefaultSize,
		slices:     DefaultSlices,
		background: gauge.Transparent,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = gauge.NewEngine()
	}
	return r
}

// Image renders c and returns the pixels.
func (r *Renderer) Image(c *card.Card) (image.Image, error) {
	dc, err := r.draw(c)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders c and encodes it as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, c *card.Card) error {
	dc, err := r.draw(c)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG renders c to a PNG file.
func (r *Renderer) SavePNG(path string, c *card.Card) error {
	dc, err := r.draw(c)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(path)
}

// canvas maps viewBox units to pixels.
type canvas struct {
	dc     *gg.Context
	scale  float64
	cx, cy float64
}

func (cv canvas) arc(g gauge.Geometry, start, end, width float64, col gauge.RGBA) error {
	if end <= start {
		return nil
	}
	cv.dc.NewSubPath()
	cv.dc.SetColor(col.Color())
	cv.dc.SetLineWidth(width * cv.scale)
	cv.dc.DrawArc(cv.cx, cv.cy, g.Radius*cv.scale, radians(g.Rotation+start), radians(g.Rotation+end))
	return cv.dc.Stroke()
}

func (cv canvas) line(from, to gauge.Point, width float64, col gauge.RGBA) error {
	cv.dc.SetColor(col.Color())
	cv.dc.SetLineWidth(width * cv.scale)
	cv.dc.DrawLine(cv.cx+from.X*cv.scale, cv.cy+from.Y*cv.scale, cv.cx+to.X*cv.scale, cv.cy+to.Y*cv.scale)
	return cv.dc.Stroke()
}

func (r *Renderer) draw(c *card.Card) (*gg.Context, error) {
	layers := c.Layers()
	if len(layers) == 0 {
		return nil, card.ErrNoRings
	}

	height := r.size
	if c.Type() == gauge.GaugeHalf {
		height = r.size * 58 / 100
	}
	dc := gg.NewContext(r.size, height)
	dc.ClearWithColor(gg.RGBA2(r.background.R, r.background.G, r.background.B, r.background.A))
	dc.SetLineCap(gg.LineCapRound)

	scale := float64(r.size) / 100
	cv := canvas{dc: dc, scale: scale, cx: 50 * scale, cy: 50 * scale}

	for _, l := range layers {
		if err := r.drawRing(cv, l); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

func (r *Renderer) drawRing(cv canvas, l card.Layer) error {
	g := l.Geometry
	out := r.engine.Ring(l.Value, l.Config, g)

	width := innerWidth
	if l.Ring == gauge.RingPrimary {
		width = primaryWidth
	}

	if err := cv.arc(g, 0, g.Sweep, width, trackColor); err != nil {
		return err
	}
	for _, s := range out.Bands.Approximate(r.slices) {
		col, ok := gauge.ParseColor(s.Color)
		if !ok {
			continue
		}
		col.A *= bandAlpha
		if err := cv.arc(g, s.StartAngle, s.EndAngle, width, col); err != nil {
			return err
		}
	}

	accent, ok := gauge.ParseColor(out.Accent)
	if !ok {
		accent = accentColor
	}
	switch {
	case out.Needle != nil:
		inner := gauge.Polar(g.Radius-width, out.Needle.Angle)
		outer := gauge.Polar(g.Radius+width/2, out.Needle.Angle)
		return cv.line(inner, outer, needleWidth, needleColor)
	case out.ValueVisible:
		return cv.arc(g, out.Value.StartAngle, out.Value.EndAngle, width, accent)
	}
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
