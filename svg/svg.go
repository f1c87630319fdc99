// Package svg writes gauge cards as standalone SVG documents.
//
// Rings are drawn centred on the origin of a 100×100 viewBox. Smooth
// segment gradients are approximated with uniformly colored slices since
// SVG has no conic gradient.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/card"
)

// Defaults used when a Renderer is created without options.
const (
	DefaultSize         = 200
	DefaultSlices       = 48
	DefaultAccent       = "#03a9f4"
	DefaultTrackColor   = "#e0e0e0"
	DefaultNeedleColor  = "#424242"
	segmentOpacity      = "0.35"
	primaryStrokeWidth  = 6
	innerStrokeWidth    = 4
	needleStrokeWidth   = 2
	primaryTextSize     = 16
	secondaryTextSize   = 8
	halfGaugeViewHeight = 58
)

// Renderer writes SVG documents. It is safe for concurrent use.
type Renderer struct {
	engine *gauge.Engine
	size   int
	slices int
	accent string
	track  string
	lang   string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine sets the engine used to evaluate rings. Sharing one engine
// between renderers shares its cache.
func WithEngine(e *gauge.Engine) Option {
	return func(r *Renderer) {
		if e != nil {
			r.engine = e
		}
	}
}

// WithSize sets the width of the document in pixels.
func WithSize(px int) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.size = px
		}
	}
}

// WithSlices sets the number of slices a gradient is split into.
func WithSlices(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.slices = n
		}
	}
}

// WithAccent sets the color of value arcs with no resolved color.
func WithAccent(color string) Option {
	return func(r *Renderer) {
		if color != "" {
			r.accent = color
		}
	}
}

// WithLang overrides the card's formatting language.
func WithLang(lang string) Option {
	return func(r *Renderer) { r.lang = lang }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		size:   DefaultSize,
		slices: DefaultSlices,
		accent: DefaultAccent,
		track:  DefaultTrackColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = gauge.NewEngine()
	}
	return r
}

// Render writes c as an SVG document to w.
func (r *Renderer) Render(w io.Writer, c *card.Card) error {
	layers := c.Layers()
	if len(layers) == 0 {
		return card.ErrNoRings
	}
	lang := c.Lang
	if r.lang != "" {
		lang = r.lang
	}

	viewH := 100
	if c.Type() == gauge.GaugeHalf {
		viewH = halfGaugeViewHeight
	}
	height := r.size * viewH / 100

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-50 -50 100 %d" width="%d" height="%d">`+"\n",
		viewH, r.size, height)
	if c.Name != "" {
		bw.WriteString("<title>")
		escape(bw, c.Name)
		bw.WriteString("</title>\n")
	}

	var primaryAccent string
	for _, l := range layers {
		out := r.engine.Ring(l.Value, l.Config, l.Geometry)
		accent := r.paint(out.Accent, r.accent)
		if l.Ring == gauge.RingPrimary {
			primaryAccent = accent
		}
		r.writeRing(bw, l, out, accent)
	}

	r.writeState(bw, c, layers, lang, primaryAccent)
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// String renders c and returns the document.
func (r *Renderer) String(c *card.Card) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) writeRing(w *bufio.Writer, l card.Layer, out gauge.RingRender, accent string) {
	width := innerStrokeWidth
	if l.Ring == gauge.RingPrimary {
		width = primaryStrokeWidth
	}

	fmt.Fprintf(w, `<g class="ring %s">`+"\n", l.Ring)
	writePath(w, "track", out.Track.String(), r.track, width, "")

	bands := out.Bands.Approximate(r.slices)
	if len(bands) > 0 && !(len(bands) == 1 && bands[0].Color == "") {
		w.WriteString(`<g class="segments">` + "\n")
		for _, b := range bands {
			color := r.track
			if b.Color != "" {
				color = r.paint(b.Color, accent)
			}
			writePath(w, "segment", b.Path.String(), color, width, segmentOpacity)
		}
		w.WriteString("</g>\n")
	}

	switch {
	case out.Needle != nil:
		n := out.Needle
		inner := l.Geometry.Radius - float64(width)
		fmt.Fprintf(w, `<line class="needle" x1="%s" y1="0" x2="%s" y2="0" stroke="`, num(inner), num(l.Geometry.Radius+float64(width)/2))
		escape(w, DefaultNeedleColor)
		fmt.Fprintf(w, `" stroke-width="%d" stroke-linecap="round" transform="%s"/>`+"\n", needleStrokeWidth, n.Transform())
	case out.ValueVisible:
		writePath(w, "value", out.Value.Path.String(), accent, width, "")
	}
	w.WriteString("</g>\n")
}

func (r *Renderer) writeState(w *bufio.Writer, c *card.Card, layers []card.Layer, lang, accent string) {
	y := 6.0
	if c.Type() == gauge.GaugeHalf {
		y = -4
	}
	for _, l := range layers {
		size := primaryTextSize
		if l.Ring != gauge.RingPrimary {
			size = secondaryTextSize
		}
		text := stateText(l, lang)
		fmt.Fprintf(w, `<text class="state %s" x="0" y="%s" font-size="%d" text-anchor="middle"`, l.Ring, num(y), size)
		if l.Ring == gauge.RingPrimary && accent != "" {
			w.WriteString(` fill="`)
			escape(w, accent)
			w.WriteByte('"')
		}
		w.WriteByte('>')
		escape(w, text)
		w.WriteString("</text>\n")
		y += float64(secondaryTextSize) + 4
	}
	if c.Label != "" {
		fmt.Fprintf(w, `<text class="label" x="0" y="%s" font-size="%d" text-anchor="middle">`, num(y), secondaryTextSize)
		escape(w, c.Label)
		w.WriteString("</text>\n")
	}
}

// stateText is the active segment's label, or the formatted value and unit.
func stateText(l card.Layer, lang string) string {
	if label := gauge.SegmentLabel(l.Value, l.Config.Segments); label != "" {
		return label
	}
	text := gauge.FormatValue(l.Value, l.Decimals, lang)
	if l.Unit != "" {
		text += " " + l.Unit
	}
	return text
}

// paint returns color when it is usable in a presentation attribute and
// fallback otherwise. CSS references such as var(--x) only resolve inside a
// styled page, not in a standalone document.
func (r *Renderer) paint(color, fallback string) string {
	if _, ok := gauge.ParseColor(color); ok {
		return color
	}
	if color != "" {
		gauge.Logger().Debug("svg: color not usable in a standalone document",
			"color", color, "fallback", fallback)
	}
	return fallback
}

func writePath(w *bufio.Writer, class, d, stroke string, width int, opacity string) {
	fmt.Fprintf(w, `<path class="%s" d="%s" fill="none" stroke="`, class, d)
	escape(w, stroke)
	fmt.Fprintf(w, `" stroke-width="%d" stroke-linecap="round"`, width)
	if opacity != "" {
		fmt.Fprintf(w, ` stroke-opacity="%s"`, opacity)
	}
	w.WriteString("/>\n")
}

// escape writes s with XML special characters escaped. Errors surface from
// the final Flush.
func escape(w *bufio.Writer, s string) {
	_ = xml.EscapeText(w, []byte(s))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
