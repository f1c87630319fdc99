// Package card loads gauge card definitions from YAML.
//
// A card describes up to three concentric rings. The primary ring's fields
// sit at the top level of the document; secondary and tertiary rings are
// nested under their own keys:
//
//	name: CPU
//	unit: "%"
//	value: 65
//	gauge_type: full
//	smooth_segments: true
//	segments:
//	  - {from: 0, color: green}
//	  - {from: 50, color: yellow}
//	  - {from: 80, color: red}
//	secondary:
//	  value: ${CPU_TEMP:41}
//	  max: 90
//
// Environment references of the form ${VAR} or ${VAR:default} are expanded
// before decoding.
package card

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gauge"
)

var (
	// ErrEmptyDocument is returned for a file without any YAML content.
	ErrEmptyDocument = errors.New("card: empty document")
	// ErrNoRings is returned when every ring of a card is hidden.
	ErrNoRings = errors.New("card: no visible rings")
)

// ShowNone hides a ring.
const ShowNone = "none"

// Card is a decoded card definition.
type Card struct {
	Name      string `yaml:"name"`
	GaugeType string `yaml:"gauge_type"`
	Lang      string `yaml:"lang"` // BCP 47 tag for value formatting

	Ring `yaml:",inline"`

	Secondary *Ring `yaml:"secondary"`
	Tertiary  *Ring `yaml:"tertiary"`
}

// Ring is the configuration of a single ring.
type Ring struct {
	Entity         string    `yaml:"entity"`
	Label          string    `yaml:"label"`
	Unit           string    `yaml:"unit"`
	Value          Number    `yaml:"value"`
	Min            *Number   `yaml:"min"`
	Max            *Number   `yaml:"max"`
	Decimals       *int      `yaml:"decimals"`
	Needle         bool      `yaml:"needle"`
	StartFromZero  bool      `yaml:"start_from_zero"`
	SmoothSegments *bool     `yaml:"smooth_segments"` // nested rings inherit the card's setting when unset
	Color          string    `yaml:"color"`
	ShowGauge      string    `yaml:"show_gauge"`
	Segments       []Segment `yaml:"segments"`
}

// Segment is one color band of a ring.
type Segment struct {
	From  Number `yaml:"from"`
	Color string `yaml:"color"`
	Label string `yaml:"label"`
}

// Number is a YAML scalar read as a float. Scalars that do not parse as a
// number, such as "unavailable", decode to NaN instead of failing the load.
type Number float64

// UnmarshalYAML implements yaml.Unmarshaler for Number.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: number must be a scalar", value.Line)
	}
	var f float64
	if err := value.Decode(&f); err == nil {
		*n = Number(f)
		return nil
	}
	// Quoted numbers arrive as strings.
	f, err := strconv.ParseFloat(strings.TrimSpace(value.Value), 64)
	if err != nil {
		gauge.Logger().Debug("card: non-numeric value", "line", value.Line, "value", value.Value)
		f = math.NaN()
	}
	*n = Number(f)
	return nil
}

// Float returns n as a float64.
func (n Number) Float() float64 { return float64(n) }

// or returns the value of n, or def when n is not set.
func (n *Number) or(def float64) float64 {
	if n == nil {
		return def
	}
	return float64(*n)
}

func num(f float64) *Number {
	n := Number(f)
	return &n
}

// Hidden reports whether the ring is configured not to render.
func (r *Ring) Hidden() bool {
	return r == nil || strings.EqualFold(strings.TrimSpace(r.ShowGauge), ShowNone)
}

// Range returns the ring's value range.
func (r *Ring) Range() gauge.Range {
	return gauge.Range{
		Min: r.Min.or(gauge.DefaultRange.Min),
		Max: r.Max.or(gauge.DefaultRange.Max),
	}
}

// Mode returns the ring's rendering mode flags.
func (r *Ring) Mode() gauge.Mode {
	var m gauge.Mode
	if r.StartFromZero {
		m |= gauge.ModeStartFromZero
	}
	if r.Needle {
		m |= gauge.ModeNeedle
	}
	return m
}

// GaugeSegments converts the ring's segments to engine segments.
func (r *Ring) GaugeSegments() []gauge.Segment {
	if len(r.Segments) == 0 {
		return nil
	}
	out := make([]gauge.Segment, len(r.Segments))
	for i, s := range r.Segments {
		out[i] = gauge.Segment{From: s.From.Float(), Color: s.Color, Label: s.Label}
	}
	return out
}

// Smooth reports whether the ring blends between segments. An unset flag
// reads as false; Card.Layers resolves inheritance for nested rings.
func (r *Ring) Smooth() bool {
	return r.SmoothSegments != nil && *r.SmoothSegments
}

// Config returns the engine configuration of the ring.
func (r *Ring) Config() gauge.RingConfig {
	return gauge.RingConfig{
		Range:    r.Range(),
		Segments: r.GaugeSegments(),
		Smooth:   r.Smooth(),
		Mode:     r.Mode(),
		Color:    r.Color,
	}
}

// Layer is a visible ring ready for rendering.
type Layer struct {
	Ring     gauge.Ring
	Value    float64
	Decimals int // -1 formats with up to six fraction digits
	Unit     string
	Label    string
	Config   gauge.RingConfig
	Geometry gauge.Geometry
}

// Type returns the card's gauge type. Unknown names fall back to full.
func (c *Card) Type() gauge.GaugeType {
	t, _ := gauge.ParseGaugeType(c.GaugeType)
	return t
}

// Layers returns the visible rings from the outermost inwards.
func (c *Card) Layers() []Layer {
	gt := c.Type()
	rings := [...]struct {
		id gauge.Ring
		r  *Ring
	}{
		{gauge.RingPrimary, &c.Ring},
		{gauge.RingSecondary, c.Secondary},
		{gauge.RingTertiary, c.Tertiary},
	}

	var out []Layer
	for _, e := range rings {
		if e.r.Hidden() {
			continue
		}
		dec := -1
		if e.r.Decimals != nil {
			dec = *e.r.Decimals
		}
		cfg := e.r.Config()
		if e.r.SmoothSegments == nil {
			cfg.Smooth = c.Ring.Smooth()
		}
		out = append(out, Layer{
			Ring:     e.id,
			Value:    e.r.Value.Float(),
			Decimals: dec,
			Unit:     e.r.Unit,
			Label:    e.r.Label,
			Config:   cfg,
			Geometry: gauge.GeometryFor(gt, gauge.RingRadius(e.id)),
		})
	}
	return out
}
