package card

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gauge"
)

// Load reads and parses the card file at path.
func Load(path string) (*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a card definition and applies defaults.
func Parse(data []byte) (*Card, error) {
	expanded := expandEnvVars(string(data))

	var c Card
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode card: %w", err)
	}

	if _, ok := gauge.ParseGaugeType(c.GaugeType); !ok {
		gauge.Logger().Warn("card: unknown gauge type, using full", "gauge_type", c.GaugeType)
	}
	if c.Lang == "" {
		c.Lang = "en"
	}

	applyDefaults(gauge.RingPrimary, &c.Ring)
	if c.Secondary != nil {
		applyDefaults(gauge.RingSecondary, c.Secondary)
	}
	if c.Tertiary != nil {
		applyDefaults(gauge.RingTertiary, c.Tertiary)
	}

	if len(c.Layers()) == 0 {
		return nil, ErrNoRings
	}
	return &c, nil
}

// applyDefaults fills in unset or unusable bounds from gauge.DefaultRange.
// Explicit values, zero included, are kept.
func applyDefaults(id gauge.Ring, r *Ring) {
	if r.Min == nil {
		r.Min = num(gauge.DefaultRange.Min)
	} else if !finite(r.Min.Float()) {
		gauge.Logger().Warn("card: invalid min, using default",
			"ring", id.String(), "default", gauge.DefaultRange.Min)
		r.Min = num(gauge.DefaultRange.Min)
	}
	if r.Max == nil {
		r.Max = num(gauge.DefaultRange.Max)
	} else if !finite(r.Max.Float()) {
		gauge.Logger().Warn("card: invalid max, using default",
			"ring", id.String(), "default", gauge.DefaultRange.Max)
		r.Max = num(gauge.DefaultRange.Max)
	}
	if !r.Range().Valid() {
		gauge.Logger().Warn("card: min must be below max, using default range",
			"ring", id.String(), "min", r.Min.Float(), "max", r.Max.Float())
		r.Min = num(gauge.DefaultRange.Min)
		r.Max = num(gauge.DefaultRange.Max)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

var envRef = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// expandEnvVars expands ${VAR} and ${VAR:default} references.
func expandEnvVars(input string) string {
	return envRef.ReplaceAllStringFunc(input, func(match string) string {
		parts := envRef.FindStringSubmatch(match)
		if val := os.Getenv(parts[1]); val != "" {
			return val
		}
		return parts[2]
	})
}
