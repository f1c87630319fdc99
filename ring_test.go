package gauge

import "testing"

func TestRenderRing(t *testing.T) {
	g := GeometryFor(GaugeFull, RingRadius(RingPrimary))
	cfg := RingConfig{Range: Range{0, 100}, Segments: traffic}

	out := RenderRing(60, cfg, g, nil)
	if out.Accent != "yellow" {
		t.Errorf("Accent = %q, want yellow", out.Accent)
	}
	if !out.ValueVisible || out.Value.EndAngle != 162 {
		t.Errorf("Value = %+v (visible %v), want end angle 162", out.Value, out.ValueVisible)
	}
	if out.Needle != nil {
		t.Error("needle set outside needle mode")
	}
	if len(out.Bands.Slices) != 3 {
		t.Errorf("got %d bands, want 3", len(out.Bands.Slices))
	}
	if out.Track.String() != g.Track().String() {
		t.Errorf("Track = %q", out.Track)
	}
}

func TestRenderRingAccent(t *testing.T) {
	g := GeometryFor(GaugeFull, RingRadius(RingPrimary))
	theme := ThemeFunc(func() string { return "#00ff00" })

	tests := []struct {
		name     string
		color    string
		segments []Segment
		smooth   bool
		theme    ThemeLookup
		want     string
	}{
		{"color overrides segments", "blue", traffic, false, nil, "blue"},
		{"color overrides smooth segments", "#123456", traffic, true, nil, "#123456"},
		{"adaptive color defers to segments", "adaptive", traffic, false, nil, "yellow"},
		{"adaptive color without segments uses theme", "Adaptive", nil, false, theme, "#00ff00"},
		{"adaptive color without theme", "adaptive", nil, false, nil, DefaultAdaptiveColor},
		{"no color uses segments", "", traffic, true, nil, "rgb(255, 188, 0)"},
		{"nothing configured", "", nil, false, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RingConfig{Range: Range{0, 100}, Segments: tt.segments, Smooth: tt.smooth, Color: tt.color}
			if got := RenderRing(65, cfg, g, tt.theme).Accent; got != tt.want {
				t.Errorf("Accent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderRingModes(t *testing.T) {
	g := GeometryFor(GaugeHalf, RingRadius(RingSecondary))

	t.Run("needle", func(t *testing.T) {
		out := RenderRing(50, RingConfig{Range: Range{0, 100}, Mode: ModeNeedle}, g, nil)
		if out.ValueVisible {
			t.Error("needle mode rendered a value arc")
		}
		if out.Needle == nil || out.Needle.Angle != 270 {
			t.Errorf("Needle = %+v, want angle 270", out.Needle)
		}
	})

	t.Run("hidden at min", func(t *testing.T) {
		out := RenderRing(0, RingConfig{Range: Range{0, 100}}, g, nil)
		if out.ValueVisible {
			t.Error("value at min should be hidden")
		}
	})

	t.Run("no segments keeps configured color", func(t *testing.T) {
		out := RenderRing(10, RingConfig{Range: Range{0, 100}, Color: "#abcdef"}, g, nil)
		if out.Accent != "#abcdef" {
			t.Errorf("Accent = %q, want #abcdef", out.Accent)
		}
	})

	t.Run("invalid range uses default", func(t *testing.T) {
		out := RenderRing(50, RingConfig{Range: Range{5, 5}}, g, nil)
		if !out.ValueVisible || out.Value.EndAngle != 90 {
			t.Errorf("Value = %+v, want end angle 90 on the default range", out.Value)
		}
	})

	t.Run("smooth accent", func(t *testing.T) {
		out := RenderRing(65, RingConfig{Range: Range{0, 100}, Segments: traffic, Smooth: true}, g, nil)
		if out.Accent != "rgb(255, 188, 0)" {
			t.Errorf("Accent = %q", out.Accent)
		}
		if out.Bands.Gradient == nil {
			t.Error("smooth ring should have gradient bands")
		}
	})
}
