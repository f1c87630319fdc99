package gauge

import (
	"math"
	"testing"
)

func TestComputeCurrentArc(t *testing.T) {
	g := GeometryFor(GaugeFull, 47)
	tests := []struct {
		name             string
		value            float64
		r                Range
		mode             Mode
		wantOK           bool
		wantStart, wantE float64
	}{
		{"half full", 50, Range{0, 100}, 0, true, 0, 135},
		{"full", 100, Range{0, 100}, 0, true, 0, 270},
		{"over max clamps", 150, Range{0, 100}, 0, true, 0, 270},
		{"at min hidden", 0, Range{0, 100}, 0, false, 0, 0},
		{"below min hidden", -5, Range{0, 100}, 0, false, 0, 0},
		{"positive min hidden", 10, Range{10, 20}, 0, false, 0, 0},
		{"negative min at min shown", -50, Range{-50, 50}, 0, true, 0, 0},
		{"zero start positive", 25, Range{-50, 50}, ModeStartFromZero, true, 135, 202.5},
		{"zero start negative", -25, Range{-50, 50}, ModeStartFromZero, true, 67.5, 135},
		{"zero start outside range", 15, Range{10, 20}, ModeStartFromZero, true, 0, 135},
		{"needle", 50, Range{0, 100}, ModeNeedle, false, 0, 0},
		{"needle with zero start", 50, Range{-50, 50}, ModeNeedle | ModeStartFromZero, false, 0, 0},
		{"nan", math.NaN(), Range{-50, 50}, 0, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeCurrentArc(tt.value, tt.r, g, tt.mode)
			if ok != tt.wantOK {
				t.Fatalf("ComputeCurrentArc() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(got.StartAngle-tt.wantStart) > angleEpsilon || math.Abs(got.EndAngle-tt.wantE) > angleEpsilon {
				t.Errorf("angles = %v..%v, want %v..%v", got.StartAngle, got.EndAngle, tt.wantStart, tt.wantE)
			}
			if got.StartAngle > got.EndAngle {
				t.Errorf("arc sweeps backwards: %v..%v", got.StartAngle, got.EndAngle)
			}
			if want := g.Arc(tt.wantStart, tt.wantE).String(); got.Path.String() != want {
				t.Errorf("Path = %q, want %q", got.Path, want)
			}
		})
	}
}

func TestComputeCurrentArcDash(t *testing.T) {
	g := GeometryFor(GaugeFull, 47)

	got, ok := ComputeCurrentArc(50, Range{0, 100}, g, 0)
	if !ok {
		t.Fatal("expected visible arc")
	}
	// Track length is 47 * 2π * 270/360 = 221.482...
	if got.DashArray != "110.741 221.482" {
		t.Errorf("DashArray = %q, want %q", got.DashArray, "110.741 221.482")
	}
	if got.DashOffset != "0" {
		t.Errorf("DashOffset = %q, want 0", got.DashOffset)
	}

	got, _ = ComputeCurrentArc(25, Range{-50, 50}, g, ModeStartFromZero)
	if got.DashOffset != "-110.741" {
		t.Errorf("zero-start DashOffset = %q, want -110.741", got.DashOffset)
	}
	if got.Sweep() != 67.5 {
		t.Errorf("Sweep() = %v, want 67.5", got.Sweep())
	}
}

func TestComputeNeedle(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		g         Geometry
		wantAngle float64
		wantTip   Point
		wantXform string
	}{
		{"half gauge middle", 50, GeometryFor(GaugeHalf, 47), 270, Pt(0, -47), "rotate(270)"},
		{"half gauge min", 0, GeometryFor(GaugeHalf, 47), 180, Pt(-47, 0), "rotate(180)"},
		{"full gauge max", 100, GeometryFor(GaugeFull, 10), 405, Pt(7.071, 7.071), "rotate(405)"},
		{"clamped", -40, GeometryFor(GaugeFull, 10), 135, Pt(-7.071, 7.071), "rotate(135)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ComputeNeedle(tt.value, Range{0, 100}, tt.g)
			if n.Angle != tt.wantAngle {
				t.Errorf("Angle = %v, want %v", n.Angle, tt.wantAngle)
			}
			if n.Tip != tt.wantTip {
				t.Errorf("Tip = %v, want %v", n.Tip, tt.wantTip)
			}
			if n.Transform() != tt.wantXform {
				t.Errorf("Transform() = %q, want %q", n.Transform(), tt.wantXform)
			}
		})
	}
}

func TestModeHas(t *testing.T) {
	m := ModeNeedle | ModeStartFromZero
	if !m.Has(ModeNeedle) || !m.Has(ModeStartFromZero) {
		t.Error("combined mode lost a flag")
	}
	if Mode(0).Has(ModeNeedle) {
		t.Error("zero mode reports needle")
	}
}
