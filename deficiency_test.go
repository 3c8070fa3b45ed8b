package chroma

import "testing"

func TestDeficiencyZeroSeverityIsIdentity(t *testing.T) {
	sims := []struct {
		name string
		f    func(Color, float64) Color
	}{
		{"protanopic", Protanopic},
		{"deuteranopic", Deuteranopic},
		{"tritanopic", Tritanopic},
	}
	c := RGB{0.7, 0.3, 0.5}

	for _, tt := range sims {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.f(c, 0).(RGB)
			if !ok {
				t.Fatalf("%s returned %T, want RGB", tt.name, tt.f(c, 0))
			}
			if !rgbNear(got, c, 1e-9) {
				t.Errorf("%s at severity 0 = %+v, want the input %+v", tt.name, got, c)
			}
		})
	}
}

func TestDeficiencyPreservesSpace(t *testing.T) {
	if _, ok := Protanopic(Lab{50, 20, 20}, 1).(Lab); !ok {
		t.Error("Protanopic of a Lab input should return Lab")
	}
	if _, ok := Tritanopic(HSV{200, 0.5, 0.5}, 0.5).(HSV); !ok {
		t.Error("Tritanopic of an HSV input should return HSV")
	}
}

func TestDeficiencyCollapsesConfusionColors(t *testing.T) {
	// The defining property of dichromacy: colors along a confusion
	// line become much harder to tell apart. Red and green collapse for
	// the red-green deficiencies. The drop is bounded below 1/2 only
	// for deuteranopes; a protanope sees red as much darker than green,
	// and that lightness difference survives the projection.
	before := ColorDiffDefault(Red, Green)

	for _, tt := range []struct {
		name  string
		f     func(Color, float64) Color
		bound float64
	}{
		{"protanopic", Protanopic, 0.6},
		{"deuteranopic", Deuteranopic, 0.3},
	} {
		t.Run(tt.name, func(t *testing.T) {
			after := ColorDiffDefault(tt.f(Red, 1), tt.f(Green, 1))
			if after > before*tt.bound {
				t.Errorf("red/green distance only fell from %v to %v under %s", before, after, tt.name)
			}
		})
	}
}

func TestDeficiencySeverityInterpolates(t *testing.T) {
	// Intermediate severity lands between normal vision and full
	// dichromacy.
	full := ColorDiffDefault(Deuteranopic(Red, 1), Red)
	half := ColorDiffDefault(Deuteranopic(Red, 0.5), Red)
	if half <= 0 || half >= full {
		t.Errorf("half-severity shift %v not between 0 and the full shift %v", half, full)
	}
}

func TestDeficiencyPreservesNeutrals(t *testing.T) {
	// Grays lie on every confusion surface; simulation moves them very
	// little.
	for _, g := range []RGB{{0.2, 0.2, 0.2}, {0.5, 0.5, 0.5}, {0.9, 0.9, 0.9}} {
		got := ToRGB(Deuteranopic(g, 1))
		if !rgbNear(got, g, 0.05) {
			t.Errorf("Deuteranopic(%+v) = %+v, want a near-identical gray", g, got)
		}
	}
}
