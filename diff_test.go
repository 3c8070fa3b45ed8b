package chroma

import (
	"math"
	"testing"
)

// ciede2000Pairs are reference pairs from the CIEDE2000 test data
// published with Sharma, Wu and Dalal (2005), including the
// zero-chroma and hue-wraparound cases that exercise the formula's
// special branches.
var ciede2000Pairs = []struct {
	name   string
	c1, c2 Lab
	want   float64
}{
	{"blue region 1", Lab{50.0000, 2.6772, -79.7751}, Lab{50.0000, 0.0000, -82.7485}, 2.0425},
	{"blue region 2", Lab{50.0000, 3.1571, -77.2803}, Lab{50.0000, 0.0000, -82.7485}, 2.8615},
	{"blue region 3", Lab{50.0000, 2.8361, -74.0200}, Lab{50.0000, 0.0000, -82.7485}, 3.4412},
	{"zero chroma reference", Lab{50.0000, 0.0000, 0.0000}, Lab{50.0000, -1.0000, 2.0000}, 2.3669},
	{"hue wraparound", Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0009}, 7.1792},
	{"green", Lab{60.2574, -34.0099, 36.2677}, Lab{60.4626, -34.1751, 39.4387}, 1.2644},
	{"near black", Lab{2.0776, 0.0795, -1.1350}, Lab{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestCIEDE2000ReferencePairs(t *testing.T) {
	for _, tt := range ciede2000Pairs {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorDiff(tt.c1, tt.c2, DE2000())
			if !near2(got, tt.want, 5e-4) {
				t.Errorf("DE2000(%+v, %+v) = %.4f, want %.4f", tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

func TestCIEDE2000LightnessOnly(t *testing.T) {
	// With a and b zero the hue and chroma terms vanish and SL is 1 at
	// mean lightness 50, so the distance is exactly the L difference.
	got := ColorDiff(Lab{0, 0, 0}, Lab{100, 0, 0}, DE2000())
	if !near2(got, 100, 1e-9) {
		t.Errorf("DE2000(black, white grays) = %v, want 100", got)
	}
}

func allMetrics() []struct {
	name string
	m    Metric
} {
	return []struct {
		name string
		m    Metric
	}{
		{"de2000", DE2000()},
		{"de94", DE94()},
		{"de94 textiles", DE94Textiles()},
		{"cmc 2:1", DECMC(2, 1)},
		{"bfd", DEBFD()},
		{"jpc79", DEJPC79()},
		{"ab", DEAB()},
		{"din99", DEDIN99()},
		{"din99d", DEDIN99d()},
		{"din99o", DEDIN99o()},
	}
}

func TestMetricIdentityIsZero(t *testing.T) {
	c := Lab{L: 61.3, A: 22.1, B: -40.9}
	for _, tt := range allMetrics() {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorDiff(c, c, tt.m); !near2(got, 0, 1e-9) {
				t.Errorf("%s distance of a color to itself = %v, want 0", tt.name, got)
			}
		})
	}
}

func TestMetricNonnegative(t *testing.T) {
	pairs := [][2]Color{
		{Red, Blue},
		{Black, White},
		{Lab{50, 1, 1}, Lab{50.01, 1, 1.01}},
	}
	for _, tt := range allMetrics() {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range pairs {
				if got := ColorDiff(p[0], p[1], tt.m); got < 0 {
					t.Errorf("%s(%v, %v) = %v, want nonnegative", tt.name, p[0], p[1], got)
				}
			}
		})
	}
}

func TestSymmetricMetrics(t *testing.T) {
	symmetric := []struct {
		name string
		m    Metric
	}{
		{"de2000", DE2000()},
		{"jpc79", DEJPC79()},
		{"ab", DEAB()},
		{"din99", DEDIN99()},
		{"din99d", DEDIN99d()},
		{"din99o", DEDIN99o()},
	}
	a, b := Lab{55, 30, -25}, Lab{47, -12, 60}
	for _, tt := range symmetric {
		t.Run(tt.name, func(t *testing.T) {
			d1 := ColorDiff(a, b, tt.m)
			d2 := ColorDiff(b, a, tt.m)
			if !near2(d1, d2, 1e-9) {
				t.Errorf("%s is not symmetric: %v vs %v", tt.name, d1, d2)
			}
		})
	}
}

func TestCMCIsReferenceRelative(t *testing.T) {
	// CMC weights by the first color, so swapping the arguments changes
	// the result for chromatic pairs.
	a, b := Lab{55, 30, -25}, Lab{47, -12, 60}
	d1 := ColorDiff(a, b, DECMC(2, 1))
	d2 := ColorDiff(b, a, DECMC(2, 1))
	if near2(d1, d2, 1e-9) {
		t.Errorf("CMC(a, b) = CMC(b, a) = %v, expected reference asymmetry", d1)
	}
}

func TestCMCAcceptabilityRatio(t *testing.T) {
	// The 2:1 acceptability ratio halves the lightness contribution, so
	// for a pure lightness difference it reports half the 1:1 value.
	a, b := Lab{40, 10, 10}, Lab{60, 10, 10}
	d11 := ColorDiff(a, b, DECMC(1, 1))
	d21 := ColorDiff(a, b, DECMC(2, 1))
	if !near2(d21, d11/2, 1e-9) {
		t.Errorf("CMC 2:1 = %v, want half of 1:1 = %v", d21, d11)
	}
}

func TestDE94UsesFirstColorChroma(t *testing.T) {
	// Same structural asymmetry as CMC: the weighting chroma is the
	// reference's.
	a, b := Lab{50, 60, 0}, Lab{50, 0, 0}
	d1 := ColorDiff(a, b, DE94())
	d2 := ColorDiff(b, a, DE94())
	if near2(d1, d2, 1e-9) {
		t.Errorf("DE94(a, b) = DE94(b, a) = %v, expected reference asymmetry", d1)
	}
}

func TestDEABIsEuclidean(t *testing.T) {
	got := ColorDiff(Lab{0, 0, 0}, Lab{100, 0, 0}, DEAB())
	if !near2(got, 100, 1e-12) {
		t.Errorf("DEAB lightness difference = %v, want 100", got)
	}
	got = ColorDiff(Lab{50, 3, 4}, Lab{50, 0, 0}, DEAB())
	if !near2(got, 5, 1e-12) {
		t.Errorf("DEAB(3-4-5 triangle) = %v, want 5", got)
	}
}

func TestColorDiffConvertsInputs(t *testing.T) {
	// Inputs in different spaces are converted into the metric's
	// working space, so representation must not matter.
	a := Red
	b := ToLCHab(Red)
	if got := ColorDiffDefault(a, b); !near2(got, 0, 1e-9) {
		t.Errorf("distance between RGB red and LCHab red = %v, want 0", got)
	}
}

func TestBFDWhiteRefChangesResult(t *testing.T) {
	// BFD re-derives both colors from XYZ under its own white point.
	// For Lab inputs the decode and re-encode cancel, so the white
	// point only shows up for inputs outside the Lab/Luv family.
	a, b := RGB{0.7, 0.2, 0.3}, RGB{0.2, 0.5, 0.6}
	d65 := ColorDiff(a, b, DEBFD())
	d50 := ColorDiff(a, b, DEBFDWhiteRef(WhitePointD50))
	if math.Abs(d65-d50) < 0.1 {
		t.Errorf("BFD under D65 = %v vs D50 = %v, expected a clear difference", d65, d50)
	}

	la, lb := Lab{50, 20, -30}, Lab{55, -10, 25}
	if g65, g50 := ColorDiff(la, lb, DEBFD()), ColorDiff(la, lb, DEBFDWhiteRef(WhitePointD50)); !near2(g65, g50, 1e-9) {
		t.Errorf("BFD of Lab inputs under D65 = %v vs D50 = %v, want identical", g65, g50)
	}
}

func TestMeanHueShortWay(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{10, 20, 15},
		{350, 10, 0},
		{10, 350, 0},
		{90, 270, 180},
	}
	for _, tt := range tests {
		if got := meanHue(tt.h1, tt.h2); !near2(normHue(got), tt.want, 1e-9) {
			t.Errorf("meanHue(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func BenchmarkColorDiffDE2000(b *testing.B) {
	c1, c2 := Lab{50, 2.6772, -79.7751}, Lab{50, 0, -82.7485}
	m := DE2000()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ColorDiff(c1, c2, m)
	}
}
