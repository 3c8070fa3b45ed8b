package chroma

import "testing"

func TestWhitePointFromTemperature(t *testing.T) {
	tests := []struct {
		name   string
		kelvin float64
		x, y   float64
	}{
		{"D50", 5003, 0.3457, 0.3585},
		{"D65", 6504, 0.3127, 0.3290},
		{"D75", 7504, 0.2990, 0.3149},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WhitePointFromTemperature(tt.kelvin)
			if err != nil {
				t.Fatalf("WhitePointFromTemperature(%v) error = %v", tt.kelvin, err)
			}
			if !near2(got.X, tt.x, 2e-3) || !near2(got.Y, tt.y, 2e-3) {
				t.Errorf("WhitePointFromTemperature(%v) = (%v, %v), want about (%v, %v)",
					tt.kelvin, got.X, got.Y, tt.x, tt.y)
			}
			if got.Lum != 1 {
				t.Errorf("luminance = %v, want 1", got.Lum)
			}
		})
	}
}

func TestWhitePointFromTemperatureRange(t *testing.T) {
	for _, kelvin := range []float64{0, 3999, 25001, -500} {
		if _, err := WhitePointFromTemperature(kelvin); err == nil {
			t.Errorf("WhitePointFromTemperature(%v) should fail outside the daylight range", kelvin)
		}
	}
}

func TestTemperatureFromWhitePoint(t *testing.T) {
	tests := []struct {
		name   string
		kelvin float64
	}{
		{"warm", 4500},
		{"daylight", 6504},
		{"cool", 9000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp, err := WhitePointFromTemperature(tt.kelvin)
			if err != nil {
				t.Fatalf("WhitePointFromTemperature(%v) error = %v", tt.kelvin, err)
			}
			got, err := TemperatureFromWhitePoint(wp)
			if err != nil {
				t.Fatalf("TemperatureFromWhitePoint(%+v) error = %v", wp, err)
			}
			// Robertson interpolation and the daylight-locus polynomial
			// are independent approximations; agreement within a couple
			// of percent is the expected accuracy.
			if !near2(got, tt.kelvin, tt.kelvin*0.03) {
				t.Errorf("temperature round trip of %v K = %v K", tt.kelvin, got)
			}
		})
	}
}

func TestTemperatureFromWhitePointOffLocus(t *testing.T) {
	// A deep red beyond the 600 mired end of the table has no
	// bracketing isotemperature lines.
	if _, err := TemperatureFromWhitePoint(XyY{X: 0.7, Y: 0.3, Lum: 1}); err == nil {
		t.Error("TemperatureFromWhitePoint far off the locus should fail")
	}
}
