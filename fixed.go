package chroma

import "fmt"

// Frac is a fixed-point fraction in [0, 1] with 1/65535 resolution, for
// interop with 16-bit-per-channel pipelines. It can only represent the
// unit interval, which is why the cylindrical spaces (HSV, HSL, LCH*)
// have no fixed-point twin: hue lives in [0, 360) and does not fit.
// The boundary enforces this: FracFromFloat rejects out-of-range input
// instead of wrapping or clamping.
type Frac uint16

// FracOne is the fixed-point representation of 1.0.
const FracOne Frac = 0xffff

// FracFromFloat converts a float in [0, 1] to fixed point, rounding to
// the nearest representable step. Values outside the unit interval are
// a usage error, reported here rather than deep inside a formula.
func FracFromFloat(v float64) (Frac, error) {
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("chroma: %g outside [0, 1] is not representable as a fixed-point fraction", v)
	}
	return Frac(v*65535 + 0.5), nil
}

// Float converts back to floating point.
func (f Frac) Float() float64 { return float64(f) / 65535 }

// RGBFixed is an sRGB color backed by fixed-point fractions. Semantics
// match RGB at the represented precision; converting through RGBFixed
// quantizes to 1/65535 steps, which is part of its contract.
type RGBFixed struct {
	R, G, B Frac
}

// RGB converts to the floating-point representation.
func (c RGBFixed) RGB() RGB {
	return RGB{R: c.R.Float(), G: c.G.Float(), B: c.B.Float()}
}

// XYZ converts through the floating-point representation.
func (c RGBFixed) XYZ() XYZ { return c.RGB().XYZ() }

// RGBComponents implements RGBLike.
func (c RGBFixed) RGBComponents() (r, g, b float64) {
	rgb := c.RGB()
	return rgb.R, rgb.G, rgb.B
}

// RGBFixedFromRGB converts a floating-point color to fixed point. Each
// component must lie in [0, 1]; out-of-gamut values are not
// representable and must be clamped by the caller first.
func RGBFixedFromRGB(c RGB) (RGBFixed, error) {
	r, err := FracFromFloat(c.R)
	if err != nil {
		return RGBFixed{}, err
	}
	g, err := FracFromFloat(c.G)
	if err != nil {
		return RGBFixed{}, err
	}
	b, err := FracFromFloat(c.B)
	if err != nil {
		return RGBFixed{}, err
	}
	return RGBFixed{R: r, G: g, B: b}, nil
}

// rgbFixedClamped quantizes with clamping, for internal conversion
// paths that must stay total.
func rgbFixedClamped(c RGB) RGBFixed {
	return RGBFixed{
		R: Frac(clamp01(c.R)*65535 + 0.5),
		G: Frac(clamp01(c.G)*65535 + 0.5),
		B: Frac(clamp01(c.B)*65535 + 0.5),
	}
}
