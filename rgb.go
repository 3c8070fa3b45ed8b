package chroma

import "math"

// RGB is an sRGB color with gamma-encoded components nominally in
// [0, 1]. Components are not clamped: out-of-range values pass through
// every formula and simply describe an out-of-gamut color.
type RGB struct {
	R, G, B float64
}

// RGBComponents implements RGBLike.
func (c RGB) RGBComponents() (r, g, b float64) { return c.R, c.G, c.B }

// sRGB primaries under D65 (Lindbloom). The reverse matrix is derived
// rather than hardcoded so the two directions are exact inverses and
// RGB round trips do not accumulate rounding error.
var (
	srgbToXYZ = Mat3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToSRGB = mustInverse(srgbToXYZ)
)

// linearize removes the sRGB transfer function from one channel.
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// delinearize applies the sRGB transfer function to one channel. The
// threshold 0.0031308 is the image of 0.04045 under linearize.
func delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// LinearRGB returns the linear (gamma-removed) channel values.
func (c RGB) LinearRGB() (r, g, b float64) {
	return linearize(c.R), linearize(c.G), linearize(c.B)
}

// FromLinearRGB builds an sRGB color from linear channel values.
func FromLinearRGB(r, g, b float64) RGB {
	return RGB{R: delinearize(r), G: delinearize(g), B: delinearize(b)}
}

// XYZ converts to CIE XYZ via the sRGB D65 primaries matrix.
func (c RGB) XYZ() XYZ {
	r, g, b := c.LinearRGB()
	v := srgbToXYZ.MulVec(Vec3{r, g, b})
	return XYZ{X: v.X, Y: v.Y, Z: v.Z}
}

// XYZToRGB converts tristimulus values to sRGB. The result may lie
// outside [0, 1] when the color is out of the sRGB gamut.
func XYZToRGB(c XYZ) RGB {
	v := xyzToSRGB.MulVec(Vec3{c.X, c.Y, c.Z})
	return FromLinearRGB(v.X, v.Y, v.Z)
}

// ToRGB converts any color to sRGB. Adjacent spaces (HSV, HSL, RGB24,
// anything RGBLike) convert directly; everything else routes through
// XYZ.
func ToRGB(c Color) RGB {
	switch v := unwrap(c).(type) {
	case RGB:
		return v
	case HSV:
		return v.RGB()
	case HSL:
		return v.RGB()
	case RGB24:
		return v.RGB()
	case RGBFixed:
		return v.RGB()
	case RGBLike:
		r, g, b := v.RGBComponents()
		return RGB{R: r, G: g, B: b}
	default:
		return XYZToRGB(c.XYZ())
	}
}

// RGB24 is an 8-bit-per-channel packed encoding, 0x00RRGGBB. It is a
// serialization format, not a space for color math: packing quantizes
// to 1/255 steps and clamps into [0, 1], so the conversion is lossy by
// contract.
type RGB24 uint32

// RGB unpacks into floating-point sRGB. This is the exact inverse of
// ToRGB24 up to the 1/255 quantization.
func (c RGB24) RGB() RGB {
	return RGB{
		R: float64(c>>16&0xff) / 255,
		G: float64(c>>8&0xff) / 255,
		B: float64(c&0xff) / 255,
	}
}

// XYZ converts the unpacked color to CIE XYZ.
func (c RGB24) XYZ() XYZ { return c.RGB().XYZ() }

// ToRGB24 packs any color into the 8-bit encoding, rounding each
// channel to the nearest representable step.
func ToRGB24(c Color) RGB24 {
	rgb := ToRGB(c)
	r := uint32(clamp01(rgb.R)*255 + 0.5)
	g := uint32(clamp01(rgb.G)*255 + 0.5)
	b := uint32(clamp01(rgb.B)*255 + 0.5)
	return RGB24(r<<16 | g<<8 | b)
}
