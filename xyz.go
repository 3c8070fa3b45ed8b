package chroma

// XYZ holds CIE 1931 tristimulus values with Y normalized so that the
// reference white has Y = 1. XYZ is the pivot of the conversion graph.
type XYZ struct {
	X, Y, Z float64
}

// XYZ returns the color itself.
func (c XYZ) XYZ() XYZ { return c }

// Standard illuminants as XYZ tristimulus values (2° observer).
var (
	// WhitePointD65 is CIE Standard Illuminant D65, the default
	// reference white throughout this package.
	WhitePointD65 = XYZ{X: 0.95047, Y: 1.00000, Z: 1.08883}

	// WhitePointD50 is CIE Standard Illuminant D50, common in print.
	WhitePointD50 = XYZ{X: 0.96422, Y: 1.00000, Z: 0.82521}
)

// XyY is the CIE xyY space: chromaticity coordinates (X, Y) plus
// luminance Lum. Chromaticity is undefined for zero luminance; the
// conversion from XYZ substitutes the reference white's chromaticity
// in that case.
type XyY struct {
	X, Y float64 // chromaticity
	Lum  float64 // luminance (the "big Y")
}

// XYZ converts back to tristimulus values. A zero chromaticity y, only
// reachable for degenerate input, maps X and Z to 0.
func (c XyY) XYZ() XYZ {
	if c.Y == 0 {
		return XYZ{X: 0, Y: c.Lum, Z: 0}
	}
	return XYZ{
		X: c.X / c.Y * c.Lum,
		Y: c.Lum,
		Z: (1 - c.X - c.Y) / c.Y * c.Lum,
	}
}

// ToXyY converts any color to xyY under D65.
func ToXyY(c Color) XyY {
	if v, ok := unwrap(c).(XyY); ok {
		return v
	}
	return XYZToXyY(c.XYZ(), WhitePointD65)
}

// XYZToXyY projects tristimulus values onto the chromaticity plane.
// Black (X+Y+Z numerically zero) has no chromaticity of its own; per
// Lindbloom's recommendation the white point's chromaticity is used.
func XYZToXyY(c XYZ, wp XYZ) XyY {
	sum := c.X + c.Y + c.Z
	if sum > -1e-14 && sum < 1e-14 {
		wsum := wp.X + wp.Y + wp.Z
		return XyY{X: wp.X / wsum, Y: wp.Y / wsum, Lum: c.Y}
	}
	return XyY{X: c.X / sum, Y: c.Y / sum, Lum: c.Y}
}

// ToXYZ converts any color to CIE XYZ under D65.
func ToXYZ(c Color) XYZ { return c.XYZ() }
