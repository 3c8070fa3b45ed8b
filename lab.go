package chroma

import "math"

// Lab is CIE 1976 L*a*b*, a perceptually uniform space. L is in
// [0, 100] for in-gamut colors; a and b are the green-red and
// blue-yellow chromatic axes. Conversions to and from XYZ require a
// reference white, defaulting to D65.
type Lab struct {
	L, A, B float64
}

// XYZ decodes under the D65 white point.
func (c Lab) XYZ() XYZ { return LabToXYZ(c, WhitePointD65) }

// The CIE f(t) split point (6/29)^3 and its companions.
const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0  // (29/3)^3
)

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return (116*t - 16) / labKappa
}

// XYZToLab encodes tristimulus values relative to the white point wp.
// Negative or above-white inputs are carried through the formulas and
// land outside the nominal ranges.
func XYZToLab(c XYZ, wp XYZ) Lab {
	fx := labF(c.X / wp.X)
	fy := labF(c.Y / wp.Y)
	fz := labF(c.Z / wp.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ decodes relative to the white point wp.
func LabToXYZ(c Lab, wp XYZ) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{
		X: labFInv(fx) * wp.X,
		Y: labFInv(fy) * wp.Y,
		Z: labFInv(fz) * wp.Z,
	}
}

// ToLab converts any color to L*a*b* under D65. Polar and DIN99-derived
// forms convert directly; everything else routes through XYZ.
func ToLab(c Color) Lab {
	switch v := unwrap(c).(type) {
	case Lab:
		return v
	case LCHab:
		return lchabToLab(v)
	case DIN99:
		return din99ToLab(v)
	case DIN99o:
		return din99oToLab(v)
	default:
		return XYZToLab(c.XYZ(), WhitePointD65)
	}
}

// LCHab is the cylindrical form of L*a*b*: chroma is the radial
// distance in the a/b plane and hue the angle in degrees [0, 360).
// Zero chroma makes the hue physically meaningless; it is 0 by
// convention, never an error.
type LCHab struct {
	L, C, H float64
}

// XYZ decodes via L*a*b* under D65.
func (c LCHab) XYZ() XYZ { return lchabToLab(c).XYZ() }

func labToLCHab(c Lab) LCHab {
	return LCHab{
		L: c.L,
		C: math.Hypot(c.A, c.B),
		H: atan2deg(c.B, c.A),
	}
}

func lchabToLab(c LCHab) Lab {
	h := deg2rad(c.H)
	return Lab{L: c.L, A: c.C * math.Cos(h), B: c.C * math.Sin(h)}
}

// ToLCHab converts any color to the cylindrical L*a*b* form.
func ToLCHab(c Color) LCHab {
	if v, ok := unwrap(c).(LCHab); ok {
		return v
	}
	return labToLCHab(ToLab(c))
}
