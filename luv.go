package chroma

import "math"

// Luv is CIE 1976 L*u*v*, the second CIE uniform space. L matches the
// L*a*b* lightness scale; u and v are the chromatic axes. Conversions
// require a reference white, defaulting to D65.
type Luv struct {
	L, U, V float64
}

// XYZ decodes under the D65 white point.
func (c Luv) XYZ() XYZ { return LuvToXYZ(c, WhitePointD65) }

// uvPrime returns the u'v' chromaticity coordinates of a tristimulus
// value. The denominator is zero only for the degenerate all-zero
// input, which maps to (0, 0).
func uvPrime(c XYZ) (u, v float64) {
	denom := c.X + 15*c.Y + 3*c.Z
	if denom == 0 {
		return 0, 0
	}
	return 4 * c.X / denom, 9 * c.Y / denom
}

// XYZToLuv encodes relative to the white point wp.
func XYZToLuv(c XYZ, wp XYZ) Luv {
	yr := c.Y / wp.Y
	var l float64
	if yr > labEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = labKappa * yr
	}
	u, v := uvPrime(c)
	un, vn := uvPrime(wp)
	return Luv{
		L: l,
		U: 13 * l * (u - un),
		V: 13 * l * (v - vn),
	}
}

// LuvToXYZ decodes relative to the white point wp. L = 0 decodes to
// black: the u and v offsets carry no information there.
func LuvToXYZ(c Luv, wp XYZ) XYZ {
	if c.L == 0 {
		return XYZ{}
	}
	var y float64
	if c.L > 8 {
		y = wp.Y * cube((c.L+16)/116)
	} else {
		y = wp.Y * c.L / labKappa
	}
	un, vn := uvPrime(wp)
	u := c.U/(13*c.L) + un
	v := c.V/(13*c.L) + vn
	if v == 0 {
		return XYZ{Y: y}
	}
	return XYZ{
		X: y * 9 * u / (4 * v),
		Y: y,
		Z: y * (12 - 3*u - 20*v) / (4 * v),
	}
}

func cube(v float64) float64 { return v * v * v }

// ToLuv converts any color to L*u*v* under D65.
func ToLuv(c Color) Luv {
	switch v := unwrap(c).(type) {
	case Luv:
		return v
	case LCHuv:
		return lchuvToLuv(v)
	default:
		return XYZToLuv(c.XYZ(), WhitePointD65)
	}
}

// LCHuv is the cylindrical form of L*u*v*. Zero chroma carries hue 0 by
// the same convention as LCHab.
type LCHuv struct {
	L, C, H float64
}

// XYZ decodes via L*u*v* under D65.
func (c LCHuv) XYZ() XYZ { return lchuvToLuv(c).XYZ() }

func luvToLCHuv(c Luv) LCHuv {
	return LCHuv{
		L: c.L,
		C: math.Hypot(c.U, c.V),
		H: atan2deg(c.V, c.U),
	}
}

func lchuvToLuv(c LCHuv) Luv {
	h := deg2rad(c.H)
	return Luv{L: c.L, U: c.C * math.Cos(h), V: c.C * math.Sin(h)}
}

// ToLCHuv converts any color to the cylindrical L*u*v* form.
func ToLCHuv(c Color) LCHuv {
	if v, ok := unwrap(c).(LCHuv); ok {
		return v
	}
	return luvToLCHuv(ToLuv(c))
}
