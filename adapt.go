package chroma

import "fmt"

// LMS is the cone-response space: the stimulus seen by the long-,
// medium- and short-wavelength cones. It is a fixed linear transform of
// XYZ through the CAT02 matrix and is the working space for chromatic
// adaptation and dichromacy simulation.
type LMS struct {
	L, M, S float64
}

// CAT02 cone-response matrix (CIECAM02) and its inverse.
var (
	cat02 = Mat3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}
	cat02Inv = Mat3{
		{1.096123820835514, -0.278869000218287, 0.182745179382773},
		{0.454369041975359, 0.473533154307412, 0.072097803717229},
		{-0.009627608738429, -0.005698031216113, 1.015325639954543},
	}
)

// XYZ converts back through the inverse CAT02 matrix.
func (c LMS) XYZ() XYZ {
	v := cat02Inv.MulVec(Vec3{c.L, c.M, c.S})
	return XYZ{X: v.X, Y: v.Y, Z: v.Z}
}

func xyzToLMS(c XYZ) LMS {
	v := cat02.MulVec(Vec3{c.X, c.Y, c.Z})
	return LMS{L: v.X, M: v.Y, S: v.Z}
}

// ToLMS converts any color to cone-response space.
func ToLMS(c Color) LMS {
	if v, ok := unwrap(c).(LMS); ok {
		return v
	}
	return xyzToLMS(c.XYZ())
}

// Whitebalance adapts c from the viewing conditions of srcWhite to
// those of refWhite using a von Kries diagonal scaling in CAT02 cone
// space, and returns the result in c's own space. Equal white points
// yield the input unchanged.
//
// The scaling divides by the source white's cone response, so a white
// point with a zero LMS component is rejected; no physically valid
// illuminant has one.
func Whitebalance(c Color, srcWhite, refWhite XYZ) (Color, error) {
	if srcWhite == refWhite {
		return c, nil
	}
	src := xyzToLMS(srcWhite)
	ref := xyzToLMS(refWhite)
	if src.L == 0 || src.M == 0 || src.S == 0 {
		return nil, fmt.Errorf("chroma: whitebalance: source white %+v has a zero cone response", srcWhite)
	}
	lms := ToLMS(c)
	adapted := LMS{
		L: lms.L * ref.L / src.L,
		M: lms.M * ref.M / src.M,
		S: lms.S * ref.S / src.S,
	}
	return convertLike(c, adapted.XYZ()), nil
}

// AdaptationMatrix returns the 3x3 XYZ-to-XYZ matrix adapting colors
// from srcWhite to refWhite through CAT02, for callers that want to
// apply the same adaptation to many values.
func AdaptationMatrix(srcWhite, refWhite XYZ) (Mat3, error) {
	src := cat02.MulVec(Vec3{srcWhite.X, srcWhite.Y, srcWhite.Z})
	ref := cat02.MulVec(Vec3{refWhite.X, refWhite.Y, refWhite.Z})
	if src.X == 0 || src.Y == 0 || src.Z == 0 {
		return Mat3{}, fmt.Errorf("chroma: adaptation: source white %+v has a zero cone response", srcWhite)
	}
	scale := Mat3{
		{ref.X / src.X, 0, 0},
		{0, ref.Y / src.Y, 0},
		{0, 0, ref.Z / src.Z},
	}
	return cat02Inv.Mul(scale).Mul(cat02), nil
}
