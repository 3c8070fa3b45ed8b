package chroma

import "math"

// LCHuv hues of the six corners of the sRGB cube under D65. Walking
// the hue circle, consecutive corners bound the cube edge on which the
// most saturated color for hues between them lies.
var cornerHues = [6]float64{
	12.173988685914473, // RGB{1, 0, 0}
	85.87273565979681,  // RGB{1, 1, 0}
	127.7235504663274,  // RGB{0, 1, 0}
	192.17397321802082, // RGB{0, 1, 1}
	265.8727349804029,  // RGB{0, 0, 1}
	307.72355076565925, // RGB{1, 0, 1}
}

// D65 u'v' chromaticity.
const (
	unD65 = 0.19783982482140777
	vnD65 = 0.4683363029324097
)

// MSC returns the most saturated displayable color at the given LCHuv
// hue: the point where the hue half-plane leaves the sRGB gamut. The
// gamut boundary at fixed hue is an edge of the RGB cube, so the free
// channel is solved analytically in the u'v' plane and the other two
// channels sit at 0 and 1.
func MSC(h float64) RGB {
	h = normHue(h)

	// Channel roles on the active cube edge: p varies, o is 0, t is 1.
	var p, o, t int
	switch {
	case h >= cornerHues[0] && h < cornerHues[1]:
		p, o, t = 1, 2, 0
	case h >= cornerHues[1] && h < cornerHues[2]:
		p, o, t = 0, 2, 1
	case h >= cornerHues[2] && h < cornerHues[3]:
		p, o, t = 2, 0, 1
	case h >= cornerHues[3] && h < cornerHues[4]:
		p, o, t = 1, 0, 2
	case h >= cornerHues[4] && h < cornerHues[5]:
		p, o, t = 0, 1, 2
	default:
		p, o, t = 2, 1, 0
	}

	alpha := -math.Sin(deg2rad(h))
	beta := math.Cos(deg2rad(h))

	col := func(m Mat3, j int) (x, y, z float64) {
		switch j {
		case 0:
			return m[0].X, m[1].X, m[2].X
		case 1:
			return m[0].Y, m[1].Y, m[2].Y
		default:
			return m[0].Z, m[1].Z, m[2].Z
		}
	}
	mtx, mty, mtz := col(srgbToXYZ, t)
	mpx, mpy, mpz := col(srgbToXYZ, p)

	// Intersect the hue line alpha*u' + beta*v' = alpha*un + beta*vn
	// with the edge col[t]=1, col[o]=0 in linear RGB.
	f1 := 4*alpha*mpx + 9*beta*mpy
	a1 := 4*alpha*mtx + 9*beta*mty
	f2 := mpx + 15*mpy + 3*mpz
	a2 := mtx + 15*mty + 3*mtz

	ab := alpha*unD65 + beta*vnD65
	cp := (ab*a2 - a1) / (f1 - ab*f2)

	var rgb [3]float64
	rgb[p] = clamp01(delinearize(cp))
	rgb[o] = 0
	rgb[t] = 1
	return RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
}

// MSCLightness returns the most saturated color at the given hue and
// lightness as an LCHuv value. The gamut cross-section at fixed hue is
// close to a triangle with vertices at black, white and MSC(h); the
// maximum chroma at lightness l is interpolated along the triangle edge
// toward whichever of black or white is on l's side. This is the
// standard approximation, slightly conservative near the cusp.
func MSCLightness(h, l float64) LCHuv {
	peak := ToLCHuv(MSC(h))
	endL := 0.0 // toward black
	if l > peak.L {
		endL = 100 // toward white
	}
	if peak.L == endL {
		return LCHuv{L: l, C: 0, H: h}
	}
	a := (l - endL) / (peak.L - endL)
	return LCHuv{L: l, C: a * peak.C, H: h}
}
