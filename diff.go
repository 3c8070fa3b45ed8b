package chroma

import "math"

// MetricKind selects a color-difference formula. The set is closed: the
// published formulas share substructure (weighting terms, hue handling)
// and a single evaluation switch keeps that sharing visible, so new
// kinds are added here rather than through an interface.
type MetricKind uint8

const (
	// MetricDE2000 is the CIEDE2000 formula (Sharma et al. 2005 form).
	MetricDE2000 MetricKind = iota
	// MetricDE94 is the CIE94 formula, CIEDE2000's predecessor.
	MetricDE94
	// MetricCMC is the CMC l:c textile-industry formula.
	MetricCMC
	// MetricBFD is the BFD(l:c) formula for large color differences.
	MetricBFD
	// MetricJPC79 is McDonald's fixed-parameter industrial formula.
	MetricJPC79
	// MetricAB is plain Euclidean distance in L*a*b* (CIE76).
	MetricAB
	// MetricDIN99 is Euclidean distance in DIN99.
	MetricDIN99
	// MetricDIN99d is Euclidean distance in DIN99d.
	MetricDIN99d
	// MetricDIN99o is Euclidean distance in DIN99o.
	MetricDIN99o
)

// Metric is a tagged difference-formula configuration: a kind plus the
// weighting parameters that kind consumes. Construct values with the
// DE* functions; the zero Metric is a valid DE2000 with zero weights
// and is not useful.
type Metric struct {
	Kind MetricKind

	// KL, KC, KH are the parametric lightness/chroma/hue weights of
	// DE2000, DE94, CMC (KL, KC only) and BFD (KL, KC only).
	KL, KC, KH float64

	// K1, K2 are the CIE94 application-dependent weighting constants.
	K1, K2 float64

	// WhiteRef is the white point BFD converts through.
	WhiteRef XYZ
}

// DE2000 returns the CIEDE2000 metric with unit parametric weights.
func DE2000() Metric { return DE2000Weighted(1, 1, 1) }

// DE2000Weighted returns CIEDE2000 with explicit kL, kC, kH weights.
func DE2000Weighted(kl, kc, kh float64) Metric {
	return Metric{Kind: MetricDE2000, KL: kl, KC: kc, KH: kh}
}

// DE94 returns the CIE94 metric with graphic-arts constants
// (kL = kC = kH = 1, K1 = 0.045, K2 = 0.015).
func DE94() Metric {
	return Metric{Kind: MetricDE94, KL: 1, KC: 1, KH: 1, K1: 0.045, K2: 0.015}
}

// DE94Textiles returns CIE94 with the textiles constants
// (kL = 2, K1 = 0.048, K2 = 0.014).
func DE94Textiles() Metric {
	return Metric{Kind: MetricDE94, KL: 2, KC: 1, KH: 1, K1: 0.048, K2: 0.014}
}

// DECMC returns the CMC l:c metric. The common acceptability ratio is
// DECMC(2, 1); perceptibility is DECMC(1, 1). CMC is defined relative
// to its first argument and is therefore not symmetric.
func DECMC(l, c float64) Metric {
	return Metric{Kind: MetricCMC, KL: l, KC: c}
}

// DEBFD returns the BFD(1:1) metric with the D65 white point.
func DEBFD() Metric { return DEBFDWhiteRef(WhitePointD65) }

// DEBFDWhiteRef returns BFD(1:1) converting through the given white
// point. The white point only matters for inputs outside the Lab/Luv
// family: a Lab value is decoded and re-encoded under the same white,
// which cancels exactly, while XYZ or RGB inputs pick up a genuinely
// different Lab rendering.
func DEBFDWhiteRef(wp XYZ) Metric {
	return Metric{Kind: MetricBFD, KL: 1, KC: 1, WhiteRef: wp}
}

// DEJPC79 returns the JPC79 metric. It has no tunable parameters.
func DEJPC79() Metric { return Metric{Kind: MetricJPC79} }

// DEAB returns plain Euclidean distance in L*a*b* (CIE76).
func DEAB() Metric { return Metric{Kind: MetricAB} }

// DEDIN99 returns Euclidean distance in the DIN99 uniform space.
func DEDIN99() Metric { return Metric{Kind: MetricDIN99} }

// DEDIN99d returns Euclidean distance in the DIN99d uniform space.
func DEDIN99d() Metric { return Metric{Kind: MetricDIN99d} }

// DEDIN99o returns Euclidean distance in the DIN99o uniform space.
func DEDIN99o() Metric { return Metric{Kind: MetricDIN99o} }

// ColorDiffDefault measures the perceptual difference between two
// colors with CIEDE2000.
func ColorDiffDefault(a, b Color) float64 { return ColorDiff(a, b, DE2000()) }

// ColorDiff measures the perceptual difference between a and b under
// the given metric. The result is nonnegative; 0 means the colors are
// indistinguishable under that metric (not necessarily equal as stored
// values). Both inputs are converted to the metric's working space
// first.
func ColorDiff(a, b Color, m Metric) float64 {
	switch m.Kind {
	case MetricDE94:
		return de94(ToLab(a), ToLab(b), m)
	case MetricCMC:
		return deCMC(ToLab(a), ToLab(b), m.KL, m.KC)
	case MetricBFD:
		return deBFD(a, b, m)
	case MetricJPC79:
		return deJPC79(ToLab(a), ToLab(b))
	case MetricAB:
		la, lb := ToLab(a), ToLab(b)
		return euclid3(la.L-lb.L, la.A-lb.A, la.B-lb.B)
	case MetricDIN99:
		da, db := ToDIN99(a), ToDIN99(b)
		return euclid3(da.L-db.L, da.A-db.A, da.B-db.B)
	case MetricDIN99d:
		da, db := ToDIN99d(a), ToDIN99d(b)
		return euclid3(da.L-db.L, da.A-db.A, da.B-db.B)
	case MetricDIN99o:
		da, db := ToDIN99o(a), ToDIN99o(b)
		return euclid3(da.L-db.L, da.A-db.A, da.B-db.B)
	default:
		return de2000(ToLab(a), ToLab(b), m.KL, m.KC, m.KH)
	}
}

func euclid3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// meanHue averages two hue angles in degrees, taking the short way
// around the circle.
func meanHue(h1, h2 float64) float64 {
	if math.Abs(h1-h2) > 180 {
		if h1+h2 < 360 {
			return (h1 + h2 + 360) / 2
		}
		return (h1 + h2 - 360) / 2
	}
	return (h1 + h2) / 2
}

// deltaHab is the CIELAB hue difference ΔH*: the residual of the total
// difference after lightness and chroma are removed. The radicand is
// clamped at zero against floating-point cancellation.
func deltaHab(a, b Lab) float64 {
	dc := math.Hypot(a.A, a.B) - math.Hypot(b.A, b.B)
	dh2 := sq(a.A-b.A) + sq(a.B-b.B) - sq(dc)
	if dh2 <= 0 {
		return 0
	}
	return math.Sqrt(dh2)
}

const pow25To7 = 6103515625.0 // 25^7

// de2000 is the CIEDE2000 procedure in the Sharma et al. form. The
// formula has a removable singularity when both chromas vanish: the
// hue angles (eq. 7), the hue difference (eq. 10) and the mean hue
// (eq. 14) are all specialized there so the hue term contributes 0
// instead of NaN.
func de2000(lab1, lab2 Lab, kl, kc, kh float64) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)

	barC := (c1 + c2) / 2
	barC7 := math.Pow(barC, 7)
	g := 0.5 * (1 - math.Sqrt(barC7/(barC7+pow25To7)))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)

	// eq. 7: hue is 0, not atan2(0, 0), for neutral colors
	h1p := atan2deg(lab1.B, a1p)
	h2p := atan2deg(lab2.B, a2p)

	dlp := lab2.L - lab1.L
	dcp := c2p - c1p

	// eq. 10
	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(deg2rad(dhp/2))

	barLp := (lab1.L + lab2.L) / 2
	barCp := (c1p + c2p) / 2

	// eq. 14
	var barHp float64
	if c1p*c2p == 0 {
		barHp = h1p + h2p
	} else {
		barHp = meanHue(h1p, h2p)
	}

	t := 1 - 0.17*math.Cos(deg2rad(barHp-30)) +
		0.24*math.Cos(deg2rad(2*barHp)) +
		0.32*math.Cos(deg2rad(3*barHp+6)) -
		0.20*math.Cos(deg2rad(4*barHp-63))

	sl := 1 + 0.015*sq(barLp-50)/math.Sqrt(20+sq(barLp-50))
	sc := 1 + 0.045*barCp
	sh := 1 + 0.015*barCp*t

	dTheta := 30 * math.Exp(-sq((barHp-275)/25))
	barCp7 := math.Pow(barCp, 7)
	rc := 2 * math.Sqrt(barCp7/(barCp7+pow25To7))
	rt := -math.Sin(deg2rad(2*dTheta)) * rc

	lTerm := dlp / (kl * sl)
	cTerm := dcp / (kc * sc)
	hTerm := dHp / (kh * sh)
	return math.Sqrt(sq(lTerm) + sq(cTerm) + sq(hTerm) + rt*cTerm*hTerm)
}

// de94 is the CIE94 formula. The chroma entering the weighting
// functions is the first color's, per the standard.
func de94(lab1, lab2 Lab, m Metric) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)

	dl := lab1.L - lab2.L
	dc := c1 - c2
	dh := deltaHab(lab1, lab2)

	sc := 1 + m.K1*c1
	sh := 1 + m.K2*c1
	return math.Sqrt(sq(dl/m.KL) + sq(dc/(m.KC*sc)) + sq(dh/(m.KH*sh)))
}

// deCMC is the CMC l:c formula, defined relative to the first color.
func deCMC(lab1, lab2 Lab, l, c float64) float64 {
	lch1 := labToLCHab(lab1)
	lch2 := labToLCHab(lab2)

	dl := lab1.L - lab2.L
	dc := lch1.C - lch2.C
	dh := deltaHab(lab1, lab2)

	sl := 0.511
	if lab1.L >= 16 {
		sl = 0.040975 * lab1.L / (1 + 0.01765*lab1.L)
	}
	sc := 0.0638*lch1.C/(1+0.0131*lch1.C) + 0.638

	// T depends on which side of the blue-purple band the reference
	// hue falls.
	var t float64
	if lch1.H >= 164 && lch1.H <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(deg2rad(lch1.H+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(deg2rad(lch1.H+35)))
	}
	c4 := sq(sq(lch1.C))
	f := math.Sqrt(c4 / (c4 + 1900))
	sh := sc * (f*t + 1 - f)

	return math.Sqrt(sq(dl/(l*sl)) + sq(dc/(c*sc)) + sq(dh/sh))
}

// bfdLightness is the BFD lightness scale, computed from luminance
// rather than L*.
func bfdLightness(y float64) float64 {
	return 54.6*math.Log10(y*100+1.5) - 9.6
}

// deBFD is the BFD(l:c) formula. Unlike the other metrics it re-derives
// both colors from XYZ under its own white point, because its
// lightness term works on luminance directly.
func deBFD(a, b Color, m Metric) float64 {
	axyz := xyzWhiteRef(a, m.WhiteRef)
	bxyz := xyzWhiteRef(b, m.WhiteRef)

	lab1 := XYZToLab(axyz, m.WhiteRef)
	lab2 := XYZToLab(bxyz, m.WhiteRef)
	lch1 := labToLCHab(lab1)
	lch2 := labToLCHab(lab2)

	dl := bfdLightness(bxyz.Y) - bfdLightness(axyz.Y)
	dc := lch2.C - lch1.C
	dh := deltaHab(lab1, lab2)

	mc := (lch1.C + lch2.C) / 2
	mh := meanHue(lch1.H, lch2.H)

	dcc := 0.035*mc/(1+0.00365*mc) + 0.521
	g := math.Sqrt(sq(sq(mc)) / (sq(sq(mc)) + 14000))
	t := 0.627 + 0.055*math.Cos(deg2rad(mh-254)) -
		0.040*math.Cos(deg2rad(2*mh-136)) +
		0.070*math.Cos(deg2rad(3*mh-31)) +
		0.049*math.Cos(deg2rad(4*mh+114)) -
		0.015*math.Cos(deg2rad(5*mh-103))
	dhh := dcc * (g*t + 1 - g)

	rh := -0.260*math.Cos(deg2rad(mh-308)) -
		0.379*math.Cos(deg2rad(2*mh-160)) -
		0.636*math.Cos(deg2rad(3*mh+254)) +
		0.226*math.Cos(deg2rad(4*mh+140)) -
		0.194*math.Cos(deg2rad(5*mh+280))
	mc6 := mc * mc * mc * mc * mc * mc
	rc := math.Sqrt(mc6 / (mc6 + 7e7))
	rt := rh * rc

	cTerm := dc / (m.KC * dcc)
	hTerm := dh / dhh
	return math.Sqrt(sq(dl/m.KL) + sq(cTerm) + sq(hTerm) + rt*cTerm*hTerm)
}

// xyzWhiteRef converts c to XYZ, decoding Lab/Luv-family values under
// the given white point instead of the D65 default.
func xyzWhiteRef(c Color, wp XYZ) XYZ {
	switch v := unwrap(c).(type) {
	case Lab:
		return LabToXYZ(v, wp)
	case LCHab:
		return LabToXYZ(lchabToLab(v), wp)
	case Luv:
		return LuvToXYZ(v, wp)
	case LCHuv:
		return LuvToXYZ(lchuvToLuv(v), wp)
	default:
		return c.XYZ()
	}
}

// deJPC79 is McDonald's JPC79 formula. All parameters are fixed by the
// published equation.
func deJPC79(lab1, lab2 Lab) float64 {
	lch1 := labToLCHab(lab1)
	lch2 := labToLCHab(lab2)

	dl := lch1.L - lch2.L
	dc := lch1.C - lch2.C
	dh := deltaHab(lab1, lab2)

	ml := (lch1.L + lch2.L) / 2
	mc := (lch1.C + lch2.C) / 2
	mh := meanHue(lch1.H, lch2.H)

	sl := 0.08195 * ml / (1 + 0.01765*ml)
	sc := 0.638 + 0.0638*mc/(1+0.0131*mc)

	var sh float64
	switch {
	case mc < 0.38:
		sh = sc
	case mh >= 164 && mh <= 345:
		sh = sc * (0.56 + math.Abs(0.2*math.Cos(deg2rad(mh+168))))
	default:
		sh = sc * (0.38 + math.Abs(0.4*math.Cos(deg2rad(mh+35))))
	}

	return math.Sqrt(sq(dl/sl) + sq(dc/sc) + sq(dh/sh))
}
