package chroma

import "math"

// The DIN99 family (DIN 6176) refines L*a*b* toward perceptual
// uniformity with empirically tuned rotation angles and logarithmic
// compression, so that plain Euclidean distance approximates perceived
// difference. Three successive revisions are supported: the original
// DIN99, DIN99d (which perturbs X before the L*a*b* step to mimic the
// CIEDE2000 rotation term) and DIN99o.

// DIN99 is the original DIN 6176 space, derived from L*a*b* with a 16°
// rotation and 0.045/0.0158 compression constants.
type DIN99 struct {
	L, A, B float64
}

// XYZ decodes via L*a*b* under D65.
func (c DIN99) XYZ() XYZ { return din99ToLab(c).XYZ() }

func labToDIN99(c Lab) DIN99 {
	const sin16, cos16 = 0.27563735581699916, 0.9612616959383189

	l99 := 105.51 * math.Log(1+0.0158*c.L)
	if c.A == 0 && c.B == 0 {
		return DIN99{L: l99}
	}
	e := c.A*cos16 + c.B*sin16
	f := 0.7 * (c.B*cos16 - c.A*sin16)
	g := math.Hypot(e, f)
	var k float64
	if g != 0 {
		k = math.Log(1+0.045*g) / (0.045 * g)
	}
	return DIN99{L: l99, A: k * e, B: k * f}
}

func din99ToLab(c DIN99) Lab {
	const sin16, cos16 = 0.27563735581699916, 0.9612616959383189

	h := math.Atan2(c.B, c.A)
	cc := math.Hypot(c.A, c.B)
	g := (math.Exp(0.045*cc) - 1) / 0.045
	e := g * math.Cos(h)
	f := g * math.Sin(h) / 0.7
	return Lab{
		L: (math.Exp(c.L/105.51) - 1) / 0.0158,
		A: e*cos16 - f*sin16,
		B: e*sin16 + f*cos16,
	}
}

// ToDIN99 converts any color to DIN99.
func ToDIN99(c Color) DIN99 {
	if v, ok := unwrap(c).(DIN99); ok {
		return v
	}
	return labToDIN99(ToLab(c))
}

// DIN99d is the 2003 revision. Unlike its siblings it is defined
// directly on XYZ: the X channel is blended with Z before the L*a*b*
// computation, which stands in for the CIEDE2000 blue-region rotation
// term.
type DIN99d struct {
	L, A, B float64
}

// XYZ decodes, undoing the tristimulus perturbation.
func (c DIN99d) XYZ() XYZ { return din99dToXYZ(c) }

func xyzToDIN99d(c XYZ) DIN99d {
	const sin50, cos50 = 0.766044443118978, 0.6427876096865393

	adj := XYZ{X: 1.12*c.X - 0.12*c.Z, Y: c.Y, Z: c.Z}
	lab := XYZToLab(adj, WhitePointD65)

	l99 := 325.22 * math.Log(1+0.0036*lab.L)
	e := lab.A*cos50 + lab.B*sin50
	f := 1.14 * (lab.B*cos50 - lab.A*sin50)
	g := math.Hypot(e, f)
	h := math.Atan2(f, e) + deg2rad(50)
	c99 := 22.5 * math.Log(1+0.06*g)
	return DIN99d{L: l99, A: c99 * math.Cos(h), B: c99 * math.Sin(h)}
}

func din99dToXYZ(c DIN99d) XYZ {
	const sin50, cos50 = 0.766044443118978, 0.6427876096865393

	h := math.Atan2(c.B, c.A) - deg2rad(50)
	c99 := math.Hypot(c.A, c.B)
	g := (math.Exp(c99/22.5) - 1) / 0.06
	e := g * math.Cos(h)
	f := g * math.Sin(h) / 1.14
	lab := Lab{
		L: (math.Exp(c.L/325.22) - 1) / 0.0036,
		A: e*cos50 - f*sin50,
		B: e*sin50 + f*cos50,
	}
	adj := LabToXYZ(lab, WhitePointD65)
	return XYZ{X: (adj.X + 0.12*adj.Z) / 1.12, Y: adj.Y, Z: adj.Z}
}

// ToDIN99d converts any color to DIN99d.
func ToDIN99d(c Color) DIN99d {
	if v, ok := unwrap(c).(DIN99d); ok {
		return v
	}
	return xyzToDIN99d(c.XYZ())
}

// DIN99o is the 2011 revision (DIN 6176:2011), again derived from
// L*a*b*, with a 26° rotation and stronger chroma compression.
type DIN99o struct {
	L, A, B float64
}

// XYZ decodes via L*a*b* under D65.
func (c DIN99o) XYZ() XYZ { return din99oToLab(c).XYZ() }

func labToDIN99o(c Lab) DIN99o {
	const sin26, cos26 = 0.4383711467890774, 0.898794046299167

	l99 := 303.67 * math.Log(1+0.0039*c.L)
	eo := c.A*cos26 + c.B*sin26
	fo := 0.83 * (c.B*cos26 - c.A*sin26)
	g := math.Hypot(eo, fo)
	// The hue angle is rotated back by the same 26° after compression.
	h := math.Atan2(fo, eo) + deg2rad(26)
	var c99 float64
	if g != 0 {
		c99 = math.Log(1+0.075*g) / 0.0435
	}
	return DIN99o{L: l99, A: c99 * math.Cos(h), B: c99 * math.Sin(h)}
}

func din99oToLab(c DIN99o) Lab {
	const sin26, cos26 = 0.4383711467890774, 0.898794046299167

	h := math.Atan2(c.B, c.A) - deg2rad(26)
	c99 := math.Hypot(c.A, c.B)
	g := (math.Exp(0.0435*c99) - 1) / 0.075
	eo := g * math.Cos(h)
	fo := g * math.Sin(h) / 0.83
	return Lab{
		L: (math.Exp(c.L/303.67) - 1) / 0.0039,
		A: eo*cos26 - fo*sin26,
		B: eo*sin26 + fo*cos26,
	}
}

// ToDIN99o converts any color to DIN99o.
func ToDIN99o(c Color) DIN99o {
	if v, ok := unwrap(c).(DIN99o); ok {
		return v
	}
	return labToDIN99o(ToLab(c))
}
