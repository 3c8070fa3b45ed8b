package chroma

import "math"

// HSV is the hue/saturation/value reparametrization of sRGB. Hue is in
// degrees [0, 360); saturation and value are in [0, 1]. Hue is
// physically meaningless for achromatic colors (saturation 0) and is 0
// by convention there.
type HSV struct {
	H, S, V float64
}

// XYZ routes through the parent RGB space.
func (c HSV) XYZ() XYZ { return c.RGB().XYZ() }

// RGB converts to sRGB by walking the hue hexagon.
func (c HSV) RGB() RGB {
	hp := normHue(c.H) / 60
	chrm := c.V * c.S
	x := chrm * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := c.V - chrm

	var r, g, b float64
	switch {
	case hp < 1:
		r, g = chrm, x
	case hp < 2:
		r, g = x, chrm
	case hp < 3:
		g, b = chrm, x
	case hp < 4:
		g, b = x, chrm
	case hp < 5:
		r, b = x, chrm
	default:
		r, b = chrm, x
	}
	return RGB{R: m + r, G: m + g, B: m + b}
}

// ToHSV converts any color to HSV.
func ToHSV(c Color) HSV {
	if v, ok := unwrap(c).(HSV); ok {
		return v
	}
	rgb := ToRGB(c)
	min := math.Min(math.Min(rgb.R, rgb.G), rgb.B)
	v := math.Max(math.Max(rgb.R, rgb.G), rgb.B)
	chrm := v - min

	s := 0.0
	if v != 0 {
		s = chrm / v
	}

	h := 0.0 // gray: hue undefined, 0 by convention
	if min != v {
		switch v {
		case rgb.R:
			h = math.Mod((rgb.G-rgb.B)/chrm, 6)
		case rgb.G:
			h = (rgb.B-rgb.R)/chrm + 2
		case rgb.B:
			h = (rgb.R-rgb.G)/chrm + 4
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}
	return HSV{H: h, S: s, V: v}
}

// HSL is the hue/saturation/lightness reparametrization of sRGB. Hue is
// in degrees [0, 360); saturation and lightness are in [0, 1]. As with
// HSV, achromatic colors carry hue 0 by convention.
type HSL struct {
	H, S, L float64
}

// XYZ routes through the parent RGB space.
func (c HSL) XYZ() XYZ { return c.RGB().XYZ() }

// RGB converts to sRGB.
func (c HSL) RGB() RGB {
	hp := normHue(c.H) / 60
	chrm := (1 - math.Abs(2*c.L-1)) * c.S
	x := chrm * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := c.L - chrm/2

	var r, g, b float64
	switch {
	case hp < 1:
		r, g = chrm, x
	case hp < 2:
		r, g = x, chrm
	case hp < 3:
		g, b = chrm, x
	case hp < 4:
		g, b = x, chrm
	case hp < 5:
		r, b = x, chrm
	default:
		r, b = chrm, x
	}
	return RGB{R: m + r, G: m + g, B: m + b}
}

// ToHSL converts any color to HSL.
func ToHSL(c Color) HSL {
	if v, ok := unwrap(c).(HSL); ok {
		return v
	}
	rgb := ToRGB(c)
	min := math.Min(math.Min(rgb.R, rgb.G), rgb.B)
	max := math.Max(math.Max(rgb.R, rgb.G), rgb.B)

	l := (max + min) / 2
	if min == max {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = (max - min) / (max + min)
	} else {
		s = (max - min) / (2 - max - min)
	}

	var h float64
	switch max {
	case rgb.R:
		h = (rgb.G - rgb.B) / (max - min)
	case rgb.G:
		h = 2 + (rgb.B-rgb.R)/(max-min)
	default:
		h = 4 + (rgb.R-rgb.G)/(max-min)
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: s, L: l}
}
