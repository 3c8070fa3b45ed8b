package chroma

import (
	"image/color"
	"math"
)

// Color is implemented by every colorspace value in this package.
// The single method anchors the conversion graph: CIE XYZ under the D65
// white point is the pivot through which all non-adjacent conversions
// route. User-defined spaces join the graph by implementing it.
type Color interface {
	// XYZ returns the CIE 1931 tristimulus values of the color,
	// relative to Standard Illuminant D65 where a white point applies.
	XYZ() XYZ
}

// RGBLike is implemented by RGB-style spaces whose channels map onto
// sRGB red, green and blue in a fixed logical order, regardless of the
// underlying memory layout. ToRGB uses it as a fast path, so custom
// channel orderings (BGR pixel formats and the like) convert without
// a round trip through XYZ.
type RGBLike interface {
	Color
	RGBComponents() (r, g, b float64)
}

// Alpha pairs a color with an opacity in [0, 1]. The wrapper is opaque
// to all conversion and difference logic: computations see the wrapped
// color only. Use WithAlpha to reattach opacity after a conversion.
type Alpha struct {
	C Color
	A float64
}

// XYZ returns the tristimulus values of the wrapped color. Opacity does
// not participate in color math.
func (c Alpha) XYZ() XYZ { return c.C.XYZ() }

// WithAlpha wraps a color with an opacity in [0, 1].
func WithAlpha(c Color, a float64) Alpha { return Alpha{C: c, A: a} }

// unwrap strips Alpha wrappers, however deeply nested, before a
// conversion takes a direct edge.
func unwrap(c Color) Color {
	for {
		ac, ok := c.(Alpha)
		if !ok {
			return c
		}
		c = ac.C
	}
}

// Color converts c to the standard library color.Color interface,
// clamping into the displayable range.
func (c RGB) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: 255,
	}
}

// FromColor converts a standard library color.Color to RGB, discarding
// alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// components returns the three scalar components of a color in its own
// space, in declaration order. Component-wise operations (Linspace,
// WeightedColorMean) are defined in the space the operands live in.
func components(c Color) (x, y, z float64) {
	switch v := unwrap(c).(type) {
	case RGB:
		return v.R, v.G, v.B
	case HSV:
		return v.H, v.S, v.V
	case HSL:
		return v.H, v.S, v.L
	case XYZ:
		return v.X, v.Y, v.Z
	case XyY:
		return v.X, v.Y, v.Lum
	case Lab:
		return v.L, v.A, v.B
	case Luv:
		return v.L, v.U, v.V
	case LCHab:
		return v.L, v.C, v.H
	case LCHuv:
		return v.L, v.C, v.H
	case DIN99:
		return v.L, v.A, v.B
	case DIN99d:
		return v.L, v.A, v.B
	case DIN99o:
		return v.L, v.A, v.B
	case LMS:
		return v.L, v.M, v.S
	case RGB24:
		rgb := v.RGB()
		return rgb.R, rgb.G, rgb.B
	case RGBFixed:
		rgb := v.RGB()
		return rgb.R, rgb.G, rgb.B
	default:
		xyz := c.XYZ()
		return xyz.X, xyz.Y, xyz.Z
	}
}

// fromComponents rebuilds a color of the same concrete space as like
// from three scalar components. Unknown spaces rebuild as XYZ.
func fromComponents(like Color, x, y, z float64) Color {
	switch unwrap(like).(type) {
	case RGB:
		return RGB{x, y, z}
	case HSV:
		return HSV{x, y, z}
	case HSL:
		return HSL{x, y, z}
	case XYZ:
		return XYZ{x, y, z}
	case XyY:
		return XyY{x, y, z}
	case Lab:
		return Lab{x, y, z}
	case Luv:
		return Luv{x, y, z}
	case LCHab:
		return LCHab{x, y, z}
	case LCHuv:
		return LCHuv{x, y, z}
	case DIN99:
		return DIN99{x, y, z}
	case DIN99d:
		return DIN99d{x, y, z}
	case DIN99o:
		return DIN99o{x, y, z}
	case LMS:
		return LMS{x, y, z}
	case RGB24:
		return ToRGB24(RGB{x, y, z})
	case RGBFixed:
		return rgbFixedClamped(RGB{x, y, z})
	default:
		return XYZ{x, y, z}
	}
}

// convertLike converts xyz into the concrete space of like. Whitebalance
// and the dichromacy simulators use it to hand back a value in the
// caller's space.
func convertLike(like Color, xyz XYZ) Color {
	switch unwrap(like).(type) {
	case RGB:
		return XYZToRGB(xyz)
	case HSV:
		return ToHSV(xyz)
	case HSL:
		return ToHSL(xyz)
	case XYZ:
		return xyz
	case XyY:
		return XYZToXyY(xyz, WhitePointD65)
	case Lab:
		return XYZToLab(xyz, WhitePointD65)
	case Luv:
		return XYZToLuv(xyz, WhitePointD65)
	case LCHab:
		return labToLCHab(XYZToLab(xyz, WhitePointD65))
	case LCHuv:
		return luvToLCHuv(XYZToLuv(xyz, WhitePointD65))
	case DIN99:
		return labToDIN99(XYZToLab(xyz, WhitePointD65))
	case DIN99d:
		return xyzToDIN99d(xyz)
	case DIN99o:
		return labToDIN99o(XYZToLab(xyz, WhitePointD65))
	case LMS:
		return xyzToLMS(xyz)
	case RGB24:
		return ToRGB24(XYZToRGB(xyz))
	case RGBFixed:
		return rgbFixedClamped(XYZToRGB(xyz))
	default:
		return xyz
	}
}

// Common colors
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{1, 1, 1}
	Red     = RGB{1, 0, 0}
	Green   = RGB{0, 1, 0}
	Blue    = RGB{0, 0, 1}
	Yellow  = RGB{1, 1, 0}
	Cyan    = RGB{0, 1, 1}
	Magenta = RGB{1, 0, 1}
)

func sq(v float64) float64 { return v * v }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180 }
func rad2deg(rad float64) float64 { return rad * 180 / math.Pi }

// atan2deg is atan2 in degrees, normalized into [0, 360). The (0, 0)
// input, where the angle is undefined, yields 0 by convention.
func atan2deg(y, x float64) float64 {
	if y == 0 && x == 0 {
		return 0
	}
	h := rad2deg(math.Atan2(y, x))
	if h < 0 {
		h += 360
	}
	return h
}

// normHue wraps a hue angle into [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
