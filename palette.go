package chroma

import (
	"fmt"
	"math"
	"strings"
)

// PaletteOption tunes the shape of SequentialPalette and
// DivergingPalette.
type PaletteOption func(*paletteOptions)

// paletteOptions are the hand-tuned path parameters. The path runs
// through LCHuv from a near-white start toward a dark end, anchored on
// the most saturated color of the palette hue.
type paletteOptions struct {
	c, s, b  float64 // chroma, saturation, brightness shape weights
	w, d     float64 // white and dark blend amounts
	wcolor   RGB     // hue pulled in at the light end
	dcolor   RGB     // hue pulled in at the dark end
	logscale bool
}

func defaultPaletteOptions() paletteOptions {
	return paletteOptions{
		c: 0.88, s: 0.6, b: 0.75,
		w: 0.15, d: 0,
		wcolor: RGB{R: 1, G: 1},
		dcolor: RGB{B: 1},
	}
}

// WithShape sets the chroma, saturation and brightness weights, each in
// [0, 1].
func WithShape(c, s, b float64) PaletteOption {
	return func(o *paletteOptions) { o.c, o.s, o.b = c, s, b }
}

// WithWhiteBlend sets how strongly the light end bends toward wcolor.
func WithWhiteBlend(w float64, wcolor RGB) PaletteOption {
	return func(o *paletteOptions) { o.w, o.wcolor = w, wcolor }
}

// WithDarkBlend sets how strongly the dark end bends toward dcolor.
func WithDarkBlend(d float64, dcolor RGB) PaletteOption {
	return func(o *paletteOptions) { o.d, o.dcolor = d, dcolor }
}

// WithLogScale spaces the samples logarithmically instead of evenly.
func WithLogScale() PaletteOption {
	return func(o *paletteOptions) { o.logscale = true }
}

// mixHue moves h0 a fraction a of the short way around toward h1.
func mixHue(a, h0, h1 float64) float64 {
	m := normHue(180+h1-h0) - 180
	return normHue(h0 + a*m)
}

// bezier evaluates a quadratic Bézier through p0, p1, p2 at u.
func bezier(u, p0, p1, p2 float64) float64 {
	v := 1 - u
	return v*v*p0 + 2*u*v*p1 + u*u*p2
}

// SequentialPalette returns n colors running from light to dark along a
// single-hue path through LCHuv, suitable for encoding ordered data.
// The path is a quadratic Bézier between a near-white multi-hue start,
// the most saturated color at h, and a dark end, with the sample grid
// warped toward the light side.
func SequentialPalette(h float64, n int, opts ...PaletteOption) []RGB {
	o := defaultPaletteOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n <= 0 {
		return nil
	}

	pstart := ToLCHuv(o.wcolor)
	pend := ToLCHuv(o.dcolor)
	p1 := ToLCHuv(MSC(h))
	p1.C *= o.c

	// Light endpoint, blended toward the white color's hue.
	p2 := LCHuv{L: 100*(1-o.w) + o.w*pstart.L, H: mixHue(o.w, h, pstart.H)}
	p2.C = math.Min(MSCLightness(p2.H, p2.L).C, o.w*o.s*pstart.C)

	// Dark endpoint, blended toward the dark color's hue.
	p0 := LCHuv{L: 20 * o.d, H: mixHue(o.d, h, pend.H)}
	p0.C = math.Min(MSCLightness(p0.H, p0.L).C, o.d*o.s*pend.C)

	q0 := lchuvMean(o.s, p1, p0)
	q2 := lchuvMean(o.s, p1, p2)
	q1 := lchuvMean(0.5, q0, q2)

	pal := make([]RGB, n)
	for i := range pal {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		if o.logscale {
			t = math.Pow(10, 2*(t-1)) // 10^-2 .. 10^0
		}
		u := 1 - t
		// Warp toward light colors and toward uniform steps along
		// the curve.
		u = (o.b - 1 + math.Sqrt(sq(1-o.b)+4*o.b*u)) / (2 * o.b)

		pal[i] = ToRGB(LCHuv{
			L: bezier(u, p0.L, q1.L, p2.L),
			C: bezier(u, p0.C, q1.C, p2.C),
			H: bezier(u, p0.H, q1.H, p2.H),
		})
	}
	return pal
}

// lchuvMean is a component-wise weighted mean in LCHuv: w toward a.
func lchuvMean(w float64, a, b LCHuv) LCHuv {
	return LCHuv{
		L: w*a.L + (1-w)*b.L,
		C: w*a.C + (1-w)*b.C,
		H: mixHue(w, b.H, a.H),
	}
}

// DivergingPalette returns n colors running dark-to-light along hue h1,
// then light-to-dark along hue h2, for data diverging around a neutral
// midpoint. For odd n the shared light midpoint appears once in the
// middle; for even n it is dropped and the palette steps straight
// across it.
func DivergingPalette(h1, h2 float64, n int, opts ...PaletteOption) []RGB {
	if n <= 0 {
		return nil
	}
	m := n / 2
	arm1 := SequentialPalette(h1, m+1, opts...)
	arm2 := SequentialPalette(h2, m+1, opts...)

	pal := make([]RGB, 0, n)
	for i := len(arm1) - 1; i >= 0; i-- {
		pal = append(pal, arm1[i])
	}
	if n%2 == 0 {
		// No single middle slot: drop the first arm's light midpoint.
		pal = pal[:m]
	}
	pal = append(pal, arm2[1:]...)
	return pal
}

// Colormap returns n colors of a named preset palette. Sequential
// names: "blues", "greens", "grays", "oranges", "purples", "reds";
// "rdbu" is a diverging red-blue map. Names are case-insensitive.
func Colormap(name string, n int) ([]RGB, error) {
	switch strings.ToLower(name) {
	case "blues":
		return SequentialPalette(255, n, WithWhiteBlend(0.3, RGB{R: 1, G: 1}), WithDarkBlend(0.25, RGB{B: 1})), nil
	case "greens":
		return SequentialPalette(125, n, WithWhiteBlend(0.3, RGB{R: 1, G: 1}), WithDarkBlend(0.25, RGB{B: 1})), nil
	case "grays", "greys":
		return SequentialPalette(0, n, WithShape(0, 0, 0.75)), nil
	case "oranges":
		return SequentialPalette(20, n, WithWhiteBlend(0.2, RGB{R: 1, G: 1}), WithDarkBlend(0.1, RGB{B: 1})), nil
	case "purples":
		return SequentialPalette(270, n, WithWhiteBlend(0.2, RGB{R: 1, G: 1}), WithDarkBlend(0.1, RGB{B: 1})), nil
	case "reds":
		return SequentialPalette(12, n, WithWhiteBlend(0.2, RGB{R: 1, G: 1}), WithDarkBlend(0.1, RGB{B: 1})), nil
	case "rdbu":
		return DivergingPalette(12, 255, n), nil
	default:
		return nil, fmt.Errorf("chroma: unknown colormap %q", name)
	}
}
