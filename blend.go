package chroma

import "reflect"

// WeightedColorMean returns w*c1 + (1-w)*c2 component-wise in c1's
// space, with c2 converted into that space first. The blend is purely
// numeric: blending in RGB averages gamma-encoded values, so callers
// wanting perceptual midpoints should blend Lab/Luv values.
func WeightedColorMean(w float64, c1, c2 Color) Color {
	x1, y1, z1 := components(c1)
	x2, y2, z2 := components(sameSpace(c1, c2))
	return fromComponents(c1,
		w*x1+(1-w)*x2,
		w*y1+(1-w)*y2,
		w*z1+(1-w)*z2,
	)
}

// sameSpace brings c2 into c1's concrete space, leaving it untouched
// when it is already there.
func sameSpace(c1, c2 Color) Color {
	a, b := unwrap(c1), unwrap(c2)
	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return b
	}
	return convertLike(a, b.XYZ())
}

// Linspace returns n colors linearly interpolated component-wise from
// c1 to c2 inclusive, in c1's space. n = 1 yields just c1.
func Linspace(c1, c2 Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		x, y, z := components(c1)
		out[0] = fromComponents(c1, x, y, z)
		return out
	}
	x1, y1, z1 := components(c1)
	x2, y2, z2 := components(sameSpace(c1, c2))
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = fromComponents(c1,
			x1+t*(x2-x1),
			y1+t*(y2-y1),
			z1+t*(z2-z1),
		)
	}
	return out
}
