package chroma

// Dichromacy simulation: each deficiency projects the cone response
// onto the plane reachable without the missing cone class, using the
// Viénot, Brettel and Mollon (1999) linear approximation. severity in
// [0, 1] interpolates between normal vision (0) and complete
// dichromacy (1), covering the anomalous-trichromacy range in between.
//
// The projection coefficients are defined on the Smith-Pokorny cone
// fundamentals over Judd-Vos XYZ, so the simulation runs in that cone
// space (reached from linear sRGB), not in the CAT02 LMS used for
// chromatic adaptation. The projection planes contain the achromatic
// axis, so neutrals are fixed points of all three simulations.
var (
	rgbToCone = Mat3{
		{17.8824, 43.5161, 4.11935},
		{3.45565, 27.1554, 3.86714},
		{0.0299566, 0.184309, 1.46709},
	}
	coneToRGB = mustInverse(rgbToCone)

	protanCone = Mat3{
		{0, 2.02344, -2.52581},
		{0, 1, 0},
		{0, 0, 1},
	}
	deutanCone = Mat3{
		{1, 0, 0},
		{0.494207, 0, 1.24827},
		{0, 0, 1},
	}
	tritanCone = Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{-0.395913, 0.801109, 0},
	}
)

func simulateDeficiency(c Color, severity float64, m Mat3) Color {
	r, g, b := ToRGB(c).LinearRGB()
	v := rgbToCone.MulVec(Vec3{r, g, b})
	p := m.MulVec(v)
	blended := Vec3{
		X: (1-severity)*v.X + severity*p.X,
		Y: (1-severity)*v.Y + severity*p.Y,
		Z: (1-severity)*v.Z + severity*p.Z,
	}
	out := coneToRGB.MulVec(blended)
	return convertLike(c, FromLinearRGB(out.X, out.Y, out.Z).XYZ())
}

// Protanopic simulates red-cone deficiency at the given severity,
// returning a color in c's space.
func Protanopic(c Color, severity float64) Color {
	return simulateDeficiency(c, severity, protanCone)
}

// Deuteranopic simulates green-cone deficiency at the given severity,
// returning a color in c's space.
func Deuteranopic(c Color, severity float64) Color {
	return simulateDeficiency(c, severity, deutanCone)
}

// Tritanopic simulates blue-cone deficiency at the given severity,
// returning a color in c's space.
func Tritanopic(c Color, severity float64) Color {
	return simulateDeficiency(c, severity, tritanCone)
}
