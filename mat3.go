package chroma

// Vec3 is a 3-component column vector.
type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a 3x3 matrix in row-major order. It is a plain value type: all
// operations return new matrices.
type Mat3 [3]Vec3

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0].X*v.X + m[0].Y*v.Y + m[0].Z*v.Z,
		Y: m[1].X*v.X + m[1].Y*v.Y + m[1].Z*v.Z,
		Z: m[2].X*v.X + m[2].Y*v.Y + m[2].Z*v.Z,
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		r[i] = Vec3{
			X: m[i].X*other[0].X + m[i].Y*other[1].X + m[i].Z*other[2].X,
			Y: m[i].X*other[0].Y + m[i].Y*other[1].Y + m[i].Z*other[2].Y,
			Z: m[i].X*other[0].Z + m[i].Y*other[1].Z + m[i].Z*other[2].Z,
		}
	}
	return r
}

// matDetTolerance guards against inverting near-singular matrices.
const matDetTolerance = 1e-12

// Inverse returns the matrix inverse. The second result is false when
// the matrix is singular within tolerance.
func (m Mat3) Inverse() (Mat3, bool) {
	c0 := m[1].Y*m[2].Z - m[1].Z*m[2].Y
	c1 := m[1].Z*m[2].X - m[1].X*m[2].Z
	c2 := m[1].X*m[2].Y - m[1].Y*m[2].X

	det := m[0].X*c0 + m[0].Y*c1 + m[0].Z*c2
	if det > -matDetTolerance && det < matDetTolerance {
		return Mat3{}, false
	}
	inv := 1 / det

	return Mat3{
		{c0 * inv, (m[0].Z*m[2].Y - m[0].Y*m[2].Z) * inv, (m[0].Y*m[1].Z - m[0].Z*m[1].Y) * inv},
		{c1 * inv, (m[0].X*m[2].Z - m[0].Z*m[2].X) * inv, (m[0].Z*m[1].X - m[0].X*m[1].Z) * inv},
		{c2 * inv, (m[0].Y*m[2].X - m[0].X*m[2].Y) * inv, (m[0].X*m[1].Y - m[0].Y*m[1].X) * inv},
	}, true
}

// mustInverse inverts one of the package's fixed conversion matrices,
// which are known to be regular.
func mustInverse(m Mat3) Mat3 {
	inv, ok := m.Inverse()
	if !ok {
		panic("chroma: conversion matrix is singular")
	}
	return inv
}
