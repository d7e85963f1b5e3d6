package render

import "math"

// Matrix3x3 is a row-major 3x3 rotation matrix
type Matrix3x3 [3][3]float64

// NewMatrix3x3 returns the identity matrix
func NewMatrix3x3() Matrix3x3 {
	return Matrix3x3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Multiply returns m * other
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// MultiplyVector returns m * v
func (m Matrix3x3) MultiplyVector(v [3]float64) [3]float64 {
	var result [3]float64
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += m[i][j] * v[j]
		}
		result[i] = sum
	}
	return result
}

// RotationMatrixX returns the rotation about the x axis by angle degrees
func RotationMatrixX(angle float64) Matrix3x3 {
	rad := angle * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix3x3{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}
}

// RotationMatrixY returns the rotation about the y axis by angle degrees
func RotationMatrixY(angle float64) Matrix3x3 {
	rad := angle * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix3x3{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	}
}

// RotationMatrixZ returns the rotation about the z axis by angle degrees
func RotationMatrixZ(angle float64) Matrix3x3 {
	rad := angle * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix3x3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// View is the orthographic camera for volumetric plots. Elev is degrees above
// the horizontal plane; Azim is the camera's angle around +Z, measured from
// the +X axis toward +Y. The convention matches the elevation/azimuth pair of
// common 3D plotting tools.
type View struct {
	Elev float64
	Azim float64
}

// DefaultView is the familiar three-quarter camera
var DefaultView = View{Elev: 30, Azim: -60}

// rotation returns the world rotation that puts the camera at (0,-1,0)
// looking along +Y, with +Z up on screen. Screen coordinates of a rotated
// point are its x (right) and z (up) components; y is depth.
func (v View) rotation() Matrix3x3 {
	return RotationMatrixX(v.Elev).Multiply(RotationMatrixZ(-(v.Azim + 90)))
}

// Project maps a world point to screen (right, up) coordinates
func (v View) Project(x, y, z float64) (sx, sy float64) {
	p := v.rotation().MultiplyVector([3]float64{x, y, z})
	return p[0], p[2]
}
