package field

import (
	"math"
	"testing"
)

func TestNormalizeVectors_UnitNorm(t *testing.T) {
	u := []float64{3, 0, 1, -5}
	v := []float64{4, 2, 1, 12}
	normalizeVectors(0, u, v)

	for i := range u {
		norm := math.Hypot(u[i], v[i])
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("sample %d norm after normalization = %v, expected 1", i, norm)
		}
	}
}

func TestNormalizeVectors_FloorClampsDivisor(t *testing.T) {
	// raw norm 1e-3 sits below the floor, so the divisor is the floor itself
	u := []float64{1e-3}
	v := []float64{0}
	normalizeVectors(0, u, v)

	expected := 1e-3 / normFloor
	if math.Abs(u[0]-expected) > 1e-15 {
		t.Errorf("sub-floor sample scaled to %v, expected %v (divisor clamped to %v)", u[0], expected, normFloor)
	}
	if v[0] != 0 {
		t.Errorf("zero component became %v, expected 0", v[0])
	}
}

func TestNormalizeVectors_ZeroVectorStaysFinite(t *testing.T) {
	u := []float64{0}
	v := []float64{0}
	w := []float64{0}
	normalizeVectors(normEpsilon3D, u, v, w)

	for i, c := range []float64{u[0], v[0], w[0]} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Errorf("component %d of zero vector = %v, expected finite", i, c)
		}
		if c != 0 {
			t.Errorf("component %d of zero vector = %v, expected 0", i, c)
		}
	}
}

func TestNormalizeVectors_Epsilon3D(t *testing.T) {
	u := []float64{1}
	v := []float64{0}
	w := []float64{0}
	normalizeVectors(normEpsilon3D, u, v, w)

	expected := 1 / (1 + normEpsilon3D)
	if math.Abs(u[0]-expected) > 1e-15 {
		t.Errorf("unit sample scaled to %v, expected %v", u[0], expected)
	}
}
