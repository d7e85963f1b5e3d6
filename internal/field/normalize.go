package field

import "math"

// Normalization constants
const (
	// normFloor is the minimum divisor; near-zero vectors shrink toward
	// invisibility instead of dividing up to arbitrary length
	normFloor = 1e-2

	// normEpsilon3D is added to volumetric norms before clamping, for parity
	// with the evaluation-time offsets
	normEpsilon3D = 1e-5
)

// normalizeVectors rescales each sample vector to unit length in place. The
// divisor per sample is its Euclidean norm across comps plus eps, clamped
// below at normFloor. All arrays must share one length.
func normalizeVectors(eps float64, comps ...[]float64) {
	if len(comps) == 0 {
		return
	}
	n := len(comps[0])
	for i := 0; i < n; i++ {
		var sum float64
		for _, c := range comps {
			sum += c[i] * c[i]
		}
		div := math.Sqrt(sum) + eps
		if div < normFloor {
			div = normFloor
		}
		for _, c := range comps {
			c[i] /= div
		}
	}
}
