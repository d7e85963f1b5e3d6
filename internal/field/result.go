package field

import (
	"github.com/quiverlab/field-plotter/internal/model"
)

// Result is a plot-ready arrow field: base points, unit-scaled vector
// components, and the axis metadata a renderer needs. Arrays index together:
// sample i has base (X[i], Y[i], Z[i]) and vector (U[i], V[i], W[i]). Z and W
// are nil for 2D plot types.
type Result struct {
	System model.CoordinateSystem
	Type   model.PlotType

	X, Y, Z []float64
	U, V, W []float64

	XLabel, YLabel, ZLabel string
	XRange, YRange, ZRange [2]float64
}

// Is3D reports whether the result carries a third axis
func (r *Result) Is3D() bool {
	return r.Type.Is3D()
}

// Len returns the number of arrow samples
func (r *Result) Len() int {
	return len(r.X)
}
