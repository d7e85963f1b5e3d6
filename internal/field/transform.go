package field

import (
	"math"

	"github.com/quiverlab/field-plotter/internal/model"
)

// The component expressions are written in the system's local orthonormal
// basis: (Fr, Fθ, Fz) point along the radial/tangential/axial directions,
// which differ at every grid point. A quiver plot draws vectors in one fixed
// Cartesian frame, so volumetric curvilinear samples are rotated into that
// frame at their own grid point. Planar slices instead draw the raw native
// component pair on native-coordinate axes, so no rotation applies there.

// cylindricalBase converts a native (r, θ, z) grid point to Cartesian
func cylindricalBase(r, theta, z float64) (x, y, zz float64) {
	sin, cos := math.Sincos(theta)
	return r * cos, r * sin, z
}

// cylindricalToCartesian rotates one local-basis sample into the fixed frame
func cylindricalToCartesian(fr, ftheta, fz, theta float64) (u, v, w float64) {
	sin, cos := math.Sincos(theta)
	u = fr*cos - ftheta*sin
	v = fr*sin + ftheta*cos
	w = fz
	return u, v, w
}

// sphericalBase converts a native (r, θ, φ) grid point to Cartesian
func sphericalBase(r, theta, phi float64) (x, y, z float64) {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return r * st * cp, r * st * sp, r * ct
}

// sphericalToCartesian rotates one local-basis sample into the fixed frame
func sphericalToCartesian(fr, ftheta, fphi, theta, phi float64) (u, v, w float64) {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	u = fr*st*cp + ftheta*ct*cp - fphi*sp
	v = fr*st*sp + ftheta*ct*sp + fphi*cp
	w = fr*ct - ftheta*st
	return u, v, w
}

// axisName returns the display label of a native coordinate
func axisName(cs model.CoordinateSystem, idx int) string {
	switch cs {
	case model.SystemCylindrical:
		return [3]string{"R", "θ", "Z"}[idx]
	case model.SystemSpherical:
		return [3]string{"R", "θ", "φ"}[idx]
	default:
		return [3]string{"X", "Y", "Z"}[idx]
	}
}

// assemble converts sampled native components into a plot-ready result
func assemble(req model.PlotRequest, g grid, f [3][]float64) (*Result, error) {
	if req.Type.Is3D() {
		return assemble3D(req, g, f)
	}
	return assemble2D(req, g, f)
}

// assemble3D produces Cartesian base points and Cartesian vector components
// for the volumetric plot; every system shares the [-10,10] cube bounds
func assemble3D(req model.PlotRequest, g grid, f [3][]float64) (*Result, error) {
	n := g.size()
	for c := 0; c < 3; c++ {
		if len(f[c]) != n {
			return nil, &ShapeError{Op: "assemble 3D vectors", Want: n, Got: len(f[c])}
		}
	}

	res := &Result{
		System: req.System,
		Type:   req.Type,
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Z:      make([]float64, n),
		U:      make([]float64, n),
		V:      make([]float64, n),
		W:      make([]float64, n),
		XLabel: "X", YLabel: "Y", ZLabel: "Z",
		XRange: [2]float64{linearMin, linearMax},
		YRange: [2]float64{linearMin, linearMax},
		ZRange: [2]float64{linearMin, linearMax},
	}

	for i := 0; i < n; i++ {
		c0, c1, c2 := g.coords[0][i], g.coords[1][i], g.coords[2][i]
		switch req.System {
		case model.SystemCylindrical:
			res.X[i], res.Y[i], res.Z[i] = cylindricalBase(c0, c1, c2)
			res.U[i], res.V[i], res.W[i] = cylindricalToCartesian(f[0][i], f[1][i], f[2][i], c1)
		case model.SystemSpherical:
			res.X[i], res.Y[i], res.Z[i] = sphericalBase(c0, c1, c2)
			res.U[i], res.V[i], res.W[i] = sphericalToCartesian(f[0][i], f[1][i], f[2][i], c1, c2)
		default:
			res.X[i], res.Y[i], res.Z[i] = c0, c1, c2
			res.U[i], res.V[i], res.W[i] = f[0][i], f[1][i], f[2][i]
		}
	}
	return res, nil
}

// assemble2D produces a planar arrow field: the two varying native
// coordinates become the plot axes and the matching native components become
// the arrow vectors, untouched
func assemble2D(req model.PlotRequest, g grid, f [3][]float64) (*Result, error) {
	n := g.size()
	ax0, ax1 := g.spec.axes[0], g.spec.axes[1]
	for _, c := range []int{ax0.index, ax1.index} {
		if len(f[c]) != n {
			return nil, &ShapeError{Op: "assemble 2D vectors", Want: n, Got: len(f[c])}
		}
	}

	res := &Result{
		System: req.System,
		Type:   req.Type,
		X:      make([]float64, n),
		Y:      make([]float64, n),
		U:      make([]float64, n),
		V:      make([]float64, n),
		XLabel: axisName(req.System, ax0.index),
		YLabel: axisName(req.System, ax1.index),
		XRange: [2]float64{ax0.min, ax0.max},
		YRange: [2]float64{ax1.min, ax1.max},
	}

	copy(res.X, g.coords[ax0.index])
	copy(res.Y, g.coords[ax1.index])
	copy(res.U, f[ax0.index])
	copy(res.V, f[ax1.index])
	return res, nil
}
