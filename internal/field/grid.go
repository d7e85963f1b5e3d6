package field

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quiverlab/field-plotter/internal/model"
)

// Sampling domain bounds
const (
	linearMin = -10.0
	linearMax = 10.0
	radiusMax = 10.0
	// Held radius for slices over the two angular coordinates
	sliceRadius = 5.0
)

// Grid resolution: coarse for volumetric plots, finer for planar slices.
// Denser 3D grids turn the quiver into visual noise.
const (
	res3D        = 8
	res3DAngular = 16
	res2D        = 20
)

// axis describes one sampled native coordinate
type axis struct {
	index int // position in the coordinate symbol tuple
	min   float64
	max   float64
	n     int
}

// gridSpec describes the sampling layout for one (system, plot type) pair:
// which native coordinates vary and, for slices, the value the remaining
// coordinate is pinned to before evaluation.
type gridSpec struct {
	axes      []axis
	held      int // symbol index of the pinned coordinate, -1 for 3D
	heldValue float64
}

// components returns the component indices the plot consumes: all three for
// volumetric plots, the two plotted axes for slices
func (s gridSpec) components() []int {
	if len(s.axes) == 3 {
		return []int{0, 1, 2}
	}
	return []int{s.axes[0].index, s.axes[1].index}
}

// gridSpecFor returns the sampling layout for a validated (system, plot type)
// pair. The bool is false for pairs the request validation would reject.
func gridSpecFor(cs model.CoordinateSystem, pt model.PlotType) (gridSpec, bool) {
	linear := func(idx, n int) axis { return axis{index: idx, min: linearMin, max: linearMax, n: n} }
	radial := func(idx, n int) axis { return axis{index: idx, min: 0, max: radiusMax, n: n} }
	azimuthal := func(idx, n int) axis { return axis{index: idx, min: 0, max: 2 * math.Pi, n: n} }
	polar := func(idx, n int) axis { return axis{index: idx, min: 0, max: math.Pi, n: n} }

	switch cs {
	case model.SystemCartesian:
		switch pt {
		case model.PlotType3D:
			return gridSpec{axes: []axis{linear(0, res3D), linear(1, res3D), linear(2, res3D)}, held: -1}, true
		case model.PlotTypeXY:
			return gridSpec{axes: []axis{linear(0, res2D), linear(1, res2D)}, held: 2}, true
		case model.PlotTypeYZ:
			return gridSpec{axes: []axis{linear(1, res2D), linear(2, res2D)}, held: 0}, true
		case model.PlotTypeXZ:
			return gridSpec{axes: []axis{linear(0, res2D), linear(2, res2D)}, held: 1}, true
		}

	case model.SystemCylindrical:
		switch pt {
		case model.PlotType3D:
			return gridSpec{axes: []axis{radial(0, res3D), azimuthal(1, res3DAngular), linear(2, res3D)}, held: -1}, true
		case model.PlotTypeRTheta:
			return gridSpec{axes: []axis{radial(0, res2D), azimuthal(1, res2D)}, held: 2}, true
		case model.PlotTypeRZ:
			return gridSpec{axes: []axis{radial(0, res2D), linear(2, res2D)}, held: 1}, true
		case model.PlotTypeThetaZ:
			return gridSpec{axes: []axis{azimuthal(1, res2D), linear(2, res2D)}, held: 0, heldValue: sliceRadius}, true
		}

	case model.SystemSpherical:
		switch pt {
		case model.PlotType3D:
			return gridSpec{axes: []axis{radial(0, res3D), polar(1, res3D), azimuthal(2, res3DAngular)}, held: -1}, true
		case model.PlotTypeRTheta:
			return gridSpec{axes: []axis{radial(0, res2D), polar(1, res2D)}, held: 2}, true
		case model.PlotTypeRPhi:
			return gridSpec{axes: []axis{radial(0, res2D), azimuthal(2, res2D)}, held: 1, heldValue: math.Pi / 2}, true
		case model.PlotTypeThetaPhi:
			return gridSpec{axes: []axis{polar(1, res2D), azimuthal(2, res2D)}, held: 0, heldValue: sliceRadius}, true
		}
	}
	return gridSpec{}, false
}

// grid is the built sampling mesh. coords holds the full native coordinate
// tuple per sample, one flat array per symbol, with the held coordinate
// constant-filled for slices.
type grid struct {
	spec   gridSpec
	coords [3][]float64
}

func (g grid) size() int {
	return len(g.coords[0])
}

// buildGrid enumerates the mesh with uniformly spaced axis values, endpoints
// included, the last axis varying fastest
func buildGrid(spec gridSpec) grid {
	axisVals := make([][]float64, len(spec.axes))
	n := 1
	for i, ax := range spec.axes {
		axisVals[i] = floats.Span(make([]float64, ax.n), ax.min, ax.max)
		n *= ax.n
	}

	g := grid{spec: spec}
	for a := range g.coords {
		g.coords[a] = make([]float64, n)
	}

	if len(spec.axes) == 2 {
		i := 0
		for _, v0 := range axisVals[0] {
			for _, v1 := range axisVals[1] {
				g.coords[spec.axes[0].index][i] = v0
				g.coords[spec.axes[1].index][i] = v1
				g.coords[spec.held][i] = spec.heldValue
				i++
			}
		}
		return g
	}

	i := 0
	for _, v0 := range axisVals[0] {
		for _, v1 := range axisVals[1] {
			for _, v2 := range axisVals[2] {
				g.coords[spec.axes[0].index][i] = v0
				g.coords[spec.axes[1].index][i] = v1
				g.coords[spec.axes[2].index][i] = v2
				i++
			}
		}
	}
	return g
}
