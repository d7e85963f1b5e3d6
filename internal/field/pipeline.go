package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quiverlab/field-plotter/internal/expr"
	"github.com/quiverlab/field-plotter/internal/model"
)

// defaultEvalOffsets are the per-axis anti-singularity shifts added to the
// evaluation coordinates, never to the plotted base points. Symmetric grids
// sample exact zeros that land on denominators in fields like 1/x; the
// distinct sub-visual offsets nudge every sample off those points. This is a
// heuristic, not an exactness guarantee: a field can still blow up between
// the shifted points, and such samples are zeroed during sampling instead.
var defaultEvalOffsets = map[model.CoordinateSystem][3]float64{
	model.SystemCartesian:   {1e-5, 1e-6, 1e-7},
	model.SystemCylindrical: {1e-5, 0, 1e-6},
	model.SystemSpherical:   {0, 0, 0},
}

// Pipeline evaluates plot requests into renderable arrow fields
type Pipeline struct {
	offsets map[model.CoordinateSystem][3]float64
}

// NewPipeline creates a pipeline with the default evaluation offsets
func NewPipeline() *Pipeline {
	return &Pipeline{offsets: defaultEvalOffsets}
}

// Evaluate runs the full pipeline for one request: defaults, validation,
// compilation, sampling, basis transform, normalization. It either returns a
// complete result or an error with nothing committed; the previous result, if
// the caller kept one, stays valid.
func (p *Pipeline) Evaluate(req model.PlotRequest) (*Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	progs, err := p.compile(req)
	if err != nil {
		return nil, err
	}

	spec, ok := gridSpecFor(req.System, req.Type)
	if !ok {
		return nil, fmt.Errorf("no grid layout for %s %s", req.System, req.Type)
	}
	g := buildGrid(spec)

	samples, err := p.sample(req, progs, g)
	if err != nil {
		return nil, err
	}

	res, err := assemble(req, g, samples)
	if err != nil {
		return nil, err
	}

	if req.Type.Is3D() {
		normalizeVectors(normEpsilon3D, res.U, res.V, res.W)
	} else {
		normalizeVectors(0, res.U, res.V)
	}
	return res, nil
}

// compile parses all three component expressions against the system's symbol
// tuple. All components are checked even when the plot type consumes only
// two, so a typo never hides behind the current plot selection.
func (p *Pipeline) compile(req model.PlotRequest) ([3]*expr.Program, error) {
	symbols := req.System.Symbols()
	labels := req.System.ComponentLabels()

	var progs [3]*expr.Program
	for i, src := range req.Components {
		prog, err := expr.Compile(src, symbols[:])
		if err != nil {
			return progs, &ParseError{Component: labels[i], Expr: src, Err: err}
		}
		progs[i] = prog
	}
	return progs, nil
}

// sample evaluates the components the plot consumes at every grid point,
// with the per-axis offsets applied to the evaluation coordinates. Isolated
// non-finite samples are zeroed; a component with no finite samples at all is
// an evaluation error.
func (p *Pipeline) sample(req model.PlotRequest, progs [3]*expr.Program, g grid) ([3][]float64, error) {
	offsets := p.offsets[req.System]
	labels := req.System.ComponentLabels()
	n := g.size()

	var shifted [3][]float64
	for a := range shifted {
		arr := make([]float64, n)
		copy(arr, g.coords[a])
		if offsets[a] != 0 {
			floats.AddConst(offsets[a], arr)
		}
		shifted[a] = arr
	}

	var out [3][]float64
	point := make([]float64, 3)
	for _, c := range g.spec.components() {
		vals := make([]float64, n)
		finite := 0
		for i := 0; i < n; i++ {
			point[0], point[1], point[2] = shifted[0][i], shifted[1][i], shifted[2][i]
			v := progs[c].Eval(point)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			} else {
				finite++
			}
			vals[i] = v
		}
		if finite == 0 {
			return out, &EvalError{Component: labels[c], Reason: "no finite values over the sampling grid"}
		}
		out[c] = vals
	}
	return out, nil
}
