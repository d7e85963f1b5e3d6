package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/quiverlab/field-plotter/internal/field"
)

// Default canvas size
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// arrowLength3D is the world-space length of a unit arrow in volumetric plots
const arrowLength3D = 1.5

// Options controls rasterization. Zero fields fall back to defaults; a zero
// View means DefaultView.
type Options struct {
	Width  int // pixels at Scale 1
	Height int
	Scale  int // resolution multiplier for export
	View   View
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.View == (View{}) {
		o.View = DefaultView
	}
	return o
}

// Image renders the arrow field to an in-memory image
func Image(res *field.Result, opt Options) (image.Image, error) {
	opt = opt.withDefaults()
	p, err := buildPlot(res, opt.View)
	if err != nil {
		return nil, err
	}
	c := canvasFor(opt)
	p.Draw(draw.New(c))
	return c.Image(), nil
}

// WritePNG renders the arrow field and encodes it as PNG. Export resolution
// scales with opt.Scale while the layout stays the same.
func WritePNG(w io.Writer, res *field.Result, opt Options) error {
	opt = opt.withDefaults()
	p, err := buildPlot(res, opt.View)
	if err != nil {
		return err
	}
	c := canvasFor(opt)
	p.Draw(draw.New(c))
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// canvasFor sizes the raster canvas so that one point is one pixel at Scale 1
func canvasFor(opt Options) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(opt.Width)), vg.Points(float64(opt.Height))),
		vgimg.UseDPI(72*opt.Scale),
	)
}

func buildPlot(res *field.Result, view View) (*plot.Plot, error) {
	if res.Is3D() {
		return plot3D(res, view)
	}
	return plot2D(res)
}

func plotTitle(res *field.Result) string {
	return fmt.Sprintf("%s vector field (%s)", res.System, res.Type)
}

// plot2D lays out a planar quiver: native axis labels, fixed native bounds,
// light grid lines behind the arrows
func plot2D(res *field.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = plotTitle(res)
	p.X.Label.Text = res.XLabel
	p.Y.Label.Text = res.YLabel

	p.Add(plotter.NewGrid())
	p.Add(newArrowField(res.X, res.Y, res.U, res.V, unitArrowScale(res)))

	p.X.Min, p.X.Max = res.XRange[0], res.XRange[1]
	p.Y.Min, p.Y.Max = res.YRange[0], res.YRange[1]
	return p, nil
}

// plot3D projects bases and tips through the camera and draws the arrows as
// screen-plane segments, with the domain bounding box and axis labels
func plot3D(res *field.Result, view View) (*plot.Plot, error) {
	m := view.rotation()
	n := res.Len()
	px := make([]float64, n)
	py := make([]float64, n)
	du := make([]float64, n)
	dv := make([]float64, n)
	for i := 0; i < n; i++ {
		b := m.MultiplyVector([3]float64{res.X[i], res.Y[i], res.Z[i]})
		t := m.MultiplyVector([3]float64{
			res.X[i] + res.U[i]*arrowLength3D,
			res.Y[i] + res.V[i]*arrowLength3D,
			res.Z[i] + res.W[i]*arrowLength3D,
		})
		px[i], py[i] = b[0], b[2]
		du[i], dv[i] = t[0]-b[0], t[2]-b[2]
	}

	p := plot.New()
	p.Title.Text = plotTitle(res)
	p.HideAxes()
	p.Add(newSegmentSet(cubeEdges(m, res)))
	labels, err := axisLabels3D(m, res)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	p.Add(newArrowField(px, py, du, dv, 1))

	xmin, xmax, ymin, ymax := projectedBounds(m, res)
	margin := 0.12 * math.Max(xmax-xmin, ymax-ymin)
	p.X.Min, p.X.Max = xmin-margin, xmax+margin
	p.Y.Min, p.Y.Max = ymin-margin, ymax+margin
	return p, nil
}

// unitArrowScale picks the drawn length of a unit arrow: most of one grid
// cell for planar plots, a fixed world length for volumetric ones
func unitArrowScale(res *field.Result) float64 {
	if res.Is3D() {
		return arrowLength3D
	}
	side := math.Sqrt(float64(res.Len()))
	if side < 2 {
		return 1
	}
	spanX := res.XRange[1] - res.XRange[0]
	spanY := res.YRange[1] - res.YRange[0]
	return 0.9 * math.Min(spanX, spanY) / (side - 1)
}

// cubeCorners enumerates the domain box; bit k of the index selects min or
// max along coordinate k
func cubeCorners(res *field.Result) [8][3]float64 {
	var corners [8][3]float64
	for i := range corners {
		corners[i] = [3]float64{
			res.XRange[i&1],
			res.YRange[(i>>1)&1],
			res.ZRange[(i>>2)&1],
		}
	}
	return corners
}

func cubeEdges(m Matrix3x3, res *field.Result) [][4]float64 {
	corners := cubeCorners(res)
	segs := make([][4]float64, 0, 12)
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if i&bit != 0 {
				continue
			}
			a := m.MultiplyVector(corners[i])
			b := m.MultiplyVector(corners[i|bit])
			segs = append(segs, [4]float64{a[0], a[2], b[0], b[2]})
		}
	}
	return segs
}

func projectedBounds(m Matrix3x3, res *field.Result) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, c := range cubeCorners(res) {
		p := m.MultiplyVector(c)
		xmin = math.Min(xmin, p[0])
		xmax = math.Max(xmax, p[0])
		ymin = math.Min(ymin, p[2])
		ymax = math.Max(ymax, p[2])
	}
	return xmin, xmax, ymin, ymax
}

// axisLabels3D places the axis names just past the box corners the three
// axes emanate from
func axisLabels3D(m Matrix3x3, res *field.Result) (*plotter.Labels, error) {
	const pad = 1.5
	ends := [3][3]float64{
		{res.XRange[1] + pad, res.YRange[0], res.ZRange[0]},
		{res.XRange[0], res.YRange[1] + pad, res.ZRange[0]},
		{res.XRange[0], res.YRange[0], res.ZRange[1] + pad},
	}

	xyl := plotter.XYLabels{Labels: []string{res.XLabel, res.YLabel, res.ZLabel}}
	for _, e := range ends {
		p := m.MultiplyVector(e)
		xyl.XYs = append(xyl.XYs, plotter.XY{X: p[0], Y: p[2]})
	}
	return plotter.NewLabels(xyl)
}
