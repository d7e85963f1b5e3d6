package render

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// headAngle is the opening between an arrow shaft and each head barb
const headAngle = 25 * math.Pi / 180

var (
	arrowColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	boxColor   = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

// arrowField draws one arrow per sample: base at (x[i], y[i]), shaft along
// (u[i], v[i]) stretched by scale in data units, with two head barbs sized in
// screen space. It implements plot.Plotter and plot.DataRanger.
type arrowField struct {
	x, y  []float64
	u, v  []float64
	scale float64
	style draw.LineStyle
}

// newArrowField builds the quiver plotter; scale is the data-space length
// drawn for a unit vector
func newArrowField(x, y, u, v []float64, scale float64) *arrowField {
	return &arrowField{
		x: x, y: y, u: u, v: v,
		scale: scale,
		style: draw.LineStyle{Color: arrowColor, Width: vg.Points(1)},
	}
}

// Plot implements plot.Plotter
func (a *arrowField) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i := range a.x {
		x0, y0 := trX(a.x[i]), trY(a.y[i])
		x1, y1 := trX(a.x[i]+a.u[i]*a.scale), trY(a.y[i]+a.v[i]*a.scale)
		c.StrokeLine2(a.style, x0, y0, x1, y1)
		a.strokeHead(c, x0, y0, x1, y1)
	}
}

func (a *arrowField) strokeHead(c draw.Canvas, x0, y0, x1, y1 vg.Length) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	shaft := math.Hypot(dx, dy)
	if shaft == 0 {
		return
	}
	head := 0.35 * shaft
	if limit := float64(vg.Points(5)); head > limit {
		head = limit
	}
	back := math.Atan2(dy, dx) + math.Pi
	for _, side := range []float64{headAngle, -headAngle} {
		hx := x1 + vg.Length(head*math.Cos(back+side))
		hy := y1 + vg.Length(head*math.Sin(back+side))
		c.StrokeLine2(a.style, x1, y1, hx, hy)
	}
}

// DataRange implements plot.DataRanger over the arrow base points
func (a *arrowField) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(a.x) == 0 {
		return 0, 1, 0, 1
	}
	return floats.Min(a.x), floats.Max(a.x), floats.Min(a.y), floats.Max(a.y)
}

// segmentSet draws plain line segments in data coordinates; the volumetric
// plot uses it for bounding-box edges
type segmentSet struct {
	segs  [][4]float64 // x0, y0, x1, y1
	style draw.LineStyle
}

func newSegmentSet(segs [][4]float64) *segmentSet {
	return &segmentSet{
		segs:  segs,
		style: draw.LineStyle{Color: boxColor, Width: vg.Points(0.5)},
	}
}

// Plot implements plot.Plotter
func (s *segmentSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, sg := range s.segs {
		c.StrokeLine2(s.style, trX(sg[0]), trY(sg[1]), trX(sg[2]), trY(sg[3]))
	}
}

// DataRange implements plot.DataRanger over the segment endpoints
func (s *segmentSet) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(s.segs) == 0 {
		return 0, 1, 0, 1
	}
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, sg := range s.segs {
		xmin = math.Min(xmin, math.Min(sg[0], sg[2]))
		xmax = math.Max(xmax, math.Max(sg[0], sg[2]))
		ymin = math.Min(ymin, math.Min(sg[1], sg[3]))
		ymax = math.Max(ymax, math.Max(sg[1], sg[3]))
	}
	return xmin, xmax, ymin, ymax
}
