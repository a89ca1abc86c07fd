package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/liserjrqlxue/anno/pkg/anno"
)

// image size
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

var ErrNoData = errors.New("pie: no positive values")

// Pie implements plot.Plotter, one wedge per value, counterclockwise from StartAngle
type Pie struct {
	Values []float64
	Colors []color.Color
	// radians, 0 is 3 o'clock
	StartAngle float64
	// fraction of the canvas width given to the pie, the rest is left for the legend
	Share float64
}

// NewPie values must be non-negative with a positive sum
func NewPie(values []float64) (*Pie, error) {
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("pie: invalid value %v", v)
		}
	}
	if floats.Sum(values) <= 0 {
		return nil, ErrNoData
	}
	var colors = make([]color.Color, len(values))
	for i := range colors {
		colors[i] = plotutil.Color(i)
	}
	return &Pie{
		Values:     values,
		Colors:     colors,
		StartAngle: math.Pi / 2,
		Share:      0.6,
	}, nil
}

// Plot implements plot.Plotter
func (p *Pie) Plot(c draw.Canvas, _ *plot.Plot) {
	var (
		total  = floats.Sum(p.Values)
		width  = (c.Max.X - c.Min.X) * vg.Length(p.Share)
		height = c.Max.Y - c.Min.Y
		radius = 0.95 * min(width, height) / 2
		center = vg.Point{X: c.Min.X + width/2, Y: c.Min.Y + height/2}
		angle  = p.StartAngle
	)
	for i, v := range p.Values {
		if v == 0 {
			continue
		}
		var sweep = 2 * math.Pi * v / total
		var path vg.Path
		path.Move(center)
		path.Line(vg.Point{
			X: center.X + radius*vg.Length(math.Cos(angle)),
			Y: center.Y + radius*vg.Length(math.Sin(angle)),
		})
		path.Arc(center, radius, angle, sweep)
		path.Close()
		c.SetColor(p.Colors[i%len(p.Colors)])
		c.Fill(path)
		angle += sweep
	}
}

// Thumbnail legend entry of wedge i
func (p *Pie) Thumbnail(i int) plot.Thumbnailer {
	return wedgeThumb{p.Colors[i%len(p.Colors)]}
}

type wedgeThumb struct {
	color.Color
}

func (t wedgeThumb) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(t.Color, []vg.Point{
		c.Min,
		{X: c.Min.X, Y: c.Max.Y},
		c.Max,
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// Label legend text, value (xx.x%)
func Label(s anno.Slice) string {
	return fmt.Sprintf("%s (%.1f%%)", s.Value, s.Percent)
}

// NewPiePlot titled pie with a percentage legend
func NewPiePlot(title string, slices []anno.Slice) (*plot.Plot, error) {
	var values = make([]float64, len(slices))
	for i, s := range slices {
		values[i] = float64(s.Count)
	}
	pie, err := NewPie(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}

	var p = plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(pie)
	for i, s := range slices {
		p.Legend.Add(Label(s), pie.Thumbnail(i))
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(9)
	return p, nil
}

// SavePie format follows the extension of path: png, jpg, svg, pdf, eps, tif
func SavePie(path, title string, slices []anno.Slice) error {
	p, err := NewPiePlot(title, slices)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, path)
}
