// Package plot draws the two training clouds and the current decision
// boundary with gonum/plot.
package plot

import (
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
)

// Default view, wide enough for the default clouds.
const (
	DefaultXMin = -4.0
	DefaultXMax = 8.0
	DefaultYMin = -8.0
	DefaultYMax = 16.0

	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	colorA    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	colorB    = color.RGBA{R: 40, G: 70, B: 220, A: 255}
	colorAxis = color.Gray{Y: 0}
	colorLine = color.RGBA{R: 30, G: 140, B: 60, A: 255}
)

// Scene is everything one frame shows.
type Scene struct {
	Title    string
	Boundary linear_model.Boundary
	ClassA   []linear_model.Point
	ClassB   []linear_model.Point

	XMin, XMax float64
	YMin, YMax float64

	Width, Height vg.Length
}

// NewScene captures the current state of p in the default view.
func NewScene(title string, p *linear_model.Perceptron) Scene {
	return Scene{
		Title:    title,
		Boundary: p.Boundary(),
		ClassA:   p.Points(linear_model.ClassA),
		ClassB:   p.Points(linear_model.ClassB),
		XMin:     DefaultXMin,
		XMax:     DefaultXMax,
		YMin:     DefaultYMin,
		YMax:     DefaultYMax,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
	}
}

// Validate rejects empty or inverted view ranges and non-positive canvas sizes.
func (s Scene) Validate() error {
	for _, v := range []float64{s.XMin, s.XMax, s.YMin, s.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.NewValidationError("view", "limits must be finite", v)
		}
	}
	if s.XMin >= s.XMax {
		return errors.NewValidationError("x_range", "min must be below max", []float64{s.XMin, s.XMax})
	}
	if s.YMin >= s.YMax {
		return errors.NewValidationError("y_range", "min must be below max", []float64{s.YMin, s.YMax})
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.NewValidationError("size", "width and height must be positive", []vg.Length{s.Width, s.Height})
	}
	return nil
}

// Build assembles the plot for s. The boundary is left out, with a
// VerticalBoundaryWarning, when it cannot be written as y = f(x).
func Build(s Scene) (*gonumplot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := gonumplot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = s.XMin, s.XMax
	p.Y.Min, p.Y.Max = s.YMin, s.YMax

	// axis lines through the origin
	xAxis, err := plotter.NewLine(plotter.XYs{{X: s.XMin, Y: 0}, {X: s.XMax, Y: 0}})
	if err != nil {
		return nil, errors.Wrap(err, "x axis")
	}
	yAxis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: s.YMin}, {X: 0, Y: s.YMax}})
	if err != nil {
		return nil, errors.Wrap(err, "y axis")
	}
	for _, l := range []*plotter.Line{xAxis, yAxis} {
		l.LineStyle.Color = colorAxis
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
	}

	for _, cloud := range []struct {
		name   string
		points []linear_model.Point
		color  color.Color
	}{
		{linear_model.ClassA.String(), s.ClassA, colorA},
		{linear_model.ClassB.String(), s.ClassB, colorB},
	} {
		if len(cloud.points) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(toXYs(cloud.points))
		if err != nil {
			return nil, errors.Wrapf(err, "%s scatter", cloud.name)
		}
		sc.GlyphStyle.Color = cloud.color
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(cloud.name, sc)
	}

	if line := boundaryFunction(s); line != nil {
		p.Add(line)
		p.Legend.Add(s.Boundary.String(), line)
	}

	return p, nil
}

// Render writes s to w in format ("png", "svg", "pdf", ...).
func Render(w io.Writer, s Scene, format string) error {
	p, err := Build(s)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(s.Width, s.Height, format)
	if err != nil {
		return errors.Wrapf(err, "render %s", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write plot")
	}
	return nil
}

// Save renders s to path. The format follows the file extension.
func Save(path string, s Scene) error {
	logger := log.GetLogger()
	return errors.SafeExecute("plot.Save", func() error {
		p, err := Build(s)
		if err != nil {
			return err
		}
		if err := p.Save(s.Width, s.Height, path); err != nil {
			logger.Error("saving plot failed", err, log.OutputPathKey, path)
			return errors.Wrapf(err, "save %s", path)
		}
		logger.Debug("plot saved",
			log.OperationKey, log.OperationRender,
			log.PhaseKey, log.PhaseRendering,
			log.OutputPathKey, path,
			"format", strings.TrimPrefix(filepath.Ext(path), "."),
		)
		return nil
	})
}

// boundaryFunction returns the dashed boundary line over the view, or nil with
// a VerticalBoundaryWarning when B is zero.
func boundaryFunction(s Scene) *plotter.Function {
	b := s.Boundary
	if b.B == 0 {
		errors.Warn(errors.NewVerticalBoundaryWarning(b.A, b.C))
		return nil
	}
	line := plotter.NewFunction(func(x float64) float64 {
		y, _ := b.YAt(x)
		return y
	})
	line.XMin, line.XMax = s.XMin, s.XMax
	line.Samples = 2
	line.LineStyle.Color = colorLine
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	return line
}

func toXYs(points []linear_model.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}
