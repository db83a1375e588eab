// Package datasets generates labeled point clouds for perceptron training.
package datasets

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
)

// Cloud describes a Gaussian cloud around a line:
//
//	x ~ N(XMean, XStd²)
//	y = Slope·x + Intercept + N(0, YStd²)
type Cloud struct {
	XMean     float64 `toml:"x_mean"`
	XStd      float64 `toml:"x_std"`
	Slope     float64 `toml:"slope"`
	Intercept float64 `toml:"intercept"`
	YStd      float64 `toml:"y_std"`
}

// Default clouds: a shallow band around y = 6 for ClassA and a steep band
// through the origin for ClassB. The two overlap near x = 1.
var (
	DefaultClassA = Cloud{XMean: 1, XStd: 1, Slope: 0.2, Intercept: 6, YStd: 1.6}
	DefaultClassB = Cloud{XMean: 0.5, XStd: 1, Slope: 3.2, Intercept: 0, YStd: 1.6}
)

// Validate checks that the spread values are non-negative and every field is finite.
func (s Cloud) Validate() error {
	for name, v := range map[string]float64{
		"x_mean": s.XMean, "x_std": s.XStd, "slope": s.Slope,
		"intercept": s.Intercept, "y_std": s.YStd,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.NewValidationError(name, "must be finite", v)
		}
	}
	if s.XStd < 0 {
		return errors.NewValidationError("x_std", "must be non-negative", s.XStd)
	}
	if s.YStd < 0 {
		return errors.NewValidationError("y_std", "must be non-negative", s.YStd)
	}
	return nil
}

// MakeCloud draws n points from cloud using src.
func MakeCloud(cloud Cloud, n int, src rand.Source) ([]linear_model.Point, error) {
	if n < 0 {
		return nil, errors.NewValidationError("n_points", "must be non-negative", n)
	}
	if err := cloud.Validate(); err != nil {
		return nil, err
	}

	xs := distuv.Normal{Mu: cloud.XMean, Sigma: cloud.XStd, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: cloud.YStd, Src: src}

	points := make([]linear_model.Point, n)
	for i := range points {
		x := xs.Rand()
		points[i] = linear_model.Point{X: x, Y: cloud.Slope*x + cloud.Intercept + noise.Rand()}
	}
	return points, nil
}

// MakeClouds draws n points for each class from a single source seeded with seed.
// The same seed always yields the same clouds.
func MakeClouds(a, b Cloud, n int, seed uint64) (classA, classB []linear_model.Point, err error) {
	src := rand.NewPCG(seed, seed)
	if classA, err = MakeCloud(a, n, src); err != nil {
		return nil, nil, errors.Wrap(err, "class A cloud")
	}
	if classB, err = MakeCloud(b, n, src); err != nil {
		return nil, nil, errors.Wrap(err, "class B cloud")
	}
	return classA, classB, nil
}

// Centroid returns the mean of points. It fails on an empty slice.
func Centroid(points []linear_model.Point) (linear_model.Point, error) {
	if len(points) == 0 {
		return linear_model.Point{}, errors.Wrap(errors.ErrEmptyData, "Centroid")
	}
	xs, ys := Coordinates(points)
	n := float64(len(points))
	return linear_model.Point{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n}, nil
}

// Coordinates splits points into separate x and y slices.
func Coordinates(points []linear_model.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// Bounds returns the smallest and largest x and y over points.
func Bounds(points []linear_model.Point) (lo, hi linear_model.Point, err error) {
	if len(points) == 0 {
		return lo, hi, errors.Wrap(errors.ErrEmptyData, "Bounds")
	}
	xs, ys := Coordinates(points)
	lo = linear_model.Point{X: floats.Min(xs), Y: floats.Min(ys)}
	hi = linear_model.Point{X: floats.Max(xs), Y: floats.Max(ys)}
	return lo, hi, nil
}
