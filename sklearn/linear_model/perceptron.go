package linear_model

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/perceptron/core/model"
	"github.com/YuminosukeSato/perceptron/core/parallel"
	"github.com/YuminosukeSato/perceptron/metrics"
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultIterations   = 1500
	defaultLearningRate = 0.01
	defaultReportEvery  = 10

	// rows above which Predict fans out over goroutines
	predictParallelThreshold = 1000
)

// Perceptron is a single-layer perceptron that learns a Boundary between two
// fixed point collections by stochastic, one-point-at-a-time corrections.
//
// A Perceptron owns its Boundary and is the only thing that mutates it. It is
// not safe for concurrent use: Train, the reporter it calls and all readers
// must run on one goroutine.
type Perceptron struct {
	model.BaseEstimator

	boundary Boundary
	classA   []Point
	classB   []Point

	// hyperparameters
	iterations   int
	learningRate float64
	reportEvery  int

	reporter Reporter
	rng      *rand.Rand
	seed     *uint64
	logger   log.Logger
}

// NewPerceptron returns a Perceptron starting from boundary and sampling from
// the given collections. The point slices are copied and never modified.
//
// Empty collections are accepted here; sampling from one fails with an
// *errors.EmptyClassError.
func NewPerceptron(boundary Boundary, classA, classB []Point, opts ...Option) (*Perceptron, error) {
	p := &Perceptron{
		boundary:     boundary,
		classA:       append([]Point(nil), classA...),
		classB:       append([]Point(nil), classB...),
		iterations:   defaultIterations,
		learningRate: defaultLearningRate,
		reportEvery:  defaultReportEvery,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	if p.rng == nil {
		seed := uint64(time.Now().UnixNano())
		if p.seed != nil {
			seed = *p.seed
		}
		p.rng = rand.New(rand.NewPCG(seed, seed))
	}
	if p.logger == nil {
		p.logger = log.GetLogger()
	}
	p.logger = p.logger.With(log.ModelNameKey, "Perceptron")

	if p.boundary.IsDegenerate() {
		errors.Warn(errors.NewDegenerateBoundaryWarning("construction", p.boundary.C))
	}

	return p, nil
}

func (p *Perceptron) validate() error {
	if !p.boundary.IsFinite() {
		return errors.NewValidationError("boundary", "coefficients must be finite", p.boundary.Coefficients())
	}
	if err := checkParams(p.iterations, p.learningRate); err != nil {
		return err
	}
	if p.reportEvery < 1 {
		return errors.NewValidationError("report_every", "must be at least 1", p.reportEvery)
	}
	for _, class := range Classes {
		for i, pt := range p.points(class) {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				return errors.NewValidationError(class.String(), "coordinates must be finite", i)
			}
		}
	}
	return nil
}

func checkParams(iterations int, learningRate float64) error {
	if iterations < 0 {
		return errors.NewValidationError("iterations", "must be non-negative", iterations)
	}
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) || learningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be a positive finite number", learningRate)
	}
	return nil
}

// Boundary returns a copy of the current boundary.
func (p *Perceptron) Boundary() Boundary {
	return p.boundary
}

// Points returns a copy of the collection for class.
func (p *Perceptron) Points(class Class) []Point {
	return append([]Point(nil), p.points(class)...)
}

func (p *Perceptron) points(class Class) []Point {
	switch class {
	case ClassA:
		return p.classA
	case ClassB:
		return p.classB
	default:
		return nil
	}
}

// Iterations returns the iteration count used by Train.
func (p *Perceptron) Iterations() int { return p.iterations }

// LearningRate returns the step size used by Train.
func (p *Perceptron) LearningRate() float64 { return p.learningRate }

// Classify places pt against the current boundary.
func (p *Perceptron) Classify(pt Point) Area {
	return Classify(pt, p.boundary)
}

// IsInArea reports whether pt currently lies in target. A point exactly on the
// boundary is in neither AreaA nor AreaB.
func (p *Perceptron) IsInArea(pt Point, target Area) bool {
	if target == OnBoundary {
		return false
	}
	return p.Classify(pt) == target
}

// SampleRandomPoint picks ClassA or ClassB with equal probability, then a point
// uniformly from that class's collection, and returns it labeled with the class.
func (p *Perceptron) SampleRandomPoint() (LabeledPoint, error) {
	class := Classes[p.rng.IntN(len(Classes))]
	pts := p.points(class)
	if len(pts) == 0 {
		return LabeledPoint{}, errors.NewEmptyClassError("SampleRandomPoint", class.String())
	}
	pt := pts[p.rng.IntN(len(pts))]
	return LabeledPoint{Point: pt, Label: class}, nil
}

// update applies the perceptron rule for one labeled point and reports whether
// the boundary moved. A ClassB point in AreaA pulls the coefficients by
// -η·(x, y, 1); a ClassA point in AreaB pushes them by +η·(x, y, 1).
func (p *Perceptron) update(pt LabeledPoint, learningRate float64) bool {
	var sign float64
	switch {
	case pt.Label == ClassB && p.IsInArea(pt.Point, AreaA):
		sign = -1
	case pt.Label == ClassA && p.IsInArea(pt.Point, AreaB):
		sign = 1
	default:
		return false
	}
	p.boundary.A += sign * learningRate * pt.X
	p.boundary.B += sign * learningRate * pt.Y
	p.boundary.C += sign * learningRate
	return true
}

// Train runs TrainN with the configured iteration count and learning rate.
func (p *Perceptron) Train() error {
	return p.TrainN(p.iterations, p.learningRate)
}

// TrainN runs steps 1 through iterations-1, so iterations-1 points are drawn in
// total and iterations <= 1 draws none. Each step samples a point and applies
// the perceptron rule. When a reporter is set it is called after every step
// whose index is a multiple of the report interval.
//
// Calls accumulate: every call continues from the boundary left by the last.
// Training stops early only on error: an empty sampled class, non-finite
// coefficients, or a panicking reporter.
func (p *Perceptron) TrainN(iterations int, learningRate float64) (err error) {
	defer errors.Recover(&err, "Perceptron.Train")

	if err := checkParams(iterations, learningRate); err != nil {
		return err
	}

	p.MarkTrained()
	start := time.Now()
	updates := 0

	p.logger.Debug("training started",
		log.OperationKey, log.OperationTrain,
		log.IterationsKey, iterations,
		log.LearningRateKey, learningRate,
		log.SamplesKey, p.TotalPointCount(),
	)

	// step indices start at 1; index 0 is never run
	for i := 1; i < iterations; i++ {
		pt, err := p.SampleRandomPoint()
		if err != nil {
			p.logger.Error("sampling failed", err, log.IterationKey, i, log.ErrorCodeKey, log.ErrorEmptyClass)
			return errors.Wrapf(err, "training step %d", i)
		}

		updated := p.update(pt, learningRate)
		p.RecordStep(updated)
		if updated {
			updates++
			if err := errors.CheckNumericalStability("Perceptron.Train", p.boundary.Coefficients(), i); err != nil {
				p.logger.Error("boundary diverged", err, log.IterationKey, i, log.ErrorCodeKey, log.ErrorNumerical)
				return err
			}
		}

		if p.reporter != nil && i%p.reportEvery == 0 {
			p.reporter.Report(i, p.IncorrectPointCount(), p.TotalPointCount())
		}
	}

	if p.boundary.IsDegenerate() {
		errors.Warn(errors.NewDegenerateBoundaryWarning("training", p.boundary.C))
	}

	p.logger.Debug("training finished",
		log.OperationKey, log.OperationTrain,
		log.UpdatesKey, updates,
		log.BoundaryAKey, p.boundary.A,
		log.BoundaryBKey, p.boundary.B,
		log.BoundaryCKey, p.boundary.C,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// IncorrectPointCount counts ClassA points lying in AreaB plus ClassB points
// lying in AreaA. Points on the boundary are not counted. The count is
// recomputed on every call.
func (p *Perceptron) IncorrectPointCount() int {
	incorrect := 0
	for _, pt := range p.classA {
		if p.IsInArea(pt, AreaB) {
			incorrect++
		}
	}
	for _, pt := range p.classB {
		if p.IsInArea(pt, AreaA) {
			incorrect++
		}
	}
	return incorrect
}

// TotalPointCount is the number of points in both collections.
func (p *Perceptron) TotalPointCount() int {
	return len(p.classA) + len(p.classB)
}

// TrainingData returns both collections as an n×2 feature matrix and an n×1
// label column (+1 ClassA, -1 ClassB), ClassA rows first.
func (p *Perceptron) TrainingData() (*mat.Dense, *mat.Dense, error) {
	n := p.TotalPointCount()
	if n == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "Perceptron.TrainingData")
	}
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	row := 0
	for _, class := range Classes {
		for _, pt := range p.points(class) {
			X.Set(row, 0, pt.X)
			X.Set(row, 1, pt.Y)
			y.Set(row, 0, class.Label())
			row++
		}
	}
	return X, y, nil
}

// Predict classifies every row (x, y) of X against the current boundary and
// returns an n×1 column of Area labels: +1 AreaA, -1 AreaB, 0 OnBoundary.
func (p *Perceptron) Predict(X mat.Matrix) (mat.Matrix, error) {
	if X == nil {
		return nil, errors.NewValueError("Perceptron.Predict", "empty matrix")
	}
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.NewValueError("Perceptron.Predict", "empty matrix")
	}
	if cols != 2 {
		return nil, errors.NewDimensionError("Perceptron.Predict", 2, cols, 1)
	}
	if err := errors.CheckMatrix("Perceptron.Predict", X, rows, cols); err != nil {
		return nil, err
	}

	boundary := p.boundary
	predictions := mat.NewDense(rows, 1, nil)
	parallel.ParallelizeWithThreshold(rows, predictParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			area := Classify(Point{X: X.At(i, 0), Y: X.At(i, 1)}, boundary)
			predictions.Set(i, 0, area.Label())
		}
	})
	return predictions, nil
}

// Score returns the share of rows of X whose predicted label equals y.
// Points on the boundary predict 0 and therefore never count as correct.
func (p *Perceptron) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	rows, _ := X.Dims()
	if y == nil {
		return 0, errors.NewValueError("Perceptron.Score", "empty labels")
	}
	if yRows, _ := y.Dims(); yRows != rows {
		return 0, errors.NewDimensionError("Perceptron.Score", rows, yRows, 0)
	}
	score, err := metrics.AccuracyMatrix(y, predictions)
	if err != nil {
		return 0, err
	}
	p.logger.Debug("scored", log.OperationKey, log.OperationScore, log.SamplesKey, rows, log.AccuracyKey, score)
	return score, nil
}

var _ model.Classifier = (*Perceptron)(nil)
