package linear_model

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/perceptron/pkg/log"
)

// Option configures a Perceptron.
type Option func(*Perceptron)

// WithIterations sets the iteration count used by Train. Train performs
// iterations-1 steps.
func WithIterations(n int) Option {
	return func(p *Perceptron) {
		p.iterations = n
	}
}

// WithLearningRate sets the step size η applied on every correction.
func WithLearningRate(eta float64) Option {
	return func(p *Perceptron) {
		p.learningRate = eta
	}
}

// WithReportEvery sets how many steps pass between reporter calls.
func WithReportEvery(n int) Option {
	return func(p *Perceptron) {
		p.reportEvery = n
	}
}

// WithReporter sets the progress hook. Without one, training reports nothing.
func WithReporter(r Reporter) Option {
	return func(p *Perceptron) {
		p.reporter = r
	}
}

// WithRand sets the random source used for sampling. It takes precedence over
// WithRandomState.
func WithRand(r *rand.Rand) Option {
	return func(p *Perceptron) {
		p.rng = r
	}
}

// WithRandomState seeds the sampling source so runs are reproducible.
func WithRandomState(seed uint64) Option {
	return func(p *Perceptron) {
		p.seed = &seed
	}
}

// WithLogger sets the logger. The default is log.GetLogger().
func WithLogger(l log.Logger) Option {
	return func(p *Perceptron) {
		p.logger = l
	}
}
