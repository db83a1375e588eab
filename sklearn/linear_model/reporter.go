package linear_model

import (
	"github.com/YuminosukeSato/perceptron/metrics"
	"github.com/YuminosukeSato/perceptron/pkg/log"
)

// Reporter observes training progress. Report runs synchronously inside
// Train and must not mutate the Perceptron.
type Reporter interface {
	Report(step, incorrect, total int)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(step, incorrect, total int)

// Report calls f(step, incorrect, total).
func (f ReporterFunc) Report(step, incorrect, total int) {
	f(step, incorrect, total)
}

// LogReporter writes each report as an info record.
type LogReporter struct {
	logger log.Logger
}

// NewLogReporter returns a Reporter logging to logger.
func NewLogReporter(logger log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs the misclassified count, the total and their percentage.
func (r *LogReporter) Report(step, incorrect, total int) {
	r.logger.Info("incorrect points",
		log.IterationKey, step,
		log.IncorrectKey, incorrect,
		log.TotalKey, total,
		log.ErrorRateKey, metrics.ErrorRate(incorrect, total),
	)
}
