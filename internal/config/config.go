// Package config holds the settings of the perceptron command.
package config

import (
	"io"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/YuminosukeSato/perceptron/datasets"
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
)

// Config defines the command's configuration.
type Config struct {
	Seed         uint64  `toml:"seed"`
	Points       int     `toml:"points"` // per class
	Iterations   int     `toml:"iterations"`
	LearningRate float64 `toml:"learning_rate"`
	ReportEvery  int     `toml:"report_every"`
	LogLevel     string  `toml:"log_level"`
	LogFormat    string  `toml:"log_format"`

	Boundary BoundaryConfig     `toml:"boundary"`
	ClassA   datasets.Cloud `toml:"class_a"`
	ClassB   datasets.Cloud `toml:"class_b"`
	Plot     PlotConfig         `toml:"plot"`
}

// BoundaryConfig is the starting line a·x + b·y + c = 0.
type BoundaryConfig struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
	C float64 `toml:"c"`
}

// PlotConfig controls the before/after renderings. An empty path disables
// that rendering. Sizes are in inches.
type PlotConfig struct {
	Before string  `toml:"before"`
	After  string  `toml:"after"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	XMin   float64 `toml:"x_min"`
	XMax   float64 `toml:"x_max"`
	YMin   float64 `toml:"y_min"`
	YMax   float64 `toml:"y_max"`
}

// Default returns the demo setup: 50 points per class, the line
// 2x + 3y - 6 = 0, 1500 iterations at learning rate 0.01.
func Default() *Config {
	return &Config{
		Seed:         1,
		Points:       50,
		Iterations:   1500,
		LearningRate: 0.01,
		ReportEvery:  10,
		LogLevel:     "info",
		LogFormat:    log.FormatConsole,
		Boundary:     BoundaryConfig{A: 2, B: 3, C: -6},
		ClassA:       datasets.DefaultClassA,
		ClassB:       datasets.DefaultClassB,
		Plot: PlotConfig{
			Width:  6,
			Height: 6,
			XMin:   -4,
			XMax:   8,
			YMin:   -8,
			YMax:   16,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default; unknown keys are an error. An empty name returns Default().
func Load(name string) (*Config, error) {
	c := Default()
	if name == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(name, c)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("load config %s: unknown key %q", name, undecoded[0].String())
	}
	return c, nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "write config")
}

// Overwrite overwrites the appropriate values in the config with the given
// ones. Values only overwrite if they are not Go's zero value.
func (c *Config) Overwrite(seed uint64, points, iterations int, learningRate float64, before, after, logLevel string) {
	if seed != 0 {
		c.Seed = seed
	}
	if points != 0 {
		c.Points = points
	}
	if iterations != 0 {
		c.Iterations = iterations
	}
	if learningRate != 0 {
		c.LearningRate = learningRate
	}
	if before != "" {
		c.Plot.Before = before
	}
	if after != "" {
		c.Plot.After = after
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// Validate checks every setting that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Points < 0 {
		return errors.NewValidationError("points", "must be non-negative", c.Points)
	}
	if c.Iterations < 0 {
		return errors.NewValidationError("iterations", "must be non-negative", c.Iterations)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be a positive finite number", c.LearningRate)
	}
	if c.ReportEvery < 1 {
		return errors.NewValidationError("report_every", "must be at least 1", c.ReportEvery)
	}
	if _, err := log.ToLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != log.FormatJSON && c.LogFormat != log.FormatConsole {
		return errors.NewValidationError("log_format", "must be json or console", c.LogFormat)
	}
	if !c.StartBoundary().IsFinite() {
		return errors.NewValidationError("boundary", "coefficients must be finite", c.StartBoundary().Coefficients())
	}
	if err := c.ClassA.Validate(); err != nil {
		return errors.Wrap(err, "class_a")
	}
	if err := c.ClassB.Validate(); err != nil {
		return errors.Wrap(err, "class_b")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return errors.NewValidationError("plot.size", "width and height must be positive", []float64{c.Plot.Width, c.Plot.Height})
	}
	if c.Plot.XMin >= c.Plot.XMax || c.Plot.YMin >= c.Plot.YMax {
		return errors.NewValidationError("plot.range", "min must be below max",
			[]float64{c.Plot.XMin, c.Plot.XMax, c.Plot.YMin, c.Plot.YMax})
	}
	return nil
}

// StartBoundary returns the configured starting line.
func (c *Config) StartBoundary() linear_model.Boundary {
	return linear_model.NewBoundary(c.Boundary.A, c.Boundary.B, c.Boundary.C)
}

// PerceptronOptions translates the training settings into perceptron options.
func (c *Config) PerceptronOptions() []linear_model.Option {
	return []linear_model.Option{
		linear_model.WithIterations(c.Iterations),
		linear_model.WithLearningRate(c.LearningRate),
		linear_model.WithReportEvery(c.ReportEvery),
		linear_model.WithRandomState(c.Seed),
	}
}
