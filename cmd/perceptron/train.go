package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/perceptron/datasets"
	"github.com/YuminosukeSato/perceptron/internal/config"
	"github.com/YuminosukeSato/perceptron/metrics"
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"github.com/YuminosukeSato/perceptron/plot"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
)

var trainCMD = &cobra.Command{
	Use:   "train",
	Short: "Generate two point clouds and train a perceptron to separate them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		if err := log.SetupLogger(cmd.ErrOrStderr(), c.LogLevel, c.LogFormat); err != nil {
			return err
		}
		return train(c, cmd.OutOrStdout())
	},
}

// train runs one demo: generate, report, plot, train, report, plot.
func train(c *config.Config, out io.Writer) error {
	logger := log.GetLogger().With(log.ComponentKey, "train")

	classA, classB, err := datasets.MakeClouds(c.ClassA, c.ClassB, c.Points, c.Seed)
	if err != nil {
		return err
	}
	logger.Debug("point clouds generated",
		log.PhaseKey, log.PhaseGeneration,
		log.SamplesKey, len(classA)+len(classB),
		log.RandomSeedKey, c.Seed,
	)

	opts := append(c.PerceptronOptions(),
		linear_model.WithReporter(linear_model.NewLogReporter(logger)),
		linear_model.WithLogger(logger),
	)
	p, err := linear_model.NewPerceptron(c.StartBoundary(), classA, classB, opts...)
	if err != nil {
		return err
	}

	showError(out, p)
	if err := savePlot(c, c.Plot.Before, "before training", p); err != nil {
		return err
	}

	if err := p.Train(); err != nil {
		logger.Error("training failed", err)
		return err
	}

	showError(out, p)
	fmt.Fprintf(out, "Boundary: %s\n", p.Boundary())
	if err := savePlot(c, c.Plot.After, "after training", p); err != nil {
		return err
	}

	if p.TotalPointCount() > 0 {
		X, y, err := p.TrainingData()
		if err != nil {
			return err
		}
		score, err := p.Score(X, y)
		if err != nil {
			return err
		}
		logger.Info("training finished",
			log.IterationsKey, c.Iterations,
			log.UpdatesKey, p.Updates(),
			log.AccuracyKey, score,
			log.BoundaryAKey, p.Boundary().A,
			log.BoundaryBKey, p.Boundary().B,
			log.BoundaryCKey, p.Boundary().C,
		)
	}
	return nil
}

// showError prints the share of misclassified points.
func showError(out io.Writer, p *linear_model.Perceptron) {
	incorrect, total := p.IncorrectPointCount(), p.TotalPointCount()
	fmt.Fprintf(out, "Incorrect points: %d of %d (%.1f%%)\n", incorrect, total, metrics.ErrorRate(incorrect, total))
}

func savePlot(c *config.Config, path, title string, p *linear_model.Perceptron) error {
	if path == "" {
		return nil
	}
	scene := plot.NewScene(title, p)
	scene.XMin, scene.XMax = c.Plot.XMin, c.Plot.XMax
	scene.YMin, scene.YMax = c.Plot.YMin, c.Plot.YMax
	scene.Width = vg.Length(c.Plot.Width) * vg.Inch
	scene.Height = vg.Length(c.Plot.Height) * vg.Inch
	if err := plot.Save(path, scene); err != nil {
		return errors.Wrapf(err, "plot %s", title)
	}
	log.GetLogger().Info("plot written", log.OutputPathKey, path)
	return nil
}
