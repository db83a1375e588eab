package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/perceptron/internal/config"
)

var configCMD = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		return c.Write(cmd.OutOrStdout())
	},
}

var flags = struct {
	config                  string
	seed                    uint64
	points, iterations      int
	learningRate            float64
	before, after, logLevel string
}{}

func init() {
	for _, cmd := range []*cobra.Command{trainCMD, configCMD} {
		cmd.Flags().StringVarP(&flags.config, "config", "c", "",
			"set the path to the TOML configuration file")
		cmd.Flags().Uint64VarP(&flags.seed, "seed", "s", 0,
			"set the random seed (overwrites the setting in the configuration file)")
		cmd.Flags().IntVarP(&flags.points, "points", "n", 0,
			"set the number of points per class (overwrites the setting in the configuration file)")
		cmd.Flags().IntVarP(&flags.iterations, "iterations", "i", 0,
			"set the number of training iterations (overwrites the setting in the configuration file)")
		cmd.Flags().Float64VarP(&flags.learningRate, "learning-rate", "r", 0,
			"set the learning rate (overwrites the setting in the configuration file)")
		cmd.Flags().StringVar(&flags.before, "before", "",
			"write a plot of the untrained boundary to this file")
		cmd.Flags().StringVar(&flags.after, "after", "",
			"write a plot of the trained boundary to this file")
		cmd.Flags().StringVar(&flags.logLevel, "log-level", "",
			"set the log level: debug, info, warn or error")
	}
}

// loadConfig reads the configuration file and applies the command line flags.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	c.Overwrite(flags.seed, flags.points, flags.iterations, flags.learningRate,
		flags.before, flags.after, flags.logLevel)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
