package main

import (
	"os"

	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:          "perceptron",
	Short:        "Train a two-class perceptron on generated point clouds",
	SilenceUsage: true,
}

func init() {
	root.AddCommand(
		trainCMD,
		configCMD,
		versionCMD,
	)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
