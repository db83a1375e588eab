// Package perceptron is a small online linear classifier for points in the
// plane, built on gonum.
//
// A Perceptron owns a decision line a·x + b·y + c = 0 and two fixed point
// collections, ClassA and ClassB. Training draws one labeled point at a time
// and nudges the line toward every misclassified point it sees. Progress can be
// observed through a Reporter hook, and the result can be rendered with the
// plot package.
//
// # Installation
//
//	go get github.com/YuminosukeSato/perceptron
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/perceptron/datasets"
//	    "github.com/YuminosukeSato/perceptron/sklearn/linear_model"
//	)
//
//	func main() {
//	    classA, classB, err := datasets.MakeClouds(datasets.DefaultClassA, datasets.DefaultClassB, 50, 42)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    p, err := linear_model.NewPerceptron(
//	        linear_model.NewBoundary(2, 3, -6),
//	        classA, classB,
//	        linear_model.WithRandomState(42),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := p.Train(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(p.Boundary(), p.IncorrectPointCount())
//	}
//
// # Packages
//
//   - sklearn/linear_model: Boundary, Class/Area and the Perceptron itself
//   - datasets: seeded Gaussian point clouds
//   - metrics: accuracy and error rates over label vectors
//   - plot: scatter plus boundary rendering via gonum/plot
//   - core/model: training-state bookkeeping and model interfaces
//   - core/parallel: row-parallel helpers for batch prediction
//   - pkg/errors, pkg/log: structured errors and zerolog-backed logging
//   - cmd/perceptron: the command line demo
//
// # Command Line
//
//	perceptron train --points 50 --iterations 1500 --after after.png
//	perceptron config --config perceptron.toml
//	perceptron version
package perceptron
