// Package model defines the interfaces and shared state embedded by the classifiers.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict returns one label per input row.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is implemented by models that can evaluate themselves on labeled data.
type Scorer interface {
	// Score returns the mean accuracy of Predict(X) against y.
	Score(X, y mat.Matrix) (float64, error)
}

// Trainer は逐次学習するモデルのインターフェース
// 呼び出すたびに同じパラメータを更新し続ける
type Trainer interface {
	Train() error
	IsTrained() bool
}

// Classifier combines interfaces for online binary classifiers.
type Classifier interface {
	Trainer
	Predictor
	Scorer
}
