package model

// TrainingState は学習フェーズを表す
type TrainingState int

const (
	// Untrained は呼び出し側が与えた初期境界のままの状態
	Untrained TrainingState = iota
	// Trained は Train が一度以上呼ばれた状態
	Trained
)

// String returns the phase name.
func (s TrainingState) String() string {
	if s == Trained {
		return "trained"
	}
	return "untrained"
}

// BaseEstimator は学習フェーズと累積ステップ数を保持する
// 埋め込み先のモデルと同じくスレッドセーフではない
type BaseEstimator struct {
	state   TrainingState
	steps   int
	updates int
}

// IsTrained は Train が一度以上呼ばれたかどうかを返す
func (e *BaseEstimator) IsTrained() bool {
	return e.state == Trained
}

// State は現在のフェーズを返す
func (e *BaseEstimator) State() TrainingState {
	return e.state
}

// MarkTrained は学習済みに遷移する。遷移は一方向で戻らない
func (e *BaseEstimator) MarkTrained() {
	e.state = Trained
}

// RecordStep は1ステップを記録する。updated は境界が動いたかどうか
func (e *BaseEstimator) RecordStep(updated bool) {
	e.steps++
	if updated {
		e.updates++
	}
}

// Steps は全 Train 呼び出しを通じた累積ステップ数を返す
func (e *BaseEstimator) Steps() int {
	return e.steps
}

// Updates は境界を更新したステップの累積数を返す
func (e *BaseEstimator) Updates() int {
	return e.updates
}
