package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "Perceptron".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: OperationTrain, OperationPredict, OperationScore, OperationRender.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package doing the work, e.g. "datasets", "plot".
	ComponentKey = "ml.component"

	// PhaseKey is the lifecycle phase, e.g. PhaseTraining.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	// SamplesKey is the number of points involved.
	SamplesKey = "data.samples"

	// ClassKey names a point class.
	ClassKey = "data.class"
)

// Training progress.
const (
	// IterationKey is the current 1-based training step.
	IterationKey = "training.iteration"

	// IterationsKey is the configured iteration count for a training call.
	IterationsKey = "training.iterations"

	// UpdatesKey counts steps that moved the boundary.
	UpdatesKey = "training.updates"

	// IncorrectKey is the number of misclassified points.
	IncorrectKey = "metrics.incorrect"

	// TotalKey is the total number of points evaluated.
	TotalKey = "metrics.total"

	// ErrorRateKey is the misclassified share in percent.
	ErrorRateKey = "metrics.error_percent"

	// AccuracyKey is classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey is the wall time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Boundary coefficients.
const (
	BoundaryAKey = "boundary.a"
	BoundaryBKey = "boundary.b"
	BoundaryCKey = "boundary.c"
)

// Hyperparameters and configuration.
const (
	// LearningRateKey is the perceptron step size.
	LearningRateKey = "hyperparams.learning_rate"

	// ReportEveryKey is the reporting interval in steps.
	ReportEveryKey = "hyperparams.report_every"

	// RandomSeedKey records the seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// ConfigPathKey is the configuration file in use.
	ConfigPathKey = "config.path"

	// OutputPathKey is a file written by the command.
	OutputPathKey = "output.path"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	ErrorTypeKey  = "error.type"
	StacktraceKey = "error.stacktrace"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationTrain   = "train"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationRender  = "render"
	OperationSample  = "sample"

	PhaseTraining   = "training"
	PhaseInference  = "inference"
	PhaseGeneration = "generation"
	PhaseRendering  = "rendering"

	ErrorEmptyClass        = "EMPTY_CLASS"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorNumerical         = "NUMERICAL_INSTABILITY"
)
