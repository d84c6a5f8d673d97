// Standard attribute keys shared by every package that logs. Keys follow a
// hierarchical naming convention ("model.name", "data.samples") so records can
// be filtered by prefix.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model, e.g. "GradientDescent".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "load", "save"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// SourceKey names the file or stream a dataset or model was read from.
	SourceKey = "data.source"

	// FeatureMeanKey and FeatureStdKey record the normalization statistics.
	FeatureMeanKey = "data.feature_mean"
	FeatureStdKey  = "data.feature_std"
)

// Model parameters
const (
	InterceptKey = "model.intercept"
	SlopeKey     = "model.slope"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records the running-average accuracy percentage.
	AccuracyKey = "metrics.accuracy"

	// LossKey records the mean squared error during training.
	LossKey = "metrics.loss"

	// R2ScoreKey records R² coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"

	// EpochKey records the current epoch number during training.
	EpochKey = "training.epoch"
)

// Hyperparameters and Configuration
const (
	EpochsKey = "hyperparams.epochs"

	// LearningRateKey records the learning rate for gradient-based algorithms.
	LearningRateKey = "hyperparams.learning_rate"
)

// Error context
const (
	// StacktraceKey contains stack trace information for debugging.
	// Populated by the zerolog backend from cockroachdb/errors details.
	StacktraceKey = "error.stacktrace"

	// ErrorDetailKey holds the structured fields of a typed error.
	ErrorDetailKey = "error.detail"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationLoad    = "load"
	OperationSave    = "save"
	OperationPlot    = "plot"

	PhaseTraining   = "training"
	PhaseInference  = "inference"
	PhaseValidation = "validation"
)
