package linear

import (
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
)

// Default hyperparameters of the gradient descent trainer.
const (
	DefaultEpochs            = 1000
	DefaultLearningRate      = 0.01
	DefaultParallelThreshold = 1000
	DefaultLogEvery          = 100
)

// Option is a function that configures GradientDescent
type Option func(*GradientDescent)

// WithEpochs sets the exact number of full-batch iterations.
func WithEpochs(epochs int) Option {
	return func(gd *GradientDescent) {
		gd.epochs = epochs
	}
}

// WithLearningRate sets the step size applied to the averaged gradient.
func WithLearningRate(rate float64) Option {
	return func(gd *GradientDescent) {
		gd.learningRate = rate
	}
}

// WithLogger sets the logger receiving training progress.
func WithLogger(logger log.Logger) Option {
	return func(gd *GradientDescent) {
		if logger != nil {
			gd.logger = logger
		}
	}
}

// WithLogEvery logs the loss every n epochs at debug level. n <= 0 disables it.
func WithLogEvery(n int) Option {
	return func(gd *GradientDescent) {
		gd.logEvery = n
	}
}

// WithParallelThreshold sets the number of samples above which the per-epoch
// sums are computed in parallel.
func WithParallelThreshold(n int) Option {
	return func(gd *GradientDescent) {
		gd.parallelThreshold = n
	}
}
