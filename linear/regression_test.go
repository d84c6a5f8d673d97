package linear

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
)

func tenTimes() dataset.Dataset {
	return dataset.Dataset{
		{Feature: 10, Target: 100},
		{Feature: 20, Target: 200},
		{Feature: 30, Target: 300},
	}
}

func loadMileage(t *testing.T) dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(filepath.Join("..", "data", "data.csv"))
	require.NoError(t, err)
	return ds
}

// referenceFit spells out the update with explicit temporaries so the
// trainer can be checked against it bit for bit.
func referenceFit(ds dataset.Dataset, epochs int, rate float64) model.Model {
	n := float64(len(ds))
	var mean float64
	for _, s := range ds {
		mean += s.Feature
	}
	mean /= n
	var ss float64
	for _, s := range ds {
		ss += (s.Feature - mean) * (s.Feature - mean)
	}
	m := model.New(mean, math.Sqrt(ss/n))

	for e := 0; e < epochs; e++ {
		var sumErr, sumErrZ float64
		for _, s := range ds {
			z := (s.Feature - m.Mean) / m.StandardDeviation
			pred := m.Intercept + m.Slope*z
			sumErr += pred - s.Target
			sumErrZ += (pred - s.Target) * z
		}
		tmp0 := m.Intercept - rate*sumErr/n
		tmp1 := m.Slope - rate*sumErrZ/n
		m.Intercept, m.Slope = tmp0, tmp1
	}
	return m
}

func TestTrainTenTimesFixture(t *testing.T) {
	m, err := Train(tenTimes())
	require.NoError(t, err)

	assert.InDelta(t, 20.0, m.Mean, 1e-12)
	assert.InDelta(t, 8.165, m.StandardDeviation, 1e-3)
	assert.InDelta(t, 199.99136575, m.Intercept, 1e-6)
	assert.InDelta(t, 81.64613318, m.Slope, 1e-6)

	got, err := Predict(40, m)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, got, 0.1)
	assert.InDelta(t, 399.98273150, got, 1e-6)
}

func TestTrainMatchesReferenceUpdate(t *testing.T) {
	ds := loadMileage(t)

	got, err := Train(ds)
	require.NoError(t, err)
	want := referenceFit(ds, DefaultEpochs, DefaultLearningRate)

	assert.True(t, got.ApproxEqual(want, 1e-6), "got %+v, want %+v", got, want)
}

func TestTrainUsesSimultaneousUpdate(t *testing.T) {
	ds := tenTimes()
	got, err := Train(ds, WithEpochs(1))
	require.NoError(t, err)

	// From zero every error is -target, so the first step of each
	// parameter only depends on the targets.
	var sumYZ float64
	for _, s := range ds {
		z, err := Normalize(s.Feature, got)
		require.NoError(t, err)
		sumYZ += s.Target * z
	}
	assert.InDelta(t, 0.01*200, got.Intercept, 1e-12)
	assert.InDelta(t, 0.01*sumYZ/3, got.Slope, 1e-12)

	many, err := Train(ds, WithEpochs(50))
	require.NoError(t, err)
	assert.True(t, many.ApproxEqual(referenceFit(ds, 50, 0.01), 1e-9))
}

func TestTrainIsDeterministic(t *testing.T) {
	ds := loadMileage(t)

	first, err := Train(ds)
	require.NoError(t, err)
	second, err := Train(ds)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTrainApproachesClosedForm(t *testing.T) {
	ds := loadMileage(t)

	m, err := Train(ds)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(ds.Features(), ds.Targets(), nil, false)
	intercept, slope, err := m.RawLine()
	require.NoError(t, err)

	assert.InDelta(t, alpha, intercept, 1.0)
	assert.InEpsilon(t, beta, slope, 1e-4)
}

func TestTrainParallelPathAgrees(t *testing.T) {
	ds := loadMileage(t)

	sequential, err := Train(ds)
	require.NoError(t, err)
	chunked, err := Train(ds, WithParallelThreshold(0))
	require.NoError(t, err)

	assert.True(t, sequential.ApproxEqual(chunked, 1e-6), "sequential %+v, chunked %+v", sequential, chunked)
}

func TestTrainZeroEpochs(t *testing.T) {
	m, err := Train(tenTimes(), WithEpochs(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Intercept)
	assert.Equal(t, 0.0, m.Slope)
	assert.Equal(t, 20.0, m.Mean)
}

func TestTrainErrors(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		_, err := Train(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUndefinedStatistics))

		var statsErr *errors.UndefinedStatisticsError
		assert.True(t, errors.As(err, &statsErr))
	})

	t.Run("zero feature variance", func(t *testing.T) {
		ds := dataset.Dataset{{Feature: 5, Target: 1}, {Feature: 5, Target: 2}, {Feature: 5, Target: 3}}
		m, err := Train(ds)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrDivisionByDegenerateStatistic))
		assert.Equal(t, model.Model{}, m)
	})

	t.Run("single sample", func(t *testing.T) {
		_, err := Train(dataset.Dataset{{Feature: 5, Target: 1}})
		assert.True(t, errors.Is(err, errors.ErrDivisionByDegenerateStatistic))
	})

	t.Run("diverging learning rate", func(t *testing.T) {
		_, err := Train(tenTimes(), WithLearningRate(5))
		var numErr *errors.NumericalInstabilityError
		require.True(t, errors.As(err, &numErr), "got %v", err)
		assert.Equal(t, DefaultEpochs, numErr.Iteration)
	})
}

func TestTrainValidatesHyperparameters(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		param string
	}{
		{"negative epochs", WithEpochs(-1), "epochs"},
		{"zero rate", WithLearningRate(0), "learning_rate"},
		{"negative rate", WithLearningRate(-0.01), "learning_rate"},
		{"nan rate", WithLearningRate(math.NaN()), "learning_rate"},
		{"inf rate", WithLearningRate(math.Inf(1)), "learning_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Train(tenTimes(), tt.opt)
			var valErr *errors.ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tt.param, valErr.ParamName)
		})
	}
}

func TestGradientDescentDefaults(t *testing.T) {
	gd := NewGradientDescent()
	assert.Equal(t, 1000, gd.Epochs())
	assert.Equal(t, 0.01, gd.LearningRate())

	gd = NewGradientDescent(WithEpochs(10), WithLearningRate(0.1), WithLogger(nil))
	assert.Equal(t, 10, gd.Epochs())
	assert.Equal(t, 0.1, gd.LearningRate())
}

func TestTrainLogsProgress(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)

	_, err := Train(tenTimes(), WithLogger(logger), WithLogEvery(100))
	require.NoError(t, err)

	assert.Equal(t, 1, logger.CountMessage("Training started"))
	assert.Equal(t, 10, logger.CountMessage("Epoch completed"))
	assert.Equal(t, 1, logger.CountMessage("Training completed"))
	assert.True(t, logger.ContainsField(log.SamplesKey, 3.0))
	assert.True(t, logger.ContainsField(log.EpochKey, 1000.0))
	assert.True(t, logger.ContainsField(log.ModelNameKey, "GradientDescent"))
}

func TestTrainSkipsEpochLogsAboveDebug(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelInfo)

	_, err := Train(tenTimes(), WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 0, logger.CountMessage("Epoch completed"))
	assert.Equal(t, 1, logger.CountMessage("Training completed"))
}
