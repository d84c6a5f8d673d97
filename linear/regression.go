package linear

import (
	"context"
	"math"
	"time"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/core/parallel"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
	"github.com/YuminosukeSato/ftlinreg/preprocessing"
)

// GradientDescent は標準化した特徴量に対してバッチ勾配降下法で単回帰を学習する
//
// 反復回数は固定で、収束判定や早期終了は行わない。同じデータと同じハイパーパラメータなら
// 常に同じモデルが得られる。
type GradientDescent struct {
	epochs            int
	learningRate      float64
	parallelThreshold int
	logEvery          int
	logger            log.Logger
}

// NewGradientDescent は新しい学習器を作成する
//
// 使用例:
//
//	gd := linear.NewGradientDescent(linear.WithEpochs(1000), linear.WithLearningRate(0.01))
//	m, err := gd.Fit(ds)
func NewGradientDescent(opts ...Option) *GradientDescent {
	gd := &GradientDescent{
		epochs:            DefaultEpochs,
		learningRate:      DefaultLearningRate,
		parallelThreshold: DefaultParallelThreshold,
		logEvery:          DefaultLogEvery,
		logger:            log.Nop(),
	}
	for _, opt := range opts {
		opt(gd)
	}
	return gd
}

// Train はデフォルト設定（またはオプション）でデータセットからモデルを学習する
func Train(ds dataset.Dataset, opts ...Option) (model.Model, error) {
	return NewGradientDescent(opts...).Fit(ds)
}

// Epochs returns the configured iteration count.
func (gd *GradientDescent) Epochs() int {
	return gd.epochs
}

// LearningRate returns the configured step size.
func (gd *GradientDescent) LearningRate() float64 {
	return gd.learningRate
}

func (gd *GradientDescent) validate() error {
	if gd.epochs < 0 {
		return errors.NewValidationError("epochs", "must be >= 0", gd.epochs)
	}
	if !(gd.learningRate > 0) || math.IsInf(gd.learningRate, 0) {
		return errors.NewValidationError("learning_rate", "must be a positive finite number", gd.learningRate)
	}
	return nil
}

// Fit はモデルを訓練データで学習させる
//
// 1. 特徴量の平均と母標準偏差を計算する
// 2. 切片・係数を0で初期化する
// 3. 固定回数だけ、更新前のモデルから両パラメータの勾配を計算して同時に更新する
//
// 戻り値:
//   - model.Model: 学習済みモデル
//   - error: 空のデータは UndefinedStatistics、特徴量の分散が0なら DivisionByDegenerateStatistic
func (gd *GradientDescent) Fit(ds dataset.Dataset) (model.Model, error) {
	if err := gd.validate(); err != nil {
		return model.Model{}, err
	}

	n := ds.Len()
	if n == 0 {
		return model.Model{}, errors.NewUndefinedStatisticsError("GradientDescent.Fit", 0)
	}

	scaler := preprocessing.NewStandardScaler()
	if err := scaler.Fit(ds.Features()); err != nil {
		return model.Model{}, err
	}
	m := model.New(scaler.Mean, scaler.Scale)

	// 標準化した特徴量は反復中に変わらないので一度だけ計算する
	z := make([]float64, n)
	for i, s := range ds {
		v, err := Normalize(s.Feature, m)
		if err != nil {
			return model.Model{}, err
		}
		z[i] = v
	}
	y := ds.Targets()

	logger := gd.logger.With(log.ModelNameKey, "GradientDescent", log.OperationKey, log.OperationFit)
	logger.Info("Training started",
		log.SamplesKey, n,
		log.EpochsKey, gd.epochs,
		log.LearningRateKey, gd.learningRate,
		log.FeatureMeanKey, m.Mean,
		log.FeatureStdKey, m.StandardDeviation,
	)
	start := time.Now()
	traceEpochs := gd.logEvery > 0 && logger.Enabled(context.Background(), log.LevelDebug)

	nf := float64(n)
	for epoch := 0; epoch < gd.epochs; epoch++ {
		// sums[0] = Σ error, sums[1] = Σ error * z
		sums := parallel.ReduceWithThreshold(n, gd.parallelThreshold, 2, func(acc []float64, lo, hi int) {
			for i := lo; i < hi; i++ {
				e := predictStandardized(m, z[i]) - y[i]
				acc[0] += e
				acc[1] += e * z[i]
			}
		})

		m = m.WithParams(
			m.Intercept-gd.learningRate*sums[0]/nf,
			m.Slope-gd.learningRate*sums[1]/nf,
		)

		if traceEpochs && (epoch+1)%gd.logEvery == 0 {
			logger.Debug("Epoch completed",
				log.EpochKey, epoch+1,
				log.InterceptKey, m.Intercept,
				log.SlopeKey, m.Slope,
				log.LossKey, meanSquaredError(m, z, y),
			)
		}
	}

	if err := errors.CheckNumericalStability("gradient_update", []float64{m.Intercept, m.Slope}, gd.epochs); err != nil {
		logger.Error("Training diverged", err, log.LearningRateKey, gd.learningRate)
		return model.Model{}, err
	}

	logger.Info("Training completed",
		log.InterceptKey, m.Intercept,
		log.SlopeKey, m.Slope,
		log.LossKey, meanSquaredError(m, z, y),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return m, nil
}

func meanSquaredError(m model.Model, z, y []float64) float64 {
	var sum float64
	for i := range z {
		d := predictStandardized(m, z[i]) - y[i]
		sum += d * d
	}
	return sum / float64(len(z))
}
