package linear

import (
	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/core/parallel"
	"github.com/YuminosukeSato/ftlinreg/preprocessing"
)

// Normalize は学習時の統計量で特徴量を標準化する: (x - mean) / standardDeviation
//
// 推論時も必ずモデルに保存された統計量を使い、新しいデータから再計算しない。
func Normalize(x float64, m model.Model) (float64, error) {
	return preprocessing.Standardize(x, m.Mean, m.StandardDeviation)
}

// Predict は生の特徴量から目的変数を推定する: intercept + slope * normalize(x)
//
// The trainer evaluates the model in progress with the same arithmetic.
func Predict(x float64, m model.Model) (float64, error) {
	z, err := Normalize(x, m)
	if err != nil {
		return 0, err
	}
	return predictStandardized(m, z), nil
}

// PredictAll は複数の特徴量に対して予測を行う
//
// 入力が DefaultParallelThreshold を超える場合はCPUコア数に分割して並列に計算する。
// 各要素の結果は Predict と同一。
func PredictAll(xs []float64, m model.Model) ([]float64, error) {
	if _, err := Normalize(m.Mean, m); err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	parallel.ParallelizeWithThreshold(len(xs), DefaultParallelThreshold, func(_, start, end int) {
		for i := start; i < end; i++ {
			out[i] = predictStandardized(m, (xs[i]-m.Mean)/m.StandardDeviation)
		}
	})
	return out, nil
}

func predictStandardized(m model.Model, z float64) float64 {
	return m.Intercept + m.Slope*z
}
