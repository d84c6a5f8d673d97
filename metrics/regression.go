package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

func checkPair(op string, yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return errors.NewValueError(op, "empty input")
	}
	if len(yPred) != len(yTrue) {
		return errors.NewValueError(op, "yTrue and yPred have different lengths")
	}
	return nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	d := floats.Distance(yTrue, yPred, 2)
	return d * d / float64(len(yTrue)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	return floats.Distance(yTrue, yPred, 1) / float64(len(yTrue)), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	yMean := stat.Mean(yTrue, nil)

	// 全変動（TSS）と残差変動（RSS）
	var tss, rss float64
	for i, y := range yTrue {
		tss += (y - yMean) * (y - yMean)
		rss += (y - yPred[i]) * (y - yPred[i])
	}

	// すべてのyTrueが同じ値の場合
	if tss == 0 {
		return 0, errors.NewDegenerateStatisticError("R2Score", "total sum of squares", tss)
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// MAPE は平均絶対パーセンテージ誤差を計算する。yTrue が0のサンプルは除外する。
func MAPE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MAPE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAPE = (100/n) * Σ|yTrue - yPred|/|yTrue|
	var sum float64
	validCount := 0
	for i, y := range yTrue {
		if y != 0 {
			sum += math.Abs(y-yPred[i]) / math.Abs(y)
			validCount++
		}
	}

	if validCount == 0 {
		return 0, errors.NewValueError("MAPE", "all yTrue values are zero")
	}

	return (sum / float64(validCount)) * 100, nil
}
