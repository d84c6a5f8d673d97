package preprocessing

import (
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

// StandardScaler は特徴量を平均0、標準偏差1に変換するための統計量を保持する
//
// scikit-learnのStandardScalerと違い、標準偏差が0の列を1に置き換えることはしない。
// 退化した統計量はそのままエラーとして呼び出し側に返す。
type StandardScaler struct {
	// Mean は特徴量の平均値
	Mean float64

	// Scale は特徴量の母標準偏差 (n で割る)
	Scale float64

	// NSamples は Fit に使ったサンプル数
	NSamples int
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler()
//	if err := scaler.Fit(ds.Features()); err != nil {
//	    return err
//	}
//	m := model.New(scaler.Mean, scaler.Scale)
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit は訓練データから統計情報（平均、母標準偏差）を計算する
//
// 戻り値:
//   - error: 空のデータの場合は UndefinedStatistics、
//     全ての値が同じ（標準偏差0）の場合は DivisionByDegenerateStatistic
func (s *StandardScaler) Fit(x []float64) error {
	if len(x) == 0 {
		return errors.NewUndefinedStatisticsError("StandardScaler.Fit", 0)
	}

	mean, std := stat.PopMeanStdDev(x, nil)
	if errors.IsDegenerateDivisor(std) {
		return errors.NewDegenerateStatisticError("StandardScaler.Fit", "standard deviation", std)
	}

	s.Mean = mean
	s.Scale = std
	s.NSamples = len(x)
	return nil
}

// Standardize は学習済みの統計量で1つの値を標準化する: (x - mean) / std
func Standardize(x, mean, std float64) (float64, error) {
	if errors.IsDegenerateDivisor(std) {
		return 0, errors.NewDegenerateStatisticError("Standardize", "standard deviation", std)
	}
	return (x - mean) / std, nil
}
