// Package model は学習済みパラメータを表す値型と、その永続化を提供します。
package model

import (
	"math"

	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

// Model は単回帰モデルのパラメータと、学習時に使った正規化の統計量
//
// The line is applied to the standardized feature:
//
//	estimate = Intercept + Slope * (x - Mean) / StandardDeviation
//
// Model is a value; the trainer returns a new one and nothing downstream
// modifies it.
type Model struct {
	Intercept         float64 // 切片 (theta0)
	Slope             float64 // 正規化された特徴量に掛かる係数 (theta1)
	Mean              float64 // 学習データの特徴量の平均
	StandardDeviation float64 // 学習データの特徴量の母標準偏差
}

// New は統計量だけを持つ未学習のモデルを作成する (切片・係数は0)
func New(mean, standardDeviation float64) Model {
	return Model{Mean: mean, StandardDeviation: standardDeviation}
}

// WithParams returns a copy of m with the line parameters replaced.
func (m Model) WithParams(intercept, slope float64) Model {
	m.Intercept = intercept
	m.Slope = slope
	return m
}

// Validate はモデルが推論に使える状態かを検証する
//
// 標準偏差が0（またはNaN/Inf）の場合は DivisionByDegenerateStatistic、
// その他のフィールドが有限でない場合は NumericalInstability を返す。
func (m Model) Validate() error {
	if errors.IsDegenerateDivisor(m.StandardDeviation) {
		return errors.NewDegenerateStatisticError("Model.Validate", "standard deviation", m.StandardDeviation)
	}
	return errors.CheckNumericalStability("Model.Validate", []float64{m.Intercept, m.Slope, m.Mean}, 0)
}

// ApproxEqual reports whether every field of both models is within tol.
func (m Model) ApproxEqual(other Model, tol float64) bool {
	return math.Abs(m.Intercept-other.Intercept) <= tol &&
		math.Abs(m.Slope-other.Slope) <= tol &&
		math.Abs(m.Mean-other.Mean) <= tol &&
		math.Abs(m.StandardDeviation-other.StandardDeviation) <= tol
}

// RawLine converts the parameters to a line over the raw feature,
// estimate = intercept + slope*x. Useful when comparing against closed-form fits.
func (m Model) RawLine() (intercept, slope float64, err error) {
	if err := m.Validate(); err != nil {
		return 0, 0, err
	}
	slope = m.Slope / m.StandardDeviation
	intercept = m.Intercept - slope*m.Mean
	return intercept, slope, nil
}
