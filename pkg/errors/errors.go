// Package errors はプロジェクト全体のエラーハンドリングを提供します。
// 回帰モデルの学習・推論・永続化で発生する失敗を型付きのエラーとして表現し、
// cockroachdb/errors によるスタックトレースと errors.Is で判定可能なマーカーを付与します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrUndefinedStatistics is reported when mean/variance cannot be computed (empty dataset).
	ErrUndefinedStatistics = New("undefined statistics")

	// ErrDivisionByDegenerateStatistic is reported when a standard deviation of zero would be used as a divisor.
	ErrDivisionByDegenerateStatistic = New("division by degenerate statistic")

	// ErrInvalidTarget is reported when a target value cannot be used as a divisor during evaluation.
	ErrInvalidTarget = New("invalid target")

	// ErrMalformedInput is reported when a dataset source cannot be parsed.
	ErrMalformedInput = New("malformed input")

	// ErrPersistence is reported when the stored model cannot be written, read or decoded.
	ErrPersistence = New("persistence failure")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// UndefinedStatisticsError は統計量（平均・分散）が定義できない場合のエラーです。
type UndefinedStatisticsError struct {
	Op      string
	Samples int
}

func (e *UndefinedStatisticsError) Error() string {
	return fmt.Sprintf("ftlinreg: %s: mean and variance are undefined for %d samples", e.Op, e.Samples)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UndefinedStatisticsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("samples", e.Samples).
		Str("type", "UndefinedStatisticsError")
}

// NewUndefinedStatisticsError は新しいUndefinedStatisticsErrorを作成し、スタックトレースを付与します。
func NewUndefinedStatisticsError(op string, samples int) error {
	err := &UndefinedStatisticsError{Op: op, Samples: samples}
	return errors.Mark(errors.WithStack(err), ErrUndefinedStatistics)
}

// DegenerateStatisticError は除数となる統計量が退化している（0など）場合のエラーです。
type DegenerateStatisticError struct {
	Op        string
	Statistic string
	Value     float64
}

func (e *DegenerateStatisticError) Error() string {
	return fmt.Sprintf("ftlinreg: %s: %s is %g, cannot divide by it", e.Op, e.Statistic, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DegenerateStatisticError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("statistic", e.Statistic).
		Float64("value", e.Value).
		Str("type", "DegenerateStatisticError")
}

// NewDegenerateStatisticError は新しいDegenerateStatisticErrorを作成し、スタックトレースを付与します。
func NewDegenerateStatisticError(op, statistic string, value float64) error {
	err := &DegenerateStatisticError{Op: op, Statistic: statistic, Value: value}
	return errors.Mark(errors.WithStack(err), ErrDivisionByDegenerateStatistic)
}

// InvalidTargetError は評価時に目的変数の値が使えない場合のエラーです。
type InvalidTargetError struct {
	Op     string
	Index  int
	Target float64
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("ftlinreg: %s: sample %d has target %g, cannot compute a ratio against it", e.Op, e.Index, e.Target)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidTargetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Float64("target", e.Target).
		Str("type", "InvalidTargetError")
}

// NewInvalidTargetError は新しいInvalidTargetErrorを作成し、スタックトレースを付与します。
func NewInvalidTargetError(op string, index int, target float64) error {
	err := &InvalidTargetError{Op: op, Index: index, Target: target}
	return errors.Mark(errors.WithStack(err), ErrInvalidTarget)
}

// MalformedInputError はデータソースの行が期待する形に解析できない場合のエラーです。
// Line は1始まりの行番号（ヘッダを含む）、0の場合はソース全体の問題を表します。
type MalformedInputError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *MalformedInputError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.Column != "" {
		loc = fmt.Sprintf("%s (column %q)", loc, e.Column)
	}
	if e.Err != nil {
		return fmt.Sprintf("ftlinreg: malformed input at %s: %v", loc, e.Err)
	}
	return fmt.Sprintf("ftlinreg: malformed input at %s", loc)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MalformedInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("source", e.Source).
		Int("line", e.Line).
		Str("column", e.Column).
		Str("type", "MalformedInputError")
}

// NewMalformedInputError は新しいMalformedInputErrorを作成し、スタックトレースを付与します。
func NewMalformedInputError(source string, line int, column string, cause error) error {
	err := &MalformedInputError{Source: source, Line: line, Column: column, Err: cause}
	return errors.Mark(errors.WithStack(err), ErrMalformedInput)
}

// PersistenceError は保存済みモデルの読み書き・デコードに失敗した場合のエラーです。
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	target := e.Path
	if target == "" {
		target = "stream"
	}
	if e.Err != nil {
		return fmt.Sprintf("ftlinreg: %s %s: %v", e.Op, target, e.Err)
	}
	return fmt.Sprintf("ftlinreg: %s %s", e.Op, target)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *PersistenceError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("path", e.Path).
		Str("type", "PersistenceError")
}

// NewPersistenceError は新しいPersistenceErrorを作成し、スタックトレースを付与します。
func NewPersistenceError(op, path string, cause error) error {
	err := &PersistenceError{Op: op, Path: path, Err: cause}
	return errors.Mark(errors.WithStack(err), ErrPersistence)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ftlinreg: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("ftlinreg: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NumericalInstabilityError は数値計算の結果がNaNやInfになった場合のエラーです。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "gradient_update"）
	Values    []float64 // 問題のある値
	Iteration int       // 発生したイテレーション番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("ftlinreg: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
