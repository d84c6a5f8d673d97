package model

import (
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

// record はJSONで保存される形式。欠けたキーを検出するためにポインタを使う。
type record struct {
	Theta0            *float64 `json:"theta0"`
	Theta1            *float64 `json:"theta1"`
	Mean              *float64 `json:"mean"`
	StandardDeviation *float64 `json:"standard_deviation"`
}

func toRecord(m Model) record {
	return record{
		Theta0:            &m.Intercept,
		Theta1:            &m.Slope,
		Mean:              &m.Mean,
		StandardDeviation: &m.StandardDeviation,
	}
}

func (r record) model() (Model, error) {
	fields := []struct {
		name  string
		value *float64
	}{
		{"theta0", r.Theta0},
		{"theta1", r.Theta1},
		{"mean", r.Mean},
		{"standard_deviation", r.StandardDeviation},
	}
	for _, f := range fields {
		if f.value == nil {
			return Model{}, errors.Newf("missing field %q", f.name)
		}
	}
	return Model{
		Intercept:         *r.Theta0,
		Slope:             *r.Theta1,
		Mean:              *r.Mean,
		StandardDeviation: *r.StandardDeviation,
	}, nil
}

// Save はモデルをJSONファイルに保存する。既存のファイルは上書きされる。
//
// 使用例:
//
//	m, err := linear.Train(ds)
//	// ...
//	err = model.Save("data/model.json", m)
func Save(filename string, m Model) error {
	data, err := marshal(m)
	if err != nil {
		return errors.NewPersistenceError("save", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.NewPersistenceError("save", filename, err)
	}
	return nil
}

// Load はJSONファイルからモデルを読み込み、推論に使えるかを検証する
func Load(filename string) (Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Model{}, errors.NewPersistenceError("load", filename, err)
	}
	defer file.Close()

	m, err := decode(file)
	if err != nil {
		return Model{}, errors.NewPersistenceError("load", filename, err)
	}
	return m, nil
}

// Encode はモデルをWriterにインデント付きJSONとして書き出す
func Encode(w io.Writer, m Model) error {
	data, err := marshal(m)
	if err != nil {
		return errors.NewPersistenceError("encode", "", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.NewPersistenceError("encode", "", err)
	}
	return nil
}

// Decode はReaderからモデルを読み込み、推論に使えるかを検証する
func Decode(r io.Reader) (Model, error) {
	m, err := decode(r)
	if err != nil {
		return Model{}, errors.NewPersistenceError("decode", "", err)
	}
	return m, nil
}

// marshal refuses models that could not be loaded back.
func marshal(m Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(toRecord(m), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode model")
	}
	return append(data, '\n'), nil
}

func decode(r io.Reader) (Model, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return Model{}, errors.Wrap(err, "failed to decode model")
	}
	// モデルファイルはJSONオブジェクト1つだけを含む
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Model{}, errors.New("unexpected data after model object")
	}
	m, err := rec.model()
	if err != nil {
		return Model{}, err
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}
