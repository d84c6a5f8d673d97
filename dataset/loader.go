package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

// Default column names of the CSV header.
const (
	FeatureColumn = "km"
	TargetColumn  = "price"
)

// Load reads a CSV file with a header row naming the km and price columns.
// A file that cannot be opened is reported as is, wrapped with its path.
func Load(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer file.Close()

	return Read(file, path)
}

// Read parses CSV from r. source names the input in error messages.
//
// The header locates the columns by name, in any order; other columns are
// ignored. Parsing stops at the first row that is not a valid sample.
func Read(r io.Reader, source string) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewMalformedInputError(source, 0, "", errors.ErrEmptyData)
	}
	if err != nil {
		return nil, errors.NewMalformedInputError(source, 1, "", err)
	}

	featureIdx, targetIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case FeatureColumn:
			featureIdx = i
		case TargetColumn:
			targetIdx = i
		}
	}
	if featureIdx < 0 {
		return nil, errors.NewMalformedInputError(source, 1, FeatureColumn, errors.New("missing column in header"))
	}
	if targetIdx < 0 {
		return nil, errors.NewMalformedInputError(source, 1, TargetColumn, errors.New("missing column in header"))
	}

	var data Dataset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, errors.NewMalformedInputError(source, line, "", err)
		}
		line, _ := reader.FieldPos(0)

		feature, err := parseField(record[featureIdx])
		if err != nil {
			return nil, errors.NewMalformedInputError(source, line, FeatureColumn, err)
		}
		if feature < 0 {
			return nil, errors.NewMalformedInputError(source, line, FeatureColumn, errors.Newf("negative value %g", feature))
		}
		target, err := parseField(record[targetIdx])
		if err != nil {
			return nil, errors.NewMalformedInputError(source, line, TargetColumn, err)
		}

		data = append(data, Sample{Feature: feature, Target: target})
	}

	return data, nil
}

func parseField(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Newf("non-finite value %q", field)
	}
	return v, nil
}
