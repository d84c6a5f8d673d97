package plot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

func sampleData() (dataset.Dataset, model.Model) {
	ds := dataset.Dataset{
		{Feature: 10, Target: 100},
		{Feature: 20, Target: 200},
		{Feature: 30, Target: 300},
	}
	m := model.Model{Intercept: 200, Slope: 81.6, Mean: 20, StandardDeviation: 8.16}
	return ds, m
}

func TestFittedLine(t *testing.T) {
	ds, m := sampleData()

	xs, ys, err := FittedLine(ds, m)
	require.NoError(t, err)
	require.Len(t, xs, LinePoints)
	require.Len(t, ys, LinePoints)

	assert.InDelta(t, 9.0, xs[0], 1e-12)
	assert.InDelta(t, 33.0, xs[LinePoints-1], 1e-12)
	for i := 1; i < LinePoints; i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
	assert.InDelta(t, m.Intercept+m.Slope*(xs[50]-m.Mean)/m.StandardDeviation, ys[50], 1e-9)
}

func TestAxisRanges(t *testing.T) {
	ds, _ := sampleData()

	xMin, xMax, yMin, yMax, err := axisRanges(ds)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, xMin, 1e-12)
	assert.InDelta(t, 33.0, xMax, 1e-12)
	assert.InDelta(t, 90.0, yMin, 1e-12)
	assert.InDelta(t, 330.0, yMax, 1e-12)

	_, _, _, _, err = axisRanges(nil)
	assert.True(t, errors.Is(err, errors.ErrUndefinedStatistics))
}

func TestPadRangeHandlesNegativeBounds(t *testing.T) {
	lo, hi := padRange(-10, -5)
	assert.InDelta(t, -11.0, lo, 1e-12)
	assert.InDelta(t, -4.5, hi, 1e-12)
	assert.Less(t, lo, hi)
}

func TestFittedLineErrors(t *testing.T) {
	_, m := sampleData()
	_, _, err := FittedLine(nil, m)
	assert.True(t, errors.Is(err, errors.ErrUndefinedStatistics))

	ds, _ := sampleData()
	_, _, err = FittedLine(ds, model.Model{})
	assert.True(t, errors.Is(err, errors.ErrDivisionByDegenerateStatistic))
}

func TestSavePNG(t *testing.T) {
	ds, m := sampleData()
	path := filepath.Join(t.TempDir(), "model.png")

	require.NoError(t, SavePNG(path, ds, m))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
}

func TestSavePNGWithSize(t *testing.T) {
	ds, m := sampleData()
	path := filepath.Join(t.TempDir(), "small.png")

	require.NoError(t, SavePNG(path, ds, m, WithSize(320, 240), WithTitle("small")))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
}

func TestSavePNGErrors(t *testing.T) {
	ds, m := sampleData()

	err := SavePNG(filepath.Join(t.TempDir(), "missing", "model.png"), ds, m)
	assert.True(t, errors.Is(err, errors.ErrPersistence))

	err = SavePNG(filepath.Join(t.TempDir(), "empty.png"), nil, m)
	assert.True(t, errors.Is(err, errors.ErrUndefinedStatistics))
}

func TestWriteHTML(t *testing.T) {
	ds, m := sampleData()

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, ds, m))

	html := buf.String()
	assert.True(t, strings.Contains(html, "<html"))
	assert.Contains(t, html, DefaultTitle)
	assert.Contains(t, html, "samples")
	assert.Contains(t, html, "estimate")
}

func TestSaveHTML(t *testing.T) {
	ds, m := sampleData()
	path := filepath.Join(t.TempDir(), "chart.html")

	require.NoError(t, SaveHTML(path, ds, m, WithTitle("Mileage vs price")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mileage vs price")

	err = SaveHTML(filepath.Join(t.TempDir(), "missing", "chart.html"), ds, m)
	assert.True(t, errors.Is(err, errors.ErrPersistence))
}
