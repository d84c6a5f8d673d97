package plot

import (
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	eopts "github.com/go-echarts/go-echarts/v2/opts"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

// Chart builds an echarts scatter of the samples with the fitted line
// overlapped on the same value axes.
func Chart(ds dataset.Dataset, m model.Model, opts ...Option) (*charts.Scatter, error) {
	cfg := newConfig(opts)

	xs, ys, err := FittedLine(ds, m)
	if err != nil {
		return nil, err
	}
	xMin, xMax, yMin, yMax, err := axisRanges(ds)
	if err != nil {
		return nil, err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(eopts.Initialization{
			PageTitle: cfg.title,
			Width:     pixelString(cfg.width),
			Height:    pixelString(cfg.height),
		}),
		charts.WithTitleOpts(eopts.Title{
			Title: cfg.title,
		}),
		charts.WithXAxisOpts(eopts.XAxis{
			Name: dataset.FeatureColumn,
			Type: "value",
			Min:  xMin,
			Max:  xMax,
		}),
		charts.WithYAxisOpts(eopts.YAxis{
			Name: dataset.TargetColumn,
			Type: "value",
			Min:  yMin,
			Max:  yMax,
		}),
		charts.WithTooltipOpts(eopts.Tooltip{
			Trigger: "item",
		}),
	)

	points := make([]eopts.ScatterData, 0, len(ds))
	for _, s := range ds {
		points = append(points, eopts.ScatterData{Value: []interface{}{s.Feature, s.Target}})
	}
	scatter.AddSeries("samples", points)

	lineData := make([]eopts.LineData, 0, len(xs))
	for i := range xs {
		lineData = append(lineData, eopts.LineData{Value: []interface{}{xs[i], ys[i]}})
	}
	line := charts.NewLine()
	line.AddSeries("estimate", lineData)

	scatter.Overlap(line)
	return scatter, nil
}

// WriteHTML renders the chart as a standalone HTML page.
func WriteHTML(w io.Writer, ds dataset.Dataset, m model.Model, opts ...Option) error {
	chart, err := Chart(ds, m, opts...)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(chart)
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "plot: render chart")
	}
	return nil
}

// SaveHTML writes the chart to path, replacing any existing file.
func SaveHTML(path string, ds dataset.Dataset, m model.Model, opts ...Option) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewPersistenceError("chart", path, err)
	}
	if err := WriteHTML(file, ds, m, opts...); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.NewPersistenceError("chart", path, err)
	}
	return nil
}

func pixelString(n int) string {
	return strconv.Itoa(n) + "px"
}
