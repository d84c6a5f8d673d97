// Package plot draws a dataset together with the line a model fits to it,
// as a PNG image (gonum/plot) or an interactive HTML chart (go-echarts).
package plot

import (
	"math"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/linear"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
)

const (
	// LinePoints is the number of samples taken along the fitted line.
	LinePoints = 101

	// DefaultTitle is the chart title.
	DefaultTitle = "Linear Regression"

	// DefaultWidth and DefaultHeight are the PNG size in pixels.
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Option configures a chart.
type Option func(*config)

type config struct {
	title  string
	width  int
	height int
}

func newConfig(opts []Option) config {
	c := config{title: DefaultTitle, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// FittedLine samples the model's estimate at LinePoints evenly spaced
// mileages spanning [0.9*min, 1.1*max] of the dataset's features.
func FittedLine(ds dataset.Dataset, m model.Model) (xs, ys []float64, err error) {
	lo, hi, ok := ds.FeatureRange()
	if !ok {
		return nil, nil, errors.NewUndefinedStatisticsError("plot.FittedLine", 0)
	}
	lo, hi = padRange(lo, hi)

	xs = make([]float64, LinePoints)
	step := (hi - lo) / (LinePoints - 1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[LinePoints-1] = hi

	ys, err = linear.PredictAll(xs, m)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// padRange widens [lo, hi] by a tenth of each bound's magnitude, which for
// positive data is [0.9*lo, 1.1*hi].
func padRange(lo, hi float64) (float64, float64) {
	return lo - 0.1*math.Abs(lo), hi + 0.1*math.Abs(hi)
}

// axisRanges returns the padded feature and target ranges of ds.
func axisRanges(ds dataset.Dataset) (xMin, xMax, yMin, yMax float64, err error) {
	xLo, xHi, ok := ds.FeatureRange()
	if !ok {
		return 0, 0, 0, 0, errors.NewUndefinedStatisticsError("plot.axisRanges", 0)
	}
	yLo, yHi, _ := ds.TargetRange()
	xMin, xMax = padRange(xLo, xHi)
	yMin, yMax = padRange(yLo, yHi)
	return xMin, xMax, yMin, yMax, nil
}
