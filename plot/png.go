package plot

import (
	"image/color"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
)

// gonum/plot renders raster images at 96 dpi.
const pixelsPerInch = 96

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pixelsPerInch
}

// SavePNG writes a scatter of the samples and the fitted line to path.
// The format follows the file extension, so ".svg" or ".pdf" also work.
func SavePNG(path string, ds dataset.Dataset, m model.Model, opts ...Option) error {
	cfg := newConfig(opts)

	xs, ys, err := FittedLine(ds, m)
	if err != nil {
		return err
	}
	xMin, xMax, yMin, yMax, err := axisRanges(ds)
	if err != nil {
		return err
	}

	p := gplot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = dataset.FeatureColumn
	p.Y.Label.Text = dataset.TargetColumn
	p.Add(plotter.NewGrid())

	samples := make(plotter.XYs, len(ds))
	for i, s := range ds {
		samples[i].X = s.Feature
		samples[i].Y = s.Target
	}
	scatter, err := plotter.NewScatter(samples)
	if err != nil {
		return errors.Wrap(err, "plot: scatter")
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	fitted := make(plotter.XYs, len(xs))
	for i := range xs {
		fitted[i].X = xs[i]
		fitted[i].Y = ys[i]
	}
	line, err := plotter.NewLine(fitted)
	if err != nil {
		return errors.Wrap(err, "plot: line")
	}
	line.LineStyle.Color = color.RGBA{B: 200, A: 255}
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(scatter, line)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("estimate", line)
	p.Legend.Top = true

	// Pin the axes so the line's extrapolated ends do not stretch the price axis.
	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax

	if err := p.Save(pixels(cfg.width), pixels(cfg.height), path); err != nil {
		return errors.NewPersistenceError("plot", path, err)
	}

	log.GetLogger().Debug("Plot saved",
		log.OperationKey, log.OperationPlot,
		log.SourceKey, path,
		log.SamplesKey, len(ds),
	)
	return nil
}
