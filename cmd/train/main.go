// Command train fits the mileage/price model to a CSV dataset, saves it as
// JSON and draws the fitted line.
//
// Usage:
//
//	train [-data data/data.csv] [-model data/model.json] [-plot data/model.png]
//	      [-chart chart.html] [-epochs 1000] [-learning-rate 0.01]
//	      [-log-level info] [-cpuprofile dir]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/linear"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
	"github.com/YuminosukeSato/ftlinreg/plot"
)

type options struct {
	dataPath     string
	modelPath    string
	plotPath     string
	chartPath    string
	epochs       int
	learningRate float64
	logLevel     string
	cpuProfile   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.dataPath, "data", "data/data.csv", "CSV dataset with km and price columns")
	fs.StringVar(&o.modelPath, "model", "data/model.json", "Write the trained model to path")
	fs.StringVar(&o.plotPath, "plot", "data/model.png", "Write a PNG plot of the fit to path (empty disables)")
	fs.StringVar(&o.chartPath, "chart", "", "Write an interactive HTML chart of the fit to path")
	fs.IntVar(&o.epochs, "epochs", linear.DefaultEpochs, "Gradient descent iterations")
	fs.Float64Var(&o.learningRate, "learning-rate", linear.DefaultLearningRate, "Gradient descent step size")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "Write a CPU profile into this directory")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 0 {
		return options{}, errors.Newf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if err := log.SetupLogger(o.logLevel); err != nil {
		return err
	}
	logger := log.GetLogger().With(log.ComponentKey, "train")

	if o.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(o.cpuProfile), profile.NoShutdownHook).Stop()
	}

	ds, err := dataset.Load(o.dataPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Getting data from %s\n", o.dataPath)

	m, err := linear.Train(ds,
		linear.WithEpochs(o.epochs),
		linear.WithLearningRate(o.learningRate),
		linear.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := model.Save(o.modelPath, m); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Model successfully trained and saved in %s\n", o.modelPath)

	// A missing plot does not invalidate the saved model.
	if o.plotPath != "" {
		if err := plot.SavePNG(o.plotPath, ds, m); err != nil {
			logger.Warn("Failed to save plot", log.SourceKey, o.plotPath, log.ErrorDetailKey, err)
			fmt.Fprintf(stdout, "Fail to save the graph in %s\n", o.plotPath)
		} else {
			fmt.Fprintf(stdout, "Graph of linear regression saved in %s\n", o.plotPath)
		}
	}
	if o.chartPath != "" {
		if err := plot.SaveHTML(o.chartPath, ds, m); err != nil {
			logger.Warn("Failed to save chart", log.SourceKey, o.chartPath, log.ErrorDetailKey, err)
			fmt.Fprintf(stdout, "Fail to save the chart in %s\n", o.chartPath)
		} else {
			fmt.Fprintf(stdout, "Chart of linear regression saved in %s\n", o.chartPath)
		}
	}
	return nil
}

func main() {
	_ = log.SetupLogger("info")

	err := errors.SafeExecute("train", func() error {
		return run(os.Args[1:], os.Stdout, os.Stderr)
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.GetLogger().Error("Training failed", err)
		os.Exit(1)
	}
}
