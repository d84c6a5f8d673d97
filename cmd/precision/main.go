// Command precision reports how well a saved model fits a dataset.
//
// Usage:
//
//	precision [-data data/data.csv] [-model data/model.json]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/metrics"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
)

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("precision", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataPath := fs.String("data", "data/data.csv", "CSV dataset with km and price columns")
	modelPath := fs.String("model", "data/model.json", "Model written by train")
	logLevel := fs.String("log-level", "info", "Log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := log.SetupLogger(*logLevel); err != nil {
		return err
	}

	m, err := model.Load(*modelPath)
	if err != nil {
		return err
	}
	ds, err := dataset.Load(*dataPath)
	if err != nil {
		return err
	}

	acc, err := metrics.Accuracy(ds, m)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "This model is accurate at %.2f%%\n", acc)

	// The other metrics are undefined for an empty dataset or constant prices.
	r, err := metrics.Evaluate(ds, m)
	if errors.Is(err, errors.ErrUndefinedStatistics) || errors.Is(err, errors.ErrDivisionByDegenerateStatistic) {
		log.GetLogger().Warn("Skipping regression metrics",
			log.SourceKey, *dataPath,
			log.SamplesKey, ds.Len(),
			log.ErrorDetailKey, err,
		)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "R2: %.4f\n", r.R2Score)
	fmt.Fprintf(stdout, "RMSE: %.2f\n", r.RMSE)
	fmt.Fprintf(stdout, "MAE: %.2f\n", r.MAE)
	return nil
}

func main() {
	_ = log.SetupLogger("info")

	err := errors.SafeExecute("precision", func() error {
		return run(os.Args[1:], os.Stdout, os.Stderr)
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.GetLogger().Error("Evaluation failed", err)
		os.Exit(1)
	}
}
