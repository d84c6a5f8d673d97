// Command predict estimates the price of a car from its mileage using a
// model written by train.
//
// Usage:
//
//	predict [-model data/model.json] <mileage>
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/linear"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
)

const usage = "This program takes the mileage of the car to estimate its price"

func parseMileage(arg string) (float64, error) {
	mileage, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.NewValidationError("mileage", "must be a number", arg)
	}
	if mileage < 0 || math.IsNaN(mileage) || math.IsInf(mileage, 0) {
		return 0, errors.NewValidationError("mileage", "must be a non-negative finite number", arg)
	}
	return mileage, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modelPath := fs.String("model", "data/model.json", "Model written by train")
	logLevel := fs.String("log-level", "info", "Log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := log.SetupLogger(*logLevel); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return errors.Newf("expected exactly one mileage argument, got %d", fs.NArg())
	}

	mileage, err := parseMileage(fs.Arg(0))
	if err != nil {
		return err
	}

	m, err := model.Load(*modelPath)
	if err != nil {
		return err
	}
	price, err := linear.Predict(mileage, m)
	if err != nil {
		return err
	}

	log.GetLogger().Debug("Price estimated",
		log.OperationKey, log.OperationPredict,
		log.SourceKey, *modelPath,
	)
	fmt.Fprintf(stdout, "The estimated price for %s is %s\n",
		strconv.FormatFloat(mileage, 'f', -1, 64),
		strconv.FormatFloat(price, 'f', -1, 64),
	)
	return nil
}

func main() {
	_ = log.SetupLogger("info")

	err := errors.SafeExecute("predict", func() error {
		return run(os.Args[1:], os.Stdout, os.Stderr)
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.GetLogger().Error("Prediction failed", err)
		os.Exit(1)
	}
}
