// Package ftlinreg estimates the price of a car from its mileage with a
// one-feature linear regression trained by batch gradient descent.
//
// The mileage is standardized with the mean and population standard
// deviation of the training data, and the model learns
//
//	price = theta0 + theta1 * (km - mean) / std
//
// with a fixed number of simultaneous gradient steps. The statistics are
// stored next to the parameters so that a saved model can be applied to
// raw mileages later.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/ftlinreg/dataset"
//	    "github.com/YuminosukeSato/ftlinreg/linear"
//	    "github.com/YuminosukeSato/ftlinreg/metrics"
//	)
//
//	func main() {
//	    ds, err := dataset.Load("data/data.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    m, err := linear.Train(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    price, err := linear.Predict(50000, m)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    acc, err := metrics.Accuracy(ds, m)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("price %.2f, accuracy %.2f%%\n", price, acc)
//	}
//
// # Packages
//
//   - core/model: trained parameters and their JSON persistence
//   - core/parallel: chunked parallel reductions for large datasets
//   - dataset: samples and the CSV loader
//   - preprocessing: feature standardization
//   - linear: training and prediction
//   - metrics: the running-average accuracy and standard regression metrics
//   - plot: PNG and HTML charts of a fit
//   - pkg/errors, pkg/log: error taxonomy and structured logging
//
// # Commands
//
// cmd/train fits and saves a model, cmd/predict estimates a single price and
// cmd/precision reports how well a saved model fits a dataset.
//
// # Performance
//
// Per-epoch gradient sums run sequentially up to 1000 samples and are split
// across CPU cores above that.
package ftlinreg
