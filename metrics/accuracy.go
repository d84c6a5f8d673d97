// Package metrics scores a trained model against a dataset.
package metrics

import (
	"github.com/YuminosukeSato/ftlinreg/core/model"
	"github.com/YuminosukeSato/ftlinreg/dataset"
	"github.com/YuminosukeSato/ftlinreg/linear"
	"github.com/YuminosukeSato/ftlinreg/pkg/errors"
	"github.com/YuminosukeSato/ftlinreg/pkg/log"
)

// AccuracySeed is the starting value of the accuracy recurrence.
const AccuracySeed = 100.0

// Accuracy scores m against ds as a running average of per-sample
// prediction/target ratios, expressed in percent:
//
//	acc = 100
//	for each sample: acc = (acc + predict(x)*100/target) / 2
//
// The recurrence weights later samples more heavily, so the result depends
// on the order of ds. It is not the arithmetic mean of the ratios and does
// not match any standard metric. An empty dataset yields the seed. A ratio
// that overflows is reported as NumericalInstabilityError.
func Accuracy(ds dataset.Dataset, m model.Model) (float64, error) {
	acc := AccuracySeed
	for i, s := range ds {
		if s.Target == 0 {
			return 0, errors.NewInvalidTargetError("Accuracy", i, s.Target)
		}
		pred, err := linear.Predict(s.Feature, m)
		if err != nil {
			return 0, err
		}
		acc = (acc + pred*100/s.Target) / 2
		if err := errors.CheckScalar("Accuracy", acc, i); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// Report bundles the accuracy figure with conventional regression metrics.
type Report struct {
	Accuracy float64
	MSE      float64
	RMSE     float64
	MAE      float64
	MAPE     float64
	R2Score  float64
	Samples  int
}

// Evaluate computes a Report for m over ds. It needs at least one sample and
// targets that are not all equal, since R² is undefined otherwise.
func Evaluate(ds dataset.Dataset, m model.Model) (Report, error) {
	if ds.Len() == 0 {
		return Report{}, errors.NewUndefinedStatisticsError("Evaluate", 0)
	}

	acc, err := Accuracy(ds, m)
	if err != nil {
		return Report{}, err
	}

	yTrue := ds.Targets()
	yPred, err := linear.PredictAll(ds.Features(), m)
	if err != nil {
		return Report{}, err
	}

	r := Report{Accuracy: acc, Samples: ds.Len()}
	if r.MSE, err = MSE(yTrue, yPred); err != nil {
		return Report{}, err
	}
	if r.RMSE, err = RMSE(yTrue, yPred); err != nil {
		return Report{}, err
	}
	if r.MAE, err = MAE(yTrue, yPred); err != nil {
		return Report{}, err
	}
	if r.MAPE, err = MAPE(yTrue, yPred); err != nil {
		return Report{}, err
	}
	if r.R2Score, err = R2Score(yTrue, yPred); err != nil {
		return Report{}, err
	}

	log.GetLogger().Debug("Model evaluated",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, r.Samples,
		log.AccuracyKey, r.Accuracy,
		log.R2ScoreKey, r.R2Score,
		log.LossKey, r.MSE,
	)
	return r, nil
}
