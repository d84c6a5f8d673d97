// Package dataset holds the (feature, target) samples used to train and
// evaluate a model, and reads them from CSV.
package dataset

// Sample is one row: a raw feature (mileage) and its target (price).
type Sample struct {
	Feature float64
	Target  float64
}

// Dataset is an ordered sequence of samples. Order is preserved from the
// source so that evaluation, which depends on it, is reproducible.
type Dataset []Sample

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d)
}

// Features returns the feature column.
func (d Dataset) Features() []float64 {
	out := make([]float64, len(d))
	for i, s := range d {
		out[i] = s.Feature
	}
	return out
}

// Targets returns the target column.
func (d Dataset) Targets() []float64 {
	out := make([]float64, len(d))
	for i, s := range d {
		out[i] = s.Target
	}
	return out
}

// FeatureRange returns the smallest and largest feature. ok is false for an
// empty dataset.
func (d Dataset) FeatureRange() (lo, hi float64, ok bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	lo, hi = d[0].Feature, d[0].Feature
	for _, s := range d[1:] {
		lo = min(lo, s.Feature)
		hi = max(hi, s.Feature)
	}
	return lo, hi, true
}

// TargetRange returns the smallest and largest target.
func (d Dataset) TargetRange() (lo, hi float64, ok bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	lo, hi = d[0].Target, d[0].Target
	for _, s := range d[1:] {
		lo = min(lo, s.Target)
		hi = max(hi, s.Target)
	}
	return lo, hi, true
}
