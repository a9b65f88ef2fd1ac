package statistics

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

var (
	// ErrEmptyDataset is returned when a Dataset is built from no samples.
	ErrEmptyDataset = errors.New("no samples to summarize")

	// ErrNonFiniteSample is returned when a sample is NaN or infinite.
	ErrNonFiniteSample = errors.New("sample is not a finite number")
)

// Dataset is an immutable summary of a sample sequence. It owns the
// samples it was built from; the only reordering happens inside NewDataset.
type Dataset struct {
	samples  []float64
	min      float64
	max      float64
	mean     float64
	variance float64
	median   float64
}

// NewDataset builds a Dataset from samples, taking ownership of the slice.
// The caller must not use samples afterwards: median selection reorders it.
func NewDataset(samples []float64) (*Dataset, error) {
	return NewDatasetWithSeed(samples, -1)
}

// NewDatasetWithSeed is like NewDataset but seeds the median selector.
// A negative seed uses a non-deterministic source.
func NewDatasetWithSeed(samples []float64, seed int64) (*Dataset, error) {
	return newDataset(samples, NewSelectorWithSeed(seed))
}

func newDataset(samples []float64, sel *Selector) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}

	var agg Aggregator
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("sample %d (%v): %w", i, v, ErrNonFiniteSample)
		}
		agg.Add(v)
	}

	median := sel.Median(samples)

	return &Dataset{
		samples:  samples,
		min:      agg.Min(),
		max:      agg.Max(),
		mean:     agg.Mean(),
		variance: agg.Variance(),
		median:   median,
	}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.samples) }

// Min returns the smallest sample.
func (d *Dataset) Min() float64 { return d.min }

// Max returns the largest sample.
func (d *Dataset) Max() float64 { return d.max }

// Mean returns the arithmetic mean of the samples.
func (d *Dataset) Mean() float64 { return d.mean }

// Variance returns the population variance of the samples.
func (d *Dataset) Variance() float64 { return d.variance }

// StdDev returns the population standard deviation of the samples.
func (d *Dataset) StdDev() float64 { return math.Sqrt(d.variance) }

// Median returns the median, selected once when the Dataset was built.
// An even count averages the two middle samples.
func (d *Dataset) Median() float64 { return d.median }

// Samples returns a copy of the samples, in the order left behind by
// median selection.
func (d *Dataset) Samples() []float64 {
	return slices.Clone(d.samples)
}

// All iterates over the samples without copying them.
func (d *Dataset) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range d.samples {
			if !yield(v) {
				return
			}
		}
	}
}
