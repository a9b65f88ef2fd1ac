package statistics

import "math"

// Aggregator accumulates count, min, max, mean and variance of a sequence
// in a single pass using Welford's method. The zero value is ready to use.
type Aggregator struct {
	count    int
	mean     float64
	m2       float64
	min, max float64
}

// Add folds v into the running statistics.
func (a *Aggregator) Add(v float64) {
	if a.count == 0 {
		a.min, a.max = v, v
	} else {
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
	}

	a.count++
	delta := v - a.mean
	a.mean += delta / float64(a.count)
	delta2 := v - a.mean
	a.m2 += delta * delta2
}

// Count returns the number of values added so far.
func (a *Aggregator) Count() int {
	return a.count
}

// Min returns the smallest value added. Returns 0 when empty.
func (a *Aggregator) Min() float64 {
	return a.min
}

// Max returns the largest value added. Returns 0 when empty.
func (a *Aggregator) Max() float64 {
	return a.max
}

// Mean returns the running arithmetic mean. Returns 0 when empty.
func (a *Aggregator) Mean() float64 {
	return a.mean
}

// Variance returns the population variance (divisor n, not n-1).
// Returns 0 when empty.
func (a *Aggregator) Variance() float64 {
	if a.count == 0 {
		return 0
	}
	return a.m2 / float64(a.count)
}

// StdDev returns the population standard deviation.
func (a *Aggregator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}
