package statistics

import (
	"fmt"
	"math/rand"
)

//go:generate go tool mockgen -source=selection.go -destination=pivot_mock_test.go -package=statistics

// PivotSource picks pivot offsets for quickselect. *rand.Rand satisfies it.
type PivotSource interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) int
}

// Selector finds order statistics of a slice by randomized quickselect,
// reordering the slice in place instead of sorting it.
type Selector struct {
	pivots PivotSource
}

// NewSelector returns a Selector drawing pivots from src.
func NewSelector(src PivotSource) *Selector {
	return &Selector{pivots: src}
}

// NewSelectorWithSeed returns a Selector backed by a seeded *rand.Rand.
// A negative seed uses a non-deterministic source.
func NewSelectorWithSeed(seed int64) *Selector {
	if seed < 0 {
		seed = rand.Int63()
	}
	return NewSelector(rand.New(rand.NewSource(seed)))
}

// FindNth returns the value of sorted rank target (0-indexed) among
// values[start:stop]. The range is partially reordered so that, on return,
// values[target] holds the result, nothing in [start, target) is greater
// and nothing in (target, stop) is smaller.
//
// FindNth panics unless 0 <= start <= target < stop <= len(values).
func (s *Selector) FindNth(values []float64, start, stop, target int) float64 {
	if start < 0 || stop > len(values) || target < start || target >= stop {
		panic(fmt.Sprintf("statistics: FindNth target %d outside range [%d, %d) of %d values",
			target, start, stop, len(values)))
	}

	for {
		pivot := start + s.pivots.Intn(stop-start)
		pivotVal := values[pivot]

		// Lomuto: park the pivot at the tail, sweep smaller values forward.
		last := stop - 1
		values[pivot], values[last] = values[last], values[pivot]

		i := start
		for j := start; j < last; j++ {
			if values[j] < pivotVal {
				values[i], values[j] = values[j], values[i]
				i++
			}
		}
		values[last], values[i] = values[i], values[last]

		switch {
		case i == target:
			return pivotVal
		case i < target:
			start = i + 1
		default:
			stop = i
		}
	}
}

// Median returns the median of values, averaging the two middle ranks when
// len(values) is even. values is reordered in place. Median panics on an
// empty slice.
func (s *Selector) Median(values []float64) float64 {
	n := len(values)
	if n%2 == 1 {
		return s.FindNth(values, 0, n, n/2)
	}
	low := s.FindNth(values, 0, n, n/2-1)
	high := s.FindNth(values, 0, n, n/2)
	return (low + high) / 2
}

// FindNth is like Selector.FindNth with a non-deterministic pivot source,
// selecting over the whole slice.
func FindNth(values []float64, target int) float64 {
	return NewSelectorWithSeed(-1).FindNth(values, 0, len(values), target)
}

// Median is like Selector.Median with a non-deterministic pivot source.
func Median(values []float64) float64 {
	return NewSelectorWithSeed(-1).Median(values)
}
