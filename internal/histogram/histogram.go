// Package histogram buckets a dataset into equal-width bins and renders
// the result as a fixed-width text bar chart.
package histogram

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/microsoft/dhacks/internal/statistics"
)

// BarWidth is the display width, in blocks, of the fullest bucket's bar.
const BarWidth = 75

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 10

// Block is the character a bar is drawn with.
const Block = "∎"

// ErrInvalidBucketCount is returned for a bucket count below one.
var ErrInvalidBucketCount = errors.New("bucket count must be at least 1")

// Buckets counts samples falling into equal-width intervals of [min, max].
// Every interval is half-open except the last, which includes max.
type Buckets struct {
	counts []int
	min    float64
	max    float64
	width  float64

	// scaled is set when max-min overflows float64. Bucket arithmetic then
	// divides before subtracting so every intermediate stays finite.
	scaled bool
}

func newBuckets(n int, min, max float64) *Buckets {
	b := &Buckets{
		counts: make([]int, n),
		min:    min,
		max:    max,
		width:  (max - min) / float64(n),
	}
	if math.IsInf(max-min, 0) {
		b.scaled = true
		b.width = max/float64(n) - min/float64(n)
	}
	return b
}

func (b *Buckets) insert(v float64) {
	b.counts[b.index(v)]++
}

func (b *Buckets) index(v float64) int {
	last := len(b.counts) - 1
	if v == b.max {
		return last
	}
	var x float64
	if b.scaled {
		x = v/b.width - b.min/b.width
	} else {
		x = (v - b.min) / b.width
	}
	i := int(math.Floor(x))
	// Rounding can push values near max one past the end.
	return min(max(i, 0), last)
}

// Len returns the number of buckets.
func (b *Buckets) Len() int { return len(b.counts) }

// Count returns the number of samples in bucket i.
func (b *Buckets) Count(i int) int { return b.counts[i] }

// Counts returns a copy of all bucket counts.
func (b *Buckets) Counts() []int { return slices.Clone(b.counts) }

// Width returns the width of each bucket.
func (b *Buckets) Width() float64 { return b.width }

// Range returns the bounds of bucket i.
func (b *Buckets) Range(i int) (low, high float64) {
	if b.scaled {
		return b.boundary(i), b.boundary(i + 1)
	}
	low = b.min + b.width*float64(i)
	return low, low + b.width
}

// boundary interpolates the i-th bucket edge without forming max-min.
func (b *Buckets) boundary(i int) float64 {
	n := float64(len(b.counts))
	return b.min/n*(n-float64(i)) + b.max/n*float64(i)
}

// Histogram is a bucketed view over a dataset.
type Histogram struct {
	buckets    *Buckets
	numSamples int
}

// New buckets every sample of ds into numBuckets equal-width bins.
func New(ds *statistics.Dataset, numBuckets int) (*Histogram, error) {
	if numBuckets < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBucketCount, numBuckets)
	}

	b := newBuckets(numBuckets, ds.Min(), ds.Max())
	for v := range ds.All() {
		b.insert(v)
	}
	return &Histogram{buckets: b, numSamples: ds.Len()}, nil
}

// Buckets returns the underlying bucket counts.
func (h *Histogram) Buckets() *Buckets { return h.buckets }

// NumSamples returns the number of samples bucketed.
func (h *Histogram) NumSamples() int { return h.numSamples }

// SamplesPerBlock returns how many samples one block of a bar stands for.
// Bars are scaled so the fullest bucket stays within BarWidth; when no
// bucket exceeds BarWidth each sample gets its own block and the result is 1.
func (h *Histogram) SamplesPerBlock() int {
	spb := slices.Max(h.buckets.counts) / BarWidth
	if spb == 0 {
		return 1
	}
	return spb
}

// Bar returns the rendered bar for bucket i.
func (h *Histogram) Bar(i int) string {
	return strings.Repeat(Block, h.buckets.counts[i]/h.SamplesPerBlock())
}

// Render writes the scale header followed by one line per bucket.
func (h *Histogram) Render(w io.Writer) error {
	spb := h.SamplesPerBlock()
	if _, err := fmt.Fprintf(w, "# each %s represents a count of %d\n", Block, spb); err != nil {
		return err
	}

	countWidth := len(strconv.Itoa(h.numSamples)) + 1
	for i := range h.buckets.counts {
		low, high := h.buckets.Range(i)
		if _, err := fmt.Fprintf(w, "%10.4f - %10.4f [%*d]: %s\n", low, high, countWidth, h.buckets.counts[i], h.Bar(i)); err != nil {
			return err
		}
	}
	return nil
}
