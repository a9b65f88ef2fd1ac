package reporting

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/microsoft/dhacks/internal/histogram"
	"github.com/microsoft/dhacks/internal/statistics"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}

// Report is the JSON form of a dataset summary.
type Report struct {
	NumSamples int              `json:"num_samples"`
	Min        float64          `json:"min"`
	Max        float64          `json:"max"`
	Mean       float64          `json:"mean"`
	Variance   float64          `json:"variance"`
	StdDev     float64          `json:"stddev"`
	Median     float64          `json:"median"`
	Histogram  *HistogramReport `json:"histogram,omitempty"`
}

// HistogramReport is the JSON form of a histogram.
type HistogramReport struct {
	SamplesPerBlock int            `json:"samples_per_block"`
	Buckets         []BucketReport `json:"buckets"`
}

// BucketReport describes one histogram bucket.
type BucketReport struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// NewReport builds the JSON form of ds and, when h is non-nil, its histogram.
func NewReport(ds *statistics.Dataset, h *histogram.Histogram) *Report {
	r := &Report{
		NumSamples: ds.Len(),
		Min:        ds.Min(),
		Max:        ds.Max(),
		Mean:       ds.Mean(),
		Variance:   ds.Variance(),
		StdDev:     ds.StdDev(),
		Median:     ds.Median(),
	}
	if h == nil {
		return r
	}

	b := h.Buckets()
	hr := &HistogramReport{
		SamplesPerBlock: h.SamplesPerBlock(),
		Buckets:         make([]BucketReport, b.Len()),
	}
	for i := range hr.Buckets {
		low, high := b.Range(i)
		hr.Buckets[i] = BucketReport{Low: low, High: high, Count: b.Count(i)}
	}
	r.Histogram = hr
	return r
}

// WriteSummary writes the two-line text summary of ds.
func WriteSummary(w io.Writer, ds *statistics.Dataset) error {
	_, err := fmt.Fprintf(w, "# NumSamples = %d; Min = %.2f; Max = %.2f\n"+
		"# Mean = %.6f; Variance = %.6f; SD = %.6f; Median = %.6f\n",
		ds.Len(), ds.Min(), ds.Max(),
		ds.Mean(), ds.Variance(), ds.StdDev(), ds.Median())
	return err
}

// WriteJSON writes the summary of ds, plus h when non-nil, as indented JSON.
func WriteJSON(w io.Writer, ds *statistics.Dataset, h *histogram.Histogram) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(ds, h))
}

// Write renders ds and the optional histogram h in the given format.
func Write(w io.Writer, format string, ds *statistics.Dataset, h *histogram.Histogram) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, ds, h)
	case FormatText:
		if err := WriteSummary(w, ds); err != nil {
			return err
		}
		if h != nil {
			return h.Render(w)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
