package statistics

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// bigVariance computes the population variance of values at high precision.
func bigVariance(values []float64) float64 {
	const prec = 256
	n := new(big.Float).SetPrec(prec).SetInt64(int64(len(values)))

	sum := new(big.Float).SetPrec(prec)
	for _, v := range values {
		sum.Add(sum, new(big.Float).SetPrec(prec).SetFloat64(v))
	}
	mean := new(big.Float).SetPrec(prec).Quo(sum, n)

	m2 := new(big.Float).SetPrec(prec)
	for _, v := range values {
		d := new(big.Float).SetPrec(prec).SetFloat64(v)
		d.Sub(d, mean)
		m2.Add(m2, d.Mul(d, d))
	}
	f, _ := m2.Quo(m2, n).Float64()
	return f
}

func TestAggregator_ZeroValue(t *testing.T) {
	var agg Aggregator
	assert.Equal(t, 0, agg.Count())
	assert.Equal(t, 0.0, agg.Mean())
	assert.Equal(t, 0.0, agg.Variance())
	assert.Equal(t, 0.0, agg.StdDev())
}

func TestAggregator(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		mean     float64
		variance float64
		min, max float64
	}{
		{"single", []float64{5}, 5, 0, 5, 5},
		{"one_to_five", []float64{1, 2, 3, 4, 5}, 3, 2, 1, 5},
		{"uniform", []float64{3, 3, 3}, 3, 0, 3, 3},
		{"simple", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, 4, 2, 9},
		{"negative", []float64{-2, 0, 2}, 0, 8.0 / 3, -2, 2},
		{"all_negative", []float64{-5, -7, -3}, -5, 8.0 / 3, -7, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var agg Aggregator
			for _, v := range tt.input {
				agg.Add(v)
			}
			require.Equal(t, len(tt.input), agg.Count())
			require.True(t, approxEqual(agg.Mean(), tt.mean), "mean = %f, want %f", agg.Mean(), tt.mean)
			require.True(t, approxEqual(agg.Variance(), tt.variance), "variance = %f, want %f", agg.Variance(), tt.variance)
			require.True(t, approxEqual(agg.StdDev(), math.Sqrt(tt.variance)))
			require.Equal(t, tt.min, agg.Min())
			require.Equal(t, tt.max, agg.Max())
		})
	}
}

func TestAggregator_PopulationNotSampleVariance(t *testing.T) {
	var agg Aggregator
	agg.Add(1)
	agg.Add(3)
	// Divisor is n: ((1-2)^2 + (3-2)^2) / 2.
	require.Equal(t, 1.0, agg.Variance())
}

func TestAggregator_MatchesStreamStats(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]float64, 5000)
	for i := range values {
		values[i] = rng.NormFloat64()*250 + 1e4
	}

	var agg Aggregator
	var ref stats.StreamStats
	for _, v := range values {
		agg.Add(v)
		ref.Add(v)
	}

	n := float64(len(values))
	require.InDelta(t, ref.Mean(), agg.Mean(), 1e-9)
	// StreamStats reports the sample variance; rescale to the population form.
	require.InEpsilon(t, ref.Variance()*(n-1)/n, agg.Variance(), 1e-12)
	require.Equal(t, ref.Min, agg.Min())
	require.Equal(t, ref.Max, agg.Max())
}

func TestAggregator_NoCatastrophicCancellation(t *testing.T) {
	const copies = 10000
	base := make([]float64, copies)
	for i := range base {
		base[i] = 1e8
	}

	tests := []struct {
		name   string
		values []float64
	}{
		{"outlier_last", append(append([]float64{}, base...), 1e8+1)},
		{"outlier_first", append([]float64{1e8 + 1}, base...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var agg Aggregator
			for _, v := range tt.values {
				agg.Add(v)
			}

			want := bigVariance(tt.values)
			require.Greater(t, want, 0.0)
			require.InEpsilon(t, want, agg.Variance(), 1e-3)
		})
	}
}

func TestAggregator_VarianceNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		var agg Aggregator
		offset := rng.Float64() * 1e9
		n := 1 + rng.Intn(500)
		for i := 0; i < n; i++ {
			agg.Add(offset + rng.Float64())
		}
		require.GreaterOrEqual(t, agg.Variance(), 0.0)
	}
}
