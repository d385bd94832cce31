package distribution

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const seed = 42

func toFloats(samples []int64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}
	return out
}

func TestGenerateUniformRange(t *testing.T) {
	for _, s := range []Spec{
		FromRange(0, 10, 5),
		FromRange(-3, 3, 10000),
		FromRange(7, 7, 50),
	} {
		samples := Generate(s, NewSource(seed))
		require.Len(t, samples, s.Count)
		for _, v := range samples {
			require.GreaterOrEqual(t, v, s.Low)
			require.LessOrEqual(t, v, s.High)
		}
	}
}

func TestGenerateUniformCoversBounds(t *testing.T) {
	x := toFloats(Generate(FromRange(0, 4, 10000), NewSource(seed)))
	require.Equal(t, 0.0, floats.Min(x))
	require.Equal(t, 4.0, floats.Max(x))
}

func TestGenerateUniformReversed(t *testing.T) {
	samples := Generate(FromRange(10, 0, 1000), NewSource(seed))
	require.Len(t, samples, 1000)
	for _, v := range samples {
		require.True(t, v >= 0 && v <= 10, "sample %d outside [0, 10]", v)
	}
}

func TestGenerateUniformFullRange(t *testing.T) {
	samples := Generate(FromRange(math.MinInt64, math.MaxInt64, 10), NewSource(seed))
	require.Len(t, samples, 10)
}

func TestGeneratePoisson(t *testing.T) {
	s := FromRangeAndLambda(0, 0, 3, 1000)
	samples := Generate(s, NewSource(seed))
	require.Len(t, samples, 1000)
	for _, v := range samples {
		require.GreaterOrEqual(t, v, int64(0))
	}
	require.InDelta(t, 3.0, stat.Mean(toFloats(samples), nil), 0.3)
}

func TestGeneratePoissonZeroLambda(t *testing.T) {
	for _, lambda := range []float64{0, -2} {
		samples := Generate(FromRangeAndLambda(0, 0, lambda, 20), NewSource(seed))
		require.Len(t, samples, 20)
		for _, v := range samples {
			require.Zero(t, v)
		}
	}
}

func TestGenerateNonFinite(t *testing.T) {
	specs := []Spec{
		FromRangeAndLambda(0, 0, math.NaN(), 5),
		FromRangeAndLambda(0, 0, math.Inf(1), 5),
		FromRangeAndNormal(0, 0, math.NaN(), 1, 5),
		FromRangeAndNormal(0, 0, math.Inf(-1), 1, 5),
		FromRangeAndNormal(0, 0, 0, math.Inf(1), 5),
	}
	for _, s := range specs {
		done := make(chan []int64, 1)
		go func() { done <- Generate(s, NewSource(seed)) }()

		select {
		case samples := <-done:
			require.Equal(t, make([]int64, 5), samples, "spec %+v", s)
		case <-time.After(5 * time.Second):
			t.Fatalf("Generate(%+v) did not return", s)
		}
	}
}

func TestGenerateNormal(t *testing.T) {
	s := FromRangeAndNormal(0, 0, 100, 10, 20000)
	samples := Generate(s, NewSource(seed))
	require.Len(t, samples, 20000)
	// Truncation biases the mean by less than one.
	require.InDelta(t, 100.0, stat.Mean(toFloats(samples), nil), 1.0)
}

func TestGenerateNormalTruncates(t *testing.T) {
	samples := Generate(FromRangeAndNormal(0, 0, 2.9, 0, 10), NewSource(seed))
	for _, v := range samples {
		require.EqualValues(t, 2, v)
	}
	samples = Generate(FromRangeAndNormal(0, 0, -2.9, 0, 10), NewSource(seed))
	for _, v := range samples {
		require.EqualValues(t, -2, v)
	}
}

func TestGenerateDeterministicSeed(t *testing.T) {
	s := FromRangeAndNormal(0, 0, 0, 5, 100)
	require.Equal(t, Generate(s, NewSource(seed)), Generate(s, NewSource(seed)))
}

func TestGenerateCount(t *testing.T) {
	for _, s := range []Spec{
		FromRange(0, 1, 1),
		FromRangeAndLambda(0, 0, 1.5, 333),
		FromRangeAndNormal(0, 0, 0, 1, 77),
		{Kind: Uniform, Count: 0},
	} {
		want := s.Count
		if want <= 0 {
			want = DefaultCount
		}
		require.Len(t, Generate(s, NewSource(0)), want)
	}
}
