package distribution

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// DefaultCount is the number of samples drawn when none is requested.
const DefaultCount = 1000

// ErrInvalidSpec is returned by Validate for parameters no distribution can be drawn from.
var ErrInvalidSpec = errors.New("distribution: invalid parameters")

// Kind selects the sampling algorithm and parameter set of a Spec.
type Kind int

const (
	Uniform Kind = iota
	Poisson
	Normal
)

func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Poisson:
		return "poisson"
	case Normal:
		return "normal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Spec describes one distribution to sample from. Only the fields of the
// active Kind are meaningful; Low and High are carried by every kind.
type Spec struct {
	Kind   Kind    `json:"kind"`
	Low    int64   `json:"low"`
	High   int64   `json:"high"`
	Lambda float64 `json:"lambda,omitempty"`
	Mean   float64 `json:"mean,omitempty"`
	Sigma  float64 `json:"sigma,omitempty"`
	Count  int     `json:"count"`
}

// FromRange creates a uniform Spec over the inclusive interval [low, high].
func FromRange(low, high int64, count ...int) Spec {
	return Spec{
		Kind:  Uniform,
		Low:   low,
		High:  high,
		Count: pickCount(count),
	}
}

// FromRangeAndLambda creates a Poisson Spec with rate lambda.
func FromRangeAndLambda(low, high int64, lambda float64, count ...int) Spec {
	return Spec{
		Kind:   Poisson,
		Low:    low,
		High:   high,
		Lambda: lambda,
		Count:  pickCount(count),
	}
}

// FromRangeAndNormal creates a normal Spec with the given mean and standard deviation.
func FromRangeAndNormal(low, high int64, mean, sigma float64, count ...int) Spec {
	return Spec{
		Kind:  Normal,
		Low:   low,
		High:  high,
		Mean:  mean,
		Sigma: sigma,
		Count: pickCount(count),
	}
}

func pickCount(count []int) int {
	if len(count) == 0 || count[0] <= 0 {
		return DefaultCount
	}
	return count[0]
}

// ExpectedValue returns the theoretical mean of the distribution. It depends
// only on the parameters, never on drawn samples.
func (s Spec) ExpectedValue() float64 {
	switch s.Kind {
	case Uniform:
		return (float64(s.Low) + float64(s.High)) / 2.0
	case Poisson:
		return s.Lambda
	default:
		return s.Mean
	}
}

// Validate checks the parameters strictly. Generate does not require it:
// unchecked specs are sampled permissively. The count check only matters for
// Spec literals, since the factories replace a non-positive count.
func (s Spec) Validate() error {
	if s.Count <= 0 {
		return errors.Wrapf(ErrInvalidSpec, "sample count must be positive, got %d", s.Count)
	}
	switch s.Kind {
	case Uniform:
		if s.Low > s.High {
			return errors.Wrapf(ErrInvalidSpec, "low must be less than or equal to high, got [%d, %d]", s.Low, s.High)
		}
	case Poisson:
		if math.IsNaN(s.Lambda) || math.IsInf(s.Lambda, 0) {
			return errors.Wrap(ErrInvalidSpec, "lambda must be finite")
		}
		if s.Lambda < 0 {
			return errors.Wrapf(ErrInvalidSpec, "lambda must be non-negative, got %g", s.Lambda)
		}
	case Normal:
		if math.IsNaN(s.Mean) || math.IsInf(s.Mean, 0) || math.IsNaN(s.Sigma) || math.IsInf(s.Sigma, 0) {
			return errors.Wrap(ErrInvalidSpec, "mean and sigma must be finite")
		}
		if s.Sigma < 0 {
			return errors.Wrapf(ErrInvalidSpec, "sigma must be non-negative, got %g", s.Sigma)
		}
	default:
		return errors.Wrapf(ErrInvalidSpec, "unknown kind %v", s.Kind)
	}
	return nil
}
