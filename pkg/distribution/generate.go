package distribution

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a PCG source. A zero seed is replaced by process entropy.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// Generate draws s.Count samples from the distribution described by s.
// Poisson and normal draws are truncated toward zero.
func Generate(s Spec, src rand.Source) []int64 {
	n := s.Count
	if n <= 0 {
		n = DefaultCount
	}
	samples := make([]int64, n)

	switch s.Kind {
	case Uniform:
		rnd := rand.New(src)
		lo, hi := s.Low, s.High
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := range samples {
			samples[i] = uniformInt(rnd, lo, hi)
		}
	case Poisson:
		if !(s.Lambda > 0) || math.IsInf(s.Lambda, 1) {
			// degenerate at zero
			return samples
		}
		dist := distuv.Poisson{Lambda: s.Lambda, Src: src}
		for i := range samples {
			samples[i] = int64(dist.Rand())
		}
	default:
		if !finite(s.Mean) || !finite(s.Sigma) {
			return samples
		}
		dist := distuv.Normal{Mu: s.Mean, Sigma: s.Sigma, Src: src}
		for i := range samples {
			samples[i] = int64(dist.Rand())
		}
	}

	return samples
}

// uniformInt draws from [lo, hi]; lo <= hi.
func uniformInt(rnd *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi-lo) + 1
	if span == 0 {
		return int64(rnd.Uint64())
	}
	return lo + int64(rnd.Uint64N(span))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
