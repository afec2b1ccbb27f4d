package benchcmp

import (
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/TomTonic/numrand"
)

type RTcomparisonResult struct {
	RelativeSpeedupSampleAvsSampleB float64
	Confidence                      float64
}

const MinimumDataPoints uint64 = 11

// CompareSamples compares two samples of runtimes (in float64, e.g., ns per draw)
// and computes the confidence that sample A is faster than sample B by at least
// the specified relative speedups. The resamples parameter controls the number of bootstrap
// repetitions (higher values yield more precise results of the statistical tests but take longer to compute).
// It returns a slice of RTcomparisonResult, each containing one of the given relative speedups and
// the corresponding confidence level calculated by the statistical test.
// If there are not enough data points in either sample, an error is returned.
func CompareSamples(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, resamples uint64) (result []RTcomparisonResult, err error) {
	if uint64(len(sampleA)) < MinimumDataPoints || uint64(len(sampleB)) < MinimumDataPoints {
		return []RTcomparisonResult{}, errors.Errorf("not enough data points: need at least %d runtimes for each of A and B", MinimumDataPoints)
	}
	if len(relativeSpeedupsToTest) == 0 {
		relativeSpeedupsToTest = []float64{0.0}
	}

	speedups := slices.Clone(relativeSpeedupsToTest)
	slices.Sort(speedups)

	conf := BootstrapConfidence(sampleA, sampleB, speedups, resamples, 0)

	for _, t := range speedups {
		result = append(result, RTcomparisonResult{
			RelativeSpeedupSampleAvsSampleB: t,
			Confidence:                      conf[t],
		})
	}
	return result, nil
}

// F2T converts a "times faster" factor into the relative speedup threshold used by
// CompareSamples and BootstrapConfidence: 1 - 1/timesFaster. Non-positive and NaN factors
// yield NaN.
func F2T(timesFaster float64) float64 {
	if math.IsNaN(timesFaster) || timesFaster <= 0 {
		return math.NaN()
	}
	return 1.0 - 1.0/timesFaster
}

// newResampler returns the generator driving the bootstrap. A seed of zero draws the PCG32
// state from the operating system, any other seed is reproducible.
func newResampler(prngSeed uint64) numrand.Engine {
	if prngSeed == 0 {
		rng, err := numrand.NewPCG32FromSeedSequence(numrand.NewEntropySeedSequence(16))
		if err != nil {
			panic(err)
		}
		return rng
	}
	rng, err := numrand.NewPCG32(prngSeed, 0)
	if err != nil {
		panic(err) // stream 0 is always valid
	}
	return rng
}

// bootstrapSample returns a bootstrap sample (sampling with replacement) drawn from xs.
// The returned slice has the same length as xs and is populated by selecting uniformly
// distributed indices into xs with rng.NextBoundedU32, so no modulo bias occurs.
// The input slice is not modified.
func bootstrapSample(xs []float64, rng numrand.Engine) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	if n == 0 {
		return sample
	}
	for i := range n {
		sample[i] = xs[rng.NextBoundedU32(uint32(n-1))]
	}
	return sample
}

// BootstrapConfidence estimates the probability (confidence) that the relative speedup of A over B
// meets or exceeds each requested threshold using bootstrap resampling.
//
// The function performs `reps` bootstrap replicates. In each replicate it draws a bootstrap sample
// from A and from B (via bootstrapSample), computes their medians and evaluates the relative speedup as:
//
//	delta = 1 - median(A_sample)/median(B_sample)
//
// A positive delta indicates A is faster than B by that relative amount. For every threshold t in
// `thresholds` the function increments a counter when delta >= t. After all replicates it returns a map
// that maps each threshold to the estimated confidence (fraction of replicates meeting delta >= t).
//
// Numerical and edge-case behavior:
//   - If `reps` is zero the function returns a map with each threshold mapped to math.NaN().
//   - If either sample median is NaN (e.g. for an empty sample), the replicate produces
//     delta = NaN and that replicate does not count as meeting any threshold.
//   - If |median(B)| is below a scale-aware epsilon, epsilon = max(|median(B)| * 1e-12,
//     SmallestNonzeroFloat64), the epsilon is used as the denominator.
//   - If both medians are zero (or both are equal/infinite in the same direction), the replicate sets
//     delta = 0.0 (no relative difference).
//
// All replicates share one PCG32 seeded with prngSeed. Use 0 for a non-deterministic seed, or
// a specific non-zero seed to reproduce results across runs.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, prngSeed uint64) (confidenceForThreshold map[float64]float64) {
	confidenceForThreshold = make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	rng := newResampler(prngSeed)
	counts := make(map[float64]uint64, len(thresholds))

	for range reps {
		medA := QuickMedian(bootstrapSample(A, rng))
		medB := QuickMedian(bootstrapSample(B, rng))
		delta := relativeSpeedup(medA, medB)

		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}

func relativeSpeedup(medA, medB float64) float64 {
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		return math.NaN()
	case medA == medB, math.IsInf(medA, -1) && math.IsInf(medB, -1), math.IsInf(medA, 1) && math.IsInf(medB, 1):
		return 0.0
	}
	// relative epsilon scaled to medB to avoid large distortion
	const rel = 1e-12
	eps := math.Max(math.Abs(medB)*rel, math.SmallestNonzeroFloat64)
	denom := medB
	if math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}
