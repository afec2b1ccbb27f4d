package benchcmp

import "math"

// ChiSquare computes the Pearson chi-square statistic for a slice of observed counts.
// expected is the expected count per bin and must be > 0.
// It returns the statistic Σ (observed_i - expected)^2 / expected.
func ChiSquare(counts []int, expected float64) float64 {
	var x2 float64
	for _, o := range counts {
		diff := float64(o) - expected
		x2 += (diff * diff) / expected
	}
	return x2
}

// chiSquarePValueEven computes the upper-tail p-value P(χ² ≥ x2) for an even number of
// degrees of freedom df = 2m with the closed-form series
//
//	P(χ² ≥ x2) = e^{-x2/2} * sum_{j=0}^{m-1} (x2/2)^j / j!
func chiSquarePValueEven(x2 float64, df int) float64 {
	m := df / 2
	t := math.Exp(-x2 / 2.0)
	sum := 1.0 // j = 0
	term := 1.0
	for j := 1; j < m; j++ {
		term *= x2 / (2.0 * float64(j))
		sum += term
	}
	return t * sum
}

// chiSquarePValueApprox approximates the upper-tail p-value with the Wilson–Hilferty
// cube-root transform and the standard normal tail via math.Erf. Accuracy improves for larger df.
func chiSquarePValueApprox(x2 float64, df int) float64 {
	nu := float64(df)
	z := (math.Pow(x2/nu, 1.0/3.0) - (1.0 - 2.0/(9.0*nu))) / math.Sqrt(2.0/(9.0*nu))
	phi := 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
	return 1.0 - phi
}

// ChiSquarePValue returns P(χ²_df ≥ x2): exact series for even df, otherwise the
// Wilson–Hilferty approximation. For df <= 0 it returns 1.
func ChiSquarePValue(x2 float64, df int) float64 {
	if df <= 0 {
		return 1.0 // trivial
	}
	if df%2 == 0 {
		return chiSquarePValueEven(x2, df)
	}
	return chiSquarePValueApprox(x2, df)
}

// UniformityPValue tests counts against the uniform distribution over len(counts) bins and
// returns the chi-square statistic and its p-value. Small p-values are evidence against
// uniformity.
func UniformityPValue(counts []int) (x2, p float64) {
	if len(counts) < 2 {
		return 0, 1
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 1
	}
	expected := float64(total) / float64(len(counts))
	x2 = ChiSquare(counts, expected)
	return x2, ChiSquarePValue(x2, len(counts)-1)
}
