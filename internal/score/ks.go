// Package score compares numeric samples against the property index.
package score

import "math"

// KS computes the two-sample Kolmogorov–Smirnov statistic between two
// ascending-sorted samples: the maximum absolute difference between their
// empirical CDFs. Runs one merge sweep over both samples, O(n+m). Smaller
// means more similar; the result is in [0, 1]. Both samples must be non-empty.
func KS(a, b []float64) float64 {
	lenA, lenB := len(a), len(b)
	invA := 1.0 / float64(lenA)
	invB := 1.0 / float64(lenB)

	var i, j int
	var maxDiff float64

	// Each distinct value is visited once; ties across the two samples are
	// consumed together so the CDF difference is only taken at step points.
	for i < lenA || j < lenB {
		var x float64
		switch {
		case i == lenA:
			x = b[j]
		case j == lenB:
			x = a[i]
		default:
			x = math.Min(a[i], b[j])
		}

		for i < lenA && a[i] == x {
			i++
		}
		for j < lenB && b[j] == x {
			j++
		}

		diff := math.Abs(float64(i)*invA - float64(j)*invB)
		if diff > maxDiff {
			maxDiff = diff
		}
	}

	return maxDiff
}
