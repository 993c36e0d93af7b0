package score

import (
	"fmt"
	"math"
	"sort"
)

// Companion similarity metrics for comparing two numeric bags directly.
// These follow Neumaier et al. and Pham et al. (ISWC 2016) and are reported
// by the compare command only; the ranking uses the KS statistic alone.

// NumericJaccard measures the overlap of two value ranges.
func NumericJaccard(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("empty bag")
	}
	minA, maxA := minMax(a)
	minB, maxB := minMax(b)
	denom := math.Max(maxA, maxB) - math.Min(minA, minB)
	if denom == 0 {
		return 0, fmt.Errorf("degenerate range")
	}
	return (math.Min(maxA, maxB) - math.Max(minA, minB)) / denom, nil
}

// QuartileNumericJaccard restricts both bags to their first-to-third quartile
// before measuring range overlap, discounting outliers.
func QuartileNumericJaccard(a, b []float64) (float64, error) {
	qa := quartileSlice(a)
	qb := quartileSlice(b)
	return NumericJaccard(qa, qb)
}

// EuclideanFeatures measures the distance between [min, max, mean, stdev]
// feature vectors of the two bags.
func EuclideanFeatures(a, b []float64) (float64, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, fmt.Errorf("need at least two values per bag")
	}
	minA, maxA := minMax(a)
	minB, maxB := minMax(b)
	va := []float64{minA, maxA, mean(a), stdev(a)}
	vb := []float64{minB, maxB, mean(b), stdev(b)}
	return euclidean(va, vb), nil
}

// EuclideanFeaturesTrimmed replaces min/max with the 5th and 95th percentile.
func EuclideanFeaturesTrimmed(a, b []float64) (float64, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, fmt.Errorf("need at least two values per bag")
	}
	sa := sortedCopy(a)
	sb := sortedCopy(b)
	va := []float64{sa[int(0.05*float64(len(sa)))], sa[int(0.95*float64(len(sa)))], mean(sa), stdev(sa)}
	vb := []float64{sb[int(0.05*float64(len(sb)))], sb[int(0.95*float64(len(sb)))], mean(sb), stdev(sb)}
	return euclidean(va, vb), nil
}

// MetricResult is one named metric outcome for reporting.
type MetricResult struct {
	Name  string
	Value float64
	Err   error
}

// AllMetrics evaluates every companion metric plus the KS statistic on two
// bags. Metrics that cannot be computed carry their error instead of a value.
func AllMetrics(a, b []float64) []MetricResult {
	sa := sortedCopy(a)
	sb := sortedCopy(b)

	results := []MetricResult{
		{Name: "Numeric Jaccard similarity"},
		{Name: "Numeric Jaccard similarity (1st to 3rd quartile)"},
		{Name: "Euclidean distance feature vector #1"},
		{Name: "Euclidean distance feature vector #2"},
		{Name: "KS test"},
	}
	results[0].Value, results[0].Err = NumericJaccard(a, b)
	results[1].Value, results[1].Err = QuartileNumericJaccard(a, b)
	results[2].Value, results[2].Err = EuclideanFeatures(a, b)
	results[3].Value, results[3].Err = EuclideanFeaturesTrimmed(a, b)
	if len(sa) == 0 || len(sb) == 0 {
		results[4].Err = fmt.Errorf("empty bag")
	} else {
		results[4].Value = KS(sa, sb)
	}
	return results
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdev is the sample standard deviation.
func stdev(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func euclidean(v1, v2 []float64) float64 {
	var sum float64
	for i := range v1 {
		d := v1[i] - v2[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

func quartileSlice(values []float64) []float64 {
	s := sortedCopy(values)
	n := len(s)
	return s[int(0.25*float64(n)):int(0.75*float64(n))]
}
