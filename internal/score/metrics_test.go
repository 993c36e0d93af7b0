package score

import (
	"math"
	"testing"
)

func TestNumericJaccard_Overlap(t *testing.T) {
	a := []float64{0, 10}
	b := []float64{5, 15}

	v, err := NumericJaccard(a, b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Overlap [5,10] over span [0,15]
	if math.Abs(v-1.0/3.0) > 1e-12 {
		t.Errorf("Expected 1/3, got %g", v)
	}
}

func TestNumericJaccard_IdenticalRanges(t *testing.T) {
	a := []float64{2, 4, 8}

	v, err := NumericJaccard(a, a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected 1 for identical ranges, got %g", v)
	}
}

func TestNumericJaccard_Degenerate(t *testing.T) {
	if _, err := NumericJaccard(nil, []float64{1}); err == nil {
		t.Error("Expected error for empty bag")
	}
	if _, err := NumericJaccard([]float64{3, 3}, []float64{3}); err == nil {
		t.Error("Expected error for zero-width span")
	}
}

func TestQuartileNumericJaccard(t *testing.T) {
	a := []float64{8, 7, 6, 5, 4, 3, 2, 1} // quartile slice: [3 4 5 6]

	v, err := QuartileNumericJaccard(a, a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected 1 for identical bags, got %g", v)
	}
}

func TestEuclideanFeatures(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	v, err := EuclideanFeatures(a, a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("Expected 0 distance for identical bags, got %g", v)
	}

	if _, err := EuclideanFeatures([]float64{1}, a); err == nil {
		t.Error("Expected error for single-value bag (stdev undefined)")
	}
}

func TestAllMetrics(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 3, 4, 5}

	results := AllMetrics(a, b)
	if len(results) != 5 {
		t.Fatalf("Expected 5 metrics, got %d", len(results))
	}
	for _, m := range results {
		if m.Err != nil {
			t.Errorf("Metric %q failed: %v", m.Name, m.Err)
		}
	}

	ks := results[len(results)-1]
	if ks.Name != "KS test" {
		t.Errorf("Expected last metric to be the KS test, got %q", ks.Name)
	}
	if ks.Value < 0 || ks.Value > 1 {
		t.Errorf("KS value %g outside [0, 1]", ks.Value)
	}
}

func TestAllMetrics_EmptyBag(t *testing.T) {
	results := AllMetrics(nil, []float64{1, 2})
	for _, m := range results {
		if m.Err == nil {
			t.Errorf("Expected metric %q to fail for an empty bag", m.Name)
		}
	}
}
