package score

import (
	"math"
	"testing"
)

func TestKS_IdenticalBags(t *testing.T) {
	bag := []float64{100, 200, 300}

	if d := KS(bag, bag); d != 0 {
		t.Errorf("Expected KS of identical bags to be 0, got %g", d)
	}
}

func TestKS_KnownValue(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{3, 4, 5, 6}

	// F1 and F2 diverge most at x=2 (and again at x=4): |2/4 - 0/4| = 0.5
	if d := KS(a, b); math.Abs(d-0.5) > 1e-12 {
		t.Errorf("Expected KS = 0.5, got %g", d)
	}
}

func TestKS_Symmetry(t *testing.T) {
	a := []float64{1, 1, 2, 5, 9}
	b := []float64{0, 2, 2, 3}

	if d1, d2 := KS(a, b), KS(b, a); d1 != d2 {
		t.Errorf("Expected symmetric statistic, got %g and %g", d1, d2)
	}
}

func TestKS_Bounds(t *testing.T) {
	cases := [][2][]float64{
		{{1, 2, 3}, {100, 200, 300}}, // disjoint ranges
		{{1, 2, 3}, {2, 3, 4}},
		{{5}, {5}},
		{{1, 1, 1, 2}, {1, 2}},
	}

	for _, c := range cases {
		d := KS(c[0], c[1])
		if d < 0 || d > 1 {
			t.Errorf("KS(%v, %v) = %g, outside [0, 1]", c[0], c[1], d)
		}
	}

	// Fully disjoint distributions are maximally distant
	if d := KS([]float64{1, 2, 3}, []float64{100, 200, 300}); d != 1 {
		t.Errorf("Expected KS = 1 for disjoint ranges, got %g", d)
	}
}

func TestKS_TiedValuesProcessedTogether(t *testing.T) {
	a := []float64{1, 1, 1, 2}
	b := []float64{1, 2}

	// At x=1: F1 = 0.75, F2 = 0.5
	if d := KS(a, b); math.Abs(d-0.25) > 1e-12 {
		t.Errorf("Expected KS = 0.25, got %g", d)
	}
}

func TestKS_Deterministic(t *testing.T) {
	a := []float64{0.5, 1.5, 2.25, 7, 11}
	b := []float64{1, 2, 3}

	first := KS(a, b)
	for i := 0; i < 10; i++ {
		if d := KS(a, b); d != first {
			t.Fatalf("Expected identical result on re-run, got %g then %g", first, d)
		}
	}
}
