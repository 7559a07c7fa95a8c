package renderer

import (
	"math"
	"testing"
)

func TestGrid2x2(t *testing.T) {
	k := Grid2x2()
	if len(k) != 4 {
		t.Fatalf("Expected 4 samples, got %d", len(k))
	}

	seen := map[[2]float64]bool{}
	for _, s := range k {
		if math.Abs(s.DX) != 0.25 || math.Abs(s.DY) != 0.25 {
			t.Errorf("Expected offsets of +/-0.25, got (%f, %f)", s.DX, s.DY)
		}
		if s.Weight != 0.25 {
			t.Errorf("Expected weight 0.25, got %f", s.Weight)
		}
		seen[[2]float64{s.DX, s.DY}] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected four distinct offsets, got %d", len(seen))
	}
}

func TestGridKernel_WeightsSumToOne(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5} {
		k := GridKernel(n)
		total := 0.0
		for _, s := range k {
			total += s.Weight
			if math.Abs(s.DX) >= 0.5 || math.Abs(s.DY) >= 0.5 {
				t.Errorf("n=%d: offset (%f, %f) leaves the pixel", n, s.DX, s.DY)
			}
		}
		if math.Abs(total-1) > 1e-12 {
			t.Errorf("n=%d: weights sum to %f", n, total)
		}
	}
	if len(GridKernel(1)) != 1 || GridKernel(1)[0] != SingleSample()[0] {
		t.Error("GridKernel(1) should equal SingleSample")
	}
}

func TestGridKernel_Samples(t *testing.T) {
	for n := 1; n <= MaxGridSize; n++ {
		if got := len(GridKernel(n)); got != n*n {
			t.Errorf("GridKernel(%d) has %d samples, want %d", n, got, n*n)
		}
	}
}
