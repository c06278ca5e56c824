package marketplace

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestProgressExamples(t *testing.T) {
	cases := []struct {
		current, target, want int
	}{
		{147, 200, 74},
		{89, 100, 89},
		{150, 500, 30},
		{80, 200, 40},
		{300, 1000, 30},
		{0, 10, 0},
		{250, 200, 125}, // not clamped
	}
	for _, tc := range cases {
		got, err := Progress(tc.current, tc.target)
		if err != nil {
			t.Fatalf("Progress(%d,%d): %v", tc.current, tc.target, err)
		}
		if got != tc.want {
			t.Errorf("Progress(%d,%d) = %d, want %d", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestProgressZeroTarget(t *testing.T) {
	if _, err := Progress(5, 0); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
	if _, err := Progress(5, -3); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget for negative target, got %v", err)
	}
	if got := ProgressPercentage(5, 0); got != 0 {
		t.Errorf("ProgressPercentage with zero target = %d, want 0", got)
	}
}

func TestProgressMatchesFormula(t *testing.T) {
	// targets where many values land exactly on .5
	for _, target := range []int{2, 8, 40, 200} {
		for current := 0; current <= 2*target; current++ {
			want := (200*current + target) / (2 * target)
			if got := ProgressPercentage(current, target); got != want {
				t.Fatalf("ProgressPercentage(%d,%d) = %d, want %d", current, target, got, want)
			}
		}
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		target := r.Intn(5000) + 1
		current := r.Intn(6000)
		// round half up of 100*current/target in integer arithmetic
		want := (200*current + target) / (2 * target)
		got := ProgressPercentage(current, target)
		if got != want {
			t.Fatalf("ProgressPercentage(%d,%d) = %d, formula gives %d", current, target, got, want)
		}
	}
}

func TestDiscountExamples(t *testing.T) {
	cases := []struct {
		original, group float64
		want            int
	}{
		{45, 32, 29},
		{28, 22, 21},
		{3.20, 2.50, 22},
		{6.50, 4.80, 26},
		{0.65, 0.45, 31},
		{10, 10, 0},
		{10, 12, -20},
	}
	for _, tc := range cases {
		got, err := Discount(tc.original, tc.group)
		if err != nil {
			t.Fatalf("Discount(%v,%v): %v", tc.original, tc.group, err)
		}
		if got != tc.want {
			t.Errorf("Discount(%v,%v) = %d, want %d", tc.original, tc.group, got, tc.want)
		}
	}
}

func TestDiscountInvalidOriginal(t *testing.T) {
	for _, original := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Discount(original, 1); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("Discount(%v) expected ErrInvalidPrice, got %v", original, err)
		}
		if got := DiscountPercentage(original, 1); got != 0 {
			t.Errorf("DiscountPercentage(%v) = %d, want 0", original, got)
		}
	}
}

func TestBarWidth(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 74: 74, 100: 100, 125: 100}
	for in, want := range cases {
		if got := BarWidth(in); got != want {
			t.Errorf("BarWidth(%d) = %d, want %d", in, got, want)
		}
	}
}
