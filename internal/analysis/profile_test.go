package analysis

import (
	"math"
	"testing"

	"diffsim/internal/diffusion"
)

func TestSteadyState(t *testing.T) {
	x := diffusion.Grid{0, 1, 2, 3, 4}
	c := SteadyState(x, 100, 0)

	expected := diffusion.Field{100, 75, 50, 25, 0}
	for i := range expected {
		if math.Abs(c[i]-expected[i]) > 1e-12 {
			t.Errorf("c[%d] = %g, want %g", i, c[i], expected[i])
		}
	}
}

func TestRMSE(t *testing.T) {
	a := diffusion.Field{1, 2, 3}
	b := diffusion.Field{1, 2, 3}

	if got := RMSE(a, b); got != 0 {
		t.Errorf("RMSE of identical fields = %g, want 0", got)
	}

	c := diffusion.Field{2, 3, 4}
	if got := RMSE(a, c); math.Abs(got-1) > 1e-12 {
		t.Errorf("RMSE = %g, want 1", got)
	}

	if got := RMSE(diffusion.Field{}, diffusion.Field{}); got != 0 {
		t.Errorf("RMSE of empty fields = %g, want 0", got)
	}
}

func TestMonotone(t *testing.T) {
	tests := []struct {
		name string
		c    diffusion.Field
		want bool
	}{
		{"decreasing", diffusion.Field{5, 4, 3, 1}, true},
		{"increasing", diffusion.Field{1, 2, 2, 5}, true},
		{"constant", diffusion.Field{2, 2, 2}, true},
		{"oscillating", diffusion.Field{1, 3, 2}, false},
		{"single kink", diffusion.Field{5, 4, 4.5, 3}, false},
		{"empty", diffusion.Field{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Monotone(tt.c); got != tt.want {
				t.Errorf("Monotone(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	x := diffusion.Grid{0, 1, 2, 3, 4}
	steady := SteadyState(x, 100, 0)
	initial := diffusion.Field{100, 100, 100, 0, 0}

	if got := Progress(initial, initial, steady); got != 0 {
		t.Errorf("fresh run should report 0 progress, got %g", got)
	}
	if got := Progress(initial, steady, steady); got != 1 {
		t.Errorf("equilibrated run should report 1, got %g", got)
	}

	halfway := diffusion.Field{100, 87.5, 50, 12.5, 0}
	p := Progress(initial, halfway, steady)
	if p <= 0 || p >= 1 {
		t.Errorf("partial run should report progress in (0,1), got %g", p)
	}
}

func TestMidSlope(t *testing.T) {
	x := diffusion.Grid{0, 1, 2, 3, 4}
	c := diffusion.Field{100, 75, 50, 25, 0}

	if got := MidSlope(x, c); math.Abs(got+25) > 1e-12 {
		t.Errorf("MidSlope = %g, want -25", got)
	}

	if got := MidSlope(diffusion.Grid{0, 1}, diffusion.Field{1, 2}); got != 0 {
		t.Errorf("short input should report 0, got %g", got)
	}
}
