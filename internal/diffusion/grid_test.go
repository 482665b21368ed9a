package diffusion

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	x, err := NewGrid(300, 0.5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if len(x) != 600 {
		t.Errorf("expected 600 points, got %d", len(x))
	}
	if x[0] != 0 {
		t.Errorf("expected first point 0, got %g", x[0])
	}
	if x[len(x)-1] != 299.5 {
		t.Errorf("expected last point 299.5, got %g", x[len(x)-1])
	}
}

func TestNewGrid_InvalidInputs(t *testing.T) {
	tests := []struct {
		name            string
		length, spacing float64
		want            error
	}{
		{"zero length", 0, 0.5, ErrInvalidParameter},
		{"negative length", -10, 0.5, ErrInvalidParameter},
		{"zero spacing", 300, 0, ErrInvalidParameter},
		{"negative spacing", 300, -0.5, ErrInvalidParameter},
		{"two points", 1.0, 0.5, ErrGridTooSmall},
		{"one point", 0.5, 0.5, ErrGridTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.length, tt.spacing)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStepProfile(t *testing.T) {
	x, err := NewGrid(300, 0.5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	c := StepProfile(x, 150, 500, 0)

	if len(c) != len(x) {
		t.Fatalf("field length %d does not match grid length %d", len(c), len(x))
	}

	for i, xi := range x {
		want := 0.0
		if xi <= 150 {
			want = 500.0
		}
		if c[i] != want {
			t.Fatalf("c[%d] (x=%g) = %g, want %g", i, xi, c[i], want)
		}
	}

	// x=150 itself sits on a grid point and belongs to the left plateau.
	if c[300] != 500 {
		t.Errorf("expected split point to take left value, got %g", c[300])
	}
	if c[301] != 0 {
		t.Errorf("expected point past split to take right value, got %g", c[301])
	}
}

func TestStepProfile_UnevenSplit(t *testing.T) {
	// Spacing 3 does not divide the split point 5: the discontinuity lands
	// on the nearest lower grid sample.
	x, err := NewGrid(12, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	c := StepProfile(x, 5, 1, -1)

	expected := Field{1, 1, -1, -1} // x = 0, 3, 6, 9
	for i := range expected {
		if c[i] != expected[i] {
			t.Errorf("c[%d] = %g, want %g", i, c[i], expected[i])
		}
	}
}

func TestParams_SplitPoint(t *testing.T) {
	tests := []struct {
		length float64
		want   float64
	}{
		{300, 150},
		{301, 150}, // floor division
		{7.5, 3},
		{1, 0},
	}

	for _, tt := range tests {
		p := Params{Length: tt.length}
		if got := p.SplitPoint(); got != tt.want {
			t.Errorf("SplitPoint(Lx=%g) = %g, want %g", tt.length, got, tt.want)
		}
	}
}
