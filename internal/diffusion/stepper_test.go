package diffusion

import (
	"errors"
	"math"
	"testing"
)

func testParams() Params {
	return Params{
		Diffusivity: 100,
		Length:      300,
		Spacing:     0.5,
		CLeft:       500,
		CRight:      0,
	}
}

func TestNewStepper_RejectsUnstableDt(t *testing.T) {
	p := testParams()
	c0 := make(Field, 10)

	_, err := NewStepper(p, 0.01, c0) // r = 4, far past the bound
	if !errors.Is(err, ErrUnstableStep) {
		t.Errorf("expected ErrUnstableStep, got %v", err)
	}
}

func TestNewStepper_RejectsShortField(t *testing.T) {
	p := testParams()

	_, err := NewStepper(p, 0.001, Field{1, 2})
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall, got %v", err)
	}
}

func TestStepper_BoundariesFixedEveryStep(t *testing.T) {
	p := testParams()
	x, _ := NewGrid(p.Length, p.Spacing)
	c0 := StepProfile(x, p.SplitPoint(), p.CLeft, p.CRight)

	s, err := NewStepper(p, StableStep(p.Spacing, p.Diffusivity), c0)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		s.Step()
		c := s.Field()
		if c[0] != p.CLeft {
			t.Fatalf("step %d: left boundary = %g, want %g", i, c[0], p.CLeft)
		}
		if c[len(c)-1] != p.CRight {
			t.Fatalf("step %d: right boundary = %g, want %g", i, c[len(c)-1], p.CRight)
		}
	}
}

// The update must read a single consistent snapshot of the previous field.
// Compare one step against a reference computed from an explicit copy.
func TestStepper_SnapshotSemantics(t *testing.T) {
	p := Params{Diffusivity: 1, Length: 5, Spacing: 1, CLeft: 4, CRight: 0}
	c0 := Field{4, 3, 7, 1, 0}
	dt := 0.25 // r = 0.25

	s, err := NewStepper(p, dt, c0)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}
	s.Step()

	prev := c0.Clone()
	want := prev.Clone()
	for i := 1; i < len(prev)-1; i++ {
		want[i] = prev[i] + 0.25*(prev[i+1]-2*prev[i]+prev[i-1])
	}
	want[0] = 4
	want[len(want)-1] = 0

	got := s.Field()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("c[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestStepper_TimeAndStepCount(t *testing.T) {
	p := testParams()
	dt := StableStep(p.Spacing, p.Diffusivity)
	c0 := make(Field, 5)

	s, err := NewStepper(p, dt, c0)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		s.Step()
	}

	if s.Steps() != 8 {
		t.Errorf("expected 8 steps, got %d", s.Steps())
	}
	if math.Abs(s.Time()-8*dt) > 1e-15 {
		t.Errorf("expected t = %g, got %g", 8*dt, s.Time())
	}
}

// Grids large enough to take the chunked path must produce bitwise the same
// field as the plain serial stencil.
func TestStepper_ParallelMatchesSerial(t *testing.T) {
	n := parallelMin + 101
	p := Params{Diffusivity: 1, Length: float64(n), Spacing: 1, CLeft: 2, CRight: -2}
	x, err := NewGrid(p.Length, p.Spacing)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	c0 := StepProfile(x, p.SplitPoint(), p.CLeft, p.CRight)

	s, err := NewStepper(p, 0.5, c0)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}

	ref := c0.Clone()
	ref[0], ref[n-1] = p.CLeft, p.CRight
	buf := make(Field, n)

	for step := 0; step < 3; step++ {
		s.Step()

		stencil(buf, ref, 0.5, 1, n-1)
		buf[0], buf[n-1] = p.CLeft, p.CRight
		ref, buf = buf, ref

		got := s.Field()
		for i := range ref {
			if got[i] != ref[i] {
				t.Fatalf("step %d: c[%d] = %g, want %g", step, i, got[i], ref[i])
			}
		}
	}
}
