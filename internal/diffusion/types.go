package diffusion

import (
	"fmt"
	"math"
)

// Field holds the diffusing quantity at each grid point at one instant.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	min := f[0]
	for _, v := range f[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	max := f[0]
	for _, v := range f[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (f Field) Sum() float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum
}

// Params are the fixed inputs of a run. They are set once and never mutated.
type Params struct {
	Diffusivity float64 // D
	Length      float64 // Lx
	Spacing     float64 // dx
	CLeft       float64 // boundary value at x=0
	CRight      float64 // boundary value at the last grid point
}

func (p Params) Validate() error {
	if p.Diffusivity <= 0 {
		return fmt.Errorf("%w: diffusivity must be positive, got %g", ErrInvalidParameter, p.Diffusivity)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: domain length must be positive, got %g", ErrInvalidParameter, p.Length)
	}
	if p.Spacing <= 0 {
		return fmt.Errorf("%w: spacing must be positive, got %g", ErrInvalidParameter, p.Spacing)
	}
	if p.Spacing > p.Length {
		return fmt.Errorf("%w: spacing %g exceeds domain length %g", ErrInvalidParameter, p.Spacing, p.Length)
	}
	return nil
}

// SplitPoint is the default position of the initial step discontinuity,
// floor(Lx/2).
func (p Params) SplitPoint() float64 {
	return math.Floor(p.Length / 2)
}

// Metric accumulates a scalar quantity over the course of a run.
type Metric interface {
	Name() string
	Observe(c Field, t float64)
	Value() float64
	Reset()
}

// Observer is notified with the current field before every step. The field
// must not be retained or mutated; clone it if needed.
type Observer interface {
	OnStep(c Field, step int, t float64)
}

// Config controls a single run.
type Config struct {
	Steps    int     // number of FTCS steps (nt)
	Dt       float64 // timestep; 0 derives the maximal stable step
	Validate bool    // check for NaN/Inf after every step
}

func DefaultConfig() Config {
	return Config{
		Steps:    5000,
		Dt:       0,
		Validate: true,
	}
}

// Result holds the outcome of a run.
type Result struct {
	Grid       Grid
	Initial    Field
	Final      Field
	Dt         float64
	StepsTaken int
	Metrics    map[string]float64
}
