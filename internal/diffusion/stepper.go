package diffusion

import "fmt"

// parallelMin is the grid size below which the interior update runs on a
// single goroutine; chunking overhead dominates for small grids.
const parallelMin = 16384

// Stepper advances a concentration field one FTCS step at a time.
//
// Each step reads the complete previous field and writes the next one into a
// separate buffer, then swaps the pair. All reads precede all writes, so the
// update never sees partially advanced values. The boundary points are
// assigned the fixed Dirichlet values after every step, so only the interior
// points i = 1..N-2 carry the three-point stencil.
type Stepper struct {
	r             float64 // D*dt/dx^2
	cLeft, cRight float64
	cur, next     Field
	dt, t         float64
	steps         int
}

// NewStepper prepares a stepper over an initial field. The timestep is
// validated against the stability bound before any stepping is possible.
func NewStepper(p Params, dt float64, c0 Field) (*Stepper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := CheckStability(p.Diffusivity, dt, p.Spacing); err != nil {
		return nil, err
	}
	if len(c0) < 3 {
		return nil, fmt.Errorf("%w: field has %d points", ErrGridTooSmall, len(c0))
	}
	s := &Stepper{
		r:      p.Diffusivity * dt / (p.Spacing * p.Spacing),
		cLeft:  p.CLeft,
		cRight: p.CRight,
		cur:    c0.Clone(),
		next:   make(Field, len(c0)),
		dt:     dt,
	}
	s.cur[0] = p.CLeft
	s.cur[len(c0)-1] = p.CRight
	return s, nil
}

// Step advances the field by one timestep.
func (s *Stepper) Step() {
	n := len(s.cur)
	if n >= parallelMin {
		parallelFor(1, n-1, 4096, func(lo, hi int) {
			stencil(s.next, s.cur, s.r, lo, hi)
		})
	} else {
		stencil(s.next, s.cur, s.r, 1, n-1)
	}
	s.next[0] = s.cLeft
	s.next[n-1] = s.cRight
	s.cur, s.next = s.next, s.cur
	s.t += s.dt
	s.steps++
}

// stencil applies the centered second-difference update to indices [lo, hi)
// reading only from prev and writing only to next.
func stencil(next, prev Field, r float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		next[i] = prev[i] + r*(prev[i+1]-2*prev[i]+prev[i-1])
	}
}

// Field returns the current field. The slice is the stepper's live buffer;
// clone it before the next Step if it must be retained.
func (s *Stepper) Field() Field { return s.cur }

func (s *Stepper) Time() float64 { return s.t }
func (s *Stepper) Steps() int    { return s.steps }
func (s *Stepper) Dt() float64   { return s.dt }

// Ratio returns the dimensionless stability ratio D*dt/dx^2 in effect.
func (s *Stepper) Ratio() float64 { return s.r }
