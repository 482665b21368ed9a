package diffusion

import (
	"context"
	"fmt"
)

// Simulator runs the full model: grid construction, step initial condition,
// stability-bounded time stepping, and metric collection.
type Simulator struct {
	params    Params
	metrics   []Metric
	observers []Observer
}

func New(p Params) *Simulator {
	return &Simulator{
		params:    p,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Params() Params { return s.params }

// Run applies exactly cfg.Steps FTCS updates to the initial step profile and
// returns the evolved field. All setup errors surface before the first step;
// once stepping begins the only failure modes are context cancellation and,
// with cfg.Validate, a NaN/Inf field.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("%w: step count must be non-negative, got %d", ErrInvalidParameter, cfg.Steps)
	}
	if err := s.params.Validate(); err != nil {
		return nil, err
	}

	x, err := NewGrid(s.params.Length, s.params.Spacing)
	if err != nil {
		return nil, err
	}
	c0 := StepProfile(x, s.params.SplitPoint(), s.params.CLeft, s.params.CRight)

	dt := cfg.Dt
	if dt == 0 {
		dt = StableStep(s.params.Spacing, s.params.Diffusivity)
	}

	stepper, err := NewStepper(s.params, dt, c0)
	if err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Grid:    x,
		Initial: c0.Clone(),
		Dt:      dt,
		Metrics: make(map[string]float64),
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		c := stepper.Field()
		for _, m := range s.metrics {
			m.Observe(c, stepper.Time())
		}
		for _, obs := range s.observers {
			obs.OnStep(c, i, stepper.Time())
		}

		stepper.Step()
		result.StepsTaken++

		if cfg.Validate && !stepper.Field().IsValid() {
			return result, &StepError{Step: i, Time: stepper.Time(), Wrapped: ErrInvalidField}
		}
	}

	result.Final = stepper.Field().Clone()

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
