package diffusion

import "errors"

// Domain errors for model setup and stepping.
var (
	// ErrInvalidParameter indicates a non-positive or inconsistent setup value.
	ErrInvalidParameter = errors.New("diffusion: invalid parameter")

	// ErrUnstableStep indicates a timestep exceeding the FTCS stability bound.
	ErrUnstableStep = errors.New("diffusion: timestep exceeds stability bound (D*dt/dx^2 > 0.5)")

	// ErrInvalidField indicates a field containing NaN or Inf values.
	ErrInvalidField = errors.New("diffusion: invalid field (NaN or Inf detected)")

	// ErrGridTooSmall indicates a grid with fewer than three points, for
	// which the three-point stencil has no interior.
	ErrGridTooSmall = errors.New("diffusion: grid must have at least 3 points")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
