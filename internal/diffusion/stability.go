package diffusion

import "fmt"

// stabilityLimit is the von Neumann bound on D*dt/dx^2 for the explicit
// FTCS scheme. Beyond it numerical errors grow without bound.
const stabilityLimit = 0.5

// StableStep returns the maximal stable timestep for the given spacing and
// diffusivity, dt = 0.5 * dx^2 / D.
func StableStep(spacing, diffusivity float64) float64 {
	return stabilityLimit * spacing * spacing / diffusivity
}

// CheckStability validates a caller-supplied timestep against the explicit
// scheme's stability bound.
func CheckStability(diffusivity, dt, spacing float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: timestep must be positive, got %g", ErrInvalidParameter, dt)
	}
	r := diffusivity * dt / (spacing * spacing)
	if r > stabilityLimit {
		return fmt.Errorf("%w: D*dt/dx^2 = %g", ErrUnstableStep, r)
	}
	return nil
}
