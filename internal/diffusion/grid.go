package diffusion

import (
	"fmt"
	"math"
)

// Grid is an ordered sequence of uniformly spaced positions covering the
// half-open interval [0, Lx). Immutable after construction.
type Grid []float64

// NewGrid builds the uniform grid for a domain of the given length and
// spacing: x[i] = i*dx for i in [0, ceil(Lx/dx)). The last point is strictly
// less than the domain length.
func NewGrid(length, spacing float64) (Grid, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: domain length must be positive, got %g", ErrInvalidParameter, length)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("%w: spacing must be positive, got %g", ErrInvalidParameter, spacing)
	}
	n := int(math.Ceil(length / spacing))
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d for length %g, spacing %g", ErrGridTooSmall, n, length, spacing)
	}
	x := make(Grid, n)
	for i := range x {
		x[i] = float64(i) * spacing
	}
	return x, nil
}

// StepProfile builds the initial concentration field over the grid: cLeft at
// every point with position <= split, cRight strictly beyond it. When the
// spacing does not divide the split point evenly, the discontinuity lands on
// the nearest grid sample at or below it.
func StepProfile(x Grid, split, cLeft, cRight float64) Field {
	c := make(Field, len(x))
	for i, xi := range x {
		if xi <= split {
			c[i] = cLeft
		} else {
			c[i] = cRight
		}
	}
	return c
}
