// Package analysis provides post-run diagnostics for diffusion profiles.
package analysis

import (
	"math"

	"diffsim/internal/diffusion"
)

// SteadyState returns the profile the field relaxes toward as t -> inf: the
// linear ramp between the two fixed boundary values across the grid.
func SteadyState(x diffusion.Grid, cLeft, cRight float64) diffusion.Field {
	c := make(diffusion.Field, len(x))
	if len(x) == 0 {
		return c
	}
	span := x[len(x)-1] - x[0]
	if span == 0 {
		c[0] = cLeft
		return c
	}
	for i, xi := range x {
		c[i] = cLeft + (cRight-cLeft)*(xi-x[0])/span
	}
	return c
}

// RMSE computes the root-mean-square difference of two index-aligned fields.
func RMSE(a, b diffusion.Field) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// Monotone reports whether the profile is non-increasing or non-decreasing
// across the whole grid. A stable diffusion run started from a monotone step
// stays monotone; a kink means the scheme oscillated.
func Monotone(c diffusion.Field) bool {
	inc, dec := true, true
	for i := 1; i < len(c); i++ {
		if c[i] > c[i-1] {
			dec = false
		}
		if c[i] < c[i-1] {
			inc = false
		}
	}
	return inc || dec
}

// Progress estimates how far a run has relaxed from its initial profile
// toward steady state, as 1 - rmse(final, steady)/rmse(initial, steady).
// Returns 0 for a fresh run and approaches 1 at equilibrium.
func Progress(initial, final, steady diffusion.Field) float64 {
	base := RMSE(initial, steady)
	if base == 0 {
		return 1
	}
	p := 1 - RMSE(final, steady)/base
	if p < 0 {
		return 0
	}
	return p
}

// MidSlope returns the spatial gradient at the center of the grid, a proxy
// for how far the initial discontinuity has smoothed out.
func MidSlope(x diffusion.Grid, c diffusion.Field) float64 {
	if len(c) < 3 || len(x) != len(c) {
		return 0
	}
	mid := len(c) / 2
	dx := x[mid+1] - x[mid-1]
	if dx == 0 {
		return 0
	}
	return (c[mid+1] - c[mid-1]) / dx
}
