// Package diffusion implements an explicit finite-difference model of
// one-dimensional diffusion with constant diffusivity and fixed (Dirichlet)
// boundary values on a uniform grid.
//
// The package defines the building blocks of a run:
//
//   - [Grid]: uniform sample positions over the half-open domain [0, Lx)
//   - [Field]: the diffusing quantity, index-aligned with the grid
//   - [Stepper]: one FTCS (Forward-Time-Centered-Space) update per call
//   - [Simulator]: orchestrates a fixed number of sequential steps
//
// # Example
//
//	p := diffusion.Params{Diffusivity: 100, Length: 300, Spacing: 0.5, CLeft: 500}
//	sim := diffusion.New(p)
//	result, _ := sim.Run(ctx, diffusion.Config{Steps: 5000})
//
// # Stability
//
// The explicit scheme is stable only while D*dt/dx^2 <= 0.5. When no
// timestep is supplied, [StableStep] derives one that satisfies the bound by
// construction; caller-supplied timesteps are validated before any stepping
// begins.
//
// # Thread Safety
//
// Simulator and Stepper instances are NOT thread-safe. Steps are strictly
// sequential; within one step the interior stencil evaluations read only the
// previous buffer and may be chunked across goroutines.
package diffusion
