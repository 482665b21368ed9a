package metrics

import "diffsim/internal/diffusion"

// FrontWidth measures the width of the transition zone: the span, in grid
// units, between the last point above 90% of the boundary range and the
// first point below 10% of it. Grows roughly like sqrt(D*t) as the step
// diffuses.
type FrontWidth struct {
	name    string
	spacing float64
	width   float64
}

func NewFrontWidth(spacing float64) *FrontWidth {
	return &FrontWidth{
		name:    "front_width",
		spacing: spacing,
	}
}

func (f *FrontWidth) Name() string { return f.name }

func (f *FrontWidth) Observe(c diffusion.Field, t float64) {
	if len(c) < 2 {
		return
	}

	lo, hi := c.Min(), c.Max()
	span := hi - lo
	if span == 0 {
		f.width = 0
		return
	}
	upper := lo + 0.9*span
	lower := lo + 0.1*span

	// Assumes the profile decreases left to right, as the step initial
	// condition with CLeft > CRight does.
	start, end := -1, -1
	for i, v := range c {
		if v >= upper {
			start = i
		}
		if end == -1 && v <= lower {
			end = i
		}
	}
	if start == -1 || end == -1 || end <= start {
		f.width = 0
		return
	}
	f.width = float64(end-start) * f.spacing
}

func (f *FrontWidth) Value() float64 {
	return f.width
}

func (f *FrontWidth) Reset() {
	f.width = 0
}
