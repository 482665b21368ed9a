package metrics

import (
	"math"

	"diffsim/internal/diffusion"
)

// Bounds counts observations violating the maximum principle: diffusion can
// never push any value outside the range spanned by the boundary values.
// Value reports the fraction of clean samples; anything below 1.0 means the
// scheme has gone unstable.
type Bounds struct {
	name       string
	lo, hi     float64
	violations int
	samples    int
}

func NewBounds(cLeft, cRight float64) *Bounds {
	return &Bounds{
		name: "bounds",
		lo:   math.Min(cLeft, cRight),
		hi:   math.Max(cLeft, cRight),
	}
}

func (b *Bounds) Name() string { return b.name }

func (b *Bounds) Observe(c diffusion.Field, t float64) {
	b.samples++
	for _, v := range c {
		if v < b.lo || v > b.hi {
			b.violations++
			break
		}
	}
}

func (b *Bounds) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounds) Reset() {
	b.violations = 0
	b.samples = 0
}
