package resizer

import (
	"math"

	"github.com/BirjuVachhani/rect-resizer/geom"
)

// Constraints bounds the width and height a resize may produce. The
// zero value forbids any size; use Unconstrained for the permissive
// default.
type Constraints struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Unconstrained returns constraints that permit any size.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsUnconstrained reports whether c permits any size.
func (c Constraints) IsUnconstrained() bool {
	return c.MinWidth == 0 && c.MinHeight == 0 &&
		math.IsInf(c.MaxWidth, 1) && math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps d's components into the constraint ranges. The
// components are clamped as given; callers holding a sign-encoded
// dimension take its absolute value first and restore the signs
// after, since clamping a negative extent against a non-negative
// minimum would quietly erase the pending flip.
func (c Constraints) Constrain(d Dimension) Dimension {
	return geom.Dim(
		min(max(d.W, c.MinWidth), c.MaxWidth),
		min(max(d.H, c.MinHeight), c.MaxHeight),
	)
}

// ConstrainAbs clamps d by magnitude and restores its signs.
func (c Constraints) ConstrainAbs(d Dimension) Dimension {
	a := c.Constrain(d.Abs())
	if d.W < 0 {
		a.W = -a.W
	}
	if d.H < 0 {
		a.H = -a.H
	}
	return a
}
