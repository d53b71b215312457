// Package resizer computes how a rectangle should move or resize in
// response to a pointer drag, subject to aspect ratio rules, size
// constraints, an optional clamping rectangle, and a resize handle.
//
// The package is the geometric decision engine underlying an
// interactive box-manipulation UI. Callers feed Move and Resize the
// box state and pointer coordinates for each event and render
// whatever rectangle comes back. Every function is pure: nothing is
// retained across calls, and results are safe to compute from any
// number of goroutines concurrently.
package resizer

import (
	"fmt"
	"math"

	"github.com/BirjuVachhani/rect-resizer/geom"
)

// The transformer works in float64 coordinates.
type (
	Rect      = geom.Rect[float64]
	Point     = geom.Point[float64]
	Dimension = geom.Dimension[float64]
)

// Largest is the unbounded clamping rectangle. Clamping against it is
// a no-op.
var Largest = Rect{
	Min: geom.Pt(math.Inf(-1), math.Inf(-1)),
	Max: geom.Pt(math.Inf(1), math.Inf(1)),
}

// epsilon bounds the terminal-limit comparisons. Exact float equality
// against a constraint value is too brittle after a chain of clamps.
const epsilon = 1e-9

func approx(a, b float64) bool {
	return a == b || math.Abs(a-b) < epsilon
}

// FromHandle returns a rectangle of the given size placed so that
// handle lands on p. For HandleNone the rectangle is centered at p.
func FromHandle(p Point, handle HandlePosition, width, height float64) Rect {
	switch handle {
	case HandleNone:
		return geom.FromCenter(p, geom.Pt(width, height))
	case HandleTopLeft:
		return geom.RtSize(p.X, p.Y, width, height)
	case HandleTopRight:
		return geom.RtSize(p.X-width, p.Y, width, height)
	case HandleBottomLeft:
		return geom.RtSize(p.X, p.Y-height, width, height)
	case HandleBottomRight:
		return geom.RtSize(p.X-width, p.Y-height, width, height)
	case HandleLeft:
		return geom.RtSize(p.X, p.Y-height/2, width, height)
	case HandleTop:
		return geom.RtSize(p.X-width/2, p.Y, width, height)
	case HandleRight:
		return geom.RtSize(p.X-width, p.Y-height/2, width, height)
	case HandleBottom:
		return geom.RtSize(p.X-width/2, p.Y-height, width, height)
	}
	panic(fmt.Sprintf("resizer: unknown handle %v", handle))
}

// FlipRect mirrors r across the pivot implied by the dragged handle:
// corner handles translate on every flipped axis, side handles only
// along their own axis. Undoing a flip requires the mirrored handle,
// since the pivot travels with the rectangle:
//
//	FlipRect(FlipRect(r, f, h), f, h.Flipped(f)) == r
func FlipRect(r Rect, flip Flip, handle HandlePosition) Rect {
	var d Point
	if flip.IsHorizontal() && handle.InfluencesHorizontal() {
		if handle.InfluencesLeft() {
			d.X = r.Dx()
		} else {
			d.X = -r.Dx()
		}
	}
	if flip.IsVertical() && handle.InfluencesVertical() {
		if handle.InfluencesTop() {
			d.Y = r.Dy()
		} else {
			d.Y = -r.Dy()
		}
	}
	return r.Add(d)
}
