package resizer

import "github.com/BirjuVachhani/rect-resizer/geom"

// Move translates initial by the pointer delta, keeping the result
// inside the clamping rectangle. The clamped delta is recovered from
// the contained rectangle's top-left and re-applied to the original,
// so clamping can only ever change the position, never the size.
//
// Move never fails; with the default unbounded clamp it is a plain
// translation, and a zero delta returns the box unchanged.
func Move(initial Rect, initialPointer, pointer Point, opts ...Option) MoveResult {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	delta := pointer.Sub(initialPointer)
	moved := initial.Add(delta)
	clamped := o.clamp.Contain(moved)

	return MoveResult{
		Rect:    initial.Add(clamped.Min.Sub(initial.Min)),
		OldRect: initial,
		Delta:   delta,
		RawSize: geom.Dim(moved.Dx(), moved.Dy()),
	}
}
