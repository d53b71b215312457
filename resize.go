package resizer

import (
	"math"

	"github.com/BirjuVachhani/rect-resizer/geom"
)

// Resize computes the rectangle resulting from dragging the given
// handle from initialPointer to pointer, honoring the resize mode,
// the size constraints, and the clamping rectangle. The initial box
// must be non-degenerate (positive width and height); otherwise its
// aspect ratio, and anything derived from it, is undefined.
func Resize(initial Rect, initialPointer, pointer Point, handle HandlePosition, mode ResizeMode, opts ...Option) ResizeResult {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	delta := pointer.Sub(initialPointer)

	flip := FlipNone
	if o.allowFlip {
		flip = flipForResize(initial, delta, handle, mode, o.constraints)
	}

	sizeDelta := delta
	if mode.HasSymmetry() {
		// Both edges move by half the pointer delta each.
		sizeDelta = delta.Mul(2)
	}

	raw := calculateNewSize(initial, handle, sizeDelta, mode, flip, o.clamp, o.constraints, o.allowFlip)
	size := raw.Abs()

	rect := buildRect(initial, handle, mode, size)
	if o.allowFlip && !mode.HasSymmetry() {
		rect = FlipRect(rect, flip, handle)
	}
	if o.clamp != Largest {
		if mode.IsScalable() {
			rect = o.clamp.ContainScaled(rect)
		} else {
			rect = o.clamp.Contain(rect)
		}
	}

	return ResizeResult{
		Rect:             rect,
		OldRect:          initial,
		Delta:            delta,
		RawSize:          raw,
		Flip:             flip.Combine(o.flip),
		Mode:             mode,
		MinWidthReached:  delta.X != 0 && rect.Dx() <= initial.Dx() && approx(rect.Dx(), o.constraints.MinWidth),
		MaxWidthReached:  delta.X != 0 && rect.Dx() >= initial.Dx() && (approx(rect.Dx(), o.constraints.MaxWidth) || approx(rect.Dx(), o.clamp.Dx())),
		MinHeightReached: delta.Y != 0 && rect.Dy() <= initial.Dy() && approx(rect.Dy(), o.constraints.MinHeight),
		MaxHeightReached: delta.Y != 0 && rect.Dy() >= initial.Dy() && (approx(rect.Dy(), o.constraints.MaxHeight) || approx(rect.Dy(), o.clamp.Dy())),
	}
}

// flipForResize reports which axes the drag has crossed. The handle's
// influence picks the sign of the delta, and symmetric modes cross at
// half the distance since both edges close in at once. An axis with a
// positive minimum size never reaches zero, so it cannot cross.
func flipForResize(initial Rect, delta Point, handle HandlePosition, mode ResizeMode, cs Constraints) Flip {
	scale := 1.0
	if mode.HasSymmetry() {
		scale = 2
	}

	x, y := 1.0, 1.0
	switch {
	case handle.InfluencesLeft():
		x = initial.Dx() - delta.X*scale
	case handle.InfluencesRight():
		x = initial.Dx() + delta.X*scale
	}
	switch {
	case handle.InfluencesTop():
		y = initial.Dy() - delta.Y*scale
	case handle.InfluencesBottom():
		y = initial.Dy() + delta.Y*scale
	}

	f := FlipOf(x, y)
	if cs.MinWidth > 0 {
		f &^= FlipHorizontal
	}
	if cs.MinHeight > 0 {
		f &^= FlipVertical
	}
	return f
}

// calculateNewSize produces the raw signed dimension of the resized
// box: the magnitude is the candidate size after clamping, constraint
// application, and aspect re-locking; a negative sign marks an axis
// that flipped.
func calculateNewSize(initial Rect, handle HandlePosition, delta Point, mode ResizeMode, flip Flip, clamp Rect, cs Constraints, allowFlip bool) Dimension {
	aspect := initial.AspectRatio()

	// Work in unflipped space. Symmetric math is centered and needs
	// no mirroring.
	box := initial
	if allowFlip && !mode.HasSymmetry() {
		box = FlipRect(initial, flip, handle)
	}

	l, t, r, b := box.Min.X, box.Min.Y, box.Max.X, box.Max.Y
	if mode.IsScalable() && handle.IsSide() {
		// Only the dragged edge follows the pointer; the
		// perpendicular dimension comes from the aspect ratio,
		// centered on the fixed axis's midline.
		switch handle {
		case HandleLeft, HandleRight:
			if handle == HandleLeft {
				l += delta.X
			} else {
				r += delta.X
			}
			h := (r - l) / aspect
			t = box.Center().Y - h/2
			b = t + h
		case HandleTop, HandleBottom:
			if handle == HandleTop {
				t += delta.Y
			} else {
				b += delta.Y
			}
			w := (b - t) * aspect
			l = box.Center().X - w/2
			r = l + w
		}
	} else {
		if handle.InfluencesLeft() {
			l += delta.X
		}
		if handle.InfluencesTop() {
			t += delta.Y
		}
		if handle.InfluencesRight() {
			r += delta.X
		}
		if handle.InfluencesBottom() {
			b += delta.Y
		}
	}

	// Signed extents; a negative one encodes the pending flip.
	w, h := r-l, b-t

	// An axis that flipped mirrors its overshoot to the other side.
	// One that cannot flip, whether disabled or held by a positive
	// minimum, pins at zero and lets the minimum constraint take
	// over.
	absW, absH := max(w, 0), max(h, 0)
	if flip.IsHorizontal() {
		absW = math.Abs(w)
	}
	if flip.IsVertical() {
		absH = math.Abs(h)
	}

	if clamp != Largest {
		// Past zero the box grows away from its original side, so the
		// growth region is measured from the mirrored box with the
		// mirrored handle.
		eff := handle
		if allowFlip {
			eff = handle.Flipped(flip)
		}
		avail := availableArea(box, clamp, eff, mode)
		if mode.IsScalable() {
			limit := scaledClampingRect(box, avail, eff, mode, aspect)
			absW = min(absW, math.Abs(limit.Dx()))
			absH = min(absH, math.Abs(limit.Dy()))
		} else {
			absW = min(absW, avail.Dx())
			absH = min(absH, avail.Dy())
		}
	}

	// Constrain by magnitude; the signs are restored below.
	d := cs.Constrain(geom.Dim(absW, absH))
	absW, absH = d.W, d.H

	// Re-lock the aspect ratio by shrinking whichever dimension
	// overgrew it.
	if mode.IsScalable() {
		if absW/absH > aspect {
			absW = absH * aspect
		} else {
			absH = absW / aspect
		}
	}

	if flip.IsHorizontal() {
		absW = -absW
	}
	if flip.IsVertical() {
		absH = -absH
	}
	return geom.Dim(absW, absH)
}

// buildRect places the computed size against the initial box: mirrored
// around the center for symmetric modes, anchored on the fixed edge
// and centered on the midline for scalable side handles, and anchored
// on the uninfluenced edges otherwise.
func buildRect(initial Rect, handle HandlePosition, mode ResizeMode, size Dimension) Rect {
	if mode.HasSymmetry() {
		return geom.FromCenter(initial.Center(), size.Point())
	}

	if mode.IsScalable() && handle.IsSide() {
		c := initial.Center()
		switch handle {
		case HandleLeft:
			return geom.RtSize(initial.Max.X-size.W, c.Y-size.H/2, size.W, size.H)
		case HandleRight:
			return geom.RtSize(initial.Min.X, c.Y-size.H/2, size.W, size.H)
		case HandleTop:
			return geom.RtSize(c.X-size.W/2, initial.Max.Y-size.H, size.W, size.H)
		case HandleBottom:
			return geom.RtSize(c.X-size.W/2, initial.Min.Y, size.W, size.H)
		}
	}

	l, t := initial.Min.X, initial.Min.Y
	if handle.InfluencesLeft() {
		l = initial.Max.X - size.W
	}
	if handle.InfluencesTop() {
		t = initial.Max.Y - size.H
	}
	return geom.RtSize(l, t, size.W, size.H)
}
