package geom

import "iter"

// A Rect contains the points with Min.X <= X < Max.X, Min.Y <= Y <
// Max.Y. It is well-formed if Min.X <= Max.X and likewise for Y. Most
// methods tolerate unnormalized rectangles; Canon normalizes one. A
// rectangle with negative extent is a legal intermediate value whose
// signs encode a pending flip.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}. The returned
// rectangle has minimum and maximum coordinates swapped if necessary
// so that it is well-formed.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// RtSize returns the rectangle with top-left corner (x, y) and the
// given width and height.
func RtSize[T Scalar](x, y, w, h T) Rect[T] {
	return Rt(x, y, x+w, y+h)
}

// FromCenter returns the rectangle of the given size centered at c.
// A negative size component produces an unnormalized rectangle.
func FromCenter[T Scalar](c Point[T], size Point[T]) Rect[T] {
	half := size.Div(2)
	return Rect[T]{Min: c.Sub(half), Max: c.Add(half)}
}

func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

func (r Rect[T]) Size() Point[T] {
	return Point[T]{
		r.Max.X - r.Min.X,
		r.Max.Y - r.Min.Y,
	}
}

func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{
		Point[T]{r.Min.X + p.X, r.Min.Y + p.Y},
		Point[T]{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{
		Point[T]{r.Min.X - p.X, r.Min.Y - p.Y},
		Point[T]{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rect[T]) In(s Rect[T]) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return r.Min.Add(r.Max).Div(2)
}

// CenterAt returns a new rectangle with the same dimensions as r but
// with a center point at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	hs := r.Size().Div(2)
	return Rect[T]{
		Min: p.Sub(hs),
		Max: p.Add(r.Size().Sub(hs)),
	}
}

// AspectRatio returns the width-to-height ratio of r. It is infinite
// or NaN for rectangles with zero height.
func (r Rect[T]) AspectRatio() float64 {
	return float64(r.Dx()) / float64(r.Dy())
}

func (r Rect[T]) TopRight() Point[T] {
	return Point[T]{r.Max.X, r.Min.Y}
}

func (r Rect[T]) BottomLeft() Point[T] {
	return Point[T]{r.Min.X, r.Max.Y}
}

// Corners yields the corners of r clockwise starting at the top-left.
func (r Rect[T]) Corners() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		_ = yield(r.Min) &&
			yield(r.TopRight()) &&
			yield(r.Max) &&
			yield(r.BottomLeft())
	}
}

// Sides yields the sides of r in left, top, right, bottom order.
// Callers that pair sides with other per-side data rely on that
// order.
func (r Rect[T]) Sides() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		_ = yield(Seg(r.Min, r.BottomLeft())) &&
			yield(Seg(r.Min, r.TopRight())) &&
			yield(Seg(r.TopRight(), r.Max)) &&
			yield(Seg(r.BottomLeft(), r.Max))
	}
}

// Contain returns inner moved, and shrunk where necessary, so that it
// lies entirely within r. Containing within an infinite rectangle is
// a no-op.
func (r Rect[T]) Contain(inner Rect[T]) Rect[T] {
	inner = inner.Canon()
	if inner.Dx() > r.Dx() {
		inner.Max.X = inner.Min.X + r.Dx()
	}
	if inner.Dy() > r.Dy() {
		inner.Max.Y = inner.Min.Y + r.Dy()
	}
	if inner.Min.X < r.Min.X {
		inner = inner.Add(Pt(r.Min.X-inner.Min.X, 0))
	}
	if inner.Max.X > r.Max.X {
		inner = inner.Add(Pt(r.Max.X-inner.Max.X, 0))
	}
	if inner.Min.Y < r.Min.Y {
		inner = inner.Add(Pt(0, r.Min.Y-inner.Min.Y))
	}
	if inner.Max.Y > r.Max.Y {
		inner = inner.Add(Pt(0, r.Max.Y-inner.Max.Y))
	}
	return inner
}

// ContainScaled is like Contain except that an inner rectangle that
// does not fit is shrunk proportionally, keeping its own aspect
// ratio, instead of being clamped per axis.
func (r Rect[T]) ContainScaled(inner Rect[T]) Rect[T] {
	inner = inner.Canon()
	w, h := float64(inner.Dx()), float64(inner.Dy())
	rw, rh := float64(r.Dx()), float64(r.Dy())
	if w > rw || h > rh {
		scale := min(rw/w, rh/h)
		inner.Max.X = inner.Min.X + T(w*scale)
		inner.Max.Y = inner.Min.Y + T(h*scale)
	}
	return r.Contain(inner)
}
