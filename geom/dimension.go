package geom

// A Dimension is a signed width and height pair. A negative component
// is meaningful: the resize transformer uses it to encode a pending
// flip on that axis before a rectangle is materialized.
type Dimension[T Scalar] struct {
	W, H T
}

// Dim is shorthand for Dimension{w, h}.
func Dim[T Scalar](w, h T) Dimension[T] {
	return Dimension[T]{w, h}
}

// Abs returns d with both components non-negative.
func (d Dimension[T]) Abs() Dimension[T] {
	if d.W < 0 {
		d.W = -d.W
	}
	if d.H < 0 {
		d.H = -d.H
	}
	return d
}

// Point returns d as a size vector.
func (d Dimension[T]) Point() Point[T] {
	return Point[T]{d.W, d.H}
}

// AspectRatio returns the width-to-height ratio of d.
func (d Dimension[T]) AspectRatio() float64 {
	return float64(d.W) / float64(d.H)
}
