package geom

// Pt is shorthand for Point{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// A Point is an X, Y coordinate pair. It doubles as a 2D vector for
// positions, deltas, and sizes.
type Point[T Scalar] struct {
	X, Y T
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{p.X * s, p.Y * s}
}

func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{p.X / s, p.Y / s}
}

// DistSq returns the squared distance between p and q. It avoids the
// square root, making it safe for ordering comparisons on integer
// scalars as well.
func (p Point[T]) DistSq(q Point[T]) T {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}
