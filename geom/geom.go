// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// vastly extends their capabilities. Unlike image.Rectangle, it is
// generic over the scalar type and permits unnormalized rectangles,
// which the resize transformer uses to carry sign information through
// intermediate computations.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// A Segment is a line segment between two points.
type Segment[T Scalar] struct {
	From, To Point[T]
}

// Seg is a convenience constructor for Segment.
func Seg[T Scalar](from, to Point[T]) Segment[T] {
	return Segment[T]{From: from, To: to}
}
