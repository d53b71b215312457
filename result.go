package resizer

// MoveResult describes the outcome of a Move call.
type MoveResult struct {
	// Rect is the moved rectangle.
	Rect Rect
	// OldRect is the rectangle the move started from.
	OldRect Rect
	// Delta is the raw pointer delta, before clamping.
	Delta Point
	// RawSize is the size of the unclamped rectangle.
	RawSize Dimension
}

// ResizeResult describes the outcome of a Resize call.
type ResizeResult struct {
	// Rect is the resized rectangle, normalized and clamped.
	Rect Rect
	// OldRect is the rectangle the resize started from.
	OldRect Rect
	// Delta is the raw pointer delta.
	Delta Point
	// RawSize is the sign-encoded size before normalization; a
	// negative component means that axis flipped.
	RawSize Dimension
	// Flip is the resulting flip state, combined with the flip the
	// drag started in.
	Flip Flip
	// Mode is the resize mode that produced this result.
	Mode ResizeMode

	// The limit flags report that this frame is pinned against a
	// hard limit on that axis: a size constraint or, for the max
	// flags, the clamping rectangle.
	MinWidthReached  bool
	MaxWidthReached  bool
	MinHeightReached bool
	MaxHeightReached bool
}
