package resizer

import "fmt"

// HandlePosition identifies the handle being dragged during a resize:
// one of the four corners, one of the four edge midpoints, or no
// handle at all.
type HandlePosition uint8

const (
	HandleNone HandlePosition = iota
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleLeft
	HandleTop
	HandleRight
	HandleBottom
)

// InfluencesLeft reports whether dragging h moves the left edge.
func (h HandlePosition) InfluencesLeft() bool {
	switch h {
	case HandleTopLeft, HandleBottomLeft, HandleLeft:
		return true
	}
	return false
}

// InfluencesTop reports whether dragging h moves the top edge.
func (h HandlePosition) InfluencesTop() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleTop:
		return true
	}
	return false
}

// InfluencesRight reports whether dragging h moves the right edge.
func (h HandlePosition) InfluencesRight() bool {
	switch h {
	case HandleTopRight, HandleBottomRight, HandleRight:
		return true
	}
	return false
}

// InfluencesBottom reports whether dragging h moves the bottom edge.
func (h HandlePosition) InfluencesBottom() bool {
	switch h {
	case HandleBottomLeft, HandleBottomRight, HandleBottom:
		return true
	}
	return false
}

func (h HandlePosition) InfluencesHorizontal() bool {
	return h.InfluencesLeft() || h.InfluencesRight()
}

func (h HandlePosition) InfluencesVertical() bool {
	return h.InfluencesTop() || h.InfluencesBottom()
}

// IsSide reports whether h is an edge-midpoint handle.
func (h HandlePosition) IsSide() bool {
	switch h {
	case HandleLeft, HandleTop, HandleRight, HandleBottom:
		return true
	}
	return false
}

// IsCorner reports whether h is a corner handle.
func (h HandlePosition) IsCorner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight:
		return true
	}
	return false
}

// IsHorizontal reports whether h is a side handle that drags
// horizontally.
func (h HandlePosition) IsHorizontal() bool {
	return h == HandleLeft || h == HandleRight
}

// IsVertical reports whether h is a side handle that drags
// vertically.
func (h HandlePosition) IsVertical() bool {
	return h == HandleTop || h == HandleBottom
}

// Opposite returns the handle point-symmetric to h.
func (h HandlePosition) Opposite() HandlePosition {
	switch h {
	case HandleNone:
		return HandleNone
	case HandleTopLeft:
		return HandleBottomRight
	case HandleTopRight:
		return HandleBottomLeft
	case HandleBottomLeft:
		return HandleTopRight
	case HandleBottomRight:
		return HandleTopLeft
	case HandleLeft:
		return HandleRight
	case HandleTop:
		return HandleBottom
	case HandleRight:
		return HandleLeft
	case HandleBottom:
		return HandleTop
	}
	panic(fmt.Sprintf("resizer: unknown handle %v", h))
}

// Flipped returns h mirrored per the given flip.
func (h HandlePosition) Flipped(f Flip) HandlePosition {
	if f.IsHorizontal() {
		h = h.mirrorX()
	}
	if f.IsVertical() {
		h = h.mirrorY()
	}
	return h
}

func (h HandlePosition) mirrorX() HandlePosition {
	switch h {
	case HandleTopLeft:
		return HandleTopRight
	case HandleTopRight:
		return HandleTopLeft
	case HandleBottomLeft:
		return HandleBottomRight
	case HandleBottomRight:
		return HandleBottomLeft
	case HandleLeft:
		return HandleRight
	case HandleRight:
		return HandleLeft
	}
	return h
}

func (h HandlePosition) mirrorY() HandlePosition {
	switch h {
	case HandleTopLeft:
		return HandleBottomLeft
	case HandleBottomLeft:
		return HandleTopLeft
	case HandleTopRight:
		return HandleBottomRight
	case HandleBottomRight:
		return HandleTopRight
	case HandleTop:
		return HandleBottom
	case HandleBottom:
		return HandleTop
	}
	return h
}

// Position returns the point on r that h names: a corner, an edge
// midpoint, or the center for HandleNone.
func (h HandlePosition) Position(r Rect) Point {
	c := r.Center()
	switch h {
	case HandleNone:
		return c
	case HandleTopLeft:
		return r.Min
	case HandleTopRight:
		return r.TopRight()
	case HandleBottomLeft:
		return r.BottomLeft()
	case HandleBottomRight:
		return r.Max
	case HandleLeft:
		return Point{X: r.Min.X, Y: c.Y}
	case HandleTop:
		return Point{X: c.X, Y: r.Min.Y}
	case HandleRight:
		return Point{X: r.Max.X, Y: c.Y}
	case HandleBottom:
		return Point{X: c.X, Y: r.Max.Y}
	}
	panic(fmt.Sprintf("resizer: unknown handle %v", h))
}

// Anchor returns the point on r that stays fixed while h is dragged.
func (h HandlePosition) Anchor(r Rect) Point {
	return h.Opposite().Position(r)
}

func (h HandlePosition) String() string {
	switch h {
	case HandleNone:
		return "none"
	case HandleTopLeft:
		return "topLeft"
	case HandleTopRight:
		return "topRight"
	case HandleBottomLeft:
		return "bottomLeft"
	case HandleBottomRight:
		return "bottomRight"
	case HandleLeft:
		return "left"
	case HandleTop:
		return "top"
	case HandleRight:
		return "right"
	case HandleBottom:
		return "bottom"
	}
	return "invalid"
}
