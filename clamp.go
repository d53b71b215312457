package resizer

import (
	"fmt"
	"math"

	"deedles.dev/xiter"
	"github.com/BirjuVachhani/rect-resizer/geom"
)

// sideOrder matches the yield order of geom.Rect.Sides.
var sideOrder = [...]HandlePosition{HandleLeft, HandleTop, HandleRight, HandleBottom}

// segmentIntersection returns the point where segments ab and cd
// cross. Parallel or non-crossing segments report no intersection.
func segmentIntersection(a, b, c, d Point) (Point, bool) {
	den := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	if den == 0 {
		return Point{}, false
	}
	t := ((c.X-a.X)*(d.Y-c.Y) - (c.Y-a.Y)*(d.X-c.X)) / den
	u := ((c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return geom.Pt(a.X+t*(b.X-a.X), a.Y+t*(b.Y-a.Y)), true
}

// extendLineToRect extends the infinite line through a and b until it
// crosses the boundary of r, reporting false if the line misses r
// entirely.
func extendLineToRect(a, b Point, r Rect) (Point, Point, bool) {
	switch {
	case a.Y == b.Y:
		if a.Y < r.Min.Y || a.Y > r.Max.Y {
			return Point{}, Point{}, false
		}
		return geom.Pt(r.Min.X, a.Y), geom.Pt(r.Max.X, a.Y), true
	case a.X == b.X:
		if a.X < r.Min.X || a.X > r.Max.X {
			return Point{}, Point{}, false
		}
		return geom.Pt(a.X, r.Min.Y), geom.Pt(a.X, r.Max.Y), true
	}

	slope := (b.Y - a.Y) / (b.X - a.X)
	yAtLeft := a.Y + slope*(r.Min.X-a.X)
	yAtRight := a.Y + slope*(r.Max.X-a.X)
	xAtTop := a.X + (r.Min.Y-a.Y)/slope
	xAtBottom := a.X + (r.Max.Y-a.Y)/slope

	withinX := func(x float64) bool { return x >= r.Min.X && x <= r.Max.X }
	withinY := func(y float64) bool { return y >= r.Min.Y && y <= r.Max.Y }

	switch {
	case withinY(yAtLeft) && withinY(yAtRight):
		return geom.Pt(r.Min.X, yAtLeft), geom.Pt(r.Max.X, yAtRight), true
	case withinY(yAtLeft) && withinX(xAtBottom):
		return geom.Pt(r.Min.X, yAtLeft), geom.Pt(xAtBottom, r.Max.Y), true
	case withinY(yAtLeft) && withinX(xAtTop):
		return geom.Pt(r.Min.X, yAtLeft), geom.Pt(xAtTop, r.Min.Y), true
	case withinX(xAtTop) && withinY(yAtRight):
		return geom.Pt(xAtTop, r.Min.Y), geom.Pt(r.Max.X, yAtRight), true
	case withinX(xAtBottom) && withinY(yAtRight):
		return geom.Pt(xAtBottom, r.Max.Y), geom.Pt(r.Max.X, yAtRight), true
	}
	return Point{}, Point{}, false
}

// closestEdge finds the side of outer nearest to inner's center,
// probing along the two diagonal directions of inner. The excluded
// side is never selected; pass HandleNone to consider all four.
//
// When inner lies strictly inside outer at least one probe crosses
// outer's boundary, so the search cannot come up empty.
func closestEdge(outer, inner Rect, exclude HandlePosition) (HandlePosition, bool) {
	center := inner.Center()
	best := HandleNone
	bestDist := math.Inf(1)

	for _, corner := range [...]Point{inner.Max, inner.TopRight()} {
		from, to, ok := extendLineToRect(center, corner, outer)
		if !ok {
			continue
		}
		for i, side := range xiter.Enumerate(outer.Sides()) {
			if sideOrder[i] == exclude {
				continue
			}
			p, ok := segmentIntersection(from, to, side.From, side.To)
			if !ok {
				continue
			}
			if d := p.DistSq(center); d < bestDist {
				bestDist, best = d, sideOrder[i]
			}
		}
	}
	return best, best != HandleNone
}

// availableArea is the region the box may occupy while the handle
// drags: the influenced edges extend to the clamping rectangle, the
// rest stay anchored to the initial box. Symmetric modes grow in both
// directions at once, so their area is the largest rectangle centered
// on the box. Scalable side handles additionally grow on the
// perpendicular axis, which therefore spans the full clamp.
func availableArea(initial, clamp Rect, handle HandlePosition, mode ResizeMode) Rect {
	if mode.HasSymmetry() {
		c := initial.Center()
		halfW := min(c.X-clamp.Min.X, clamp.Max.X-c.X)
		halfH := min(c.Y-clamp.Min.Y, clamp.Max.Y-c.Y)
		return geom.FromCenter(c, geom.Pt(2*halfW, 2*halfH))
	}

	l, t, r, b := initial.Min.X, initial.Min.Y, initial.Max.X, initial.Max.Y
	if handle.InfluencesLeft() {
		l = clamp.Min.X
	}
	if handle.InfluencesTop() {
		t = clamp.Min.Y
	}
	if handle.InfluencesRight() {
		r = clamp.Max.X
	}
	if handle.InfluencesBottom() {
		b = clamp.Max.Y
	}
	if mode.IsScalable() && handle.IsSide() {
		if handle.IsHorizontal() {
			t, b = clamp.Min.Y, clamp.Max.Y
		} else {
			l, r = clamp.Min.X, clamp.Max.X
		}
	}
	return geom.Rt(l, t, r, b)
}

// scaledClampingRect returns the largest rectangle of the given
// aspect ratio the resize may produce inside avail, anchored the way
// the handle anchors the box.
func scaledClampingRect(initial, avail Rect, handle HandlePosition, mode ResizeMode, aspect float64) Rect {
	if mode.HasSymmetry() {
		w, h := fitAspect(avail, aspect)
		return geom.FromCenter(initial.Center(), geom.Pt(w, h))
	}
	if handle.IsSide() {
		return sideClampingRect(initial, avail, handle, aspect)
	}
	w, h := fitAspect(avail, aspect)
	return FromHandle(handle.Anchor(initial), handle.Opposite(), w, h)
}

// fitAspect returns the largest width and height pair with the given
// aspect ratio that fits in r.
func fitAspect(r Rect, aspect float64) (w, h float64) {
	if aspect > r.AspectRatio() {
		w = r.Dx()
		return w, w / aspect
	}
	h = r.Dy()
	return h * aspect, h
}

// sideClampingRect derives the clamping rectangle for a scalable side
// handle. The closest edge of the available area bounds proportional
// growth about the box's midline; the span between the fixed edge and
// the area boundary on the dragged side caps it, anchoring the result
// on the correct fixed edge.
func sideClampingRect(initial, avail Rect, handle HandlePosition, aspect float64) Rect {
	c := initial.Center()

	var w, h float64
	edge, ok := closestEdge(avail, initial, handle.Opposite())
	if !ok {
		// The box sits outside the available area; the plain fit is
		// the best bound left.
		w, h = fitAspect(avail, aspect)
	} else {
		switch edge {
		case HandleLeft:
			w = 2 * (c.X - avail.Min.X)
			h = w / aspect
		case HandleRight:
			w = 2 * (avail.Max.X - c.X)
			h = w / aspect
		case HandleTop:
			h = 2 * (c.Y - avail.Min.Y)
			w = h * aspect
		case HandleBottom:
			h = 2 * (avail.Max.Y - c.Y)
			w = h * aspect
		}
	}

	switch handle {
	case HandleLeft:
		if maxW := initial.Max.X - avail.Min.X; w > maxW {
			w, h = maxW, maxW/aspect
		}
	case HandleRight:
		if maxW := avail.Max.X - initial.Min.X; w > maxW {
			w, h = maxW, maxW/aspect
		}
	case HandleTop:
		if maxH := initial.Max.Y - avail.Min.Y; h > maxH {
			w, h = maxH*aspect, maxH
		}
	case HandleBottom:
		if maxH := avail.Max.Y - initial.Min.Y; h > maxH {
			w, h = maxH*aspect, maxH
		}
	default:
		panic(fmt.Sprintf("resizer: %v is not a side handle", handle))
	}

	return FromHandle(handle.Anchor(initial), handle.Opposite(), w, h)
}
