package resizer_test

import (
	"testing"

	resizer "github.com/BirjuVachhani/rect-resizer"
	"github.com/BirjuVachhani/rect-resizer/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dragBy(delta resizer.Point) (from, to resizer.Point) {
	return geom.Pt(0.0, 0.0), delta
}

func TestResizeFreeform(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(50.0, 50.0))

	got := resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.Freeform)
	require.Equal(t, geom.Rt(0.0, 0.0, 150.0, 150.0), got.Rect)
	require.Equal(t, box, got.OldRect)
	require.Equal(t, resizer.FlipNone, got.Flip)
	require.Equal(t, resizer.Freeform, got.Mode)
	require.False(t, got.MinWidthReached)
	require.False(t, got.MaxWidthReached)
	require.False(t, got.MinHeightReached)
	require.False(t, got.MaxHeightReached)
}

func TestResizeScaleKeepsAspect(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 200.0, 100.0)
	from, to := dragBy(geom.Pt(10.0, 1000.0))

	got := resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.Scale)
	require.Equal(t, geom.Rt(0.0, 0.0, 210.0, 105.0), got.Rect)
	require.InDelta(t, 2.0, got.Rect.AspectRatio(), 1e-9)
}

func TestResizeScaleAspectProperty(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 200.0, 100.0)
	deltas := []resizer.Point{
		geom.Pt(10.0, 1000.0),
		geom.Pt(300.0, 5.0),
		geom.Pt(-50.0, -50.0),
		geom.Pt(-300.0, -300.0),
		geom.Pt(37.0, 0.0),
	}
	handles := []resizer.HandlePosition{resizer.HandleBottomRight, resizer.HandleRight}
	modes := []resizer.ResizeMode{resizer.Scale, resizer.SymmetricScale}

	for _, mode := range modes {
		for _, h := range handles {
			for _, d := range deltas {
				from, to := dragBy(d)
				got := resizer.Resize(box, from, to, h, mode)
				require.InDelta(t, 2.0, got.Rect.AspectRatio(), 1e-9,
					"mode %v handle %v delta %v", mode, h, d)
			}
		}
	}
}

func TestResizeClampedHitsLimits(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	clamp := geom.Rt(0.0, 0.0, 120.0, 120.0)
	from, to := dragBy(geom.Pt(50.0, 50.0))

	got := resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.Freeform,
		resizer.WithClampingRect(clamp))
	require.Equal(t, geom.Rt(0.0, 0.0, 120.0, 120.0), got.Rect)
	assert.True(t, got.MaxWidthReached)
	assert.True(t, got.MaxHeightReached)
	assert.False(t, got.MinWidthReached)
	assert.False(t, got.MinHeightReached)
}

func TestResizeContainmentProperty(t *testing.T) {
	box := geom.Rt(10.0, 10.0, 90.0, 90.0)
	clamp := geom.Rt(0.0, 0.0, 120.0, 120.0)
	handles := []resizer.HandlePosition{
		resizer.HandleTopLeft, resizer.HandleTopRight,
		resizer.HandleBottomLeft, resizer.HandleBottomRight,
		resizer.HandleLeft, resizer.HandleTop,
		resizer.HandleRight, resizer.HandleBottom,
	}
	deltas := []resizer.Point{
		geom.Pt(200.0, 200.0),
		geom.Pt(-200.0, -200.0),
		geom.Pt(200.0, -200.0),
		geom.Pt(-15.0, 40.0),
	}
	modes := []resizer.ResizeMode{
		resizer.Freeform, resizer.Scale, resizer.Symmetric, resizer.SymmetricScale,
	}

	for _, mode := range modes {
		for _, h := range handles {
			for _, d := range deltas {
				from, to := dragBy(d)
				got := resizer.Resize(box, from, to, h, mode, resizer.WithClampingRect(clamp))
				r := got.Rect.Canon()
				assert.True(t, r.Min.X >= clamp.Min.X-1e-9, "mode %v handle %v delta %v: %v", mode, h, d, r)
				assert.True(t, r.Min.Y >= clamp.Min.Y-1e-9, "mode %v handle %v delta %v: %v", mode, h, d, r)
				assert.True(t, r.Max.X <= clamp.Max.X+1e-9, "mode %v handle %v delta %v: %v", mode, h, d, r)
				assert.True(t, r.Max.Y <= clamp.Max.Y+1e-9, "mode %v handle %v delta %v: %v", mode, h, d, r)
			}
		}
	}
}

func TestResizeFlip(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(150.0, 0.0))

	got := resizer.Resize(box, from, to, resizer.HandleTopLeft, resizer.Freeform)
	require.True(t, got.Flip.IsHorizontal())
	require.False(t, got.Flip.IsVertical())
	require.Equal(t, geom.Rt(100.0, 0.0, 150.0, 100.0), got.Rect)
	// The raw size is sign-encoded: the width flipped.
	require.Equal(t, geom.Dim(-50.0, 100.0), got.RawSize)
}

func TestResizeFlipCombinesInitial(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(150.0, 0.0))

	// Flipping an already horizontally flipped box lands back on none.
	got := resizer.Resize(box, from, to, resizer.HandleTopLeft, resizer.Freeform,
		resizer.WithInitialFlip(resizer.FlipHorizontal))
	require.Equal(t, resizer.FlipNone, got.Flip)
	require.Equal(t, geom.Rt(100.0, 0.0, 150.0, 100.0), got.Rect)
}

func TestResizeWithoutFlipPinsAtZero(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(150.0, 0.0))

	got := resizer.Resize(box, from, to, resizer.HandleTopLeft, resizer.Freeform,
		resizer.WithoutFlip())
	require.Equal(t, resizer.FlipNone, got.Flip)
	require.Equal(t, 0.0, got.Rect.Dx())
	require.Equal(t, geom.Rt(100.0, 0.0, 100.0, 100.0), got.Rect)
	require.True(t, got.MinWidthReached)
	require.False(t, got.MinHeightReached)
}

func TestResizeSymmetric(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(10.0, 0.0))

	got := resizer.Resize(box, from, to, resizer.HandleRight, resizer.Symmetric)
	require.Equal(t, geom.Rt(-10.0, 0.0, 110.0, 100.0), got.Rect)
	require.Equal(t, box.Center(), got.Rect.Center())
}

func TestResizeSymmetricFlip(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	// Both edges close in at once, so crossing happens at half the
	// width.
	from, to := dragBy(geom.Pt(-80.0, 0.0))

	got := resizer.Resize(box, from, to, resizer.HandleRight, resizer.Symmetric)
	require.True(t, got.Flip.IsHorizontal())
	require.Equal(t, geom.Rt(20.0, 0.0, 80.0, 100.0), got.Rect)
	require.Equal(t, box.Center(), got.Rect.Center())
}

func TestResizeConstraints(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	cs := resizer.Constraints{MinWidth: 50, MinHeight: 50, MaxWidth: 200, MaxHeight: 200}

	from, to := dragBy(geom.Pt(-90.0, -90.0))
	got := resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.Freeform,
		resizer.WithConstraints(cs))
	require.Equal(t, geom.Rt(0.0, 0.0, 50.0, 50.0), got.Rect)
	assert.True(t, got.MinWidthReached)
	assert.True(t, got.MinHeightReached)
	assert.False(t, got.MaxWidthReached)

	from, to = dragBy(geom.Pt(200.0, 200.0))
	got = resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.Freeform,
		resizer.WithConstraints(cs))
	require.Equal(t, geom.Rt(0.0, 0.0, 200.0, 200.0), got.Rect)
	assert.True(t, got.MaxWidthReached)
	assert.True(t, got.MaxHeightReached)
	assert.False(t, got.MinWidthReached)
}

func TestResizePositiveMinimumPreventsFlip(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	cs := resizer.Unconstrained()
	cs.MinWidth = 20

	// Dragging the left edge far past the right one must not cross:
	// the width bottoms out at the minimum instead of flipping.
	from, to := dragBy(geom.Pt(150.0, 0.0))
	got := resizer.Resize(box, from, to, resizer.HandleLeft, resizer.Freeform,
		resizer.WithConstraints(cs))
	require.Equal(t, resizer.FlipNone, got.Flip)
	require.Equal(t, geom.Rt(80.0, 0.0, 100.0, 100.0), got.Rect)
	require.True(t, got.MinWidthReached)
}

func TestResizePositiveMinimumHoldsOnlyItsAxis(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 100.0, 100.0)
	cs := resizer.Unconstrained()
	cs.MinWidth = 20

	// The unbounded vertical axis still flips while the horizontal
	// one pins at its minimum.
	from, to := dragBy(geom.Pt(150.0, 150.0))
	got := resizer.Resize(box, from, to, resizer.HandleTopLeft, resizer.Freeform,
		resizer.WithConstraints(cs))
	require.Equal(t, resizer.FlipVertical, got.Flip)
	require.Equal(t, geom.Rt(80.0, 100.0, 100.0, 150.0), got.Rect)
	require.True(t, got.MinWidthReached)
	require.False(t, got.MinHeightReached)
}

func TestResizeScaleSideHandle(t *testing.T) {
	box := geom.Rt(0.0, 0.0, 200.0, 100.0)
	from, to := dragBy(geom.Pt(50.0, 999.0))

	// Only the dragged edge follows the pointer; height comes from
	// the aspect ratio, centered on the fixed axis midline.
	got := resizer.Resize(box, from, to, resizer.HandleRight, resizer.Scale)
	require.Equal(t, geom.Rt(0.0, -12.5, 250.0, 112.5), got.Rect)
	require.Equal(t, 0.0, got.Rect.Min.X)
	require.InDelta(t, 2.0, got.Rect.AspectRatio(), 1e-9)
}

func TestResizeScaleCornerClamped(t *testing.T) {
	box := geom.Rt(10.0, 10.0, 90.0, 90.0)
	clamp := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(100.0, 20.0))

	got := resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.Scale,
		resizer.WithClampingRect(clamp))
	require.Equal(t, geom.Rt(10.0, 10.0, 100.0, 100.0), got.Rect)
	require.InDelta(t, 1.0, got.Rect.AspectRatio(), 1e-9)
}

func TestResizeScaleSideClamped(t *testing.T) {
	box := geom.Rt(10.0, 40.0, 30.0, 60.0)
	clamp := geom.Rt(0.0, 0.0, 100.0, 100.0)
	from, to := dragBy(geom.Pt(100.0, 0.0))

	got := resizer.Resize(box, from, to, resizer.HandleRight, resizer.Scale,
		resizer.WithClampingRect(clamp))
	require.Equal(t, geom.Rt(10.0, 5.0, 100.0, 95.0), got.Rect)
	require.InDelta(t, 1.0, got.Rect.AspectRatio(), 1e-9)
	// Anchored on the fixed left edge, centered on the midline.
	require.Equal(t, box.Min.X, got.Rect.Min.X)
	require.Equal(t, box.Center().Y, got.Rect.Center().Y)
}

func TestResizeSymmetricScaleClamped(t *testing.T) {
	box := geom.Rt(40.0, 40.0, 60.0, 60.0)
	clamp := geom.Rt(0.0, 0.0, 100.0, 120.0)
	from, to := dragBy(geom.Pt(100.0, 100.0))

	got := resizer.Resize(box, from, to, resizer.HandleBottomRight, resizer.SymmetricScale,
		resizer.WithClampingRect(clamp))
	require.Equal(t, geom.Rt(0.0, 0.0, 100.0, 100.0), got.Rect)
	require.Equal(t, box.Center(), got.Rect.Center())
	// Pinned against the clamp horizontally but not vertically.
	assert.True(t, got.MaxWidthReached)
	assert.False(t, got.MaxHeightReached)
}

func TestResizeHandleNone(t *testing.T) {
	box := geom.Rt(10.0, 10.0, 90.0, 90.0)
	from, to := dragBy(geom.Pt(50.0, 50.0))

	got := resizer.Resize(box, from, to, resizer.HandleNone, resizer.Freeform)
	require.Equal(t, box, got.Rect)
	require.False(t, got.MinWidthReached)
	require.False(t, got.MaxWidthReached)
}

func TestResizeFlippedIntoClamp(t *testing.T) {
	box := geom.Rt(10.0, 10.0, 90.0, 90.0)
	clamp := geom.Rt(0.0, 0.0, 120.0, 120.0)
	from, to := dragBy(geom.Pt(200.0, 200.0))

	// Dragging the top-left corner far past the bottom-right flips
	// the box, which then grows from its old bottom-right corner up
	// to the clamp boundary.
	got := resizer.Resize(box, from, to, resizer.HandleTopLeft, resizer.Freeform,
		resizer.WithClampingRect(clamp))
	require.Equal(t, resizer.FlipBoth, got.Flip)
	require.Equal(t, geom.Rt(90.0, 90.0, 120.0, 120.0), got.Rect)
}
