package resizer

// Flip is the mirroring state of a box. The two axes are independent
// bits, so composition is exclusive-or and every flip is its own
// inverse.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << (iota - 1)
	FlipVertical
	FlipBoth = FlipHorizontal | FlipVertical
)

// FlipOf returns the flip encoded by the signs of x and y: horizontal
// for a negative x, vertical for a negative y.
func FlipOf(x, y float64) Flip {
	var f Flip
	if x < 0 {
		f |= FlipHorizontal
	}
	if y < 0 {
		f |= FlipVertical
	}
	return f
}

func (f Flip) IsHorizontal() bool { return f&FlipHorizontal != 0 }

func (f Flip) IsVertical() bool { return f&FlipVertical != 0 }

// Combine returns the flip resulting from applying f and then g.
func (f Flip) Combine(g Flip) Flip { return f ^ g }

func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "none"
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	case FlipBoth:
		return "both"
	}
	return "invalid"
}
