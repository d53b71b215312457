package resizer

// Option configures a Move or Resize call.
type Option func(*options)

type options struct {
	clamp       Rect
	constraints Constraints
	flip        Flip
	allowFlip   bool
}

func defaultOptions() options {
	return options{
		clamp:       Largest,
		constraints: Unconstrained(),
		allowFlip:   true,
	}
}

// WithClampingRect keeps the result inside r.
func WithClampingRect(r Rect) Option {
	return func(o *options) {
		o.clamp = r
	}
}

// WithConstraints bounds the size the resize may produce.
func WithConstraints(c Constraints) Option {
	return func(o *options) {
		o.constraints = c
	}
}

// WithInitialFlip sets the flip state the drag started in. The
// result's Flip combines it with whatever flip the drag itself
// causes.
func WithInitialFlip(f Flip) Option {
	return func(o *options) {
		o.flip = f
	}
}

// WithoutFlip pins the box at zero size instead of letting a drag
// cross to the other side.
func WithoutFlip() Option {
	return func(o *options) {
		o.allowFlip = false
	}
}
