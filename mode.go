package resizer

// ResizeMode is the policy governing symmetry and aspect ratio during
// a resize.
type ResizeMode uint8

const (
	// Freeform resizes the influenced edges independently.
	Freeform ResizeMode = iota
	// Scale preserves the aspect ratio of the initial box.
	Scale
	// Symmetric mirrors the resize around the box center.
	Symmetric
	// SymmetricScale mirrors around the center and preserves the
	// aspect ratio.
	SymmetricScale
)

// HasSymmetry reports whether the resize mirrors around the box
// center.
func (m ResizeMode) HasSymmetry() bool {
	return m == Symmetric || m == SymmetricScale
}

// IsScalable reports whether the resize preserves the aspect ratio.
func (m ResizeMode) IsScalable() bool {
	return m == Scale || m == SymmetricScale
}

func (m ResizeMode) String() string {
	switch m {
	case Freeform:
		return "freeform"
	case Scale:
		return "scale"
	case Symmetric:
		return "symmetric"
	case SymmetricScale:
		return "symmetricScale"
	}
	return "invalid"
}
