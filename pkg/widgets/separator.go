package widgets

// Separator is a thin dividing line. It is purely decorative: constructed
// on the backend, never input-capable, never a trigger.
type Separator struct {
	Attributes

	// Orientation is the separator axis. Horizontal by default.
	Orientation Orientation
}

// NewSeparator creates a horizontal separator with default padding.
func NewSeparator() Separator {
	return Separator{Attributes: Attributes{Padding: DefaultPadding}}
}

func (s Separator) Kind() Kind         { return KindSeparator }
func (s Separator) InputCapable() bool { return false }

func (s Separator) Validate() error {
	return s.Attributes.validate()
}

// WithOrientation returns a copy of the separator with the given axis.
func (s Separator) WithOrientation(o Orientation) Separator {
	s.Orientation = o
	return s
}

// WithPadding returns a copy of the separator with the given cell padding.
func (s Separator) WithPadding(p Padding) Separator {
	s.Padding = p
	return s
}
