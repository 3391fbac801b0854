package widgets

import "github.com/go-gadget/gadget/pkg/graphics"

// Radio is one choice in a mutually exclusive group. All radios sharing a
// Group key select against each other. Selecting one unblocks a pending
// read with an event of the form "<label>:::<value>"; its live value
// ("true" when selected) is reported in the value sequence.
//
// Group may be left empty, in which case the window builder assigns a
// per-row group: radios on the same layout row become one group. Set
// Group explicitly for groups that span rows.
type Radio struct {
	Attributes

	// Label is the radio text and the base of its event identifier.
	Label string

	// Group keys the mutually exclusive set this radio belongs to.
	// Empty means "group with the other radios on my layout row".
	Group string

	// Selected is the initial state. At most one radio per group should
	// be initially selected; if several are, the backend keeps the last.
	Selected bool
}

// NewRadio creates a radio button in the given group with default padding.
func NewRadio(label, group string) Radio {
	return Radio{Label: label, Group: group, Attributes: Attributes{Padding: DefaultPadding}}
}

func (r Radio) Kind() Kind         { return KindRadio }
func (r Radio) InputCapable() bool { return true }

func (r Radio) Validate() error {
	if r.Label == "" {
		return ErrMissingLabel
	}
	return r.Attributes.validate()
}

// WithSelected returns a copy of the radio with the given initial state.
func (r Radio) WithSelected(selected bool) Radio {
	r.Selected = selected
	return r
}

// WithSize returns a copy of the radio with the given width and height.
func (r Radio) WithSize(width, height int) Radio {
	r.Width, r.Height = width, height
	return r
}

// WithPadding returns a copy of the radio with the given cell padding.
func (r Radio) WithPadding(p Padding) Radio {
	r.Padding = p
	return r
}

// WithColors returns a copy of the radio with the given foreground and
// background colors.
func (r Radio) WithColors(fg, bg graphics.Color) Radio {
	r.Foreground, r.Background = fg, bg
	return r
}
