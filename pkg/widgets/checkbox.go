package widgets

import "github.com/go-gadget/gadget/pkg/graphics"

// Checkbox is a toggleable check control. Toggling it unblocks a pending
// read with an event of the form "<label>:::<value>"; its live value
// ("true" or "false") is reported in the value sequence.
type Checkbox struct {
	Attributes

	// Label is the checkbox text and the base of its event identifier.
	Label string

	// Checked is the initial state.
	Checked bool
}

// NewCheckbox creates an unchecked checkbox with default padding.
func NewCheckbox(label string) Checkbox {
	return Checkbox{Label: label, Attributes: Attributes{Padding: DefaultPadding}}
}

func (c Checkbox) Kind() Kind         { return KindCheckbox }
func (c Checkbox) InputCapable() bool { return true }

func (c Checkbox) Validate() error {
	if c.Label == "" {
		return ErrMissingLabel
	}
	return c.Attributes.validate()
}

// WithChecked returns a copy of the checkbox with the given initial state.
func (c Checkbox) WithChecked(checked bool) Checkbox {
	c.Checked = checked
	return c
}

// WithSize returns a copy of the checkbox with the given width and height.
func (c Checkbox) WithSize(width, height int) Checkbox {
	c.Width, c.Height = width, height
	return c
}

// WithPadding returns a copy of the checkbox with the given cell padding.
func (c Checkbox) WithPadding(p Padding) Checkbox {
	c.Padding = p
	return c
}

// WithColors returns a copy of the checkbox with the given foreground and
// background colors.
func (c Checkbox) WithColors(fg, bg graphics.Color) Checkbox {
	c.Foreground, c.Background = fg, bg
	return c
}
