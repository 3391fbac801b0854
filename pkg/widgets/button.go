package widgets

import "github.com/go-gadget/gadget/pkg/graphics"

// Button is a push button. Pressing it unblocks a pending window read with
// the button's label as the event identifier. Buttons trigger events but
// carry no live value, so they are not input-capable.
type Button struct {
	Attributes

	// Label is the button text and the event identifier it reports.
	Label string
}

// NewButton creates a button with default padding.
func NewButton(label string) Button {
	return Button{Label: label, Attributes: Attributes{Padding: DefaultPadding}}
}

func (b Button) Kind() Kind         { return KindButton }
func (b Button) InputCapable() bool { return false }

func (b Button) Validate() error {
	if b.Label == "" {
		return ErrMissingLabel
	}
	return b.Attributes.validate()
}

// WithSize returns a copy of the button with the given width and height.
func (b Button) WithSize(width, height int) Button {
	b.Width, b.Height = width, height
	return b
}

// WithPadding returns a copy of the button with the given cell padding.
func (b Button) WithPadding(p Padding) Button {
	b.Padding = p
	return b
}

// WithColors returns a copy of the button with the given foreground and
// background colors.
func (b Button) WithColors(fg, bg graphics.Color) Button {
	b.Foreground, b.Background = fg, bg
	return b
}
