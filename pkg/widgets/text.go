package widgets

import "github.com/go-gadget/gadget/pkg/graphics"

// Text displays a static string. Text is never input-capable: it is
// constructed on the backend but excluded from the value sequence.
type Text struct {
	Attributes

	// Content is the string to display.
	Content string
}

// NewText creates a text widget with default padding.
func NewText(content string) Text {
	return Text{Content: content, Attributes: Attributes{Padding: DefaultPadding}}
}

func (t Text) Kind() Kind         { return KindText }
func (t Text) InputCapable() bool { return false }

func (t Text) Validate() error {
	return t.Attributes.validate()
}

// FontSizeHint derives a font size from the requested width and height,
// the convention backends use when both are set. Zero means no hint.
func (t Text) FontSizeHint() int {
	if t.Width == 0 || t.Height == 0 {
		return 0
	}
	return (t.Width + t.Height) / 2
}

// WithSize returns a copy of the text with the given width and height.
func (t Text) WithSize(width, height int) Text {
	t.Width, t.Height = width, height
	return t
}

// WithPadding returns a copy of the text with the given cell padding.
func (t Text) WithPadding(p Padding) Text {
	t.Padding = p
	return t
}

// WithColors returns a copy of the text with the given foreground and
// background colors.
func (t Text) WithColors(fg, bg graphics.Color) Text {
	t.Foreground, t.Background = fg, bg
	return t
}
