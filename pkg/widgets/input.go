package widgets

import "github.com/go-gadget/gadget/pkg/graphics"

// Default sizes applied by backends when an input has no explicit size.
const (
	DefaultInputWidth  = 10
	DefaultInputHeight = 1

	// DefaultMultilineLines is the line count a multiline input gets when
	// none is requested.
	DefaultMultilineLines = 4
)

// Input is a single-line text entry. Its current text is reported in the
// value sequence at the position the input occupies in the layout.
type Input struct {
	Attributes

	// Placeholder is pre-filled into the entry on construction.
	Placeholder string
}

// NewInput creates an empty single-line input with default padding.
func NewInput() Input {
	return Input{Attributes: Attributes{Padding: DefaultPadding}}
}

func (i Input) Kind() Kind         { return KindInput }
func (i Input) InputCapable() bool { return true }

func (i Input) Validate() error {
	return i.Attributes.validate()
}

// WithPlaceholder returns a copy of the input with the given initial text.
func (i Input) WithPlaceholder(text string) Input {
	i.Placeholder = text
	return i
}

// WithSize returns a copy of the input with the given width and height.
func (i Input) WithSize(width, height int) Input {
	i.Width, i.Height = width, height
	return i
}

// WithPadding returns a copy of the input with the given cell padding.
func (i Input) WithPadding(p Padding) Input {
	i.Padding = p
	return i
}

// WithColors returns a copy of the input with the given foreground and
// background colors.
func (i Input) WithColors(fg, bg graphics.Color) Input {
	i.Foreground, i.Background = fg, bg
	return i
}

// MultilineInput is a multi-line text entry. Its full current text,
// including newlines, is reported in the value sequence.
type MultilineInput struct {
	Attributes

	// Placeholder is pre-filled into the entry on construction.
	Placeholder string

	// Lines is the visible line count. Zero means DefaultMultilineLines.
	Lines int
}

// NewMultiline creates an empty multi-line input with default padding.
// A non-positive lines value falls back to DefaultMultilineLines.
func NewMultiline(lines int) MultilineInput {
	if lines <= 0 {
		lines = DefaultMultilineLines
	}
	return MultilineInput{Lines: lines, Attributes: Attributes{Padding: DefaultPadding}}
}

func (m MultilineInput) Kind() Kind         { return KindMultilineInput }
func (m MultilineInput) InputCapable() bool { return true }

func (m MultilineInput) Validate() error {
	if m.Lines < 0 {
		return ErrNegativeSize
	}
	return m.Attributes.validate()
}

// WithPlaceholder returns a copy of the multiline input with the given
// initial text.
func (m MultilineInput) WithPlaceholder(text string) MultilineInput {
	m.Placeholder = text
	return m
}

// WithSize returns a copy of the multiline input with the given width and
// height.
func (m MultilineInput) WithSize(width, height int) MultilineInput {
	m.Width, m.Height = width, height
	return m
}

// WithPadding returns a copy of the multiline input with the given cell
// padding.
func (m MultilineInput) WithPadding(p Padding) MultilineInput {
	m.Padding = p
	return m
}

// WithColors returns a copy of the multiline input with the given
// foreground and background colors.
func (m MultilineInput) WithColors(fg, bg graphics.Color) MultilineInput {
	m.Foreground, m.Background = fg, bg
	return m
}
