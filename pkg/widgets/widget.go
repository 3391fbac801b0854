package widgets

import (
	"errors"
	"fmt"

	"github.com/go-gadget/gadget/pkg/graphics"
)

// Sentinel errors for widget configuration.
var (
	// ErrInvalidRange is returned when a slider's minimum exceeds its maximum
	// or its step is negative.
	ErrInvalidRange = errors.New("widgets: invalid range")

	// ErrMissingLabel is returned when a widget kind that triggers events
	// (button, checkbox, radio) is constructed without a label.
	ErrMissingLabel = errors.New("widgets: missing label")

	// ErrNegativeSize is returned when a width, height, or padding value
	// is negative.
	ErrNegativeSize = errors.New("widgets: negative size")
)

// Kind identifies a widget variant.
type Kind int

const (
	// KindText is a static text label.
	KindText Kind = iota
	// KindButton is a push button that triggers an event.
	KindButton
	// KindCheckbox is a toggleable check control.
	KindCheckbox
	// KindRadio is a mutually exclusive selection within a group.
	KindRadio
	// KindInput is a single-line text entry.
	KindInput
	// KindMultilineInput is a multi-line text entry.
	KindMultilineInput
	// KindSlider is a value selector over a numeric range.
	KindSlider
	// KindSeparator is a thin dividing line.
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindCheckbox:
		return "checkbox"
	case KindRadio:
		return "radio"
	case KindInput:
		return "input"
	case KindMultilineInput:
		return "multiline"
	case KindSlider:
		return "slider"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Orientation is the axis of a slider or separator.
type Orientation int

const (
	// OrientationHorizontal lays the widget along the x axis. This is the
	// zero value and the default.
	OrientationHorizontal Orientation = iota
	// OrientationVertical lays the widget along the y axis.
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation resolves an orientation from its string form.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return OrientationHorizontal, fmt.Errorf("widgets: unknown orientation %q", s)
	}
}

// Padding is the horizontal and vertical outer padding of a widget cell.
type Padding struct {
	X int
	Y int
}

// DefaultPadding is applied by the constructor functions.
var DefaultPadding = Padding{X: 10, Y: 4}

// Position is a cell in the layout grid, row-major.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("row %d col %d", p.Row, p.Col)
}

// Attributes are the presentation attributes every widget kind carries.
// All are optional; the backend supplies defaults for unset values.
type Attributes struct {
	// Width is the requested width in backend-native units. Zero means
	// the backend decides.
	Width int
	// Height is the requested height in backend-native units. Zero means
	// the backend decides.
	Height int
	// Padding is the outer padding of the widget's grid cell.
	Padding Padding
	// Foreground is the text/accent color. ColorNone means backend default.
	Foreground graphics.Color
	// Background is the fill color. ColorNone means backend default.
	Background graphics.Color
}

// Attrs returns the common attributes. It satisfies the Widget interface
// for every kind that embeds Attributes.
func (a Attributes) Attrs() Attributes {
	return a
}

func (a Attributes) validate() error {
	if a.Width < 0 || a.Height < 0 || a.Padding.X < 0 || a.Padding.Y < 0 {
		return ErrNegativeSize
	}
	return nil
}

// Widget is a backend-agnostic widget description.
//
// Implementations are immutable value types; WithX methods return copies.
type Widget interface {
	// Kind identifies the variant.
	Kind() Kind
	// Attrs returns the common presentation attributes.
	Attrs() Attributes
	// InputCapable reports whether the widget's live value is included in
	// the value sequence returned by a window read.
	InputCapable() bool
	// Validate checks kind-specific constraints. It never touches a backend.
	Validate() error
}
