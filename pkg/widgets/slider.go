package widgets

import (
	"fmt"

	"github.com/go-gadget/gadget/pkg/graphics"
)

// Default slider range applied by NewSlider-less struct literals is the
// zero range; NewSlider with these constants gives the conventional 0-100.
const (
	DefaultSliderMin = 0
	DefaultSliderMax = 100
)

// Slider selects a value from a numeric range. Its current value is
// reported in the value sequence as a decimal string.
type Slider struct {
	Attributes

	// Min is the low end of the range.
	Min float64

	// Max is the high end of the range. Must not be below Min.
	Max float64

	// Step is the increment granularity. Zero means continuous; must not
	// be negative.
	Step float64

	// Initial is the starting value. It is clamped into [Min, Max] by the
	// backend.
	Initial float64

	// Orientation is the slider axis. Horizontal by default.
	Orientation Orientation
}

// NewSlider creates a horizontal slider over [min, max] with default
// padding, positioned at min. It returns ErrInvalidRange when min > max.
func NewSlider(min, max float64) (Slider, error) {
	s := Slider{
		Min:        min,
		Max:        max,
		Initial:    min,
		Attributes: Attributes{Padding: DefaultPadding},
	}
	if err := s.Validate(); err != nil {
		return Slider{}, err
	}
	return s, nil
}

func (s Slider) Kind() Kind         { return KindSlider }
func (s Slider) InputCapable() bool { return true }

func (s Slider) Validate() error {
	if s.Min > s.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, s.Min, s.Max)
	}
	if s.Step < 0 {
		return fmt.Errorf("%w: step %v is negative", ErrInvalidRange, s.Step)
	}
	return s.Attributes.validate()
}

// WithStep returns a copy of the slider with the given step granularity.
func (s Slider) WithStep(step float64) Slider {
	s.Step = step
	return s
}

// WithInitial returns a copy of the slider with the given starting value.
func (s Slider) WithInitial(v float64) Slider {
	s.Initial = v
	return s
}

// WithOrientation returns a copy of the slider with the given axis.
func (s Slider) WithOrientation(o Orientation) Slider {
	s.Orientation = o
	return s
}

// WithSize returns a copy of the slider with the given width and height.
func (s Slider) WithSize(width, height int) Slider {
	s.Width, s.Height = width, height
	return s
}

// WithPadding returns a copy of the slider with the given cell padding.
func (s Slider) WithPadding(p Padding) Slider {
	s.Padding = p
	return s
}

// WithColors returns a copy of the slider with the given foreground and
// background colors.
func (s Slider) WithColors(fg, bg graphics.Color) Slider {
	s.Foreground, s.Background = fg, bg
	return s
}
