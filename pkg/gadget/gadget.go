// Package gadget is the user-facing surface of the library: widget
// constructors, layout helpers, and window construction against the
// process default backend.
//
// A minimal program:
//
//	layout := gadget.Layout{
//	    {gadget.Text("What's your name?")},
//	    {gadget.Input()},
//	    {gadget.Button("Ok")},
//	}
//	win, err := gadget.Window("Demo", layout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer win.Close()
//	for {
//	    event, values, err := win.Read()
//	    if err != nil || event == gadget.Closed {
//	        break
//	    }
//	    fmt.Printf("%s: %v\n", event, values)
//	}
package gadget

import (
	"github.com/go-gadget/gadget/pkg/backend"
	"github.com/go-gadget/gadget/pkg/widgets"
	"github.com/go-gadget/gadget/pkg/window"
)

// Aliases so simple programs only import this package.
type (
	// Widget is a backend-agnostic widget description.
	Widget = widgets.Widget
	// Row is one layout row, left to right.
	Row = widgets.Row
	// Layout is the 2D widget arrangement a window is built from.
	Layout = widgets.Layout
	// Event identifies what unblocked a Read.
	Event = window.Event
)

// Closed is the event reported when the window is closed.
const Closed = window.Closed

// Window builds and shows a window for the layout on the process default
// backend. Use WindowOn to pick a backend explicitly.
func Window(title string, layout Layout) (*window.Window, error) {
	return window.Build(title, layout, nil)
}

// WindowOn builds and shows a window for the layout on a specific backend.
func WindowOn(title string, layout Layout, b backend.Backend) (*window.Window, error) {
	return window.Build(title, layout, b)
}

// Text creates a static text widget.
func Text(content string) widgets.Text {
	return widgets.NewText(content)
}

// Button creates a push button that reports its label as an event.
func Button(label string) widgets.Button {
	return widgets.NewButton(label)
}

// Checkbox creates an unchecked checkbox.
func Checkbox(label string) widgets.Checkbox {
	return widgets.NewCheckbox(label)
}

// Radio creates a radio button. An empty group joins the radios of its
// layout row.
func Radio(label, group string) widgets.Radio {
	return widgets.NewRadio(label, group)
}

// Input creates an empty single-line text entry.
func Input() widgets.Input {
	return widgets.NewInput()
}

// Multiline creates a multi-line text entry with the given visible line
// count (0 means the default).
func Multiline(lines int) widgets.MultilineInput {
	return widgets.NewMultiline(lines)
}

// Slider creates a horizontal slider over [min, max]. It fails with
// widgets.ErrInvalidRange when min > max, before any backend is involved.
func Slider(min, max float64) (widgets.Slider, error) {
	return widgets.NewSlider(min, max)
}

// Separator creates a horizontal dividing line.
func Separator() widgets.Separator {
	return widgets.NewSeparator()
}
