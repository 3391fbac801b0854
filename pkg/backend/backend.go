// Package backend defines the capability contract a rendering backend must
// satisfy to host gadget windows.
//
// The core never assumes anything about rendering. A backend is any type
// that can construct native widgets from descriptions, place them on a
// grid, report widget values, and deliver trigger events through a
// blocking wait primitive. Backends register themselves with this package;
// the window builder picks one explicitly or falls back to the process
// default.
package backend

import "github.com/go-gadget/gadget/pkg/widgets"

// WindowHandle is an opaque reference to a live backend window.
type WindowHandle interface {
	// ID uniquely identifies the window within its backend.
	ID() string
	// Title returns the window title the handle was created with.
	Title() string
}

// WidgetHandle is an opaque reference to a live backend widget.
type WidgetHandle interface {
	// ID uniquely identifies the widget within its backend.
	ID() string
	// Kind identifies the widget variant the handle was constructed from.
	Kind() widgets.Kind
}

// Trigger is one occurrence reported by an event source: a widget fired,
// or the window was closed.
type Trigger struct {
	// HandleID is the ID of the widget that fired. Empty when Closed.
	HandleID string
	// Value carries the widget's new value for toggling widgets
	// (checkboxes, radios). Empty otherwise.
	Value string
	// Closed reports that the window was closed instead of a widget firing.
	Closed bool
}

// EventSource is the blocking wait primitive a backend exposes for one
// window.
//
// Next blocks the calling goroutine until a widget triggers or the window
// closes. Closing the window MUST unblock a pending Next with a Closed
// trigger rather than leaving it hanging; every Next call after that
// returns the Closed trigger immediately.
type EventSource interface {
	Next() (Trigger, error)
}

// Backend is the capability set the window builder and the event/value
// bridge program against.
//
// All methods must be safe for use by the single goroutine driving a
// window; backends running their own internal dispatch loops must do their
// own locking. CloseWindow must be idempotent and must release every
// native resource owned by the window, including widgets constructed for
// a build that later failed.
type Backend interface {
	// Name identifies the backend in the registry (e.g., "tk", "headless").
	Name() string

	// CreateWindow allocates a native window. The window stays hidden
	// until ShowWindow.
	CreateWindow(title string) (WindowHandle, error)

	// ConstructWidget materializes a widget description inside a window.
	// Backends that cannot represent a kind return ErrUnsupportedWidget.
	ConstructWidget(win WindowHandle, desc widgets.Widget) (WidgetHandle, error)

	// PlaceWidget positions a constructed widget at a grid cell. Geometry
	// beyond the cell position (pixel layout, packing) is the backend's
	// business.
	PlaceWidget(win WindowHandle, w WidgetHandle, pos widgets.Position) error

	// SubscribeEvents returns the blocking wait primitive for a window.
	SubscribeEvents(win WindowHandle) (EventSource, error)

	// ReadValue returns the current value of an input-capable widget as a
	// string. It must be side-effect-free with respect to widget state.
	// Reading a widget of a closed window returns ErrWidgetDisposed.
	ReadValue(w WidgetHandle) (string, error)

	// ShowWindow makes the window visible.
	ShowWindow(win WindowHandle) error

	// CloseWindow destroys the window and everything in it. Idempotent.
	CloseWindow(win WindowHandle) error
}

// Initializer is implemented by backends whose toolkit needs process-wide
// startup before the first window exists (a native main loop, a wish
// process). Retain calls Startup when the backend's window count goes from
// zero to one.
type Initializer interface {
	Startup() error
}

// Finalizer is implemented by backends whose toolkit needs process-wide
// teardown once the last window is gone. Release calls Shutdown when the
// backend's window count returns to zero.
type Finalizer interface {
	Shutdown()
}
