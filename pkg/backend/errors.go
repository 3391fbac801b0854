package backend

import "errors"

// Sentinel errors for backend operations.
var (
	// ErrUnsupportedWidget is returned by ConstructWidget when the backend
	// cannot represent the widget kind.
	ErrUnsupportedWidget = errors.New("backend: unsupported widget kind")

	// ErrWidgetDisposed is returned by ReadValue when the widget's window
	// has been closed.
	ErrWidgetDisposed = errors.New("backend: widget disposed")

	// ErrWindowUnknown is returned when a handle does not belong to the
	// backend it was presented to.
	ErrWindowUnknown = errors.New("backend: unknown window handle")

	// ErrNoDefaultBackend is returned by Default when no backend has been
	// registered.
	ErrNoDefaultBackend = errors.New("backend: no default backend registered")

	// ErrAlreadyRegistered is returned by Register for a duplicate name.
	ErrAlreadyRegistered = errors.New("backend: name already registered")
)
