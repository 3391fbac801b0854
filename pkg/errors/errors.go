// Package errors provides structured error handling for the gadget core.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid widget configuration.
	KindConfig
	// KindBuild indicates a window construction failure.
	KindBuild
	// KindRead indicates a failure inside a window read.
	KindRead
	// KindClosed indicates an operation on a closed window.
	KindClosed
	// KindBackend indicates a backend capability failure.
	KindBackend
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBuild:
		return "build"
	case KindRead:
		return "read"
	case KindClosed:
		return "closed"
	case KindBackend:
		return "backend"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// GadgetError represents a structured error in the gadget core.
type GadgetError struct {
	// Op is the operation that failed (e.g., "window.Read").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Window is the title of the window involved, if applicable.
	Window string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GadgetError) Error() string {
	if e.Window != "" {
		return fmt.Sprintf("%s [%s] window=%q: %v", e.Op, e.Kind, e.Window, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GadgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "headless.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a window construction failure. Builds fail
// atomically: when a BuildError is reported, every backend resource the
// builder created has already been released.
type BuildError struct {
	// Title is the title of the window being built.
	Title string
	// Row and Col name the failing layout cell, row-major. They are -1
	// when the failure is not tied to a cell (e.g., window creation).
	Row int
	Col int
	// Widget is the kind of the failing widget ("slider", "input", ...).
	// Empty when the failure is not tied to a widget.
	Widget string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("build of %q failed at row %d col %d (%s): %v", e.Title, e.Row, e.Col, e.Widget, e.Err)
	}
	return fmt.Sprintf("build of %q failed: %v", e.Title, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the gadget core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GadgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a window build fails.
	HandleBuildError(err *BuildError)
}
