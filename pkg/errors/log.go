package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a GadgetError to stderr.
func (h *LogHandler) HandleError(err *GadgetError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[gadget error] %s [%s]", err.Op, err.Kind)
		if err.Window != "" {
			fmt.Fprintf(os.Stderr, " window=%q", err.Window)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[gadget error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[gadget panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[gadget panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleBuildError logs a BuildError to stderr.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[gadget build error] %s\n", err.Error())
}
