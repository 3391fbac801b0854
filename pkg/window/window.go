// Package window materializes widget layouts into live backend windows
// and bridges backend events into a synchronous read loop.
//
// A Window is driven by exactly one goroutine: build it, call Read in a
// loop, close it. Read blocks until a widget triggers or the window
// closes, then reports the event identifier together with the current
// values of every input-capable widget, in the order they appear in the
// layout. That ordering is the package's central invariant: the value
// sequence always has one entry per input-capable widget, positioned by
// the layout's row-major traversal, no matter which backend is rendering.
package window

import (
	"sync"

	"github.com/go-gadget/gadget/pkg/backend"
	"github.com/go-gadget/gadget/pkg/errors"
	"github.com/go-gadget/gadget/pkg/widgets"
)

// Event identifies what unblocked a Read: the label of the widget that
// fired, optionally suffixed with ":::<value>" for toggling widgets, the
// Closed sentinel, or "None" for triggers the window cannot attribute.
type Event string

// Closed is the reserved event reported when the window is closed. The
// bracket form keeps it distinct from any widget label.
const Closed Event = "<<WindowClosed>>"

// EventNone is reported for triggers that no constructed widget claims.
const EventNone Event = "None"

type readState int

const (
	stateIdle readState = iota
	stateAwaiting
	stateClosed
)

type inputRef struct {
	handle backend.WidgetHandle
	label  string
	pos    widgets.Position
}

// Window owns a realized backend window: the native handle, the ordered
// input-capable widget references the value sequence is built from, and
// the event source Read blocks on.
type Window struct {
	mu      sync.Mutex
	title   string
	backend backend.Backend
	handle  backend.WindowHandle
	source  backend.EventSource
	inputs  []inputRef
	// triggers maps backend widget handle IDs to the labels reported as
	// event identifiers.
	triggers    map[string]string
	state       readState
	releaseOnce sync.Once
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Handle returns the backend window handle, for callers that need to talk
// to the backend directly (introspection, test scripting).
func (w *Window) Handle() backend.WindowHandle {
	return w.handle
}

// InputCount returns the number of input-capable widgets the window
// reports values for. It is fixed at build time.
func (w *Window) InputCount() int {
	return len(w.inputs)
}

// InputLabels returns the labels of the input-capable widgets in value
// order. Unlabeled inputs (text entries) contribute empty strings.
func (w *Window) InputLabels() []string {
	labels := make([]string, len(w.inputs))
	for i, in := range w.inputs {
		labels[i] = in.label
	}
	return labels
}

// IndexByLabel returns the value-sequence index of the first input-capable
// widget with the given label. It reports false when no input matches.
// This is a convenience on top of the positional contract, not a
// replacement for it.
func (w *Window) IndexByLabel(label string) (int, bool) {
	for i, in := range w.inputs {
		if in.label != "" && in.label == label {
			return i, true
		}
	}
	return 0, false
}

// ValueByLabel picks the value of the labeled input out of a value
// sequence returned by Read.
func (w *Window) ValueByLabel(values []string, label string) (string, bool) {
	i, ok := w.IndexByLabel(label)
	if !ok || i >= len(values) {
		return "", false
	}
	return values[i], true
}

// Read blocks until a widget triggers or the window closes, then returns
// the event identifier and the current values of all input-capable
// widgets in layout order.
//
// A window closed by the user (or by Close from another goroutine while
// Read is blocked) yields the Closed sentinel and an empty value
// sequence; the window is unusable afterwards and further Reads fail with
// ErrWindowClosed. Overlapping Reads on one window are a usage error and
// fail with ErrConcurrentRead.
func (w *Window) Read() (Event, []string, error) {
	w.mu.Lock()
	switch w.state {
	case stateClosed:
		w.mu.Unlock()
		return "", nil, &errors.GadgetError{
			Op:     "window.Read",
			Kind:   errors.KindClosed,
			Window: w.title,
			Err:    ErrWindowClosed,
		}
	case stateAwaiting:
		w.mu.Unlock()
		return "", nil, &errors.GadgetError{
			Op:     "window.Read",
			Kind:   errors.KindRead,
			Window: w.title,
			Err:    ErrConcurrentRead,
		}
	}
	w.state = stateAwaiting
	source := w.source
	w.mu.Unlock()

	trigger, err := source.Next()

	w.mu.Lock()
	if err != nil {
		if w.state == stateAwaiting {
			w.state = stateIdle
		}
		w.mu.Unlock()
		return "", nil, &errors.GadgetError{
			Op:     "window.Read",
			Kind:   errors.KindBackend,
			Window: w.title,
			Err:    err,
		}
	}
	if trigger.Closed {
		w.state = stateClosed
		w.mu.Unlock()
		w.release()
		return Closed, []string{}, nil
	}

	event := EventNone
	if label, ok := w.triggers[trigger.HandleID]; ok {
		event = Event(label)
		if trigger.Value != "" {
			event = Event(label + ":::" + trigger.Value)
		}
	}
	if w.state == stateAwaiting {
		w.state = stateIdle
	}
	inputs := w.inputs
	w.mu.Unlock()

	values := make([]string, 0, len(inputs))
	for _, in := range inputs {
		v, err := w.backend.ReadValue(in.handle)
		if err != nil {
			return "", nil, &errors.GadgetError{
				Op:     "window.Read",
				Kind:   errors.KindBackend,
				Window: w.title,
				Err:    err,
			}
		}
		values = append(values, v)
	}
	return event, values, nil
}

// Close destroys the window and releases every backend resource it owns.
// Close is idempotent, and closing a window whose Read is in flight
// unblocks that Read with the Closed sentinel.
func (w *Window) Close() error {
	w.mu.Lock()
	alreadyClosed := w.state == stateClosed
	w.state = stateClosed
	w.mu.Unlock()

	// CloseWindow is idempotent per the backend contract, so calling it
	// again after a user-initiated close is harmless.
	err := w.backend.CloseWindow(w.handle)
	w.release()
	if err != nil && !alreadyClosed {
		return &errors.GadgetError{
			Op:     "window.Close",
			Kind:   errors.KindBackend,
			Window: w.title,
			Err:    err,
		}
	}
	return nil
}

// release drops this window's retain count on its backend exactly once,
// whether the close came from Close or from the backend's own close
// trigger.
func (w *Window) release() {
	w.releaseOnce.Do(func() {
		backend.Release(w.backend)
	})
}
