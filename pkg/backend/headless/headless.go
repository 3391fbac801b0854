// Package headless implements the backend capability set with no
// rendering at all.
//
// Widgets are recorded rather than drawn: the backend keeps each window's
// constructed widgets, their grid positions, and their current values in
// memory, and serves triggers from an in-process queue. It exists for
// environments without a display: CI, the layout linter, and as the
// reference implementation of the capability contract.
package headless

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/go-gadget/gadget/pkg/backend"
	"github.com/go-gadget/gadget/pkg/widgets"
)

// triggerQueueDepth bounds how many triggers can be pending before a
// scripted Press blocks waiting for a reader.
const triggerQueueDepth = 16

// Backend is an in-memory implementation of backend.Backend. The zero
// value is not usable; call New.
type Backend struct {
	mu      sync.Mutex
	started bool
	windows map[string]*windowState
}

type windowState struct {
	id      string
	title   string
	shown   bool
	closed  bool
	order   []*widgetState
	byID    map[string]*widgetState
	events  chan backend.Trigger
	done    chan struct{}
	closeMu sync.Once
}

type widgetState struct {
	id    string
	desc  widgets.Widget
	pos   widgets.Position
	place bool
	value string
	win   *windowState

	// Effective geometry after applying the input sizing defaults, plus
	// the font hint recorded for sized text widgets.
	width    int
	height   int
	fontSize int
}

type winHandle struct {
	id    string
	title string
}

func (h winHandle) ID() string    { return h.id }
func (h winHandle) Title() string { return h.title }

type widgetHandle struct {
	id   string
	kind widgets.Kind
}

func (h widgetHandle) ID() string         { return h.id }
func (h widgetHandle) Kind() widgets.Kind { return h.kind }

// New creates an empty headless backend.
func New() *Backend {
	return &Backend{windows: make(map[string]*windowState)}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return "headless" }

// Startup implements backend.Initializer.
func (b *Backend) Startup() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = true
	return nil
}

// Shutdown implements backend.Finalizer.
func (b *Backend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = false
}

// Started reports whether the backend is between its Startup and Shutdown
// lifecycle hooks.
func (b *Backend) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

// CreateWindow implements backend.Backend.
func (b *Backend) CreateWindow(title string) (backend.WindowHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	win := &windowState{
		id:     uuid.NewString(),
		title:  title,
		byID:   make(map[string]*widgetState),
		events: make(chan backend.Trigger, triggerQueueDepth),
		done:   make(chan struct{}),
	}
	b.windows[win.id] = win
	return winHandle{id: win.id, title: title}, nil
}

func (b *Backend) window(h backend.WindowHandle) (*windowState, error) {
	win, ok := b.windows[h.ID()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", backend.ErrWindowUnknown, h.ID())
	}
	return win, nil
}

// ConstructWidget implements backend.Backend. Every widget kind is
// supported; construction records the description and seeds the widget's
// value from its initial state.
func (b *Backend) ConstructWidget(winH backend.WindowHandle, desc widgets.Widget) (backend.WidgetHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	if err != nil {
		return nil, err
	}
	if win.closed {
		return nil, fmt.Errorf("headless: construct on closed window %q", win.title)
	}

	ws := &widgetState{
		id:     uuid.NewString(),
		desc:   desc,
		win:    win,
		width:  desc.Attrs().Width,
		height: desc.Attrs().Height,
	}
	switch d := desc.(type) {
	case widgets.Text:
		ws.fontSize = d.FontSizeHint()
	case widgets.Checkbox:
		ws.value = strconv.FormatBool(d.Checked)
	case widgets.Radio:
		ws.value = strconv.FormatBool(d.Selected)
		// At most one radio per group stays selected; the last one
		// constructed wins.
		if d.Selected {
			clearGroupExcept(win, d.Group, ws)
		}
	case widgets.Input:
		ws.value = d.Placeholder
		if ws.width == 0 {
			ws.width = widgets.DefaultInputWidth
		}
		if ws.height == 0 {
			ws.height = widgets.DefaultInputHeight
		}
	case widgets.MultilineInput:
		ws.value = d.Placeholder
		if ws.width == 0 {
			ws.width = widgets.DefaultInputWidth
		}
		if ws.height == 0 {
			ws.height = d.Lines
		}
	case widgets.Slider:
		ws.value = formatSliderValue(clamp(d.Initial, d.Min, d.Max))
	}

	win.order = append(win.order, ws)
	win.byID[ws.id] = ws
	return widgetHandle{id: ws.id, kind: desc.Kind()}, nil
}

// PlaceWidget implements backend.Backend.
func (b *Backend) PlaceWidget(winH backend.WindowHandle, w backend.WidgetHandle, pos widgets.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	if err != nil {
		return err
	}
	ws, ok := win.byID[w.ID()]
	if !ok {
		return fmt.Errorf("headless: widget %s not in window %q", w.ID(), win.title)
	}
	ws.pos = pos
	ws.place = true
	return nil
}

// SubscribeEvents implements backend.Backend.
func (b *Backend) SubscribeEvents(winH backend.WindowHandle) (backend.EventSource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	if err != nil {
		return nil, err
	}
	return &eventSource{win: win}, nil
}

type eventSource struct {
	win *windowState
}

// Next blocks until a scripted trigger arrives or the window closes.
// Triggers queued before a close drain first.
func (s *eventSource) Next() (backend.Trigger, error) {
	select {
	case t := <-s.win.events:
		return t, nil
	default:
	}
	select {
	case t := <-s.win.events:
		return t, nil
	case <-s.win.done:
		return backend.Trigger{Closed: true}, nil
	}
}

// ReadValue implements backend.Backend. It is side-effect-free.
func (b *Backend) ReadValue(w backend.WidgetHandle) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ws := b.findWidget(w.ID())
	if ws == nil {
		return "", fmt.Errorf("headless: unknown widget %s", w.ID())
	}
	if ws.win.closed {
		return "", backend.ErrWidgetDisposed
	}
	return ws.value, nil
}

// ShowWindow implements backend.Backend.
func (b *Backend) ShowWindow(winH backend.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	if err != nil {
		return err
	}
	win.shown = true
	return nil
}

// CloseWindow implements backend.Backend. It is idempotent and unblocks
// any goroutine waiting on the window's event source.
func (b *Backend) CloseWindow(winH backend.WindowHandle) error {
	b.mu.Lock()
	win, err := b.window(winH)
	b.mu.Unlock()
	if err != nil {
		return err
	}
	win.closeMu.Do(func() {
		b.mu.Lock()
		win.closed = true
		win.shown = false
		b.mu.Unlock()
		close(win.done)
	})
	return nil
}

func (b *Backend) findWidget(id string) *widgetState {
	for _, win := range b.windows {
		if ws, ok := win.byID[id]; ok {
			return ws
		}
	}
	return nil
}

// --- Scripting surface ---
//
// These methods stand in for the user: they mutate widget state and
// enqueue triggers the way a real toolkit would in response to clicks and
// keystrokes.

// SetValue replaces a widget's current value without triggering an event,
// the way typing into an entry does.
func (b *Backend) SetValue(w backend.WidgetHandle, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	ws := b.findWidget(w.ID())
	if ws == nil {
		return fmt.Errorf("headless: unknown widget %s", w.ID())
	}
	if ws.win.closed {
		return backend.ErrWidgetDisposed
	}
	ws.value = value
	return nil
}

// Press fires a plain trigger for the widget, the way clicking a button
// does.
func (b *Backend) Press(w backend.WidgetHandle) error {
	b.mu.Lock()
	ws := b.findWidget(w.ID())
	if ws == nil {
		b.mu.Unlock()
		return fmt.Errorf("headless: unknown widget %s", w.ID())
	}
	if ws.win.closed {
		b.mu.Unlock()
		return backend.ErrWidgetDisposed
	}
	win := ws.win
	b.mu.Unlock()
	win.events <- backend.Trigger{HandleID: w.ID()}
	return nil
}

// Toggle activates a checkbox or radio and fires a trigger carrying the
// new value. Checkboxes flip; radios select and de-select the rest of
// their group, the way toolkit radio buttons behave.
func (b *Backend) Toggle(w backend.WidgetHandle) error {
	b.mu.Lock()
	ws := b.findWidget(w.ID())
	if ws == nil {
		b.mu.Unlock()
		return fmt.Errorf("headless: unknown widget %s", w.ID())
	}
	if ws.win.closed {
		b.mu.Unlock()
		return backend.ErrWidgetDisposed
	}
	switch d := ws.desc.(type) {
	case widgets.Checkbox:
		ws.value = strconv.FormatBool(ws.value != "true")
	case widgets.Radio:
		ws.value = "true"
		clearGroupExcept(ws.win, d.Group, ws)
	default:
		b.mu.Unlock()
		return fmt.Errorf("headless: %s widgets do not toggle", ws.desc.Kind())
	}
	value := ws.value
	win := ws.win
	b.mu.Unlock()
	win.events <- backend.Trigger{HandleID: w.ID(), Value: value}
	return nil
}

// clearGroupExcept de-selects every radio in the window sharing keep's
// group. The caller must hold b.mu.
func clearGroupExcept(win *windowState, group string, keep *widgetState) {
	for _, other := range win.order {
		if other == keep {
			continue
		}
		if r, ok := other.desc.(widgets.Radio); ok && r.Group == group {
			other.value = "false"
		}
	}
}

// PlacedWidget is a snapshot of one constructed widget: its handle, the
// description it was built from, its grid cell, and its current value.
type PlacedWidget struct {
	Handle backend.WidgetHandle
	Desc   widgets.Widget
	Pos    widgets.Position
	Value  string
	Placed bool

	// Width and Height are the effective sizes after input defaults.
	Width  int
	Height int

	// FontSize is the hint recorded for sized text widgets. Zero means none.
	FontSize int
}

// Widgets returns the window's constructed widgets in construction order.
func (b *Backend) Widgets(winH backend.WindowHandle) ([]PlacedWidget, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	if err != nil {
		return nil, err
	}
	out := make([]PlacedWidget, 0, len(win.order))
	for _, ws := range win.order {
		out = append(out, PlacedWidget{
			Handle:   widgetHandle{id: ws.id, kind: ws.desc.Kind()},
			Desc:     ws.desc,
			Pos:      ws.pos,
			Value:    ws.value,
			Placed:   ws.place,
			Width:    ws.width,
			Height:   ws.height,
			FontSize: ws.fontSize,
		})
	}
	return out, nil
}

// FindByLabel returns the handle of the first widget whose label (or text
// content) matches. It reports false when no widget matches.
func (b *Backend) FindByLabel(winH backend.WindowHandle, label string) (backend.WidgetHandle, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	if err != nil {
		return nil, false
	}
	for _, ws := range win.order {
		if widgetLabel(ws.desc) == label {
			return widgetHandle{id: ws.id, kind: ws.desc.Kind()}, true
		}
	}
	return nil, false
}

// IsShown reports whether the window is currently visible.
func (b *Backend) IsShown(winH backend.WindowHandle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	return err == nil && win.shown
}

// IsClosed reports whether the window has been closed.
func (b *Backend) IsClosed(winH backend.WindowHandle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	win, err := b.window(winH)
	return err == nil && win.closed
}

func widgetLabel(desc widgets.Widget) string {
	switch d := desc.(type) {
	case widgets.Text:
		return d.Content
	case widgets.Button:
		return d.Label
	case widgets.Checkbox:
		return d.Label
	case widgets.Radio:
		return d.Label
	default:
		return ""
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatSliderValue renders a slider value the way toolkit scales report
// them: integers without a decimal point.
func formatSliderValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
