package testing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-gadget/gadget/pkg/backend"
	"github.com/go-gadget/gadget/pkg/backend/headless"
	"github.com/go-gadget/gadget/pkg/widgets"
)

// Construction records one widget the backend was asked to construct.
type Construction struct {
	Kind  widgets.Kind
	Label string
}

// Backend is a headless backend with test instrumentation. It satisfies
// backend.Backend; pass it to window.Build directly or register it as the
// process default with NewBackendWithT.
type Backend struct {
	*headless.Backend

	mu            sync.Mutex
	failKinds     map[widgets.Kind]error
	constructions []Construction
	closeCalls    int
	lastWindow    backend.WindowHandle
}

// NewBackend creates an instrumented headless backend.
func NewBackend() *Backend {
	return &Backend{
		Backend:   headless.New(),
		failKinds: make(map[widgets.Kind]error),
	}
}

// NewBackendWithT creates an instrumented backend, resets the process
// backend registry, registers the backend as the default, and restores a
// clean registry when the test finishes. Tests that exercise the
// default-backend path should use this constructor.
func NewBackendWithT(t *testing.T) *Backend {
	t.Helper()
	backend.ResetForTest()
	b := NewBackend()
	if err := backend.Register(b); err != nil {
		t.Fatalf("register test backend: %v", err)
	}
	t.Cleanup(backend.ResetForTest)
	return b
}

// Name implements backend.Backend. The instrumented backend keeps its own
// name so it can coexist with a real headless backend in the registry.
func (b *Backend) Name() string { return "test" }

// FailKind makes every subsequent construction of the given kind fail
// with err. A nil err fails with backend.ErrUnsupportedWidget.
func (b *Backend) FailKind(kind widgets.Kind, err error) {
	if err == nil {
		err = backend.ErrUnsupportedWidget
	}
	b.mu.Lock()
	b.failKinds[kind] = err
	b.mu.Unlock()
}

// CreateWindow implements backend.Backend, remembering the handle so the
// label-based scripting helpers know which window to drive.
func (b *Backend) CreateWindow(title string) (backend.WindowHandle, error) {
	h, err := b.Backend.CreateWindow(title)
	if err == nil {
		b.mu.Lock()
		b.lastWindow = h
		b.mu.Unlock()
	}
	return h, err
}

// ConstructWidget implements backend.Backend with failure injection and
// construction recording.
func (b *Backend) ConstructWidget(win backend.WindowHandle, desc widgets.Widget) (backend.WidgetHandle, error) {
	b.mu.Lock()
	if err, ok := b.failKinds[desc.Kind()]; ok {
		b.mu.Unlock()
		return nil, err
	}
	b.constructions = append(b.constructions, Construction{Kind: desc.Kind(), Label: descLabel(desc)})
	b.mu.Unlock()
	return b.Backend.ConstructWidget(win, desc)
}

// CloseWindow implements backend.Backend, counting calls to verify both
// idempotence and build-abort cleanup.
func (b *Backend) CloseWindow(win backend.WindowHandle) error {
	b.mu.Lock()
	b.closeCalls++
	b.mu.Unlock()
	return b.Backend.CloseWindow(win)
}

// Constructions returns every widget construction seen so far, in order.
func (b *Backend) Constructions() []Construction {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Construction, len(b.constructions))
	copy(out, b.constructions)
	return out
}

// CloseCalls returns how many times CloseWindow has been invoked.
func (b *Backend) CloseCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closeCalls
}

// Window returns the handle of the most recently created window.
func (b *Backend) Window() backend.WindowHandle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastWindow
}

// --- Label-based scripting against the most recent window ---

// Press fires the widget with the given label, as a user clicking it.
func (b *Backend) Press(label string) error {
	h, err := b.byLabel(label)
	if err != nil {
		return err
	}
	return b.Backend.Press(h)
}

// Toggle activates the checkbox or radio with the given label, firing a
// trigger that carries the new value. Checkboxes flip; radios select and
// de-select the rest of their group.
func (b *Backend) Toggle(label string) error {
	h, err := b.byLabel(label)
	if err != nil {
		return err
	}
	return b.Backend.Toggle(h)
}

// SetInput sets the value of the index-th input-capable widget of the
// most recent window (layout order), as a user typing into it.
func (b *Backend) SetInput(index int, value string) error {
	win := b.Window()
	if win == nil {
		return fmt.Errorf("gadgettest: no window created yet")
	}
	placed, err := b.Widgets(win)
	if err != nil {
		return err
	}
	i := 0
	for _, pw := range placed {
		if !pw.Desc.InputCapable() {
			continue
		}
		if i == index {
			return b.SetValue(pw.Handle, value)
		}
		i++
	}
	return fmt.Errorf("gadgettest: no input-capable widget at index %d", index)
}

// CloseFromUser closes the most recent window the way a user clicking the
// window manager's close button would.
func (b *Backend) CloseFromUser() error {
	win := b.Window()
	if win == nil {
		return fmt.Errorf("gadgettest: no window created yet")
	}
	return b.CloseWindow(win)
}

func (b *Backend) byLabel(label string) (backend.WidgetHandle, error) {
	win := b.Window()
	if win == nil {
		return nil, fmt.Errorf("gadgettest: no window created yet")
	}
	h, ok := b.FindByLabel(win, label)
	if !ok {
		return nil, fmt.Errorf("gadgettest: no widget labeled %q", label)
	}
	return h, nil
}

func descLabel(desc widgets.Widget) string {
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
