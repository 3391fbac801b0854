package backend

import (
	"fmt"
	"sync"

	"github.com/go-gadget/gadget/pkg/errors"
)

// backendRegistry manages the backends available to window construction.
type backendRegistry struct {
	backends    map[string]Backend
	defaultName string
	mu          sync.RWMutex
}

var registry = &backendRegistry{
	backends: make(map[string]Backend),
}

// Register makes a backend available under its Name. The first backend
// registered becomes the process default until SetDefault says otherwise.
func Register(b Backend) error {
	if b == nil {
		return fmt.Errorf("backend: Register called with nil backend")
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	name := b.Name()
	if _, ok := registry.backends[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	registry.backends[name] = b
	if registry.defaultName == "" {
		registry.defaultName = name
	}
	return nil
}

// SetDefault selects the backend used when a window is built without an
// explicit backend.
func SetDefault(name string) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.backends[name]; !ok {
		return fmt.Errorf("backend: %q is not registered", name)
	}
	registry.defaultName = name
	return nil
}

// Get returns the backend registered under name.
func Get(name string) (Backend, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	b, ok := registry.backends[name]
	return b, ok
}

// Default returns the process default backend, or ErrNoDefaultBackend when
// none has been registered.
func Default() (Backend, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if registry.defaultName == "" {
		return nil, ErrNoDefaultBackend
	}
	return registry.backends[registry.defaultName], nil
}

// Window counting for process-global toolkit lifecycle. Native toolkits
// often carry process-wide state (a main loop, an interpreter); Retain and
// Release bracket it so startup happens on the first window and teardown
// on the last close, on the goroutine that owns the windows.
var (
	retainMu     sync.Mutex
	windowCounts = make(map[string]int)
)

// Retain records that a window is about to exist on b. The 0→1 transition
// runs the backend's Startup hook, if it has one; a Startup failure leaves
// the count untouched.
func Retain(b Backend) error {
	retainMu.Lock()
	defer retainMu.Unlock()
	name := b.Name()
	if windowCounts[name] == 0 {
		if init, ok := b.(Initializer); ok {
			if err := init.Startup(); err != nil {
				errors.Report(&errors.GadgetError{
					Op:   "backend.Retain",
					Kind: errors.KindBackend,
					Err:  err,
				})
				return err
			}
		}
	}
	windowCounts[name]++
	return nil
}

// Release records that a window on b is gone. The 1→0 transition runs the
// backend's Shutdown hook, if it has one. Release without a matching
// Retain is ignored.
func Release(b Backend) {
	retainMu.Lock()
	defer retainMu.Unlock()
	name := b.Name()
	if windowCounts[name] == 0 {
		return
	}
	windowCounts[name]--
	if windowCounts[name] == 0 {
		if fin, ok := b.(Finalizer); ok {
			fin.Shutdown()
		}
	}
}

// WindowCount returns the number of live windows retained on the named
// backend.
func WindowCount(name string) int {
	retainMu.Lock()
	defer retainMu.Unlock()
	return windowCounts[name]
}

// ResetForTest clears the registry, the default selection, and all window
// counts. This should only be called from tests.
func ResetForTest() {
	registry.mu.Lock()
	registry.backends = make(map[string]Backend)
	registry.defaultName = ""
	registry.mu.Unlock()

	retainMu.Lock()
	windowCounts = make(map[string]int)
	retainMu.Unlock()
}
