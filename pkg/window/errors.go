package window

import "errors"

// Sentinel errors for window operations.
var (
	// ErrConcurrentRead is returned when Read is called while another Read
	// on the same window has not returned. Windows are single-reader.
	ErrConcurrentRead = errors.New("window: concurrent read")

	// ErrWindowClosed is returned by operations on a closed window.
	ErrWindowClosed = errors.New("window: window is closed")
)
