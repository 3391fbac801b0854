// Package testing provides a scriptable backend for exercising windows
// without a display.
//
// Backend wraps the headless backend and adds what tests need on top of
// the capability contract: failure injection for specific widget kinds,
// a record of every construction, close-call counting, and label-based
// scripting shortcuts against the most recently created window.
//
//	tb := gadgettest.NewBackendWithT(t)
//	win, err := window.Build("Demo", layout, tb)
//	tb.SetInput(0, "Alice")
//	tb.Press("Ok")
//	event, values, err := win.Read()
package testing
