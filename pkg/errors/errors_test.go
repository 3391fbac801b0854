package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGadgetErrorString(t *testing.T) {
	err := &GadgetError{
		Op:   "window.Read",
		Kind: KindBackend,
		Err:  errors.New("event source gone"),
	}
	got := err.Error()
	if got != `window.Read [backend]: event source gone` {
		t.Errorf("Error() = %q", got)
	}
}

func TestGadgetErrorWithWindow(t *testing.T) {
	err := &GadgetError{
		Op:     "window.Read",
		Kind:   KindClosed,
		Window: "Greeter",
		Err:    errors.New("window is closed"),
	}
	got := err.Error()
	if !strings.Contains(got, `window="Greeter"`) {
		t.Errorf("error string %q should contain the window title", got)
	}
}

func TestGadgetErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &GadgetError{Op: "op", Kind: KindRead, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("GadgetError should unwrap to its inner error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindBuild, "build"},
		{KindRead, "read"},
		{KindClosed, "closed"},
		{KindBackend, "backend"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "window.Read",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic in window.Read: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{
		Title:  "Greeter",
		Row:    1,
		Col:    2,
		Widget: "slider",
		Err:    errors.New("invalid range"),
	}
	got := err.Error()
	want := `build of "Greeter" failed at row 1 col 2 (slider): invalid range`
	if got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	// Failures not tied to a cell omit the position.
	err2 := &BuildError{
		Title: "Greeter",
		Row:   -1,
		Col:   -1,
		Err:   errors.New("no backend"),
	}
	got2 := err2.Error()
	want2 := `build of "Greeter" failed: no backend`
	if got2 != want2 {
		t.Errorf("BuildError.Error() = %q, want %q", got2, want2)
	}
}

func TestBuildErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &BuildError{Title: "w", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("BuildError should unwrap to its inner error")
	}
}

func TestReport(t *testing.T) {
	var capturedErr *GadgetError
	handler := &testHandler{
		onError: func(err *GadgetError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&GadgetError{
		Op:   "test.op",
		Kind: KindBuild,
		Err:  errors.New("boom"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportBuildError(t *testing.T) {
	var capturedErr *BuildError
	handler := &testHandler{
		onBuildError: func(err *BuildError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportBuildError(&BuildError{
		Title:  "Greeter",
		Widget: "button",
		Err:    errors.New("boom"),
	})

	if capturedErr == nil {
		t.Fatal("expected build error to be captured")
	}
	if capturedErr.Title != "Greeter" {
		t.Errorf("Title = %q, want %q", capturedErr.Title, "Greeter")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
	if capturedPanic.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Fatal("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError      func(*GadgetError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *GadgetError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
