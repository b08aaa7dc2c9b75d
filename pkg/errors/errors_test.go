package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "headless.Slider",
		Kind: KindConfig,
		Err:  errors.New("Min (5) must be less than Max (1)"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "headless.Slider") || !strings.Contains(got, "config") {
		t.Errorf("error string %q should contain op and kind", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindScope, "scope"},
		{KindBuild, "build"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConfigf(t *testing.T) {
	err := Configf("headless.Slider", "Divisions must not be negative, got %d", -1)
	if err.Kind != KindConfig {
		t.Errorf("Kind = %v, want KindConfig", err.Kind)
	}
	if err.Op != "headless.Slider" {
		t.Errorf("Op = %q, want %q", err.Op, "headless.Slider")
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if !strings.Contains(err.Error(), "got -1") {
		t.Errorf("error string %q should contain the formatted message", err.Error())
	}
}

func TestScopef(t *testing.T) {
	err := Scopef("headless.Radio", "no enclosing RadioGroup")
	if err.Kind != KindScope {
		t.Errorf("Kind = %v, want KindScope", err.Kind)
	}
	if !strings.Contains(err.Error(), "no enclosing RadioGroup") {
		t.Errorf("error string %q should contain the message", err.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("underlying")
	err := &Error{Op: "test.op", Kind: KindConfig, Err: underlying}
	if !errors.Is(err, underlying) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "focus.Manager.HandleKeyEvent",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in focus.Manager.HandleKeyEvent: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorString(t *testing.T) {
	// With a panic value
	err := &BuildError{
		Widget:    "headless.Button",
		Element:   "*core.StatefulElement",
		Recovered: "nil pointer dereference",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in headless.Button.Build(): nil pointer dereference"
	if got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	// With an error
	err2 := &BuildError{
		Widget:    "headless.Button",
		Element:   "*core.StatefulElement",
		Err:       errors.New("bad configuration"),
		Timestamp: time.Now(),
	}
	if !strings.Contains(err2.Error(), "error in headless.Button.Build()") {
		t.Errorf("BuildError.Error() = %q, should contain 'error in'", err2.Error())
	}

	// With neither
	err3 := &BuildError{
		Widget:  "headless.Button",
		Element: "*core.StatefulElement",
	}
	want3 := "unknown error in headless.Button.Build()"
	if err3.Error() != want3 {
		t.Errorf("BuildError.Error() = %q, want %q", err3.Error(), want3)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *Error
	handler := &testHandler{
		onError: func(err *Error) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{
		Op:   "test.op",
		Kind: KindScope,
		Err:  errors.New("missing scope"),
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

func TestReportNil(t *testing.T) {
	handled := false
	handler := &testHandler{
		onError: func(*Error) { handled = true },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	if handled {
		t.Error("expected nil report to be dropped")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
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
		Widget:    "headless.Checkbox",
		Element:   "*core.StatefulElement",
		Recovered: "test panic",
	})

	if capturedErr == nil {
		t.Fatal("expected build error to be captured")
	}
	if capturedErr.Widget != "headless.Checkbox" {
		t.Errorf("Widget = %q, want %q", capturedErr.Widget, "headless.Checkbox")
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
		t.Error("expected StackTrace to be captured")
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
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError      func(*Error)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *Error) {
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
