package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Reporter.Report")
		panic("reporter exploded")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "Reporter.Report" {
		t.Errorf("Operation = %q", panicErr.Operation)
	}
	if panicErr.PanicValue != "reporter exploded" {
		t.Errorf("PanicValue = %v", panicErr.PanicValue)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}
	if !strings.Contains(panicErr.String(), "Stack trace:") {
		t.Error("String() should include the stack trace")
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Train")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	original := New("sampling failed")
	testFunc := func() (err error) {
		defer Recover(&err, "Train")
		err = original
		panic("late panic")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !errors.Is(err, original) {
		t.Error("original error should remain in the chain")
	}
	if !strings.Contains(err.Error(), "late panic") {
		t.Errorf("panic value missing from %q", err.Error())
	}
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name      string
		fn        func() error
		wantPanic bool
		wantErr   bool
	}{
		{"success", func() error { return nil }, false, false},
		{"error", func() error { return New("render failed") }, false, true},
		{"panic", func() error { panic(42) }, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("plot.Save", tt.fn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SafeExecute() error = %v, wantErr %v", err, tt.wantErr)
			}
			var panicErr *PanicError
			if got := errors.As(err, &panicErr); got != tt.wantPanic {
				t.Errorf("PanicError = %v, want %v", got, tt.wantPanic)
			}
		})
	}
}
