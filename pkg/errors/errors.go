// Package errors provides the error and warning types used across the perceptron module.
// Errors carry stack traces through cockroachdb/errors and can be logged as structured
// zerolog objects.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("perceptron-warning: %v\n", w)
	}
	// set by pkg/log to avoid an import cycle
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the fallback handler used by Warn when no zerolog
// sink has been installed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the structured warning sink. Passing nil restores
// the fallback handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. The zerolog sink wins over the fallback handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// DegenerateBoundaryWarning is raised when both slope coefficients of a boundary are
// zero. Every point then has the same signed value (the constant term), so the
// boundary separates nothing.
type DegenerateBoundaryWarning struct {
	Phase string
	C     float64
}

func (w *DegenerateBoundaryWarning) Error() string {
	return fmt.Sprintf("degenerate boundary during %s: a = b = 0, every point evaluates to c = %g", w.Phase, w.C)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *DegenerateBoundaryWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("phase", w.Phase).
		Float64("c", w.C).
		Str("type", "DegenerateBoundaryWarning")
}

// NewDegenerateBoundaryWarning creates a new DegenerateBoundaryWarning.
func NewDegenerateBoundaryWarning(phase string, c float64) *DegenerateBoundaryWarning {
	return &DegenerateBoundaryWarning{Phase: phase, C: c}
}

// VerticalBoundaryWarning is raised by renderers that draw the boundary as
// y = f(x) when b is zero.
type VerticalBoundaryWarning struct {
	A, C float64
}

func (w *VerticalBoundaryWarning) Error() string {
	return fmt.Sprintf("boundary is vertical (b = 0, a = %g, c = %g) and cannot be drawn as y = f(x)", w.A, w.C)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *VerticalBoundaryWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("a", w.A).
		Float64("c", w.C).
		Str("type", "VerticalBoundaryWarning")
}

// NewVerticalBoundaryWarning creates a new VerticalBoundaryWarning.
func NewVerticalBoundaryWarning(a, c float64) *VerticalBoundaryWarning {
	return &VerticalBoundaryWarning{A: a, C: c}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// EmptyClassError is returned when a point has to be drawn from a class whose
// collection holds no points.
type EmptyClassError struct {
	Op    string
	Class string
}

func (e *EmptyClassError) Error() string {
	return fmt.Sprintf("perceptron: %s: no points available for class %s", e.Op, e.Class)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *EmptyClassError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("class", e.Class).
		Str("type", "EmptyClassError")
}

// Is reports ErrEmptyData equivalence so callers can match on the sentinel.
func (e *EmptyClassError) Is(target error) bool {
	return target == ErrEmptyData
}

// NewEmptyClassError creates a new EmptyClassError with a stack trace.
func NewEmptyClassError(op, class string) error {
	return errors.WithStack(&EmptyClassError{Op: op, Class: class})
}

// DimensionError is returned when input data has an unexpected shape.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("perceptron: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError is returned when a hyperparameter or configuration value is rejected.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("perceptron: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError is returned when an argument has an unusable value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("perceptron: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// NumericalInstabilityError is returned when boundary coefficients become NaN or Inf.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("perceptron: numerical instability detected in %s at step %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("iteration", e.Iteration).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError with a stack trace.
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinels
//
// ===========================================================================

var (
	// ErrEmptyData is matched by every error caused by missing input points.
	ErrEmptyData = New("empty data")
)
