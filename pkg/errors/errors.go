// Package errors provides the error handling and warning system used across
// the spectra library. The structured error types describe failures in
// spectral indexing, unit conversion and line fitting, and every constructor
// attaches a stack trace via cockroachdb/errors.
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
		// Default handler logs to standard error.
		log.Printf("spectra-warning: %v\n", w)
	}
	// zerolog warning function, set lazily to avoid an import cycle.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler installs a library-wide warning handler. Warnings such as
// ConvergenceWarning are reported through it without interrupting control
// flow.
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

// SetZerologWarnFunc routes warnings through a zerolog logger. Installed
// lazily so this package does not depend on a configured logger at init time.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn reports a warning. If a zerolog function is installed it takes
// precedence; otherwise the plain handler is used.
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
//	Indexing errors
//
// ===========================================================================

// IndexKind classifies the ways an index expression can be invalid.
type IndexKind string

const (
	// KindTooManyIndices is raised for multi-axis indexing of a
	// one-dimensional spectrum.
	KindTooManyIndices IndexKind = "too many indices"

	// KindUnsupportedIndex is raised for index expressions of an
	// unrecognized or absent kind.
	KindUnsupportedIndex IndexKind = "unsupported index"

	// KindBadStep is raised when a slice step is not a plain integer.
	KindBadStep IndexKind = "bad step"

	// KindOutOfRange is raised when a pixel position falls outside the
	// spectrum.
	KindOutOfRange IndexKind = "out of range"
)

// IndexError reports an invalid index expression. No partial effect has taken
// place when it is returned.
type IndexError struct {
	Op      string
	Kind    IndexKind
	Message string
}

func (e *IndexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("spectra: %s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("spectra: %s: %s", e.Op, e.Kind)
}

// MarshalZerologObject adds the structured index error to a zerolog event.
func (e *IndexError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("kind", string(e.Kind)).
		Str("message", e.Message).
		Str("type", "IndexError")
}

// NewIndexError creates an IndexError with a stack trace attached.
func NewIndexError(op string, kind IndexKind, message string) error {
	err := &IndexError{Op: op, Kind: kind, Message: message}
	return errors.WithStack(err)
}

// IsIndexError reports whether err is (or wraps) an IndexError.
func IsIndexError(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie)
}

// ===========================================================================
//
//	Unit and shape errors
//
// ===========================================================================

// UnitConversionError reports a conversion between incompatible physical
// units, e.g. a frequency quantity applied to a wavelength axis.
type UnitConversionError struct {
	From string
	To   string
}

func (e *UnitConversionError) Error() string {
	return fmt.Sprintf("spectra: cannot convert %s to %s: incompatible dimensions", e.From, e.To)
}

// MarshalZerologObject adds the structured conversion error to a zerolog event.
func (e *UnitConversionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("from", e.From).
		Str("to", e.To).
		Str("type", "UnitConversionError")
}

// NewUnitConversionError creates a UnitConversionError with a stack trace
// attached.
func NewUnitConversionError(from, to string) error {
	err := &UnitConversionError{From: from, To: to}
	return errors.WithStack(err)
}

// DimensionError reports a length mismatch between parallel arrays, e.g. an
// axis shorter than its data.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("spectra: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured dimension error to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is unsuitable for the requested
// operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("spectra: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Fitting warnings
//
// ===========================================================================

// ConvergenceWarning is raised when the least-squares solver stops without
// reaching its convergence criteria. The solver's own error is still
// propagated to the caller, untouched.
type ConvergenceWarning struct {
	Solver     string
	Iterations int
	Message    string
}

func (w *ConvergenceWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("%s failed to converge after %d iterations: %s", w.Solver, w.Iterations, w.Message)
	}
	return fmt.Sprintf("%s failed to converge after %d iterations. Consider increasing MaxIterations or refining the initial guess.", w.Solver, w.Iterations)
}

// MarshalZerologObject adds the structured warning to a zerolog event.
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("solver", w.Solver).
		Int("iterations", w.Iterations).
		Str("message", w.Message).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning creates a new ConvergenceWarning.
func NewConvergenceWarning(solver string, iterations int, message string) *ConvergenceWarning {
	return &ConvergenceWarning{Solver: solver, Iterations: iterations, Message: message}
}

// ===========================================================================
//
//	cockroachdb/errors wrapper functions
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no samples.
	ErrEmptyData = New("empty data")
)
