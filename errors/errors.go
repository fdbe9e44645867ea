package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes.
type ErrorClass int

const (
	// ErrorData represents problems in user-supplied data. The model layer
	// reports these as message.Status values; they appear as Go errors only
	// at integration boundaries (file parsing in the CLI, importers).
	ErrorData ErrorClass = iota
	// ErrorProgramming represents caller/integration bugs: wrong concrete
	// type for an item tag, attempts to mutate immutable state.
	ErrorProgramming
	// ErrorExternal represents failures of an external collaborator, such
	// as the JSON-Schema engine rejecting its own schema.
	ErrorExternal
)

// String returns the string representation of ErrorClass.
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorData:
		return "data"
	case ErrorProgramming:
		return "programming"
	case ErrorExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions.
var (
	// Item lifecycle errors
	ErrWrongItemType  = errors.New("wrong item type for this constructor")
	ErrImmutableField = errors.New("immutable field cannot be changed")
	ErrUnknownItem    = errors.New("unknown item type")

	// Data errors
	ErrInvalidData   = errors.New("invalid data format")
	ErrInvalidID     = errors.New("invalid identifier")
	ErrParsingFailed = errors.New("parsing failed")

	// Collaborator errors
	ErrSchemaEngine   = errors.New("schema validation engine failure")
	ErrNotImplemented = errors.New("not implemented")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification and origin.
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface.
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return fmt.Sprintf("%s.%s: %s: %v", ce.Component, ce.Operation, ce.Message, ce.Err)
	}
	return fmt.Sprintf("%s.%s: %v", ce.Component, ce.Operation, ce.Err)
}

// Unwrap returns the underlying error.
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsProgramming checks whether an error indicates a caller bug.
func IsProgramming(err error) bool {
	return classOf(err, ErrorProgramming) ||
		errors.Is(err, ErrWrongItemType) ||
		errors.Is(err, ErrImmutableField) ||
		errors.Is(err, ErrUnknownItem)
}

// IsExternal checks whether an error originated in an external collaborator.
func IsExternal(err error) bool {
	return classOf(err, ErrorExternal) ||
		errors.Is(err, ErrSchemaEngine) ||
		errors.Is(err, ErrNotImplemented)
}

// IsData checks whether an error describes a data-quality problem.
func IsData(err error) bool {
	return classOf(err, ErrorData) ||
		errors.Is(err, ErrInvalidData) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrParsingFailed)
}

func classOf(err error, class ErrorClass) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	return errors.As(err, &ce) && ce.Class == class
}

// Classify returns the error class for an error. Unclassified errors default
// to ErrorData, the least severe interpretation.
func Classify(err error) ErrorClass {
	switch {
	case IsProgramming(err):
		return ErrorProgramming
	case IsExternal(err):
		return ErrorExternal
	default:
		return ErrorData
	}
}

func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern
// "component.method: action failed: %w".
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapData wraps an error as a data problem with context.
func WrapData(err error, component, operation, message string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorData, err, component, operation, message)
}

// WrapProgramming wraps an error as a caller bug with context.
func WrapProgramming(err error, component, operation, message string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorProgramming, err, component, operation, message)
}

// WrapExternal wraps an error as an external-collaborator failure with
// context.
func WrapExternal(err error, component, operation, message string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorExternal, err, component, operation, message)
}
