package params

import (
	"errors"

	flagerrors "github.com/reeflective/params/internal/errors"
)

// ErrorType represents the type of error.
type ErrorType uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ErrorType = iota

	// ErrUnrecognizedParam indicates that a word matched neither a
	// named option nor a positional parameter.
	ErrUnrecognizedParam

	// ErrEmptyListPop indicates that an element was required from an empty list.
	ErrEmptyListPop

	// ErrMissingHelp indicates that help was requested, but none is defined.
	ErrMissingHelp

	// ErrSpec indicates an invalid parameter specification.
	ErrSpec
)

func (e ErrorType) String() string {
	errs := [...]string{
		"unknown",                // ErrUnknown
		"unrecognized parameter", // ErrUnrecognizedParam
		"empty list",             // ErrEmptyListPop
		"missing help",           // ErrMissingHelp
		"invalid spec",           // ErrSpec
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ErrorType) Error() string {
	return e.String()
}

// Error represents a parser error. Errors returned from registration
// and parsing are of this type. The error contains both a Type and Message,
// and unwraps to the sentinel errors exported by this package.
type Error struct {
	// The type of error
	Type ErrorType

	// The error message
	Message string

	err error
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

func wrapError(err error) *Error {
	if err == nil {
		return nil
	}

	var ret *Error
	if errors.As(err, &ret) {
		return ret
	}

	return &Error{
		Type:    errorType(err),
		Message: err.Error(),
		err:     err,
	}
}

func errorType(err error) ErrorType {
	switch {
	case errors.Is(err, flagerrors.ErrUnrecognized):
		return ErrUnrecognizedParam
	case errors.Is(err, flagerrors.ErrEmptyList):
		return ErrEmptyListPop
	case errors.Is(err, flagerrors.ErrNoHelp):
		return ErrMissingHelp
	case errors.Is(err, flagerrors.ErrInvalidSpec):
		return ErrSpec
	default:
		return ErrUnknown
	}
}
