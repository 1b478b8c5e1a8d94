package errors

import "errors"

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrEmptyList is returned when popping a required element from an empty list.
	ErrEmptyList = errors.New("empty list")

	// ErrUnrecognized indicates that a command-line token matched neither a
	// named option nor any positional slot, declared or already filled.
	ErrUnrecognized = errors.New("unrecognized parameter")

	// ErrNoHelp indicates that help was requested, but the host
	// program has not defined any help text to show.
	ErrNoHelp = errors.New("no help text defined")

	// ErrInvalidSpec indicates that a parameter specification
	// given at registration time is not a valid `name[=default]`.
	ErrInvalidSpec = errors.New("invalid parameter spec")
)
