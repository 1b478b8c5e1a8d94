// Package help dispatches help requests to the host program, and
// formats the registered parameters as two-column help lines.
package help

import (
	"fmt"

	"github.com/reeflective/params/internal/errors"
	"github.com/reeflective/params/internal/parser"
)

// Exit codes returned by dispatchers.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Dispatch invokes the help collaborator and returns a success code.
// Without one, it returns ErrNoHelp and a failure code.
func Dispatch(fn parser.HelpFunc) (int, error) {
	if fn == nil {
		return ExitFailure, fmt.Errorf("%w: cannot show help", errors.ErrNoHelp)
	}

	fn()

	return ExitOK, nil
}

// ForError shows help, if any, after a parse error.
// The returned code is always a failure.
func ForError(fn parser.HelpFunc) int {
	if fn != nil {
		fn()
	}

	return ExitFailure
}
