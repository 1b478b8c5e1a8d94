package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// invalidNameError wraps an error raised by validator on a parameter
// name, and replaces its message with one adapted to the CLI.
type invalidNameError struct {
	name         string
	validatorErr error
}

// Error implements the Error interface, replacing identifiable
// validation errors with shorter messages.
func (err *invalidNameError) Error() string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err.validatorErr, &fieldErrs) || len(fieldErrs) == 0 {
		return err.validatorErr.Error()
	}

	switch fieldErrs[0].Tag() {
	case "required":
		return "parameter name is empty"
	case NameTag:
		return fmt.Sprintf("`%s` is not a valid parameter name", err.name)
	default:
		return fmt.Sprintf("`%s` is not a valid %s", err.name, fieldErrs[0].Tag())
	}
}

// Unwrap returns the underlying validator error.
func (err *invalidNameError) Unwrap() error {
	return err.validatorErr
}
