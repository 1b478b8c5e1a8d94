// Package validation checks parameter names given at registration time,
// using go-playground/validator with a custom tag.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// NameTag is the validator tag checking that a string can be used as a
// parameter name: not starting with a dash, no whitespace, no '='.
const NameTag = "param_name"

// nameTags are applied to every registered parameter name.
const nameTags = "required," + NameTag

var validName = regexp.MustCompile(`^[^-=\s][^=\s]*$`)

// NewDefault returns a validator with the parameter name tag registered.
func NewDefault() *validator.Validate {
	return NewWith(validator.New())
}

// NewWith registers the parameter name tag on a user-provided validator.
// A nil validator is replaced with a new default one.
func NewWith(validate *validator.Validate) *validator.Validate {
	if validate == nil {
		validate = validator.New()
	}

	// Only fails on an empty tag or nil func.
	_ = validate.RegisterValidation(NameTag, isValidName)

	return validate
}

// Name validates a parameter name, returning an error
// adapted for command-line users when it is invalid.
func Name(validate *validator.Validate, name string) error {
	if validate == nil {
		validate = NewDefault()
	}

	if err := validate.Var(name, nameTags); err != nil {
		return &invalidNameError{name: name, validatorErr: err}
	}

	return nil
}

func isValidName(fl validator.FieldLevel) bool {
	return validName.MatchString(fl.Field().String())
}
