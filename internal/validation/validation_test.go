package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	validate := NewDefault()

	tt := []struct {
		name    string
		param   string
		wantErr string
	}{
		{name: "simple", param: "machine"},
		{name: "with dash and dots", param: "log-level.v2"},
		{name: "empty", param: "", wantErr: "parameter name is empty"},
		{name: "leading dash", param: "-debug", wantErr: "`-debug` is not a valid parameter name"},
		{name: "embedded equal", param: "a=b", wantErr: "`a=b` is not a valid parameter name"},
		{name: "whitespace", param: "two words", wantErr: "`two words` is not a valid parameter name"},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			err := Name(validate, test.param)
			if test.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, test.wantErr, err.Error())

			var fieldErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &fieldErrs)
		})
	}
}

func TestNameNilValidator(t *testing.T) {
	require.NoError(t, Name(nil, "user"))
	require.Error(t, Name(nil, "=user"))
}

func TestNewWith(t *testing.T) {
	custom := validator.New()
	require.NoError(t, custom.RegisterValidation("short", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) < 5
	}))

	validate := NewWith(custom)
	require.NoError(t, Name(validate, "user"))
	require.Error(t, validate.Var("toolong", "short"))
	require.NoError(t, validate.Var("ok", NameTag))
}
