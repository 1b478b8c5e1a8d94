package parser

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
)

// HelpFunc is the help collaborator a host program may define.
type HelpFunc func()

// ErrorPrinter reports errors to the user.
type ErrorPrinter interface {
	Error(format string, args ...any)
}

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing options.
type Opts struct {
	// ListDelimiter separates words accumulated onto the last positional.
	ListDelimiter string

	// ValueDelimiter separates option names from their values.
	ValueDelimiter string

	// FlagDefault is bound to options given without a value.
	FlagDefault string

	// Help is invoked when help is requested. Nil means no help text.
	Help HelpFunc

	// Logger receives a debug trace of token classification.
	Logger *slog.Logger

	// Validator checks parameter names at registration time.
	Validator *validator.Validate

	// Output is where usage strings are printed.
	Output io.Writer

	// Printer reports parse errors to the user.
	Printer ErrorPrinter
}

// DefOpts returns the default parsing options.
func DefOpts() *Opts {
	return &Opts{
		ListDelimiter:  " ",
		ValueDelimiter: DefaultDelimiter,
		FlagDefault:    DefaultFlagValue,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Output:         os.Stdout,
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// CopyOpts returns a copy of the given options.
func CopyOpts(opts *Opts) OptFunc {
	return func(opt *Opts) {
		*opt = *opts
	}
}

// Help sets the help collaborator.
func Help(val HelpFunc) OptFunc { return func(opt *Opts) { opt.Help = val } }

// Logger sets the logger used to trace classification.
func Logger(val *slog.Logger) OptFunc {
	return func(opt *Opts) {
		if val != nil {
			opt.Logger = val
		}
	}
}

// ListDelimiter sets the separator of accumulated positional words. It is a space by default.
func ListDelimiter(val string) OptFunc { return func(opt *Opts) { opt.ListDelimiter = val } }

// ValueDelimiter sets the separator of option names and values.
// An empty delimiter keeps the current one.
func ValueDelimiter(val string) OptFunc {
	return func(opt *Opts) {
		if val != "" {
			opt.ValueDelimiter = val
		}
	}
}

// FlagDefault sets the value bound to options given without one. It is "1" by default.
func FlagDefault(val string) OptFunc { return func(opt *Opts) { opt.FlagDefault = val } }

// Validator sets the validator used on parameter names.
func Validator(val *validator.Validate) OptFunc {
	return func(opt *Opts) { opt.Validator = val }
}

// Output sets the writer used for usage strings.
func Output(val io.Writer) OptFunc { return func(opt *Opts) { opt.Output = val } }

// Printer sets the printer used to report errors.
func Printer(val ErrorPrinter) OptFunc {
	return func(opt *Opts) {
		if val != nil {
			opt.Printer = val
		}
	}
}
