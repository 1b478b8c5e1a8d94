// Package params is a catalog-driven command-line parameter engine, meant
// to be shared by many standalone programs.
//
// Programs first declare the long options and positional parameters they
// accept, with their default values. The parser then walks the command-line
// words in order, binding named options (--name, --name=value) and filling
// positional parameters in declaration order. Once all positionals have a
// value, any further word is appended to the last one, which therefore
// accumulates a list of words. The -h and --help options always request
// help, which the host program defines with WithHelp.
//
// Parsing never exits the process by itself: it returns a Result telling
// whether the program can go on, whether help was requested, or whether a
// word could not be bound. Exit implements the usual behavior for programs
// that want the parser to show help and terminate for them.
//
// Parsed values are stored as strings in a symbol table, and read back with
// Get, Lookup and List. For the collaborators used to print timestamped
// lines, banners and errors, see the subpackage at
// "github.com/reeflective/params/console".
package params

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/params/console"
	"github.com/reeflective/params/internal/catalog"
	"github.com/reeflective/params/internal/engine"
	"github.com/reeflective/params/internal/errors"
	"github.com/reeflective/params/internal/list"
	"github.com/reeflective/params/internal/parser"
	"github.com/reeflective/params/internal/symbols"
	"github.com/reeflective/params/internal/validation"
)

// === Primary Entry Points ===

// Parser is the context of a program's parameters: the catalogs of
// declared parameters, the symbol table holding their values, and the
// outcome of the last parse. A Parser is not safe for concurrent use.
type Parser struct {
	symbols    *symbols.Table
	catalog    *catalog.Catalog
	opts       *parser.Opts
	program    string
	result     *Result
	completers map[string]Completer
}

// New returns a parser with empty catalogs.
func New(opts ...Option) *Parser {
	internal := parser.DefOpts().Apply(toInternalOpts(opts)...)
	if internal.Printer == nil {
		internal.Printer = console.New()
	}

	table := symbols.New()

	return &Parser{
		symbols: table,
		catalog: catalog.New(table, internal.Validator),
		opts:    internal,
	}
}

// Named declares long options, each given as `name` or `name=default`.
// The default value is bound immediately.
func (p *Parser) Named(specs ...string) error {
	if err := p.catalog.Register(catalog.Named, specs...); err != nil {
		return wrapError(err)
	}

	return nil
}

// Positional declares positional parameters, each given as `name` or
// `name=default`. Words are bound to positionals in declaration order,
// and all words left are appended to the last one.
func (p *Parser) Positional(specs ...string) error {
	if err := p.catalog.Register(catalog.Positional, specs...); err != nil {
		return wrapError(err)
	}

	return nil
}

// Describe sets the help text of a declared parameter.
// It returns false if no parameter is declared with this name.
func (p *Parser) Describe(name, usage string) bool {
	return p.catalog.Describe(name, usage)
}

// SetHelp sets the help collaborator invoked on help requests.
func (p *Parser) SetHelp(help func()) {
	p.opts.Help = help
}

// Parse binds all command-line words. The program path is not part of args,
// and is only kept for the command line and usage strings.
func (p *Parser) Parse(program string, args []string) *Result {
	p.program = program

	res := engine.New(p.catalog, parser.CopyOpts(p.opts)).Parse(program, args)

	p.result = &Result{
		Status:      res.Status,
		Token:       res.Token,
		Bound:       res.Bound,
		CommandLine: res.CommandLine,
		Err:         wrapError(res.Err),
	}

	return p.result
}

// === Reading values ===

// Get returns the value of a parameter, or an empty string.
func (p *Parser) Get(name string) string {
	return p.symbols.Get(name)
}

// Lookup returns the value of a parameter, and whether it exists.
func (p *Parser) Lookup(name string) (string, bool) {
	return p.symbols.Lookup(name)
}

// List returns the value of a parameter as a list of words,
// as accumulated by the last positional parameter.
func (p *Parser) List(name string) []string {
	return p.symbols.List(name, p.opts.ListDelimiter)
}

// IsSet reports whether the parameter value is truthy, that is,
// neither empty nor one of "0", "no" and "false".
func (p *Parser) IsSet(name string) bool {
	return !parser.IsStringFalsy(p.symbols.Get(name))
}

// Names returns the names of all parameters with a value, sorted.
func (p *Parser) Names() []string {
	return p.symbols.Names()
}

// Bound returns the names bound by the last parse, in order.
func (p *Parser) Bound() []string {
	if p.result == nil {
		return nil
	}

	return p.result.Bound
}

// CommandLine returns the program path and all words of the last parse.
func (p *Parser) CommandLine() string {
	if p.result == nil {
		return ""
	}

	return p.result.CommandLine
}

// Result returns the outcome of the last parse, or nil.
func (p *Parser) Result() *Result {
	return p.result
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring the parser.
type Option func(o *parser.Opts)

func toInternalOpts(opts []Option) []parser.OptFunc {
	internalOpts := make([]parser.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = parser.OptFunc(opt)
	}

	return internalOpts
}

// WithHelp sets the help collaborator invoked on help requests.
// Without one, help requests fail with ErrNoHelp.
func WithHelp(help func()) Option {
	return Option(parser.Help(help))
}

// WithLogger sets a logger receiving a debug trace of each classified word.
func WithLogger(logger *slog.Logger) Option {
	return Option(parser.Logger(logger))
}

// WithListDelimiter sets the separator of words accumulated on the last
// positional parameter. It is a space by default.
func WithListDelimiter(delim string) Option {
	return Option(parser.ListDelimiter(delim))
}

// WithValueDelimiter sets the separator of option names and their values.
// It is "=" by default.
func WithValueDelimiter(delim string) Option {
	return Option(parser.ValueDelimiter(delim))
}

// WithFlagDefault sets the value bound to options given without one.
// It is "1" by default.
func WithFlagDefault(value string) Option {
	return Option(parser.FlagDefault(value))
}

// WithOutput sets the writer used to print usage strings.
func WithOutput(w io.Writer) Option {
	return Option(parser.Output(w))
}

// WithPrinter sets the printer used to report parsing errors.
func WithPrinter(printer *console.Printer) Option {
	if printer == nil {
		return func(*parser.Opts) {}
	}

	return Option(parser.Printer(printer))
}

// WithValidator registers the parameter name validation on a custom
// go-playground/validator object, and uses it on declarations.
func WithValidator(v *validator.Validate) Option {
	return Option(parser.Validator(validation.NewWith(v)))
}

// === Results ===

// Status is the terminal state of a parse.
type Status = engine.Status

const (
	// Continue means all words have been bound.
	Continue = engine.Continue
	// HelpRequested means a truthy help option stopped the parse.
	HelpRequested = engine.HelpRequested
	// Failed means a word could not be bound, stopping the parse.
	Failed = engine.Error
)

// Result is the outcome of a parse.
type Result struct {
	Status      Status
	Err         *Error   // Set when Status is Failed
	Token       string   // Word that stopped the parse, if any
	Bound       []string // Names bound, in order, duplicates included
	CommandLine string   // Program path and all words
}

func (r *Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s", r.Status, r.Err)
	}

	return r.Status.String()
}

// === Public Errors ===

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.ErrParse

	// ErrUnrecognized indicates that a word matched neither a named
	// option nor any positional parameter, declared or already filled.
	ErrUnrecognized = errors.ErrUnrecognized

	// ErrNoHelp indicates that help was requested without help defined.
	ErrNoHelp = errors.ErrNoHelp

	// ErrInvalidSpec indicates an invalid `name[=default]` declaration.
	ErrInvalidSpec = errors.ErrInvalidSpec

	// ErrEmptyList is returned when popping a required element from an empty list.
	ErrEmptyList = errors.ErrEmptyList
)

// === Lists ===

// List is an ordered sequence of words, stored as a single delimited string.
type List = list.List

// Position designates one end of a List.
type Position = list.Position

const (
	// Front is the first element of a List.
	Front = list.Front
	// Back is the last element of a List.
	Back = list.Back
)

// NewList returns an empty list using delim as separator (a space if empty).
func NewList(delim string) *List {
	return list.New(delim)
}

// ParseList reads a list from its delimited string form.
func ParseList(value, delim string) *List {
	return list.Parse(value, delim)
}
