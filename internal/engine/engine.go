// Package engine classifies command-line words as named options or
// positional parameters, and binds them into the symbol table.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reeflective/params/internal/catalog"
	"github.com/reeflective/params/internal/errors"
	"github.com/reeflective/params/internal/parser"
	"github.com/reeflective/params/internal/positional"
	"github.com/reeflective/params/internal/symbols"
)

// Status is the terminal state of a parse.
type Status int

const (
	// Continue means all words have been bound, and the program can go on.
	Continue Status = iota
	// HelpRequested means a truthy help option stopped the parse.
	HelpRequested
	// Error means a word could not be bound, stopping the parse.
	Error
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case HelpRequested:
		return "help"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a parse.
type Result struct {
	Status      Status
	Err         error    // Set when Status is Error
	Token       string   // Raw word that stopped the parse, if any
	Bound       []string // Names bound, in order, duplicates included
	CommandLine string   // Program path and all raw words
}

// State is the ephemeral state of a single parse.
type State struct {
	Args        *positional.Args
	Bound       []string
	CommandLine string
}

// Engine binds command-line words according to a catalog.
type Engine struct {
	catalog *catalog.Catalog
	opts    *parser.Opts
}

// New returns an engine classifying words with cat.
func New(cat *catalog.Catalog, opts ...parser.OptFunc) *Engine {
	return &Engine{
		catalog: cat,
		opts:    parser.DefOpts().Apply(opts...),
	}
}

// Parse classifies and binds all args in order. The program path is not
// part of args, and only used to rebuild the full command line.
func (e *Engine) Parse(program string, args []string) *Result {
	table := e.catalog.Symbols()

	state := &State{
		Args:        positional.NewArgs(e.catalog.PositionalNames(), table, e.opts.ListDelimiter),
		CommandLine: parser.CommandLine(program, args),
	}

	res := &Result{CommandLine: state.CommandLine}

	for _, arg := range args {
		status, err := e.bind(state, table, arg)
		if status == Continue {
			continue
		}

		res.Status = status
		res.Err = err
		res.Token = arg

		break
	}

	res.Bound = state.Bound

	return res
}

// bind applies a single word to the parse state.
func (e *Engine) bind(state *State, table *symbols.Table, arg string) (Status, error) {
	token := parser.Normalize(arg)
	name, value := parser.NameValue(token, e.opts.ValueDelimiter, e.opts.FlagDefault)

	// Named options always win over positionals with the same name.
	if name == parser.HelpName || e.catalog.IsNamed(name) {
		table.Set(name, value)
		state.Bound = append(state.Bound, name)
		e.trace("named", arg, name, value)

		if name == parser.HelpName && !parser.IsStringFalsy(value) {
			return HelpRequested, nil
		}

		return Continue, nil
	}

	slot, err := state.Args.Bind(token)
	if err != nil {
		e.trace("unrecognized", arg, name, value)
		return Error, fmt.Errorf("%w: %w", errors.ErrParse, err)
	}

	state.Bound = append(state.Bound, slot)
	e.trace("positional", arg, slot, table.Get(slot))

	return Continue, nil
}

func (e *Engine) trace(kind, arg, name, value string) {
	e.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "classified argument",
		slog.String("kind", kind),
		slog.String("arg", arg),
		slog.String("name", name),
		slog.String("value", value),
	)
}

// NextSlot replays args without binding them, and returns the positional
// parameter the next word would be bound to. It returns an empty string
// when no slot could take the word. Completion engines use it to know
// which positional is being completed.
func (e *Engine) NextSlot(args []string) string {
	pos := positional.NewArgs(e.catalog.PositionalNames(), e.catalog.Symbols().Clone(), e.opts.ListDelimiter)

	for _, arg := range args {
		token := parser.Normalize(arg)
		name, _ := parser.NameValue(token, e.opts.ValueDelimiter, e.opts.FlagDefault)

		if name == parser.HelpName || e.catalog.IsNamed(name) {
			continue
		}

		if _, err := pos.Bind(token); err != nil {
			return ""
		}
	}

	return pos.Next()
}
