// Package positional binds words that are not named options to positional
// parameters, in declaration order, and accumulates every extra word onto
// the last filled positional.
package positional

import (
	"fmt"

	"github.com/reeflective/params/internal/errors"
	"github.com/reeflective/params/internal/list"
	"github.com/reeflective/params/internal/symbols"
)

// Args is the positional state of a single parse: the queue of slots not
// yet filled, and the last slot that has been.
type Args struct {
	pending *list.List     // Slots not yet given a word, in declaration order
	last    string         // Most recently filled slot
	delim   string         // Separator for words accumulated on the last slot
	table   *symbols.Table // Where words are bound
}

// NewArgs returns positional state for the given slot names, binding words
// into table. The slot list is copied, so that consuming slots never alters
// the catalog order.
func NewArgs(names []string, table *symbols.Table, delim string) *Args {
	pending := list.New(list.DefaultDelimiter)
	for _, name := range names {
		pending.Push(name, list.Back)
	}

	if delim == "" {
		delim = list.DefaultDelimiter
	}

	return &Args{
		pending: pending,
		delim:   delim,
		table:   table,
	}
}

// Next returns the slot the next positional word is destined to, consuming
// it from the pending queue. When all slots are filled, the last one is
// returned again. An empty name means no slot can take the word.
func (args *Args) Next() string {
	candidate, _ := args.pending.Pop(list.Front, true, false)
	if candidate == "" {
		candidate = args.last
	}

	return candidate
}

// Bind assigns word to the next positional slot and returns its name. The
// first word given to a slot replaces its value, while any further word is
// appended to it as a list. Bind fails with ErrUnrecognized when there is no
// slot to bind to.
func (args *Args) Bind(word string) (string, error) {
	candidate := args.Next()
	if candidate == "" {
		return "", fmt.Errorf("%w: %s", errors.ErrUnrecognized, word)
	}

	if candidate != args.last {
		args.table.Set(candidate, word)
	} else {
		args.table.Append(candidate, word, args.delim)
	}

	args.last = candidate

	return candidate, nil
}
