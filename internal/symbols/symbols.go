// Package symbols holds the table mapping parameter names to their values.
package symbols

import (
	"golang.org/x/exp/slices"

	"github.com/reeflective/params/internal/list"
)

// Table maps parameter names to their current string value. A value may
// represent a list of words, using the delimited list convention.
// A Table is not safe for concurrent use.
type Table struct {
	values map[string]string
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{values: make(map[string]string)}
}

// Set binds name to value, replacing any previous value.
func (t *Table) Set(name, value string) {
	t.init()
	t.values[name] = value
}

// Get returns the value bound to name, or an empty string.
func (t *Table) Get(name string) string {
	return t.values[name]
}

// Lookup returns the value bound to name, and whether the name exists.
func (t *Table) Lookup(name string) (string, bool) {
	value, found := t.values[name]

	return value, found
}

// Append pushes element at the back of the list value bound to name.
func (t *Table) Append(name, element, delim string) string {
	t.init()
	value := list.Push(t.values[name], element, list.Back, delim)
	t.values[name] = value

	return value
}

// List returns the value bound to name, split as a delimited list.
func (t *Table) List(name, delim string) []string {
	return list.Parse(t.values[name], delim).Items()
}

// Names returns all bound names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of names bound in the table.
func (t *Table) Len() int {
	return len(t.values)
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	clone := New()
	for name, value := range t.values {
		clone.values[name] = value
	}

	return clone
}

func (t *Table) init() {
	if t.values == nil {
		t.values = make(map[string]string)
	}
}
