// Package list implements an ordered sequence of string tokens that is
// stored and exchanged as a single delimited string. It is used both as a
// general list type and by positional parameters absorbing several words.
package list

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/reeflective/params/internal/errors"
)

// DefaultDelimiter separates list elements when none is specified.
const DefaultDelimiter = " "

// Position designates one end of a list.
type Position int

const (
	// Front is the first element of a list.
	Front Position = iota
	// Back is the last element of a list.
	Back
)

func (p Position) String() string {
	if p == Front {
		return "front"
	}

	return "back"
}

// List is an ordered sequence of tokens joined by a delimiter in its string
// form. The zero value is an empty list using the default delimiter.
type List struct {
	items []string
	delim string
}

// New returns an empty list using delim as its separator.
// An empty delimiter selects DefaultDelimiter.
func New(delim string) *List {
	if delim == "" {
		delim = DefaultDelimiter
	}

	return &List{delim: delim}
}

// Parse reads a list from its string form. The empty string is the empty list.
func Parse(value, delim string) *List {
	l := New(delim)
	if value == "" {
		return l
	}

	l.items = strings.Split(value, l.delim)

	return l
}

// Delimiter returns the separator used by the string form of the list.
func (l *List) Delimiter() string {
	if l.delim == "" {
		return DefaultDelimiter
	}

	return l.delim
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the list elements.
func (l *List) Items() []string {
	return slices.Clone(l.items)
}

// String joins all elements with exactly one delimiter between each.
func (l *List) String() string {
	return strings.Join(l.items, l.Delimiter())
}

// Contains reports whether element occurs as a whole token of the list.
func (l *List) Contains(element string) bool {
	return slices.Contains(l.items, element)
}

// Push inserts element at the requested end of the list.
func (l *List) Push(element string, pos Position) {
	if pos == Front {
		l.items = slices.Insert(l.items, 0, element)
		return
	}

	l.items = append(l.items, element)
}

// Pop returns the element at the requested end of the list, removing it if
// remove is true. On an empty list, Pop returns ErrEmptyList if failOnEmpty
// is true, or an empty element and no error otherwise.
func (l *List) Pop(pos Position, remove, failOnEmpty bool) (string, error) {
	if len(l.items) == 0 {
		if failOnEmpty {
			return "", fmt.Errorf("%w: cannot pop %s element", errors.ErrEmptyList, pos)
		}

		return "", nil
	}

	idx := 0
	if pos == Back {
		idx = len(l.items) - 1
	}

	element := l.items[idx]

	if remove {
		l.items = slices.Delete(l.items, idx, idx+1)
	}

	return element, nil
}

//
// String form helpers ------------------------------------------------------ //
//

// Contains reports whether element is a whole token of the delimited string
// value. A token only partially matching element never counts.
func Contains(value, element, delim string) bool {
	return Parse(value, delim).Contains(element)
}

// Push returns value with element added at the requested end.
func Push(value, element string, pos Position, delim string) string {
	l := Parse(value, delim)
	l.Push(element, pos)

	return l.String()
}

// Pop returns the element at the requested end of value, along with the
// resulting string value (unchanged unless remove is true).
func Pop(value string, pos Position, delim string, remove, failOnEmpty bool) (string, string, error) {
	l := Parse(value, delim)

	element, err := l.Pop(pos, remove, failOnEmpty)
	if err != nil {
		return "", value, err
	}

	return element, l.String(), nil
}
