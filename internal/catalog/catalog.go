// Package catalog holds the ordered registries of named options and
// positional parameters a program accepts, along with their defaults.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slices"

	"github.com/reeflective/params/internal/errors"
	"github.com/reeflective/params/internal/parser"
	"github.com/reeflective/params/internal/symbols"
	"github.com/reeflective/params/internal/validation"
)

// Kind distinguishes named options from positional parameters.
type Kind int

const (
	// Named parameters are given as --name or --name=value.
	Named Kind = iota
	// Positional parameters are bound in declaration order.
	Positional
)

func (k Kind) String() string {
	switch k {
	case Named:
		return "named"
	case Positional:
		return "positional"
	default:
		return "unknown"
	}
}

// Descriptor is a single parameter declaration.
type Descriptor struct {
	Name    string
	Default string
	Kind    Kind
	Usage   string
}

// Catalog stores named and positional descriptors in registration order,
// and seeds the symbol table with their defaults.
type Catalog struct {
	named      []*Descriptor
	positional []*Descriptor
	symbols    *symbols.Table
	validate   *validator.Validate
}

// New returns an empty catalog seeding defaults into table.
// A nil validator selects the default parameter name validator.
func New(table *symbols.Table, validate *validator.Validate) *Catalog {
	if table == nil {
		table = symbols.New()
	}

	if validate == nil {
		validate = validation.NewDefault()
	}

	return &Catalog{
		symbols:  table,
		validate: validate,
	}
}

// Symbols returns the table seeded by this catalog.
func (c *Catalog) Symbols() *symbols.Table {
	return c.symbols
}

// Register declares parameters of the given kind. Each spec is either
// `name` or `name=default`. The default is bound in the symbol table and
// the name appended to the catalog. Re-registering a name updates its
// default and appends a duplicate entry. Registration stops at the first
// invalid spec, leaving the previous ones registered.
func (c *Catalog) Register(kind Kind, specs ...string) error {
	if kind != Named && kind != Positional {
		return fmt.Errorf("%w: unknown parameter kind %d", errors.ErrInvalidSpec, kind)
	}

	for _, spec := range specs {
		name, def := parser.NameValue(spec, parser.DefaultDelimiter, "")

		if err := validation.Name(c.validate, name); err != nil {
			return fmt.Errorf("%w %q: %w", errors.ErrInvalidSpec, spec, err)
		}

		desc := &Descriptor{Name: name, Default: def, Kind: kind}

		// Keep help text given to a previous registration.
		if prev := c.Descriptor(name); prev != nil {
			desc.Usage = prev.Usage
		}

		c.symbols.Set(name, def)

		if kind == Named {
			c.named = append(c.named, desc)
		} else {
			c.positional = append(c.positional, desc)
		}
	}

	return nil
}

// Describe attaches help text to all descriptors registered under name.
// It returns false if no such parameter exists.
func (c *Catalog) Describe(name, usage string) bool {
	found := false

	for _, desc := range c.all() {
		if desc.Name == name {
			desc.Usage = usage
			found = true
		}
	}

	return found
}

// IsNamed reports whether name is a registered named option.
func (c *Catalog) IsNamed(name string) bool {
	return slices.ContainsFunc(c.named, func(d *Descriptor) bool { return d.Name == name })
}

// Named returns a copy of the named descriptors, in registration order.
func (c *Catalog) Named() []Descriptor {
	return copyDescriptors(c.named)
}

// Positionals returns a copy of the positional descriptors, in registration order.
func (c *Catalog) Positionals() []Descriptor {
	return copyDescriptors(c.positional)
}

// PositionalNames returns the positional names in matching order, duplicates included.
func (c *Catalog) PositionalNames() []string {
	names := make([]string, len(c.positional))
	for i, desc := range c.positional {
		names[i] = desc.Name
	}

	return names
}

// Descriptor returns a copy of the descriptor last registered under name,
// positionals being searched before named options. It returns nil if none.
func (c *Catalog) Descriptor(name string) *Descriptor {
	all := c.all()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Name == name {
			desc := *all[i]
			return &desc
		}
	}

	return nil
}

func (c *Catalog) all() []*Descriptor {
	all := make([]*Descriptor, 0, len(c.named)+len(c.positional))
	all = append(all, c.named...)

	return append(all, c.positional...)
}

func copyDescriptors(descs []*Descriptor) []Descriptor {
	copied := make([]Descriptor, len(descs))
	for i, desc := range descs {
		copied[i] = *desc
	}

	return copied
}
