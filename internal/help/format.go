package help

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/reeflective/params/internal/catalog"
	"github.com/reeflective/params/internal/values"
)

// wrapColumns is the width at which option usages are wrapped.
const wrapColumns = 80

// Format renders the usage line, the positional parameters and the named
// options of a catalog, each with its help text and default value.
func Format(program string, cat *catalog.Catalog) string {
	var buf strings.Builder

	positionals := uniqueDescriptors(cat.Positionals())
	named := uniqueDescriptors(cat.Named())

	buf.WriteString("Usage: " + program)

	if len(named) > 0 {
		buf.WriteString(" [options]")
	}

	for _, desc := range positionals {
		buf.WriteString(" " + desc.Name)
	}

	buf.WriteString("\n")

	if len(positionals) > 0 {
		buf.WriteString("\nParameters:\n")
		buf.WriteString(Positionals(positionals))
	}

	if len(named) > 0 {
		buf.WriteString("\nOptions:\n")
		buf.WriteString(Options(named))
	}

	return buf.String()
}

// Options renders named options as two-column help lines. Defaults are
// part of the usage text, since pflag hides those looking like zero values.
func Options(descs []catalog.Descriptor) string {
	flags := pflag.NewFlagSet("params", pflag.ContinueOnError)
	flags.SortFlags = false

	for _, desc := range descs {
		var value values.Value = values.NewText("")
		flags.Var(value, desc.Name, usageText(desc))
	}

	return flags.FlagUsagesWrapped(wrapColumns)
}

// Positionals renders positional parameters as two-column help lines.
func Positionals(descs []catalog.Descriptor) string {
	width := 0
	for _, desc := range descs {
		width = max(width, len(desc.Name))
	}

	var buf strings.Builder

	for _, desc := range descs {
		line := fmt.Sprintf("  %-*s   %s", width, desc.Name, usageText(desc))
		buf.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	return buf.String()
}

// usageText returns the help text of a parameter, followed by its
// default value when it has one.
func usageText(desc catalog.Descriptor) string {
	if desc.Default == "" {
		return desc.Usage
	}

	return strings.TrimSpace(fmt.Sprintf("%s (default %q)", desc.Usage, desc.Default))
}

// uniqueDescriptors drops duplicate registrations, keeping the
// first position of a name but the latest default and usage.
func uniqueDescriptors(descs []catalog.Descriptor) []catalog.Descriptor {
	index := make(map[string]int, len(descs))
	unique := make([]catalog.Descriptor, 0, len(descs))

	for _, desc := range descs {
		if i, found := index[desc.Name]; found {
			unique[i] = desc
			continue
		}

		index[desc.Name] = len(unique)
		unique = append(unique, desc)
	}

	return unique
}
