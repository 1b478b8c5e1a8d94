package parser

import "strings"

const (
	// DefaultDelimiter separates an option name from its value.
	DefaultDelimiter = "="

	// DefaultFlagValue is the value bound to an option given without one.
	DefaultFlagValue = "1"

	// HelpName is the pseudo-option always recognized as a help request.
	HelpName = "help"

	// ShortHelp is rewritten to the long help option before classification.
	ShortHelp = "-h"
)

// NameValue splits token at the first occurrence of delim. The name is
// everything before it, and the value everything after, including any
// further occurrences of delim. When token does not contain delim, the
// whole token is the name and def is returned as the value.
func NameValue(token, delim, def string) (name, value string) {
	if delim == "" {
		return token, def
	}

	name, value, found := strings.Cut(token, delim)
	if !found {
		return token, def
	}

	return name, value
}

// StripDashes removes all leading dashes from a command-line token.
func StripDashes(token string) string {
	return strings.TrimLeft(token, "-")
}

// Normalize rewrites the short help option to its long form,
// and strips the leading dashes of the result.
func Normalize(token string) string {
	if token == ShortHelp {
		token = "--" + HelpName
	}

	return StripDashes(token)
}
