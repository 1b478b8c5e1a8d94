package parser

import "strings"

// IsStringFalsy returns true if a string is considered "falsy" (empty, "false", "no", or "0").
func IsStringFalsy(s string) bool {
	return s == "" || s == "false" || s == "no" || s == "0"
}

// CommandLine rebuilds the full command line of a program
// invocation, with all words separated by a single space.
func CommandLine(program string, args []string) string {
	words := make([]string, 0, len(args)+1)
	if program != "" {
		words = append(words, program)
	}

	words = append(words, args...)

	return strings.Join(words, " ")
}
