package interfaces

import (
	"github.com/rsteube/carapace"
)

// Completer is the interface for types that can provide their own shell
// completion suggestions for a parameter value.
type Completer interface {
	Complete(ctx carapace.Context) carapace.Action
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx carapace.Context) carapace.Action

// Complete calls f(ctx).
func (f CompleterFunc) Complete(ctx carapace.Context) carapace.Action {
	return f(ctx)
}
