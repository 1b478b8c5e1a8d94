package params

import (
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/params/internal/engine"
	"github.com/reeflective/params/internal/interfaces"
	"github.com/reeflective/params/internal/parser"
)

// Completer is the interface for types that can provide their own shell
// completion suggestions for a parameter value.
type Completer = interfaces.Completer

// SetCompleter sets the completer of a parameter value: a positional one
// when its slot is being completed, or a named one after `--name=`.
func (p *Parser) SetCompleter(name string, completer Completer) {
	if p.completers == nil {
		p.completers = make(map[string]Completer)
	}

	p.completers[name] = completer
}

// SetCompletion is like SetCompleter, for a completion action.
func (p *Parser) SetCompletion(name string, action carapace.Action) {
	p.SetCompleter(name, interfaces.CompleterFunc(func(carapace.Context) carapace.Action {
		return action
	}))
}

// Complete generates shell completions for a command bound to the parser.
// Named options are completed on words starting with a dash, and other
// words are completed for the positional slot they would be bound to.
func Complete(cmd *cobra.Command, p *Parser) *carapace.Carapace {
	comps := carapace.Gen(cmd)

	comps.PositionalAnyCompletion(carapace.ActionCallback(func(ctx carapace.Context) carapace.Action {
		if len(ctx.Value) > 0 && ctx.Value[0] == '-' {
			return p.completeOptions()
		}

		return p.completeValue(ctx, p.NextSlot(ctx.Args))
	}))

	return comps
}

// NextSlot returns the positional parameter the word following args would
// be bound to, without binding any of them. It is empty when no positional
// could take another word.
func (p *Parser) NextSlot(args []string) string {
	return engine.New(p.catalog, parser.CopyOpts(p.opts)).NextSlot(args)
}

// completeValue uses the completer of a parameter, if any.
func (p *Parser) completeValue(ctx carapace.Context, name string) carapace.Action {
	if completer, found := p.completers[name]; found && name != "" {
		return completer.Complete(ctx)
	}

	return carapace.ActionValues()
}

// completeOptions proposes named options, then their values after `=`.
func (p *Parser) completeOptions() carapace.Action {
	return carapace.ActionMultiParts(parser.DefaultDelimiter, func(c carapace.Context) carapace.Action {
		switch len(c.Parts) {
		case 0:
			return carapace.ActionValuesDescribed(p.optionCandidates()...)
		case 1:
			return p.completeValue(c, parser.StripDashes(c.Parts[0]))
		default:
			return carapace.ActionValues()
		}
	})
}

// optionCandidates returns pairs of option words and descriptions.
func (p *Parser) optionCandidates() []string {
	seen := make(map[string]bool)
	candidates := []string{"--" + parser.HelpName, "show help"}

	for _, desc := range p.catalog.Named() {
		if seen[desc.Name] || desc.Name == parser.HelpName {
			continue
		}

		seen[desc.Name] = true
		candidates = append(candidates, "--"+desc.Name, desc.Usage)
	}

	return candidates
}
