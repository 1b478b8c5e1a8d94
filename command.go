package params

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reeflective/params/internal/help"
)

// Bind makes the parser handle all words given to a cobra command. Cobra
// flag parsing is disabled on the command, and the parser runs as its
// argument validator, so that parse errors are returned by Execute.
//
// When help is requested, the command run functions are skipped. Help is
// also shown before returning a parse error. If the
// parser has no help defined, the help of the command is used, which
// prints the command description followed by the parser usage.
func Bind(cmd *cobra.Command, p *Parser) {
	cmd.DisableFlagParsing = true

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if desc := c.Long; desc != "" {
			fmt.Fprintln(c.OutOrStdout(), desc)
		} else if c.Short != "" {
			fmt.Fprintln(c.OutOrStdout(), c.Short)
		}

		if p.program == "" {
			p.program = c.CommandPath()
		}

		fmt.Fprint(c.OutOrStdout(), "\n"+p.Usage())
	})

	if p.opts.Help == nil {
		p.SetHelp(func() { _ = cmd.Help() })
	}

	cmd.Args = func(c *cobra.Command, args []string) error {
		res := p.Parse(c.CommandPath(), args)

		switch res.Status {
		case HelpRequested:
			_, err := p.Help()
			return err
		case Failed:
			help.ForError(p.opts.Help)
			return res.Err
		default:
			return nil
		}
	}

	run, runE := cmd.Run, cmd.RunE
	cmd.Run = nil

	cmd.RunE = func(c *cobra.Command, args []string) error {
		if res := p.Result(); res != nil && res.Status == HelpRequested {
			return nil
		}

		switch {
		case runE != nil:
			return runE(c, args)
		case run != nil:
			run(c, args)
		}

		return nil
	}
}
