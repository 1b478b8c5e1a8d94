package params

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reeflective/params/internal/help"
)

// osExit is replaced in tests.
var osExit = os.Exit

// Usage returns the usage line, positional parameters and
// named options of the parser, with their help text.
func (p *Parser) Usage() string {
	name := "program"
	if p.program != "" {
		name = filepath.Base(p.program)
	}

	return help.Format(name, p.catalog)
}

// PrintUsage writes the usage string to the parser output.
func (p *Parser) PrintUsage() {
	fmt.Fprint(p.opts.Output, p.Usage())
}

// Help invokes the help collaborator, returning the exit code of the
// program. Without help defined, the code is a failure and ErrNoHelp
// is returned.
func (p *Parser) Help() (int, error) {
	code, err := help.Dispatch(p.opts.Help)
	if err != nil {
		return code, wrapError(err)
	}

	return code, nil
}

// Handle reports the result of a parse to the user, and returns the exit
// code of the program along with true if the program should exit: help
// is shown when requested, errors are reported and followed by help when
// any is defined.
func (p *Parser) Handle(res *Result) (int, bool) {
	switch res.Status {
	case HelpRequested:
		code, err := p.Help()
		if err != nil {
			p.opts.Printer.Error("%s", err)
		}

		return code, true

	case Failed:
		p.opts.Printer.Error("%s", res.Err)

		return help.ForError(p.opts.Help), true

	default:
		return help.ExitOK, false
	}
}

// Exit handles the result of a parse, and terminates the process if
// help has been requested or an error occurred.
func (p *Parser) Exit(res *Result) {
	if code, exit := p.Handle(res); exit {
		osExit(code)
	}
}

// ParseOrExit parses the process arguments, where the first one is the
// program path, and terminates the process if the parse did not complete.
func (p *Parser) ParseOrExit(osArgs []string) *Result {
	var program string
	if len(osArgs) > 0 {
		program, osArgs = osArgs[0], osArgs[1:]
	}

	res := p.Parse(program, osArgs)
	p.Exit(res)

	return res
}
