package main

import (
	"context"
	"os"
	"strings"

	"github.com/rsteube/carapace-bin/pkg/actions/net/ssh"
	osactions "github.com/rsteube/carapace-bin/pkg/actions/os"
	"github.com/spf13/cobra"

	"github.com/reeflective/params"
	"github.com/reeflective/params/console"
)

//
// This file contains a small deployment command, showing how a program
// declares its parameters, binds them to cobra and gets shell completions.
//
// Example:
//   example --debug denali alice uptime now
//
// Set EXAMPLE_TRACE to see how each word is classified.
//

func main() {
	// The parser reports errors and traces words through this printer.
	printer := console.New(console.Debug(os.Getenv("EXAMPLE_TRACE") != ""))

	parser := params.New(
		params.WithPrinter(printer),
		params.WithLogger(printer.Logger()),
	)

	// Named options, with their default values.
	if err := parser.Named("debug", "quiet", "run", "config=~/.deploy.conf"); err != nil {
		printer.Error("%s", err)
		os.Exit(1)
	}

	// Positionals: all words after the user are accumulated on the command.
	if err := parser.Positional("machine=localhost", "user", "command"); err != nil {
		printer.Error("%s", err)
		os.Exit(1)
	}

	parser.Describe("debug", "print debug lines")
	parser.Describe("quiet", "only print errors")
	parser.Describe("run", "run the command instead of only issuing it")
	parser.Describe("config", "configuration file")
	parser.Describe("machine", "host to run the command on")
	parser.Describe("user", "remote user")
	parser.Describe("command", "command and its arguments")

	rootCmd := &cobra.Command{
		Use:          "example",
		Short:        "Run a command on a remote machine, showing how positional words are bound",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), parser)
		},
	}

	params.Bind(rootCmd, parser)

	// Completions
	parser.SetCompletion("machine", ssh.ActionHosts())
	parser.SetCompletion("user", osactions.ActionUsers())
	parser.SetCompletion("config", carapaceFiles())

	comps := params.Complete(rootCmd, parser)
	comps.Standalone()

	// Execute the command (application here)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, parser *params.Parser) error {
	printer := console.New(
		console.Quiet(parser.IsSet("quiet")),
		console.Debug(parser.IsSet("debug")),
	)

	printer.Header(parser.CommandLine())

	config, err := console.NormalizePath(parser.Get("config"))
	if err != nil {
		printer.Error("%s", err)
		printer.Footer(1)

		return err
	}

	printer.Debug("config file: %s", config)
	printer.Debug("bound parameters: %v", parser.Bound())

	args := []string{"-l", parser.Get("user"), parser.Get("machine")}
	if parser.Get("user") == "" {
		args = args[2:]
	}

	args = append(args, parser.List("command")...)

	status := 0

	if parser.IsSet("run") {
		status, err = printer.Execute(ctx, "ssh", args...)
		if err != nil {
			printer.Footer(status)
			return err
		}
	} else {
		printer.Issue("ssh " + strings.Join(args, " "))
	}

	printer.Footer(status)

	return nil
}
