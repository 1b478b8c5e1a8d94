package params

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, p *Parser, run func()) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{
		Use:           "deploy",
		Short:         "Deploy things to a machine",
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(*cobra.Command, []string) {
			if run != nil {
				run()
			}
		},
	}

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	Bind(cmd, p)

	return cmd, &out
}

func TestBindParsesArgs(t *testing.T) {
	p, _ := newTestParser(t, []string{"debug"}, []string{"machine", "user"})

	ran := false
	cmd, _ := newTestCommand(t, p, func() { ran = true })
	cmd.SetArgs([]string{"--debug", "denali", "alice", "bob"})

	require.NoError(t, cmd.Execute())
	assert.True(t, ran)
	assert.True(t, cmd.DisableFlagParsing)
	assert.Equal(t, "1", p.Get("debug"))
	assert.Equal(t, "denali", p.Get("machine"))
	assert.Equal(t, "alice bob", p.Get("user"))
	assert.Equal(t, "deploy --debug denali alice bob", p.CommandLine())
}

func TestBindUnrecognized(t *testing.T) {
	helped := false
	p, _ := newTestParser(t, []string{"debug"}, nil, WithHelp(func() { helped = true }))

	ran := false
	cmd, _ := newTestCommand(t, p, func() { ran = true })
	cmd.SetArgs([]string{"--debug", "extra"})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrUnrecognized)
	assert.False(t, ran)
	assert.True(t, helped, "help is shown after a parse error")
}

func TestBindUnrecognizedShowsCommandHelp(t *testing.T) {
	p, _ := newTestParser(t, []string{"debug"}, nil)

	cmd, out := newTestCommand(t, p, nil)
	cmd.SetArgs([]string{"stray"})

	require.ErrorIs(t, cmd.Execute(), ErrUnrecognized)
	assert.Contains(t, out.String(), "Deploy things to a machine\n")
	assert.Contains(t, out.String(), "Usage: deploy [options]\n")
}

func TestBindHelp(t *testing.T) {
	p, _ := newTestParser(t, []string{"debug"}, []string{"machine"})
	p.Describe("machine", "target host")

	ran := false
	cmd, out := newTestCommand(t, p, func() { ran = true })
	cmd.SetArgs([]string{"-h"})

	require.NoError(t, cmd.Execute())
	assert.False(t, ran)
	assert.Contains(t, out.String(), "Deploy things to a machine\n")
	assert.Contains(t, out.String(), "Usage: deploy [options] machine\n")
	assert.Contains(t, out.String(), "machine   target host")
}

func TestBindKeepsHelpCollaborator(t *testing.T) {
	called := false
	p, _ := newTestParser(t, nil, nil, WithHelp(func() { called = true }))

	cmd, out := newTestCommand(t, p, nil)
	cmd.SetArgs([]string{"--help=yes"})

	require.NoError(t, cmd.Execute())
	assert.True(t, called)
	assert.Empty(t, out.String())
}

func TestBindRunE(t *testing.T) {
	p, _ := newTestParser(t, nil, []string{"files"})

	var got []string

	cmd := &cobra.Command{
		Use: "list",
		RunE: func(_ *cobra.Command, args []string) error {
			got = args
			return nil
		},
	}
	Bind(cmd, p)
	cmd.SetArgs([]string{"a", "b"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{"a", "b"}, p.List("files"))
}
