package console

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Execute issues and runs a command, reporting its exit status. A command
// exiting with a non-zero status is reported as an error line, and its
// status returned with a nil error. The error is only set when the command
// could not be run at all.
func (p *Printer) Execute(ctx context.Context, name string, args ...string) (int, error) {
	p.Issue(strings.Join(append([]string{name}, args...), " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = p.out
	cmd.Stderr = p.err

	err := cmd.Run()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		p.Print("%s exited with status 0", name)
		return 0, nil
	case errors.As(err, &exitErr):
		p.Error("%s exited with status %d", name, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	default:
		p.Error("failed to run %s: %s", name, err)
		return -1, fmt.Errorf("failed to run %s: %w", name, err)
	}
}
