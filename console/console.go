// Package console provides the line printers used by programs built on
// params: timestamped lines, error lines, issued commands, quiet and debug
// gating, header and footer banners, path normalization and execution of
// external commands with their exit status reported.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
)

// TimeFormat is the default layout of line timestamps.
const TimeFormat = "2006-01-02 15:04:05"

// Printer writes timestamped lines to an output and an error stream.
type Printer struct {
	out     io.Writer
	err     io.Writer
	quiet   bool
	debug   bool
	layout  string
	now     func() time.Time
	errc    *color.Color
	started time.Time
}

// Option configures a Printer.
type Option func(p *Printer)

// WithWriters sets the output and error streams.
func WithWriters(out, err io.Writer) Option {
	return func(p *Printer) {
		p.out = out
		p.err = err
	}
}

// Quiet suppresses all lines but errors.
func Quiet(quiet bool) Option { return func(p *Printer) { p.quiet = quiet } }

// Debug enables debug lines, unless the printer is quiet.
func Debug(debug bool) Option { return func(p *Printer) { p.debug = debug } }

// WithClock sets the function used to timestamp lines.
func WithClock(now func() time.Time) Option { return func(p *Printer) { p.now = now } }

// WithTimeFormat sets the layout of line timestamps.
func WithTimeFormat(layout string) Option { return func(p *Printer) { p.layout = layout } }

// NoColor disables colored error lines.
func NoColor() Option { return func(p *Printer) { p.errc.DisableColor() } }

// New returns a printer writing to stdout and stderr by default.
func New(opts ...Option) *Printer {
	p := &Printer{
		out:    os.Stdout,
		err:    os.Stderr,
		layout: TimeFormat,
		now:    time.Now,
		errc:   color.New(color.FgRed, color.Bold),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// IsQuiet reports whether non-error lines are suppressed.
func (p *Printer) IsQuiet() bool { return p.quiet }

// IsDebug reports whether debug lines are printed.
func (p *Printer) IsDebug() bool { return p.debug && !p.quiet }

// Print writes a timestamped line to the output stream.
func (p *Printer) Print(format string, args ...any) {
	if p.quiet {
		return
	}

	fmt.Fprintln(p.out, p.stamp(fmt.Sprintf(format, args...)))
}

// Issue prints the command line of a command about to be run.
func (p *Printer) Issue(commandLine string) {
	p.Print("Issuing: %s", commandLine)
}

// Debug prints a timestamped line only when debugging.
func (p *Printer) Debug(format string, args ...any) {
	if !p.IsDebug() {
		return
	}

	p.Print("DEBUG: "+format, args...)
}

// Error writes a timestamped error line to the error stream.
// Errors are never suppressed.
func (p *Printer) Error(format string, args ...any) {
	p.errc.Fprintln(p.err, p.stamp("ERROR: "+fmt.Sprintf(format, args...)))
}

// Logger returns a structured logger writing to the error stream, at
// debug level when debugging, error level when quiet, and info otherwise.
func (p *Printer) Logger() *slog.Logger {
	level := slog.LevelInfo

	switch {
	case p.quiet:
		level = slog.LevelError
	case p.debug:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(p.err, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, attr.Value.Time().Format(p.layout))
			}

			return attr
		},
	}))
}

func (p *Printer) stamp(line string) string {
	return "[" + p.now().Format(p.layout) + "] " + line
}
