package params

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/params/console"
)

func newTestParser(t *testing.T, named, positionals []string, opts ...Option) (*Parser, *bytes.Buffer) {
	t.Helper()

	var errs bytes.Buffer

	printer := console.New(console.WithWriters(&bytes.Buffer{}, &errs), console.NoColor())
	p := New(append([]Option{WithPrinter(printer)}, opts...)...)

	require.NoError(t, p.Named(named...))
	require.NoError(t, p.Positional(positionals...))

	return p, &errs
}

func TestParseNamedAndPositionals(t *testing.T) {
	p, _ := newTestParser(t, []string{"debug"}, []string{"machine", "user"})

	res := p.Parse("/bin/prog", []string{"--debug", "denali", "alice"})
	require.Equal(t, Continue, res.Status)
	assert.Nil(t, res.Err)

	assert.Equal(t, "1", p.Get("debug"))
	assert.Equal(t, "denali", p.Get("machine"))
	assert.Equal(t, "alice", p.Get("user"))
	assert.True(t, p.IsSet("debug"))
	assert.Equal(t, []string{"debug", "machine", "user"}, p.Bound())
	assert.Equal(t, "/bin/prog --debug denali alice", p.CommandLine())
	assert.Equal(t, []string{"debug", "machine", "user"}, p.Names())
	assert.Same(t, res, p.Result())
	assert.Equal(t, "continue", res.String())
}

func TestParseStickyPositional(t *testing.T) {
	p, _ := newTestParser(t, nil, []string{"machine"})

	p.Parse("prog", []string{"denali", "bob", "carol"})

	assert.Equal(t, "denali bob carol", p.Get("machine"))
	assert.Equal(t, []string{"denali", "bob", "carol"}, p.List("machine"))
}

func TestParseDefaults(t *testing.T) {
	p, _ := newTestParser(t, []string{"level=3", "quiet"}, []string{"out=result.txt"},
		WithListDelimiter(","), WithFlagDefault("yes"))

	value, found := p.Lookup("level")
	assert.True(t, found)
	assert.Equal(t, "3", value)
	assert.False(t, p.IsSet("quiet"))

	p.Parse("prog", []string{"--quiet", "a", "b"})

	assert.Equal(t, "yes", p.Get("quiet"))
	assert.Equal(t, "a,b", p.Get("out"))
	assert.Equal(t, []string{"a", "b"}, p.List("out"))
	assert.Equal(t, "3", p.Get("level"))
}

func TestParseValueDelimiter(t *testing.T) {
	p, _ := newTestParser(t, []string{"host=localhost", "level=3"}, []string{"file"}, WithValueDelimiter(":"))

	res := p.Parse("prog", []string{"--host:denali", "--level", "a=b"})

	require.Equal(t, Continue, res.Status)
	assert.Equal(t, "denali", p.Get("host"))
	assert.Equal(t, "1", p.Get("level"))
	assert.Equal(t, "a=b", p.Get("file"))
}

func TestParseUnrecognized(t *testing.T) {
	p, _ := newTestParser(t, nil, nil)

	res := p.Parse("prog", []string{"stray"})
	require.Equal(t, Failed, res.Status)
	require.NotNil(t, res.Err)

	assert.Equal(t, ErrUnrecognizedParam, res.Err.Type)
	assert.ErrorIs(t, res.Err, ErrUnrecognized)
	assert.ErrorIs(t, res.Err, ErrParse)
	assert.Equal(t, "stray", res.Token)
	assert.Contains(t, res.String(), "error: ")
}

func TestRegisterInvalid(t *testing.T) {
	p := New()

	err := p.Named("ok", "-bad")
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrSpec, perr.Type)
	assert.ErrorIs(t, err, ErrInvalidSpec)

	err = p.Positional("=nothing")
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestWithValidator(t *testing.T) {
	custom := validator.New()
	p := New(WithValidator(custom))

	require.NoError(t, p.Named("debug"))
	require.Error(t, p.Named("bad name"))
}

func TestDescribe(t *testing.T) {
	p, _ := newTestParser(t, []string{"debug"}, []string{"machine"})

	assert.True(t, p.Describe("debug", "enable debugging"))
	assert.False(t, p.Describe("nope", ""))
	assert.Contains(t, p.Usage(), "enable debugging")
}

func TestNilPrinterKeepsDefault(t *testing.T) {
	p := New(WithPrinter(nil), WithHelp(func() {}))
	require.NotNil(t, p.opts.Printer)

	code, exit := p.Handle(&Result{Status: HelpRequested})
	assert.Equal(t, 0, code)
	assert.True(t, exit)
}

func TestNoParseYet(t *testing.T) {
	p := New()

	assert.Nil(t, p.Result())
	assert.Nil(t, p.Bound())
	assert.Empty(t, p.CommandLine())
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "unrecognized parameter", ErrUnrecognizedParam.String())
	assert.Equal(t, "invalid spec", ErrSpec.Error())
	assert.Equal(t, "unrecognized error type", ErrorType(42).String())

	assert.Nil(t, wrapError(nil))

	err := wrapError(errors.New("boom"))
	assert.Equal(t, ErrUnknown, err.Type)
	assert.Same(t, err, wrapError(err))
}

func TestLists(t *testing.T) {
	l := NewList("")
	l.Push("b", Back)
	l.Push("a", Front)
	assert.Equal(t, "a b", l.String())

	l = ParseList("x:y", ":")

	elem, err := l.Pop(Back, true, true)
	require.NoError(t, err)
	assert.Equal(t, "y", elem)

	_, err = NewList(" ").Pop(Front, true, true)
	assert.ErrorIs(t, err, ErrEmptyList)
	assert.Equal(t, ErrEmptyListPop, wrapError(err).Type)
}
