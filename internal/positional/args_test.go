package positional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/params/internal/errors"
	"github.com/reeflective/params/internal/symbols"
)

func TestBindInOrder(t *testing.T) {
	table := symbols.New()
	args := NewArgs([]string{"machine", "user"}, table, "")

	name, err := args.Bind("denali")
	require.NoError(t, err)
	assert.Equal(t, "machine", name)

	name, err = args.Bind("alice")
	require.NoError(t, err)
	assert.Equal(t, "user", name)
	assert.Zero(t, args.pending.Len())

	assert.Equal(t, "denali", table.Get("machine"))
	assert.Equal(t, "alice", table.Get("user"))
}

func TestBindAccumulates(t *testing.T) {
	table := symbols.New()
	table.Set("machine", "default-host")
	args := NewArgs([]string{"machine"}, table, " ")

	var values []string

	for _, word := range []string{"denali", "bob", "carol"} {
		name, err := args.Bind(word)
		require.NoError(t, err)
		assert.Equal(t, "machine", name)

		values = append(values, table.Get("machine"))
	}

	assert.Equal(t, []string{"denali", "denali bob", "denali bob carol"}, values)
	assert.Equal(t, "machine", args.last)
}

func TestBindAccumulatesOnLastSlotOnly(t *testing.T) {
	table := symbols.New()
	args := NewArgs([]string{"src", "dst"}, table, ",")

	for _, word := range []string{"a", "b", "c", "d"} {
		_, err := args.Bind(word)
		require.NoError(t, err)
	}

	assert.Equal(t, "a", table.Get("src"))
	assert.Equal(t, "b,c,d", table.Get("dst"))
}

func TestBindNoSlots(t *testing.T) {
	args := NewArgs(nil, symbols.New(), "")

	name, err := args.Bind("stray")
	require.ErrorIs(t, err, errors.ErrUnrecognized)
	assert.Empty(t, name)
	assert.Contains(t, err.Error(), "stray")
}

func TestNewArgsCopiesNames(t *testing.T) {
	names := []string{"a", "b"}
	args := NewArgs(names, symbols.New(), "")

	assert.Equal(t, "a", args.Next())
	assert.Equal(t, []string{"b"}, args.pending.Items())
	assert.Equal(t, []string{"a", "b"}, names)
}
