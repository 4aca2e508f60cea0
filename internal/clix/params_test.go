package clix

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination_Defaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("limit", 0, "")
	flags.Int("offset", 0, "")
	require.NoError(t, flags.Parse([]string{"--limit=-1", "--offset=-3"}))

	p := ParsePagination(flags)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestParsePagination_Explicit(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("limit", 0, "")
	flags.Int("offset", 0, "")
	require.NoError(t, flags.Parse([]string{"--limit=5", "--offset=10"}))

	p := ParsePagination(flags)
	assert.Equal(t, 5, p.Limit)
	assert.Equal(t, 10, p.Offset)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a, b"))
	assert.Equal(t, []string{"one"}, SplitTags(" one ,, "))
}
