package hunspell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagSet(flags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		set[f] = struct{}{}
	}
	return set
}

func TestParseDicSkipsCountHeader(t *testing.T) {
	input := `3
hello/AB
world
tiny/A ph:ignored
`
	entries, err := parseDic(strings.NewReader(input), FlagShort)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "hello", entries[0].Root)
	assert.Equal(t, flagSet("A", "B"), entries[0].Flags)
	assert.Equal(t, "world", entries[1].Root)
	assert.Empty(t, entries[1].Flags)
	assert.Equal(t, "tiny", entries[2].Root, "morphology tokens after whitespace are ignored")
}

func TestParseDicWithoutCountHeader(t *testing.T) {
	input := "hello/A\nworld/B\n"
	entries, err := parseDic(strings.NewReader(input), FlagShort)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "a first line that is not an integer is a normal entry")
}

func TestParseDicSkipsInvalidRoots(t *testing.T) {
	input := `x
ab1/A
ok/A
`
	entries, err := parseDic(strings.NewReader(input), FlagShort)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].Root)
}

func TestSplitFlags(t *testing.T) {
	assert.Equal(t, flagSet("A", "B"), splitFlags("AB", FlagShort))
	assert.Equal(t, flagSet("AA", "BC"), splitFlags("AABC", FlagLong))
	assert.Equal(t, flagSet("AA"), splitFlags("AAB", FlagLong), "trailing odd character is dropped")
	assert.Equal(t, flagSet("1", "22", "3"), splitFlags("1,22, 3", FlagNum))
	assert.Equal(t, flagSet("1"), splitFlags("1,,", FlagNum), "empty numeric flags are dropped")
	assert.Empty(t, splitFlags("", FlagShort))
}
