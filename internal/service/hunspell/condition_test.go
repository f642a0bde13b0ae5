package hunspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileConditionMatchAll(t *testing.T) {
	for _, raw := range []string{"", "0"} {
		for _, kind := range []Kind{Prefix, Suffix} {
			c, err := CompileCondition(raw, kind)
			require.NoError(t, err)
			assert.True(t, c.Matches(""))
			assert.True(t, c.Matches("anything"))
		}
	}
}

func TestCompileConditionSuffixAnchorsAtEnd(t *testing.T) {
	c, err := CompileCondition("[^aeiou]y", Suffix)
	require.NoError(t, err)

	assert.True(t, c.Matches("happy"))   // ends in consonant + y
	assert.False(t, c.Matches("play"))   // vowel before y
	assert.False(t, c.Matches("yellow")) // pattern not at the end
}

func TestCompileConditionPrefixAnchorsAtStart(t *testing.T) {
	c, err := CompileCondition("[aeiou]", Prefix)
	require.NoError(t, err)

	assert.True(t, c.Matches("apple"))
	assert.False(t, c.Matches("grape")) // vowel present but not leading
}

func TestCompileConditionMalformedPattern(t *testing.T) {
	_, err := CompileCondition("[unclosed", Suffix)
	require.Error(t, err)
}
