package hunspell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAffBasic(t *testing.T) {
	input := `
# comment-only line
FLAG long

PFX AA Y 1
PFX AA 0 un .   # derivational prefix

SFX BB N 2
SFX BB 0 ing [^e]
SFX BB e ing e
`
	set, diags, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, FlagLong, set.FlagType)
	require.Contains(t, set.Prefixes, "AA")
	require.Contains(t, set.Suffixes, "BB")

	pfx := set.Prefixes["AA"]
	assert.True(t, pfx.Cross)
	require.Len(t, pfx.Entries, 1)
	assert.Equal(t, "", pfx.Entries[0].Strip)
	assert.Equal(t, "un", pfx.Entries[0].Add)

	sfx := set.Suffixes["BB"]
	assert.False(t, sfx.Cross)
	assert.Len(t, sfx.Entries, 2)
	assert.Equal(t, "e", sfx.Entries[1].Strip)
}

func TestParseAffMergesDuplicateFlags(t *testing.T) {
	input := `
SFX S N 1
SFX S 0 s .
SFX S Y 1
SFX S 0 es [sxz]
`
	set, diags, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, diags)

	rule := set.Suffixes["S"]
	require.NotNil(t, rule)
	assert.Len(t, rule.Entries, 2)
	assert.True(t, rule.Cross, "cross marker is OR-combined across blocks")
}

func TestParseAffTruncatedBlock(t *testing.T) {
	input := `
SFX T Y 3
SFX T 0 ed .
SFX T 0 ing .
`
	set, diags, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)

	rule := set.Suffixes["T"]
	require.NotNil(t, rule)
	assert.Len(t, rule.Entries, 2, "keeps the entries collected before EOF")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unexpected end of file")
}

func TestParseAffFlagMismatchIsDiagnosed(t *testing.T) {
	input := `
SFX A Y 2
SFX B 0 s .
SFX A 0 ed .
`
	set, diags, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)

	rule := set.Suffixes["A"]
	require.NotNil(t, rule)
	assert.Len(t, rule.Entries, 2, "mismatched line still counts as an entry")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "does not match header")
}

func TestParseAffMalformedEntryDoesNotCount(t *testing.T) {
	input := `
SFX A Y 2
SFX A 0
SFX A 0 s .
SFX A 0 ed .
`
	set, diags, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)

	rule := set.Suffixes["A"]
	require.NotNil(t, rule)
	assert.Len(t, rule.Entries, 2, "short line is skipped, the next lines fill the count")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "malformed affix entry")
}

func TestParseAffInvalidCount(t *testing.T) {
	input := `
SFX A Y notanumber
SFX B Y 1
SFX B 0 s .
`
	set, diags, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)

	assert.NotContains(t, set.Suffixes, "A")
	assert.Contains(t, set.Suffixes, "B")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "invalid entry count")
}

func TestParseAffBadConditionIsFatal(t *testing.T) {
	input := `
SFX A Y 1
SFX A 0 s [unclosed
`
	_, _, err := parseAff(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseAffMorphAnnotation(t *testing.T) {
	input := `
SFX A Y 1
SFX A 0 s . is:plural ds:noun
`
	set, _, err := parseAff(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "is:plural ds:noun", set.Suffixes["A"].Entries[0].Morph)
}

func TestStripComment(t *testing.T) {
	assert.Equal(t, "SFX A Y 1", stripComment("  SFX A Y 1  # trailing"))
	assert.Equal(t, "", stripComment("# whole line"))
	assert.Equal(t, "plain", stripComment("plain"))
}
