package hunspell

import (
	"os"
	"path/filepath"
	"testing"

	pkg "github.com/lexibuild/lexibuild/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadVocabularyEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lang.aff", `
SFX N Y 1
SFX N 0 ning [^aeiou]
`)
	writeFile(t, dir, "lang.dic", `1
run/N
`)

	vocabulary, err := LoadVocabulary(dir, pkg.NewNopLogger())
	require.NoError(t, err)

	assert.Contains(t, vocabulary, "run")
	assert.Contains(t, vocabulary, "running")
	assert.Len(t, vocabulary, 2)
}

func TestLoadVocabularyUnionsPairs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aa.aff", "")
	writeFile(t, dir, "aa.dic", "alpha\n")
	writeFile(t, dir, "bb.aff", "")
	writeFile(t, dir, "bb.dic", "beta\nalpha\n")

	vocabulary, err := LoadVocabulary(dir, pkg.NewNopLogger())
	require.NoError(t, err)
	assert.Len(t, vocabulary, 2)
}

func TestLoadVocabularyMissingDicCompanion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lang.aff", "SFX A Y 1\nSFX A 0 s .\n")

	vocabulary, err := LoadVocabulary(dir, pkg.NewNopLogger())
	require.NoError(t, err)
	assert.Empty(t, vocabulary)
}

func TestLoadVocabularyMissingDirectory(t *testing.T) {
	vocabulary, err := LoadVocabulary(filepath.Join(t.TempDir(), "nope"), pkg.NewNopLogger())
	require.NoError(t, err)
	assert.Empty(t, vocabulary)
}

func TestLoadVocabularyBadConditionSurfaces(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lang.aff", "SFX A Y 1\nSFX A 0 s [broken\n")
	writeFile(t, dir, "lang.dic", "word/A\n")

	_, err := LoadVocabulary(dir, pkg.NewNopLogger())
	require.Error(t, err)
}
