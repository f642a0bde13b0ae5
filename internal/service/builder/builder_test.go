package builder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pkg "github.com/lexibuild/lexibuild/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestBuildConsolidatesAllSources(t *testing.T) {
	dataDir := t.TempDir()

	writeFile(t, filepath.Join(dataDir, "en", "hunspell", "en.aff"), `
SFX S Y 1
SFX S 0 s .
`)
	writeFile(t, filepath.Join(dataDir, "en", "hunspell", "en.dic"), "2\ncat/S\ndog\n")
	writeFile(t, filepath.Join(dataDir, "en", "wordfreq.tsv"), "the\t0.0539\ncat\t0.00012\n")
	writeFile(t, filepath.Join(dataDir, "en", "txtfiles", "custom.txt"), "cat\nneologism\n")

	wiktPath := filepath.Join(dataDir, "wiktionary.jsonl")
	writeFile(t, wiktPath, `{"word":"cat","lang_code":"en","pos":"noun","lemma":"cat"}
{"word":"gato","lang_code":"es","pos":"noun"}
not json at all
{"word":"dog","entries":[{"language":"English","tags":["noun"]}],"page_views_30d":1200,"total_edits":42,"hidden_categories":["Category:Pages with 1 entry"]}
`)

	log := pkg.NewNopLogger()
	b := NewBuilder(log,
		NewHunspellSource(dataDir, log),
		NewFrequencyListSource(dataDir, 0, log),
		NewWiktionarySource(wiktPath, log),
		NewExtraTextSource(dataDir, log),
	)

	entries, err := b.Build(context.Background(), "en")
	require.NoError(t, err)

	lex := NewLexicon("en", entries)

	cat, ok := lex.Entry("cat")
	require.True(t, ok)
	assert.True(t, cat.InHunspell)
	assert.True(t, cat.InWordfreq)
	assert.True(t, cat.InWiktionary)
	assert.True(t, cat.InExtraSources)
	assert.Equal(t, 4, cat.NLexicons)
	assert.Equal(t, 0.00012, cat.FreqWordfreq)
	assert.Equal(t, 2, cat.WordfreqRank)
	assert.Equal(t, []string{"noun"}, cat.POSSet)
	assert.Equal(t, "cat", cat.Lemma)

	cats, ok := lex.Entry("cats")
	require.True(t, ok, "expanded suffix form enters the lexicon")
	assert.True(t, cats.InHunspell)
	assert.Equal(t, 1, cats.NLexicons)

	dog, ok := lex.Entry("dog")
	require.True(t, ok)
	assert.True(t, dog.InWiktionary)
	assert.Equal(t, 1, dog.WikiEntriesCount)
	assert.Equal(t, 1200, dog.WikiPageViews30d)
	assert.Equal(t, 42, dog.WikiTotalEdits)
	assert.True(t, dog.WikiSingleEntryPage)

	assert.False(t, lex.Contains("gato"), "other languages are filtered out")

	the, ok := lex.Entry("the")
	require.True(t, ok)
	assert.Equal(t, 1, the.WordfreqRank)
	assert.Equal(t, 3, the.LenToken)
}

func TestBuildMissingInputsDegradeToEmpty(t *testing.T) {
	dataDir := t.TempDir()
	log := pkg.NewNopLogger()
	b := NewBuilder(log,
		NewHunspellSource(dataDir, log),
		NewFrequencyListSource(dataDir, 0, log),
		NewWiktionarySource(filepath.Join(dataDir, "missing.jsonl"), log),
		NewExtraTextSource(dataDir, log),
	)

	entries, err := b.Build(context.Background(), "en")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFrequencyListTopN(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, filepath.Join(dataDir, "en", "wordfreq.tsv"), "a\t0.9\nb\t0.8\nc\t0.7\n")

	log := pkg.NewNopLogger()
	b := NewBuilder(log, NewFrequencyListSource(dataDir, 2, log))

	entries, err := b.Build(context.Background(), "en")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNormalizeLangCode(t *testing.T) {
	assert.Equal(t, "en", normalizeLangCode("en"))
	assert.Equal(t, "pt", normalizeLangCode("pt-BR"))
	assert.Equal(t, "en", normalizeLangCode("English"))
	assert.Equal(t, "", normalizeLangCode("Klingonese"))
	assert.Equal(t, "", normalizeLangCode(""))
}

func TestLexiconLookups(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, filepath.Join(dataDir, "en", "wordfreq.tsv"), "word\t0.001\n")

	log := pkg.NewNopLogger()
	b := NewBuilder(log, NewFrequencyListSource(dataDir, 0, log))
	entries, err := b.Build(context.Background(), "en")
	require.NoError(t, err)

	lex := NewLexicon("en", entries)
	assert.Equal(t, 1, lex.Len())
	assert.Equal(t, 0.001, lex.Freq("word"))
	assert.Equal(t, 0.0, lex.Freq("absent"))
	assert.True(t, lex.Contains("word"))
	assert.False(t, lex.Contains("absent"))
}
