package application

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexibuild/lexibuild/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTermsSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n\n  beta  \n\ngamma\n"), 0644))

	terms, err := readTerms(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, terms)
}

func TestReadTermsMissingFile(t *testing.T) {
	_, err := readTerms(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestWriteScoresCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	scores := []*model.TermScore{
		{Term: "the", Label: model.LabelLikelyAmbiguous, Score: 0.75, FreqLog: -2.92, FreqKnown: true, NLexicons: 2, LenToken: 3, InWordfreq: true},
		{Term: "oldenberg", Label: model.LabelLikelyUnambiguous, Score: 0.75, LenToken: 9},
	}
	require.NoError(t, writeScoresCSV(path, scores))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, scoreColumns, records[0])
	assert.Equal(t, "the", records[1][0])
	assert.Equal(t, model.LabelLikelyAmbiguous, records[1][1])
	assert.Equal(t, "0.75", records[1][2])
	assert.Equal(t, "true", records[1][4])
	assert.Equal(t, "oldenberg", records[2][0])
	assert.Equal(t, "false", records[2][7])
}

func TestScoreTermsFileUnknownLanguage(t *testing.T) {
	app := NewApp(nil, nil, nil, nil, nil)
	err := app.ScoreTermsFile("xx", "in.txt", "out.csv")
	assert.ErrorContains(t, err, "xx")
}
