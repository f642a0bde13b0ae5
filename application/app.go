package application

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lexibuild/lexibuild/internal/domain/contracts"
	"github.com/lexibuild/lexibuild/internal/domain/model"
	"github.com/lexibuild/lexibuild/internal/service/builder"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

type App struct {
	Builder  contracts.LexiconBuilder
	Scorers  contracts.ScorerFactory
	Logger   pkg.Logger
	Db       contracts.SaverPostgres
	Reporter contracts.Reporter

	lexicons map[string]*builder.Lexicon
}

func NewApp(b contracts.LexiconBuilder, scorers contracts.ScorerFactory, logger pkg.Logger, db contracts.SaverPostgres, reporter contracts.Reporter) *App {
	return &App{
		Builder:  b,
		Scorers:  scorers,
		Logger:   logger,
		Db:       db,
		Reporter: reporter,
		lexicons: make(map[string]*builder.Lexicon),
	}
}

func (a *App) Run(ctx context.Context, langs []string) {
	for _, lang := range langs {
		if err := a.buildAndSave(ctx, lang); err != nil {
			a.Logger.Error("Failed to build lexicon", "lang", lang, "err", err)
			continue
		}
		if err := a.Reporter.GenerateSummary(ctx, lang); err != nil {
			a.Logger.Error("Failed to generate summary", "lang", lang, "err", err)
		}
	}
}

func (a *App) buildAndSave(ctx context.Context, lang string) error {
	entries, err := a.Builder.Build(ctx, lang)
	if err != nil {
		return err
	}
	a.lexicons[lang] = builder.NewLexicon(lang, entries)

	if err := a.Db.SaveBatch(ctx, entries); err != nil {
		a.Logger.Error("Failed to save lexicon entries", "lang", lang, "err", err)
	}
	return nil
}

// Lexicon returns the consolidated lexicon for a language built during Run.
func (a *App) Lexicon(lang string) (*builder.Lexicon, bool) {
	lex, ok := a.lexicons[lang]
	return lex, ok
}

// ScoreTermsFile reads one term per line from input, scores every term
// against the language's lexicon and writes the results as CSV.
func (a *App) ScoreTermsFile(lang, input, output string) error {
	lex, ok := a.lexicons[lang]
	if !ok {
		return fmt.Errorf("no lexicon built for language %q", lang)
	}

	terms, err := readTerms(input)
	if err != nil {
		return fmt.Errorf("read terms: %w", err)
	}
	if len(terms) == 0 {
		a.Logger.Warn("No terms to score", "input", input)
		return nil
	}

	scores := a.Scorers.NewScorer(lex).ScoreTerms(terms)
	if err := writeScoresCSV(output, scores); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}

	a.Logger.Info("Scored terms", "lang", lang, "terms", len(terms), "output", output)
	return nil
}

func readTerms(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms, scanner.Err()
}

var scoreColumns = []string{
	"term", "label", "score", "freq_log", "freq_known",
	"n_lexicons", "len_token", "in_wordfreq",
}

func writeScoresCSV(path string, scores []*model.TermScore) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(scoreColumns); err != nil {
		return err
	}
	for _, s := range scores {
		record := []string{
			s.Term,
			s.Label,
			strconv.FormatFloat(s.Score, 'f', 2, 64),
			strconv.FormatFloat(s.FreqLog, 'f', 4, 64),
			strconv.FormatBool(s.FreqKnown),
			strconv.Itoa(s.NLexicons),
			strconv.Itoa(s.LenToken),
			strconv.FormatBool(s.InWordfreq),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
