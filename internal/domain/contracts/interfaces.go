package contracts

import (
	"context"

	"github.com/lexibuild/lexibuild/internal/domain/model"
)

type LexiconBuilder interface {
	Build(ctx context.Context, lang string) ([]*model.LexiconEntry, error)
}

// LexiconProvider is read access to one consolidated per-language lexicon.
type LexiconProvider interface {
	Entry(token string) (*model.LexiconEntry, bool)
	Freq(token string) float64
	Contains(token string) bool
	Len() int
}

type SaverPostgres interface {
	SaveBatch(ctx context.Context, entries []*model.LexiconEntry) error
	GetEntriesByLang(ctx context.Context, lang string) ([]*model.LexiconEntry, error)
	CountByLang(ctx context.Context, lang string) (int64, error)
}

type TermScorer interface {
	ScoreTerms(terms []string) []*model.TermScore
}

// ScorerFactory builds a scorer bound to a freshly consolidated lexicon.
type ScorerFactory interface {
	NewScorer(lexicon LexiconProvider) TermScorer
}

type Reporter interface {
	GenerateSummary(ctx context.Context, lang string) error
}
