package builder

import "context"

const (
	sourceHunspell   = "hunspell"
	sourceWordfreq   = "wordfreq"
	sourceWiktionary = "wiktionary"
	sourceExtra      = "extra"
)

// Contribution is one source's claim about a token. The consolidator folds
// contributions for the same token into a single lexicon entry.
type Contribution struct {
	Token  string
	Source string
	Freq   float64
	Rank   int
	Lemma  string
	POS    []string

	WikiEntries     int
	WikiViews       int
	WikiEdits       int
	WikiSingleEntry bool
}

// Source streams token contributions for one language. A source whose input
// files are absent contributes nothing and returns nil; errors are reserved
// for unreadable or structurally broken inputs.
type Source interface {
	Name() string
	Load(ctx context.Context, lang string, out chan<- Contribution) error
}
