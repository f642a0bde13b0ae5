package builder

import "github.com/lexibuild/lexibuild/internal/domain/model"

// Lexicon is an immutable in-memory view over one language's consolidated
// entries with token lookup. It backs the scorer and the lookup server.
type Lexicon struct {
	lang    string
	entries []*model.LexiconEntry
	index   map[string]int
}

func NewLexicon(lang string, entries []*model.LexiconEntry) *Lexicon {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, ok := index[e.Token]; !ok {
			index[e.Token] = i
		}
	}
	return &Lexicon{lang: lang, entries: entries, index: index}
}

func (l *Lexicon) Lang() string { return l.lang }

func (l *Lexicon) Entry(token string) (*model.LexiconEntry, bool) {
	i, ok := l.index[token]
	if !ok {
		return nil, false
	}
	return l.entries[i], true
}

// Freq returns the frequency of a token, 0.0 when absent.
func (l *Lexicon) Freq(token string) float64 {
	if e, ok := l.Entry(token); ok {
		return e.FreqWordfreq
	}
	return 0.0
}

func (l *Lexicon) Contains(token string) bool {
	_, ok := l.index[token]
	return ok
}

func (l *Lexicon) Len() int { return len(l.entries) }

func (l *Lexicon) Entries() []*model.LexiconEntry { return l.entries }
