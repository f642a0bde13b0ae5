package model

// LexiconEntry is one consolidated row of a per-language lexicon: a token
// plus the evidence gathered about it from every vocabulary source.
type LexiconEntry struct {
	Token          string
	Lang           string
	Lemma          string
	LenToken       int
	FreqWordfreq   float64
	WordfreqRank   int // 0 when the token never appeared in the frequency list
	InHunspell     bool
	InWiktionary   bool
	InWordfreq     bool
	InExtraSources bool
	NLexicons      int
	POSSet         []string

	// Wiktionary enrichment, zero when the dump carries no page metrics.
	WikiEntriesCount    int
	WikiPageViews30d    int
	WikiTotalEdits      int
	WikiSingleEntryPage bool
}

// CountLexicons recomputes NLexicons from the source flags.
func (e *LexiconEntry) CountLexicons() int {
	n := 0
	for _, present := range []bool{e.InHunspell, e.InWiktionary, e.InWordfreq, e.InExtraSources} {
		if present {
			n++
		}
	}
	return n
}
