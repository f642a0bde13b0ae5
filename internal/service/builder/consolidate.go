package builder

import (
	"sort"
	"unicode/utf8"

	"github.com/lexibuild/lexibuild/internal/domain/model"
)

// consolidate folds the contribution stream into one entry per token.
// Source flags are OR-combined, frequencies and ranks take the best value
// seen, Wiktionary enrichment counters take the maximum.
func consolidate(lang string, in <-chan Contribution) []*model.LexiconEntry {
	records := make(map[string]*model.LexiconEntry)

	for c := range in {
		entry, ok := records[c.Token]
		if !ok {
			entry = &model.LexiconEntry{
				Token:    c.Token,
				Lang:     lang,
				LenToken: utf8.RuneCountInString(c.Token),
			}
			records[c.Token] = entry
		}

		switch c.Source {
		case sourceHunspell:
			entry.InHunspell = true
		case sourceWordfreq:
			if c.Freq > 0 {
				entry.InWordfreq = true
			}
			if c.Freq > entry.FreqWordfreq {
				entry.FreqWordfreq = c.Freq
			}
			if c.Rank > 0 && (entry.WordfreqRank == 0 || c.Rank < entry.WordfreqRank) {
				entry.WordfreqRank = c.Rank
			}
		case sourceWiktionary:
			entry.InWiktionary = true
			if c.Lemma != "" {
				entry.Lemma = c.Lemma
			}
			entry.POSSet = mergePOS(entry.POSSet, c.POS)
			if c.WikiEntries > entry.WikiEntriesCount {
				entry.WikiEntriesCount = c.WikiEntries
			}
			if c.WikiViews > entry.WikiPageViews30d {
				entry.WikiPageViews30d = c.WikiViews
			}
			if c.WikiEdits > entry.WikiTotalEdits {
				entry.WikiTotalEdits = c.WikiEdits
			}
			entry.WikiSingleEntryPage = entry.WikiSingleEntryPage || c.WikiSingleEntry
		case sourceExtra:
			entry.InExtraSources = true
		}
	}

	tokens := make([]string, 0, len(records))
	for token := range records {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	entries := make([]*model.LexiconEntry, 0, len(records))
	for _, token := range tokens {
		entry := records[token]
		entry.NLexicons = entry.CountLexicons()
		entries = append(entries, entry)
	}
	return entries
}

func mergePOS(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, pos := range existing {
		seen[pos] = struct{}{}
	}
	merged := existing
	for _, pos := range incoming {
		if pos == "" {
			continue
		}
		if _, ok := seen[pos]; !ok {
			seen[pos] = struct{}{}
			merged = append(merged, pos)
		}
	}
	sort.Strings(merged)
	return merged
}
