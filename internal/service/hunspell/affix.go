package hunspell

import "strings"

// AffixEntry is a single strip/add/condition transformation rule from an
// .aff file. Strip and Add already have the literal "0" decoded to "".
type AffixEntry struct {
	Strip     string
	Add       string
	Condition Condition
	Morph     string // trailing morphological annotation, kept for fidelity
}

// Apply derives a new form from word, or returns "" when the entry does not
// fire: the word must carry the strip part on the right side for suffixes
// (left side for prefixes) and the remaining stem must satisfy the condition.
func (e AffixEntry) Apply(word string, kind Kind) string {
	switch kind {
	case Suffix:
		if e.Strip != "" && !strings.HasSuffix(word, e.Strip) {
			return ""
		}
		stem := strings.TrimSuffix(word, e.Strip)
		if !e.Condition.Matches(stem) {
			return ""
		}
		return stem + e.Add

	case Prefix:
		if e.Strip != "" && !strings.HasPrefix(word, e.Strip) {
			return ""
		}
		stem := strings.TrimPrefix(word, e.Strip)
		if !e.Condition.Matches(stem) {
			return ""
		}
		return e.Add + stem
	}
	return ""
}

// Rule groups the entries registered under one (kind, flag) pair.
type Rule struct {
	Kind    Kind
	Flag    string
	Cross   bool // eligible for prefix+suffix cross-product expansion
	Entries []AffixEntry
}

// Apply runs every entry against word and adds the derived forms to out.
// Applications that reproduce word unchanged contribute nothing.
func (r *Rule) Apply(word string, out map[string]struct{}) {
	for _, e := range r.Entries {
		derived := e.Apply(word, r.Kind)
		if derived != "" && derived != word {
			out[derived] = struct{}{}
		}
	}
}

// FlagType selects how dictionary flag segments are decoded.
type FlagType string

const (
	FlagShort FlagType = "short" // one character per flag
	FlagLong  FlagType = "long"  // two characters per flag
	FlagNum   FlagType = "num"   // comma-separated numeric flags
)

// AffixSet is the parsed representation of one .aff file.
type AffixSet struct {
	FlagType FlagType
	Prefixes map[string]*Rule
	Suffixes map[string]*Rule
}

func NewAffixSet() *AffixSet {
	return &AffixSet{
		FlagType: FlagShort,
		Prefixes: make(map[string]*Rule),
		Suffixes: make(map[string]*Rule),
	}
}

// add merges a parsed rule group into the set. The format permits a flag to
// be declared more than once per file: entries concatenate and the
// cross-product marker is OR-combined.
func (s *AffixSet) add(kind Kind, flag string, cross bool, entries []AffixEntry) {
	rules := s.Suffixes
	if kind == Prefix {
		rules = s.Prefixes
	}
	if r, ok := rules[flag]; ok {
		r.Entries = append(r.Entries, entries...)
		r.Cross = r.Cross || cross
		return
	}
	rules[flag] = &Rule{Kind: kind, Flag: flag, Cross: cross, Entries: entries}
}
