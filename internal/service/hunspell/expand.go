package hunspell

// GenerateWordForms expands every dictionary entry with the affix rules and
// returns the set of all valid forms, roots included.
func GenerateWordForms(entries []Entry, set *AffixSet) map[string]struct{} {
	vocabulary := make(map[string]struct{})
	for _, entry := range entries {
		expandEntry(entry, set, vocabulary)
	}
	return vocabulary
}

func expandEntry(entry Entry, set *AffixSet, vocabulary map[string]struct{}) {
	base := entry.Root
	if IsValidToken(base) {
		vocabulary[base] = struct{}{}
	}

	var prefixRules, suffixRules []*Rule
	for flag := range entry.Flags {
		if r, ok := set.Prefixes[flag]; ok {
			prefixRules = append(prefixRules, r)
		}
		if r, ok := set.Suffixes[flag]; ok {
			suffixRules = append(suffixRules, r)
		}
	}

	prefixForms := applyRules(prefixRules, base)
	suffixForms := applyRules(suffixRules, base)

	combined := make(map[string]struct{})
	if len(prefixRules) > 0 && len(suffixRules) > 0 {
		crossPrefix := crossOnly(prefixRules)
		crossSuffix := crossOnly(suffixRules)
		if len(crossPrefix) > 0 && len(crossSuffix) > 0 {
			// Both application orders run independently and union: the two
			// paths can reach different form sets when strip/add pairs on
			// the same root do not commute.
			for intermediate := range applyRules(crossPrefix, base) {
				for _, r := range crossSuffix {
					r.Apply(intermediate, combined)
				}
			}
			for intermediate := range applyRules(crossSuffix, base) {
				for _, r := range crossPrefix {
					r.Apply(intermediate, combined)
				}
			}
		}
	}

	for w := range prefixForms {
		vocabulary[w] = struct{}{}
	}
	for w := range suffixForms {
		vocabulary[w] = struct{}{}
	}
	for w := range combined {
		if IsValidToken(w) {
			vocabulary[w] = struct{}{}
		}
	}
}

// applyRules runs every rule against word and keeps the valid derived forms.
func applyRules(rules []*Rule, word string) map[string]struct{} {
	forms := make(map[string]struct{})
	for _, r := range rules {
		r.Apply(word, forms)
	}
	for w := range forms {
		if !IsValidToken(w) {
			delete(forms, w)
		}
	}
	return forms
}

func crossOnly(rules []*Rule) []*Rule {
	var eligible []*Rule
	for _, r := range rules {
		if r.Cross {
			eligible = append(eligible, r)
		}
	}
	return eligible
}
