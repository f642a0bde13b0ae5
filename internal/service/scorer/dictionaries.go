package scorer

import "github.com/lexibuild/lexibuild/internal/config"

// Thresholds are the tunable decision boundaries of the heuristic model.
type Thresholds struct {
	FreqLogCommon float64 // log(max(freq, 1e-12)); higher leans ambiguous
	FreqLogRare   float64 // very low frequency leans unambiguous

	NLexiconsCommon  int // present in >= N sources counts as common
	LongTokenLen     int // very long tokens lean unambiguous/technical
	ShortTokenLenMax int // very short tokens lean ambiguous
	AlphaTokenLenMax int // letters-only length, short leans ambiguous

	WikiEntriesAmbiguousMin   int // more entries on a page leans ambiguous
	WikiPageViewsReviewMin    int // heavily viewed pages deserve review
	WikiTotalEditsReviewMin   int // heavily edited pages deserve review
	WikiEntriesUnambiguousMax int // single-entry pages lean unambiguous
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		FreqLogCommon:             -7.0,
		FreqLogRare:               -11.5,
		NLexiconsCommon:           2,
		LongTokenLen:              14,
		ShortTokenLenMax:          3,
		AlphaTokenLenMax:          3,
		WikiEntriesAmbiguousMin:   2,
		WikiPageViewsReviewMin:    1000,
		WikiTotalEditsReviewMin:   100,
		WikiEntriesUnambiguousMax: 1,
	}
}

// Weights are the per-label signal weights. Missing keys weigh zero.
type Weights struct {
	Ambiguous   map[string]float64
	Review      map[string]float64
	Unambiguous map[string]float64
}

func DefaultWeights() Weights {
	return Weights{
		Ambiguous: map[string]float64{
			"freq_common":  1.0,
			"nlex_common":  1.0,
			"in_wordfreq":  0.5,
			"wiki_entries": 1.0,
			"len_short":    1.0,
			"len_alpha":    1.0,
		},
		Review: map[string]float64{
			"wiki_views": 1.0,
			"wiki_edits": 1.0,
		},
		Unambiguous: map[string]float64{
			"freq_rare":     1.0,
			"nlex_zero":     0.5,
			"len_long":      1.0,
			"single_entry":  0.5,
			"name_particle": 0.5,
		},
	}
}

// defaultNameParticles are substrings common in toponyms and surnames; a
// term carrying one leans toward the unambiguous (proper-noun) label.
var defaultNameParticles = []string{
	"berg", "burgh", "grad", "stan", "shire", "ville", "abad", "heim", "holm",
}

func thresholdsFromConfig(cfg config.ThresholdsConfig) Thresholds {
	t := DefaultThresholds()
	if cfg.FreqLogCommon != nil {
		t.FreqLogCommon = *cfg.FreqLogCommon
	}
	if cfg.FreqLogRare != nil {
		t.FreqLogRare = *cfg.FreqLogRare
	}
	if cfg.NLexiconsCommon != nil {
		t.NLexiconsCommon = *cfg.NLexiconsCommon
	}
	if cfg.LongTokenLen != nil {
		t.LongTokenLen = *cfg.LongTokenLen
	}
	if cfg.ShortTokenLenMax != nil {
		t.ShortTokenLenMax = *cfg.ShortTokenLenMax
	}
	if cfg.AlphaTokenLenMax != nil {
		t.AlphaTokenLenMax = *cfg.AlphaTokenLenMax
	}
	if cfg.WikiEntriesAmbiguousMin != nil {
		t.WikiEntriesAmbiguousMin = *cfg.WikiEntriesAmbiguousMin
	}
	if cfg.WikiPageViewsReviewMin != nil {
		t.WikiPageViewsReviewMin = *cfg.WikiPageViewsReviewMin
	}
	if cfg.WikiTotalEditsReviewMin != nil {
		t.WikiTotalEditsReviewMin = *cfg.WikiTotalEditsReviewMin
	}
	if cfg.WikiEntriesUnambiguousMax != nil {
		t.WikiEntriesUnambiguousMax = *cfg.WikiEntriesUnambiguousMax
	}
	return t
}

func weightsFromConfig(cfg config.WeightsConfig) Weights {
	w := DefaultWeights()
	overlay(w.Ambiguous, cfg.Ambiguous)
	overlay(w.Review, cfg.Review)
	overlay(w.Unambiguous, cfg.Unambiguous)
	return w
}

func overlay(dst, src map[string]float64) {
	for key, value := range src {
		dst[key] = value
	}
}
