package scorer

import (
	"math"
	"unicode"

	"github.com/lexibuild/lexibuild/internal/config"
	"github.com/lexibuild/lexibuild/internal/domain/contracts"
	"github.com/lexibuild/lexibuild/internal/domain/model"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// Factory builds scorers bound to a consolidated lexicon. Thresholds,
// weights and the name-particle list come from configuration once.
type Factory struct {
	thresholds Thresholds
	weights    Weights
	particles  *particleMatcher
	log        pkg.Logger
}

func NewFactory(cfg config.ScoringConfig, log pkg.Logger) *Factory {
	return &Factory{
		thresholds: thresholdsFromConfig(cfg.Thresholds),
		weights:    weightsFromConfig(cfg.Weights),
		particles:  newParticleMatcher(cfg.NameParticles),
		log:        log,
	}
}

func (f *Factory) NewScorer(lexicon contracts.LexiconProvider) contracts.TermScorer {
	return &Scorer{
		lexicon:    lexicon,
		thresholds: f.thresholds,
		weights:    f.weights,
		particles:  f.particles,
		log:        f.log,
	}
}

// Scorer classifies terms by semantic ambiguity using weighted boolean
// signals over the consolidated lexicon statistics. Labels: a term common
// across sources leans "likely ambiguous", a rare or name-like term leans
// "likely unambiguous", heavy page activity asks for "need review".
type Scorer struct {
	lexicon    contracts.LexiconProvider
	thresholds Thresholds
	weights    Weights
	particles  *particleMatcher
	log        pkg.Logger
}

func (s *Scorer) ScoreTerms(terms []string) []*model.TermScore {
	scores := make([]*model.TermScore, 0, len(terms))
	for _, term := range terms {
		scores = append(scores, s.scoreOne(term))
	}
	return scores
}

func (s *Scorer) scoreOne(term string) *model.TermScore {
	entry, known := s.lexicon.Entry(term)

	freq := s.lexicon.Freq(term)
	inWordfreq := false
	nLexicons := 0
	lenToken := len([]rune(term))
	wikiEntries, wikiViews, wikiEdits := 0, 0, 0
	wikiSingleEntry := false
	if known {
		freq = entry.FreqWordfreq
		inWordfreq = entry.InWordfreq
		nLexicons = entry.NLexicons
		lenToken = entry.LenToken
		wikiEntries = entry.WikiEntriesCount
		wikiViews = entry.WikiPageViews30d
		wikiEdits = entry.WikiTotalEdits
		wikiSingleEntry = entry.WikiSingleEntryPage
	}

	// Missing or zero wordfreq is neutral: neither common nor rare evidence.
	freqKnown := freq > 0.0 || inWordfreq
	var freqLog float64
	if freqKnown {
		freqLog = math.Log(math.Max(freq, 1e-12))
	}

	alphaLen := 0
	for _, r := range term {
		if unicode.IsLetter(r) {
			alphaLen++
		}
	}

	t := s.thresholds
	signals := map[string]bool{
		"freq_common":  freqKnown && freqLog >= t.FreqLogCommon,
		"nlex_common":  nLexicons >= t.NLexiconsCommon,
		"in_wordfreq":  inWordfreq,
		"wiki_entries": wikiEntries >= t.WikiEntriesAmbiguousMin,
		"len_short":    lenToken <= t.ShortTokenLenMax,
		"len_alpha":    alphaLen <= t.AlphaTokenLenMax,

		"wiki_views": wikiViews >= t.WikiPageViewsReviewMin,
		"wiki_edits": wikiEdits >= t.WikiTotalEditsReviewMin,

		"freq_rare":     freqKnown && freqLog <= t.FreqLogRare,
		"nlex_zero":     nLexicons == 0,
		"len_long":      lenToken >= t.LongTokenLen,
		"single_entry":  wikiSingleEntry && wikiEntries <= t.WikiEntriesUnambiguousMax,
		"name_particle": s.particles.Contains(term),
	}

	ambiguous := weigh(s.weights.Ambiguous, signals,
		"freq_common", "nlex_common", "in_wordfreq", "wiki_entries", "len_short", "len_alpha")
	review := weigh(s.weights.Review, signals, "wiki_views", "wiki_edits")
	unambiguous := weigh(s.weights.Unambiguous, signals,
		"freq_rare", "nlex_zero", "len_long", "single_entry", "name_particle")

	// Weighted max decides; review wins ties at the top.
	label := model.LabelNeedReview
	confidence := 0.5
	maxScore := math.Max(ambiguous, math.Max(review, unambiguous))
	switch {
	case review == maxScore && review > 0.0:
		label = model.LabelNeedReview
		confidence = 0.6
	case ambiguous >= unambiguous && ambiguous > 0.0:
		label = model.LabelLikelyAmbiguous
		confidence = 0.75
	case unambiguous > 0.0:
		label = model.LabelLikelyUnambiguous
		confidence = 0.75
	}

	return &model.TermScore{
		Term:       term,
		Label:      label,
		Score:      confidence,
		Signals:    signals,
		FreqLog:    freqLog,
		FreqKnown:  freqKnown,
		NLexicons:  nLexicons,
		LenToken:   lenToken,
		InWordfreq: inWordfreq,
	}
}

func weigh(weights map[string]float64, signals map[string]bool, keys ...string) float64 {
	total := 0.0
	for _, key := range keys {
		if signals[key] {
			total += weights[key]
		}
	}
	return total
}
