package model

// Ambiguity labels produced by the scorer.
const (
	LabelLikelyAmbiguous   = "likely ambiguous"
	LabelLikelyUnambiguous = "likely unambiguous"
	LabelNeedReview        = "need review"
)

// TermScore is the scoring verdict for a single term.
type TermScore struct {
	Term       string
	Label      string
	Score      float64
	Signals    map[string]bool
	FreqLog    float64 // meaningful only when FreqKnown
	FreqKnown  bool
	NLexicons  int
	LenToken   int
	InWordfreq bool
}
