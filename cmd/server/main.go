// Command server exposes built lexicons as a JSON REST API.
//
// Endpoints:
//
//	GET /api/lookup?lang=<code>&token=<token>
//	GET /api/score?lang=<code>&term=<term>
//	GET /api/languages
//	GET /healthz
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/rs/cors"

	"github.com/lexibuild/lexibuild/internal/config"
	"github.com/lexibuild/lexibuild/internal/domain/contracts"
	"github.com/lexibuild/lexibuild/internal/domain/model"
	"github.com/lexibuild/lexibuild/internal/service/builder"
	"github.com/lexibuild/lexibuild/internal/service/scorer"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// ---- JSON response types ------------------------------------------------

type entryJSON struct {
	Token               string   `json:"token"`
	Lang                string   `json:"lang"`
	Lemma               string   `json:"lemma,omitempty"`
	LenToken            int      `json:"len_token"`
	FreqWordfreq        float64  `json:"freq_wordfreq"`
	WordfreqRank        int      `json:"wordfreq_rank,omitempty"`
	InHunspell          bool     `json:"in_hunspell"`
	InWiktionary        bool     `json:"in_wiktionary"`
	InWordfreq          bool     `json:"in_wordfreq"`
	InExtraSources      bool     `json:"in_extra_sources"`
	NLexicons           int      `json:"n_lexicons"`
	POSSet              []string `json:"pos_set,omitempty"`
	WikiEntriesCount    int      `json:"wiki_entries_count,omitempty"`
	WikiPageViews30d    int      `json:"wiki_page_views_30d,omitempty"`
	WikiTotalEdits      int      `json:"wiki_total_edits,omitempty"`
	WikiSingleEntryPage bool     `json:"wiki_single_entry_page,omitempty"`
}

type scoreJSON struct {
	Term       string          `json:"term"`
	Label      string          `json:"label"`
	Score      float64         `json:"score"`
	Signals    map[string]bool `json:"signals"`
	FreqLog    float64         `json:"freq_log"`
	FreqKnown  bool            `json:"freq_known"`
	NLexicons  int             `json:"n_lexicons"`
	LenToken   int             `json:"len_token"`
	InWordfreq bool            `json:"in_wordfreq"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toEntryJSON(e *model.LexiconEntry) entryJSON {
	return entryJSON{
		Token:               e.Token,
		Lang:                e.Lang,
		Lemma:               e.Lemma,
		LenToken:            e.LenToken,
		FreqWordfreq:        e.FreqWordfreq,
		WordfreqRank:        e.WordfreqRank,
		InHunspell:          e.InHunspell,
		InWiktionary:        e.InWiktionary,
		InWordfreq:          e.InWordfreq,
		InExtraSources:      e.InExtraSources,
		NLexicons:           e.NLexicons,
		POSSet:              e.POSSet,
		WikiEntriesCount:    e.WikiEntriesCount,
		WikiPageViews30d:    e.WikiPageViews30d,
		WikiTotalEdits:      e.WikiTotalEdits,
		WikiSingleEntryPage: e.WikiSingleEntryPage,
	}
}

func toScoreJSON(s *model.TermScore) scoreJSON {
	return scoreJSON{
		Term:       s.Term,
		Label:      s.Label,
		Score:      s.Score,
		Signals:    s.Signals,
		FreqLog:    s.FreqLog,
		FreqKnown:  s.FreqKnown,
		NLexicons:  s.NLexicons,
		LenToken:   s.LenToken,
		InWordfreq: s.InWordfreq,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- server state ---------------------------------------------------------

type server struct {
	lexicons map[string]*builder.Lexicon
	scorers  map[string]contracts.TermScorer
}

func newServer(factory contracts.ScorerFactory, lexicons map[string]*builder.Lexicon) *server {
	scorers := make(map[string]contracts.TermScorer, len(lexicons))
	for lang, lex := range lexicons {
		scorers[lang] = factory.NewScorer(lex)
	}
	return &server{lexicons: lexicons, scorers: scorers}
}

// ---- handlers -------------------------------------------------------------

func (s *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	lang := r.URL.Query().Get("lang")
	token := r.URL.Query().Get("token")
	if lang == "" || token == "" {
		writeError(w, http.StatusBadRequest, "missing 'lang' or 'token' query parameter")
		return
	}
	lex, ok := s.lexicons[lang]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("language %q not loaded", lang))
		return
	}
	entry, ok := lex.Entry(token)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("token %q not found", token))
		return
	}
	writeJSON(w, http.StatusOK, toEntryJSON(entry))
}

func (s *server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	lang := r.URL.Query().Get("lang")
	term := r.URL.Query().Get("term")
	if lang == "" || term == "" {
		writeError(w, http.StatusBadRequest, "missing 'lang' or 'term' query parameter")
		return
	}
	sc, ok := s.scorers[lang]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("language %q not loaded", lang))
		return
	}
	scores := sc.ScoreTerms([]string{term})
	writeJSON(w, http.StatusOK, toScoreJSON(scores[0]))
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	langs := make([]string, 0, len(s.lexicons))
	for lang := range s.lexicons {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- main -------------------------------------------------------------------

func main() {
	configPath := flag.String("config", "./internal/config/config.yaml", "path to config file")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("error load config %v", err)
	}

	zaplogger, err := pkg.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("error initialize logger: %v", err)
	}
	defer zaplogger.Sync()

	sources := []builder.Source{
		builder.NewHunspellSource(cfg.Build.DataDir, zaplogger),
		builder.NewFrequencyListSource(cfg.Build.DataDir, cfg.Build.WordfreqTopN, zaplogger),
		builder.NewWiktionarySource(cfg.Build.WiktionaryPath, zaplogger),
		builder.NewExtraTextSource(cfg.Build.DataDir, zaplogger),
	}
	lexiconBuilder := builder.NewBuilder(zaplogger, sources...)

	lexicons := make(map[string]*builder.Lexicon, len(cfg.Build.Languages))
	for _, lang := range cfg.Build.Languages {
		entries, err := lexiconBuilder.Build(context.Background(), lang)
		if err != nil {
			zaplogger.Error("Failed to build lexicon", "lang", lang, "err", err)
			continue
		}
		lexicons[lang] = builder.NewLexicon(lang, entries)
	}
	if len(lexicons) == 0 {
		zaplogger.Error("No lexicons loaded, nothing to serve")
		return
	}

	srv := newServer(scorer.NewFactory(cfg.Scoring, zaplogger), lexicons)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lookup", srv.handleLookup)
	mux.HandleFunc("/api/score", srv.handleScore)
	mux.HandleFunc("/api/languages", srv.handleLanguages)
	mux.HandleFunc("/healthz", handleHealth)

	handler := cors.Default().Handler(mux)

	zaplogger.Info("Listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		zaplogger.Error("Server error", "err", err)
	}
}
