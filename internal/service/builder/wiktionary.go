package builder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// WiktionarySource reads a JSONL Wiktionary dump (one object per line) and
// contributes tokens matching the requested language, together with lemma,
// part-of-speech tags and optional page-level enrichment metrics.
type WiktionarySource struct {
	path string
	log  pkg.Logger
}

func NewWiktionarySource(path string, log pkg.Logger) *WiktionarySource {
	return &WiktionarySource{path: path, log: log}
}

func (s *WiktionarySource) Name() string { return sourceWiktionary }

type wiktionaryLine struct {
	Word          string `json:"word"`
	Token         string `json:"token"`
	Lemma         string `json:"lemma"`
	CanonicalForm string `json:"canonical_form"`
	LangCode      string `json:"lang_code"`
	Lang          string `json:"lang"`
	Language      string `json:"language"`
	POS           string `json:"pos"`

	Entries          []wiktionaryEntry `json:"entries"`
	PageViews30d     int               `json:"page_views_30d"`
	TotalEdits       int               `json:"total_edits"`
	HiddenCategories []string          `json:"hidden_categories"`
}

type wiktionaryEntry struct {
	Language string   `json:"language"`
	Tags     []string `json:"tags"`
}

func (s *WiktionarySource) Load(ctx context.Context, lang string, out chan<- Contribution) error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("No Wiktionary dump found, skipping wiktionary source", "path", s.path)
			return nil
		}
		return fmt.Errorf("open wiktionary dump: %w", err)
	}
	defer f.Close()

	target := normalizeLangCode(lang)
	lineNo := 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var line wiktionaryLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			s.log.Warn("Skipping malformed Wiktionary line", "line", lineNo, "err", err)
			continue
		}

		token := firstNonEmpty(line.Word, line.Token, line.Lemma)
		if token == "" {
			continue
		}

		c := Contribution{Token: token, Source: sourceWiktionary}

		// Enriched dumps carry a per-language entry list plus page metrics.
		matched := false
		if len(line.Entries) > 0 {
			for _, item := range line.Entries {
				if normalizeLangCode(item.Language) != target {
					continue
				}
				matched = true
				c.WikiEntries++
				for _, tag := range item.Tags {
					if tag = strings.TrimSpace(tag); tag != "" {
						c.POS = append(c.POS, tag)
					}
				}
			}
			c.WikiViews = line.PageViews30d
			c.WikiEdits = line.TotalEdits
			for _, cat := range line.HiddenCategories {
				if cat == "Category:Pages with 1 entry" {
					c.WikiSingleEntry = true
				}
			}
		}

		// Legacy dumps mark the language on the top-level object.
		if !matched && !matchesLanguage(&line, target) {
			continue
		}

		c.Lemma = strings.TrimSpace(firstNonEmpty(line.Lemma, line.CanonicalForm))
		for _, pos := range strings.Split(line.POS, ",") {
			if pos = strings.TrimSpace(pos); pos != "" {
				c.POS = append(c.POS, pos)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- c:
		}
	}
	return sc.Err()
}

func matchesLanguage(line *wiktionaryLine, target string) bool {
	for _, value := range []string{line.LangCode, line.Lang, line.Language} {
		if code := normalizeLangCode(value); code != "" && code == target {
			return true
		}
	}
	return false
}

var langTagPattern = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]+)*$`)

// Common language names seen in legacy dumps that lack ISO codes.
var langNameCodes = map[string]string{
	"english":    "en",
	"portuguese": "pt",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"russian":    "ru",
	"chinese":    "zh",
	"japanese":   "ja",
	"korean":     "ko",
	"arabic":     "ar",
	"greek":      "el",
	"latin":      "la",
}

// normalizeLangCode reduces a language tag or name to a bare lowercase code
// ("pt-BR" -> "pt", "English" -> "en"). Unknown values map to "".
func normalizeLangCode(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if langTagPattern.MatchString(value) {
		return strings.ToLower(strings.SplitN(value, "-", 2)[0])
	}
	return langNameCodes[strings.ToLower(value)]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
