package reporter

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/lexibuild/lexibuild/internal/config"
	"github.com/lexibuild/lexibuild/internal/domain/contracts"
	"github.com/lexibuild/lexibuild/internal/domain/model"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Reporter renders per-language lexicon summaries: an xlsx workbook with
// stats, source-flag counts, top tokens and a random sample, plus a short
// docx overview.
type Reporter struct {
	log pkg.Logger
	db  contracts.SaverPostgres
	cfg config.ReportConfig
}

func NewReporter(log pkg.Logger, db contracts.SaverPostgres, cfg config.ReportConfig) *Reporter {
	if cfg.TopN <= 0 {
		cfg.TopN = 20
	}
	if cfg.SampleN <= 0 {
		cfg.SampleN = 20
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "reports"
	}
	return &Reporter{
		log: log,
		db:  db,
		cfg: cfg,
	}
}

func (r *Reporter) GenerateSummary(ctx context.Context, lang string) error {
	r.log.Info("Generating lexicon summary", "lang", lang)

	entries, err := r.db.GetEntriesByLang(ctx, lang)
	if err != nil {
		r.log.Error("Failed to fetch lexicon entries", "lang", lang, "err", err)
		return err
	}
	if len(entries) == 0 {
		r.log.Warn("No lexicon entries found for summary", "lang", lang)
		return nil
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	sd := newSummaryData(lang, entries, r.cfg.TopN, r.cfg.SampleN)
	if err := sd.saveExcel(filepath.Join(r.cfg.OutputDir, "lexicon_"+lang+".xlsx")); err != nil {
		r.log.Error("Failed to save xlsx summary", "err", err)
		return err
	}
	if err := sd.saveDoc(filepath.Join(r.cfg.OutputDir, "lexicon_"+lang+".docx")); err != nil {
		r.log.Error("Failed to save docx summary", "err", err)
		return err
	}

	r.log.Info("Lexicon summary completed", "lang", lang, "rows", len(entries))
	return nil
}

type summaryData struct {
	lang    string
	entries []*model.LexiconEntry

	sourceCounts map[string]int
	top          []*model.LexiconEntry
	sample       []*model.LexiconEntry
}

func newSummaryData(lang string, entries []*model.LexiconEntry, topN, sampleN int) *summaryData {
	sd := &summaryData{
		lang:         lang,
		entries:      entries,
		sourceCounts: make(map[string]int),
	}

	for _, e := range entries {
		if e.InHunspell {
			sd.sourceCounts["in_hunspell"]++
		}
		if e.InWiktionary {
			sd.sourceCounts["in_wiktionary"]++
		}
		if e.InWordfreq {
			sd.sourceCounts["in_wordfreq"]++
		}
		if e.InExtraSources {
			sd.sourceCounts["in_extra_sources"]++
		}
	}

	byFreq := make([]*model.LexiconEntry, len(entries))
	copy(byFreq, entries)
	sort.SliceStable(byFreq, func(i, j int) bool {
		return byFreq[i].FreqWordfreq > byFreq[j].FreqWordfreq
	})
	if topN > len(byFreq) {
		topN = len(byFreq)
	}
	sd.top = byFreq[:topN]

	shuffled := make([]*model.LexiconEntry, len(entries))
	copy(shuffled, entries)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if sampleN > len(shuffled) {
		sampleN = len(shuffled)
	}
	sd.sample = shuffled[:sampleN]

	return sd
}

var summaryColumns = []string{
	"token", "lemma", "len_token", "freq_wordfreq", "wordfreq_rank",
	"in_hunspell", "in_wiktionary", "in_wordfreq", "in_extra_sources",
	"n_lexicons", "pos_set",
}

func (sd *summaryData) saveExcel(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	statsSheet := "Stats"
	f.SetSheetName("Sheet1", statsSheet)
	f.SetCellValue(statsSheet, "A1", "lang")
	f.SetCellValue(statsSheet, "B1", sd.lang)
	f.SetCellValue(statsSheet, "A2", "rows")
	f.SetCellValue(statsSheet, "B2", len(sd.entries))

	row := 4
	f.SetCellValue(statsSheet, fmt.Sprintf("A%d", row), "source")
	f.SetCellValue(statsSheet, fmt.Sprintf("B%d", row), "count")
	for _, source := range []string{"in_hunspell", "in_wiktionary", "in_wordfreq", "in_extra_sources"} {
		row++
		f.SetCellValue(statsSheet, fmt.Sprintf("A%d", row), source)
		f.SetCellValue(statsSheet, fmt.Sprintf("B%d", row), sd.sourceCounts[source])
	}

	if err := sd.writeEntrySheet(f, "Top Tokens", sd.top); err != nil {
		return err
	}
	if err := sd.writeEntrySheet(f, "Sample", sd.sample); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func (sd *summaryData) writeEntrySheet(f *excelize.File, sheet string, entries []*model.LexiconEntry) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for col, name := range summaryColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, name)
	}
	for i, e := range entries {
		values := []interface{}{
			e.Token, e.Lemma, e.LenToken, e.FreqWordfreq, e.WordfreqRank,
			e.InHunspell, e.InWiktionary, e.InWordfreq, e.InExtraSources,
			e.NLexicons, strings.Join(e.POSSet, ","),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}
	return nil
}

func (sd *summaryData) saveDoc(path string) error {
	doc := document.New()

	title := doc.AddParagraph()
	title.SetStyle("Heading1")
	title.AddRun().AddText(fmt.Sprintf("Lexicon summary (%s)", sd.lang))

	doc.AddParagraph().AddRun().AddText(fmt.Sprintf("Rows: %d", len(sd.entries)))
	for _, source := range []string{"in_hunspell", "in_wiktionary", "in_wordfreq", "in_extra_sources"} {
		doc.AddParagraph().AddRun().AddText(fmt.Sprintf("%s: %d", source, sd.sourceCounts[source]))
	}

	heading := doc.AddParagraph()
	heading.SetStyle("Heading2")
	heading.AddRun().AddText("Top tokens by frequency")
	for _, e := range sd.top {
		doc.AddParagraph().AddRun().AddText(fmt.Sprintf("%s (freq %.6g, sources %d)", e.Token, e.FreqWordfreq, e.NLexicons))
	}

	return doc.SaveToFile(path)
}
