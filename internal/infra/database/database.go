package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexibuild/lexibuild/internal/config"
	"github.com/lexibuild/lexibuild/internal/domain/model"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// Database persists consolidated lexicons in the "lexicon" table:
//
//	token, lang, lemma, len_token, freq_wordfreq, wordfreq_rank,
//	in_hunspell, in_wiktionary, in_wordfreq, in_extra_sources,
//	n_lexicons, pos_set,
//	wiki_entries_count, wiki_page_views_30d, wiki_total_edits,
//	wiki_single_entry_page
type Database struct {
	Pool *pgxpool.Pool
	Log  pkg.Logger
}

func NewPostgresPool(log pkg.Logger, cfg config.DatabaseConfig) (d *Database, err error) {
	dsn := cfg.DSN
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return &Database{
		Pool: pool,
		Log:  log,
	}, nil
}

var lexiconColumns = []string{
	"token", "lang", "lemma", "len_token", "freq_wordfreq", "wordfreq_rank",
	"in_hunspell", "in_wiktionary", "in_wordfreq", "in_extra_sources",
	"n_lexicons", "pos_set",
	"wiki_entries_count", "wiki_page_views_30d", "wiki_total_edits",
	"wiki_single_entry_page",
}

func (d *Database) SaveBatch(ctx context.Context, entries []*model.LexiconEntry) error {
	if len(entries) == 0 {
		d.Log.Info("No lexicon entries to save")
		return nil
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.Token,
			e.Lang,
			e.Lemma,
			e.LenToken,
			e.FreqWordfreq,
			e.WordfreqRank,
			e.InHunspell,
			e.InWiktionary,
			e.InWordfreq,
			e.InExtraSources,
			e.NLexicons,
			e.POSSet,
			e.WikiEntriesCount,
			e.WikiPageViews30d,
			e.WikiTotalEdits,
			e.WikiSingleEntryPage,
		})
	}

	_, err := d.Pool.CopyFrom(
		ctx,
		pgx.Identifier{"lexicon"},
		lexiconColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		d.Log.Error("CopyFrom failed", "err", err)
		return err
	}

	d.Log.Info("Saved lexicon entries to database", "count", len(entries))
	return nil
}

func (d *Database) GetEntriesByLang(ctx context.Context, lang string) ([]*model.LexiconEntry, error) {
	query := `SELECT token, lang, lemma, len_token, freq_wordfreq, wordfreq_rank,
			in_hunspell, in_wiktionary, in_wordfreq, in_extra_sources,
			n_lexicons, pos_set,
			wiki_entries_count, wiki_page_views_30d, wiki_total_edits,
			wiki_single_entry_page
		  FROM lexicon
		  WHERE lang = $1
		  ORDER BY freq_wordfreq DESC, token ASC`

	rows, err := d.Pool.Query(ctx, query, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to query lexicon entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.LexiconEntry
	for rows.Next() {
		var entry model.LexiconEntry
		err := rows.Scan(
			&entry.Token,
			&entry.Lang,
			&entry.Lemma,
			&entry.LenToken,
			&entry.FreqWordfreq,
			&entry.WordfreqRank,
			&entry.InHunspell,
			&entry.InWiktionary,
			&entry.InWordfreq,
			&entry.InExtraSources,
			&entry.NLexicons,
			&entry.POSSet,
			&entry.WikiEntriesCount,
			&entry.WikiPageViews30d,
			&entry.WikiTotalEdits,
			&entry.WikiSingleEntryPage,
		)
		if err != nil {
			d.Log.Warn("Failed to scan lexicon entry", "err", err)
			continue
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (d *Database) CountByLang(ctx context.Context, lang string) (int64, error) {
	var count int64
	row := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM lexicon WHERE lang = $1`, lang)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
