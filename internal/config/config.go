package config

type BuildConfig struct {
	DataDir        string   `yaml:"data_dir"`
	Languages      []string `yaml:"languages"`
	WordfreqTopN   int      `yaml:"wordfreq_top_n"`
	WiktionaryPath string   `yaml:"wiktionary_path"`
}

type ScoringConfig struct {
	LangCode      string           `yaml:"lang_code"`
	Input         string           `yaml:"input"`
	Output        string           `yaml:"output"`
	Thresholds    ThresholdsConfig `yaml:"thresholds"`
	Weights       WeightsConfig    `yaml:"weights"`
	NameParticles []string         `yaml:"name_particles"`
}

type ThresholdsConfig struct {
	FreqLogCommon             *float64 `yaml:"freq_log_common"`
	FreqLogRare               *float64 `yaml:"freq_log_rare"`
	NLexiconsCommon           *int     `yaml:"n_lexicons_common"`
	LongTokenLen              *int     `yaml:"long_token_len"`
	ShortTokenLenMax          *int     `yaml:"short_token_len_max"`
	AlphaTokenLenMax          *int     `yaml:"alpha_token_len_max"`
	WikiEntriesAmbiguousMin   *int     `yaml:"wiki_entries_ambiguous_min"`
	WikiPageViewsReviewMin    *int     `yaml:"wiki_page_views_review_min"`
	WikiTotalEditsReviewMin   *int     `yaml:"wiki_total_edits_review_min"`
	WikiEntriesUnambiguousMax *int     `yaml:"wiki_entries_unambiguous_max"`
}

type WeightsConfig struct {
	Ambiguous   map[string]float64 `yaml:"ambiguous"`
	Review      map[string]float64 `yaml:"review"`
	Unambiguous map[string]float64 `yaml:"unambiguous"`
}

type ReportConfig struct {
	OutputDir string `yaml:"output_dir"`
	TopN      int    `yaml:"top_n"`
	SampleN   int    `yaml:"sample_n"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	FilePath   string `yaml:"file_path"`
	Production bool   `yaml:"production"`
}
