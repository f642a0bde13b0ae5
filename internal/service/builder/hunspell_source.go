package builder

import (
	"context"
	"path/filepath"

	"github.com/lexibuild/lexibuild/internal/service/hunspell"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// HunspellSource expands the affix dictionaries under
// <dataDir>/<lang>/hunspell into word forms.
type HunspellSource struct {
	dataDir string
	log     pkg.Logger
}

func NewHunspellSource(dataDir string, log pkg.Logger) *HunspellSource {
	return &HunspellSource{dataDir: dataDir, log: log}
}

func (s *HunspellSource) Name() string { return sourceHunspell }

func (s *HunspellSource) Load(ctx context.Context, lang string, out chan<- Contribution) error {
	dir := filepath.Join(s.dataDir, lang, "hunspell")
	vocabulary, err := hunspell.LoadVocabulary(dir, s.log)
	if err != nil {
		return err
	}
	for word := range vocabulary {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- Contribution{Token: word, Source: sourceHunspell}:
		}
	}
	return nil
}
