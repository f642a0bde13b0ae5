package builder

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// ExtraTextSource reads custom wordlists (*.txt, one token per line) from
// <dataDir>/<lang>/txtfiles. Duplicate tokens across files collapse.
type ExtraTextSource struct {
	dataDir string
	log     pkg.Logger
}

func NewExtraTextSource(dataDir string, log pkg.Logger) *ExtraTextSource {
	return &ExtraTextSource{dataDir: dataDir, log: log}
}

func (s *ExtraTextSource) Name() string { return sourceExtra }

func (s *ExtraTextSource) Load(ctx context.Context, lang string, out chan<- Contribution) error {
	dir := filepath.Join(s.dataDir, lang, "txtfiles")
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		s.log.Info("No custom wordlists found, skipping extra source", "dir", dir)
		return nil
	}
	sort.Strings(paths)

	tokens := make(map[string]struct{})
	for _, path := range paths {
		if err := readWordlist(path, tokens); err != nil {
			return err
		}
		s.log.Info("Loaded custom wordlist", "file", filepath.Base(path))
	}

	for token := range tokens {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- Contribution{Token: token, Source: sourceExtra}:
		}
	}
	return nil
}

func readWordlist(path string, tokens map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if token := strings.TrimSpace(sc.Text()); token != "" {
			tokens[token] = struct{}{}
		}
	}
	return sc.Err()
}
