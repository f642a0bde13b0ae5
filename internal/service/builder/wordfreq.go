package builder

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// FrequencyListSource reads <dataDir>/<lang>/wordfreq.tsv, a ranked
// frequency list with one "token<TAB>frequency" pair per line. Line order
// is the rank.
type FrequencyListSource struct {
	dataDir string
	topN    int // 0 means unlimited
	log     pkg.Logger
}

func NewFrequencyListSource(dataDir string, topN int, log pkg.Logger) *FrequencyListSource {
	return &FrequencyListSource{dataDir: dataDir, topN: topN, log: log}
}

func (s *FrequencyListSource) Name() string { return sourceWordfreq }

func (s *FrequencyListSource) Load(ctx context.Context, lang string, out chan<- Contribution) error {
	path := filepath.Join(s.dataDir, lang, "wordfreq.tsv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("No frequency list found, skipping wordfreq source", "path", path)
			return nil
		}
		return fmt.Errorf("open frequency list: %w", err)
	}
	defer f.Close()

	rank := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			s.log.Warn("Malformed frequency list line", "line", line)
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			s.log.Warn("Unparseable frequency value", "token", fields[0], "value", fields[1])
			continue
		}

		rank++
		if s.topN > 0 && rank > s.topN {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- Contribution{Token: fields[0], Source: sourceWordfreq, Freq: freq, Rank: rank}:
		}
	}
	return sc.Err()
}
