package hunspell

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// LoadVocabulary expands every .aff/.dic pair found in dir and unions the
// results. A missing directory, or one without .aff files, yields an empty
// vocabulary: the hunspell source is one optional input among several and
// its absence is not an error. An .aff file without its same-named .dic
// companion is skipped with a warning.
func LoadVocabulary(dir string, log pkg.Logger) (map[string]struct{}, error) {
	vocabulary := make(map[string]struct{})

	affPaths, err := filepath.Glob(filepath.Join(dir, "*.aff"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(affPaths) == 0 {
		log.Info("No .aff files found, skipping hunspell source", "dir", dir)
		return vocabulary, nil
	}
	sort.Strings(affPaths)

	for _, affPath := range affPaths {
		dicPath := strings.TrimSuffix(affPath, ".aff") + ".dic"
		if _, err := os.Stat(dicPath); err != nil {
			log.Warn("Missing .dic companion", "aff", filepath.Base(affPath))
			continue
		}

		set, diags, err := ParseAff(affPath)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", affPath, err)
		}
		for _, d := range diags {
			log.Warn("Affix file diagnostic", "file", filepath.Base(affPath), "line", d.Line, "msg", d.Message)
		}

		dicEntries, err := ParseDic(dicPath, set.FlagType)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", dicPath, err)
		}

		forms := GenerateWordForms(dicEntries, set)
		for w := range forms {
			vocabulary[w] = struct{}{}
		}
		log.Info("Expanded hunspell pair", "aff", filepath.Base(affPath), "roots", len(dicEntries), "forms", len(forms))
	}

	log.Info("Aggregated hunspell vocabulary", "dir", dir, "forms", len(vocabulary))
	return vocabulary, nil
}
