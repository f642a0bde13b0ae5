package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lexibuild/lexibuild/internal/domain/model"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

// Builder consolidates every registered source into one lexicon per
// language. Sources run concurrently; they share nothing, so the only
// synchronization is the fan-in channel.
type Builder struct {
	sources []Source
	log     pkg.Logger
}

func NewBuilder(log pkg.Logger, sources ...Source) *Builder {
	return &Builder{
		sources: sources,
		log:     log,
	}
}

func (b *Builder) Build(ctx context.Context, lang string) ([]*model.LexiconEntry, error) {
	out := make(chan Contribution, 256)
	errCh := make(chan error, len(b.sources))

	var wg sync.WaitGroup
	for _, src := range b.sources {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			if err := s.Load(ctx, lang, out); err != nil {
				errCh <- fmt.Errorf("%s source: %w", s.Name(), err)
			}
		}(src)
	}
	go func() {
		wg.Wait()
		close(out)
		close(errCh)
	}()

	entries := consolidate(lang, out)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	b.log.Info("Consolidated lexicon", "lang", lang, "tokens", len(entries))
	return entries, nil
}
