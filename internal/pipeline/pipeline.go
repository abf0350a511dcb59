// Package pipeline exports season summaries: each dataset is loaded,
// summarized, and published independently.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/couchcryptid/storm-data-shared/retry"
)

// SeasonLoader reads season datasets by key.
type SeasonLoader interface {
	Load(key string) (*domain.Series, error)
	List() ([]string, error)
}

// SummaryPublisher writes one season summary to the destination.
type SummaryPublisher interface {
	Publish(ctx context.Context, summary domain.Summary) error
}

// Result counts the outcome of one export run.
type Result struct {
	Published int
	Skipped   int // datasets that failed to load
}

// Pipeline orchestrates the load-summarize-publish loop.
type Pipeline struct {
	loader      SeasonLoader
	publisher   SummaryPublisher
	logger      *slog.Logger
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

// New creates a Pipeline. Publishing is attempted up to three times per season
// with exponential backoff starting at 200ms and capped at 5s.
func New(l SeasonLoader, p SummaryPublisher, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		loader:      l,
		publisher:   p,
		logger:      logger,
		maxAttempts: 3,
		baseBackoff: 200 * time.Millisecond,
		maxBackoff:  5 * time.Second,
	}
}

// Run exports the given seasons, or every available season when keys is empty.
// Seasons that fail to load are logged and skipped; a publish that still fails
// after retries stops the run.
func (p *Pipeline) Run(ctx context.Context, keys []string) (Result, error) {
	var res Result

	if len(keys) == 0 {
		all, err := p.loader.List()
		if err != nil {
			return res, err
		}
		keys = all
	}
	p.logger.Info("export started", "seasons", len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		series, err := p.loader.Load(key)
		if err != nil {
			p.logger.Warn("load failed, skipping season", "season", key, "error", err)
			res.Skipped++
			continue
		}

		if err := p.publishWithRetry(ctx, domain.Summarize(key, series)); err != nil {
			return res, fmt.Errorf("export season %s: %w", key, err)
		}
		res.Published++
	}

	p.logger.Info("export finished", "published", res.Published, "skipped", res.Skipped)
	return res, nil
}

func (p *Pipeline) publishWithRetry(ctx context.Context, summary domain.Summary) error {
	backoff := p.baseBackoff
	var err error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if err = p.publisher.Publish(ctx, summary); err == nil {
			return nil
		}
		p.logger.Error("publish failed", "season", summary.Key, "attempt", attempt, "error", err)
		if attempt == p.maxAttempts || !retry.SleepWithContext(ctx, backoff) {
			break
		}
		backoff = retry.NextBackoff(backoff, p.maxBackoff)
	}
	return err
}
