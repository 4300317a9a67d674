package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"web-scraping-tool/pkg/logger"
	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/scraper"
	"web-scraping-tool/pkg/widget"
)

// ScrapeTracker runs scrapes against a widget.State using an injected invoker.
type ScrapeTracker struct {
	state   *widget.State
	invoker scraper.Invoker
	log     zerolog.Logger
}

// NewScrapeTracker creates a tracker for state.
func NewScrapeTracker(state *widget.State, invoker scraper.Invoker) *ScrapeTracker {
	return &ScrapeTracker{
		state:   state,
		invoker: invoker,
		log:     logger.NewLogger("tracker"),
	}
}

// State returns the tracked state.
func (t *ScrapeTracker) State() *widget.State {
	return t.state
}

// Task is a single in-flight scrape. Tasks cannot be cancelled individually.
type Task struct {
	ID   int
	URL  string
	done chan struct{}
}

// Done is closed once the result has been recorded.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StartScrape marks id running before returning, then invokes the scraper in
// the background. On completion the result is stored and id becomes the
// selection. Starting an id that is already running is allowed; the last
// completion wins.
func (t *ScrapeTracker) StartScrape(ctx context.Context, id int) (*Task, error) {
	return t.start(ctx, id, t.state.BeginScrape)
}

// TryStartScrape is StartScrape for callers that must not restart a running
// id. It fails with widget.ErrScrapeRunning instead.
func (t *ScrapeTracker) TryStartScrape(ctx context.Context, id int) (*Task, error) {
	return t.start(ctx, id, t.state.BeginScrapeIfIdle)
}

func (t *ScrapeTracker) start(ctx context.Context, id int, begin func(int) error) (*Task, error) {
	entry, ok := t.state.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("start scrape %d: %w", id, widget.ErrURLNotFound)
	}
	if err := begin(id); err != nil {
		return nil, fmt.Errorf("start scrape %d: %w", id, err)
	}

	task := &Task{ID: id, URL: entry.URL, done: make(chan struct{})}
	t.log.Debug().Int("id", id).Str("url", entry.URL).Msg("Scrape started")

	go func() {
		defer close(task.done)

		content, err := t.invoker.Scrape(ctx, entry.URL)
		t.state.CompleteScrape(id, content, err)

		if err != nil {
			t.log.Warn().Err(err).Int("id", id).Str("kind", string(scraper.KindOf(err))).Msg("Scrape failed")
			return
		}
		t.log.Debug().Int("id", id).Int("bytes", len(content)).Msg("Scrape finished")
	}()

	return task, nil
}

// ScrapeAll starts a scrape for every registered URL, at most limit at a
// time, and waits for all of them. Per-URL failures are recorded in the
// state, not returned; only ctx cancellation is.
func (t *ScrapeTracker) ScrapeAll(ctx context.Context, limit int) ([]models.URLRow, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for _, entry := range t.state.List() {
		id := entry.ID
		eg.Go(func() error {
			task, err := t.StartScrape(ctx, id)
			if err != nil {
				return err
			}
			return task.Wait(egCtx)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return t.state.Rows(), nil
}
