// Package widget holds the scrape widget's state: the URL registry, the
// per-URL scrape results and the detail-view selection. All methods are
// safe for concurrent use.
package widget

import (
	"errors"
	"sync"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/scraper"
	"web-scraping-tool/pkg/utils"
)

// ErrURLNotFound is returned for ids that were never assigned.
var ErrURLNotFound = errors.New("url not found")

// ErrScrapeRunning is returned by BeginScrapeIfIdle when id is already running.
var ErrScrapeRunning = errors.New("scrape already running")

// State is the single state container shared by the registry, the tracker
// and the selection.
type State struct {
	mu sync.RWMutex

	entries []models.URLEntry
	results map[int]models.ScrapeResult

	selected    int
	hasSelected bool
}

// New creates a state seeded with the given URLs. Blank seeds are skipped.
func New(seed ...string) *State {
	s := &State{
		results: make(map[int]models.ScrapeResult),
	}
	for _, raw := range seed {
		_, _ = s.Add(raw)
	}
	return s
}

// Add trims raw and appends it with id max(existing)+1. Blank input is
// rejected with utils.ErrEmptyURL and leaves the registry unchanged.
func (s *State) Add(raw string) (*models.URLEntry, error) {
	url, err := utils.ValidateURL(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, e := range s.entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	entry := models.URLEntry{ID: maxID + 1, URL: url}
	s.entries = append(s.entries, entry)
	return &entry, nil
}

// List returns the registered URLs in insertion order.
func (s *State) List() []models.URLEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.URLEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup finds the entry with the given id.
func (s *State) Lookup(id int) (models.URLEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id)
}

func (s *State) lookup(id int) (models.URLEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.URLEntry{}, false
}

// Rows returns every entry with its current status, in insertion order.
func (s *State) Rows() []models.URLRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.URLRow, 0, len(s.entries))
	for _, e := range s.entries {
		rows = append(rows, models.URLRow{URLEntry: e, Status: s.statusOf(e.ID)})
	}
	return rows
}

// StatusOf returns the scrape status of id; ids without a result are not_run.
func (s *State) StatusOf(id int) models.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusOf(id)
}

func (s *State) statusOf(id int) models.Status {
	if r, ok := s.results[id]; ok {
		return r.Status
	}
	return models.StatusNotRun
}

// Result returns the latest result for id, if any.
func (s *State) Result(id int) (models.ScrapeResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[id]
	if ok && r.Failure != nil {
		f := *r.Failure
		r.Failure = &f
	}
	return r, ok
}

// BeginScrape marks id as running with empty content, replacing any
// earlier result. It does not touch the selection.
func (s *State) BeginScrape(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(id); !ok {
		return ErrURLNotFound
	}
	s.results[id] = models.ScrapeResult{Status: models.StatusRunning}
	return nil
}

// BeginScrapeIfIdle is BeginScrape that refuses ids already running.
// The check and the transition happen under one lock.
func (s *State) BeginScrapeIfIdle(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(id); !ok {
		return ErrURLNotFound
	}
	if s.statusOf(id) == models.StatusRunning {
		return ErrScrapeRunning
	}
	s.results[id] = models.ScrapeResult{Status: models.StatusRunning}
	return nil
}

// CompleteScrape records the invoker outcome for id and then selects id.
// A nil err yields finished with content; otherwise failed with the error kind.
func (s *State) CompleteScrape(id int, content string, err error) {
	result := models.ScrapeResult{Content: content, Status: models.StatusFinished}
	if err != nil {
		kind, msg := scraper.Describe(err)
		result = models.ScrapeResult{
			Status:  models.StatusFailed,
			Failure: &models.Failure{Kind: string(kind), Message: msg},
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[id] = result
	s.selected = id
	s.hasSelected = true
}

// Select points the detail view at id, unconditionally.
func (s *State) Select(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = id
	s.hasSelected = true
}

// Selection returns the selected id and whether one is set.
func (s *State) Selection() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.hasSelected
}
