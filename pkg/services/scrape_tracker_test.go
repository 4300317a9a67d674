package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/scraper"
	"web-scraping-tool/pkg/widget"
)

// gatedInvoker blocks each scrape until a result is sent for its URL.
type gatedInvoker struct {
	mu    sync.Mutex
	gates map[string]chan result
}

type result struct {
	content string
	err     error
}

func newGatedInvoker() *gatedInvoker {
	return &gatedInvoker{gates: make(map[string]chan result)}
}

func (g *gatedInvoker) gate(url string) chan result {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[url]
	if !ok {
		ch = make(chan result, 4)
		g.gates[url] = ch
	}
	return ch
}

func (g *gatedInvoker) Scrape(ctx context.Context, url string) (string, error) {
	select {
	case r := <-g.gate(url):
		return r.content, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *gatedInvoker) release(url, content string, err error) {
	g.gate(url) <- result{content: content, err: err}
}

func waitTask(t *testing.T, task *Task) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, task.Wait(ctx))
}

func TestStartScrape_RunningBeforeResult(t *testing.T) {
	state := widget.New("https://example.com", "https://example.org")
	inv := newGatedInvoker()
	tracker := NewScrapeTracker(state, inv)

	task, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)

	// Observable immediately, before the invoker has produced anything.
	assert.Equal(t, models.StatusRunning, state.StatusOf(1))
	_, selected := state.Selection()
	assert.False(t, selected, "selection must not change at start")
	assert.True(t, state.Render().Placeholder)

	inv.release("https://example.com", "content", nil)
	waitTask(t, task)

	assert.Equal(t, models.StatusFinished, state.StatusOf(1))
	sel, ok := state.Selection()
	require.True(t, ok)
	assert.Equal(t, 1, sel)
	assert.Equal(t, "content", state.Render().Body)
}

func TestStartScrape_ExplicitSelectDuringRun(t *testing.T) {
	state := widget.New("https://example.com", "https://example.org")
	inv := newGatedInvoker()
	tracker := NewScrapeTracker(state, inv)

	task, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)
	state.Select(1)

	view := state.Render()
	assert.Equal(t, models.StatusRunning, view.Status)
	assert.Equal(t, widget.InProgressText, view.Body)

	inv.release("https://example.com", "done", nil)
	waitTask(t, task)
	assert.Equal(t, "done", state.Render().Body)
}

func TestStartScrape_MockScenario(t *testing.T) {
	state := widget.New("https://example.com", "https://example.org")
	state.Select(2)
	tracker := NewScrapeTracker(state, scraper.NewMockInvoker(20*time.Millisecond))

	task, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, models.StatusRunning, state.StatusOf(1))
	sel, _ := state.Selection()
	assert.Equal(t, 2, sel, "selection unchanged while running")

	waitTask(t, task)

	assert.Equal(t, models.StatusFinished, state.StatusOf(1))
	res, ok := state.Result(1)
	require.True(t, ok)
	assert.Equal(t, "Scraped content from https://example.com:\n\nLorem ipsum dolor sit amet, consectetur adipiscing elit. Nullam euismod, nisi vel consectetur interdum, nisl nunc egestas nunc, vitae tincidunt nisl nunc euismod nunc.", res.Content)
	sel, _ = state.Selection()
	assert.Equal(t, 1, sel)
}

func TestStartScrape_RerunOverwrites(t *testing.T) {
	state := widget.New("https://example.com")
	inv := newGatedInvoker()
	tracker := NewScrapeTracker(state, inv)

	task, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)
	inv.release("https://example.com", "first", nil)
	waitTask(t, task)

	task, err = tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)
	res, _ := state.Result(1)
	assert.Equal(t, models.ScrapeResult{Status: models.StatusRunning}, res, "old content is cleared on re-run")

	inv.release("https://example.com", "second", nil)
	waitTask(t, task)
	res, _ = state.Result(1)
	assert.Equal(t, models.ScrapeResult{Content: "second", Status: models.StatusFinished}, res)
}

func TestStartScrape_FailureDoesNotAffectOthers(t *testing.T) {
	state := widget.New("https://example.com", "https://example.org")
	inv := newGatedInvoker()
	tracker := NewScrapeTracker(state, inv)

	t1, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)
	t2, err := tracker.StartScrape(context.Background(), 2)
	require.NoError(t, err)

	inv.release("https://example.com", "", &scraper.ScraperError{Type: scraper.ErrorTypeNetwork, Message: "reset"})
	waitTask(t, t1)

	res, _ := state.Result(1)
	assert.Equal(t, models.StatusFailed, res.Status)
	require.NotNil(t, res.Failure)
	assert.Equal(t, "network", res.Failure.Kind)
	assert.Equal(t, models.StatusRunning, state.StatusOf(2))
	sel, _ := state.Selection()
	assert.Equal(t, 1, sel, "failures are surfaced in the detail view")

	inv.release("https://example.org", "ok", nil)
	waitTask(t, t2)
	assert.Equal(t, models.StatusFinished, state.StatusOf(2))
	assert.Equal(t, models.StatusFailed, state.StatusOf(1))
}

func TestStartScrape_SameIDLastWriteWins(t *testing.T) {
	state := widget.New("https://example.com")
	inv := newGatedInvoker()
	tracker := NewScrapeTracker(state, inv)

	first, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)
	second, err := tracker.StartScrape(context.Background(), 1)
	require.NoError(t, err)

	inv.release("https://example.com", "a", nil)
	inv.release("https://example.com", "b", nil)
	waitTask(t, first)
	waitTask(t, second)

	res, _ := state.Result(1)
	assert.Equal(t, models.StatusFinished, res.Status)
	assert.Contains(t, []string{"a", "b"}, res.Content)
}

func TestTryStartScrape_RefusesRunning(t *testing.T) {
	state := widget.New("https://example.com")
	inv := newGatedInvoker()
	tracker := NewScrapeTracker(state, inv)

	task, err := tracker.TryStartScrape(context.Background(), 1)
	require.NoError(t, err)

	_, err = tracker.TryStartScrape(context.Background(), 1)
	assert.ErrorIs(t, err, widget.ErrScrapeRunning)
	_, err = tracker.TryStartScrape(context.Background(), 7)
	assert.ErrorIs(t, err, widget.ErrURLNotFound)

	inv.release("https://example.com", "done", nil)
	waitTask(t, task)

	again, err := tracker.TryStartScrape(context.Background(), 1)
	require.NoError(t, err)
	inv.release("https://example.com", "again", nil)
	waitTask(t, again)

	res, _ := state.Result(1)
	assert.Equal(t, "again", res.Content)
}

func TestStartScrape_UnknownID(t *testing.T) {
	tracker := NewScrapeTracker(widget.New(), newGatedInvoker())
	_, err := tracker.StartScrape(context.Background(), 3)
	assert.ErrorIs(t, err, widget.ErrURLNotFound)
}

func TestScrapeAll(t *testing.T) {
	state := widget.New("https://example.com", "https://example.org", "https://example.net")
	var inFlight, peak atomic.Int32
	inv := scraper.InvokerFunc(func(_ context.Context, url string) (string, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		if url == "https://example.net" {
			return "", errors.New("boom")
		}
		return "ok " + url, nil
	})
	tracker := NewScrapeTracker(state, inv)

	rows, err := tracker.ScrapeAll(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.StatusFinished, rows[0].Status)
	assert.Equal(t, models.StatusFinished, rows[1].Status)
	assert.Equal(t, models.StatusFailed, rows[2].Status)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestScrapeAll_Cancelled(t *testing.T) {
	state := widget.New("https://example.com")
	tracker := NewScrapeTracker(state, newGatedInvoker())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tracker.ScrapeAll(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
