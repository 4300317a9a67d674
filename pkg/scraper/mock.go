package scraper

import (
	"context"
	"fmt"
	"time"
)

// DefaultMockDelay is how long MockInvoker pretends to work.
const DefaultMockDelay = 1000 * time.Millisecond

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Nullam euismod, nisi vel consectetur interdum, nisl nunc egestas nunc, vitae tincidunt nisl nunc euismod nunc."

// MockInvoker waits a fixed delay and returns canned content. It never fails
// unless ctx ends first.
type MockInvoker struct {
	Delay time.Duration
}

// NewMockInvoker creates a mock invoker. A negative delay falls back to DefaultMockDelay.
func NewMockInvoker(delay time.Duration) *MockInvoker {
	if delay < 0 {
		delay = DefaultMockDelay
	}
	return &MockInvoker{Delay: delay}
}

// Scrape implements Invoker.
func (m *MockInvoker) Scrape(ctx context.Context, url string) (string, error) {
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", fromContext(ctx.Err())
	case <-timer.C:
	}

	return MockContent(url), nil
}

// MockContent is the deterministic text MockInvoker produces for url.
func MockContent(url string) string {
	return fmt.Sprintf("Scraped content from %s:\n\n%s", url, loremIpsum)
}
