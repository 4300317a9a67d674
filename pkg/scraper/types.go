package scraper

import "context"

// Invoker retrieves textual content for a URL. Implementations must be safe
// for concurrent use; each call either returns content or a non-nil error.
type Invoker interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// InvokerFunc adapts a plain function to the Invoker interface.
type InvokerFunc func(ctx context.Context, url string) (string, error)

// Scrape calls f(ctx, url).
func (f InvokerFunc) Scrape(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// ScrapeRequest represents a request to the scraper service
type ScrapeRequest struct {
	URL     string `json:"url"`
	Timeout int    `json:"timeout,omitempty"`
}

// ScrapeResponse represents the response from the scraper service
type ScrapeResponse struct {
	Success     bool   `json:"success"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	ExtractedAt string `json:"extracted_at"`
	Error       string `json:"error,omitempty"`
}

// Content joins the scraped title and text into the displayed content.
func (r *ScrapeResponse) Content() string {
	if r.Title == "" {
		return r.Text
	}
	if r.Text == "" {
		return r.Title
	}
	return r.Title + "\n\n" + r.Text
}
