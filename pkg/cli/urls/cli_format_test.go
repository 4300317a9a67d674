package urls

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/widget"
)

func TestFormatTableOutput(t *testing.T) {
	assert.Equal(t, "No URLs found.", FormatTableOutput(nil))

	out := FormatTableOutput([]models.URLRow{
		{URLEntry: models.URLEntry{ID: 1, URL: "https://example.com"}, Status: models.StatusFinished},
		{URLEntry: models.URLEntry{ID: 2, URL: "https://example.org"}, Status: models.StatusNotRun},
	})
	assert.Contains(t, out, "Tracked URLs")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "Total: 2 URL(s)")
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.b", TruncateURL("https://a.b", 20))
	assert.Equal(t, "https:...", TruncateURL("https://example.com", 9))
	assert.Equal(t, "ht", TruncateURL("https://example.com", 2))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b c", Preview("a\n\nb   c", 20))
}

func TestFormatDetail(t *testing.T) {
	placeholder := widget.DetailView{Placeholder: true, Body: widget.PlaceholderText}
	assert.Contains(t, FormatDetail(placeholder), widget.PlaceholderText)

	failed := widget.DetailView{
		ID:      1,
		URL:     "https://example.com",
		Status:  models.StatusFailed,
		Body:    "timed out",
		Failure: &models.Failure{Kind: "timeout", Message: "timed out"},
	}
	out := FormatDetail(failed)
	assert.Contains(t, out, "Scrape failed (timeout)")
	assert.Contains(t, out, "timed out")

	done := widget.DetailView{ID: 1, URL: "https://example.com", Status: models.StatusFinished, Body: "content"}
	assert.Contains(t, FormatDetail(done), "✓ Scrape done")
}

func TestFormatURLDetail(t *testing.T) {
	entry := models.URLEntry{ID: 3, URL: "https://example.net"}

	out := FormatURLDetail(models.URLDetail{
		URLEntry: entry,
		Result:   models.ScrapeResult{Status: models.StatusFinished, Content: "hello"},
	})
	assert.Contains(t, out, "URL: https://example.net")
	assert.Contains(t, out, "hello")

	out = FormatURLDetail(models.URLDetail{
		URLEntry: entry,
		Result: models.ScrapeResult{
			Status:  models.StatusFailed,
			Failure: &models.Failure{Kind: "network", Message: "connection reset"},
		},
	})
	assert.Contains(t, out, "✗ Scrape failed (network)")
	assert.Contains(t, out, "connection reset")

	out = FormatURLDetail(models.URLDetail{
		URLEntry: entry,
		Result:   models.ScrapeResult{Status: models.StatusRunning},
	})
	assert.Contains(t, out, widget.InProgressText)
	assert.NotContains(t, out, widget.PlaceholderText)
}

func TestFormatScrapeSummary(t *testing.T) {
	out := FormatScrapeSummary([]models.URLRow{
		{Status: models.StatusFinished},
		{Status: models.StatusFailed},
		{Status: models.StatusFinished},
	})
	assert.Equal(t, "Scraped 3 URL(s): 2 finished, 1 failed\n", out)
}

func TestFormatErrorMessage(t *testing.T) {
	assert.Equal(t, "❌ Error: boom\n", FormatErrorMessage(errors.New("boom")))
}
