package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/scraper"
)

func TestRender_NoSelection(t *testing.T) {
	s := New("https://example.com")
	assert.Equal(t, DetailView{Placeholder: true, Body: PlaceholderText}, s.Render())
}

func TestRender_SelectedWithoutResult(t *testing.T) {
	s := New("https://example.com")
	s.Select(1)

	sel, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, 1, sel)
	assert.True(t, s.Render().Placeholder, "selection without a tracker entry shows the placeholder")
}

func TestRender_SelectUnknownID(t *testing.T) {
	s := New("https://example.com")
	s.Select(7)

	sel, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, 7, sel)
	assert.True(t, s.Render().Placeholder)
}

func TestRender_Running(t *testing.T) {
	s := New("https://example.com")
	s.Select(1)
	_ = s.BeginScrape(1)

	assert.Equal(t, DetailView{
		ID:     1,
		URL:    "https://example.com",
		Status: models.StatusRunning,
		Body:   InProgressText,
	}, s.Render())

	// The fallback is presentation only; nothing is stored.
	result, _ := s.Result(1)
	assert.Empty(t, result.Content)
}

func TestRender_Finished(t *testing.T) {
	s := New("https://example.com")
	_ = s.BeginScrape(1)
	s.CompleteScrape(1, scraper.MockContent("https://example.com"), nil)

	view := s.Render()
	assert.False(t, view.Placeholder)
	assert.Equal(t, "https://example.com", view.URL)
	assert.Equal(t, models.StatusFinished, view.Status)
	assert.Equal(t, scraper.MockContent("https://example.com"), view.Body)
	assert.Nil(t, view.Failure)
}

func TestRender_Failed(t *testing.T) {
	s := New("https://example.com")
	_ = s.BeginScrape(1)
	s.CompleteScrape(1, "", &scraper.ScraperError{Type: scraper.ErrorTypeParse, Message: "bad json"})

	view := s.Render()
	assert.Equal(t, models.StatusFailed, view.Status)
	if assert.NotNil(t, view.Failure) {
		assert.Equal(t, "parse", view.Failure.Kind)
		assert.Equal(t, view.Failure.Message, view.Body)
	}
}
