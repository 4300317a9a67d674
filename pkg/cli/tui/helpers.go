package tui

import (
	"errors"
	"fmt"
	"strings"

	"web-scraping-tool/pkg/cli/urls"
	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/scraper"
	"web-scraping-tool/pkg/widget"
)

// renderEmptyState renders a standard empty state message
func renderEmptyState(message string) string {
	return "\n" + mutedStyle.Render(message) + "\n"
}

// renderURLRow renders one line of the URL list. icon is the status glyph.
func renderURLRow(row models.URLRow, icon string, selected bool, width int) string {
	marker := " "
	style := urlStyle
	if selected {
		marker = selectedMarkerStyle.Render("→")
		style = selectedStyle
	}

	maxLen := width - 6
	if maxLen < 8 {
		maxLen = 8
	}
	return fmt.Sprintf("%s %s %s", marker, icon, style.Render(urls.TruncateURL(row.URL, maxLen)))
}

// renderDetailView renders the detail pane body for a widget.DetailView
func renderDetailView(view widget.DetailView, width int) string {
	if view.Placeholder {
		return mutedStyle.Render(wrapText(view.Body, width, ""))
	}

	var b strings.Builder
	b.WriteString(fieldLabelStyle.Render("URL:"))
	b.WriteString(" " + view.URL + "\n")
	b.WriteString(fieldLabelStyle.Render("Status:"))
	b.WriteString(" " + urls.StatusLabel(view.Status) + "\n\n")

	if view.Failure != nil {
		b.WriteString(renderError(fmt.Sprintf("Scrape failed (%s)", view.Failure.Kind)))
		b.WriteString("\n\n")
	}
	b.WriteString(wrapText(view.Body, width, ""))
	return b.String()
}

// wrapText wraps text to a specified width, breaking at word boundaries.
// Paragraph breaks in text are kept.
func wrapText(text string, width int, indent string) string {
	if width <= 0 {
		width = 80
	}

	paragraphs := strings.Split(text, "\n")
	var b strings.Builder
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			b.WriteString(indent + "\n")
			continue
		}

		line := ""
		for _, word := range words {
			if line != "" && len(line)+len(word)+1 > width {
				b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
				line = word
			} else {
				if line != "" {
					line += " "
				}
				line += word
			}
		}
		if line != "" {
			b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
		}
	}
	return b.String()
}

// handleListNavigation handles common navigation keys for list views (up/down/j/k)
// Returns the new selected index and whether navigation occurred
func handleListNavigation(key string, selected int, total int) (newSelected int, handled bool) {
	switch key {
	case "up", "k":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "down", "j":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	}
	return selected, false
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}

// renderInlineError renders an error message inline (without full error view formatting)
func renderInlineError(err error) string {
	if err == nil {
		return ""
	}
	return renderError(userFacingError(err).Error())
}

// userFacingError converts structured scraper errors into friendly messages,
// while leaving other error types unchanged.
func userFacingError(err error) error {
	if err == nil {
		return nil
	}

	var scraperErr *scraper.ScraperError
	if errors.As(err, &scraperErr) {
		return errors.New(scraperErr.UserMessage())
	}

	return err
}
