package urls

import (
	"strings"

	"web-scraping-tool/pkg/models"
)

// StatusLabel returns the short label shown next to a URL for its status
func StatusLabel(status models.Status) string {
	switch status {
	case models.StatusRunning:
		return "running"
	case models.StatusFinished:
		return "done"
	case models.StatusFailed:
		return "failed"
	default:
		return "-"
	}
}

// TruncateURL truncates a URL to the specified max length
func TruncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	if maxLen <= 3 {
		return url[:maxLen]
	}
	return url[:maxLen-3] + "..."
}

// Preview returns the first maxLen bytes of text with newlines folded.
func Preview(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	return TruncateURL(text, maxLen)
}
