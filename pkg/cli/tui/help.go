package tui

import (
	"fmt"
	"strings"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// RootMenuHelpContent returns help for root menu
func RootMenuHelpContent() string {
	items := []HelpItem{
		{"1-2", "Select menu option (Dashboard / Add URL)"},
		{"q / Esc", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// DashboardHelpContent returns help for the scrape dashboard
func DashboardHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Navigate URL list"},
		{"Enter", "Show URL in detail pane"},
		{"s / Space", "Start scraping (ignored while running)"},
		{"a", "Add a URL (Enter to save, Esc to cancel)"},
		{"PgUp / PgDn", "Scroll detail pane"},
		{"m", "Return to menu"},
		{"q / Esc", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// AddURLFormHelpContent returns help for the add URL form
func AddURLFormHelpContent() string {
	items := []HelpItem{
		{"Enter", "Save URL"},
		{"Esc", "Back to menu"},
		{"Ctrl+C", "Quit"},
	}
	return renderHelpItems(items)
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	for _, item := range items {
		keyStyle := boldStyle.Foreground(colorPrimary)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
