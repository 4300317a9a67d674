package urls

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/widget"
)

// FormatTableOutput formats URL rows as a table for CLI output
func FormatTableOutput(rows []models.URLRow) string {
	if len(rows) == 0 {
		return "No URLs found."
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderHeader())
	b.WriteString("\n")

	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tURL\tStatus")
	fmt.Fprintln(w, strings.Repeat("─", 4)+"\t"+strings.Repeat("─", 50)+"\t"+strings.Repeat("─", 8))

	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\n",
			row.ID,
			TruncateURL(row.URL, 50),
			StatusLabel(row.Status),
		)
	}

	w.Flush()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %d URL(s)\n", len(rows)))

	return b.String()
}

// FormatAddedMessage formats the confirmation for a newly added URL
func FormatAddedMessage(entry *models.URLEntry) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("✓ URL added\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:  %d\n", entry.ID))
	b.WriteString(fmt.Sprintf("  URL: %s\n", entry.URL))
	b.WriteString("\n")

	return b.String()
}

// FormatDetail formats the detail view the way the dashboard's right pane shows it
func FormatDetail(view widget.DetailView) string {
	if view.Placeholder {
		return FormatEmptyState(view.Body)
	}

	var b strings.Builder
	b.WriteString("\n")
	if view.Failure != nil {
		b.WriteString(fmt.Sprintf("✗ Scrape failed (%s)\n", view.Failure.Kind))
	} else {
		b.WriteString(fmt.Sprintf("✓ Scrape %s\n", StatusLabel(view.Status)))
	}
	b.WriteString(fmt.Sprintf("\nURL: %s\n\n", view.URL))
	b.WriteString(view.Body)
	b.WriteString("\n")

	return b.String()
}

// FormatURLDetail formats one URL's latest result in the same shape as FormatDetail
func FormatURLDetail(detail models.URLDetail) string {
	view := widget.DetailView{
		ID:     detail.ID,
		URL:    detail.URL,
		Status: detail.Result.Status,
		Body:   detail.Result.Content,
	}
	switch {
	case detail.Result.Failure != nil:
		f := *detail.Result.Failure
		view.Failure = &f
		view.Body = f.Message
	case view.Body == "":
		view.Body = widget.InProgressText
	}
	return FormatDetail(view)
}

// FormatScrapeSummary counts finished and failed rows after a batch scrape
func FormatScrapeSummary(rows []models.URLRow) string {
	var finished, failed int
	for _, row := range rows {
		switch row.Status {
		case models.StatusFinished:
			finished++
		case models.StatusFailed:
			failed++
		}
	}
	return fmt.Sprintf("Scraped %d URL(s): %d finished, %d failed\n", len(rows), finished, failed)
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

func renderHeader() string {
	return "Tracked URLs"
}

// FormatEmptyState formats an empty state message
func FormatEmptyState(message string) string {
	return fmt.Sprintf("\n%s\n", message)
}

// WriteToStderr writes formatted output to stderr
func WriteToStderr(content string) {
	fmt.Fprint(os.Stderr, content)
}
