package dashboard

// ScrapeFinishedMsg is emitted when a scrape started from the dashboard
// has recorded its result
type ScrapeFinishedMsg struct {
	ID int
}
