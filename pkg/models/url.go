package models

// URLEntry is a tracked URL. Entries are never mutated or removed.
type URLEntry struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// URLCreate represents data for adding a new URL
type URLCreate struct {
	URL string `json:"url" binding:"required"`
}

// SelectionUpdate represents a request to show a URL in the detail view
type SelectionUpdate struct {
	ID int `json:"id" binding:"required"`
}

// URLRow is a registry entry together with its current scrape status.
type URLRow struct {
	URLEntry
	Status Status `json:"status"`
}

// URLDetail is a registry entry with its latest scrape result.
type URLDetail struct {
	URLEntry
	Result ScrapeResult `json:"result"`
}
