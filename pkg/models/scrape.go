package models

// Status is the scrape state of a single URL.
type Status string

const (
	StatusNotRun   Status = "not_run"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
	StatusFailed   Status = "failed"
)

// Failure describes why a scrape did not produce content.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ScrapeResult is the latest scrape outcome for a URL id.
// Content is empty while running; Failure is set only when Status is StatusFailed.
type ScrapeResult struct {
	Content string   `json:"content"`
	Status  Status   `json:"status"`
	Failure *Failure `json:"failure,omitempty"`
}
