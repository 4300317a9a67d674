package widget

import "web-scraping-tool/pkg/models"

// Texts shown by the detail view.
const (
	PlaceholderText = "Select a URL and start scraping to see its content"
	InProgressText  = "Scraping in progress..."
)

// DetailView is what the detail pane shows for the current selection.
type DetailView struct {
	Placeholder bool            `json:"placeholder"`
	ID          int             `json:"id,omitempty"`
	URL         string          `json:"url,omitempty"`
	Status      models.Status   `json:"status,omitempty"`
	Body        string          `json:"body"`
	Failure     *models.Failure `json:"failure,omitempty"`
}

// Render builds the detail view. Without a selection, or when the selected
// id has no scrape result, only the placeholder is shown.
func (s *State) Render() DetailView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasSelected {
		return DetailView{Placeholder: true, Body: PlaceholderText}
	}
	result, ok := s.results[s.selected]
	if !ok {
		return DetailView{Placeholder: true, Body: PlaceholderText}
	}

	view := DetailView{
		ID:     s.selected,
		Status: result.Status,
		Body:   result.Content,
	}
	if entry, ok := s.lookup(s.selected); ok {
		view.URL = entry.URL
	}

	switch result.Status {
	case models.StatusFailed:
		if result.Failure != nil {
			f := *result.Failure
			view.Failure = &f
			view.Body = f.Message
		}
	default:
		if view.Body == "" {
			view.Body = InProgressText
		}
	}
	return view
}
