package tui

import (
	"fmt"
	"strings"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/widget"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// addURLForm registers a single URL and returns to the menu.
type addURLForm struct {
	state    *widget.State
	urlInput textinput.Model
	err      error
	added    *models.URLEntry
}

// NewAddURLForm creates a new add URL form.
func NewAddURLForm(state *widget.State) tea.Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com"
	urlInput.Focus()
	urlInput.CharLimit = 2048
	urlInput.Width = 60

	return &addURLForm{
		state:    state,
		urlInput: urlInput,
	}
}

func (m *addURLForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m *addURLForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Any key leaves the success view
		if m.added != nil {
			return m, backToMenu
		}

		switch keyMsg.String() {
		case "esc":
			return m, backToMenu
		case "enter":
			entry, err := m.state.Add(m.urlInput.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.added = entry
			m.urlInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *addURLForm) View() string {
	var s strings.Builder
	s.WriteString(renderTitle("Add URL"))

	if m.added != nil {
		s.WriteString(renderSuccess("URL added") + "\n\n")
		s.WriteString(fmt.Sprintf("  ID:  %d\n", m.added.ID))
		s.WriteString(fmt.Sprintf("  URL: %s\n\n", m.added.URL))
		s.WriteString(helpStyle.Render("Press any key to return to the menu..."))
		return s.String()
	}

	s.WriteString("URL (required):\n")
	s.WriteString(m.urlInput.View())
	if m.err != nil {
		s.WriteString("\n\n" + renderInlineError(m.err))
	}
	s.WriteString("\n\n")
	s.WriteString(AddURLFormHelpContent())
	return s.String()
}
