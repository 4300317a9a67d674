package tui

import (
	"context"
	"strings"

	"web-scraping-tool/pkg/services"

	tea "github.com/charmbracelet/bubbletea"
)

// rootModel is the Bubble Tea model that acts as an app shell for multiple flows.
// It presents a simple menu and then hands control to a specific flow model.
type rootModel struct {
	// Shared dependencies
	ctx     context.Context
	tracker *services.ScrapeTracker

	// Current active flow (when nil, we are in the main menu)
	current tea.Model

	// Last known terminal size, replayed to newly launched flows
	width  int
	height int

	showHelp bool
}

// NewRootModel constructs the root app-shell model that can launch multiple flows.
func NewRootModel(ctx context.Context, tracker *services.ScrapeTracker) tea.Model {
	return &rootModel{
		ctx:     ctx,
		tracker: tracker,
	}
}

func (m *rootModel) Init() tea.Cmd {
	return nil
}

// IsDelegating reports whether a flow is active.
func (m *rootModel) IsDelegating() bool {
	return m.current != nil
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MenuNavigationMsg:
		m.current = nil
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// If we have an active flow, delegate all messages to it.
	if m.current != nil {
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.showHelp {
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case handleQuitKeys(key):
		return m, tea.Quit
	case key == "?":
		m.showHelp = true
		return m, nil
	case key == "1":
		return m, m.launch(NewDashboardModel(m.ctx, m.tracker))
	case key == "2":
		return m, m.launch(NewAddURLForm(m.tracker.State()))
	}

	return m, nil
}

func (m *rootModel) launch(flow tea.Model) tea.Cmd {
	m.current = flow
	cmds := []tea.Cmd{flow.Init()}
	if m.width > 0 && m.height > 0 {
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *rootModel) View() string {
	// When a flow is active, defer to its view.
	if m.current != nil {
		return m.current.View()
	}

	var b strings.Builder

	b.WriteString(renderTitle("Web Scraping Tool"))
	b.WriteString(renderDivider(60))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(boldStyle.Render("Keyboard shortcuts:") + "\n\n")
		b.WriteString(RootMenuHelpContent())
		b.WriteString("\n" + helpStyle.Render("Press any key to close.") + "\n")
		return b.String()
	}

	b.WriteString(boldStyle.Render("Select an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " Scrape dashboard (list, scrape, view)\n")
	b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Add URL\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press the number of an option, '?' for help, or 'q' / Esc to quit.") + "\n")

	return b.String()
}
