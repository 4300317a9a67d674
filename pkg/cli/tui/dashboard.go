package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"web-scraping-tool/pkg/cli/tui/dashboard"
	"web-scraping-tool/pkg/logger"
	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/services"
	"web-scraping-tool/pkg/widget"
)

// dashboardModel shows the URL list next to the detail pane and starts scrapes.
// All widget state lives in the tracker; the model only keeps cursor and layout.
type dashboardModel struct {
	ctx     context.Context
	tracker *services.ScrapeTracker

	rows   []models.URLRow
	cursor int
	mode   int

	input   textinput.Model
	spinner spinner.Model
	detail  viewport.Model
	err     error
	notice  string

	width  int
	height int
}

// NewDashboardModel creates the scrape dashboard, wrapped with help and menu support.
func NewDashboardModel(ctx context.Context, tracker *services.ScrapeTracker) tea.Model {
	return NewViewportWrapper(newDashboardModel(ctx, tracker), ViewportConfig{
		Title:       "Scrape Tracker",
		ShowHeader:  true,
		ShowFooter:  true,
		EnableHelp:  true,
		EnableMenu:  true,
		HelpContent: DashboardHelpContent,
		MinWidth:    60,
		MinHeight:   12,
	})
}

func newDashboardModel(ctx context.Context, tracker *services.ScrapeTracker) *dashboardModel {
	input := textinput.New()
	input.Placeholder = "https://example.com"
	input.CharLimit = 2048
	input.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	m := &dashboardModel{
		ctx:     ctx,
		tracker: tracker,
		mode:    dashboard.ModeBrowse,
		input:   input,
		spinner: sp,
		detail:  viewport.New(0, 0),
		width:   dashboard.DefaultWidth,
		height:  dashboard.DefaultHeight,
	}
	m.resize()
	return m
}

func (m *dashboardModel) Init() tea.Cmd {
	if m.anyRunning() {
		return m.spinner.Tick
	}
	return nil
}

// CapturingInput reports whether keystrokes belong to the add-URL input.
func (m *dashboardModel) CapturingInput() bool {
	return m.mode == dashboard.ModeAdding
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case dashboard.ScrapeFinishedMsg:
		logger.Log("dashboard: scrape finished, id=%d", msg.ID)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.anyRunning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		if m.mode == dashboard.ModeAdding {
			return m.updateAdding(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == dashboard.ModeAdding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *dashboardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.notice = ""

	if sel, ok := handleListNavigation(key, m.cursor, len(m.rows)); ok {
		m.cursor = sel
		return m, nil
	}

	switch key {
	case "enter":
		if row, ok := m.currentRow(); ok {
			m.tracker.State().Select(row.ID)
			m.refresh()
		}
		return m, nil

	case "s", " ":
		return m, m.startScrape()

	case "a":
		m.mode = dashboard.ModeAdding
		m.err = nil
		m.input.Reset()
		return m, m.input.Focus()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *dashboardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopAdding()
		return m, nil

	case "enter":
		entry, err := m.tracker.State().Add(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		logger.Log("dashboard: added url, id=%d", entry.ID)
		m.stopAdding()
		m.refresh()
		for i, row := range m.rows {
			if row.ID == entry.ID {
				m.cursor = i
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *dashboardModel) stopAdding() {
	m.mode = dashboard.ModeBrowse
	m.err = nil
	m.input.Blur()
	m.input.Reset()
}

// startScrape starts the highlighted URL unless it is already running.
// The selection is left alone until the scrape completes.
func (m *dashboardModel) startScrape() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}

	task, err := m.tracker.TryStartScrape(m.ctx, row.ID)
	if errors.Is(err, widget.ErrScrapeRunning) {
		m.notice = "Scrape already running"
		return nil
	}
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	m.refresh()

	return tea.Batch(m.spinner.Tick, waitForScrape(task))
}

func waitForScrape(task *services.Task) tea.Cmd {
	return func() tea.Msg {
		<-task.Done()
		return dashboard.ScrapeFinishedMsg{ID: task.ID}
	}
}

func (m *dashboardModel) currentRow() (models.URLRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return models.URLRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m *dashboardModel) anyRunning() bool {
	for _, row := range m.tracker.State().Rows() {
		if row.Status == models.StatusRunning {
			return true
		}
	}
	return false
}

// refresh reloads rows and the detail pane from the widget state.
func (m *dashboardModel) refresh() {
	m.rows = m.tracker.State().Rows()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.detail.SetContent(renderDetailView(m.tracker.State().Render(), m.detail.Width))
}

func (m *dashboardModel) paneSizes() (listW, detailW, paneH int) {
	listW = m.width * 2 / 5
	if listW < 30 {
		listW = 30
	}
	// Two bordered panes with one column of padding each side
	detailW = m.width - listW - 8
	if detailW < 20 {
		detailW = 20
	}
	paneH = m.height - dashboard.ChromeHeight
	if paneH < dashboard.MinPaneHeight {
		paneH = dashboard.MinPaneHeight
	}
	return listW, detailW, paneH
}

func (m *dashboardModel) resize() {
	_, detailW, paneH := m.paneSizes()
	m.detail.Width = detailW
	m.detail.Height = paneH
	m.refresh()
}

func (m *dashboardModel) View() string {
	listW, detailW, paneH := m.paneSizes()

	list := paneStyle.Width(listW).Height(paneH).Render(m.renderList(listW, paneH))
	detail := paneStyle.Width(detailW + 2).Height(paneH).Render(m.detail.View())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	b.WriteString("\n")

	switch {
	case m.mode == dashboard.ModeAdding:
		b.WriteString(boldStyle.Render("Add URL: ") + m.input.View())
		if m.err != nil {
			b.WriteString("\n" + renderInlineError(m.err))
		}
	case m.err != nil:
		b.WriteString(renderInlineError(m.err))
	case m.notice != "":
		b.WriteString(renderWarning(m.notice))
	default:
		b.WriteString(helpStyle.Render("s scrape • enter show • a add URL"))
	}

	return b.String()
}

func (m *dashboardModel) renderList(width, height int) string {
	if len(m.rows) == 0 {
		return renderEmptyState("No URLs yet. Press 'a' to add one.")
	}

	// Keep the cursor visible when the list is taller than the pane
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := m.rows[i]
		lines = append(lines, renderURLRow(row, m.statusIcon(row.Status), i == m.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (m *dashboardModel) statusIcon(status models.Status) string {
	switch status {
	case models.StatusRunning:
		return m.spinner.View()
	case models.StatusFinished:
		return successStyle.Render("✓")
	case models.StatusFailed:
		return errorStyle.Render("✗")
	default:
		return mutedStyle.Render("·")
	}
}
