package tui

import tea "github.com/charmbracelet/bubbletea"

// MenuNavigationMsg asks the root model to return to the main menu.
type MenuNavigationMsg struct{}

func backToMenu() tea.Msg {
	return MenuNavigationMsg{}
}
