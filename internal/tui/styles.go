package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	ledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Background(lipgloss.Color("235")).
			Padding(0, 2).
			Bold(true)

	beadFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	beadEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	arabicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))

	selectedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)
