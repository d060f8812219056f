package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(9).
			Height(2).
			Padding(0, 1)

	otherMonthStyle = cellStyle.
			Foreground(lipgloss.Color("238"))

	completeStyle = cellStyle.
			Foreground(lipgloss.Color("42"))

	partialStyle = cellStyle.
			Foreground(lipgloss.Color("214"))

	todayStyle = cellStyle.
			Foreground(lipgloss.Color("205")).
			Bold(true)

	selectedStyle = cellStyle.
			Reverse(true)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	sigMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	healthyDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	unhealthyDotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)
