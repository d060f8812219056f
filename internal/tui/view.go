package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goaltime/goaltime/internal/calendar"
	"github.com/goaltime/goaltime/internal/modal"
	"github.com/goaltime/goaltime/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCalendar:
		content = m.viewCalendar()
	case StateModal:
		content = m.viewModal()
	case StateFormGoal, StateFormSig, StateFormHours:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleStyle.Render(m.month.Title()),
		"  ",
		m.statusLine(),
	)
	b.WriteString(header + "\n\n")

	var cols []string
	for _, wd := range calendar.Weekdays {
		cols = append(cols, headerStyle.Width(9).Render(wd))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n")

	cells := m.cells()
	for week := 0; week*7 < len(cells); week++ {
		var row []string
		for _, cell := range cells[week*7 : week*7+7] {
			row = append(row, m.renderCell(cell))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	return b.String()
}

// renderCell paints one grid cell from its descriptor: day number with
// indicator marks on the first line, the hours summary on the second.
func (m Model) renderCell(cell calendar.Cell) string {
	style := cellStyle
	switch {
	case !cell.InMonth:
		style = otherMonthStyle
	case cell.Today:
		style = todayStyle
	case cell.State == models.ChecklistComplete:
		style = completeStyle
	case cell.State == models.ChecklistPartial:
		style = partialStyle
	}
	if cell.InMonth && cell.Day == m.selected {
		style = selectedStyle
	}

	label := fmt.Sprintf("%d", cell.Day)
	if cell.Today {
		label += "•"
	}
	if cell.HasGoals {
		if cell.GoalsComplete {
			label += " +"
		} else {
			label += " ·"
		}
	}
	if cell.SignificanceCount > 0 {
		label += sigMarkStyle.Render("!")
	}

	stats := statsStyle.Render(cell.HoursSummary())

	return style.Render(label + "\n" + stats)
}

func (m Model) viewModal() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.modal.Date()) + "\n")
	b.WriteString(m.viewTabs() + "\n\n")

	if m.modal.State() == modal.StateLogs {
		b.WriteString(m.viewLogs())
	} else {
		b.WriteString(m.viewTracking())
	}

	box := modalStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) viewTabs() string {
	tracking, logs := activeTabStyle, inactiveTabStyle
	if m.modal.State() == modal.StateLogs {
		tracking, logs = inactiveTabStyle, activeTabStyle
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		tracking.Render("Tracking"),
		logs.Render("Logs"),
	)
}

func (m Model) viewTracking() string {
	draft := m.modal.Draft()
	var b strings.Builder
	row := 0

	b.WriteString(headerStyle.Render("Daily goals") + "\n")
	for _, item := range draft.Checklist {
		b.WriteString(m.renderRow(row, checkbox(item.Completed)+" "+item.Label))
		row++
	}

	b.WriteString("\n" + headerStyle.Render("Additional goals") + "\n")
	if len(draft.Goals) == 0 {
		b.WriteString("  (none, press 'a' to add)\n")
	}
	for _, g := range draft.Goals {
		b.WriteString(m.renderRow(row, checkbox(g.Completed)+" "+g.Text))
		row++
	}

	b.WriteString("\n" + headerStyle.Render("Significances") + "\n")
	if len(draft.Significances) == 0 {
		b.WriteString("  (none, press 'n' to add)\n")
	}
	for _, s := range draft.Significances {
		b.WriteString(m.renderRow(row, "• "+s))
		row++
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Hours studied: %g   Hours wasted: %g   (H to edit)\n", draft.StudyHours, draft.WasteHours)

	return b.String()
}

func (m Model) renderRow(row int, text string) string {
	if row == m.cursor {
		return cursorStyle.Render("› "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m Model) viewLogs() string {
	lines := m.modal.LogLines()
	if len(lines) == 0 {
		return "No entries for this day.\n"
	}
	return strings.Join(lines, "\n") + "\n"
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
