package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/goaltime/goaltime/internal/calendar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateCalendar:
			return m.updateCalendar(msg)
		case StateModal:
			return m.updateModal(msg)
		case StateFormGoal, StateFormSig, StateFormHours:
			return m.updateForm(msg)
		}
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.selected--
		m.clampSelected()

	case key.Matches(msg, m.keys.Right):
		m.selected++
		m.clampSelected()

	case key.Matches(msg, m.keys.Up):
		m.selected -= 7
		m.clampSelected()

	case key.Matches(msg, m.keys.Down):
		m.selected += 7
		m.clampSelected()

	case key.Matches(msg, m.keys.PrevMonth):
		// Navigation only changes which dates are rendered, never the data.
		m.month = m.month.Prev()
		m.clampSelected()

	case key.Matches(msg, m.keys.NextMonth):
		m.month = m.month.Next()
		m.clampSelected()

	case key.Matches(msg, m.keys.Today):
		now := time.Now()
		m.month = calendar.MonthOf(now)
		m.selected = now.Day()

	case key.Matches(msg, m.keys.Open):
		m.modal.Open(m.selectedDate())
		m.cursor = 0
		m.state = StateModal
	}

	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.modal.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.modal.Close()
		m.state = StateCalendar

	case key.Matches(msg, m.keys.Tab):
		m.modal.SwitchTab()

	case key.Matches(msg, m.keys.Save):
		m.modal.Save()
		m.state = StateCalendar

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Open):
		m.toggleRow()

	case key.Matches(msg, m.keys.Remove):
		m.removeRow()
		m.clampCursor()

	case key.Matches(msg, m.keys.AddGoal):
		m.formData = &formModel{}
		m.form = newTextForm("New additional goal", m.formData)
		m.state = StateFormGoal
		return m, m.form.Init()

	case key.Matches(msg, m.keys.AddSig):
		m.formData = &formModel{}
		m.form = newTextForm("New significance", m.formData)
		m.state = StateFormSig
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Hours):
		draft := m.modal.Draft()
		m.formData = &formModel{
			Study: fmt.Sprintf("%g", draft.StudyHours),
			Waste: fmt.Sprintf("%g", draft.WasteHours),
		}
		m.form = newHoursForm(m.formData)
		m.state = StateFormHours
		return m, m.form.Init()

	default:
		// Digits address the fixed checklist directly.
		if len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9" {
			m.modal.ToggleChecklistItem(int(msg.String()[0]-'1'))
		}
	}

	return m, nil
}

// toggleRow flips the item under the cursor: checklist item or goal.
// Significance rows have no completion flag, so they are left alone.
func (m *Model) toggleRow() {
	draft := m.modal.Draft()
	n := len(draft.Checklist)
	switch {
	case m.cursor < n:
		m.modal.ToggleChecklistItem(m.cursor)
	case m.cursor < n+len(draft.Goals):
		m.modal.ToggleGoal(m.cursor - n)
	}
}

// removeRow deletes the goal or significance under the cursor. Checklist
// items are fixed and cannot be removed.
func (m *Model) removeRow() {
	draft := m.modal.Draft()
	n := len(draft.Checklist)
	switch {
	case m.cursor < n:
		// fixed checklist
	case m.cursor < n+len(draft.Goals):
		m.modal.RemoveGoal(m.cursor - n)
	default:
		m.modal.RemoveSignificance(m.cursor - n - len(draft.Goals))
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateFormGoal:
			if m.formData.Value != "" {
				m.modal.AddGoal(m.formData.Value)
			}
		case StateFormSig:
			if m.formData.Value != "" {
				m.modal.AddSignificance(m.formData.Value)
			}
		case StateFormHours:
			m.modal.SetHoursStrings(m.formData.Study, m.formData.Waste)
		}
		m.form = nil
		m.formData = nil
		m.state = StateModal

	case huh.StateAborted:
		m.form = nil
		m.formData = nil
		m.state = StateModal
	}

	return m, cmd
}
