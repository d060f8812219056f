package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/goaltime/goaltime/internal/calendar"
	"github.com/goaltime/goaltime/internal/modal"
	"github.com/goaltime/goaltime/internal/record"
	"github.com/goaltime/goaltime/internal/storage"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateModal
	StateFormGoal
	StateFormSig
	StateFormHours
)

// Model is the top-level bubbletea model: a month calendar plus the day
// modal driven by the modal.Controller. All record reads go through the
// store; all writes go through the controller.
type Model struct {
	store    *record.Store
	chain    *storage.Chain
	modal    *modal.Controller
	state    SessionState
	month    calendar.Month
	selected int // day of the shown month
	cursor   int // row cursor inside the tracking tab

	form     *huh.Form
	formData *formModel

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewModel(store *record.Store, chain *storage.Chain) Model {
	now := time.Now()
	return Model{
		store:    store,
		chain:    chain,
		modal:    modal.NewController(store),
		state:    StateCalendar,
		month:    calendar.MonthOf(now),
		selected: now.Day(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// cells renders the current month through the pure grid function.
func (m Model) cells() []calendar.Cell {
	return calendar.Grid(m.month, m.store, time.Now())
}

// selectedDate is the record key of the highlighted day.
func (m Model) selectedDate() string {
	return m.month.DateString(m.selected)
}

// clampSelected keeps the highlighted day inside the shown month after
// navigation.
func (m *Model) clampSelected() {
	if m.selected < 1 {
		m.selected = 1
	}
	if days := m.month.Days(); m.selected > days {
		m.selected = days
	}
}

// trackingRows is the number of cursor-addressable rows on the tracking tab:
// the fixed checklist, then goals, then significances.
func (m Model) trackingRows() int {
	draft := m.modal.Draft()
	return len(draft.Checklist) + len(draft.Goals) + len(draft.Significances)
}

func (m *Model) clampCursor() {
	if rows := m.trackingRows(); m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// formModel backs the huh inputs. It is held by pointer so the bound
// values survive bubbletea's model copies.
type formModel struct {
	Value string
	Study string
	Waste string
}

func newTextForm(title string, fm *formModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Value),
		),
	)
}

func newHoursForm(fm *formModel) *huh.Form {
	validateHours := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("enter a number of hours")
		}
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hours studied").
				Placeholder("0").
				Value(&fm.Study).
				Validate(validateHours),
			huh.NewInput().
				Title("Hours wasted").
				Placeholder("0").
				Value(&fm.Waste).
				Validate(validateHours),
		),
	)
}

// statusLine summarizes backend health, the equivalent of the storage
// indicator lights.
func (m Model) statusLine() string {
	out := ""
	for _, s := range m.chain.Status() {
		dot := healthyDotStyle.Render("●")
		if !s.Healthy {
			dot = unhealthyDotStyle.Render("●")
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s %s", dot, s.Name)
	}
	if err := m.store.SaveErr(); err != nil {
		out += "  " + dangerStyle.Render("last save failed")
	}
	return out
}
