package modal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goaltime/goaltime/internal/models"
)

// State is the modal's position in its three-state machine.
type State int

const (
	StateClosed State = iota
	StateTracking
	StateLogs
)

// RecordStore is the mutation boundary the controller commits through.
type RecordStore interface {
	Get(date string) models.DayRecord
	Put(date string, rec models.DayRecord)
}

// Controller drives the day modal. Opening a date snapshots its record into
// a draft; every edit, including goal and significance list edits, lands on
// the draft only. Save commits the whole draft atomically; Close discards it.
// Nothing touches the store between Open and Save.
type Controller struct {
	store RecordStore
	state State
	date  string
	draft models.DayRecord
}

func NewController(store RecordStore) *Controller {
	return &Controller{store: store}
}

func (c *Controller) State() State {
	return c.state
}

// Date returns the date under edit, or "" when closed.
func (c *Controller) Date() string {
	if c.state == StateClosed {
		return ""
	}
	return c.date
}

// Draft returns the record as currently edited.
func (c *Controller) Draft() models.DayRecord {
	return c.draft
}

// Open loads the record for a date into a fresh draft and shows the
// tracking tab.
func (c *Controller) Open(date string) {
	c.date = date
	c.draft = c.store.Get(date)
	c.state = StateTracking
}

// Close discards the draft, including any goal or significance edits.
func (c *Controller) Close() {
	c.state = StateClosed
	c.date = ""
	c.draft = models.DayRecord{}
}

// SwitchTab toggles between the tracking and logs views.
func (c *Controller) SwitchTab() {
	switch c.state {
	case StateTracking:
		c.state = StateLogs
	case StateLogs:
		c.state = StateTracking
	}
}

// Save commits the draft as the date's complete replacement record and
// closes the modal.
func (c *Controller) Save() {
	if c.state == StateClosed {
		return
	}
	c.store.Put(c.date, c.draft)
	c.Close()
}

// ToggleChecklistItem flips one fixed-checklist flag. Out-of-range is a no-op.
func (c *Controller) ToggleChecklistItem(i int) {
	if c.state == StateClosed || i < 0 || i >= len(c.draft.Checklist) {
		return
	}
	c.draft.Checklist[i].Completed = !c.draft.Checklist[i].Completed
}

// SetHours records studied/wasted hours. Negative or non-finite values
// coerce to 0; invalid input never errors.
func (c *Controller) SetHours(study, waste float64) {
	if c.state == StateClosed {
		return
	}
	c.draft.StudyHours = sanitizeHours(study)
	c.draft.WasteHours = sanitizeHours(waste)
}

// SetHoursStrings parses free-form numeric input, coercing anything
// unparseable to 0.
func (c *Controller) SetHoursStrings(study, waste string) {
	c.SetHours(parseHours(study), parseHours(waste))
}

// AddGoal appends an additional goal to the draft.
func (c *Controller) AddGoal(text string) {
	if c.state == StateClosed {
		return
	}
	c.draft.Goals = append(c.draft.Goals, models.Goal{Text: text})
}

// ToggleGoal flips one additional goal's completion flag.
func (c *Controller) ToggleGoal(i int) {
	if c.state == StateClosed || i < 0 || i >= len(c.draft.Goals) {
		return
	}
	c.draft.Goals[i].Completed = !c.draft.Goals[i].Completed
}

// RemoveGoal deletes the goal at index i, re-indexing the rest.
// A non-existent index is a no-op.
func (c *Controller) RemoveGoal(i int) {
	if c.state == StateClosed || i < 0 || i >= len(c.draft.Goals) {
		return
	}
	c.draft.Goals = append(c.draft.Goals[:i], c.draft.Goals[i+1:]...)
}

// AddSignificance appends a free-text note to the draft.
func (c *Controller) AddSignificance(text string) {
	if c.state == StateClosed {
		return
	}
	c.draft.Significances = append(c.draft.Significances, text)
}

// RemoveSignificance deletes the note at index i, preserving the order of
// the remaining entries. A non-existent index is a no-op.
func (c *Controller) RemoveSignificance(i int) {
	if c.state == StateClosed || i < 0 || i >= len(c.draft.Significances) {
		return
	}
	c.draft.Significances = append(c.draft.Significances[:i], c.draft.Significances[i+1:]...)
}

// LogLines renders the read-only summary shown on the logs tab.
func (c *Controller) LogLines() []string {
	return Summary(c.draft)
}

// Summary derives the logs-tab text for any record.
func Summary(rec models.DayRecord) []string {
	var lines []string

	done := 0
	for _, item := range rec.Checklist {
		if item.Completed {
			done++
		}
	}
	lines = append(lines, fmt.Sprintf("Daily goals: %d/%d", done, len(rec.Checklist)))
	for _, item := range rec.Checklist {
		lines = append(lines, "  "+checkbox(item.Completed)+" "+item.Label)
	}

	if len(rec.Goals) > 0 {
		lines = append(lines, fmt.Sprintf("Additional goals (%d):", len(rec.Goals)))
		for _, g := range rec.Goals {
			lines = append(lines, "  "+checkbox(g.Completed)+" "+g.Text)
		}
	}

	if len(rec.Significances) > 0 {
		lines = append(lines, fmt.Sprintf("Significances (%d):", len(rec.Significances)))
		for _, s := range rec.Significances {
			lines = append(lines, "  • "+s)
		}
	}

	if rec.StudyHours > 0 || rec.WasteHours > 0 {
		lines = append(lines, fmt.Sprintf("Hours: studied %g, wasted %g", rec.StudyHours, rec.WasteHours))
	}

	return lines
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func sanitizeHours(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func parseHours(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
