package models

// ChecklistItem is one entry of the fixed daily checklist. Labels are
// process-wide constants; only the Completed flag varies per record.
type ChecklistItem struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Goal is a user-defined to-do item scoped to one date.
type Goal struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ChecklistState classifies a record by its default-checklist flags.
type ChecklistState string

const (
	ChecklistNone     ChecklistState = "none"
	ChecklistPartial  ChecklistState = "partial"
	ChecklistComplete ChecklistState = "complete"
)

// DayRecord is the complete goal/hours/notes state for one calendar date,
// keyed externally by its YYYY-MM-DD date string.
type DayRecord struct {
	Checklist     []ChecklistItem `json:"checklist"`
	Goals         []Goal          `json:"goals"`
	Significances []string        `json:"significances"`
	StudyHours    float64         `json:"study_hours"`
	WasteHours    float64         `json:"waste_hours"`
}

// checklistLabels are the fixed daily goals every record carries.
var checklistLabels = []string{
	"Yellow Book",
	"Worked hard and Happy",
	"Prayed and Mindful",
}

// DefaultChecklist returns a fresh all-unchecked checklist with the fixed
// labels.
func DefaultChecklist() []ChecklistItem {
	items := make([]ChecklistItem, len(checklistLabels))
	for i, label := range checklistLabels {
		items[i] = ChecklistItem{Label: label}
	}
	return items
}

// ChecklistSize is the fixed cardinality of the default checklist.
func ChecklistSize() int {
	return len(checklistLabels)
}

// NewDayRecord returns the canonical default record: unchecked checklist, no
// goals, no significances, zero hours. Absence of a stored record is always
// equivalent to this value.
func NewDayRecord() DayRecord {
	return DayRecord{
		Checklist:     DefaultChecklist(),
		Goals:         []Goal{},
		Significances: []string{},
	}
}

// Clone returns a deep copy, safe to mutate without touching the original.
func (r DayRecord) Clone() DayRecord {
	out := r
	out.Checklist = make([]ChecklistItem, len(r.Checklist))
	copy(out.Checklist, r.Checklist)
	out.Goals = make([]Goal, len(r.Goals))
	copy(out.Goals, r.Goals)
	out.Significances = make([]string, len(r.Significances))
	copy(out.Significances, r.Significances)
	return out
}

// State derives the completion classification from the default-checklist
// flags alone: every item done, at least one done, or none done.
func (r DayRecord) State() ChecklistState {
	done := 0
	for _, item := range r.Checklist {
		if item.Completed {
			done++
		}
	}
	switch {
	case len(r.Checklist) > 0 && done == len(r.Checklist):
		return ChecklistComplete
	case done > 0:
		return ChecklistPartial
	default:
		return ChecklistNone
	}
}

// GoalsComplete reports whether the record has goals and all are completed.
func (r DayRecord) GoalsComplete() bool {
	if len(r.Goals) == 0 {
		return false
	}
	for _, g := range r.Goals {
		if !g.Completed {
			return false
		}
	}
	return true
}

// IsZero reports whether the record equals the canonical default, i.e. holds
// no user data worth persisting or summarizing.
func (r DayRecord) IsZero() bool {
	if r.StudyHours != 0 || r.WasteHours != 0 {
		return false
	}
	if len(r.Goals) != 0 || len(r.Significances) != 0 {
		return false
	}
	for _, item := range r.Checklist {
		if item.Completed {
			return false
		}
	}
	return true
}

// Normalize repairs a record loaded from an older or hand-edited blob:
// checklist is forced back to the fixed labels and cardinality (keeping
// completion flags by position), nil slices become empty, and negative hours
// are coerced to zero. Loading never rejects a record.
func (r *DayRecord) Normalize() {
	fixed := DefaultChecklist()
	for i := range fixed {
		if i < len(r.Checklist) {
			fixed[i].Completed = r.Checklist[i].Completed
		}
	}
	r.Checklist = fixed

	if r.Goals == nil {
		r.Goals = []Goal{}
	}
	if r.Significances == nil {
		r.Significances = []string{}
	}
	if r.StudyHours < 0 {
		r.StudyHours = 0
	}
	if r.WasteHours < 0 {
		r.WasteHours = 0
	}
}
