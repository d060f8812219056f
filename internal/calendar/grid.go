package calendar

import (
	"fmt"
	"time"

	"github.com/goaltime/goaltime/internal/constants"
	"github.com/goaltime/goaltime/internal/models"
)

// RecordSource is the read side of the record store the grid derives cell
// state from. Rendering never mutates records, so Has guards every lookup
// and absent dates stay absent.
type RecordSource interface {
	Get(date string) models.DayRecord
	Has(date string) bool
}

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" argument.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
	}
	return MonthOf(t), nil
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Title formats the month heading, e.g. "March 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Days returns the number of days in the month, via day-zero-of-next-month
// arithmetic.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index of day 1 (0=Sunday..6=Saturday).
func (m Month) FirstWeekday() int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateString formats a day of this month as the record key.
func (m Month) DateString(day int) string {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
}

// Cell is the structured descriptor the presentation layer paints a single
// grid cell from.
type Cell struct {
	Date              string
	Day               int
	InMonth           bool
	Today             bool
	State             models.ChecklistState
	HasGoals          bool
	GoalsComplete     bool
	SignificanceCount int
	Significances     []string
	StudyHours        float64
	WasteHours        float64
}

// HoursSummary renders the "W:x L:y" stats line, or "" when both are zero
// (the line is omitted entirely in that case).
func (c Cell) HoursSummary() string {
	if c.StudyHours <= 0 && c.WasteHours <= 0 {
		return ""
	}
	out := ""
	if c.StudyHours > 0 {
		out += fmt.Sprintf("W:%g", c.StudyHours)
	}
	if c.WasteHours > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("L:%g", c.WasteHours)
	}
	return out
}

// Grid produces the cells for a month: leading adjacent-month cells so the
// grid starts on Sunday, one cell per day, and trailing adjacent-month cells
// padding to complete weeks. The total is always a multiple of 7 with the
// minimum number of rows covering the month.
//
// Derivation is pure: the same month, source content, and "today" always
// yield the same cells, and no record is created or mutated.
func Grid(m Month, source RecordSource, today time.Time) []Cell {
	leading := m.FirstWeekday()
	days := m.Days()
	total := leading + days
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]Cell, 0, total)

	// Leading cells come from the tail of the previous month.
	prev := m.Prev()
	prevDays := prev.Days()
	for i := 0; i < leading; i++ {
		day := prevDays - leading + 1 + i
		cells = append(cells, Cell{Date: prev.DateString(day), Day: day})
	}

	for day := 1; day <= days; day++ {
		cells = append(cells, dayCell(m, day, source, today))
	}

	// Trailing cells from the head of the next month.
	next := m.Next()
	for day := 1; len(cells) < total; day++ {
		cells = append(cells, Cell{Date: next.DateString(day), Day: day})
	}

	return cells
}

func dayCell(m Month, day int, source RecordSource, today time.Time) Cell {
	date := m.DateString(day)
	cell := Cell{
		Date:    date,
		Day:     day,
		InMonth: true,
		Today:   isToday(m, day, today),
		State:   models.ChecklistNone,
	}

	if source == nil || !source.Has(date) {
		return cell
	}

	rec := source.Get(date)

	// Today is exempt from completion coloring so an unfinished current day
	// is never flagged as incomplete.
	if !cell.Today {
		cell.State = rec.State()
	}

	cell.HasGoals = len(rec.Goals) > 0
	cell.GoalsComplete = rec.GoalsComplete()

	cell.SignificanceCount = len(rec.Significances)
	preview := rec.Significances
	if len(preview) > constants.SignificancePreviewMax {
		preview = preview[:constants.SignificancePreviewMax]
	}
	cell.Significances = append([]string(nil), preview...)

	cell.StudyHours = rec.StudyHours
	cell.WasteHours = rec.WasteHours

	return cell
}

// isToday is an exact gregorian field match, deliberately not
// timezone-normalized.
func isToday(m Month, day int, today time.Time) bool {
	return m.Year == today.Year() && m.Month == today.Month() && day == today.Day()
}

// Weekdays are the Sunday-first column headers.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
