package calendar

import (
	"testing"
	"time"

	"github.com/goaltime/goaltime/internal/models"
)

// mapSource is a minimal RecordSource for grid tests.
type mapSource map[string]models.DayRecord

func (s mapSource) Get(date string) models.DayRecord {
	if rec, ok := s[date]; ok {
		return rec
	}
	return models.NewDayRecord()
}

func (s mapSource) Has(date string) bool {
	_, ok := s[date]
	return ok
}

func TestGrid_March2024Shape(t *testing.T) {
	// March 2024 starts on a Friday (Sunday-first index 5) and has 31 days:
	// 5 leading cells + 31 day cells = 36, padded to 42 (6 rows).
	m := Month{Year: 2024, Month: time.March}
	cells := Grid(m, mapSource{}, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	if len(cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(cells))
	}

	leading := 0
	for _, c := range cells {
		if c.InMonth {
			break
		}
		leading++
	}
	if leading != 5 {
		t.Errorf("expected 5 leading adjacent-month cells, got %d", leading)
	}

	inMonth := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Errorf("expected 31 current-month cells, got %d", inMonth)
	}

	// Leading cells are the tail of February 2024 (leap year, 29 days).
	if cells[0].Day != 25 || cells[4].Day != 29 {
		t.Errorf("leading cells should be Feb 25-29, got %d..%d", cells[0].Day, cells[4].Day)
	}
}

func TestGrid_AlwaysMultipleOfSevenCoveringEveryDay(t *testing.T) {
	months := []Month{
		{2024, time.January},  // starts Monday, 31 days
		{2024, time.February}, // leap February
		{2024, time.June},     // starts Saturday, 30 days
		{2024, time.September},
		{2025, time.February}, // 28 days starting Saturday
		{2026, time.February}, // 28 days starting Sunday: exactly 4 rows
		{1999, time.December},
	}
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, m := range months {
		cells := Grid(m, mapSource{}, today)
		if len(cells)%7 != 0 {
			t.Errorf("%s: cell count %d is not a multiple of 7", m.Title(), len(cells))
		}

		seen := make(map[int]bool)
		for _, c := range cells {
			if c.InMonth {
				if seen[c.Day] {
					t.Errorf("%s: day %d appears twice", m.Title(), c.Day)
				}
				seen[c.Day] = true
			}
		}
		if len(seen) != m.Days() {
			t.Errorf("%s: covered %d days, want %d", m.Title(), len(seen), m.Days())
		}
	}
}

func TestGrid_CompletionColoring(t *testing.T) {
	complete := models.NewDayRecord()
	for i := range complete.Checklist {
		complete.Checklist[i].Completed = true
	}
	partial := models.NewDayRecord()
	partial.Checklist[0].Completed = true

	source := mapSource{
		"2024-06-15": complete,
		"2024-06-16": partial,
		"2024-06-17": models.NewDayRecord(),
	}

	m := Month{Year: 2024, Month: time.June}
	today := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	cells := Grid(m, source, today)

	byDate := make(map[string]Cell)
	for _, c := range cells {
		byDate[c.Date] = c
	}

	if got := byDate["2024-06-15"].State; got != models.ChecklistComplete {
		t.Errorf("all-complete day classified %v", got)
	}
	if got := byDate["2024-06-16"].State; got != models.ChecklistPartial {
		t.Errorf("partially-complete day classified %v", got)
	}
	if got := byDate["2024-06-17"].State; got != models.ChecklistNone {
		t.Errorf("untouched day classified %v", got)
	}
	if got := byDate["2024-06-18"].State; got != models.ChecklistNone {
		t.Errorf("recordless day classified %v", got)
	}
}

func TestGrid_TodayExemptFromColoring(t *testing.T) {
	complete := models.NewDayRecord()
	for i := range complete.Checklist {
		complete.Checklist[i].Completed = true
	}
	source := mapSource{"2024-06-20": complete}

	m := Month{Year: 2024, Month: time.June}
	today := time.Date(2024, 6, 20, 9, 30, 0, 0, time.UTC)
	cells := Grid(m, source, today)

	for _, c := range cells {
		if c.Date == "2024-06-20" {
			if !c.Today {
				t.Error("cell for the current date should carry the today marker")
			}
			if c.State != models.ChecklistNone {
				t.Errorf("today must stay neutral regardless of checklist, got %v", c.State)
			}
		}
	}
}

func TestGrid_IndicatorsAndPreview(t *testing.T) {
	rec := models.NewDayRecord()
	rec.Goals = []models.Goal{{Text: "a", Completed: true}, {Text: "b", Completed: true}}
	rec.Significances = []string{"one", "two", "three", "four", "five"}
	rec.StudyHours = 2.5
	source := mapSource{"2024-06-15": rec}

	cells := Grid(Month{2024, time.June}, source, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	var cell Cell
	for _, c := range cells {
		if c.Date == "2024-06-15" {
			cell = c
		}
	}

	if !cell.HasGoals || !cell.GoalsComplete {
		t.Errorf("expected complete goals indicator, got has=%v complete=%v", cell.HasGoals, cell.GoalsComplete)
	}
	if len(cell.Significances) != 3 {
		t.Errorf("preview should truncate to 3 entries, got %d", len(cell.Significances))
	}
	if cell.SignificanceCount != 5 {
		t.Errorf("count should report all 5 entries, got %d", cell.SignificanceCount)
	}
	if got := cell.HoursSummary(); got != "W:2.5" {
		t.Errorf("HoursSummary() = %q, want %q", got, "W:2.5")
	}
}

func TestHoursSummary(t *testing.T) {
	tests := []struct {
		study, waste float64
		want         string
	}{
		{0, 0, ""},
		{3, 0, "W:3"},
		{0, 1.5, "L:1.5"},
		{2, 4, "W:2 L:4"},
	}
	for _, tt := range tests {
		c := Cell{StudyHours: tt.study, WasteHours: tt.waste}
		if got := c.HoursSummary(); got != tt.want {
			t.Errorf("HoursSummary(%v, %v) = %q, want %q", tt.study, tt.waste, got, tt.want)
		}
	}
}

func TestGrid_NeverMaterializesRecords(t *testing.T) {
	source := mapSource{}
	Grid(Month{2024, time.June}, source, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if len(source) != 0 {
		t.Errorf("rendering created %d records; navigation must never mutate data", len(source))
	}
}

func TestMonth_Navigation(t *testing.T) {
	dec := Month{2023, time.December}
	if next := dec.Next(); next != (Month{2024, time.January}) {
		t.Errorf("December.Next() = %+v", next)
	}
	jan := Month{2024, time.January}
	if prev := jan.Prev(); prev != (Month{2023, time.December}) {
		t.Errorf("January.Prev() = %+v", prev)
	}
	if title := (Month{2024, time.March}).Title(); title != "March 2024" {
		t.Errorf("Title() = %q", title)
	}
}
