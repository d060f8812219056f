package models

import "testing"

func TestNewDayRecord_CanonicalDefault(t *testing.T) {
	r := NewDayRecord()

	if len(r.Checklist) != ChecklistSize() {
		t.Fatalf("expected %d checklist items, got %d", ChecklistSize(), len(r.Checklist))
	}
	for i, item := range r.Checklist {
		if item.Completed {
			t.Errorf("checklist item %d should start unchecked", i)
		}
		if item.Label == "" {
			t.Errorf("checklist item %d has empty label", i)
		}
	}
	if len(r.Goals) != 0 || len(r.Significances) != 0 {
		t.Errorf("expected empty goals and significances, got %d and %d", len(r.Goals), len(r.Significances))
	}
	if r.StudyHours != 0 || r.WasteHours != 0 {
		t.Errorf("expected zero hours, got study=%v waste=%v", r.StudyHours, r.WasteHours)
	}
	if !r.IsZero() {
		t.Error("canonical default should report IsZero")
	}
}

func TestState_Derivation(t *testing.T) {
	tests := []struct {
		name      string
		completed []bool
		want      ChecklistState
	}{
		{"all unchecked", []bool{false, false, false}, ChecklistNone},
		{"one checked", []bool{true, false, false}, ChecklistPartial},
		{"two checked", []bool{true, false, true}, ChecklistPartial},
		{"all checked", []bool{true, true, true}, ChecklistComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDayRecord()
			for i, done := range tt.completed {
				r.Checklist[i].Completed = done
			}
			if got := r.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalsComplete(t *testing.T) {
	r := NewDayRecord()
	if r.GoalsComplete() {
		t.Error("record with no goals should not report goals complete")
	}

	r.Goals = append(r.Goals, Goal{Text: "Read 10 pages"})
	if r.GoalsComplete() {
		t.Error("record with an open goal should not report goals complete")
	}

	r.Goals[0].Completed = true
	if !r.GoalsComplete() {
		t.Error("record with every goal done should report goals complete")
	}
}

func TestClone_IsDeep(t *testing.T) {
	r := NewDayRecord()
	r.Goals = append(r.Goals, Goal{Text: "original"})
	r.Significances = append(r.Significances, "note")

	c := r.Clone()
	c.Checklist[0].Completed = true
	c.Goals[0].Text = "changed"
	c.Significances[0] = "changed"

	if r.Checklist[0].Completed {
		t.Error("clone checklist mutation leaked into original")
	}
	if r.Goals[0].Text != "original" {
		t.Error("clone goal mutation leaked into original")
	}
	if r.Significances[0] != "note" {
		t.Error("clone significance mutation leaked into original")
	}
}

func TestNormalize_RepairsLoadedRecord(t *testing.T) {
	r := DayRecord{
		Checklist:  []ChecklistItem{{Label: "stale label", Completed: true}},
		StudyHours: -2,
		WasteHours: -1,
	}
	r.Normalize()

	if len(r.Checklist) != ChecklistSize() {
		t.Fatalf("expected checklist restored to %d items, got %d", ChecklistSize(), len(r.Checklist))
	}
	if !r.Checklist[0].Completed {
		t.Error("completion flag at position 0 should survive normalization")
	}
	if r.Checklist[0].Label != DefaultChecklist()[0].Label {
		t.Errorf("label should be forced back to the fixed constant, got %q", r.Checklist[0].Label)
	}
	if r.Checklist[1].Completed || r.Checklist[2].Completed {
		t.Error("missing positions should default to unchecked")
	}
	if r.StudyHours != 0 || r.WasteHours != 0 {
		t.Errorf("negative hours should coerce to zero, got study=%v waste=%v", r.StudyHours, r.WasteHours)
	}
	if r.Goals == nil || r.Significances == nil {
		t.Error("nil slices should become empty slices")
	}
}
