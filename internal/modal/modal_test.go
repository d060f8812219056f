package modal

import (
	"math"
	"reflect"
	"testing"

	"github.com/goaltime/goaltime/internal/models"
	"github.com/goaltime/goaltime/internal/record"
	"github.com/goaltime/goaltime/internal/storage"
)

func newController(t *testing.T) (*Controller, *record.Store) {
	t.Helper()
	store := record.New(storage.NewMemoryBackend())
	store.LoadAll()
	return NewController(store), store
}

func TestOpen_TransitionsToTracking(t *testing.T) {
	c, _ := newController(t)

	if c.State() != StateClosed {
		t.Fatal("controller should start closed")
	}
	c.Open("2024-06-15")
	if c.State() != StateTracking {
		t.Errorf("Open should land on the tracking tab, got state %v", c.State())
	}
	if c.Date() != "2024-06-15" {
		t.Errorf("Date() = %q", c.Date())
	}
}

func TestSwitchTab_TogglesBetweenOpenStates(t *testing.T) {
	c, _ := newController(t)
	c.Open("2024-06-15")

	c.SwitchTab()
	if c.State() != StateLogs {
		t.Errorf("expected logs tab, got %v", c.State())
	}
	c.SwitchTab()
	if c.State() != StateTracking {
		t.Errorf("expected tracking tab, got %v", c.State())
	}

	// SwitchTab while closed stays closed.
	c.Close()
	c.SwitchTab()
	if c.State() != StateClosed {
		t.Errorf("SwitchTab on closed modal moved to %v", c.State())
	}
}

func TestClose_DiscardsAllEdits(t *testing.T) {
	c, store := newController(t)
	c.Open("2024-06-15")

	c.ToggleChecklistItem(0)
	c.SetHours(3, 1)
	c.AddGoal("Read 10 pages")
	c.AddSignificance("met an old friend")
	c.Close()

	rec := store.Get("2024-06-15")
	if rec.Checklist[0].Completed || rec.StudyHours != 0 {
		t.Error("checklist/hours edits leaked past Close")
	}
	if len(rec.Goals) != 0 || len(rec.Significances) != 0 {
		t.Error("goal and significance edits must also be discarded on Close")
	}
}

func TestSave_CommitsDraftAtomically(t *testing.T) {
	c, store := newController(t)
	c.Open("2024-06-15")

	c.ToggleChecklistItem(0)
	c.ToggleChecklistItem(1)
	c.ToggleChecklistItem(2)
	c.SetHours(2.5, 0.5)
	c.AddGoal("Read 10 pages")
	c.ToggleGoal(0)
	c.AddSignificance("finished the draft")
	c.Save()

	if c.State() != StateClosed {
		t.Errorf("Save should close the modal, got %v", c.State())
	}

	rec := store.Get("2024-06-15")
	if rec.State() != models.ChecklistComplete {
		t.Errorf("saved checklist state = %v", rec.State())
	}
	if rec.StudyHours != 2.5 || rec.WasteHours != 0.5 {
		t.Errorf("saved hours = %v/%v", rec.StudyHours, rec.WasteHours)
	}
	if len(rec.Goals) != 1 || !rec.Goals[0].Completed {
		t.Errorf("saved goals = %+v", rec.Goals)
	}
	if len(rec.Significances) != 1 {
		t.Errorf("saved significances = %v", rec.Significances)
	}
}

func TestAddGoal_IndicatorState(t *testing.T) {
	c, _ := newController(t)
	c.Open("2024-06-15")

	c.AddGoal("Read 10 pages")
	draft := c.Draft()
	if len(draft.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(draft.Goals))
	}
	if draft.GoalsComplete() {
		t.Error("a fresh goal should leave the goals indicator incomplete")
	}
}

func TestRemoveSignificance_PreservesOrder(t *testing.T) {
	c, _ := newController(t)
	c.Open("2024-06-15")

	for _, s := range []string{"A", "B", "C"} {
		c.AddSignificance(s)
	}
	c.RemoveSignificance(1)

	want := []string{"A", "C"}
	if got := c.Draft().Significances; !reflect.DeepEqual(got, want) {
		t.Errorf("significances after remove = %v, want %v", got, want)
	}
}

func TestRemove_OutOfRangeIsNoOp(t *testing.T) {
	c, _ := newController(t)
	c.Open("2024-06-15")
	c.AddGoal("only")
	c.AddSignificance("only")

	c.RemoveGoal(5)
	c.RemoveGoal(-1)
	c.RemoveSignificance(5)
	c.RemoveSignificance(-1)
	c.ToggleChecklistItem(99)
	c.ToggleGoal(99)

	draft := c.Draft()
	if len(draft.Goals) != 1 || len(draft.Significances) != 1 {
		t.Error("out-of-range removal must not change the draft")
	}
}

func TestSetHours_CoercesInvalidInput(t *testing.T) {
	c, _ := newController(t)
	c.Open("2024-06-15")

	c.SetHours(-3, math.NaN())
	draft := c.Draft()
	if draft.StudyHours != 0 || draft.WasteHours != 0 {
		t.Errorf("invalid hours should coerce to 0, got %v/%v", draft.StudyHours, draft.WasteHours)
	}

	c.SetHoursStrings("2.5", "not a number")
	draft = c.Draft()
	if draft.StudyHours != 2.5 || draft.WasteHours != 0 {
		t.Errorf("string hours parsed to %v/%v", draft.StudyHours, draft.WasteHours)
	}
}

func TestMutations_IgnoredWhileClosed(t *testing.T) {
	c, store := newController(t)

	c.AddGoal("ghost")
	c.SetHours(5, 5)
	c.Save()

	if store.Len() != 0 {
		t.Error("mutations on a closed modal must not reach the store")
	}
}

func TestReopen_SeesSavedEdits(t *testing.T) {
	c, _ := newController(t)

	c.Open("2024-06-15")
	c.AddGoal("persisted")
	c.Save()

	c.Open("2024-06-15")
	if len(c.Draft().Goals) != 1 || c.Draft().Goals[0].Text != "persisted" {
		t.Errorf("reopened draft = %+v", c.Draft().Goals)
	}
}

func TestLogLines_Summary(t *testing.T) {
	c, _ := newController(t)
	c.Open("2024-06-15")
	c.ToggleChecklistItem(0)
	c.AddGoal("Read 10 pages")
	c.AddSignificance("note")
	c.SetHours(3, 1)

	lines := c.LogLines()
	if len(lines) == 0 {
		t.Fatal("expected summary lines")
	}
	if lines[0] != "Daily goals: 1/3" {
		t.Errorf("first line = %q", lines[0])
	}
	last := lines[len(lines)-1]
	if last != "Hours: studied 3, wasted 1" {
		t.Errorf("hours line = %q", last)
	}
}
