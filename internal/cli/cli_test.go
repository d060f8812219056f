package cli

import (
	"path/filepath"
	"testing"

	"github.com/goaltime/goaltime/internal/record"
	"github.com/goaltime/goaltime/internal/storage"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()
	chain := storage.NewChain(storage.NewMemoryBackend())
	store := record.New(chain)
	store.LoadAll()
	return &Context{
		Store:      store,
		Chain:      chain,
		ConfigPath: filepath.Join(t.TempDir(), "goaltime.json"),
	}
}

func TestLogCmd_SetsHoursAndChecklist(t *testing.T) {
	ctx := setupTestContext(t)

	studied := 3.5
	wasted := 1.0
	cmd := &LogCmd{
		Date:    "2024-06-15",
		Studied: &studied,
		Wasted:  &wasted,
		Check:   []int{1, 3},
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	rec := ctx.Store.Get("2024-06-15")
	if rec.StudyHours != 3.5 || rec.WasteHours != 1.0 {
		t.Errorf("hours = %v/%v", rec.StudyHours, rec.WasteHours)
	}
	if !rec.Checklist[0].Completed || rec.Checklist[1].Completed || !rec.Checklist[2].Completed {
		t.Errorf("checklist flags = %+v", rec.Checklist)
	}
}

func TestLogCmd_OutOfRangeCheckIgnored(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &LogCmd{Date: "2024-06-15", Check: []int{99, 0, -1}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	rec := ctx.Store.Get("2024-06-15")
	for i, item := range rec.Checklist {
		if item.Completed {
			t.Errorf("item %d should be untouched by out-of-range numbers", i)
		}
	}
}

func TestGoalCommands_AddDoneRemove(t *testing.T) {
	ctx := setupTestContext(t)

	add := &GoalAddCmd{Date: "2024-06-15", Text: "Read 10 pages"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}

	rec := ctx.Store.Get("2024-06-15")
	if len(rec.Goals) != 1 || rec.Goals[0].Completed {
		t.Fatalf("after add: %+v", rec.Goals)
	}

	done := &GoalDoneCmd{Date: "2024-06-15", Index: 1}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("goal done failed: %v", err)
	}
	if !ctx.Store.Get("2024-06-15").Goals[0].Completed {
		t.Error("goal should be completed")
	}

	remove := &GoalRemoveCmd{Date: "2024-06-15", Index: 1}
	if err := remove.Run(ctx); err != nil {
		t.Fatalf("goal remove failed: %v", err)
	}
	if len(ctx.Store.Get("2024-06-15").Goals) != 0 {
		t.Error("goal should be removed")
	}

	if err := (&GoalDoneCmd{Date: "2024-06-15", Index: 1}).Run(ctx); err == nil {
		t.Error("completing a missing goal should error")
	}
}

func TestSigCommands_AddRemovePreservesOrder(t *testing.T) {
	ctx := setupTestContext(t)

	for _, text := range []string{"A", "B", "C"} {
		if err := (&SigAddCmd{Date: "2024-06-15", Text: text}).Run(ctx); err != nil {
			t.Fatalf("sig add failed: %v", err)
		}
	}

	if err := (&SigRemoveCmd{Date: "2024-06-15", Index: 2}).Run(ctx); err != nil {
		t.Fatalf("sig remove failed: %v", err)
	}

	got := ctx.Store.Get("2024-06-15").Significances
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("significances = %v, want [A C]", got)
	}

	if err := (&SigRemoveCmd{Date: "2024-06-15", Index: 5}).Run(ctx); err == nil {
		t.Error("removing a missing significance should error")
	}
}

func TestDebugDumpRecordCmd_MissingRecord(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &DebugDumpRecordCmd{Date: "2024-06-15"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("dumping an absent record should error")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2024-06-15"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if _, err := parseDate("15/06/2024"); err == nil {
		t.Error("invalid format accepted")
	}
	if d, err := parseDate("today"); err != nil || len(d) != 10 {
		t.Errorf("parseDate(today) = %q, %v", d, err)
	}
}
