package cli

import (
	"fmt"

	"github.com/goaltime/goaltime/internal/modal"
)

type LogCmd struct {
	Date    string   `arg:"" help:"Date to log (YYYY-MM-DD or 'today')." default:"today"`
	Studied *float64 `short:"s" help:"Hours studied."`
	Wasted  *float64 `short:"w" help:"Hours wasted."`
	Check   []int    `help:"Daily checklist items to mark done (1-based)."`
	Uncheck []int    `help:"Daily checklist items to mark not done (1-based)."`
}

// Run edits a day through the modal controller: open, stage, save. The CLI
// goes through the same mutation entry points as the TUI.
func (c *LogCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	m := modal.NewController(ctx.Store)
	m.Open(date)

	draft := m.Draft()
	study, waste := draft.StudyHours, draft.WasteHours
	if c.Studied != nil {
		study = *c.Studied
	}
	if c.Wasted != nil {
		waste = *c.Wasted
	}
	m.SetHours(study, waste)

	// Out-of-range item numbers are ignored, matching the controller's
	// no-op guarantee.
	for _, n := range c.Check {
		if i := n - 1; i >= 0 && i < len(m.Draft().Checklist) && !m.Draft().Checklist[i].Completed {
			m.ToggleChecklistItem(i)
		}
	}
	for _, n := range c.Uncheck {
		if i := n - 1; i >= 0 && i < len(m.Draft().Checklist) && m.Draft().Checklist[i].Completed {
			m.ToggleChecklistItem(i)
		}
	}

	m.Save()
	if err := ctx.Store.SaveErr(); err != nil {
		fmt.Printf("Logged %s (warning: persistence degraded: %v)\n", date, err)
		return nil
	}
	fmt.Printf("Logged %s\n", date)
	return nil
}
