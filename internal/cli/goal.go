package cli

import (
	"fmt"

	"github.com/goaltime/goaltime/internal/modal"
)

type GoalAddCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')."`
	Text string `arg:"" help:"Goal text."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	m := modal.NewController(ctx.Store)
	m.Open(date)
	m.AddGoal(c.Text)
	m.Save()

	fmt.Printf("Added goal to %s: %s\n", date, c.Text)
	return nil
}

type GoalDoneCmd struct {
	Date  string `arg:"" help:"Date (YYYY-MM-DD or 'today')."`
	Index int    `arg:"" help:"Goal number (1-based, see 'goal list')."`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	m := modal.NewController(ctx.Store)
	m.Open(date)
	if c.Index < 1 || c.Index > len(m.Draft().Goals) {
		m.Close()
		return fmt.Errorf("no goal %d on %s", c.Index, date)
	}
	if m.Draft().Goals[c.Index-1].Completed {
		m.Close()
		fmt.Printf("Goal %d on %s is already done\n", c.Index, date)
		return nil
	}
	m.ToggleGoal(c.Index - 1)
	m.Save()

	fmt.Printf("Completed goal %d on %s\n", c.Index, date)
	return nil
}

type GoalRemoveCmd struct {
	Date  string `arg:"" help:"Date (YYYY-MM-DD or 'today')."`
	Index int    `arg:"" help:"Goal number (1-based, see 'goal list')."`
}

func (c *GoalRemoveCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	m := modal.NewController(ctx.Store)
	m.Open(date)
	if c.Index < 1 || c.Index > len(m.Draft().Goals) {
		m.Close()
		return fmt.Errorf("no goal %d on %s", c.Index, date)
	}
	m.RemoveGoal(c.Index - 1)
	m.Save()

	fmt.Printf("Removed goal %d from %s\n", c.Index, date)
	return nil
}

type GoalListCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	if !ctx.Store.Has(date) {
		fmt.Printf("No additional goals on %s\n", date)
		return nil
	}

	rec := ctx.Store.Get(date)
	if len(rec.Goals) == 0 {
		fmt.Printf("No additional goals on %s\n", date)
		return nil
	}

	fmt.Printf("Additional goals for %s:\n", date)
	for i, g := range rec.Goals {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		fmt.Printf("  %d. [%s] %s\n", i+1, mark, g.Text)
	}
	return nil
}
