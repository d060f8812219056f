package cli

import (
	"fmt"

	"github.com/goaltime/goaltime/internal/modal"
)

type SigAddCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')."`
	Text string `arg:"" help:"Significance note."`
}

func (c *SigAddCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	m := modal.NewController(ctx.Store)
	m.Open(date)
	m.AddSignificance(c.Text)
	m.Save()

	fmt.Printf("Added significance to %s\n", date)
	return nil
}

type SigRemoveCmd struct {
	Date  string `arg:"" help:"Date (YYYY-MM-DD or 'today')."`
	Index int    `arg:"" help:"Note number (1-based, see 'sig list')."`
}

func (c *SigRemoveCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	m := modal.NewController(ctx.Store)
	m.Open(date)
	if c.Index < 1 || c.Index > len(m.Draft().Significances) {
		m.Close()
		return fmt.Errorf("no significance %d on %s", c.Index, date)
	}
	m.RemoveSignificance(c.Index - 1)
	m.Save()

	fmt.Printf("Removed significance %d from %s\n", c.Index, date)
	return nil
}

type SigListCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *SigListCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	if !ctx.Store.Has(date) {
		fmt.Printf("No significances on %s\n", date)
		return nil
	}

	rec := ctx.Store.Get(date)
	if len(rec.Significances) == 0 {
		fmt.Printf("No significances on %s\n", date)
		return nil
	}

	fmt.Printf("Significances for %s:\n", date)
	for i, s := range rec.Significances {
		fmt.Printf("  %d. %s\n", i+1, s)
	}
	return nil
}
