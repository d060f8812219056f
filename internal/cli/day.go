package cli

import (
	"fmt"

	"github.com/goaltime/goaltime/internal/modal"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	fmt.Printf("Record for %s:\n\n", date)

	if !ctx.Store.Has(date) {
		fmt.Println("  No entries yet")
		return nil
	}

	for _, line := range modal.Summary(ctx.Store.Get(date)) {
		fmt.Println("  " + line)
	}
	return nil
}
