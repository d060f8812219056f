package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/goaltime/goaltime/internal/calendar"
	"github.com/goaltime/goaltime/internal/models"
)

type MonthCmd struct {
	Month string `arg:"" help:"Month to show (YYYY-MM)." optional:""`
}

func (c *MonthCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	now := time.Now()
	month := calendar.MonthOf(now)
	if c.Month != "" {
		var err error
		month, err = calendar.ParseMonth(c.Month)
		if err != nil {
			return err
		}
	}

	cells := calendar.Grid(month, ctx.Store, now)
	fmt.Println(renderMonth(month, cells))
	return nil
}

// renderMonth lays the cell descriptors out as a plain-text grid, one
// two-line row block per week.
func renderMonth(month calendar.Month, cells []calendar.Cell) string {
	var b strings.Builder

	b.WriteString(month.Title() + "\n")
	for _, wd := range calendar.Weekdays {
		fmt.Fprintf(&b, "%-8s", wd)
	}
	b.WriteString("\n")

	for week := 0; week*7 < len(cells); week++ {
		row := cells[week*7 : week*7+7]
		for _, cell := range row {
			fmt.Fprintf(&b, "%-8s", dayLabel(cell))
		}
		b.WriteString("\n")
		for _, cell := range row {
			fmt.Fprintf(&b, "%-8s", statsLabel(cell))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func dayLabel(cell calendar.Cell) string {
	if !cell.InMonth {
		return fmt.Sprintf("(%d)", cell.Day)
	}

	label := fmt.Sprintf("%d", cell.Day)
	if cell.Today {
		return label + "*"
	}
	switch cell.State {
	case models.ChecklistComplete:
		label += " ✓"
	case models.ChecklistPartial:
		label += " ~"
	}
	if cell.SignificanceCount > 0 {
		label += "!"
	}
	return label
}

func statsLabel(cell calendar.Cell) string {
	if !cell.InMonth {
		return ""
	}
	return cell.HoursSummary()
}
