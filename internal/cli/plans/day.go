package plans

import (
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
)

// DayCmd shows everything recorded for a single date
type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format, 'today' or 'yesterday'."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Habits"))
	b.WriteString("\n")
	habits := ctx.State.Habits()
	if len(habits) == 0 {
		b.WriteString(formatter.Dim("No habits.") + "\n")
	}
	for _, h := range habits {
		log, ok := ctx.State.HabitLog(h.ID, date)
		status := formatter.Dim("not done")
		switch {
		case ok && log.Completed:
			status = formatter.StyleGreen.Render("fully done")
		case ok && log.Partial:
			status = formatter.StylePartial.Render("done enough")
		}
		b.WriteString(fmt.Sprintf("  %-20s %s\n", h.Name, status))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header("Micro-wins"))
	b.WriteString("\n")
	done := 0
	for _, w := range ctx.State.MicroWins() {
		if ctx.State.MicroWinDone(w.ID, date) {
			b.WriteString("  " + formatter.StyleGreen.Render("✓") + " " + w.Text + "\n")
			done++
		}
	}
	if done == 0 {
		b.WriteString(formatter.Dim("  None yet.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatPlan(ctx.State.DayPlanOrEmpty(date)))
	b.WriteString("\n\n")

	b.WriteString(formatter.Header("Journal"))
	b.WriteString("\n")
	if e, ok := ctx.State.JournalEntry(date); ok {
		b.WriteString(e.Content + "\n")
	} else {
		b.WriteString(formatter.Dim("No entry.") + "\n")
	}

	ctx.Printf("%s", b.String())
	return nil
}
