package plans

import (
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
)

type PlanCmd struct {
	Show   PlanShowCmd   `cmd:"" help:"Show the priorities for a day." default:"1"`
	Set    PlanSetCmd    `cmd:"" help:"Set the text of a priority slot."`
	Note   PlanNoteCmd   `cmd:"" help:"Attach notes to a priority slot."`
	Toggle PlanToggleCmd `cmd:"" help:"Toggle completion of a priority slot."`
	Clear  PlanClearCmd  `cmd:"" help:"Replace a day's plan with empty slots."`
}

type PlanShowCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	ctx.Printf("%s\n", FormatPlan(ctx.State.DayPlanOrEmpty(date)))
	return nil
}

// FormatPlan renders the priority slots of a plan
func FormatPlan(plan models.DayPlan) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Priorities for " + plan.Date))
	b.WriteString("\n")
	for i, t := range plan.Tasks {
		mark := formatter.Dim("[ ]")
		if t.Completed {
			mark = formatter.StyleGreen.Render("[x]")
		}
		text := t.Text
		if text == "" {
			text = formatter.Dim("(empty)")
		}
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, mark, text))
		if t.Notes != "" {
			b.WriteString(fmt.Sprintf("      %s\n", formatter.Dim(t.Notes)))
		}
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("%d of %d done", plan.CompletedCount(), plan.FilledCount())))
	return b.String()
}

type PlanSetCmd struct {
	Slot int    `arg:"" help:"Slot number (1-5)."`
	Text string `arg:"" help:"Priority text."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *PlanSetCmd) Run(ctx *cli.Context) error {
	return editSlot(ctx, c.Date, c.Slot, func(date string, i int) bool {
		return ctx.State.SetPlanTaskText(date, i, strings.TrimSpace(c.Text))
	})
}

type PlanNoteCmd struct {
	Slot  int    `arg:"" help:"Slot number (1-5)."`
	Notes string `arg:"" help:"Notes text; empty clears the notes."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *PlanNoteCmd) Run(ctx *cli.Context) error {
	return editSlot(ctx, c.Date, c.Slot, func(date string, i int) bool {
		return ctx.State.SetPlanTaskNotes(date, i, strings.TrimSpace(c.Notes))
	})
}

type PlanToggleCmd struct {
	Slot int    `arg:"" help:"Slot number (1-5)."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *PlanToggleCmd) Run(ctx *cli.Context) error {
	return editSlot(ctx, c.Date, c.Slot, func(date string, i int) bool {
		return ctx.State.TogglePlanTask(date, i)
	})
}

func editSlot(ctx *cli.Context, rawDate string, slot int, edit func(date string, i int) bool) error {
	date, err := ctx.ResolveDate(rawDate)
	if err != nil {
		return err
	}
	plan := ctx.State.DayPlanOrEmpty(date)
	i, err := cli.ParseSlot(slot, len(plan.Tasks))
	if err != nil {
		return err
	}

	edit(date, i)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("%s\n", FormatPlan(ctx.State.DayPlanOrEmpty(date)))
	return nil
}

type PlanClearCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Yes  bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *PlanClearCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	ok, err := ctx.Confirm(fmt.Sprintf("Clear all priorities for %s?", date), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Clear cancelled.")
		return nil
	}

	ctx.State.SaveDayPlan(date, models.NewDayPlan(date, constants.MaxDailyTasks).Tasks)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Cleared plan for %s\n", date)
	return nil
}
