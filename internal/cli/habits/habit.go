package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/state"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits with today's status."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit a habit's name or objectives."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and all of its logs."`
	Move    HabitMoveCmd    `cmd:"" help:"Move a habit to a new position."`
	Done    HabitDoneCmd    `cmd:"" help:"Toggle full completion for a day."`
	Partial HabitPartialCmd `cmd:"" help:"Toggle partial (minimum objective) completion for a day."`
}

type HabitAddCmd struct {
	Name         string `arg:"" help:"Habit name."`
	Objective    string `help:"Full objective, e.g. '30 minutes of reading'." short:"o"`
	MinObjective string `help:"Minimum objective that still counts as partial." short:"m"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if _, _, err := ctx.FindHabit(name); err == nil {
		return fmt.Errorf("habit with name %q already exists", name)
	}

	h := ctx.State.AddHabit(state.NewHabit{
		Name:         name,
		Objective:    c.Objective,
		MinObjective: c.MinObjective,
	})
	if err := ctx.Commit(); err != nil {
		return err
	}

	ctx.Printf("✓ Added habit: %s\n", h.Name)
	return nil
}

type HabitListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	habits := ctx.State.Habits()
	if len(habits) == 0 {
		ctx.Println("No habits found. Add one with 'momentum habit add'.")
		return nil
	}

	rows := make([][]string, 0, len(habits))
	for i, h := range habits {
		log, _ := ctx.State.HabitLog(h.ID, date)
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			StatusMark(log),
			h.Name,
			h.Objective,
			formatter.Dim(h.MinObjective),
		})
	}

	ctx.Println(formatter.Header("Habits for " + date))
	ctx.Printf("%s", formatter.RenderTable([]string{"#", "", "Habit", "Objective", "Minimum"}, rows))
	return nil
}

// StatusMark renders a habit log as a single status glyph
func StatusMark(log models.HabitLog) string {
	switch {
	case log.Completed:
		return formatter.StyleGreen.Render("●")
	case log.Partial:
		return formatter.StylePartial.Render("◐")
	default:
		return formatter.Dim("○")
	}
}

type HabitEditCmd struct {
	Habit        string  `arg:"" help:"Habit number, id or name."`
	Name         *string `help:"New name."`
	Objective    *string `help:"New full objective." short:"o"`
	MinObjective *string `help:"New minimum objective." short:"m"`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	h, _, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	if c.Name == nil && c.Objective == nil && c.MinObjective == nil {
		return fmt.Errorf("nothing to change: pass --name, --objective or --min-objective")
	}
	if c.Name != nil {
		trimmed := strings.TrimSpace(*c.Name)
		if trimmed == "" {
			return fmt.Errorf("habit name cannot be empty")
		}
		c.Name = &trimmed
	}

	ctx.State.UpdateHabit(h.ID, models.HabitPatch{
		Name:         c.Name,
		Objective:    c.Objective,
		MinObjective: c.MinObjective,
	})
	if err := ctx.Commit(); err != nil {
		return err
	}

	updated, _ := ctx.State.Habit(h.ID)
	ctx.Printf("✓ Updated habit: %s\n", updated.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit number, id or name."`
	Yes   bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	h, _, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	ok, err := ctx.Confirm(fmt.Sprintf("Delete %q and its entire history?", h.Name), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	ctx.State.DeleteHabit(h.ID)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted habit: %s\n", h.Name)
	return nil
}

type HabitMoveCmd struct {
	Habit    string `arg:"" help:"Habit number, id or name."`
	Position int    `arg:"" help:"New 1-based position."`
}

func (c *HabitMoveCmd) Run(ctx *cli.Context) error {
	h, from, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	// Out-of-range targets leave the order untouched
	if !ctx.State.ReorderHabits(from, c.Position-1) {
		ctx.Printf("Position %d is out of range; order unchanged.\n", c.Position)
		return nil
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Moved %s to position %d\n", h.Name, c.Position)
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit number, id or name."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	return toggle(ctx, c.Habit, c.Date, constants.ToggleFull)
}

type HabitPartialCmd struct {
	Habit string `arg:"" help:"Habit number, id or name."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitPartialCmd) Run(ctx *cli.Context) error {
	return toggle(ctx, c.Habit, c.Date, constants.TogglePartial)
}

func toggle(ctx *cli.Context, ref, rawDate string, mode constants.ToggleMode) error {
	h, _, err := ctx.FindHabit(ref)
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(rawDate)
	if err != nil {
		return err
	}

	log, ok := ctx.State.ToggleHabit(h.ID, date, mode)
	if err := ctx.Commit(); err != nil {
		return err
	}

	switch {
	case !ok:
		ctx.Printf("%s Cleared %s for %s\n", StatusMark(log), h.Name, date)
	case log.Completed:
		ctx.Printf("%s %s fully done for %s\n", StatusMark(log), h.Name, date)
	default:
		ctx.Printf("%s %s done enough for %s\n", StatusMark(log), h.Name, date)
	}
	return nil
}
