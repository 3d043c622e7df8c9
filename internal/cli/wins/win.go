package wins

import (
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
)

type WinCmd struct {
	Add    WinAddCmd    `cmd:"" help:"Add a micro-win."`
	List   WinListCmd   `cmd:"" help:"List micro-wins with their status for a day."`
	Delete WinDeleteCmd `cmd:"" help:"Delete a micro-win and its history."`
	Move   WinMoveCmd   `cmd:"" help:"Move a micro-win to a new position."`
	Toggle WinToggleCmd `cmd:"" help:"Toggle a micro-win for a day."`
}

type WinAddCmd struct {
	Text string `arg:"" help:"Micro-win description."`
}

func (c *WinAddCmd) Run(ctx *cli.Context) error {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return fmt.Errorf("micro-win text cannot be empty")
	}
	w := ctx.State.AddMicroWin(text)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Added micro-win: %s\n", w.Text)
	return nil
}

type WinListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *WinListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	wins := ctx.State.MicroWins()
	if len(wins) == 0 {
		ctx.Println("No micro-wins found. Add one with 'momentum win add'.")
		return nil
	}

	ctx.Println(formatter.Header("Micro-wins for " + date))
	done := 0
	for i, w := range wins {
		mark := formatter.Dim("[ ]")
		if ctx.State.MicroWinDone(w.ID, date) {
			mark = formatter.StyleGreen.Render("[x]")
			done++
		}
		ctx.Printf("%2d. %s %s\n", i+1, mark, w.Text)
	}
	ctx.Printf("\n%s\n", formatter.Dim(fmt.Sprintf("%d of %d done", done, len(wins))))
	return nil
}

type WinDeleteCmd struct {
	Win string `arg:"" help:"Micro-win number, id or text."`
}

func (c *WinDeleteCmd) Run(ctx *cli.Context) error {
	w, _, err := ctx.FindMicroWin(c.Win)
	if err != nil {
		return err
	}
	ctx.State.DeleteMicroWin(w.ID)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted micro-win: %s\n", w.Text)
	return nil
}

type WinMoveCmd struct {
	Win      string `arg:"" help:"Micro-win number, id or text."`
	Position int    `arg:"" help:"New 1-based position."`
}

func (c *WinMoveCmd) Run(ctx *cli.Context) error {
	w, from, err := ctx.FindMicroWin(c.Win)
	if err != nil {
		return err
	}
	if !ctx.State.ReorderMicroWins(from, c.Position-1) {
		ctx.Printf("Position %d is out of range; order unchanged.\n", c.Position)
		return nil
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Moved %s to position %d\n", w.Text, c.Position)
	return nil
}

type WinToggleCmd struct {
	Win  string `arg:"" help:"Micro-win number, id or text."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *WinToggleCmd) Run(ctx *cli.Context) error {
	w, _, err := ctx.FindMicroWin(c.Win)
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	logged := ctx.State.ToggleMicroWin(w.ID, date)
	if err := ctx.Commit(); err != nil {
		return err
	}
	if logged {
		ctx.Printf("✓ %s for %s\n", w.Text, date)
	} else {
		ctx.Printf("Unmarked %s for %s\n", w.Text, date)
	}
	return nil
}
