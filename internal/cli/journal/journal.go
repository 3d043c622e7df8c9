package journal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
)

type JournalCmd struct {
	Write JournalWriteCmd `cmd:"" help:"Write (or replace) the entry for a day. Empty text removes it."`
	Show  JournalShowCmd  `cmd:"" help:"Show the entry for a day."`
	List  JournalListCmd  `cmd:"" help:"List recent entries."`
}

type JournalWriteCmd struct {
	Text []string `arg:"" optional:"" help:"Entry text."`
	Date string   `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *JournalWriteCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	content := strings.Join(c.Text, " ")

	ctx.State.SaveJournalEntry(date, content)
	if err := ctx.Commit(); err != nil {
		return err
	}

	if strings.TrimSpace(content) == "" {
		ctx.Printf("Removed journal entry for %s\n", date)
		return nil
	}
	ctx.Printf("✓ Saved journal entry for %s\n", date)
	return nil
}

type JournalShowCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format, 'today' or 'yesterday'."`
}

func (c *JournalShowCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	e, ok := ctx.State.JournalEntry(date)
	if !ok {
		ctx.Printf("No journal entry for %s\n", date)
		return nil
	}
	ctx.Println(formatter.Header(date))
	ctx.Println(e.Content)
	return nil
}

type JournalListCmd struct {
	Limit int `help:"Maximum number of entries to show." default:"10"`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	entries := ctx.State.Journal()
	if len(entries) == 0 {
		ctx.Println("No journal entries yet.")
		return nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	for _, e := range entries {
		first := strings.SplitN(strings.TrimSpace(e.Content), "\n", 2)[0]
		ctx.Printf("%s  %s\n", formatter.Dim(e.Date), first)
	}
	if total := len(ctx.State.Journal()); total > len(entries) {
		ctx.Printf("%s\n", formatter.Dim(fmt.Sprintf("… %d older entries", total-len(entries))))
	}
	return nil
}
