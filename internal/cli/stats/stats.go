package stats

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
	"github.com/julianstephens/momentum/internal/stats"
)

type StatsCmd struct {
	Dashboard StatsDashboardCmd `cmd:"" help:"Show per-habit scores, momentum and distribution." default:"1"`
	Heatmap   StatsHeatmapCmd   `cmd:"" help:"Show the 90-day heatmap of one habit."`
}

type StatsDashboardCmd struct{}

func (c *StatsDashboardCmd) Run(ctx *cli.Context) error {
	habits := ctx.State.Habits()
	if len(habits) == 0 {
		ctx.Println("No habits yet. Add one with 'momentum habit add'.")
		return nil
	}
	logs := ctx.State.Logs()
	now := ctx.Now()

	ctx.Println(formatter.Header("Habits"))
	ctx.Println(formatter.FormatSummaries(stats.Summarize(habits, logs, now)))
	ctx.Println()
	ctx.Println(formatter.FormatMomentum(stats.DailySeries(habits, logs, now)))
	ctx.Println(formatter.Header("Last 30 days"))
	ctx.Println(formatter.FormatDistribution(stats.Distribution(habits, logs, now)))
	return nil
}

type StatsHeatmapCmd struct {
	Habit string `arg:"" help:"Habit number, id or name."`
}

func (c *StatsHeatmapCmd) Run(ctx *cli.Context) error {
	h, _, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	logs := ctx.State.Logs()
	now := ctx.Now()

	ctx.Println(formatter.Header(h.Name + " (90 days)"))
	ctx.Println(formatter.RenderHeatmap(stats.Heatmap(h, logs, now)))
	ctx.Println()
	ctx.Printf("Consistency: %s  Balance: %s  Streak: %s\n",
		formatter.Score(stats.Consistency(h, logs, now)),
		formatter.Score(stats.Balance(h, logs, now)),
		fmt.Sprintf("%d (best %d)", stats.CurrentStreak(h, logs, now), stats.BestStreak(h, logs)),
	)
	return nil
}
