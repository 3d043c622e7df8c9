package formatter

import (
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/stats"
)

const (
	heatFull    = "■"
	heatPartial = "▪"
	heatNone    = "·"
	heatBefore  = " "
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderHeatmap lays the cells out in rows of seven days, oldest first.
// Days before the habit existed render blank unless they carry a log.
func RenderHeatmap(cells []stats.HeatCell) string {
	var b strings.Builder
	for i, c := range cells {
		if i%7 == 0 {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Dim(c.Date) + "  ")
		}

		switch {
		case c.Score >= constants.HeatScoreFull:
			b.WriteString(StyleGreen.Render(heatFull))
		case c.Score >= constants.HeatScorePartial:
			b.WriteString(StylePartial.Render(heatPartial))
		case c.BeforeCreation:
			b.WriteString(heatBefore)
		default:
			b.WriteString(StyleDim.Render(heatNone))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s full  %s partial  %s missed", heatFull, heatPartial, heatNone)))
	return b.String()
}

// Sparkline maps momentum values (0-100) to block characters
func Sparkline(series []stats.DayPoint) string {
	var b strings.Builder
	for _, p := range series {
		v := p.Momentum
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		b.WriteRune(sparkBlocks[v*(len(sparkBlocks)-1)/100])
	}
	return b.String()
}

// FormatMomentum renders the rolling series with today's figures and the
// same weekday one week earlier.
func FormatMomentum(series []stats.DayPoint) string {
	var b strings.Builder
	b.WriteString(Header("Momentum (30 days)"))
	b.WriteString("\n")
	if len(series) == 0 {
		b.WriteString(Dim("No data."))
		return b.String()
	}

	b.WriteString(StyleAccent.Render(Sparkline(series)))
	b.WriteString("\n")
	b.WriteString(Dim(series[0].Date + " → " + series[len(series)-1].Date))
	b.WriteString("\n\n")

	today := series[len(series)-1]
	b.WriteString(fmt.Sprintf("Today: %s  %s full  %s partial  %s\n",
		Score(today.Momentum),
		StyleGreen.Render(fmt.Sprint(today.Full)),
		StylePartial.Render(fmt.Sprint(today.Partial)),
		Dim(fmt.Sprintf("(last week: %d done)", today.LastWeek)),
	))
	return b.String()
}

// FormatSummaries renders the per-habit dashboard table
func FormatSummaries(summaries []stats.HabitSummary) string {
	rows := make([][]string, 0, len(summaries))
	for i, s := range summaries {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			s.Habit.Name,
			RenderProgress(s.Consistency, 10),
			Score(s.Balance),
			fmt.Sprintf("%d / %d", s.CurrentStreak, s.BestStreak),
		})
	}
	return RenderTable([]string{"#", "Habit", "Consistency", "Balance", "Streak (now/best)"}, rows)
}

// FormatDistribution renders the category totals as proportional bars
func FormatDistribution(buckets []stats.Bucket) string {
	total := 0
	for _, bk := range buckets {
		total += bk.Count
	}
	if total == 0 {
		return Dim("No eligible habit days yet.")
	}

	rows := make([][]string, 0, len(buckets))
	for _, bk := range buckets {
		rows = append(rows, []string{bk.Category, fmt.Sprint(bk.Count), RenderProgress(bk.Count*100/total, 20)})
	}
	return RenderTable([]string{"Category", "Days", "Share"}, rows)
}
