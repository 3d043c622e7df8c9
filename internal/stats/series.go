package stats

import (
	"time"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// DailySeries returns the trailing 30 days (oldest first) of full and partial
// counts across all habits, the done count exactly one week earlier, and the
// momentum score. Full and partial weigh the same in momentum.
func DailySeries(habits []models.Habit, logs []models.HabitLog, now time.Time) []DayPoint {
	type dayCount struct{ full, partial, done int }
	counts := make(map[string]dayCount)
	for _, l := range logs {
		c := counts[l.Date]
		if l.Completed {
			c.full++
		}
		if l.Partial {
			c.partial++
		}
		if l.Done() {
			c.done++
		}
		counts[l.Date] = c
	}

	denom := len(habits)
	if denom < 1 {
		denom = 1
	}

	days := utils.TrailingDays(now, constants.SeriesWindowDays)
	series := make([]DayPoint, len(days))
	for i, date := range days {
		c := counts[date]
		prior := counts[utils.ShiftDate(date, -constants.LastWeekOffsetDays)]
		series[i] = DayPoint{
			Date:     date,
			Full:     c.full,
			Partial:  c.partial,
			LastWeek: prior.done,
			Momentum: percent(c.full+c.partial, denom),
		}
	}
	return series
}

// Distribution classifies every (habit, day) pair in the trailing 30 days,
// counting only days on or after the habit's creation date. Categories are
// returned in fully-done, done-enough, missed order with empty ones omitted.
func Distribution(habits []models.Habit, logs []models.HabitLog, now time.Time) []Bucket {
	idx := indexLogs(logs)
	var full, partial, missed int

	for _, date := range utils.TrailingDays(now, constants.DistributionWindow) {
		for _, h := range habits {
			if date < h.CreatedDay(now.Location()) {
				continue
			}
			l, ok := idx.get(h.ID, date)
			switch {
			case ok && l.Completed:
				full++
			case ok && l.Partial:
				partial++
			default:
				missed++
			}
		}
	}

	var out []Bucket
	for _, b := range []Bucket{
		{Category: constants.CategoryFull, Count: full},
		{Category: constants.CategoryPartial, Count: partial},
		{Category: constants.CategoryMissed, Count: missed},
	} {
		if b.Count > 0 {
			out = append(out, b)
		}
	}
	return out
}
