package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// Heatmap scores the trailing 90 days of one habit: 3 for full, 1 for
// partial, 0 otherwise. Days before the habit existed are kept in the grid.
func Heatmap(habit models.Habit, logs []models.HabitLog, now time.Time) []HeatCell {
	idx := indexLogs(logs)
	created := habit.CreatedDay(now.Location())

	days := utils.TrailingDays(now, constants.HeatmapWindowDays)
	cells := make([]HeatCell, len(days))
	for i, date := range days {
		score := constants.HeatScoreNone
		if l, ok := idx.get(habit.ID, date); ok {
			switch {
			case l.Completed:
				score = constants.HeatScoreFull
			case l.Partial:
				score = constants.HeatScorePartial
			}
		}
		cells[i] = HeatCell{Date: date, Score: score, BeforeCreation: date < created}
	}
	return cells
}

// Consistency is the share of the trailing 30 days, on or after creation, with
// any completion. The denominator is always 30 regardless of habit age.
func Consistency(habit models.Habit, logs []models.HabitLog, now time.Time) int {
	idx := indexLogs(logs)
	created := habit.CreatedDay(now.Location())

	points := 0
	for _, date := range utils.TrailingDays(now, constants.ConsistencyWindowDays) {
		if date >= created && idx.done(habit.ID, date) {
			points++
		}
	}
	return clamp(percent(points, constants.ConsistencyWindowDays), 0, 100)
}

// Balance scores one habit over the trailing 30 days: 100 points for every
// full or partial day, out of 3000.
func Balance(habit models.Habit, logs []models.HabitLog, now time.Time) int {
	idx := indexLogs(logs)
	points := 0
	for _, date := range utils.TrailingDays(now, constants.BalanceWindowDays) {
		if idx.done(habit.ID, date) {
			points += 100
		}
	}
	return percent(points, constants.BalanceWindowDays*100)
}

// CurrentStreak counts consecutive done days ending today. A streak that ended
// yesterday still counts while today has no completion yet.
func CurrentStreak(habit models.Habit, logs []models.HabitLog, now time.Time) int {
	idx := indexLogs(logs)
	today := utils.FormatDate(now)

	date := today
	if !idx.done(habit.ID, date) {
		date = utils.ShiftDate(today, -1)
	}

	streak := 0
	for idx.done(habit.ID, date) {
		streak++
		date = utils.ShiftDate(date, -1)
	}
	return streak
}

// BestStreak returns the longest run of consecutive done days in the history
func BestStreak(habit models.Habit, logs []models.HabitLog) int {
	seen := make(map[string]bool)
	var dates []string
	for _, l := range logs {
		if l.HabitID != habit.ID || !l.Done() || !utils.ValidateDateFormat(l.Date) || seen[l.Date] {
			continue
		}
		seen[l.Date] = true
		dates = append(dates, l.Date)
	}
	sort.Strings(dates)

	best, run := 0, 0
	for i, date := range dates {
		if i > 0 && utils.ShiftDate(dates[i-1], 1) == date {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// Summarize computes the dashboard figures for every habit, in habit order
func Summarize(habits []models.Habit, logs []models.HabitLog, now time.Time) []HabitSummary {
	out := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		out = append(out, HabitSummary{
			Habit:         h,
			Consistency:   Consistency(h, logs, now),
			Balance:       Balance(h, logs, now),
			CurrentStreak: CurrentStreak(h, logs, now),
			BestStreak:    BestStreak(h, logs),
		})
	}
	return out
}
