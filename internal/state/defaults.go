package state

import (
	"time"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// DefaultHabits returns the first-run habit list. Creation is backdated so the
// sample history falls inside each habit's lifetime.
func DefaultHabits(now time.Time, newID func() string) []models.Habit {
	created := now.AddDate(0, 0, -(constants.SeedHistoryDays + 1)).UTC().Truncate(time.Millisecond)
	return []models.Habit{
		{ID: newID(), Name: "Exercise", Objective: "30 minutes of movement", MinObjective: "10 minute walk", CreatedAt: created},
		{ID: newID(), Name: "Read", Objective: "Read 20 pages", MinObjective: "Read 2 pages", CreatedAt: created},
		{ID: newID(), Name: "Meditate", Objective: "15 minutes of meditation", MinObjective: "3 deep breaths", CreatedAt: created},
	}
}

// DefaultMicroWins returns the first-run micro-win list
func DefaultMicroWins(newID func() string) []models.MicroWin {
	return []models.MicroWin{
		{ID: newID(), Text: "Drank a glass of water"},
		{ID: newID(), Text: "Made the bed"},
		{ID: newID(), Text: "Stepped outside for fresh air"},
		{ID: newID(), Text: "Sent a kind message"},
	}
}

// SampleLogs generates a deterministic demo history over the days preceding now.
// Each habit cycles through full, partial and missed so every chart has data.
func SampleLogs(habits []models.Habit, now time.Time) []models.HabitLog {
	var logs []models.HabitLog
	for offset := 1; offset <= constants.SeedHistoryDays; offset++ {
		date := utils.DaysAgo(now, offset)
		for i, h := range habits {
			switch (offset + i) % 3 {
			case 0:
				logs = append(logs, models.HabitLog{Date: date, HabitID: h.ID, Completed: true})
			case 1:
				logs = append(logs, models.HabitLog{Date: date, HabitID: h.ID, Partial: true})
			}
		}
	}
	return logs
}
