// Package stats derives the momentum analytics from habits and their logs.
// Every function is pure and anchored to a caller-supplied reference time;
// calendar days are taken in that time's location.
package stats

import (
	"math"

	"github.com/julianstephens/momentum/internal/models"
)

// DayPoint is one day of the rolling momentum series
type DayPoint struct {
	Date     string `json:"date"`
	Full     int    `json:"full"`
	Partial  int    `json:"partial"`
	LastWeek int    `json:"lastWeek"`
	Momentum int    `json:"momentum"`
}

// HeatCell is one day of a single habit's heatmap
type HeatCell struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	// BeforeCreation marks days preceding the habit's creation date. They are
	// still scored from any log present.
	BeforeCreation bool `json:"beforeCreation"`
}

// Bucket is one non-empty category of the completion distribution
type Bucket struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// HabitSummary gathers the per-habit figures shown on dashboards
type HabitSummary struct {
	Habit         models.Habit `json:"habit"`
	Consistency   int          `json:"consistency"`
	Balance       int          `json:"balance"`
	CurrentStreak int          `json:"currentStreak"`
	BestStreak    int          `json:"bestStreak"`
}

// logIndex maps date -> habitID -> log. When duplicates exist for a key the
// first one wins.
type logIndex map[string]map[string]models.HabitLog

func indexLogs(logs []models.HabitLog) logIndex {
	idx := make(logIndex)
	for _, l := range logs {
		byHabit, ok := idx[l.Date]
		if !ok {
			byHabit = make(map[string]models.HabitLog)
			idx[l.Date] = byHabit
		}
		if _, dup := byHabit[l.HabitID]; !dup {
			byHabit[l.HabitID] = l
		}
	}
	return idx
}

func (idx logIndex) get(habitID, date string) (models.HabitLog, bool) {
	l, ok := idx[date][habitID]
	return l, ok
}

func (idx logIndex) done(habitID, date string) bool {
	l, ok := idx.get(habitID, date)
	return ok && l.Done()
}

func percent(num, denom int) int {
	if denom <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(num) / float64(denom)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
