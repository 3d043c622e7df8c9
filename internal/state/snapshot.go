package state

import "github.com/julianstephens/momentum/internal/models"

// Snapshot is a full copy of the six persisted collections
type Snapshot struct {
	Habits       []models.Habit
	Logs         []models.HabitLog
	MicroWins    []models.MicroWin
	MicroWinLogs []models.MicroWinLog
	Plans        []models.DayPlan
	Journal      []models.JournalEntry
}

// Partial carries the collections present in an imported document.
// A nil field leaves the corresponding collection untouched.
type Partial struct {
	Habits       *[]models.Habit
	Logs         *[]models.HabitLog
	MicroWins    *[]models.MicroWin
	MicroWinLogs *[]models.MicroWinLog
	Plans        *[]models.DayPlan
	Journal      *[]models.JournalEntry
}

// Clone returns a deep copy that shares no backing arrays with s
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Habits:       cloneSlice(s.Habits),
		Logs:         cloneSlice(s.Logs),
		MicroWins:    cloneSlice(s.MicroWins),
		MicroWinLogs: cloneSlice(s.MicroWinLogs),
		Plans:        clonePlans(s.Plans),
		Journal:      cloneSlice(s.Journal),
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clonePlans(in []models.DayPlan) []models.DayPlan {
	out := make([]models.DayPlan, len(in))
	for i, p := range in {
		out[i] = models.DayPlan{Date: p.Date, Tasks: cloneSlice(p.Tasks)}
	}
	return out
}
