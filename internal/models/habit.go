package models

import (
	"time"

	"github.com/julianstephens/momentum/internal/constants"
)

// Habit represents a recurring practice with a full and a minimum objective
type Habit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Objective    string    `json:"objective"`
	MinObjective string    `json:"minObjective"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreatedDay returns the creation date (YYYY-MM-DD) as seen from loc.
func (h Habit) CreatedDay(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return h.CreatedAt.In(loc).Format(constants.DateFormat)
}

// HabitPatch carries the fields of a partial habit update; nil fields are left untouched
type HabitPatch struct {
	Name         *string
	Objective    *string
	MinObjective *string
}

// Apply merges the patch into h. CreatedAt and ID are never modified.
func (p HabitPatch) Apply(h Habit) Habit {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Objective != nil {
		h.Objective = *p.Objective
	}
	if p.MinObjective != nil {
		h.MinObjective = *p.MinObjective
	}
	return h
}

// HabitLog records a single day's outcome for a habit.
// Completed and Partial are mutually exclusive; a missing log means "not done".
type HabitLog struct {
	Date      string `json:"date"` // YYYY-MM-DD format
	HabitID   string `json:"habitId"`
	Completed bool   `json:"completed"`
	Partial   bool   `json:"partial"`
}

// Done reports whether the log counts as any completion (full or partial)
func (l HabitLog) Done() bool {
	return l.Completed || l.Partial
}
