package state

import (
	"time"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// NewHabit holds the user-supplied fields for a habit
type NewHabit struct {
	Name         string
	Objective    string
	MinObjective string
}

// Habits returns a copy of the ordered habit list
func (s *Store) Habits() []models.Habit {
	return cloneSlice(s.data.Habits)
}

// Logs returns a copy of all habit logs
func (s *Store) Logs() []models.HabitLog {
	return cloneSlice(s.data.Logs)
}

// Habit looks up a habit by id
func (s *Store) Habit(id string) (models.Habit, bool) {
	i := s.habitIndex(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return s.data.Habits[i], true
}

func (s *Store) habitIndex(id string) int {
	for i, h := range s.data.Habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// HabitLog returns the log for (habitID, date) if one exists
func (s *Store) HabitLog(habitID, date string) (models.HabitLog, bool) {
	i := s.logIndex(habitID, date)
	if i < 0 {
		return models.HabitLog{}, false
	}
	return s.data.Logs[i], true
}

func (s *Store) logIndex(habitID, date string) int {
	for i, l := range s.data.Logs {
		if l.HabitID == habitID && l.Date == date {
			return i
		}
	}
	return -1
}

// AddHabit appends a habit with a fresh id and the current timestamp
func (s *Store) AddHabit(in NewHabit) models.Habit {
	h := models.Habit{
		ID:           s.newID(),
		Name:         in.Name,
		Objective:    in.Objective,
		MinObjective: in.MinObjective,
		CreatedAt:    s.clock().UTC().Truncate(time.Millisecond),
	}
	s.data.Habits = append(s.data.Habits, h)
	s.markDirty()
	return h
}

// UpdateHabit merges patch into the habit with id. Unknown ids are ignored.
func (s *Store) UpdateHabit(id string, patch models.HabitPatch) bool {
	i := s.habitIndex(id)
	if i < 0 {
		return false
	}
	s.data.Habits[i] = patch.Apply(s.data.Habits[i])
	s.markDirty()
	return true
}

// DeleteHabit removes the habit and every log that references it
func (s *Store) DeleteHabit(id string) bool {
	i := s.habitIndex(id)
	if i < 0 {
		return false
	}
	s.data.Habits = append(s.data.Habits[:i:i], s.data.Habits[i+1:]...)

	kept := s.data.Logs[:0:0]
	for _, l := range s.data.Logs {
		if l.HabitID != id {
			kept = append(kept, l)
		}
	}
	s.data.Logs = kept
	s.markDirty()
	return true
}

// ReorderHabits moves the habit at from to position to; out-of-range indexes are ignored
func (s *Store) ReorderHabits(from, to int) bool {
	moved, ok := utils.Move(s.data.Habits, from, to)
	if !ok {
		return false
	}
	s.data.Habits = moved
	s.markDirty()
	return true
}

// ToggleHabit cycles a day's log for the given mode. Toggling a mode that is
// already set removes the log; otherwise the log is replaced so only that mode is set.
// It returns the resulting log and whether one exists afterwards.
func (s *Store) ToggleHabit(habitID, date string, mode constants.ToggleMode) (models.HabitLog, bool) {
	if s.habitIndex(habitID) < 0 || !utils.ValidateDateFormat(date) {
		return models.HabitLog{}, false
	}
	if mode != constants.ToggleFull && mode != constants.TogglePartial {
		return s.HabitLog(habitID, date)
	}

	existing, found := s.HabitLog(habitID, date)
	alreadySet := found && ((mode == constants.ToggleFull && existing.Completed) ||
		(mode == constants.TogglePartial && existing.Partial))

	s.removeLog(habitID, date)
	s.markDirty()
	if alreadySet {
		return models.HabitLog{}, false
	}

	log := models.HabitLog{
		Date:      date,
		HabitID:   habitID,
		Completed: mode == constants.ToggleFull,
		Partial:   mode == constants.TogglePartial,
	}
	s.data.Logs = append(s.data.Logs, log)
	return log, true
}

func (s *Store) removeLog(habitID, date string) {
	kept := s.data.Logs[:0:0]
	for _, l := range s.data.Logs {
		if !(l.HabitID == habitID && l.Date == date) {
			kept = append(kept, l)
		}
	}
	s.data.Logs = kept
}
