package state

import (
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// Plans returns a copy of every day plan
func (s *Store) Plans() []models.DayPlan {
	return clonePlans(s.data.Plans)
}

// DayPlan returns the plan saved for date
func (s *Store) DayPlan(date string) (models.DayPlan, bool) {
	i := s.planIndex(date)
	if i < 0 {
		return models.DayPlan{}, false
	}
	p := s.data.Plans[i]
	return models.DayPlan{Date: p.Date, Tasks: cloneSlice(p.Tasks)}, true
}

// DayPlanOrEmpty returns the saved plan for date, or a plan of empty slots
func (s *Store) DayPlanOrEmpty(date string) models.DayPlan {
	if p, ok := s.DayPlan(date); ok {
		return p
	}
	return models.NewDayPlan(date, constants.MaxDailyTasks)
}

func (s *Store) planIndex(date string) int {
	for i, p := range s.data.Plans {
		if p.Date == date {
			return i
		}
	}
	return -1
}

// SaveDayPlan replaces the whole task list for date
func (s *Store) SaveDayPlan(date string, tasks []models.DailyTask) bool {
	if !utils.ValidateDateFormat(date) {
		return false
	}
	plan := models.DayPlan{Date: date, Tasks: cloneSlice(tasks)}
	if i := s.planIndex(date); i >= 0 {
		s.data.Plans[i] = plan
	} else {
		s.data.Plans = append(s.data.Plans, plan)
	}
	s.markDirty()
	return true
}

// editPlanTask applies fn to the task at index within date's plan and saves the plan.
// A missing plan is materialized with empty slots first.
func (s *Store) editPlanTask(date string, index int, fn func(*models.DailyTask)) bool {
	plan := s.DayPlanOrEmpty(date)
	if index < 0 || index >= len(plan.Tasks) {
		return false
	}
	fn(&plan.Tasks[index])
	return s.SaveDayPlan(date, plan.Tasks)
}

// SetPlanTaskText sets the text of one priority slot
func (s *Store) SetPlanTaskText(date string, index int, text string) bool {
	return s.editPlanTask(date, index, func(t *models.DailyTask) { t.Text = text })
}

// SetPlanTaskNotes sets the notes of one priority slot
func (s *Store) SetPlanTaskNotes(date string, index int, notes string) bool {
	return s.editPlanTask(date, index, func(t *models.DailyTask) { t.Notes = notes })
}

// TogglePlanTask flips completion of one priority slot
func (s *Store) TogglePlanTask(date string, index int) bool {
	return s.editPlanTask(date, index, func(t *models.DailyTask) { t.Completed = !t.Completed })
}
