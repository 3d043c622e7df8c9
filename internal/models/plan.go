package models

import "github.com/google/uuid"

// DailyTask is one priority slot within a DayPlan
type DailyTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// DayPlan holds the ordered priorities for a single date
type DayPlan struct {
	Date  string      `json:"date"` // YYYY-MM-DD format
	Tasks []DailyTask `json:"tasks"`
}

// NewDailyTask returns an empty task slot with a fresh id
func NewDailyTask() DailyTask {
	return DailyTask{ID: uuid.New().String()}
}

// NewDayPlan returns a plan for date with n empty task slots
func NewDayPlan(date string, n int) DayPlan {
	tasks := make([]DailyTask, n)
	for i := range tasks {
		tasks[i] = NewDailyTask()
	}
	return DayPlan{Date: date, Tasks: tasks}
}

// CompletedCount returns the number of completed tasks that have text
func (p DayPlan) CompletedCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Completed && t.Text != "" {
			n++
		}
	}
	return n
}

// FilledCount returns the number of tasks whose text is non-empty
func (p DayPlan) FilledCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Text != "" {
			n++
		}
	}
	return n
}
