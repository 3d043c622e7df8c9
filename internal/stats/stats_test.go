package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func habit(id string, created time.Time) models.Habit {
	return models.Habit{ID: id, Name: id, CreatedAt: created}
}

func full(id, date string) models.HabitLog {
	return models.HabitLog{HabitID: id, Date: date, Completed: true}
}

func partial(id, date string) models.HabitLog {
	return models.HabitLog{HabitID: id, Date: date, Partial: true}
}

var longAgo = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDailySeries(t *testing.T) {
	habits := []models.Habit{habit("a", longAgo), habit("b", longAgo), habit("c", longAgo), habit("d", longAgo)}
	logs := []models.HabitLog{
		full("a", "2024-03-15"),
		partial("b", "2024-03-15"),
		full("c", "2024-03-15"),
		full("a", "2024-03-08"),
		partial("b", "2024-03-08"),
		full("a", "2024-02-01"), // outside the window
	}

	series := DailySeries(habits, logs, now)
	require.Len(t, series, constants.SeriesWindowDays)
	assert.Equal(t, "2024-02-15", series[0].Date)

	today := series[len(series)-1]
	assert.Equal(t, DayPoint{Date: "2024-03-15", Full: 2, Partial: 1, LastWeek: 2, Momentum: 75}, today)

	weekAgo := series[len(series)-8]
	assert.Equal(t, "2024-03-08", weekAgo.Date)
	assert.Equal(t, 1, weekAgo.Full)
	assert.Equal(t, 1, weekAgo.Partial)
	assert.Equal(t, 50, weekAgo.Momentum)
	assert.Equal(t, 0, weekAgo.LastWeek)
}

func TestDailySeriesWithoutHabits(t *testing.T) {
	logs := []models.HabitLog{full("ghost", "2024-03-15")}
	series := DailySeries(nil, logs, now)
	assert.Equal(t, 100, series[len(series)-1].Momentum, "denominator never drops below one")
}

func TestHeatmap(t *testing.T) {
	h := habit("run", time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC))
	logs := []models.HabitLog{
		full("run", "2024-03-15"),
		partial("run", "2024-03-14"),
		full("run", "2024-03-01"), // logged before creation
		full("other", "2024-03-13"),
	}

	cells := Heatmap(h, logs, now)
	require.Len(t, cells, constants.HeatmapWindowDays)
	assert.Equal(t, "2024-03-15", cells[89].Date)
	assert.Equal(t, constants.HeatScoreFull, cells[89].Score)
	assert.Equal(t, constants.HeatScorePartial, cells[88].Score)
	assert.Equal(t, constants.HeatScoreNone, cells[87].Score)

	pre := cells[89-14]
	assert.Equal(t, "2024-03-01", pre.Date)
	assert.True(t, pre.BeforeCreation)
	assert.Equal(t, constants.HeatScoreFull, pre.Score, "pre-creation days are still scored")
	assert.False(t, cells[89-5].BeforeCreation)
}

func TestConsistency(t *testing.T) {
	t.Run("three recent completions", func(t *testing.T) {
		h := habit("run", longAgo)
		logs := []models.HabitLog{full("run", "2024-03-15"), full("run", "2024-03-14"), full("run", "2024-03-13")}
		assert.Equal(t, 10, Consistency(h, logs, now))
	})

	t.Run("ignores days before creation", func(t *testing.T) {
		h := habit("run", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
		logs := []models.HabitLog{full("run", "2024-03-15"), partial("run", "2024-03-14"), full("run", "2024-03-13")}
		assert.Equal(t, 7, Consistency(h, logs, now))
	})

	t.Run("every day done", func(t *testing.T) {
		h := habit("run", longAgo)
		var logs []models.HabitLog
		for i := 1; i <= 15; i++ {
			logs = append(logs, full("run", time.Date(2024, 3, i, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)))
			logs = append(logs, partial("run", time.Date(2024, 2, 14+i, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)))
		}
		assert.Equal(t, 100, Consistency(h, logs, now))
	})
}

func TestBalance(t *testing.T) {
	h := habit("run", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	logs := []models.HabitLog{
		full("run", "2024-03-15"),
		partial("run", "2024-03-14"),
		full("run", "2024-03-01"),
		{HabitID: "run", Date: "2024-03-12"}, // neither flag set
	}
	// Creation date is not considered: 3 done days out of 30
	assert.Equal(t, 10, Balance(h, logs, now))
}

func TestDistribution(t *testing.T) {
	habits := []models.Habit{
		habit("old", longAgo),
		habit("new", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
	}
	logs := []models.HabitLog{
		full("old", "2024-03-15"),
		partial("old", "2024-03-14"),
		full("new", "2024-03-15"),
		full("new", "2024-03-10"), // before creation, not counted
	}

	got := Distribution(habits, logs, now)
	assert.Equal(t, []Bucket{
		{Category: constants.CategoryFull, Count: 2},
		{Category: constants.CategoryPartial, Count: 1},
		{Category: constants.CategoryMissed, Count: 29},
	}, got)
}

func TestDistributionOmitsEmptyCategories(t *testing.T) {
	habits := []models.Habit{habit("new", now)}
	logs := []models.HabitLog{full("new", "2024-03-15")}
	assert.Equal(t, []Bucket{{Category: constants.CategoryFull, Count: 1}}, Distribution(habits, logs, now))
	assert.Empty(t, Distribution(nil, logs, now))
}

func TestStreaks(t *testing.T) {
	h := habit("run", longAgo)

	tests := []struct {
		name    string
		logs    []models.HabitLog
		current int
		best    int
	}{
		{name: "no history", current: 0, best: 0},
		{
			name:    "ending today",
			logs:    []models.HabitLog{full("run", "2024-03-15"), partial("run", "2024-03-14"), full("run", "2024-03-13")},
			current: 3,
			best:    3,
		},
		{
			name:    "ending yesterday",
			logs:    []models.HabitLog{full("run", "2024-03-14"), full("run", "2024-03-13")},
			current: 2,
			best:    2,
		},
		{
			name: "broken streak with longer past run",
			logs: []models.HabitLog{
				full("run", "2024-03-15"),
				full("run", "2024-02-28"), full("run", "2024-02-29"), full("run", "2024-03-01"), full("run", "2024-03-02"),
			},
			current: 1,
			best:    4,
		},
		{
			name:    "two days ago is not current",
			logs:    []models.HabitLog{full("run", "2024-03-13")},
			current: 0,
			best:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.current, CurrentStreak(h, tt.logs, now))
			assert.Equal(t, tt.best, BestStreak(h, tt.logs))
		})
	}
}

func TestSummarize(t *testing.T) {
	habits := []models.Habit{habit("a", longAgo), habit("b", longAgo)}
	logs := []models.HabitLog{full("a", "2024-03-15"), full("a", "2024-03-14"), full("a", "2024-03-13")}

	got := Summarize(habits, logs, now)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Habit.ID)
	assert.Equal(t, 10, got[0].Consistency)
	assert.Equal(t, 10, got[0].Balance)
	assert.Equal(t, 3, got[0].CurrentStreak)
	assert.Equal(t, 0, got[1].BestStreak)
}
