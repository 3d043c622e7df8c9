package insight

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// HabitDefinition is the part of a habit shared with the AI service
type HabitDefinition struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

// Digest is the activity summary embedded in the prompt
type Digest struct {
	TotalHabits    int               `json:"totalHabits"`
	RecentActivity []models.HabitLog `json:"recentActivity"`
	Habits         []HabitDefinition `json:"habits"`
}

// BuildDigest collects the logs of the last seven calendar days, today
// included, together with each habit's name and objective.
func BuildDigest(habits []models.Habit, logs []models.HabitLog, now time.Time) Digest {
	today := utils.FormatDate(now)
	cutoff := utils.DaysAgo(now, constants.DigestWindowDays-1)

	d := Digest{
		TotalHabits:    len(habits),
		RecentActivity: []models.HabitLog{},
		Habits:         make([]HabitDefinition, 0, len(habits)),
	}
	for _, l := range logs {
		if l.Date >= cutoff && l.Date <= today {
			d.RecentActivity = append(d.RecentActivity, l)
		}
	}
	for _, h := range habits {
		d.Habits = append(d.Habits, HabitDefinition{Name: h.Name, Objective: h.Objective})
	}
	return d
}

const instructions = `You are a supportive habit coach. Based on the habit data below, write a short summary
(3-4 sentences) of how the week went: point out one pattern, celebrate one success and suggest one small,
concrete improvement. "completed" means the full objective was met and "partial" means only the minimum
objective was met. Keep the tone warm and encouraging.`

// BuildPrompt embeds the digest as JSON after the fixed coaching instructions
func BuildPrompt(d Digest) (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling digest: %w", err)
	}
	return instructions + "\n\nHabit data:\n" + string(data), nil
}
