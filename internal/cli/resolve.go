package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// ResolveDate accepts "", "today", "yesterday" or a YYYY-MM-DD date
func (c *Context) ResolveDate(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return c.Today(), nil
	case "yesterday":
		return utils.DaysAgo(c.Now(), 1), nil
	}
	if !utils.ValidateDateFormat(s) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today' or 'yesterday')", s)
	}
	return s, nil
}

// FindHabit resolves a habit by 1-based position, id or case-insensitive name
func (c *Context) FindHabit(ref string) (models.Habit, int, error) {
	habits := c.State.Habits()
	i := findIndex(len(habits), ref, func(i int) (string, string) {
		return habits[i].ID, habits[i].Name
	})
	if i < 0 {
		return models.Habit{}, -1, fmt.Errorf("habit %q not found", ref)
	}
	return habits[i], i, nil
}

// FindMicroWin resolves a micro-win by 1-based position, id or case-insensitive text
func (c *Context) FindMicroWin(ref string) (models.MicroWin, int, error) {
	wins := c.State.MicroWins()
	i := findIndex(len(wins), ref, func(i int) (string, string) {
		return wins[i].ID, wins[i].Text
	})
	if i < 0 {
		return models.MicroWin{}, -1, fmt.Errorf("micro-win %q not found", ref)
	}
	return wins[i], i, nil
}

func findIndex(n int, ref string, at func(int) (id, name string)) int {
	ref = strings.TrimSpace(ref)
	if pos, err := strconv.Atoi(ref); err == nil {
		if pos >= 1 && pos <= n {
			return pos - 1
		}
		return -1
	}
	for i := 0; i < n; i++ {
		if id, _ := at(i); id == ref {
			return i
		}
	}
	for i := 0; i < n; i++ {
		if _, name := at(i); strings.EqualFold(name, ref) {
			return i
		}
	}
	return -1
}

// ParseSlot converts a 1-based slot number to an index within [0, max)
func ParseSlot(slot, max int) (int, error) {
	if slot < 1 || slot > max {
		return 0, fmt.Errorf("slot must be between 1 and %d", max)
	}
	return slot - 1, nil
}
