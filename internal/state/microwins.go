package state

import (
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// MicroWins returns a copy of the ordered micro-win list
func (s *Store) MicroWins() []models.MicroWin {
	return cloneSlice(s.data.MicroWins)
}

// MicroWinLogs returns a copy of all micro-win logs
func (s *Store) MicroWinLogs() []models.MicroWinLog {
	return cloneSlice(s.data.MicroWinLogs)
}

// MicroWin looks up a micro-win by id
func (s *Store) MicroWin(id string) (models.MicroWin, bool) {
	i := s.winIndex(id)
	if i < 0 {
		return models.MicroWin{}, false
	}
	return s.data.MicroWins[i], true
}

func (s *Store) winIndex(id string) int {
	for i, w := range s.data.MicroWins {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// MicroWinDone reports whether the micro-win is logged for date
func (s *Store) MicroWinDone(winID, date string) bool {
	for _, l := range s.data.MicroWinLogs {
		if l.WinID == winID && l.Date == date {
			return true
		}
	}
	return false
}

// AddMicroWin appends a micro-win with a fresh id
func (s *Store) AddMicroWin(text string) models.MicroWin {
	w := models.MicroWin{ID: s.newID(), Text: text}
	s.data.MicroWins = append(s.data.MicroWins, w)
	s.markDirty()
	return w
}

// DeleteMicroWin removes the micro-win and all of its logs
func (s *Store) DeleteMicroWin(id string) bool {
	i := s.winIndex(id)
	if i < 0 {
		return false
	}
	s.data.MicroWins = append(s.data.MicroWins[:i:i], s.data.MicroWins[i+1:]...)

	kept := s.data.MicroWinLogs[:0:0]
	for _, l := range s.data.MicroWinLogs {
		if l.WinID != id {
			kept = append(kept, l)
		}
	}
	s.data.MicroWinLogs = kept
	s.markDirty()
	return true
}

// ReorderMicroWins moves the micro-win at from to position to; out-of-range indexes are ignored
func (s *Store) ReorderMicroWins(from, to int) bool {
	moved, ok := utils.Move(s.data.MicroWins, from, to)
	if !ok {
		return false
	}
	s.data.MicroWins = moved
	s.markDirty()
	return true
}

// ToggleMicroWin flips presence of the (winID, date) log and reports whether it is now logged
func (s *Store) ToggleMicroWin(winID, date string) bool {
	if s.winIndex(winID) < 0 || !utils.ValidateDateFormat(date) {
		return false
	}

	kept := s.data.MicroWinLogs[:0:0]
	removed := false
	for _, l := range s.data.MicroWinLogs {
		if l.WinID == winID && l.Date == date {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		kept = append(kept, models.MicroWinLog{Date: date, WinID: winID, Completed: true})
	}
	s.data.MicroWinLogs = kept
	s.markDirty()
	return !removed
}
