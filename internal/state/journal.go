package state

import (
	"strings"

	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// Journal returns a copy of every journal entry
func (s *Store) Journal() []models.JournalEntry {
	return cloneSlice(s.data.Journal)
}

// JournalEntry returns the entry for date
func (s *Store) JournalEntry(date string) (models.JournalEntry, bool) {
	for _, e := range s.data.Journal {
		if e.Date == date {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// SaveJournalEntry replaces the entry for date. Content that is empty after
// trimming removes the entry instead.
func (s *Store) SaveJournalEntry(date, content string) bool {
	if !utils.ValidateDateFormat(date) {
		return false
	}

	kept := s.data.Journal[:0:0]
	for _, e := range s.data.Journal {
		if e.Date != date {
			kept = append(kept, e)
		}
	}
	if strings.TrimSpace(content) != "" {
		kept = append(kept, models.JournalEntry{Date: date, Content: content})
	}
	s.data.Journal = kept
	s.markDirty()
	return true
}
