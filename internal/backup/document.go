package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/state"
)

// ErrInvalidFormat is returned when an import file is not a JSON document
var ErrInvalidFormat = errors.New("invalid file format")

// ExportTimeFormat is the layout of Document.ExportDate
const ExportTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Document is the on-disk backup format. Every collection is optional: a nil
// field means the file did not carry it.
type Document struct {
	Habits         *[]models.Habit        `json:"habits,omitempty"`
	Logs           *[]models.HabitLog     `json:"logs,omitempty"`
	MicroWins      *[]models.MicroWin     `json:"microWins,omitempty"`
	MicroWinLogs   *[]models.MicroWinLog  `json:"microWinLogs,omitempty"`
	DayPlans       *[]models.DayPlan      `json:"dayPlans,omitempty"`
	JournalEntries *[]models.JournalEntry `json:"journalEntries,omitempty"`
	ExportDate     string                 `json:"exportDate,omitempty"`
}

// Export captures all six collections of snap
func Export(snap state.Snapshot, now time.Time) Document {
	c := snap.Clone()
	return Document{
		Habits:         &c.Habits,
		Logs:           &c.Logs,
		MicroWins:      &c.MicroWins,
		MicroWinLogs:   &c.MicroWinLogs,
		DayPlans:       &c.Plans,
		JournalEntries: &c.Journal,
		ExportDate:     now.UTC().Format(ExportTimeFormat),
	}
}

// Encode writes doc as indented JSON
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Decode parses a backup document. Field contents are not validated; only
// input that is not a JSON object is rejected. A field whose value has the
// wrong shape is skipped and treated as absent.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read backup: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	doc := Document{
		Habits:         decodeField[models.Habit](fields, "habits"),
		Logs:           decodeField[models.HabitLog](fields, "logs"),
		MicroWins:      decodeField[models.MicroWin](fields, "microWins"),
		MicroWinLogs:   decodeField[models.MicroWinLog](fields, "microWinLogs"),
		DayPlans:       decodeField[models.DayPlan](fields, "dayPlans"),
		JournalEntries: decodeField[models.JournalEntry](fields, "journalEntries"),
	}
	if raw, ok := fields["exportDate"]; ok {
		if err := json.Unmarshal(raw, &doc.ExportDate); err != nil {
			logger.Warn("Skipping malformed backup field", "field", "exportDate", "error", err)
		}
	}
	return doc, nil
}

// decodeField returns nil when name is missing, null, or not an array of T
func decodeField[T any](fields map[string]json.RawMessage, name string) *[]T {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("Skipping malformed backup field", "field", name, "error", err)
		return nil
	}
	if items == nil {
		return nil
	}
	return &items
}

// Partial converts doc into a state import where absent collections are left alone
func (d Document) Partial() state.Partial {
	return state.Partial{
		Habits:       d.Habits,
		Logs:         d.Logs,
		MicroWins:    d.MicroWins,
		MicroWinLogs: d.MicroWinLogs,
		Plans:        d.DayPlans,
		Journal:      d.JournalEntries,
	}
}

// Collections lists the names of the collections present in d
func (d Document) Collections() []string {
	var names []string
	add := func(present bool, name string) {
		if present {
			names = append(names, name)
		}
	}
	add(d.Habits != nil, "habits")
	add(d.Logs != nil, "logs")
	add(d.MicroWins != nil, "microWins")
	add(d.MicroWinLogs != nil, "microWinLogs")
	add(d.DayPlans != nil, "dayPlans")
	add(d.JournalEntries != nil, "journalEntries")
	return names
}
