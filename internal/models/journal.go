package models

// JournalEntry is the free-text reflection for a date
type JournalEntry struct {
	Date    string `json:"date"` // YYYY-MM-DD format
	Content string `json:"content"`
}
