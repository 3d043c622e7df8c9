package models

// MicroWin is a small repeatable daily accomplishment. Order in its collection is significant.
type MicroWin struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MicroWinLog marks a micro-win as achieved on a date; presence implies Completed.
type MicroWinLog struct {
	Date      string `json:"date"` // YYYY-MM-DD format
	WinID     string `json:"winId"`
	Completed bool   `json:"completed"`
}
