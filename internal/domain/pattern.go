package domain

import "time"

// Pattern is one ingested command pattern in the semantic store.
type Pattern struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Intent    Intent    `json:"intent"`
	Action    string    `json:"action"`
	Hour      int       `json:"hour"`
	DayOfWeek string    `json:"day_of_week"`
	CreatedAt time.Time `json:"created_at"`

	// Score is populated on query results only.
	Score float64 `json:"score,omitempty"`
}
