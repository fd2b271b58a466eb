package domain

import "time"

// Meeting is a scheduled appointment. The client only lists and adds
// meetings; there is no edit or remove operation.
type Meeting struct {
	ID      string    `json:"_id"`
	Date    time.Time `json:"date"`
	Subject string    `json:"subject"`
	Notes   string    `json:"notes"`
}

// EntityID implements state.Entity.
func (m Meeting) EntityID() string { return m.ID }
