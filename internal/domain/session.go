package domain

import "time"

// SessionStatus represents lifecycle states for a therapy session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "SCHEDULED"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionCancelled SessionStatus = "CANCELLED"
	SessionNoShow    SessionStatus = "NO_SHOW"
)

// Session is a booked appointment between a user and a therapist.
type Session struct {
	ID          string
	UserID      string
	TherapistID string
	SessionDate time.Time
	Status      SessionStatus
	Notes       string
	SessionType string
	DurationMin int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
