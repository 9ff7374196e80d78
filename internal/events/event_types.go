package events

import (
	"time"

	"github.com/mindconnect/mind-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventTherapistRegistered  EventType = "therapist_registered"
	EventSessionBooked        EventType = "session_booked"
	EventSessionStatusChanged EventType = "session_status_changed"
	EventJournalCreated       EventType = "journal_created"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Kind        domain.AccountKind `json:"kind"`
	UserID      *string            `json:"user_id,omitempty"`
	TherapistID *string            `json:"therapist_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TherapistRegisteredPayload payload.
type TherapistRegisteredPayload struct {
	TherapistID    string `json:"therapist_id"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
}

// SessionBookedPayload payload.
type SessionBookedPayload struct {
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	TherapistID string    `json:"therapist_id"`
	SessionDate time.Time `json:"session_date"`
	SessionType string    `json:"session_type"`
}

// SessionStatusChangedPayload payload.
type SessionStatusChangedPayload struct {
	SessionID string               `json:"session_id"`
	OldStatus domain.SessionStatus `json:"old_status"`
	NewStatus domain.SessionStatus `json:"new_status"`
}

// JournalCreatedPayload payload.
type JournalCreatedPayload struct {
	JournalID string           `json:"journal_id"`
	UserID    string           `json:"user_id"`
	Mood      domain.MoodLevel `json:"mood"`
}
