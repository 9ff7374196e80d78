package dto

import (
	"time"

	"github.com/mindconnect/mind-service/internal/domain"
)

// BookSessionRequest payload for booking a session.
type BookSessionRequest struct {
	UserID      string    `json:"userId"`
	TherapistID string    `json:"therapistId"`
	SessionDate time.Time `json:"sessionDate"`
	SessionType string    `json:"sessionType"`
	DurationMin int       `json:"duration"`
	Notes       string    `json:"notes"`
}

// UpdateSessionStatusRequest payload for status transitions.
type UpdateSessionStatusRequest struct {
	Status domain.SessionStatus `json:"status"`
}

// UpdateSessionNotesRequest payload for notes updates.
type UpdateSessionNotesRequest struct {
	Notes string `json:"notes"`
}

// SessionResponse is the view of one session.
type SessionResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"userId"`
	TherapistID string               `json:"therapistId"`
	SessionDate time.Time            `json:"sessionDate"`
	Status      domain.SessionStatus `json:"status"`
	Notes       string               `json:"notes,omitempty"`
	SessionType string               `json:"sessionType,omitempty"`
	DurationMin int                  `json:"duration"`
	CreatedAt   time.Time            `json:"created_at"`
}

// NewSessionResponse maps a domain session.
func NewSessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		ID:          session.ID,
		UserID:      session.UserID,
		TherapistID: session.TherapistID,
		SessionDate: session.SessionDate,
		Status:      session.Status,
		Notes:       session.Notes,
		SessionType: session.SessionType,
		DurationMin: session.DurationMin,
		CreatedAt:   session.CreatedAt,
	}
}

// NewSessionResponses maps a slice of sessions.
func NewSessionResponses(sessions []*domain.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, NewSessionResponse(session))
	}
	return out
}
