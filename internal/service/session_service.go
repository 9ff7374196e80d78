package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/events"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/pkg/util"
)

// BookSessionInput carries a new session booking.
type BookSessionInput struct {
	UserID      string
	TherapistID string
	SessionDate time.Time
	SessionType string
	DurationMin int
	Notes       string
}

// SessionService manages therapy session bookings.
type SessionService struct {
	sessions   repository.SessionRepository
	users      repository.UserRepository
	therapists repository.TherapistRepository
	dispatcher events.Dispatcher
}

// NewSessionService builds the service.
func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository, therapists repository.TherapistRepository, dispatcher events.Dispatcher) *SessionService {
	return &SessionService{
		sessions:   sessions,
		users:      users,
		therapists: therapists,
		dispatcher: dispatcher,
	}
}

// Book creates a scheduled session after checking both parties exist.
func (s *SessionService) Book(ctx context.Context, input BookSessionInput) (*domain.Session, error) {
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user", nil)
		}
		return nil, err
	}
	if _, err := s.therapists.GetByID(ctx, input.TherapistID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("therapist", nil)
		}
		return nil, err
	}
	if input.SessionDate.IsZero() {
		return nil, util.NewValidationError("session date is required", nil)
	}
	if input.DurationMin <= 0 {
		input.DurationMin = 60
	}

	session := &domain.Session{
		UserID:      input.UserID,
		TherapistID: input.TherapistID,
		SessionDate: input.SessionDate,
		Status:      domain.SessionScheduled,
		Notes:       input.Notes,
		SessionType: input.SessionType,
		DurationMin: input.DurationMin,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionBooked,
			Actor:     events.Actor{Kind: domain.AccountKindUser, UserID: &session.UserID},
			Timestamp: time.Now(),
			Payload: events.SessionBookedPayload{
				SessionID:   session.ID,
				UserID:      session.UserID,
				TherapistID: session.TherapistID,
				SessionDate: session.SessionDate,
				SessionType: session.SessionType,
			},
		})
	}
	return session, nil
}

// Get returns a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	return session, nil
}

// List returns all sessions.
func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

// ListByUser returns a user's sessions.
func (s *SessionService) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	return s.sessions.ListByUser(ctx, userID)
}

// ListByTherapist returns a therapist's sessions.
func (s *SessionService) ListByTherapist(ctx context.Context, therapistID string) ([]*domain.Session, error) {
	return s.sessions.ListByTherapist(ctx, therapistID)
}

// UpdateStatus moves a session to a new lifecycle state.
func (s *SessionService) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) (*domain.Session, error) {
	switch status {
	case domain.SessionScheduled, domain.SessionCompleted, domain.SessionCancelled, domain.SessionNoShow:
	default:
		return nil, util.NewValidationError("unknown session status", map[string]any{"status": string(status)})
	}

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}

	oldStatus := session.Status
	session.Status = status
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, util.MapError(err)
	}

	if s.dispatcher != nil && oldStatus != status {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionStatusChanged,
			Actor:     events.Actor{Kind: domain.AccountKindUser, UserID: &session.UserID},
			Timestamp: time.Now(),
			Payload: events.SessionStatusChangedPayload{
				SessionID: session.ID,
				OldStatus: oldStatus,
				NewStatus: status,
			},
		})
	}
	return session, nil
}

// UpdateNotes replaces the session notes.
func (s *SessionService) UpdateNotes(ctx context.Context, id, notes string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	session.Notes = notes
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, util.MapError(err)
	}
	return session, nil
}

// Cancel is a convenience wrapper over UpdateStatus.
func (s *SessionService) Cancel(ctx context.Context, id string) (*domain.Session, error) {
	return s.UpdateStatus(ctx, id, domain.SessionCancelled)
}
