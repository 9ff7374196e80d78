package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/events"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/pkg/util"
)

// JournalInput carries journal entry fields.
type JournalInput struct {
	Title   string
	Content string
	Mood    domain.MoodLevel
	Tags    string
}

// JournalService manages private journal entries. Ownership is enforced
// here: only the owning user can read or modify an entry.
type JournalService struct {
	journals   repository.JournalRepository
	dispatcher events.Dispatcher
}

// NewJournalService builds the service.
func NewJournalService(journals repository.JournalRepository, dispatcher events.Dispatcher) *JournalService {
	return &JournalService{journals: journals, dispatcher: dispatcher}
}

// Create adds a journal entry for the given user.
func (s *JournalService) Create(ctx context.Context, userID string, input JournalInput) (*domain.Journal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}

	journal := &domain.Journal{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
		Tags:    input.Tags,
	}
	if err := s.journals.Create(ctx, journal); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventJournalCreated,
			Actor:     events.Actor{Kind: domain.AccountKindUser, UserID: &userID},
			Timestamp: time.Now(),
			Payload: events.JournalCreatedPayload{
				JournalID: journal.ID,
				UserID:    userID,
				Mood:      journal.Mood,
			},
		})
	}
	return journal, nil
}

// Get returns one entry, verifying ownership.
func (s *JournalService) Get(ctx context.Context, userID, id string) (*domain.Journal, error) {
	journal, err := s.journals.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	if journal.UserID != userID {
		return nil, util.NewForbidden("journal belongs to another user")
	}
	return journal, nil
}

// ListByUser returns a user's entries, newest first.
func (s *JournalService) ListByUser(ctx context.Context, userID string) ([]*domain.Journal, error) {
	return s.journals.ListByUser(ctx, userID)
}

// Update replaces entry fields, verifying ownership.
func (s *JournalService) Update(ctx context.Context, userID, id string, input JournalInput) (*domain.Journal, error) {
	journal, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	journal.Title = input.Title
	journal.Content = input.Content
	journal.Mood = input.Mood
	journal.Tags = input.Tags

	if err := s.journals.Update(ctx, journal); err != nil {
		return nil, util.MapError(err)
	}
	return journal, nil
}

// Delete removes an entry, verifying ownership.
func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.journals.Delete(ctx, id); err != nil {
		return util.MapError(err)
	}
	return nil
}
