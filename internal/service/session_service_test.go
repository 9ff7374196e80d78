package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/events"
)

type fakeSessionRepo struct {
	byID map[string]*domain.Session
	seq  int
}

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.seq++
	s.ID = fmt.Sprintf("s%d", r.seq)
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *domain.Session) error {
	if _, ok := r.byID[s.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*domain.Session, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeSessionRepo) List(_ context.Context) ([]*domain.Session, error) { return nil, nil }

func (r *fakeSessionRepo) ListByUser(_ context.Context, userID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ListByTherapist(_ context.Context, therapistID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range r.byID {
		if s.TherapistID == therapistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestSessionService() (*SessionService, events.Dispatcher) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"alice@example.com": {ID: "u1", Email: "alice@example.com"},
	}}
	therapists := &fakeTherapistRepo{byEmail: map[string]*domain.Therapist{
		"dr@example.com": {ID: "t1", Email: "dr@example.com"},
	}}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewSessionService(&fakeSessionRepo{byID: map[string]*domain.Session{}}, users, therapists, dispatcher)
	return svc, dispatcher
}

func TestBookSession(t *testing.T) {
	svc, dispatcher := newTestSessionService()
	ctx := context.Background()

	var booked []events.Event
	dispatcher.Subscribe(events.EventSessionBooked, func(_ context.Context, e events.Event) error {
		booked = append(booked, e)
		return nil
	})

	session, err := svc.Book(ctx, BookSessionInput{
		UserID:      "u1",
		TherapistID: "t1",
		SessionDate: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if session.Status != domain.SessionScheduled {
		t.Fatalf("status = %q, want SCHEDULED", session.Status)
	}
	if session.DurationMin != 60 {
		t.Fatalf("duration = %d, want default 60", session.DurationMin)
	}
	if len(booked) != 1 {
		t.Fatalf("booked events = %d, want 1", len(booked))
	}
}

func TestBookSessionUnknownParties(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()
	date := time.Now().Add(48 * time.Hour)

	_, err := svc.Book(ctx, BookSessionInput{UserID: "ghost", TherapistID: "t1", SessionDate: date})
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("unknown user: code = %q, want NOT_FOUND", code)
	}

	_, err = svc.Book(ctx, BookSessionInput{UserID: "u1", TherapistID: "ghost", SessionDate: date})
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("unknown therapist: code = %q, want NOT_FOUND", code)
	}

	_, err = svc.Book(ctx, BookSessionInput{UserID: "u1", TherapistID: "t1"})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("missing date: code = %q, want VALIDATION_FAILED", code)
	}
}

func TestSessionStatusTransitions(t *testing.T) {
	svc, dispatcher := newTestSessionService()
	ctx := context.Background()

	var changes []events.Event
	dispatcher.Subscribe(events.EventSessionStatusChanged, func(_ context.Context, e events.Event) error {
		changes = append(changes, e)
		return nil
	})

	session, err := svc.Book(ctx, BookSessionInput{
		UserID: "u1", TherapistID: "t1", SessionDate: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, session.ID, domain.SessionCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.SessionCompleted {
		t.Fatalf("status = %q, want COMPLETED", updated.Status)
	}
	if len(changes) != 1 {
		t.Fatalf("change events = %d, want 1", len(changes))
	}

	// Repeating the same status is a no-op for events.
	if _, err := svc.UpdateStatus(ctx, session.ID, domain.SessionCompleted); err != nil {
		t.Fatalf("repeat UpdateStatus returned error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("change events after no-op = %d, want 1", len(changes))
	}

	if _, err := svc.UpdateStatus(ctx, session.ID, domain.SessionStatus("BOGUS")); err == nil {
		t.Fatal("bogus status accepted")
	}
}

func TestCancelSession(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	session, err := svc.Book(ctx, BookSessionInput{
		UserID: "u1", TherapistID: "t1", SessionDate: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, session.ID)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != domain.SessionCancelled {
		t.Fatalf("status = %q, want CANCELLED", cancelled.Status)
	}
}
