package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/pkg/util"
)

type fakeJournalRepo struct {
	byID map[string]*domain.Journal
	seq  int
}

func (r *fakeJournalRepo) Create(_ context.Context, j *domain.Journal) error {
	r.seq++
	j.ID = fmt.Sprintf("j%d", r.seq)
	r.byID[j.ID] = j
	return nil
}

func (r *fakeJournalRepo) Update(_ context.Context, j *domain.Journal) error {
	if _, ok := r.byID[j.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[j.ID] = j
	return nil
}

func (r *fakeJournalRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJournalRepo) GetByID(_ context.Context, id string) (*domain.Journal, error) {
	if j, ok := r.byID[id]; ok {
		return j, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeJournalRepo) ListByUser(_ context.Context, userID string) ([]*domain.Journal, error) {
	var out []*domain.Journal
	for _, j := range r.byID {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func newTestJournalService() (*JournalService, *fakeJournalRepo) {
	repo := &fakeJournalRepo{byID: map[string]*domain.Journal{}}
	return NewJournalService(repo, nil), repo
}

func TestJournalCreateAndGet(t *testing.T) {
	svc, _ := newTestJournalService()
	ctx := context.Background()

	journal, err := svc.Create(ctx, "u1", JournalInput{
		Title: "hard day", Content: "long walk helped", Mood: domain.MoodSad,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(ctx, "u1", journal.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "hard day" {
		t.Fatalf("title = %q", got.Title)
	}
}

func TestJournalCreateRequiresTitle(t *testing.T) {
	svc, repo := newTestJournalService()

	_, err := svc.Create(context.Background(), "u1", JournalInput{Title: "  "})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}
	if len(repo.byID) != 0 {
		t.Fatal("invalid entry persisted")
	}
}

func TestJournalOwnershipEnforced(t *testing.T) {
	svc, _ := newTestJournalService()
	ctx := context.Background()

	journal, err := svc.Create(ctx, "u1", JournalInput{Title: "private"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(ctx, "u2", journal.ID); !isForbidden(err) {
		t.Fatalf("Get by stranger = %v, want FORBIDDEN", err)
	}
	if _, err := svc.Update(ctx, "u2", journal.ID, JournalInput{Title: "defaced"}); !isForbidden(err) {
		t.Fatalf("Update by stranger = %v, want FORBIDDEN", err)
	}
	if err := svc.Delete(ctx, "u2", journal.ID); !isForbidden(err) {
		t.Fatalf("Delete by stranger = %v, want FORBIDDEN", err)
	}

	if err := svc.Delete(ctx, "u1", journal.ID); err != nil {
		t.Fatalf("Delete by owner returned error: %v", err)
	}
}

func TestJournalMissingEntryIsNotFound(t *testing.T) {
	svc, _ := newTestJournalService()

	_, err := svc.Get(context.Background(), "u1", "missing")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}

func isForbidden(err error) bool {
	var de *util.DomainError
	return errors.As(err, &de) && de.Code == "FORBIDDEN"
}
