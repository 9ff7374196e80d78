package dto

import (
	"time"

	"github.com/mindconnect/mind-service/internal/domain"
)

// JournalRequest payload for creating or updating an entry.
type JournalRequest struct {
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Mood    domain.MoodLevel `json:"mood"`
	Tags    string           `json:"tags"`
}

// JournalResponse is the view of one journal entry.
type JournalResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Mood      domain.MoodLevel `json:"mood"`
	Tags      string           `json:"tags,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewJournalResponse maps a domain journal entry.
func NewJournalResponse(journal *domain.Journal) JournalResponse {
	return JournalResponse{
		ID:        journal.ID,
		Title:     journal.Title,
		Content:   journal.Content,
		Mood:      journal.Mood,
		Tags:      journal.Tags,
		CreatedAt: journal.CreatedAt,
		UpdatedAt: journal.UpdatedAt,
	}
}

// NewJournalResponses maps a slice of entries.
func NewJournalResponses(journals []*domain.Journal) []JournalResponse {
	out := make([]JournalResponse, 0, len(journals))
	for _, journal := range journals {
		out = append(out, NewJournalResponse(journal))
	}
	return out
}
