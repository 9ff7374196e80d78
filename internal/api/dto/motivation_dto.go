package dto

import (
	"time"

	"github.com/mindconnect/mind-service/internal/domain"
)

// MotivationRequest payload for creating or updating content.
type MotivationRequest struct {
	Title    string                `json:"title"`
	Content  string                `json:"content"`
	Type     domain.MotivationType `json:"type"`
	Author   string                `json:"author"`
	Category string                `json:"category"`
	Active   bool                  `json:"active"`
}

// MotivationResponse is the view of one piece of content.
type MotivationResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	Type      domain.MotivationType `json:"type"`
	Author    string                `json:"author,omitempty"`
	Category  string                `json:"category,omitempty"`
	Active    bool                  `json:"active"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewMotivationResponse maps a domain motivation.
func NewMotivationResponse(motivation *domain.Motivation) MotivationResponse {
	return MotivationResponse{
		ID:        motivation.ID,
		Title:     motivation.Title,
		Content:   motivation.Content,
		Type:      motivation.Type,
		Author:    motivation.Author,
		Category:  motivation.Category,
		Active:    motivation.Active,
		CreatedAt: motivation.CreatedAt,
	}
}

// NewMotivationResponses maps a slice of content.
func NewMotivationResponses(motivations []*domain.Motivation) []MotivationResponse {
	out := make([]MotivationResponse, 0, len(motivations))
	for _, motivation := range motivations {
		out = append(out, NewMotivationResponse(motivation))
	}
	return out
}
