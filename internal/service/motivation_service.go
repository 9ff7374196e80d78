package service

import (
	"context"
	"strings"

	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/pkg/util"
)

// MotivationInput carries motivational content fields.
type MotivationInput struct {
	Title    string
	Content  string
	Type     domain.MotivationType
	Author   string
	Category string
	Active   bool
}

// MotivationService manages motivational content.
type MotivationService struct {
	motivations repository.MotivationRepository
}

// NewMotivationService builds the service.
func NewMotivationService(motivations repository.MotivationRepository) *MotivationService {
	return &MotivationService{motivations: motivations}
}

// Create adds new content.
func (s *MotivationService) Create(ctx context.Context, input MotivationInput) (*domain.Motivation, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, util.NewValidationError("title and content are required", nil)
	}
	switch input.Type {
	case domain.MotivationQuote, domain.MotivationTip, domain.MotivationArticle, domain.MotivationExercise:
	default:
		return nil, util.NewValidationError("unknown content type", map[string]any{"type": string(input.Type)})
	}

	motivation := &domain.Motivation{
		Title:    input.Title,
		Content:  input.Content,
		Type:     input.Type,
		Author:   input.Author,
		Category: input.Category,
		Active:   input.Active,
	}
	if err := s.motivations.Create(ctx, motivation); err != nil {
		return nil, err
	}
	return motivation, nil
}

// Get returns content by id.
func (s *MotivationService) Get(ctx context.Context, id string) (*domain.Motivation, error) {
	motivation, err := s.motivations.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	return motivation, nil
}

// Daily returns one random active piece of content.
func (s *MotivationService) Daily(ctx context.Context) (*domain.Motivation, error) {
	motivation, err := s.motivations.GetRandomActive(ctx)
	if err != nil {
		return nil, util.MapError(err)
	}
	return motivation, nil
}

// ListActive returns all active content.
func (s *MotivationService) ListActive(ctx context.Context) ([]*domain.Motivation, error) {
	return s.motivations.ListActive(ctx)
}

// ListByCategory filters active content by category.
func (s *MotivationService) ListByCategory(ctx context.Context, category string) ([]*domain.Motivation, error) {
	return s.motivations.ListByCategory(ctx, category)
}

// ListByType filters active content by type.
func (s *MotivationService) ListByType(ctx context.Context, contentType domain.MotivationType) ([]*domain.Motivation, error) {
	return s.motivations.ListByType(ctx, contentType)
}

// Update replaces content fields.
func (s *MotivationService) Update(ctx context.Context, id string, input MotivationInput) (*domain.Motivation, error) {
	motivation, err := s.motivations.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}

	motivation.Title = input.Title
	motivation.Content = input.Content
	motivation.Type = input.Type
	motivation.Author = input.Author
	motivation.Category = input.Category
	motivation.Active = input.Active

	if err := s.motivations.Update(ctx, motivation); err != nil {
		return nil, util.MapError(err)
	}
	return motivation, nil
}

// Delete removes content.
func (s *MotivationService) Delete(ctx context.Context, id string) error {
	if err := s.motivations.Delete(ctx, id); err != nil {
		return util.MapError(err)
	}
	return nil
}
