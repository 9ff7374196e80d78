package service

import (
	"context"
	"strings"

	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/pkg/util"
)

// UpdateTherapistInput carries mutable therapist profile fields.
type UpdateTherapistInput struct {
	FirstName      string
	LastName       string
	Specialization string
	Qualification  string
	Experience     int
	Phone          string
	Bio            string
	Available      bool
	Password       string
}

// TherapistService manages therapist profiles.
type TherapistService struct {
	therapists repository.TherapistRepository
	bcryptCost int
}

// NewTherapistService builds the service.
func NewTherapistService(therapists repository.TherapistRepository, bcryptCost int) *TherapistService {
	return &TherapistService{therapists: therapists, bcryptCost: bcryptCost}
}

// Get returns a therapist by id.
func (s *TherapistService) Get(ctx context.Context, id string) (*domain.Therapist, error) {
	therapist, err := s.therapists.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	return therapist, nil
}

// List returns all therapists.
func (s *TherapistService) List(ctx context.Context) ([]*domain.Therapist, error) {
	return s.therapists.List(ctx)
}

// ListAvailable returns therapists currently accepting sessions.
func (s *TherapistService) ListAvailable(ctx context.Context) ([]*domain.Therapist, error) {
	return s.therapists.ListAvailable(ctx)
}

// ListBySpecialization filters therapists by specialization.
func (s *TherapistService) ListBySpecialization(ctx context.Context, specialization string) ([]*domain.Therapist, error) {
	return s.therapists.ListBySpecialization(ctx, specialization)
}

// Update applies profile changes, re-hashing the password when supplied.
func (s *TherapistService) Update(ctx context.Context, id string, input UpdateTherapistInput) (*domain.Therapist, error) {
	therapist, err := s.therapists.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}

	therapist.FirstName = input.FirstName
	therapist.LastName = input.LastName
	therapist.Specialization = input.Specialization
	therapist.Qualification = input.Qualification
	therapist.Experience = input.Experience
	therapist.Phone = input.Phone
	therapist.Bio = input.Bio
	therapist.Available = input.Available

	if strings.TrimSpace(input.Password) != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		therapist.PasswordHash = hash
	}

	if err := s.therapists.Update(ctx, therapist); err != nil {
		return nil, util.MapError(err)
	}
	return therapist, nil
}

// UpdateAvailability toggles whether a therapist accepts new sessions.
func (s *TherapistService) UpdateAvailability(ctx context.Context, id string, available bool) (*domain.Therapist, error) {
	therapist, err := s.therapists.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	therapist.Available = available
	if err := s.therapists.Update(ctx, therapist); err != nil {
		return nil, util.MapError(err)
	}
	return therapist, nil
}

// Delete removes a therapist account.
func (s *TherapistService) Delete(ctx context.Context, id string) error {
	if err := s.therapists.Delete(ctx, id); err != nil {
		return util.MapError(err)
	}
	return nil
}
