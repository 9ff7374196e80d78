package service

import (
	"context"
	"strings"

	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/pkg/util"
)

// UpdateUserInput carries mutable profile fields. A non-empty Password
// replaces the stored hash.
type UpdateUserInput struct {
	FirstName        string
	LastName         string
	Phone            string
	Age              *int
	EmergencyContact string
	Password         string
}

// UserService manages end-user profiles.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// ListByRole returns users holding the named role.
func (s *UserService) ListByRole(ctx context.Context, roleName string) ([]*domain.User, error) {
	return s.users.ListByRole(ctx, strings.ToUpper(roleName))
}

// Update applies profile changes, re-hashing the password when supplied.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, util.MapError(err)
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Age = input.Age
	user.EmergencyContact = input.EmergencyContact

	if strings.TrimSpace(input.Password) != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, util.MapError(err)
	}
	return user, nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return util.MapError(err)
	}
	return nil
}
