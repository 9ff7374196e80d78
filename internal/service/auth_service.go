package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/config"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/events"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/pkg/util"
)

// LoginResult carries everything the login endpoint returns. Exactly one of
// User or Therapist is set, matching Kind; password hashes are redacted at
// the handler layer.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Kind      domain.AccountKind
	User      *domain.User
	Therapist *domain.Therapist
}

// RegisterUserInput captures a new end-user registration.
type RegisterUserInput struct {
	FirstName        string
	LastName         string
	Email            string
	Password         string
	Phone            string
	Age              *int
	EmergencyContact string
	// AccountTypeHint optionally names the catalog role to assign. Unknown
	// or empty hints fall back to USER.
	AccountTypeHint string
}

// RegisterTherapistInput captures a new therapist registration.
type RegisterTherapistInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Specialization string
	Qualification  string
	Experience     int
	Phone          string
	Bio            string
}

// AuthService coordinates login and registration flows.
type AuthService struct {
	users      repository.UserRepository
	therapists repository.TherapistRepository
	resolver   *auth.Resolver
	codec      *auth.TokenCodec
	limiter    LoginLimiter
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo      repository.UserRepository
	TherapistRepo repository.TherapistRepository
	RoleRepo      repository.RoleRepository
	LoginLimiter  LoginLimiter
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		therapists: deps.TherapistRepo,
		resolver:   auth.NewResolver(deps.UserRepo, deps.TherapistRepo, deps.RoleRepo),
		codec:      auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		limiter:    deps.LoginLimiter,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates an account of the hinted kind. Existence is checked
// in the hinted store before any password work so a wrong-store login reads
// as "not found" rather than "invalid credentials"; past that point every
// verification failure collapses into the same generic credential error.
func (s *AuthService) Login(ctx context.Context, email, password, accountTypeHint, remoteAddr string) (*LoginResult, error) {
	if s.limiter != nil && !s.limiter.Allow(email+"|"+remoteAddr) {
		return nil, util.NewDomainError("RATE_LIMITED", "too many login attempts", http.StatusTooManyRequests, nil)
	}

	kind := domain.ParseAccountKind(accountTypeHint)
	result := &LoginResult{Kind: kind}
	var passwordHash string

	switch kind {
	case domain.AccountKindTherapist:
		therapist, err := s.therapists.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, util.NewNotFound("therapist", nil)
			}
			return nil, err
		}
		result.Therapist = therapist
		passwordHash = therapist.PasswordHash
	default:
		user, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, util.NewNotFound("user", nil)
			}
			return nil, err
		}
		result.User = user
		passwordHash = user.PasswordHash
	}

	if err := auth.ComparePassword(passwordHash, password); err != nil {
		return nil, util.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.codec.Issue(email)
	if err != nil {
		return nil, err
	}
	result.Token = token
	result.ExpiresAt = expiresAt
	return result, nil
}

// RegisterUser creates a new end-user account with a resolved default role.
func (s *AuthService) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, util.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if strings.TrimSpace(input.Password) == "" {
		return nil, util.NewValidationError("password cannot be empty", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role, err := s.resolver.DefaultRole(ctx, input.AccountTypeHint)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		PasswordHash:     hash,
		Phone:            input.Phone,
		Age:              input.Age,
		EmergencyContact: input.EmergencyContact,
		RoleID:           role.ID,
		RoleName:         role.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:   uuid.NewString(),
		Type: events.EventUserRegistered,
		Actor: events.Actor{
			Kind:   domain.AccountKindUser,
			UserID: &user.ID,
		},
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.RoleName,
		},
	})
	return user, nil
}

// RegisterTherapist creates a new therapist account. Therapists always get
// the fixed THERAPIST role; the role catalog is never consulted.
func (s *AuthService) RegisterTherapist(ctx context.Context, input RegisterTherapistInput) (*domain.Therapist, error) {
	if _, err := s.therapists.GetByEmail(ctx, input.Email); err == nil {
		return nil, util.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if strings.TrimSpace(input.Password) == "" {
		return nil, util.NewValidationError("password cannot be empty", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	therapist := &domain.Therapist{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordHash:   hash,
		Specialization: input.Specialization,
		Qualification:  input.Qualification,
		Experience:     input.Experience,
		Phone:          input.Phone,
		Bio:            input.Bio,
		Available:      true,
	}
	if err := s.therapists.Create(ctx, therapist); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:   uuid.NewString(),
		Type: events.EventTherapistRegistered,
		Actor: events.Actor{
			Kind:        domain.AccountKindTherapist,
			TherapistID: &therapist.ID,
		},
		Timestamp: time.Now(),
		Payload: events.TherapistRegisteredPayload{
			TherapistID:    therapist.ID,
			Email:          therapist.Email,
			Specialization: therapist.Specialization,
		},
	})
	return therapist, nil
}

// Resolver exposes the identity resolver for the request filter.
func (s *AuthService) Resolver() *auth.Resolver {
	return s.resolver
}

// TokenCodec exposes the token codec for the request filter.
func (s *AuthService) TokenCodec() *auth.TokenCodec {
	return s.codec
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
