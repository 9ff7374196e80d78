package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindconnect/mind-service/internal/config"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/pkg/util"
)

type fakeUserRepo struct {
	byEmail      map[string]*domain.User
	emailLookups int
	creates      int
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.creates++
	u.ID = "u-new"
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ string) error       { return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.emailLookups++
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) { return nil, nil }

func (r *fakeUserRepo) ListByRole(_ context.Context, _ string) ([]*domain.User, error) {
	return nil, nil
}

type fakeTherapistRepo struct {
	byEmail      map[string]*domain.Therapist
	emailLookups int
	creates      int
}

func (r *fakeTherapistRepo) Create(_ context.Context, t *domain.Therapist) error {
	r.creates++
	t.ID = "t-new"
	r.byEmail[t.Email] = t
	return nil
}

func (r *fakeTherapistRepo) Update(_ context.Context, _ *domain.Therapist) error { return nil }
func (r *fakeTherapistRepo) Delete(_ context.Context, _ string) error            { return nil }

func (r *fakeTherapistRepo) GetByID(_ context.Context, id string) (*domain.Therapist, error) {
	for _, t := range r.byEmail {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTherapistRepo) GetByEmail(_ context.Context, email string) (*domain.Therapist, error) {
	r.emailLookups++
	if t, ok := r.byEmail[email]; ok {
		return t, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTherapistRepo) List(_ context.Context) ([]*domain.Therapist, error) { return nil, nil }

func (r *fakeTherapistRepo) ListAvailable(_ context.Context) ([]*domain.Therapist, error) {
	return nil, nil
}

func (r *fakeTherapistRepo) ListBySpecialization(_ context.Context, _ string) ([]*domain.Therapist, error) {
	return nil, nil
}

type fakeRoleRepo struct {
	byName map[string]*domain.Role
}

func (r *fakeRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	if role, ok := r.byName[name]; ok {
		return role, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeRoleRepo) List(_ context.Context) ([]*domain.Role, error) { return nil, nil }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}
	return string(hash)
}

func newTestAuthService(limiter LoginLimiter) (*AuthService, *fakeUserRepo, *fakeTherapistRepo) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{}}
	therapists := &fakeTherapistRepo{byEmail: map[string]*domain.Therapist{}}
	roles := &fakeRoleRepo{byName: map[string]*domain.Role{
		domain.RoleUser:      {ID: "r-user", Name: domain.RoleUser},
		domain.RoleAdmin:     {ID: "r-admin", Name: domain.RoleAdmin},
		domain.RoleTherapist: {ID: "r-therapist", Name: domain.RoleTherapist},
	}}

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
			BcryptCost:      bcrypt.MinCost,
		},
	}
	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo:      users,
		TherapistRepo: therapists,
		RoleRepo:      roles,
		LoginLimiter:  limiter,
	})
	return svc, users, therapists
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *util.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DomainError", err)
	}
	return de.Code
}

func TestLoginSuccess(t *testing.T) {
	svc, users, _ := newTestAuthService(nil)
	users.byEmail["alice@example.com"] = &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "hunter2"),
		RoleName:     domain.RoleUser,
	}

	result, err := svc.Login(context.Background(), "alice@example.com", "hunter2", "user", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Kind != domain.AccountKindUser {
		t.Fatalf("kind = %q, want USER", result.Kind)
	}
	if result.User == nil || result.Therapist != nil {
		t.Fatal("user login should return a user and no therapist")
	}
	if result.Token == "" {
		t.Fatal("login returned no token")
	}
	if !time.Now().Before(result.ExpiresAt) {
		t.Fatal("login token already expired")
	}

	subject, err := svc.TokenCodec().SubjectOf(result.Token)
	if err != nil || subject != "alice@example.com" {
		t.Fatalf("token subject = %q (%v), want alice@example.com", subject, err)
	}
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	svc, users, _ := newTestAuthService(nil)
	users.byEmail["alice@example.com"] = &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong", "user", "127.0.0.1")
	if code := domainCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("code = %q, want UNAUTHORIZED", code)
	}
}

func TestLoginHintedStorePreCheck(t *testing.T) {
	svc, users, therapists := newTestAuthService(nil)
	users.byEmail["alice@example.com"] = &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}

	// A therapist-hinted login for a user-only account reads as "not found"
	// before any credential check happens.
	_, err := svc.Login(context.Background(), "alice@example.com", "hunter2", "therapist", "127.0.0.1")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
	if users.emailLookups != 0 {
		t.Fatalf("user store consulted %d times on a therapist-hinted login", users.emailLookups)
	}
	if therapists.emailLookups != 1 {
		t.Fatalf("therapist store consulted %d times, want 1", therapists.emailLookups)
	}
}

func TestLoginRateLimited(t *testing.T) {
	svc, users, _ := newTestAuthService(denyAllLimiter{})
	users.byEmail["alice@example.com"] = &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}

	_, err := svc.Login(context.Background(), "alice@example.com", "hunter2", "user", "127.0.0.1")
	if code := domainCode(t, err); code != "RATE_LIMITED" {
		t.Fatalf("code = %q, want RATE_LIMITED", code)
	}
	if users.emailLookups != 0 {
		t.Fatal("throttled login should not touch the account store")
	}
}

func TestRegisterUserDefaults(t *testing.T) {
	svc, users, _ := newTestAuthService(nil)

	user, err := svc.RegisterUser(context.Background(), RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "hunter2",
	})
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if user.RoleName != domain.RoleUser {
		t.Fatalf("role = %q, want USER", user.RoleName)
	}
	if user.PasswordHash == "hunter2" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if users.creates != 1 {
		t.Fatalf("creates = %d, want 1", users.creates)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc, users, _ := newTestAuthService(nil)
	users.byEmail["alice@example.com"] = &domain.User{ID: "u1", Email: "alice@example.com"}

	_, err := svc.RegisterUser(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("code = %q, want CONFLICT", code)
	}
	if users.creates != 0 {
		t.Fatal("duplicate registration mutated the store")
	}
}

func TestRegisterUserBlankPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(nil)

	_, err := svc.RegisterUser(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Password: "   ",
	})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}
	if users.creates != 0 {
		t.Fatal("invalid registration mutated the store")
	}
}

func TestRegisterUserHintedRole(t *testing.T) {
	svc, _, _ := newTestAuthService(nil)

	user, err := svc.RegisterUser(context.Background(), RegisterUserInput{
		Email:           "root@example.com",
		Password:        "hunter2",
		AccountTypeHint: "admin",
	})
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if user.RoleName != domain.RoleAdmin {
		t.Fatalf("role = %q, want ADMIN", user.RoleName)
	}
}

func TestRegisterTherapist(t *testing.T) {
	svc, _, therapists := newTestAuthService(nil)

	therapist, err := svc.RegisterTherapist(context.Background(), RegisterTherapistInput{
		FirstName:      "Dana",
		LastName:       "Lee",
		Email:          "dana@example.com",
		Password:       "hunter2",
		Specialization: "Anxiety",
	})
	if err != nil {
		t.Fatalf("RegisterTherapist returned error: %v", err)
	}
	if !therapist.Available {
		t.Fatal("new therapist should start available")
	}
	if therapists.creates != 1 {
		t.Fatalf("creates = %d, want 1", therapists.creates)
	}

	_, err = svc.RegisterTherapist(context.Background(), RegisterTherapistInput{
		Email:    "dana@example.com",
		Password: "hunter2",
	})
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("code = %q, want CONFLICT", code)
	}
}
