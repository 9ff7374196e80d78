package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/repository"
)

var (
	// ErrIdentityNotFound means an email matched neither account store.
	ErrIdentityNotFound = errors.New("no identity for this email")
	// ErrDefaultRoleMissing means the role catalog lacks the USER role.
	// This is a startup-time misconfiguration, not a per-request condition.
	ErrDefaultRoleMissing = errors.New("default role missing from role catalog")
)

// Identity is the resolved principal for one request. Exactly one of User or
// Therapist is set, matching Kind. It lives for the request and is never
// persisted.
type Identity struct {
	Kind      domain.AccountKind
	Email     string
	Roles     []string
	User      *domain.User
	Therapist *domain.Therapist
}

// HasRole reports whether the identity carries the named role.
func (id *Identity) HasRole(name string) bool {
	for _, r := range id.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Resolver decides which of the two disjoint account stores owns an email
// and derives the role set. The stores are not guaranteed disjoint from each
// other, so the user store always takes precedence over the therapist store.
type Resolver struct {
	users      repository.UserRepository
	therapists repository.TherapistRepository
	roles      repository.RoleRepository
}

// NewResolver constructs a resolver over the two account stores and the
// role catalog.
func NewResolver(users repository.UserRepository, therapists repository.TherapistRepository, roles repository.RoleRepository) *Resolver {
	return &Resolver{users: users, therapists: therapists, roles: roles}
}

// Resolve materializes the identity for an email. Lookup order is fixed:
// the user store first, the therapist store second. An email present in
// both stores always resolves as a user.
func (r *Resolver) Resolve(ctx context.Context, email string) (*Identity, error) {
	user, err := r.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return &Identity{
			Kind:  domain.AccountKindUser,
			Email: user.Email,
			Roles: []string{user.RoleName},
			User:  user,
		}, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}

	therapist, err := r.therapists.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return &Identity{
			Kind:      domain.AccountKindTherapist,
			Email:     therapist.Email,
			Roles:     []string{domain.RoleTherapist},
			Therapist: therapist,
		}, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}

	return nil, ErrIdentityNotFound
}

// DefaultRole maps an optional account type hint onto a catalog role for a
// brand-new account. The hint is normalized case-insensitively; an unknown
// or empty hint falls back to the USER role. A catalog without USER is a
// fatal configuration error.
func (r *Resolver) DefaultRole(ctx context.Context, hint string) (*domain.Role, error) {
	name := strings.ToUpper(strings.TrimSpace(hint))
	if name != "" {
		role, err := r.roles.GetByName(ctx, name)
		if err == nil {
			return role, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	role, err := r.roles.GetByName(ctx, domain.DefaultRoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDefaultRoleMissing
		}
		return nil, err
	}
	return role, nil
}
