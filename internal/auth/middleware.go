package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	principalKey = "auth_principal"
	bearerPrefix = "Bearer "
)

// TokenVerifier is the slice of the token codec the filter needs.
type TokenVerifier interface {
	SubjectOf(token string) (string, error)
	IsValid(token string) bool
	IsExpired(token string) bool
}

// IdentityResolver materializes a principal from a token subject.
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*Identity, error)
}

// Middleware runs once per inbound request and attaches a principal to the
// request when a genuine, unexpired bearer token names a known account. It
// never rejects a request on its own: a missing, malformed, forged or
// expired token leaves the request anonymous and the pipeline continues.
// Route guards decide whether anonymous access is acceptable downstream.
type Middleware struct {
	tokens     TokenVerifier
	identities IdentityResolver
	bypass     []string
	logger     *zap.Logger
}

// NewMiddleware constructs the filter. bypassPrefixes lists path prefixes
// exempted from authentication entirely.
func NewMiddleware(tokens TokenVerifier, identities IdentityResolver, bypassPrefixes []string, logger *zap.Logger) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{
		tokens:     tokens,
		identities: identities,
		bypass:     bypassPrefixes,
		logger:     logger,
	}
}

// Handle implements the per-request authentication pass. The fixed order is
// bypass check, bearer extraction, decode, resolve, then the validity gate;
// only a request that clears every step gets a principal installed.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	path := c.Path()
	for _, prefix := range m.bypass {
		if strings.HasPrefix(path, prefix) {
			return c.Next()
		}
	}

	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return c.Next()
	}
	token := header[len(bearerPrefix):]

	subject, err := m.tokens.SubjectOf(token)
	if err != nil {
		m.logger.Debug("bearer token rejected",
			zap.String("path", path),
			zap.Error(err))
		return c.Next()
	}

	if _, attached := PrincipalFromContext(c); attached {
		return c.Next()
	}

	identity, err := m.identities.Resolve(c.Context(), subject)
	if err != nil {
		m.logger.Debug("token subject did not resolve",
			zap.String("subject", subject),
			zap.Error(err))
		return c.Next()
	}

	if m.tokens.IsValid(token) && !m.tokens.IsExpired(token) {
		c.Locals(principalKey, identity)
	} else {
		m.logger.Debug("token failed validity gate", zap.String("subject", subject))
	}

	return c.Next()
}

// PrincipalFromContext retrieves the identity attached to this request.
func PrincipalFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
