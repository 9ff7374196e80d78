package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers malformed tokens and signature failures. Callers
// get no further detail about why a token was rejected.
var ErrTokenInvalid = errors.New("invalid token")

const tokenIssuer = "mindconnect"

// TokenCodec issues and validates stateless bearer tokens. A token carries a
// single identity claim (the account email) plus issue and expiry instants,
// signed with HS256 so the claim cannot be altered undetected. Nothing is
// stored server side; any instance holding the secret can validate a token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the given signing secret and validity
// window.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding subject, valid from now until now+ttl.
func (c *TokenCodec) Issue(subject string) (string, time.Time, error) {
	if len(c.secret) == 0 {
		return "", time.Time{}, ErrTokenInvalid
	}
	now := time.Now()
	expiresAt := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// SubjectOf verifies the signature and structure of a token and returns the
// embedded subject. Expiry is deliberately not checked here: an expired but
// genuine token still decodes, so the filter can resolve the identity before
// the validity gate. Any structural or signature failure is ErrTokenInvalid.
func (c *TokenCodec) SubjectOf(token string) (string, error) {
	claims, err := c.verify(token)
	if err != nil {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// IsValid reports whether the signature verifies and the token has not yet
// reached its expiry instant.
func (c *TokenCodec) IsValid(token string) bool {
	claims, err := c.verify(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return time.Now().Before(claims.ExpiresAt.Time)
}

// IsExpired reports whether the signature verifies and the expiry instant
// has passed. A structurally invalid token is neither valid nor expired.
func (c *TokenCodec) IsExpired(token string) bool {
	claims, err := c.verify(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !time.Now().Before(claims.ExpiresAt.Time)
}

func (c *TokenCodec) verify(token string) (*jwt.RegisteredClaims, error) {
	if len(c.secret) == 0 {
		return nil, ErrTokenInvalid
	}
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if _, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}); err != nil {
		return nil, err
	}
	if claims.Issuer != tokenIssuer {
		return nil, ErrTokenInvalid
	}
	return &claims, nil
}
