package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, expiresAt, err := codec.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute {
		t.Fatalf("expiry too close: %v remaining", remaining)
	}

	subject, err := codec.SubjectOf(token)
	if err != nil {
		t.Fatalf("SubjectOf returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("subject = %q, want alice@example.com", subject)
	}

	if !codec.IsValid(token) {
		t.Fatal("freshly issued token should be valid")
	}
	if codec.IsExpired(token) {
		t.Fatal("freshly issued token should not be expired")
	}
}

func TestExpiredTokenStillDecodes(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Minute)

	token, _, err := codec.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := codec.SubjectOf(token)
	if err != nil {
		t.Fatalf("SubjectOf should succeed on an expired token, got %v", err)
	}
	if subject != "bob@example.com" {
		t.Fatalf("subject = %q, want bob@example.com", subject)
	}

	if codec.IsValid(token) {
		t.Fatal("expired token reported valid")
	}
	if !codec.IsExpired(token) {
		t.Fatal("expired token not reported expired")
	}
}

func TestGarbageTokenNeitherValidNorExpired(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "header.payload"} {
		if _, err := codec.SubjectOf(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("SubjectOf(%q) = %v, want ErrTokenInvalid", token, err)
		}
		if codec.IsValid(token) {
			t.Fatalf("IsValid(%q) = true", token)
		}
		if codec.IsExpired(token) {
			t.Fatalf("IsExpired(%q) = true", token)
		}
	}
}

func TestForgedTokenRejected(t *testing.T) {
	issuer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, _, err := issuer.Issue("mallory@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.SubjectOf(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong-secret SubjectOf = %v, want ErrTokenInvalid", err)
	}
	if verifier.IsValid(token) {
		t.Fatal("wrong-secret token reported valid")
	}
}

func TestZeroTTLDefaults(t *testing.T) {
	codec := NewTokenCodec("test-secret", 0)

	_, expiresAt, err := codec.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 23*time.Hour {
		t.Fatalf("default TTL too short: %v remaining", remaining)
	}
}
