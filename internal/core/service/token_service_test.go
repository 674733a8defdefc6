package service

import (
	"errors"
	"testing"
	"time"

	"github.com/resumehub/resume-api/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewTokenService(testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	svc, err := NewTokenService(testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Still inside the window.
	svc.now = func() time.Time { return issued.Add(29 * time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// Clock past the 30-minute window.
	svc.now = func() time.Time { return issued.Add(31 * time.Minute) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenService(testSecret, time.Minute)
	verifier, _ := NewTokenService("another-secret-entirely!", time.Minute)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc, _ := NewTokenService(testSecret, time.Minute)

	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc, _ := NewTokenService(testSecret, time.Minute)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	if _, err := NewTokenService("short", time.Minute); err == nil {
		t.Fatalf("expected error for short secret")
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService(testSecret, 0)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	if svc.ttl != DefaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTokenTTL, svc.ttl)
	}
}
