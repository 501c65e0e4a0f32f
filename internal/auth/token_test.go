package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)

	tok, err := m.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	identity, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if identity.AccountID != 42 {
		t.Fatalf("account id mismatch: got %d want 42", identity.AccountID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -1*time.Second)

	tok, err := m.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", time.Hour).Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewManager("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("k", time.Hour)

	if _, err := m.Verify("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := m.Verify(""); !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestVerifyHeader(t *testing.T) {
	t.Parallel()

	m := NewManager("header-secret", time.Hour)
	tok, err := m.Issue(9)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	identity, err := m.VerifyHeader("Bearer " + tok)
	if err != nil {
		t.Fatalf("VerifyHeader error: %v", err)
	}
	if identity.AccountID != 9 {
		t.Fatalf("account id mismatch: got %d want 9", identity.AccountID)
	}

	if _, err := m.VerifyHeader(""); !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing for empty header, got %v", err)
	}
	if _, err := m.VerifyHeader(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for bare token, got %v", err)
	}
	if _, err := m.VerifyHeader("Basic dXNlcjpwYXNz"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for non-bearer scheme, got %v", err)
	}
}
