package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, exp, err := tm.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("expiry too close: %v", exp)
	}

	uid, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if uid != "user-1" {
		t.Fatalf("subject = %q, want user-1", uid)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)
	token, _, err := tm.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tm.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)
	token, _, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("Verify(%q) err = %v, want ErrTokenInvalid", tok, err)
		}
	}
}
