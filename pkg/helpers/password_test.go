package helpers

import (
	"strings"
	"testing"
)

func TestHashPasswordProducesVerifiableDigest(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt digest, got %q", hash)
	}
	if !CheckPassword(hash, "secret123") {
		t.Fatal("digest does not verify against original plaintext")
	}
	if CheckPassword(hash, "secret124") {
		t.Fatal("digest verified against wrong plaintext")
	}
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext are identical")
	}
	if !CheckPassword(h1, "secret123") || !CheckPassword(h2, "secret123") {
		t.Fatal("both digests should verify")
	}
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	if CheckPassword("not-a-bcrypt-digest", "anything") {
		t.Fatal("malformed digest should never verify")
	}
	if CheckPassword("", "anything") {
		t.Fatal("empty digest should never verify")
	}
}
