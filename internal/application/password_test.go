package application

import (
	"errors"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("produces the legacy hex digest", func(t *testing.T) {
		t.Parallel()

		// Digests must stay byte-compatible with records written by the
		// previous releases.
		if got := HashPassword("admin123"); got != "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9" {
			t.Fatalf("unexpected digest: %s", got)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		if HashPassword("pass123") != HashPassword("pass123") {
			t.Fatal("expected identical digests for identical passwords")
		}
	})

	t.Run("hashes the empty password", func(t *testing.T) {
		t.Parallel()

		if got := HashPassword(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
			t.Fatalf("unexpected digest for empty password: %s", got)
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	t.Run("accepts a matching password", func(t *testing.T) {
		t.Parallel()

		if err := VerifyPassword(HashPassword("pass123"), "pass123"); err != nil {
			t.Fatalf("VerifyPassword returned error: %v", err)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()

		err := VerifyPassword(HashPassword("pass123"), "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects a tampered digest", func(t *testing.T) {
		t.Parallel()

		err := VerifyPassword("not-a-digest", "pass123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
