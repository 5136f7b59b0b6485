package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	vErr := &ValidationError{}
	if vErr.HasErrors() {
		t.Fatal("empty validation error must report no errors")
	}

	vErr.add("email", "email is required")
	vErr.add("email", "email is invalid")
	if !vErr.HasErrors() {
		t.Fatal("expected recorded errors")
	}
	if got := vErr.FieldErrors["email"]; got != "email is invalid" {
		t.Fatalf("later message must win, got %q", got)
	}

	wrapped := fmt.Errorf("register: %w", vErr)
	var unwrapped *ValidationError
	if !errors.As(wrapped, &unwrapped) {
		t.Fatal("wrapped validation error must unwrap")
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrUnauthorized, "unauthorized"},
		{ErrNotFound, "not_found"},
		{ErrDuplicateAccount, "duplicate_account"},
		{ErrAccountNotFound, "account_not_found"},
		{ErrInvalidCredentials, "invalid_credentials"},
		{fmt.Errorf("wrapped: %w", ErrNotFound), "not_found"},
		{&ValidationError{FieldErrors: map[string]string{"x": "y"}}, "validation"},
		{errors.New("boom"), "unexpected"},
	}
	for _, tc := range cases {
		if got := ErrorKind(tc.err); got != tc.want {
			t.Fatalf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
