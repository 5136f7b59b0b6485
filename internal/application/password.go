package application

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword computes the unsalted SHA-256 hex digest used for stored
// credentials. The scheme is deliberately compatible with the records
// written by earlier releases: no salt, no iteration count. That makes the
// digests vulnerable to precomputed-table attacks, and a production
// deployment should move to a salted KDF behind a re-hashing migration.
// Until such a migration exists the scheme must not change, or every stored
// credential stops verifying.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a stored digest with a candidate password. It
// returns ErrInvalidCredentials on mismatch so callers can surface a single
// sentinel for bad logins.
func VerifyPassword(storedHash, password string) error {
	candidate := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1 {
		return nil
	}
	return ErrInvalidCredentials
}
