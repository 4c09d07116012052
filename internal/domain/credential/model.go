package credential

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gymverse/internal/domain/record"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 4

// Domain errors
var (
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("new password must be at least 4 characters")
	ErrPasswordMismatch = errors.New("new passwords do not match")
)

// Credentials is the singleton admin credential record. The hash is the
// digest of the password joined with the salt; the salt is regenerated on
// every password change so old hashes are invalidated wholesale.
type Credentials struct {
	User      string `json:"user"`
	Salt      string `json:"salt"`
	Hash      string `json:"hash"`
	UpdatedAt string `json:"updatedAt"`
}

// HashPassword computes the hex digest of password and salt. This is a local
// single-operator tool: the scheme deters casual tampering, nothing more.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + "|" + salt))
	return hex.EncodeToString(sum[:])
}

// New creates a credential record for the given username and password with a
// freshly generated salt.
// PRE: user is non-empty
// POST: Returns a complete record; Hash verifies against password
func New(user, password string, now time.Time) Credentials {
	salt := record.NewID()
	return Credentials{
		User:      user,
		Salt:      salt,
		Hash:      HashPassword(password, salt),
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}
}

// Verify checks a login attempt against the stored record.
// PRE: Credentials record is complete
// POST: Returns ErrInvalidUsername or ErrInvalidPassword on mismatch
// INVARIANT: Credentials fields are not mutated
func (c *Credentials) Verify(user, password string) error {
	if user != c.User {
		return ErrInvalidUsername
	}
	if HashPassword(password, c.Salt) != c.Hash {
		return ErrInvalidPassword
	}
	return nil
}

// CheckPassword verifies only the password, for the change-password flow.
// INVARIANT: Credentials fields are not mutated
func (c *Credentials) CheckPassword(password string) error {
	if HashPassword(password, c.Salt) != c.Hash {
		return ErrInvalidPassword
	}
	return nil
}

// IsComplete reports whether the record holds everything a login check needs.
// INVARIANT: Credentials fields are not mutated
func (c *Credentials) IsComplete() bool {
	return c.User != "" && c.Salt != "" && c.Hash != ""
}
