package ports

import (
	"context"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// AuthService covers registration, credential checks, token issuance and
// account deletion.
type AuthService interface {
	// Register creates an account and returns its identity, or
	// domain.ErrUserExists when the username is already taken.
	Register(ctx context.Context, username, password string) (int, error)
	// ValidateCredentials reports whether the username/password pair matches a
	// stored account. An unknown username is a plain false, not an error.
	ValidateCredentials(ctx context.Context, username, password string) (bool, error)
	// GenerateToken issues a bearer token for the named user, or
	// domain.ErrUserNotFound when no such account exists.
	GenerateToken(ctx context.Context, username string) (string, error)
	// DeleteUser removes the account, or domain.ErrUserNotFound.
	DeleteUser(ctx context.Context, id int) error
}

// PasswordHasher turns plaintext passwords into storable hashes and checks
// plaintexts against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer builds signed, time-bounded bearer tokens for a user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
