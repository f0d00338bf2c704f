package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storecraft/catalog-api/internal/core/domain"
	"github.com/storecraft/catalog-api/internal/core/ports"
)

// AuthService implements registration, credential validation, token issuance
// and account deletion on top of a UserRepository, a PasswordHasher and a
// TokenIssuer.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer, logger: logger}
}

// Register creates a new account. The existence check and the insert are two
// separate store calls, so two concurrent registrations for the same username
// can both pass the check; the loser then fails on the unique constraint and
// surfaces as a store error rather than ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, password string) (int, error) {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("user_id", id).Str("username", username).Msg("user registered")
	return id, nil
}

// ValidateCredentials checks a username/password pair. An unknown username is
// reported as false, not as an error, so the caller cannot distinguish a bad
// password from a missing account. On success the last-login timestamp is
// updated best-effort.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return false, nil
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn().Err(err).Int("user_id", user.ID).Msg("failed to record last login")
	}
	return true, nil
}

// GenerateToken issues a bearer token for an existing user.
func (s *AuthService) GenerateToken(ctx context.Context, username string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(user)
}

// DeleteUser removes the account with the given identity.
func (s *AuthService) DeleteUser(ctx context.Context, id int) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
