package ports

import (
	"context"
	"time"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookups that miss return domain.ErrUserNotFound.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// Create inserts the user and returns the store-assigned identity.
	Create(ctx context.Context, user *domain.User) (int, error)
	Delete(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}
