package ports

import (
	"context"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
// Lookups that miss return domain.ErrProductNotFound.
type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	// Create inserts the product and returns the store-assigned identity.
	Create(ctx context.Context, product *domain.Product) (int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, product *domain.Product) error
	// ListAll returns every product ordered by creation time, newest first.
	ListAll(ctx context.Context) ([]domain.Product, error)
}

// ProductCache is a read-through cache over single-product lookups.
// Get returns (nil, nil) on a miss; cache failures are non-fatal to callers.
type ProductCache interface {
	Get(ctx context.Context, id int) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Invalidate(ctx context.Context, id int) error
}
