package ports

import (
	"context"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// CreateProductInput carries the fields of a create command. Field rules are
// enforced by the transport-layer validation gate before the service runs.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
}

// UpdateProductInput carries the fields of an update command.
type UpdateProductInput struct {
	ID          int
	Name        string
	Description string
	Price       float64
}

// ProductService exposes the catalog command and query handlers.
type ProductService interface {
	// Create inserts a new product and returns its identity.
	Create(ctx context.Context, input CreateProductInput) (int, error)
	// Update overwrites the mutable fields of an existing product. It returns
	// false (and no error) when the product does not exist.
	Update(ctx context.Context, input UpdateProductInput) (bool, error)
	// Delete removes a product, returning false when it does not exist.
	Delete(ctx context.Context, id int) (bool, error)
	// GetByID returns a product or a *domain.NotFoundError.
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	// List returns all products, newest first. No products is an empty slice.
	List(ctx context.Context) ([]domain.Product, error)
}
