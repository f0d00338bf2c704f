package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storecraft/catalog-api/internal/api/metrics"
	"github.com/storecraft/catalog-api/internal/core/domain"
	"github.com/storecraft/catalog-api/internal/core/ports"
)

// ProductService implements the catalog command and query handlers. The cache
// is optional; when nil every read goes straight to the repository.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.ProductCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// Create inserts a new product and returns its identity.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (int, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return 0, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Int("product_id", id).Str("name", input.Name).Msg("product created")
	return id, nil
}

// Update overwrites the mutable fields of an existing product. A missing
// product is reported as (false, nil); nothing is written in that case.
func (s *ProductService) Update(ctx context.Context, input ports.UpdateProductInput) (bool, error) {
	product, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return false, nil
		}
		return false, err
	}

	now := time.Now().UTC()
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.UpdatedAt = &now

	if err := s.repo.Update(ctx, product); err != nil {
		return false, err
	}
	s.invalidate(ctx, product.ID)

	metrics.ProductsUpdatedTotal.Inc()
	return true, nil
}

// Delete removes a product, reporting (false, nil) when it does not exist.
func (s *ProductService) Delete(ctx context.Context, id int) (bool, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		return false, err
	}
	s.invalidate(ctx, id)

	metrics.ProductsDeletedTotal.Inc()
	return true, nil
}

// GetByID returns a single product, consulting the cache first. A miss in the
// store is raised as *domain.NotFoundError so the boundary can render an
// itemized 404.
func (s *ProductService) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int("product_id", id).Msg("product cache read failed")
		} else if cached != nil {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, &domain.NotFoundError{Entity: "Product", Key: id}
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.logger.Warn().Err(err).Int("product_id", id).Msg("product cache write failed")
		}
	}
	return product, nil
}

// List returns all products ordered by creation time, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *ProductService) invalidate(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int("product_id", id).Msg("product cache invalidation failed")
	}
}
