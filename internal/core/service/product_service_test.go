package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/storecraft/catalog-api/internal/core/domain"
	"github.com/storecraft/catalog-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[int]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int]*domain.Product), nextID: 1}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (int, error) {
	id := r.nextID
	r.nextID++
	stored := cloneProduct(product)
	stored.ID = id
	r.products[id] = stored
	return id, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, product.ID)
	return nil
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type stubProductCache struct {
	entries     map[int]*domain.Product
	invalidated []int
}

func newStubProductCache() *stubProductCache {
	return &stubProductCache{entries: make(map[int]*domain.Product)}
}

func (c *stubProductCache) Get(_ context.Context, id int) (*domain.Product, error) {
	return cloneProduct(c.entries[id]), nil
}

func (c *stubProductCache) Set(_ context.Context, product *domain.Product) error {
	c.entries[product.ID] = cloneProduct(product)
	return nil
}

func (c *stubProductCache) Invalidate(_ context.Context, id int) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func newProductService(repo ports.ProductRepository, cache ports.ProductCache) *ProductService {
	return NewProductService(repo, cache, zerolog.Nop())
}

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, nil)

	id, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Price: 5})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive identity, got %d", id)
	}

	stored := repo.products[id]
	if stored == nil {
		t.Fatalf("product not persisted")
	}
	if time.Since(stored.CreatedAt) > time.Second {
		t.Fatalf("created_at not set to now: %v", stored.CreatedAt)
	}
	if stored.UpdatedAt != nil {
		t.Fatalf("expected nil updated_at on creation")
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubProductCache()
	svc := newProductService(repo, cache)

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Price: 5})

	ok, err := svc.Update(context.Background(), ports.UpdateProductInput{ID: id, Name: "B", Description: "desc", Price: 7})
	if err != nil || !ok {
		t.Fatalf("Update failed: ok=%v err=%v", ok, err)
	}

	stored := repo.products[id]
	if stored.Name != "B" || stored.Description != "desc" || stored.Price != 7 {
		t.Fatalf("fields not overwritten: %+v", stored)
	}
	if stored.UpdatedAt == nil {
		t.Fatalf("expected updated_at to be set")
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != id {
		t.Fatalf("expected cache invalidation for %d, got %v", id, cache.invalidated)
	}
}

func TestProductService_Update_Missing(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, nil)

	ok, err := svc.Update(context.Background(), ports.UpdateProductInput{ID: 999, Name: "B", Price: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected not-found signal")
	}
	if len(repo.products) != 0 {
		t.Fatalf("store mutated on missing update")
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, nil)

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Price: 5})

	ok, err := svc.Delete(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("Delete failed: ok=%v err=%v", ok, err)
	}
	if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected product to be gone, got %v", err)
	}

	ok, err = svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected not-found signal on second delete")
	}
}

func TestProductService_GetByID(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubProductCache()
	svc := newProductService(repo, cache)

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Price: 5})

	product, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if product.Name != "A" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if cache.entries[id] == nil {
		t.Fatalf("expected product to be cached after the first read")
	}

	// Second read must be served from the cache.
	delete(repo.products, id)
	cached, err := svc.GetByID(context.Background(), id)
	if err != nil || cached == nil {
		t.Fatalf("expected cache hit, got %v err=%v", cached, err)
	}
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	svc := newProductService(newStubProductRepo(), nil)

	_, err := svc.GetByID(context.Background(), 404)
	var nfe *domain.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nfe.Entity != "Product" || nfe.Key != 404 {
		t.Fatalf("unexpected not-found detail: %+v", nfe)
	}
}

func TestProductService_List(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, nil)

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty slice, got %v", products)
	}

	t1 := time.Now().UTC().Add(-time.Hour)
	t2 := time.Now().UTC()
	repo.products[1] = &domain.Product{ID: 1, Name: "older", Price: 1, CreatedAt: t1}
	repo.products[2] = &domain.Product{ID: 2, Name: "newer", Price: 2, CreatedAt: t2}
	repo.nextID = 3

	products, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 2 || products[0].Name != "newer" || products[1].Name != "older" {
		t.Fatalf("expected newest-first ordering, got %+v", products)
	}
}
