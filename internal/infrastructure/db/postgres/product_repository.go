package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// ProductRepository persists catalog products in the products table.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type productRecord struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (productRecord) TableName() string { return "products" }

func toProductRecord(p *domain.Product) *productRecord {
	return &productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	var rec productRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	product := rec.toDomain()
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (int, error) {
	rec := toProductRecord(product)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return rec.ID, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	rec := toProductRecord(product)
	res := r.db.WithContext(ctx).Model(&productRecord{ID: rec.ID}).
		Select("name", "description", "price", "updated_at").
		Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	res := r.db.WithContext(ctx).Delete(&productRecord{}, product.ID)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var recs []productRecord
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]domain.Product, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}
