package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// UserRepository persists user accounts in the users table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRecord struct {
	ID           int      `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex"`
	Email        *string  `gorm:"uniqueIndex"`
	PasswordHash string
	Roles        []string `gorm:"serializer:json"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

func (userRecord) TableName() string { return "users" }

func toUserRecord(u *domain.User) *userRecord {
	rec := &userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
	if u.Email != "" {
		email := u.Email
		rec.Email = &email
	}
	if rec.Roles == nil {
		rec.Roles = []string{}
	}
	return rec
}

func (r *userRecord) toDomain() *domain.User {
	u := &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Roles:        r.Roles,
		CreatedAt:    r.CreatedAt,
		LastLogin:    r.LastLogin,
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	return u
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRecord{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int, error) {
	rec := toUserRecord(user)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return rec.ID, nil
}

func (r *UserRepository) Delete(ctx context.Context, user *domain.User) error {
	res := r.db.WithContext(ctx).Delete(&userRecord{}, user.ID)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).Update("last_login", at).Error
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
