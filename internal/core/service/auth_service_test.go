package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (int, error) {
	id := r.nextID
	r.nextID++
	stored := cloneUser(user)
	stored.ID = id
	r.users[id] = stored
	return id, nil
}

func (r *stubUserRepo) Delete(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, user.ID)
	return nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id int, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &at
	return nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	issuer, err := NewJWTIssuer(JWTConfig{
		Secret:        "test-secret",
		Issuer:        "catalog-api",
		Audience:      "catalog-clients",
		ExpiryMinutes: 60,
	})
	if err != nil {
		panic(err)
	}
	return NewAuthService(repo, NewSHA256Hasher(), issuer, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	id, err := svc.Register(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive identity, got %d", id)
	}

	stored := repo.users[id]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewSHA256Hasher().Verify("pw", stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if stored.CreatedAt.IsZero() || time.Since(stored.CreatedAt) > time.Second {
		t.Fatalf("created_at not set to now: %v", stored.CreatedAt)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "other"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	count := 0
	for _, u := range repo.users {
		if u.Username == "alice" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one alice, got %d", count)
	}
}

func TestAuthService_ValidateCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	id, _ := svc.Register(context.Background(), "bob", "s3cret")

	ok, err := svc.ValidateCredentials(context.Background(), "bob", "s3cret")
	if err != nil || !ok {
		t.Fatalf("expected valid credentials, got ok=%v err=%v", ok, err)
	}
	if repo.users[id].LastLogin == nil {
		t.Fatalf("expected last login to be recorded")
	}

	ok, err = svc.ValidateCredentials(context.Background(), "bob", "wrong")
	if err != nil || ok {
		t.Fatalf("expected invalid password, got ok=%v err=%v", ok, err)
	}

	ok, err = svc.ValidateCredentials(context.Background(), "ghost", "s3cret")
	if err != nil || ok {
		t.Fatalf("expected unknown user to be false, got ok=%v err=%v", ok, err)
	}
}

func TestAuthService_GenerateToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.GenerateToken(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	id, _ := svc.Register(context.Background(), "carol", "pw")

	token, err := svc.GenerateToken(context.Background(), "carol")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if sub, _ := claims.GetSubject(); sub != "1" {
		t.Fatalf("expected sub %d, got %q", id, sub)
	}
	if claims["unique_name"] != "carol" {
		t.Fatalf("expected unique_name carol, got %v", claims["unique_name"])
	}
	if claims["jti"] == "" || claims["jti"] == nil {
		t.Fatalf("expected fresh jti claim")
	}
}

func TestAuthService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	id, _ := svc.Register(context.Background(), "dave", "pw")

	if err := svc.DeleteUser(context.Background(), id); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user to be gone, got %v", err)
	}

	if err := svc.DeleteUser(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
