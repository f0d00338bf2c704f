package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

// JWTConfig carries the signing parameters shared by the issuer and the
// bearer-auth middleware. It is built once at startup and passed explicitly;
// there is no ambient lookup.
type JWTConfig struct {
	Secret        string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

// Validate fails fast on an unusable configuration.
func (c JWTConfig) Validate() error {
	if c.Secret == "" {
		return errors.New("jwt: secret must not be empty")
	}
	if c.Issuer == "" || c.Audience == "" {
		return errors.New("jwt: issuer and audience must not be empty")
	}
	if c.ExpiryMinutes <= 0 {
		return errors.New("jwt: expiry minutes must be positive")
	}
	return nil
}

// tokenClaims is the claim set carried by issued tokens. UniqueName mirrors
// the JWT unique_name registered claim and holds the username.
type tokenClaims struct {
	UniqueName string   `json:"unique_name"`
	Roles      []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens asserting a user's identity.
type JWTIssuer struct {
	cfg JWTConfig
}

func NewJWTIssuer(cfg JWTConfig) (*JWTIssuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &JWTIssuer{cfg: cfg}, nil
}

// Issue builds a token with sub = user id, unique_name = username and a fresh
// random jti, expiring ExpiryMinutes from now.
func (i *JWTIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		UniqueName: user.Username,
		Roles:      user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(i.cfg.ExpiryMinutes) * time.Minute)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.cfg.Secret))
}
