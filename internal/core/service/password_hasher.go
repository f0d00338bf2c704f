package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// SHA256Hasher is the default password scheme: a single unsalted SHA-256
// digest, base64-encoded. It is deterministic, which keeps it compatible with
// hashes already stored in existing deployments. Being unsalted it is
// vulnerable to rainbow-table attacks; this is inherited behaviour, kept on
// purpose. New deployments can opt into BcryptHasher via configuration.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash returns the base64-encoded SHA-256 digest of password. Total over any
// input; the error is always nil and exists to satisfy the port.
func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares it to the stored hash.
func (h SHA256Hasher) Verify(password, hash string) bool {
	computed, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// BcryptHasher is the salted alternative scheme. Hashes it produces are not
// deterministic and are incompatible with SHA256Hasher output, so switching an
// existing deployment invalidates all stored hashes.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
