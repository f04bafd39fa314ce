package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = 10

// PasswordService hashes and verifies passwords with bcrypt. The cost
// is injectable so tests can run at the minimum cost.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a service with the given cost; values
// below bcrypt's minimum fall back to DefaultCost.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. The digest embeds its
// own salt and cost. Plaintext never appears in errors or logs.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead.
		return "", errors.New("password must be 72 bytes or fewer")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. The
// underlying comparison is constant-time.
func (p *PasswordService) Verify(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
