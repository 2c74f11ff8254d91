package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/cynric/familymanagement-backend/internal/domain/errors"
	"github.com/cynric/familymanagement-backend/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher com bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher; cost <= 0 usa bcrypt.DefaultCost
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", domainerrors.ErrInvalidInput, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
