package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes credentials for storage and checks plaintexts
// against stored digests. Digests are salted, so two hashes of the same
// plaintext differ; only Verify equality is guaranteed.
type PasswordService interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type passwordService struct {
	cost int
}

// NewPasswordService creates a new PasswordService instance.
func NewPasswordService() PasswordService {
	return &passwordService{cost: bcrypt.DefaultCost}
}

func (s *passwordService) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

func (s *passwordService) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
