package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt embeds the cost in every hash it produces, so raising this later
// keeps previously stored credentials verifiable.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives a salted one-way hash from a plaintext password. Two
// calls with the same input produce different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("password encryption failed: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash. A mismatch
// is not an error; an error is returned only when the stored hash itself is
// malformed.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("password comparison failed: %w", err)
}
