package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Nikhar-savaliya/blogsite-api/internal/user/domain"
)

const usernameSuffixLen = 8

// UsernameAllocator derives a unique handle from an email address, probing
// the user store for collisions.
type UsernameAllocator struct {
	store domain.UsernameChecker
}

func NewUsernameAllocator(store domain.UsernameChecker) *UsernameAllocator {
	return &UsernameAllocator{store: store}
}

// Allocate returns the local part of the email, or, when that handle is
// already taken, the local part with a random 8-character suffix appended.
// The suffixed form is not re-checked: the suffix comes from a 128-bit random
// id, so a second collision is accepted as astronomically unlikely rather
// than paying for a retry loop.
func (a *UsernameAllocator) Allocate(ctx context.Context, email string) (string, error) {
	username, _, _ := strings.Cut(email, "@")

	exists, err := a.store.UsernameExists(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error generating unique username: %w", err)
	}

	if exists {
		username += "-" + uuid.NewString()[:usernameSuffixLen]
	}

	return username, nil
}
