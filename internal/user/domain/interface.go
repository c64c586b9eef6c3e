package domain

//go:generate mockgen -destination=../../../mocks/mock_user_repository.go -package=mocks github.com/Nikhar-savaliya/blogsite-api/internal/user/domain UserRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *User) error
}

// UsernameChecker is the single capability the username allocator needs from
// the user store.
type UsernameChecker interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}
