package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// validation
	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters long")
	ErrTitleRequired     = errors.New("blog title is required")
	ErrDescRequired      = errors.New("blog description is required")
	ErrBannerRequired    = errors.New("blog banner is required")
	ErrContentRequired   = errors.New("blog content is required")
	ErrTagsRequired      = errors.New("tags are required")

	ErrEmailAlreadyInUse  = errors.New("user already exists with this email")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("email or password incorrect")

	// auth gate
	ErrMissingAuthHeader = errors.New("authorization header is missing or invalid")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
)

// StatusCode maps an error to the HTTP status the boundary layer responds
// with. Anything unrecognized is internal and maps to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrAllFieldsRequired),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrDescRequired),
		errors.Is(err, ErrBannerRequired),
		errors.Is(err, ErrContentRequired),
		errors.Is(err, ErrTagsRequired),
		errors.Is(err, ErrEmailAlreadyInUse),
		errors.Is(err, ErrInvalidCredentials):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrMissingAuthHeader),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
