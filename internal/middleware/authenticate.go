package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/service"
)

// UserIDKey is the request-local key under which the authenticated user id is
// stored for downstream handlers.
const UserIDKey = "userID"

const bearerPrefix = "Bearer "

// Authenticate gates a route behind a valid bearer token. It verifies the
// Authorization header against the token service and attaches the resolved
// user id to the request; rejections propagate to the error handler as 401s.
func Authenticate(verifier service.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return autherror.ErrMissingAuthHeader
		}

		userID, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, userID)

		return c.Next()
	}
}

// UserID returns the authenticated user id attached by Authenticate, or ""
// when the request did not pass through the gate.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
