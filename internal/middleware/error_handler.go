package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	apperror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
)

// ErrorHandler is the centralized boundary between error kinds and HTTP
// responses. Every failure path ends here with a JSON body; internals are
// logged with detail but surfaced to the client as a generic message.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		status := apperror.StatusCode(err)
		message := err.Error()

		if status == fiber.StatusInternalServerError {
			logger.Error("internal error",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
			message = "internal server error"
		}

		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
