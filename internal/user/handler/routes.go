package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *UserHandler) {
	users := app.Group("/api/users")
	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
}
