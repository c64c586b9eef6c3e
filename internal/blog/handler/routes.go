package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nikhar-savaliya/blogsite-api/internal/middleware"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/service"
)

func RegisterRoutes(app *fiber.App, h *BlogHandler, verifier service.TokenVerifier) {
	blogs := app.Group("/api/blogs")

	blogs.Post("/create-blog", middleware.Authenticate(verifier), h.CreateOrUpdate)
	blogs.Post("/latest-blogs", h.Latest)
	blogs.Get("/all-publish-blogs-count", h.PublishedCount)
	blogs.Get("/trending-blogs", h.Trending)
	blogs.Post("/search-blog", h.Search)
	blogs.Post("/search-blog-count", h.SearchCount)
}
