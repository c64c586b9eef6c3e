package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nikhar-savaliya/blogsite-api/internal/blog/dto"
	"github.com/Nikhar-savaliya/blogsite-api/internal/blog/service"
	apperror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
	"github.com/Nikhar-savaliya/blogsite-api/internal/middleware"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) CreateOrUpdate(c *fiber.Ctx) error {
	var input dto.CreateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrTitleRequired
	}

	resp, err := h.blogService.CreateOrUpdate(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BlogHandler) Latest(c *fiber.Ctx) error {
	var input dto.PageInput
	if err := c.BodyParser(&input); err != nil {
		input.Page = 1
	}

	resp, err := h.blogService.Latest(c.Context(), input.Page)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BlogHandler) PublishedCount(c *fiber.Ctx) error {
	resp, err := h.blogService.CountPublished(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BlogHandler) Trending(c *fiber.Ctx) error {
	resp, err := h.blogService.Trending(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BlogHandler) Search(c *fiber.Ctx) error {
	var input dto.SearchBlogInput
	if err := c.BodyParser(&input); err != nil {
		input = dto.SearchBlogInput{}
	}

	resp, err := h.blogService.Search(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BlogHandler) SearchCount(c *fiber.Ctx) error {
	var input dto.SearchBlogInput
	if err := c.BodyParser(&input); err != nil {
		input = dto.SearchBlogInput{}
	}

	resp, err := h.blogService.SearchCount(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
