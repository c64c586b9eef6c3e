package handler

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/dto"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/service"
)

const minPasswordLen = 6

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.ErrAllFieldsRequired
	}

	if err := validateRegisterInput(input); err != nil {
		return err
	}

	if _, err := h.userService.Register(c.Context(), input); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully. Please login to continue.",
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.ErrAllFieldsRequired
	}

	if input.Email == "" || input.Password == "" {
		return autherror.ErrAllFieldsRequired
	}

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func validateRegisterInput(input dto.RegisterInput) error {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return autherror.ErrAllFieldsRequired
	}
	if !emailRegex.MatchString(input.Email) {
		return autherror.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLen {
		return autherror.ErrPasswordTooShort
	}

	return nil
}
