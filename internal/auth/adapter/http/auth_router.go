package http

import (
	"errors"

	"yogic-backend/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for admin authentication
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface) *AuthHTTPHandler {
	return &AuthHTTPHandler{usecase: uc}
}

// SetupAuthRoutes sets up the admin authentication routes
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router, middleware *AuthMiddleware) {
	admin := router.Group("/api/admin")
	admin.Post("/create", h.Bootstrap)
	admin.Post("/login", middleware.RateLimiter(), h.Login)
}

// Bootstrap creates the single admin account. Intended to be called once
// after deployment; subsequent calls fail with a conflict.
func (h *AuthHTTPHandler) Bootstrap(c *fiber.Ctx) error {
	admin, err := h.usecase.Bootstrap(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Admin already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Admin creation failed",
		})
	}

	return c.JSON(admin)
}

// Login verifies admin credentials and returns a signed bearer token.
func (h *AuthHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	token, err := h.usecase.Login(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAdminNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User not found",
			})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Login failed",
			})
		}
	}

	return c.JSON(fiber.Map{"token": token})
}
