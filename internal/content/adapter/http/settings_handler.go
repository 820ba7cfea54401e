package http

import (
	"yogic-backend/internal/content/usecase"
	apperrors "yogic-backend/internal/shared/errors"
	"yogic-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"

	authhttp "yogic-backend/internal/auth/adapter/http"
)

// SettingsHTTPHandler handles HTTP requests for the site settings singleton
type SettingsHTTPHandler struct {
	usecase usecase.SettingsUsecaseInterface
	log     logger.Logger
}

// NewSettingsHTTPHandler creates a new settings HTTP handler
func NewSettingsHTTPHandler(uc usecase.SettingsUsecaseInterface, log logger.Logger) *SettingsHTTPHandler {
	return &SettingsHTTPHandler{usecase: uc, log: log}
}

// SetupSettingsRoutes sets up the settings routes. Reads are public so the
// site can render the contact block; the update sits behind the admin token.
func (h *SettingsHTTPHandler) SetupSettingsRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	router.Get("/api/settings", h.GetSettings)
	router.Put("/api/admin/settings", middleware.Protect(), h.UpdateSettings)
}

// GetSettings returns the settings singleton, seeding defaults on first read.
func (h *SettingsHTTPHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.usecase.GetSettings(c.Context())
	if err != nil {
		h.log.Error("Failed to get settings: ", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch settings",
		})
	}
	return c.JSON(settings)
}

// UpdateSettings replaces both settings fields in one upsert.
func (h *SettingsHTTPHandler) UpdateSettings(c *fiber.Ctx) error {
	var req usecase.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.UserContext()
	settings, err := h.usecase.UpdateSettings(ctx, req)
	if err != nil {
		if apperrors.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "adminPhone and welcomeMessage are required",
			})
		}
		h.log.Error("Failed to update settings: ", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}

	h.log.WithContext(ctx).Info("Updated site settings")
	return c.JSON(settings)
}
