package http

import (
	"errors"

	"yogic-backend/internal/media/usecase"
	apperrors "yogic-backend/internal/shared/errors"
	"yogic-backend/internal/shared/logger"
	"yogic-backend/internal/shared/utils"

	"github.com/gofiber/fiber/v2"

	authhttp "yogic-backend/internal/auth/adapter/http"
)

// UploadHTTPHandler handles HTTP requests for image uploads
type UploadHTTPHandler struct {
	usecase usecase.UploadUsecaseInterface
	log     logger.Logger
}

// NewUploadHTTPHandler creates a new upload HTTP handler
func NewUploadHTTPHandler(uc usecase.UploadUsecaseInterface, log logger.Logger) *UploadHTTPHandler {
	return &UploadHTTPHandler{usecase: uc, log: log}
}

// SetupUploadRoutes sets up the upload route behind the admin middleware.
func (h *UploadHTTPHandler) SetupUploadRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	router.Post("/api/upload", middleware.Protect(), h.Upload)
}

// Upload accepts one multipart image under the field name "image" and
// returns the stored file's public URL.
func (h *UploadHTTPHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("Failed to open uploaded file: ", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read upload",
		})
	}
	defer file.Close()

	ctx := c.UserContext()
	url, err := h.usecase.Upload(ctx, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		if apperrors.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": validationMessage(err),
			})
		}
		h.log.Error("Failed to store upload: ", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store upload",
		})
	}

	if adminID, err := utils.GetAdminIDFromContext(ctx); err == nil {
		h.log.Infof("Admin %s uploaded %s", adminID, fileHeader.Filename)
	}
	return c.JSON(fiber.Map{"imageUrl": url})
}

func validationMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Invalid upload"
}
