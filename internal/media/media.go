package media

import (
	"fmt"

	authhttp "yogic-backend/internal/auth/adapter/http"
	mediahttp "yogic-backend/internal/media/adapter/http"
	"yogic-backend/internal/media/adapter/storage"
	"yogic-backend/internal/media/config"
	"yogic-backend/internal/media/domain/repository"
	"yogic-backend/internal/media/usecase"
	"yogic-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// MediaModule represents the image upload module
type MediaModule struct {
	store   repository.FileStore
	usecase usecase.UploadUsecaseInterface
	handler *mediahttp.UploadHTTPHandler
	config  *config.Config
}

// NewMediaModule creates a new media module instance
func NewMediaModule(cfg *config.Config, log logger.Logger) (*MediaModule, error) {
	store, err := storage.NewLocalFileStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	uploadUsecase := usecase.NewUploadUsecase(store, cfg, log)
	handler := mediahttp.NewUploadHTTPHandler(uploadUsecase, log)

	return &MediaModule{
		store:   store,
		usecase: uploadUsecase,
		handler: handler,
		config:  cfg,
	}, nil
}

// RegisterRoutes registers the upload route and serves stored images
// statically under /uploads.
func (mm *MediaModule) RegisterRoutes(app *fiber.App, middleware *authhttp.AuthMiddleware) {
	mm.handler.SetupUploadRoutes(app, middleware)
	app.Static("/uploads", mm.config.UploadDir)
}
