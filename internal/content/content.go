package content

import (
	"fmt"

	authhttp "yogic-backend/internal/auth/adapter/http"
	contenthttp "yogic-backend/internal/content/adapter/http"
	"yogic-backend/internal/content/adapter/persistence"
	"yogic-backend/internal/content/adapter/persistence/mongodb"
	"yogic-backend/internal/content/config"
	"yogic-backend/internal/content/domain/repository"
	"yogic-backend/internal/content/usecase"
	"yogic-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentModule represents the complete site-content module: the four
// document collections plus the settings singleton.
type ContentModule struct {
	repository      repository.ContentRepository
	cache           repository.ContentCache
	contentUsecase  usecase.ContentUsecaseInterface
	settingsUsecase usecase.SettingsUsecaseInterface
	contentHandler  *contenthttp.ContentHTTPHandler
	settingsHandler *contenthttp.SettingsHTTPHandler
	config          *config.Config
}

// NewContentModule creates a new content module instance. The Redis client
// is optional; passing nil runs the module without the listing cache.
func NewContentModule(db *mongo.Database, redisClient *redis.Client, cfg *config.Config, log logger.Logger) (*ContentModule, error) {
	contentRepo, err := mongodb.NewMongoContentRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create content repository: %w", err)
	}
	settingsRepo := mongodb.NewMongoSettingsRepository(db)

	var cache repository.ContentCache
	if redisClient != nil {
		cache = persistence.NewRedisContentCache(redisClient, cfg.ContentCacheTTL, log)
	}

	contentUsecase := usecase.NewContentUsecase(contentRepo, cache, log)
	settingsUsecase := usecase.NewSettingsUsecase(settingsRepo)

	return &ContentModule{
		repository:      contentRepo,
		cache:           cache,
		contentUsecase:  contentUsecase,
		settingsUsecase: settingsUsecase,
		contentHandler:  contenthttp.NewContentHTTPHandler(contentUsecase, log),
		settingsHandler: contenthttp.NewSettingsHTTPHandler(settingsUsecase, log),
		config:          cfg,
	}, nil
}

// RegisterRoutes registers content and settings routes with the provided
// router, guarding mutations with the admin middleware.
func (cm *ContentModule) RegisterRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	cm.contentHandler.SetupContentRoutes(router, middleware)
	cm.settingsHandler.SetupSettingsRoutes(router, middleware)
}

// GetUsecase returns the content usecase for external access
func (cm *ContentModule) GetUsecase() usecase.ContentUsecaseInterface {
	return cm.contentUsecase
}
