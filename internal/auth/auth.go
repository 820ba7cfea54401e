package auth

import (
	"fmt"

	authhttp "yogic-backend/internal/auth/adapter/http"
	"yogic-backend/internal/auth/adapter/persistence/mongodb"
	"yogic-backend/internal/auth/adapter/security"
	"yogic-backend/internal/auth/config"
	"yogic-backend/internal/auth/domain/repository"
	"yogic-backend/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthModule represents the complete admin authentication module
type AuthModule struct {
	repository repository.AdminRepository
	tokenSvc   repository.TokenService
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	config     *config.Config
}

// NewAuthModule creates a new authentication module instance
func NewAuthModule(db *mongo.Database, cfg *config.Config) (*AuthModule, error) {
	adminRepo, err := mongodb.NewMongoAdminRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin repository: %w", err)
	}

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(adminRepo, tokenSvc, cfg)
	handler := authhttp.NewAuthHTTPHandler(authUsecase)

	return &AuthModule{
		repository: adminRepo,
		tokenSvc:   tokenSvc,
		usecase:    authUsecase,
		handler:    handler,
		config:     cfg,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	am.handler.SetupAuthRoutes(router, am.GetMiddleware())
}

// GetUsecase returns the auth usecase for external access
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetMiddleware returns the auth middleware
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(am.usecase)
}
