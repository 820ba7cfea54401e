package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yogic-backend/internal/auth/config"
	"yogic-backend/internal/auth/domain/model"
	"yogic-backend/internal/auth/domain/repository"
	apperrors "yogic-backend/internal/shared/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid")
)

// AuthUsecaseInterface defines the contract for admin authentication use cases.
type AuthUsecaseInterface interface {
	Bootstrap(ctx context.Context) (*model.Admin, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error)
	GetAdminFromToken(ctx context.Context, tokenString string) (*model.Admin, error)
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUsecase implements the admin authentication logic.
type AuthUsecase struct {
	repo     repository.AdminRepository
	tokenSvc repository.TokenService
	config   *config.Config
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	repo repository.AdminRepository,
	tokenSvc repository.TokenService,
	cfg *config.Config,
) *AuthUsecase {
	return &AuthUsecase{
		repo:     repo,
		tokenSvc: tokenSvc,
		config:   cfg,
	}
}

// Bootstrap creates the single admin account from the configured credentials.
// It fails with ErrUsernameTaken once the account exists.
func (uc *AuthUsecase) Bootstrap(ctx context.Context) (*model.Admin, error) {
	username := strings.TrimSpace(uc.config.BootstrapUsername)
	if username == "" {
		return nil, fmt.Errorf("bootstrap username is not configured")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(uc.config.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	if err := uc.repo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	admin.PasswordHash = ""
	return admin, nil
}

// Login verifies the credentials and issues a signed, expiring token.
func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (string, error) {
	admin, err := uc.repo.GetAdminByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return "", ErrAdminNotFound
		}
		return "", fmt.Errorf("failed to get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, admin.ID, admin.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// ValidateToken validates a JWT string
func (uc *AuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetAdminFromToken validates a token and fetches the associated admin
func (uc *AuthUsecase) GetAdminFromToken(ctx context.Context, tokenString string) (*model.Admin, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	admin, err := uc.repo.GetAdminByID(ctx, claims.AdminID)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	admin.PasswordHash = ""
	return admin, nil
}

// Ensure AuthUsecase implements AuthUsecaseInterface
var _ AuthUsecaseInterface = (*AuthUsecase)(nil)
