package usecase

import (
	"context"
	"fmt"

	"yogic-backend/internal/content/domain/model"
	"yogic-backend/internal/content/domain/repository"
	apperrors "yogic-backend/internal/shared/errors"
)

// SettingsUsecaseInterface defines the contract for settings use cases.
type SettingsUsecaseInterface interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*model.Settings, error)
}

// UpdateSettingsRequest carries the settings upsert
type UpdateSettingsRequest struct {
	AdminPhone     string `json:"adminPhone" validate:"required"`
	WelcomeMessage string `json:"welcomeMessage" validate:"required"`
}

// SettingsUsecase implements the settings singleton logic.
type SettingsUsecase struct {
	repo repository.SettingsRepository
}

// NewSettingsUsecase creates a new instance of SettingsUsecase.
func NewSettingsUsecase(repo repository.SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo}
}

// GetSettings returns the singleton, creating it with defaults on first read
func (uc *SettingsUsecase) GetSettings(ctx context.Context) (*model.Settings, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and upserts the singleton. The upsert holds even
// if no settings document previously existed.
func (uc *SettingsUsecase) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*model.Settings, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	settings, err := uc.repo.Update(ctx, req.AdminPhone, req.WelcomeMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

// Ensure SettingsUsecase implements SettingsUsecaseInterface
var _ SettingsUsecaseInterface = (*SettingsUsecase)(nil)
