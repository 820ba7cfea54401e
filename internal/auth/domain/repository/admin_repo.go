package repository

import (
	"context"

	"yogic-backend/internal/auth/domain/model"
)

// AdminRepository defines the interface for admin credential storage.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) error
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*model.Admin, error)
}
