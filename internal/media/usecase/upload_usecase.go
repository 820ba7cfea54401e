package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"yogic-backend/internal/media/config"
	"yogic-backend/internal/media/domain/repository"
	apperrors "yogic-backend/internal/shared/errors"
	"yogic-backend/internal/shared/logger"

	"github.com/google/uuid"
)

// allowedExtensions is the closed set of image types accepted for upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadUsecaseInterface defines the contract for image upload use cases.
type UploadUsecaseInterface interface {
	// Upload validates and stores one image and returns its public URL.
	Upload(ctx context.Context, originalName string, size int64, content io.Reader) (string, error)
}

// UploadUsecase implements the image upload logic.
type UploadUsecase struct {
	store  repository.FileStore
	config *config.Config
	log    logger.Logger
}

// NewUploadUsecase creates a new instance of UploadUsecase.
func NewUploadUsecase(store repository.FileStore, cfg *config.Config, log logger.Logger) *UploadUsecase {
	return &UploadUsecase{
		store:  store,
		config: cfg,
		log:    log,
	}
}

// Upload checks the size cap and extension allowlist, stores the file under
// a collision-resistant name, and returns the public URL. The name combines
// a millisecond timestamp with a uuid fragment so two uploads landing in the
// same millisecond cannot overwrite each other.
func (uc *UploadUsecase) Upload(ctx context.Context, originalName string, size int64, content io.Reader) (string, error) {
	if size <= 0 {
		return "", apperrors.NewValidationError("uploaded file is empty")
	}
	if size > uc.config.MaxUploadBytes {
		return "", apperrors.NewValidationError(fmt.Sprintf("file exceeds the %d byte limit", uc.config.MaxUploadBytes))
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", apperrors.NewValidationError(fmt.Sprintf("file type %q is not allowed", ext))
	}

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String()[:8], sanitizeFilename(originalName))

	if _, err := uc.store.Save(ctx, name, content); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	url := uc.config.PublicBaseURL + "/uploads/" + name
	uc.log.Infof("Stored upload %s (%d bytes)", name, size)
	return url, nil
}

// sanitizeFilename strips path components and replaces anything outside
// a conservative character set, keeping stored names shell- and URL-safe.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// Ensure UploadUsecase implements UploadUsecaseInterface
var _ UploadUsecaseInterface = (*UploadUsecase)(nil)
