package repository

import (
	"context"

	"yogic-backend/internal/content/domain/model"
)

// ContentRepository defines the interface for the four content collections.
type ContentRepository interface {
	CreateSchedule(ctx context.Context, schedule *model.Schedule) error
	CreateFact(ctx context.Context, fact *model.Fact) error
	CreateBlog(ctx context.Context, blog *model.Blog) error
	CreateAsana(ctx context.Context, asana *model.Asana) error

	ListSchedules(ctx context.Context) ([]model.Schedule, error)
	ListFacts(ctx context.Context) ([]model.Fact, error)
	// ListBlogs and ListAsanas return records ordered newest-first.
	ListBlogs(ctx context.Context) ([]model.Blog, error)
	ListAsanas(ctx context.Context) ([]model.Asana, error)

	// DeleteByKind removes a record from the collection selected by kind.
	// It reports whether a record was actually removed; an absent id is not
	// an error.
	DeleteByKind(ctx context.Context, kind model.Kind, id string) (bool, error)
}

// SettingsRepository defines the interface for the settings singleton.
type SettingsRepository interface {
	// Get returns the singleton, creating it with defaults if absent.
	Get(ctx context.Context) (*model.Settings, error)
	// Update upserts adminPhone and welcomeMessage and returns the result.
	Update(ctx context.Context, adminPhone, welcomeMessage string) (*model.Settings, error)
}

// ContentCache caches the aggregate content listing.
type ContentCache interface {
	// GetListing returns the cached listing, or nil on a miss.
	GetListing(ctx context.Context) (*model.ContentListing, error)
	SetListing(ctx context.Context, listing *model.ContentListing) error
	Invalidate(ctx context.Context) error
}
