package usecase

import (
	"context"
	"fmt"

	"yogic-backend/internal/content/domain/model"
	"yogic-backend/internal/content/domain/repository"
	apperrors "yogic-backend/internal/shared/errors"
	"yogic-backend/internal/shared/logger"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ContentUsecaseInterface defines the contract for content management use cases.
type ContentUsecaseInterface interface {
	ListContent(ctx context.Context) (*model.ContentListing, error)
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*model.Schedule, error)
	CreateFact(ctx context.Context, req CreateFactRequest) (*model.Fact, error)
	CreateBlog(ctx context.Context, req CreateBlogRequest) (*model.Blog, error)
	CreateAsana(ctx context.Context, req CreateAsanaRequest) (*model.Asana, error)
	// Delete removes one record addressed by a kind tag and id. An unknown
	// kind is a validation error; an absent id is not.
	Delete(ctx context.Context, kindTag, id string) error
}

// CreateScheduleRequest carries a new class-batch offering
type CreateScheduleRequest struct {
	FromDay  string `json:"fromDay" validate:"required"`
	ToDay    string `json:"toDay" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Batch    string `json:"batch" validate:"required"`
	Notes    string `json:"notes"`
	Whatsapp string `json:"whatsapp"`
}

// CreateFactRequest carries a new wellness fact
type CreateFactRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CreateBlogRequest carries a new blog post
type CreateBlogRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
	Image   string   `json:"image"`
}

// CreateAsanaRequest carries a new asana entry
type CreateAsanaRequest struct {
	Name        string `json:"name" validate:"required"`
	Benefits    string `json:"benefits"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ContentUsecase implements the content management logic.
type ContentUsecase struct {
	repo  repository.ContentRepository
	cache repository.ContentCache
	log   logger.Logger
}

// NewContentUsecase creates a new instance of ContentUsecase. The cache is
// optional; a nil cache disables listing caching.
func NewContentUsecase(
	repo repository.ContentRepository,
	cache repository.ContentCache,
	log logger.Logger,
) *ContentUsecase {
	return &ContentUsecase{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ListContent returns the aggregate listing of all four collections.
// Blogs and asanas come back newest-first. A warm cache short-circuits the
// four store round-trips; a cache failure falls back to the store.
func (uc *ContentUsecase) ListContent(ctx context.Context) (*model.ContentListing, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetListing(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	schedules, err := uc.repo.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	facts, err := uc.repo.ListFacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facts: %w", err)
	}
	blogs, err := uc.repo.ListBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	asanas, err := uc.repo.ListAsanas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list asanas: %w", err)
	}

	listing := &model.ContentListing{
		Schedule: schedules,
		Facts:    facts,
		Blogs:    blogs,
		Asanas:   asanas,
	}

	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, listing); err != nil {
			uc.log.Warn("Failed to cache content listing: ", err)
		}
	}

	return listing, nil
}

// CreateSchedule validates and persists a class-batch offering
func (uc *ContentUsecase) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*model.Schedule, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	schedule := &model.Schedule{
		FromDay:  req.FromDay,
		ToDay:    req.ToDay,
		Time:     req.Time,
		Batch:    req.Batch,
		Notes:    req.Notes,
		Whatsapp: req.Whatsapp,
	}
	if err := uc.repo.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	uc.invalidateListing(ctx)
	return schedule, nil
}

// CreateFact validates and persists a wellness fact
func (uc *ContentUsecase) CreateFact(ctx context.Context, req CreateFactRequest) (*model.Fact, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	fact := &model.Fact{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := uc.repo.CreateFact(ctx, fact); err != nil {
		return nil, fmt.Errorf("failed to create fact: %w", err)
	}

	uc.invalidateListing(ctx)
	return fact, nil
}

// CreateBlog validates and persists a blog post
func (uc *ContentUsecase) CreateBlog(ctx context.Context, req CreateBlogRequest) (*model.Blog, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	author := req.Author
	if author == "" {
		author = model.DefaultBlogAuthor
	}

	blog := &model.Blog{
		Title:   req.Title,
		Content: req.Content,
		Author:  author,
		Tags:    req.Tags,
		Image:   req.Image,
	}
	if err := uc.repo.CreateBlog(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	uc.invalidateListing(ctx)
	return blog, nil
}

// CreateAsana validates and persists an asana entry
func (uc *ContentUsecase) CreateAsana(ctx context.Context, req CreateAsanaRequest) (*model.Asana, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	asana := &model.Asana{
		Name:        req.Name,
		Benefits:    req.Benefits,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := uc.repo.CreateAsana(ctx, asana); err != nil {
		return nil, fmt.Errorf("failed to create asana: %w", err)
	}

	uc.invalidateListing(ctx)
	return asana, nil
}

// Delete removes one record addressed by a kind tag and id. Deleting an
// id that does not exist succeeds; the operation is idempotent.
func (uc *ContentUsecase) Delete(ctx context.Context, kindTag, id string) error {
	kind, err := model.ParseKind(kindTag)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("unknown content kind %q", kindTag))
	}
	if id == "" {
		return apperrors.NewValidationError("id is required")
	}

	deleted, err := uc.repo.DeleteByKind(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if !deleted {
		uc.log.Infof("Delete of absent %s id %s treated as success", kind, id)
	}

	uc.invalidateListing(ctx)
	return nil
}

func (uc *ContentUsecase) invalidateListing(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn("Failed to invalidate content listing cache: ", err)
	}
}

// Ensure ContentUsecase implements ContentUsecaseInterface
var _ ContentUsecaseInterface = (*ContentUsecase)(nil)
