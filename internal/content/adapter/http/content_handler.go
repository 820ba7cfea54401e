package http

import (
	"errors"

	"yogic-backend/internal/content/usecase"
	apperrors "yogic-backend/internal/shared/errors"
	"yogic-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"

	authhttp "yogic-backend/internal/auth/adapter/http"
)

// ContentHTTPHandler handles HTTP requests for the four content collections
type ContentHTTPHandler struct {
	usecase usecase.ContentUsecaseInterface
	log     logger.Logger
}

// NewContentHTTPHandler creates a new content HTTP handler
func NewContentHTTPHandler(uc usecase.ContentUsecaseInterface, log logger.Logger) *ContentHTTPHandler {
	return &ContentHTTPHandler{usecase: uc, log: log}
}

// SetupContentRoutes sets up the content routes. The aggregate listing is
// public; every mutation sits behind the admin token middleware.
func (h *ContentHTTPHandler) SetupContentRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	api := router.Group("/api")
	api.Get("/content", h.ListContent)
	api.Post("/schedule", middleware.Protect(), h.CreateSchedule)
	api.Post("/fact", middleware.Protect(), h.CreateFact)
	api.Post("/blog", middleware.Protect(), h.CreateBlog)
	api.Post("/asana", middleware.Protect(), h.CreateAsana)
	api.Delete("/delete/:type/:id", middleware.Protect(), h.Delete)
}

// ListContent returns schedules, facts, blogs and asanas in one response
func (h *ContentHTTPHandler) ListContent(c *fiber.Ctx) error {
	listing, err := h.usecase.ListContent(c.Context())
	if err != nil {
		h.log.Error("Failed to list content: ", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch content",
		})
	}
	return c.JSON(listing)
}

// CreateSchedule stores a new class-batch offering.
func (h *ContentHTTPHandler) CreateSchedule(c *fiber.Ctx) error {
	var req usecase.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.UserContext()
	schedule, err := h.usecase.CreateSchedule(ctx, req)
	if err != nil {
		return h.writeError(c, err, "Failed to create schedule")
	}

	h.log.WithContext(ctx).Infof("Created schedule %s", schedule.ID)
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// CreateFact stores a new wellness fact.
func (h *ContentHTTPHandler) CreateFact(c *fiber.Ctx) error {
	var req usecase.CreateFactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.UserContext()
	fact, err := h.usecase.CreateFact(ctx, req)
	if err != nil {
		return h.writeError(c, err, "Failed to create fact")
	}

	h.log.WithContext(ctx).Infof("Created fact %s", fact.ID)
	return c.Status(fiber.StatusCreated).JSON(fact)
}

// CreateBlog stores a new blog post.
func (h *ContentHTTPHandler) CreateBlog(c *fiber.Ctx) error {
	var req usecase.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.UserContext()
	blog, err := h.usecase.CreateBlog(ctx, req)
	if err != nil {
		return h.writeError(c, err, "Failed to create blog")
	}

	h.log.WithContext(ctx).Infof("Created blog %s", blog.ID)
	return c.Status(fiber.StatusCreated).JSON(blog)
}

// CreateAsana stores a new asana entry.
func (h *ContentHTTPHandler) CreateAsana(c *fiber.Ctx) error {
	var req usecase.CreateAsanaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.UserContext()
	asana, err := h.usecase.CreateAsana(ctx, req)
	if err != nil {
		return h.writeError(c, err, "Failed to create asana")
	}

	h.log.WithContext(ctx).Infof("Created asana %s", asana.ID)
	return c.Status(fiber.StatusCreated).JSON(asana)
}

// Delete removes one record addressed by collection type and id. Deleting
// an id that no longer exists still reports success.
func (h *ContentHTTPHandler) Delete(c *fiber.Ctx) error {
	kindTag := c.Params("type")
	id := c.Params("id")

	ctx := c.UserContext()
	if err := h.usecase.Delete(ctx, kindTag, id); err != nil {
		return h.writeError(c, err, "Failed to delete item")
	}

	h.log.WithContext(ctx).Infof("Deleted %s %s", kindTag, id)
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHTTPHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	if apperrors.IsValidation(err) {
		var appErr *apperrors.AppError
		message := fallback
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": message,
		})
	}

	h.log.Error(fallback, ": ", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
