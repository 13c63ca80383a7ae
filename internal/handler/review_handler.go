package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/internal/store"
	"github.com/EricsonWillians/itafest-backend/pkg/logger"
)

// ReviewHandler serves the review resource.
type ReviewHandler struct {
	reviews *store.Store[model.Review]
}

// NewReviewHandler wires the review store onto the given session.
func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{reviews: store.New[model.Review](db, "review")}
}

// Register mounts the review routes on the group.
func (h *ReviewHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/target/:target_id/:target_type", h.ListByTarget)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles creating a new review
func (h *ReviewHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.ReviewCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Review validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	review := req.ToModel()
	if err := h.reviews.Create(c.Request().Context(), review); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Review created",
		zap.String("review_id", review.ID),
		zap.String("target_id", review.TargetID),
		zap.String("target_type", string(review.TargetType)))
	return c.JSON(http.StatusCreated, review)
}

// Get handles retrieving a single review by ID
func (h *ReviewHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	review, err := h.reviews.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Update handles a partial update of an existing review
func (h *ReviewHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.ReviewUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("review_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	review, err := h.reviews.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(review)
	if err := review.Validate(); err != nil {
		return httpError(c, log, err)
	}
	if err := h.reviews.Update(c.Request().Context(), review); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Review updated", zap.String("review_id", id))
	return c.JSON(http.StatusOK, review)
}

// Delete handles removing a review permanently
func (h *ReviewHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.reviews.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Review deleted", zap.String("review_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all reviews with pagination
func (h *ReviewHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	reviews, err := h.reviews.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListByTarget handles retrieving the reviews attached to one business or event
func (h *ReviewHandler) ListByTarget(c echo.Context) error {
	log := logger.FromContext(c)
	targetType := model.ReviewTargetType(c.Param("target_type"))
	if !targetType.Valid() {
		return httpError(c, log, apperr.Validationf("invalid review target type: %s", targetType))
	}
	skip, limit := pagination(c)

	reviews, err := h.reviews.List(c.Request().Context(), skip, limit,
		store.WithField("target_id", c.Param("target_id")),
		store.WithField("target_type", string(targetType)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, reviews)
}
