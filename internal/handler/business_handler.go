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

// BusinessHandler serves the business resource.
type BusinessHandler struct {
	businesses *store.Store[model.Business]
}

// NewBusinessHandler wires the business store onto the given session.
func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{businesses: store.New[model.Business](db, "business")}
}

// Register mounts the business routes on the group.
func (h *BusinessHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/active", h.ListActive)
	g.GET("/category/:category", h.ListByCategory)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles creating a new business
func (h *BusinessHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.BusinessCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Business validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	business := req.ToModel()
	if err := h.businesses.Create(c.Request().Context(), business); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Business created",
		zap.String("business_id", business.ID),
		zap.String("name", business.Name))
	return c.JSON(http.StatusCreated, business)
}

// Get handles retrieving a single business by ID
func (h *BusinessHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	business, err := h.businesses.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, business)
}

// Update handles a partial update of an existing business
func (h *BusinessHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.BusinessUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("business_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	business, err := h.businesses.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(business)
	if err := business.Validate(); err != nil {
		log.Warn("Business validation failed", zap.String("business_id", id), zap.Error(err))
		return httpError(c, log, err)
	}
	if err := h.businesses.Update(c.Request().Context(), business); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Business updated", zap.String("business_id", id))
	return c.JSON(http.StatusOK, business)
}

// Delete handles removing a business permanently
func (h *BusinessHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.businesses.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Business deleted", zap.String("business_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all businesses with pagination
func (h *BusinessHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	businesses, err := h.businesses.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, businesses)
}

// ListByCategory handles retrieving businesses tagged with one category
func (h *BusinessHandler) ListByCategory(c echo.Context) error {
	log := logger.FromContext(c)
	category := model.BusinessCategory(c.Param("category"))
	if !category.Valid() {
		return httpError(c, log, apperr.Validationf("invalid business category: %s", category))
	}
	skip, limit := pagination(c)

	businesses, err := h.businesses.List(c.Request().Context(), skip, limit,
		store.WithCategory(string(category)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, businesses)
}

// ListActive handles retrieving businesses whose status is active
func (h *BusinessHandler) ListActive(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	businesses, err := h.businesses.List(c.Request().Context(), skip, limit,
		store.WithStatus(string(model.BusinessStatusActive)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, businesses)
}
