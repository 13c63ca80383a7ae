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

// PromotionHandler serves the promotion resource.
type PromotionHandler struct {
	promotions *store.Store[model.Promotion]
}

// NewPromotionHandler wires the promotion store onto the given session.
func NewPromotionHandler(db *gorm.DB) *PromotionHandler {
	return &PromotionHandler{promotions: store.New[model.Promotion](db, "promotion")}
}

// Register mounts the promotion routes on the group.
func (h *PromotionHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/active", h.ListActive)
	g.GET("/category/:category", h.ListByCategory)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles creating a new promotion
func (h *PromotionHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.PromotionCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Promotion validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	promotion := req.ToModel()
	if err := h.promotions.Create(c.Request().Context(), promotion); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Promotion created",
		zap.String("promotion_id", promotion.ID),
		zap.String("title", promotion.Title),
		zap.String("discount", promotion.Discount.String()))
	return c.JSON(http.StatusCreated, promotion)
}

// Get handles retrieving a single promotion by ID
func (h *PromotionHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	promotion, err := h.promotions.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, promotion)
}

// Update handles a partial update of an existing promotion
func (h *PromotionHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.PromotionUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("promotion_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	promotion, err := h.promotions.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(promotion)
	if err := promotion.Validate(); err != nil {
		log.Warn("Promotion validation failed", zap.String("promotion_id", id), zap.Error(err))
		return httpError(c, log, err)
	}
	if err := h.promotions.Update(c.Request().Context(), promotion); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Promotion updated", zap.String("promotion_id", id))
	return c.JSON(http.StatusOK, promotion)
}

// Delete handles removing a promotion permanently
func (h *PromotionHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.promotions.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Promotion deleted", zap.String("promotion_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all promotions with pagination
func (h *PromotionHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	promotions, err := h.promotions.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, promotions)
}

// ListByCategory handles retrieving promotions tagged with one category
func (h *PromotionHandler) ListByCategory(c echo.Context) error {
	log := logger.FromContext(c)
	category := model.PromotionCategory(c.Param("category"))
	if !category.Valid() {
		return httpError(c, log, apperr.Validationf("invalid promotion category: %s", category))
	}
	skip, limit := pagination(c)

	promotions, err := h.promotions.List(c.Request().Context(), skip, limit,
		store.WithCategory(string(category)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, promotions)
}

// ListActive handles retrieving promotions whose status is active
func (h *PromotionHandler) ListActive(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	promotions, err := h.promotions.List(c.Request().Context(), skip, limit,
		store.WithStatus(string(model.PromotionStatusActive)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, promotions)
}
