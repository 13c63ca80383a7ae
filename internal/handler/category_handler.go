package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/internal/store"
	"github.com/EricsonWillians/itafest-backend/pkg/logger"
)

// CategoryHandler serves the category resource.
type CategoryHandler struct {
	categories *store.Store[model.Category]
}

// NewCategoryHandler wires the category store onto the given session.
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{categories: store.New[model.Category](db, "category")}
}

// Register mounts the category routes on the group.
func (h *CategoryHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles creating a new category
func (h *CategoryHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.CategoryCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		return httpError(c, log, err)
	}

	category := req.ToModel()
	if err := h.categories.Create(c.Request().Context(), category); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Category created", zap.String("category_id", category.ID), zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

// Get handles retrieving a single category by ID
func (h *CategoryHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	category, err := h.categories.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, category)
}

// Update handles a partial update of an existing category
func (h *CategoryHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.CategoryUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	category, err := h.categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(category)
	if err := category.Validate(); err != nil {
		return httpError(c, log, err)
	}
	if err := h.categories.Update(c.Request().Context(), category); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Category updated", zap.String("category_id", id))
	return c.JSON(http.StatusOK, category)
}

// Delete handles removing a category permanently
func (h *CategoryHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Category deleted", zap.String("category_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all categories with pagination
func (h *CategoryHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	categories, err := h.categories.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, categories)
}
