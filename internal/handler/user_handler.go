package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/internal/store"
	"github.com/EricsonWillians/itafest-backend/pkg/logger"
)

// UserHandler serves user account registration and management.
type UserHandler struct {
	users *store.Store[model.User]
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{users: store.New[model.User](db, "user")}
}

// Register mounts the user routes on the group.
func (h *UserHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/email/:email", h.GetByEmail)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create registers a new user. The password is hashed with bcrypt and never
// leaves the service; the email must be unique.
func (h *UserHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.UserCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("User validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	taken, err := h.users.Exists(c.Request().Context(), "email", req.Email, "")
	if err != nil {
		return httpError(c, log, err)
	}
	if taken {
		return httpError(c, log, apperr.Conflictf("email %s is already registered", req.Email))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not process registration"})
	}

	user := req.ToModel(string(hashed))
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		return httpError(c, log, err)
	}

	log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))
	return c.JSON(http.StatusCreated, user)
}

// Get handles retrieving a single user by ID
func (h *UserHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetByEmail handles retrieving a single user by email address
func (h *UserHandler) GetByEmail(c echo.Context) error {
	log := logger.FromContext(c)

	user, err := h.users.GetByField(c.Request().Context(), "email", c.Param("email"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles partial updates to a user's profile fields. Email and
// password are not updatable through this endpoint.
func (h *UserHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.UserUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("user_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(user)
	if err := user.Validate(); err != nil {
		return httpError(c, log, err)
	}
	if err := h.users.Update(c.Request().Context(), user); err != nil {
		return httpError(c, log, err)
	}

	log.Info("User updated", zap.String("user_id", id))
	return c.JSON(http.StatusOK, user)
}

// Delete handles removing a user permanently
func (h *UserHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("User deleted", zap.String("user_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all users with pagination
func (h *UserHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	users, err := h.users.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, users)
}
