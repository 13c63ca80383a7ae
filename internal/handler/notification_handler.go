package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/internal/store"
	"github.com/EricsonWillians/itafest-backend/pkg/logger"
	"github.com/EricsonWillians/itafest-backend/pkg/push"
)

// NotificationHandler serves the notification resource. Creates and updates
// also deliver through the push gateway; a gateway failure fails the request
// after the document has been persisted.
type NotificationHandler struct {
	notifications *store.Store[model.Notification]
	gateway       *push.Client
}

// NewNotificationHandler wires the notification store and the push gateway.
func NewNotificationHandler(db *gorm.DB, gateway *push.Client) *NotificationHandler {
	return &NotificationHandler{
		notifications: store.New[model.Notification](db, "notification"),
		gateway:       gateway,
	}
}

// Register mounts the notification routes on the group.
func (h *NotificationHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create persists a notification and delivers it to its audience.
func (h *NotificationHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.NotificationCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Notification validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	notification := req.ToModel()
	if err := h.notifications.Create(c.Request().Context(), notification); err != nil {
		return httpError(c, log, err)
	}

	if err := h.gateway.Send(c.Request().Context(), notification); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Notification created and delivered",
		zap.String("notification_id", notification.ID),
		zap.String("type", string(notification.Type)))
	return c.JSON(http.StatusCreated, notification)
}

// Get handles retrieving a single notification by ID
func (h *NotificationHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	notification, err := h.notifications.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, notification)
}

// Update applies a partial update and re-delivers the notification.
func (h *NotificationHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.NotificationUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("notification_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	notification, err := h.notifications.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(notification)
	if err := notification.Validate(); err != nil {
		return httpError(c, log, err)
	}
	if err := h.notifications.Update(c.Request().Context(), notification); err != nil {
		return httpError(c, log, err)
	}

	if err := h.gateway.Send(c.Request().Context(), notification); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Notification updated and re-delivered", zap.String("notification_id", id))
	return c.JSON(http.StatusOK, notification)
}

// Delete handles removing a notification permanently
func (h *NotificationHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.notifications.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Notification deleted", zap.String("notification_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all notifications with pagination
func (h *NotificationHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	notifications, err := h.notifications.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, notifications)
}
