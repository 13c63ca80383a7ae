package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/internal/store"
	"github.com/EricsonWillians/itafest-backend/pkg/logger"
)

// EventHandler serves the event resource.
type EventHandler struct {
	events *store.Store[model.Event]
	// now is swappable so the upcoming/past windows can be pinned in tests.
	now func() time.Time
}

// NewEventHandler wires the event store onto the given session.
func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{
		events: store.New[model.Event](db, "event"),
		now:    time.Now,
	}
}

// Register mounts the event routes on the group.
func (h *EventHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/upcoming", h.ListUpcoming)
	g.GET("/past", h.ListPast)
	g.GET("/category/:category", h.ListByCategory)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles creating a new event
func (h *EventHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.EventCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Event validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	event := req.ToModel()
	if err := h.events.Create(c.Request().Context(), event); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("title", event.Title),
		zap.Time("date", event.Date))
	return c.JSON(http.StatusCreated, event)
}

// Get handles retrieving a single event by ID
func (h *EventHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	event, err := h.events.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, event)
}

// Update handles a partial update of an existing event. Cross-field rules
// touched by the change are re-validated before saving.
func (h *EventHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.EventUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("event_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	event, err := h.events.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(event)
	if err := event.Validate(); err != nil {
		log.Warn("Event validation failed", zap.String("event_id", id), zap.Error(err))
		return httpError(c, log, err)
	}
	if err := h.events.Update(c.Request().Context(), event); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Event updated", zap.String("event_id", id))
	return c.JSON(http.StatusOK, event)
}

// Delete handles removing an event permanently
func (h *EventHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.events.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Event deleted", zap.String("event_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all events with pagination
func (h *EventHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	events, err := h.events.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, events)
}

// ListByCategory handles retrieving events tagged with one category
func (h *EventHandler) ListByCategory(c echo.Context) error {
	log := logger.FromContext(c)
	category := model.EventCategory(c.Param("category"))
	if !category.Valid() {
		return httpError(c, log, apperr.Validationf("invalid event category: %s", category))
	}
	skip, limit := pagination(c)

	events, err := h.events.List(c.Request().Context(), skip, limit,
		store.WithCategory(string(category)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, events)
}

// ListUpcoming returns events dated at or after now that are still marked
// upcoming.
func (h *EventHandler) ListUpcoming(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	events, err := h.events.List(c.Request().Context(), skip, limit,
		store.DateOnOrAfter("date", h.now()),
		store.WithStatus(string(model.EventStatusUpcoming)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, events)
}

// ListPast returns events dated before now that were marked completed.
func (h *EventHandler) ListPast(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	events, err := h.events.List(c.Request().Context(), skip, limit,
		store.DateBefore("date", h.now()),
		store.WithStatus(string(model.EventStatusCompleted)))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, events)
}
