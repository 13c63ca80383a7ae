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

// TicketHandler serves the ticket resource.
type TicketHandler struct {
	tickets *store.Store[model.Ticket]
}

// NewTicketHandler wires the ticket store onto the given session.
func NewTicketHandler(db *gorm.DB) *TicketHandler {
	return &TicketHandler{tickets: store.New[model.Ticket](db, "ticket")}
}

// Register mounts the ticket routes on the group.
func (h *TicketHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/event/:event_id", h.ListByEvent)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles creating a new ticket batch for an event
func (h *TicketHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.TicketCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Ticket validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	ticket := req.ToModel()
	if err := h.tickets.Create(c.Request().Context(), ticket); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("event_id", ticket.EventID),
		zap.String("type", string(ticket.Type)))
	return c.JSON(http.StatusCreated, ticket)
}

// Get handles retrieving a single ticket by ID
func (h *TicketHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	ticket, err := h.tickets.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, ticket)
}

// Update handles a partial update of an existing ticket
func (h *TicketHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.TicketUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("ticket_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	ticket, err := h.tickets.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(ticket)
	if err := ticket.Validate(); err != nil {
		log.Warn("Ticket validation failed", zap.String("ticket_id", id), zap.Error(err))
		return httpError(c, log, err)
	}
	if err := h.tickets.Update(c.Request().Context(), ticket); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Ticket updated", zap.String("ticket_id", id))
	return c.JSON(http.StatusOK, ticket)
}

// Delete handles removing a ticket permanently
func (h *TicketHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.tickets.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Ticket deleted", zap.String("ticket_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all tickets with pagination
func (h *TicketHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	tickets, err := h.tickets.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, tickets)
}

// ListByEvent handles retrieving the tickets sold for one event
func (h *TicketHandler) ListByEvent(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	tickets, err := h.tickets.List(c.Request().Context(), skip, limit,
		store.WithField("event_id", c.Param("event_id")))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, tickets)
}
