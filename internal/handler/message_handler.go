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

// MessageHandler serves the message resource, including the reaction
// sub-collection.
type MessageHandler struct {
	messages *store.Store[model.Message]
}

// NewMessageHandler wires the message store onto the given session.
func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{messages: store.New[model.Message](db, "message")}
}

// Register mounts the message routes on the group.
func (h *MessageHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/user/:user_id", h.ListForUser)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/reactions", h.AddReaction)
	g.DELETE("/:id/reactions", h.RemoveReaction)
}

// Create handles sending a new message
func (h *MessageHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.MessageCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("Message validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	message := req.ToModel()
	if err := h.messages.Create(c.Request().Context(), message); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Message created",
		zap.String("message_id", message.ID),
		zap.String("sender_id", message.SenderID),
		zap.String("receiver_id", message.ReceiverID))
	return c.JSON(http.StatusCreated, message)
}

// Get handles retrieving a single message by ID
func (h *MessageHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	message, err := h.messages.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, message)
}

// Update handles a partial update of an existing message
func (h *MessageHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.MessageUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("message_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	message, err := h.messages.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(message)
	if err := message.Validate(); err != nil {
		return httpError(c, log, err)
	}
	if err := h.messages.Update(c.Request().Context(), message); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Message updated", zap.String("message_id", id))
	return c.JSON(http.StatusOK, message)
}

// Delete handles removing a message permanently
func (h *MessageHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.messages.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Message deleted", zap.String("message_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all messages with pagination
func (h *MessageHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	messages, err := h.messages.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// ListForUser handles retrieving the messages addressed to one user
func (h *MessageHandler) ListForUser(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	messages, err := h.messages.List(c.Request().Context(), skip, limit,
		store.WithField("receiver_id", c.Param("user_id")))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// AddReaction appends an emoji reaction to a message and re-saves the whole
// document.
func (h *MessageHandler) AddReaction(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var reaction model.Reaction
	if err := c.Bind(&reaction); err != nil {
		log.Error("Invalid request data", zap.String("message_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := reaction.Validate(); err != nil {
		return httpError(c, log, err)
	}

	message, err := h.messages.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	message.AddReaction(reaction)
	if err := h.messages.Update(c.Request().Context(), message); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Reaction added",
		zap.String("message_id", id),
		zap.String("user_id", reaction.UserID),
		zap.String("emoji", string(reaction.Emoji)))
	return c.JSON(http.StatusOK, message)
}

// RemoveReaction drops the reaction matching the (user_id, emoji) compound
// key given as query parameters.
func (h *MessageHandler) RemoveReaction(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	userID := c.QueryParam("user_id")
	emoji := model.ReactionEmoji(c.QueryParam("emoji"))
	if userID == "" || emoji == "" {
		return httpError(c, log, apperr.Validationf("user_id and emoji are required"))
	}

	message, err := h.messages.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	message.RemoveReaction(userID, emoji)
	if err := h.messages.Update(c.Request().Context(), message); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Reaction removed",
		zap.String("message_id", id),
		zap.String("user_id", userID),
		zap.String("emoji", string(emoji)))
	return c.JSON(http.StatusOK, message)
}
