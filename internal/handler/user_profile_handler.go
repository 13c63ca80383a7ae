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

// UserProfileHandler serves the public profile resource, including the
// embedded comment, emoji-rating and block-list sub-documents.
type UserProfileHandler struct {
	profiles *store.Store[model.UserProfile]
	now      func() time.Time
}

func NewUserProfileHandler(db *gorm.DB) *UserProfileHandler {
	return &UserProfileHandler{
		profiles: store.New[model.UserProfile](db, "user_profile"),
		now:      time.Now,
	}
}

// Register mounts the profile routes on the group.
func (h *UserProfileHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/user/:user_id", h.GetByUser)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/comments", h.AddComment)
	g.POST("/:id/emoji", h.AddEmojiRating)
	g.POST("/:id/block", h.BlockUser)
	g.POST("/:id/unblock", h.UnblockUser)
}

// Create handles creating a new user profile
func (h *UserProfileHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.UserProfileCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := req.Validate(); err != nil {
		log.Warn("User profile validation failed", zap.Error(err))
		return httpError(c, log, err)
	}

	taken, err := h.profiles.Exists(c.Request().Context(), "user_id", req.UserID, "")
	if err != nil {
		return httpError(c, log, err)
	}
	if taken {
		return httpError(c, log, apperr.Conflictf("profile for user %s already exists", req.UserID))
	}

	profile := req.ToModel()
	if err := h.profiles.Create(c.Request().Context(), profile); err != nil {
		return httpError(c, log, err)
	}

	log.Info("User profile created",
		zap.String("profile_id", profile.ID),
		zap.String("user_id", profile.UserID))
	return c.JSON(http.StatusCreated, profile)
}

// Get handles retrieving a single profile by ID
func (h *UserProfileHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	profile, err := h.profiles.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetByUser handles retrieving a profile by its owning user's ID
func (h *UserProfileHandler) GetByUser(c echo.Context) error {
	log := logger.FromContext(c)

	profile, err := h.profiles.GetByField(c.Request().Context(), "user_id", c.Param("user_id"))
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles partial updates to a profile's own fields
func (h *UserProfileHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req model.UserProfileUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("profile_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	profile, err := h.profiles.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	req.Apply(profile)
	if err := h.profiles.Update(c.Request().Context(), profile); err != nil {
		return httpError(c, log, err)
	}

	log.Info("User profile updated", zap.String("profile_id", id))
	return c.JSON(http.StatusOK, profile)
}

// Delete handles removing a profile permanently
func (h *UserProfileHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.profiles.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, log, err)
	}

	log.Info("User profile deleted", zap.String("profile_id", id))
	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving all profiles with pagination
func (h *UserProfileHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	skip, limit := pagination(c)

	profiles, err := h.profiles.List(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, log, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// profileCommentRequest is the payload for leaving a comment on a profile.
type profileCommentRequest struct {
	CommenterID string `json:"commenter_id"`
	Comment     string `json:"comment"`
}

// AddComment appends a comment to the profile. Comments from blocked users
// are rejected; new comments start unapproved.
func (h *UserProfileHandler) AddComment(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req profileCommentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("profile_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.CommenterID == "" {
		return httpError(c, log, apperr.Validationf("commenter_id is required"))
	}
	if req.Comment == "" {
		return httpError(c, log, apperr.Validationf("comment is required"))
	}

	profile, err := h.profiles.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	for _, blocked := range profile.BlockedUsers {
		if blocked == req.CommenterID {
			return httpError(c, log, apperr.Validationf("user %s is blocked from commenting", req.CommenterID))
		}
	}

	profile.Comments = append(profile.Comments, model.ProfileComment{
		CommenterID: req.CommenterID,
		Comment:     req.Comment,
		Timestamp:   h.now().UTC(),
		Approved:    false,
	})
	if err := h.profiles.Update(c.Request().Context(), profile); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Profile comment added",
		zap.String("profile_id", id),
		zap.String("commenter_id", req.CommenterID))
	return c.JSON(http.StatusOK, profile)
}

// emojiRatingRequest names which emoji counter to bump.
type emojiRatingRequest struct {
	Emoji model.EmojiRatingKind `json:"emoji"`
}

// AddEmojiRating increments one of the profile's emoji counters.
func (h *UserProfileHandler) AddEmojiRating(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req emojiRatingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("profile_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	profile, err := h.profiles.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	if !profile.EmojiRatings.Increment(req.Emoji) {
		return httpError(c, log, apperr.Validationf("unknown emoji rating: %s", req.Emoji))
	}
	if err := h.profiles.Update(c.Request().Context(), profile); err != nil {
		return httpError(c, log, err)
	}

	log.Info("Profile emoji rating added",
		zap.String("profile_id", id),
		zap.String("emoji", string(req.Emoji)))
	return c.JSON(http.StatusOK, profile)
}

// blockRequest names the user to block or unblock.
type blockRequest struct {
	UserID string `json:"user_id"`
}

// BlockUser adds a user to the profile's block list.
func (h *UserProfileHandler) BlockUser(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req blockRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("profile_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.UserID == "" {
		return httpError(c, log, apperr.Validationf("user_id is required"))
	}

	profile, err := h.profiles.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	if profile.BlockUser(req.UserID) {
		if err := h.profiles.Update(c.Request().Context(), profile); err != nil {
			return httpError(c, log, err)
		}
	}

	log.Info("User blocked on profile",
		zap.String("profile_id", id),
		zap.String("blocked_user_id", req.UserID))
	return c.JSON(http.StatusOK, profile)
}

// UnblockUser removes a user from the profile's block list.
func (h *UserProfileHandler) UnblockUser(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req blockRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("profile_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.UserID == "" {
		return httpError(c, log, apperr.Validationf("user_id is required"))
	}

	profile, err := h.profiles.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(c, log, err)
	}

	if profile.UnblockUser(req.UserID) {
		if err := h.profiles.Update(c.Request().Context(), profile); err != nil {
			return httpError(c, log, err)
		}
	}

	log.Info("User unblocked on profile",
		zap.String("profile_id", id),
		zap.String("unblocked_user_id", req.UserID))
	return c.JSON(http.StatusOK, profile)
}
