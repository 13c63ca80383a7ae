package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// pagination reads the skip/limit query parameters, falling back to the
// defaults when absent or malformed.
func pagination(c echo.Context) (skip, limit int) {
	skip, limit = defaultSkip, defaultLimit
	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}

// httpError maps a typed failure to its response class. Every error surfaces
// directly; nothing is retried or swallowed.
func httpError(c echo.Context, log *zap.Logger, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case apperr.Validation:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": e.Message})
		case apperr.NotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": e.Message})
		case apperr.Conflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": e.Message})
		case apperr.Upstream:
			log.Error("Upstream collaborator failed", zap.Int("upstream_status", e.Status), zap.Error(err))
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error":           e.Message,
				"upstream_status": e.Status,
			})
		}
	}
	log.Error("Unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
