package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(Validationf("bad input")))
	assert.Equal(t, NotFound, KindOf(NotFoundf("missing")))
	assert.Equal(t, Conflict, KindOf(Conflictf("taken")))
	assert.Equal(t, Upstream, KindOf(Upstreamf(503, "down")))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("get business: %w", NotFoundf("business not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestUpstreamCarriesStatus(t *testing.T) {
	wrapped := fmt.Errorf("deliver: %w", Upstreamf(401, "push gateway returned %d", 401))
	var e *Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "push gateway returned 401", e.Message)
}
