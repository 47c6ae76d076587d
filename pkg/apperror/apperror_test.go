package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	t.Run("passes through tagged errors", func(t *testing.T) {
		err := Client("seat is already reserved")
		got := From(fmt.Errorf("reserve seat: %w", err))

		assert.Equal(t, KindClient, got.Kind)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "seat is already reserved", got.Message)
	})

	t.Run("wraps unknown errors as server error with generic message", func(t *testing.T) {
		got := From(errors.New("dial tcp 127.0.0.1:5432: connection refused"))

		assert.Equal(t, KindServer, got.Kind)
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestKinds(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("party not found").Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("not your reservation").Status)
	assert.Equal(t, http.StatusBadRequest, Admin("hall is booked").Status)
	assert.True(t, IsKind(fmt.Errorf("cancel: %w", Forbidden("nope")), KindAuthorization))
	assert.False(t, IsKind(errors.New("plain"), KindServer))
}
