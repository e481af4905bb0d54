package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("Car with id %d not found", 3), http.StatusNotFound},
		{"conflict", Conflict("taken"), http.StatusConflict},
		{"unauthenticated", Unauthenticated("Invalid token"), http.StatusUnauthorized},
		{"expired", New(ErrExpired, "Signature has expired"), http.StatusUnauthorized},
		{"forbidden", Forbidden("nope"), http.StatusForbidden},
		{"validation", Validation("bad"), http.StatusUnprocessableEntity},
		{"rate limited", New(ErrRateLimited, "slow down"), http.StatusTooManyRequests},
		{"wrapped", fmt.Errorf("update car: %w", Forbidden("nope")), http.StatusForbidden},
		{"plain", errors.New("disk on fire"), http.StatusInternalServerError},
		{"nil", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestDetail(t *testing.T) {
	assert.Equal(t, "Car with id 3 not found", Detail(NotFound("Car with id %d not found", 3)))
	assert.Equal(t, "Internal server error", Detail(errors.New("sql: connection refused")))
}

func TestKindsAreDistinct(t *testing.T) {
	err := New(ErrExpired, "Signature has expired")

	assert.ErrorIs(t, err, ErrExpired)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}
