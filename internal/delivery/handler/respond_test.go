package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{entities.ErrUnauthorized, http.StatusUnauthorized},
		{entities.ErrForbidden, http.StatusForbidden},
		{entities.ErrInsufficientCredits, http.StatusForbidden},
		{entities.ErrNotFound, http.StatusNotFound},
		{entities.ErrInvalidRequest, http.StatusBadRequest},
		{entities.ErrConflict, http.StatusConflict},
		{entities.ErrNotConfigured, http.StatusServiceUnavailable},
		{entities.ErrGenerationFailed, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, _ := statusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

// Wrapped domain errors keep their mapping.
func TestStatusForWrapped(t *testing.T) {
	status, message := statusFor(fmt.Errorf("chapter is empty: %w", entities.ErrInvalidRequest))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, message, "chapter is empty")

	status, _ = statusFor(entities.GenerationError(errors.New("upstream broke")))
	assert.Equal(t, http.StatusInternalServerError, status)
}

// Unexpected errors never leak their detail to the client.
func TestStatusForInternalDetailHidden(t *testing.T) {
	_, message := statusFor(errors.New("pq: connection refused at 10.0.0.3"))
	assert.Equal(t, "Internal Server Error", message)
}
