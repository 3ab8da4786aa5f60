package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", NewValidationError("bad input"), fiber.StatusBadRequest},
		{"Duplicate", NewDuplicateError("This email already exists"), fiber.StatusConflict},
		{"Unauthorized", NewUnauthorizedError("Unauthorized"), fiber.StatusUnauthorized},
		{"Not Found", NewNotFoundError("Post", 9), fiber.StatusNotFound},
		{"Internal", NewInternalError(errors.New("db down")), fiber.StatusInternalServerError},
		{"Plain Error", errors.New("anything"), fiber.StatusInternalServerError},
		{"Wrapped AppError", &wrapped{NewDuplicateError("dup")}, fiber.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}

type wrapped struct{ inner error }

func (w *wrapped) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrapped) Unwrap() error { return w.inner }

func TestAppError_InternalCauseIsNotTheMessage(t *testing.T) {
	cause := errors.New("pq: connection refused")
	appErr := NewInternalError(cause)

	// The user-facing message never carries the cause; Error() (for logs)
	// does.
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.Contains(t, appErr.Error(), "connection refused")
	assert.ErrorIs(t, appErr, cause)
}

func TestNewNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("User", 42)
	assert.Equal(t, "User with ID 42 not found", err.Message)
	assert.Equal(t, CodeNotFound, err.Code)
}
