package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_articles_slug"`), http.StatusConflict},
		{"foreign key", errors.New(`insert or update violates foreign key constraint "fk_articles_category"`), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection refused", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near SELECT"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "article", tt.cause)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
		})
	}
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewInvalidFieldError("score", "must be between 1 and 5")
	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.True(t, IsInvalidFieldError(err))
	assert.Equal(t, "score", err.Field)

	missing := NewMissingRequiredFieldError("title")
	assert.True(t, IsMissingRequiredFieldError(missing))
	assert.Equal(t, "title", missing.Field)
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("article")
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNewAlreadyExists(t *testing.T) {
	err := NewAlreadyExists("subscription")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}
