package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("conn refused")
	err := NewAppError(500, "failed to begin transaction", cause)

	assert.Equal(t, "failed to begin transaction: conn refused", err.Error())
	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	wrapped := fmt.Errorf("save: %w", err)
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestAppError_NoCause(t *testing.T) {
	assert.Equal(t, "bad input", NewAppError(400, "bad input", nil).Error())
}

func TestAppError_WrapsSentinel(t *testing.T) {
	err := NewAppError(404, "account missing", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrDuplicate)
}
