// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

func TestNotFound_Message(t *testing.T) {
	err := apperr.NotFound("Book")

	assert.Equal(t, "Book not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAs_TraversesWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", apperr.BadRequest("upload is not JSON"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "BAD_REQUEST", ae.Code)
	assert.False(t, apperr.IsNotFound(wrapped))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.Equal(t, "An unexpected error occurred", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, apperr.IsAppError(cause))
}

func TestPayloadTooLarge(t *testing.T) {
	err := apperr.PayloadTooLarge(1024)

	assert.Equal(t, http.StatusRequestEntityTooLarge, err.HTTPStatus)
	assert.Equal(t, apperr.CodePayloadTooLarge, err.Code)
	assert.Equal(t, "Upload exceeds the size limit of 1024 bytes", err.Error())
}

func TestServiceUnavailable_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := apperr.ServiceUnavailable("Export links are unavailable", cause)

	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Export links are unavailable", err.Error())
}
